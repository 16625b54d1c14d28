// Package main runs the padmenu terminal host.
//
// The host draws a small demo scene and runs the debug overlay over it once
// per frame. Hold L+R (or press the latch key, tab by default) to open the
// menu.
//
// Usage:
//
//	padmenu
//
// Configuration is read from .padmenu.json in the working directory and
// PADMENU_* environment variables.
package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/riordanpawley/padmenu/internal/app"
	"github.com/riordanpawley/padmenu/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The alt screen owns stdout, so logs only go to a file.
	logger, closeLog, err := app.NewLogger(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	model, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "error", err)
		return err
	}
	return nil
}
