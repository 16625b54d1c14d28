// Package main replays a scripted input sequence through the overlay and
// prints what the HUD showed on each tick.
//
// Usage:
//
//	padreplay <script.yaml> [layout.yaml]
//
// Without a layout argument the configured layout, or the built-in demo
// menu, is used.
package main

import (
	"fmt"
	"os"

	"github.com/riordanpawley/padmenu/internal/app"
	"github.com/riordanpawley/padmenu/internal/config"
	"github.com/riordanpawley/padmenu/internal/demo"
	"github.com/riordanpawley/padmenu/internal/replay"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: padreplay <script.yaml> [layout.yaml]")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if len(args) == 2 {
		cfg.Layout = args[1]
	}

	logger, closeLog, err := app.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	script, err := replay.LoadScript(args[0])
	if err != nil {
		return err
	}

	settings := demo.NewSettings(logger)
	tree, root, err := settings.Build(cfg.Layout, cfg.Glyphs)
	if err != nil {
		return err
	}

	res, err := replay.Run(script, tree, root, settings.Tick, logger)
	if err != nil {
		return err
	}

	for _, ev := range res.Events {
		fmt.Println(ev)
	}
	fmt.Printf("%d ticks, final depth %d, settings: %s\n", res.Ticks, res.Depth, settings.Status())
	return nil
}
