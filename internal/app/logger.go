package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/riordanpawley/padmenu/internal/config"
)

// NewLogger builds the host logger. Records go to cfg.File when set and to
// fallback otherwise; the returned func closes the file.
func NewLogger(cfg config.LogConfig, fallback io.Writer) (*slog.Logger, func() error, error) {
	out := fallback
	closeFn := func() error { return nil }

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}
	if out == nil {
		out = io.Discard
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	return slog.New(handler), closeFn, nil
}
