// Package config loads the terminal host's settings. The menu engine itself
// takes no configuration; these values only shape how the host feeds it
// input and displays its frames.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/riordanpawley/padmenu/internal/menu"
)

// FileName is the config file looked up in the working directory.
const FileName = ".padmenu.json"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PADMENU_"

// Config represents the full host configuration
type Config struct {
	// Layout is a YAML menu layout; empty uses the built-in demo menu.
	Layout string      `json:"layout" env:"LAYOUT"`
	Glyphs menu.Glyphs `json:"glyphs"`
	Input  InputConfig `json:"input"`
	HUD    HUDConfig   `json:"hud"`
	Log    LogConfig   `json:"log"`
}

// InputConfig controls how terminal keys become gamepad ticks
type InputConfig struct {
	FrameMs  int    `json:"frameMs" env:"FRAME_MS"`
	HoldMs   int    `json:"holdMs" env:"HOLD_MS"`
	LatchKey string `json:"latchKey" env:"LATCH_KEY"`
}

// HUDConfig sizes the overlay panel
type HUDConfig struct {
	Width    int `json:"width"`
	MinWidth int `json:"minWidth"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `json:"level" env:"LOG_LEVEL"`
	File  string `json:"file" env:"LOG_FILE"`
}

// SlogLevel parses Level, falling back to info.
func (c LogConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.Level))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Glyphs: menu.DefaultGlyphs,
		Input: InputConfig{
			FrameMs:  16,
			HoldMs:   250, // longer than the typical terminal auto-repeat delay
			LatchKey: "tab",
		},
		HUD: HUDConfig{
			Width:    48,
			MinWidth: 20,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from dir with priority:
// 1. PADMENU_* environment variables
// 2. .padmenu.json in dir (with version migration support)
// 3. Defaults
func LoadConfig(dir string) (*Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		parsed, err := ParseVersionedConfig(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
		}
		cfg = MergeWithDefaults(parsed)
	case !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Layout != "" && !filepath.IsAbs(cfg.Layout) {
		cfg.Layout = filepath.Join(dir, cfg.Layout)
	}

	return cfg, nil
}

// ApplyEnv overrides cfg from PADMENU_* environment variables.
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// SaveConfig saves configuration to the specified path with version information
func SaveConfig(cfg *Config, path string) error {
	data, err := MarshalVersionedConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	cfg.Glyphs = cfg.Glyphs.WithDefaults()

	if cfg.Input.FrameMs <= 0 {
		cfg.Input.FrameMs = defaults.Input.FrameMs
	}
	if cfg.Input.HoldMs <= 0 {
		cfg.Input.HoldMs = defaults.Input.HoldMs
	}
	if cfg.Input.LatchKey == "" {
		cfg.Input.LatchKey = defaults.Input.LatchKey
	}

	if cfg.HUD.MinWidth <= 0 {
		cfg.HUD.MinWidth = defaults.HUD.MinWidth
	}
	if cfg.HUD.Width <= 0 {
		cfg.HUD.Width = defaults.HUD.Width
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// Load is a convenience function that loads config from current directory
func Load() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return LoadConfig(cwd)
}

// String renders the config as indented JSON, for logging.
func (c *Config) String() string {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Sprintf("config: %v", err)
	}
	return string(data)
}
