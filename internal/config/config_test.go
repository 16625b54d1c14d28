package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/riordanpawley/padmenu/internal/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Empty(t, cfg.Layout)
	assert.Equal(t, menu.DefaultGlyphs, cfg.Glyphs)

	assert.Equal(t, 16, cfg.Input.FrameMs)
	assert.Equal(t, 250, cfg.Input.HoldMs)
	assert.Equal(t, "tab", cfg.Input.LatchKey)

	assert.Equal(t, 48, cfg.HUD.Width)
	assert.Equal(t, 20, cfg.HUD.MinWidth)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestLoadConfig_NoFile(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_PartialFile(t *testing.T) {
	tmpDir := t.TempDir()

	configContent := `{
  "version": 1,
  "layout": "menus/debug.yaml",
  "glyphs": {
    "enter": "→"
  },
  "input": {
    "holdMs": 400
  },
  "log": {
    "level": "debug",
    "file": "/tmp/padmenu.log"
  }
}`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte(configContent), 0644))

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "menus/debug.yaml"), cfg.Layout)
	assert.Equal(t, "→", cfg.Glyphs.Enter)
	assert.Equal(t, menu.DefaultGlyphs.Left, cfg.Glyphs.Left, "missing glyphs use defaults")

	assert.Equal(t, 400, cfg.Input.HoldMs)
	assert.Equal(t, 16, cfg.Input.FrameMs)
	assert.Equal(t, "tab", cfg.Input.LatchKey)

	assert.Equal(t, 48, cfg.HUD.Width)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "/tmp/padmenu.log", cfg.Log.File)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName), []byte("{not json"), 0644))

	_, err := LoadConfig(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), FileName)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, FileName),
		[]byte(`{"version": 1, "log": {"level": "debug"}}`), 0644))

	t.Setenv("PADMENU_LOG_LEVEL", "warn")
	t.Setenv("PADMENU_HOLD_MS", "120")
	t.Setenv("PADMENU_LAYOUT", "/etc/padmenu/menu.yaml")

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 120, cfg.Input.HoldMs)
	assert.Equal(t, "/etc/padmenu/menu.yaml", cfg.Layout)
	assert.Equal(t, 16, cfg.Input.FrameMs, "unset variables keep file/default values")
}

func TestLoadConfig_BadEnv(t *testing.T) {
	t.Setenv("PADMENU_FRAME_MS", "fast")

	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, FileName)

	cfg := DefaultConfig()
	cfg.Input.LatchKey = "ctrl+l"
	cfg.HUD.Width = 60

	require.NoError(t, SaveConfig(cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": 1`)

	loaded, err := LoadConfig(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "ctrl+l", loaded.Input.LatchKey)
	assert.Equal(t, 60, loaded.HUD.Width)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := MergeWithDefaults(&Config{
		Input: InputConfig{FrameMs: -5},
		HUD:   HUDConfig{Width: 30},
	})

	assert.Equal(t, 16, cfg.Input.FrameMs)
	assert.Equal(t, 30, cfg.HUD.Width)
	assert.Equal(t, 20, cfg.HUD.MinWidth)
	assert.Equal(t, menu.DefaultGlyphs, cfg.Glyphs)
}

func TestLogConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, LogConfig{Level: tt.level}.SlogLevel())
		})
	}
}
