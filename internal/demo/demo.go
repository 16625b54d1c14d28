// Package demo holds the sample settings both hosts expose through the
// overlay, and the layout that binds them.
package demo

import (
	_ "embed"
	"fmt"
	"log/slog"

	"github.com/riordanpawley/padmenu/internal/layout"
	"github.com/riordanpawley/padmenu/internal/menu"
)

// Layout is the built-in menu used when no layout file is configured.
//
//go:embed demo.yaml
var Layout []byte

// Settings is the host state the demo menu edits.
type Settings struct {
	Resolution string
	VSync      bool
	Brightness int
	Volume     int
	Mute       bool
	Difficulty string
	Speed      float64

	Frames int
	Resets int
	Quit   bool

	logger *slog.Logger
}

// NewSettings returns settings matching the defaults in Layout.
func NewSettings(logger *slog.Logger) *Settings {
	if logger == nil {
		logger = slog.Default()
	}
	return &Settings{
		Resolution: "1080p",
		VSync:      true,
		Brightness: 50,
		Volume:     5,
		Difficulty: "Normal",
		Speed:      1,
		logger:     logger,
	}
}

// Tick advances the frame counter shown by the "frame" readout.
func (s *Settings) Tick() {
	s.Frames++
}

// Status summarises the applied settings on one line.
func (s *Settings) Status() string {
	vol := fmt.Sprintf("vol %d", s.Volume)
	if s.Mute {
		vol = "muted"
	}
	return fmt.Sprintf("%s %s x%.2f %s", s.Resolution, s.Difficulty, s.Speed, vol)
}

// Bindings exposes the settings to a layout.
func (s *Settings) Bindings() layout.Bindings {
	return layout.Bindings{
		Actions: map[string]func(){
			"reset": func() {
				s.Resets++
				s.Frames = 0
				s.logger.Info("stats reset")
			},
			"quit": func() {
				s.Quit = true
				s.logger.Info("quit requested")
			},
		},
		Producers: map[string]func() string{
			"frame":  func() string { return fmt.Sprintf("Frame %d", s.Frames) },
			"status": s.Status,
		},
		Ints: map[string]func(int){
			"brightness": func(v int) { s.Brightness = v; s.logger.Info("brightness applied", "value", v) },
			"volume":     func(v int) { s.Volume = v; s.logger.Info("volume applied", "value", v) },
		},
		Floats: map[string]func(float64){
			"speed": func(v float64) { s.Speed = v; s.logger.Info("speed applied", "value", v) },
		},
		Choices: map[string]func(int, string){
			"resolution": func(_ int, name string) { s.Resolution = name; s.logger.Info("resolution applied", "value", name) },
			"difficulty": func(_ int, name string) { s.Difficulty = name; s.logger.Info("difficulty applied", "value", name) },
		},
		Switches: map[string]func(bool){
			"vsync": func(v bool) { s.VSync = v; s.logger.Info("vsync toggled", "value", v) },
			"mute":  func(v bool) { s.Mute = v; s.logger.Info("mute toggled", "value", v) },
		},
	}
}

// Build loads the layout at path, or Layout when path is empty, bound to s.
func (s *Settings) Build(path string, glyphs menu.Glyphs) (*menu.Tree, menu.ID, error) {
	if path == "" {
		return layout.Parse(Layout, glyphs, s.Bindings())
	}
	return layout.Load(path, glyphs, s.Bindings())
}
