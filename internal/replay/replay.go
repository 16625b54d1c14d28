// Package replay runs a scripted sequence of input ticks through an overlay
// controller without a terminal, reporting what the HUD showed on each tick.
package replay

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/riordanpawley/padmenu/internal/hud"
	"github.com/riordanpawley/padmenu/internal/input"
	"github.com/riordanpawley/padmenu/internal/menu"
	"github.com/riordanpawley/padmenu/internal/overlay"
	"gopkg.in/yaml.v3"
)

// Script is a list of steps. Each step becomes Repeat ticks (default 1).
//
//	ticks:
//	  - hold: [L, R]
//	  - hold: [L, R]
//	    press: [Right]
//	  - press: [Up]
//	    hold: [L, R]
//	    repeat: 3
//	  - {}
type Script struct {
	Ticks []Step `yaml:"ticks"`
}

// Step is one or more identical ticks. Pressed buttons are also held.
//
// FailHUD makes HUD creation fail on a tick of this step that opens the
// overlay. It has no effect on ticks where the overlay is already open or
// stays closed, and never carries over to later steps.
type Step struct {
	Hold    []string `yaml:"hold,omitempty"`
	Press   []string `yaml:"press,omitempty"`
	Repeat  int      `yaml:"repeat,omitempty"`
	FailHUD bool     `yaml:"failHud,omitempty"`
}

// EventKind says what happened to the HUD.
type EventKind int

const (
	Show EventKind = iota
	Update
	Hide
	Fail
)

func (k EventKind) String() string {
	switch k {
	case Show:
		return "show"
	case Update:
		return "update"
	case Hide:
		return "hide"
	case Fail:
		return "fail"
	default:
		return "unknown"
	}
}

// Event is one HUD change.
type Event struct {
	Tick int
	Kind EventKind
	Text string
}

func (e Event) String() string {
	if e.Text == "" {
		return fmt.Sprintf("%4d %-6s", e.Tick, e.Kind)
	}
	return fmt.Sprintf("%4d %-6s %s", e.Tick, e.Kind, e.Text)
}

// Result is the outcome of a replay.
type Result struct {
	Events []Event
	Ticks  int
	Depth  int
}

// LoadScript reads a YAML script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes a YAML script, rejecting unknown buttons.
func ParseScript(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, step := range s.Ticks {
		if _, err := step.State(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if step.Repeat < 0 {
			return nil, fmt.Errorf("step %d: negative repeat %d", i, step.Repeat)
		}
	}
	return &s, nil
}

// State converts the step into one input tick.
func (s Step) State() (input.State, error) {
	hold, err := input.ParseButtons(s.Hold)
	if err != nil {
		return input.State{}, err
	}
	press, err := input.ParseButtons(s.Press)
	if err != nil {
		return input.State{}, err
	}
	return input.State{Trigger: press, Hold: hold | press}, nil
}

// Run plays script against the menu rooted at root. tick, if non-nil, is
// called before every tick so hosts can advance their own state.
func Run(script *Script, tree *menu.Tree, root menu.ID, tick func(), logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	rec := hud.NewRecorder()
	ctrl := overlay.New(tree, root, rec, logger)
	res := &Result{}

	for i, step := range script.Ticks {
		in, err := step.State()
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		repeat := step.Repeat
		if repeat == 0 {
			repeat = 1
		}

		for r := 0; r < repeat; r++ {
			res.Ticks++
			opening := !ctrl.Active() && in.Held(overlay.Gesture)
			if step.FailHUD && opening {
				rec.Fail(1)
			}
			if tick != nil {
				tick()
			}

			frames := len(rec.Frames())
			created := rec.Created()
			wasActive := ctrl.Active()
			wasVisible := rec.Visible()

			ctrl.Run(in)
			rec.Fail(0)

			res.Events = append(res.Events, diff(res.Ticks, rec, frames, created, wasActive, wasVisible, ctrl)...)
		}
	}

	// A script that ends with the gesture held still hides the HUD.
	if ctrl.Visible() {
		res.Events = append(res.Events, Event{Tick: res.Ticks, Kind: Hide})
	}
	ctrl.Close()
	res.Depth = ctrl.Depth()
	logger.Debug("replay finished", "ticks", res.Ticks, "events", len(res.Events), "depth", res.Depth)
	return res, nil
}

func diff(tick int, rec *hud.Recorder, frames, created int, wasActive, wasVisible bool, ctrl *overlay.Controller) []Event {
	var events []Event
	all := rec.Frames()[frames:]

	if rec.Created() > created && len(all) > 0 {
		events = append(events, Event{Tick: tick, Kind: Show, Text: all[0]})
		all = all[1:]
	} else if !wasActive && ctrl.Active() && !ctrl.Visible() {
		events = append(events, Event{Tick: tick, Kind: Fail})
	}

	for _, text := range all {
		events = append(events, Event{Tick: tick, Kind: Update, Text: text})
	}

	if wasVisible && !rec.Visible() {
		events = append(events, Event{Tick: tick, Kind: Hide})
	}
	return events
}
