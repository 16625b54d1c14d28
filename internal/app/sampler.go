package app

import (
	"time"

	"github.com/riordanpawley/padmenu/internal/input"
)

var allButtons = []input.Button{
	input.A, input.B,
	input.Left, input.Right, input.Up, input.Down,
	input.L, input.R,
}

// sampler turns terminal key events into one input.State per frame.
//
// Terminals only report presses, so a button counts as held for window after
// its last press. The latch stands in for holding L+R.
type sampler struct {
	window  time.Duration
	seen    map[input.Button]time.Time
	pending input.Button
	latched bool
	tracker input.Tracker
}

func newSampler(window time.Duration) *sampler {
	return &sampler{
		window: window,
		seen:   make(map[input.Button]time.Time),
	}
}

func (s *sampler) press(b input.Button, at time.Time) {
	s.pending |= b
	for _, bit := range allButtons {
		if b.Has(bit) {
			s.seen[bit] = at
		}
	}
}

func (s *sampler) toggleLatch() bool {
	s.latched = !s.latched
	return s.latched
}

// sample consumes the presses since the previous frame.
func (s *sampler) sample(now time.Time) input.State {
	hold := s.pending
	for bit, at := range s.seen {
		if now.Sub(at) < s.window {
			hold |= bit
		} else {
			delete(s.seen, bit)
		}
	}
	if s.latched {
		hold |= input.L | input.R
	}

	st := s.tracker.Next(hold)
	// Auto-repeat presses a held key again.
	st.Trigger |= s.pending
	s.pending = input.None
	return st
}
