package menu

import "github.com/riordanpawley/padmenu/internal/input"

// Text is a live read-only line, recomputed on every render.
type Text struct {
	leaf
	producer func() string
}

// NewText creates a text line backed by producer.
func NewText(producer func() string) *Text {
	return &Text{producer: producer}
}

func (x *Text) Render(*Tree) string {
	if x.producer == nil {
		return ""
	}
	return x.producer()
}

// Control always reports a change so a focused readout refreshes every tick.
func (x *Text) Control(input.State, *Nav) bool {
	return true
}
