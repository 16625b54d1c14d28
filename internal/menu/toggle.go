package menu

import "github.com/riordanpawley/padmenu/internal/input"

// Toggle is a boolean switch flipped with A.
type Toggle struct {
	leaf
	label  string
	value  bool
	action func(bool)
}

// NewToggle creates a toggle with an initial value. action receives the new
// value after each flip.
func NewToggle(label string, value bool, action func(bool)) *Toggle {
	return &Toggle{label: label, value: value, action: action}
}

// Value returns the current state.
func (g *Toggle) Value() bool { return g.value }

func (g *Toggle) Render(*Tree) string {
	mark := "  "
	if g.value {
		mark = "X"
	}
	return g.label + " [" + mark + "]"
}

func (g *Toggle) Control(in input.State, _ *Nav) bool {
	if !in.Pressed(input.A) {
		return false
	}
	g.value = !g.value
	if g.action != nil {
		g.action(g.value)
	}
	return true
}
