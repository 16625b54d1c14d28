package menu

import "github.com/riordanpawley/padmenu/internal/input"

// Button runs an action when A is pressed.
type Button struct {
	leaf
	label  string
	action func()
}

// NewButton creates a button. A nil action makes the button inert.
func NewButton(label string, action func()) *Button {
	return &Button{label: label, action: action}
}

func (b *Button) Render(*Tree) string {
	return "<" + b.label + ">"
}

// Control never reports a change: whatever the action affects is expected
// to be redrawn by its owner.
func (b *Button) Control(in input.State, _ *Nav) bool {
	if in.Pressed(input.A) && b.action != nil {
		b.action()
	}
	return false
}
