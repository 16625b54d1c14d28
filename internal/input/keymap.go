package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMap binds terminal keys to gamepad buttons for hosts that run in a
// terminal instead of on a console.
type KeyMap struct {
	A     key.Binding
	B     key.Binding
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding
	L     key.Binding
	R     key.Binding

	// Latch toggles a persistent L+R hold, since terminals cannot report
	// two keys held at once.
	Latch key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default bindings with latch on the given key.
func DefaultKeyMap(latchKey string) KeyMap {
	if latchKey == "" {
		latchKey = "tab"
	}
	return KeyMap{
		A:     key.NewBinding(key.WithKeys("enter", "z"), key.WithHelp("enter/z", "A")),
		B:     key.NewBinding(key.WithKeys("esc", "backspace", "x"), key.WithHelp("esc/x", "B")),
		Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		L:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "L")),
		R:     key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "R")),
		Latch: key.NewBinding(key.WithKeys(latchKey), key.WithHelp(latchKey, "hold L+R")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// Button returns the buttons bound to msg, or None.
func (k KeyMap) Button(msg tea.KeyMsg) Button {
	var b Button
	for _, kb := range k.buttons() {
		if key.Matches(msg, kb.binding) {
			b |= kb.button
		}
	}
	return b
}

// ShortHelp returns the bindings shown in the host status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Latch, k.A, k.B, k.Left, k.Right, k.Up, k.Down, k.Quit}
}

func (k KeyMap) buttons() []struct {
	button  Button
	binding key.Binding
} {
	return []struct {
		button  Button
		binding key.Binding
	}{
		{A, k.A},
		{B, k.B},
		{Left, k.Left},
		{Right, k.Right},
		{Up, k.Up},
		{Down, k.Down},
		{L, k.L},
		{R, k.R},
	}
}
