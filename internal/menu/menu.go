package menu

import (
	"fmt"

	"github.com/riordanpawley/padmenu/internal/input"
)

// Menu is a named list of child widgets shown one at a time as a carousel.
type Menu struct {
	name    string
	items   []ID
	pos     int
	focused bool
}

// NewMenu creates a menu over items, positioned on the first one. It panics
// if items is empty.
func NewMenu(name string, items ...ID) *Menu {
	if len(items) == 0 {
		panic(fmt.Sprintf("menu: %q needs at least one item", name))
	}
	return &Menu{
		name:  name,
		items: append([]ID(nil), items...),
	}
}

// Name returns the menu label.
func (m *Menu) Name() string { return m.name }

// Position returns the index of the current item.
func (m *Menu) Position() int { return m.pos }

// Current returns the ID of the current item.
func (m *Menu) Current() ID { return m.items[m.pos] }

// Len returns the number of items.
func (m *Menu) Len() int { return len(m.items) }

// Focused reports whether the menu is showing its carousel.
func (m *Menu) Focused() bool { return m.focused }

func (m *Menu) Focus()          { m.focused = true }
func (m *Menu) Focusable() bool { return true }
func (m *Menu) widget()         {}

// Render shows "name ⏎" when unfocused, otherwise the current item between
// the left and right arrows.
func (m *Menu) Render(t *Tree) string {
	g := t.Glyphs()
	if !m.focused {
		return fmt.Sprintf("%s %s", m.name, g.Enter)
	}
	return g.Left + WideSpace + t.Render(m.items[m.pos]) + WideSpace + g.Right
}

// Control handles, in priority order: A on a focusable item (drill in), B
// (drill out unless at the root), Left, Right; anything else goes to the
// current item.
func (m *Menu) Control(in input.State, nav *Nav) bool {
	item := m.items[m.pos]

	switch {
	case in.Pressed(input.A) && nav.Tree.Focusable(item):
		nav.Tree.Focus(item)
		nav.Stack.Push(item)
		return true

	case in.Pressed(input.B):
		if nav.Stack.Depth() <= 1 {
			return false
		}
		m.focused = false
		nav.Stack.Pop()
		return true

	case in.Pressed(input.Left):
		m.pos = (m.pos + len(m.items) - 1) % len(m.items)
		return true

	case in.Pressed(input.Right):
		m.pos = (m.pos + 1) % len(m.items)
		return true

	default:
		return nav.Tree.Control(item, in, nav.Stack)
	}
}
