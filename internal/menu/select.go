package menu

import (
	"fmt"

	"github.com/riordanpawley/padmenu/internal/input"
)

// Option is one named choice of a Select.
type Option[T any] struct {
	Name  string
	Value T
}

// Options builds string options whose value is their name.
func Options(names ...string) []Option[string] {
	out := make([]Option[string], len(names))
	for i, name := range names {
		out[i] = Option[string]{Name: name, Value: name}
	}
	return out
}

// Select picks one of a fixed list of options. Unlike the Menu carousel it
// does not wrap around.
type Select[T any] struct {
	leaf
	label   string
	options []Option[T]
	index   int
	action  func(int, *Option[T])
}

// NewSelect creates a select on the first option. It panics if options is
// empty. action runs on A with the current index and option.
func NewSelect[T any](label string, options []Option[T], action func(int, *Option[T])) *Select[T] {
	if len(options) == 0 {
		panic(fmt.Sprintf("menu: select %q needs at least one option", label))
	}
	return &Select[T]{
		label:   label,
		options: append([]Option[T](nil), options...),
		action:  action,
	}
}

// Index returns the current option index.
func (s *Select[T]) Index() int { return s.index }

// Selected returns the current option.
func (s *Select[T]) Selected() Option[T] { return s.options[s.index] }

// SetIndex moves to option i, reporting false if i is out of range.
func (s *Select[T]) SetIndex(i int) bool {
	if i < 0 || i >= len(s.options) {
		return false
	}
	s.index = i
	return true
}

func (s *Select[T]) Render(t *Tree) string {
	icon := t.Glyphs().bounds(s.index == 0, s.index == len(s.options)-1)
	return fmt.Sprintf("%s: %s %s", s.label, s.options[s.index].Name, icon)
}

// Control reports a change for every Up or Down press, including presses
// against either end of the list.
func (s *Select[T]) Control(in input.State, _ *Nav) bool {
	changed := false

	if in.Pressed(input.Up) {
		if s.index < len(s.options)-1 {
			s.index++
		}
		changed = true
	}

	if in.Pressed(input.Down) {
		if s.index > 0 {
			s.index--
		}
		changed = true
	}

	if in.Pressed(input.A) && s.action != nil {
		s.action(s.index, &s.options[s.index])
	}

	return changed
}
