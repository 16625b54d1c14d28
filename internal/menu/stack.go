package menu

// Stack is the focus stack: the drill-down path from the root to the widget
// currently receiving input. The root is never popped.
type Stack struct {
	ids []ID
}

// NewStack creates a stack holding only root.
func NewStack(root ID) *Stack {
	return &Stack{ids: []ID{root}}
}

// Push makes id the top of the stack.
func (s *Stack) Push(id ID) {
	s.ids = append(s.ids, id)
}

// Pop removes the top entry. It returns false, leaving the stack untouched,
// when only the root remains.
func (s *Stack) Pop() (ID, bool) {
	if len(s.ids) <= 1 {
		return 0, false
	}
	top := s.ids[len(s.ids)-1]
	s.ids = s.ids[:len(s.ids)-1]
	return top, true
}

// Top returns the widget receiving input.
func (s *Stack) Top() ID {
	return s.ids[len(s.ids)-1]
}

// Root returns the bottom entry.
func (s *Stack) Root() ID {
	return s.ids[0]
}

// Depth returns the number of entries, always at least 1.
func (s *Stack) Depth() int {
	return len(s.ids)
}

// IDs returns a copy of the path from root to top.
func (s *Stack) IDs() []ID {
	out := make([]ID, len(s.ids))
	copy(out, s.ids)
	return out
}
