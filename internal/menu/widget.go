// Package menu implements the widget tree behind the gamepad overlay: a
// carousel Menu composite, five leaf controls, and the focus stack used for
// drill-down navigation.
//
// Widgets live in a Tree arena and refer to each other by ID. Each arena
// slot tracks whether it is being read or mutated; re-entering a widget that
// is already being mutated is a programming error and panics with a
// *BorrowError rather than corrupting state.
package menu

import (
	"fmt"

	"github.com/riordanpawley/padmenu/internal/input"
)

// Widget is implemented by every menu entry. The set of implementations is
// closed: Menu, Button, Text, Number, Select and Toggle.
type Widget interface {
	// Render returns the widget's current single-line text. It must not
	// change state and must not assume Focus was called.
	Render(t *Tree) string

	// Control applies one tick of input and reports whether anything
	// visible changed. It may push or pop nav.Stack.
	Control(in input.State, nav *Nav) bool

	// Focus is called before the widget is pushed onto the focus stack.
	Focus()

	// Focusable reports whether the widget can be drilled into.
	Focusable() bool

	widget()
}

// leaf supplies the default hooks for widgets without children.
type leaf struct{}

func (leaf) Focus()          {}
func (leaf) Focusable() bool { return false }
func (leaf) widget()         {}

// Nav is what a widget may touch while handling input.
type Nav struct {
	Tree  *Tree
	Stack *Stack
}

// ID addresses a widget in a Tree.
type ID int

// BorrowError is the panic value raised when a widget is accessed while a
// conflicting access is in progress.
type BorrowError struct {
	ID   ID
	Op   string
	Held string
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("menu: cannot %s widget %d: already %s", e.Op, e.ID, e.Held)
}

type slot struct {
	w Widget
	// borrow is 0 when free, >0 for active readers and -1 for a writer.
	borrow int
}

// Tree is the arena owning every widget of a menu.
type Tree struct {
	slots  []slot
	glyphs Glyphs
}

// NewTree creates an empty tree. Empty glyph fields fall back to DefaultGlyphs.
func NewTree(g Glyphs) *Tree {
	return &Tree{glyphs: g.WithDefaults()}
}

// Glyphs returns the icon placeholders used when rendering.
func (t *Tree) Glyphs() Glyphs {
	return t.glyphs
}

// Len returns the number of widgets in the tree.
func (t *Tree) Len() int {
	return len(t.slots)
}

// Add stores w and returns its ID. A Menu may only reference widgets that
// were added before it, which keeps the tree acyclic.
func (t *Tree) Add(w Widget) ID {
	if w == nil {
		panic("menu: Add called with nil widget")
	}
	if m, ok := w.(*Menu); ok {
		for _, item := range m.items {
			t.check(item)
		}
	}
	t.slots = append(t.slots, slot{w: w})
	return ID(len(t.slots) - 1)
}

// Widget returns the widget stored at id for inspection. The returned value
// is not borrow-tracked and must not be mutated while the tree is in use.
func (t *Tree) Widget(id ID) Widget {
	t.check(id)
	return t.slots[id].w
}

// Render renders the widget at id.
func (t *Tree) Render(id ID) string {
	t.read(id, "render")
	defer t.release(id)
	return t.slots[id].w.Render(t)
}

// Focusable reports whether the widget at id can be drilled into.
func (t *Tree) Focusable(id ID) bool {
	t.read(id, "inspect")
	defer t.release(id)
	return t.slots[id].w.Focusable()
}

// Focus calls the focus hook of the widget at id.
func (t *Tree) Focus(id ID) {
	t.write(id, "focus")
	defer t.release(id)
	t.slots[id].w.Focus()
}

// Control forwards a tick of input to the widget at id.
func (t *Tree) Control(id ID, in input.State, stack *Stack) bool {
	t.write(id, "control")
	defer t.release(id)
	return t.slots[id].w.Control(in, &Nav{Tree: t, Stack: stack})
}

func (t *Tree) check(id ID) {
	if id < 0 || int(id) >= len(t.slots) {
		panic(fmt.Sprintf("menu: unknown widget id %d", id))
	}
}

func (t *Tree) read(id ID, op string) {
	t.check(id)
	if t.slots[id].borrow < 0 {
		panic(&BorrowError{ID: id, Op: op, Held: "mutably borrowed"})
	}
	t.slots[id].borrow++
}

func (t *Tree) write(id ID, op string) {
	t.check(id)
	switch b := t.slots[id].borrow; {
	case b < 0:
		panic(&BorrowError{ID: id, Op: op, Held: "mutably borrowed"})
	case b > 0:
		panic(&BorrowError{ID: id, Op: op, Held: "borrowed"})
	}
	t.slots[id].borrow = -1
}

func (t *Tree) release(id ID) {
	if t.slots[id].borrow < 0 {
		t.slots[id].borrow = 0
		return
	}
	t.slots[id].borrow--
}
