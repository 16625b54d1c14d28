package menu

import (
	"testing"

	"github.com/riordanpawley/padmenu/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(b input.Button) input.State {
	return input.State{Trigger: b, Hold: b}
}

// mainMenu builds Main[Video[Resolution, Back], Audio[Volume], Exit].
func mainMenu(t *testing.T) (*Tree, ID, map[string]ID) {
	t.Helper()
	tree := NewTree(Glyphs{})
	ids := map[string]ID{}

	ids["resolution"] = tree.Add(NewSelect("Resolution", Options("720p", "1080p"), nil))
	ids["vsync"] = tree.Add(NewToggle("VSync", false, nil))
	ids["video"] = tree.Add(NewMenu("Video", ids["resolution"], ids["vsync"]))
	ids["volume"] = tree.Add(NewNumber("Volume", 5, 1, 0, 10, nil))
	ids["audio"] = tree.Add(NewMenu("Audio", ids["volume"]))
	ids["exit"] = tree.Add(NewButton("Exit", nil))
	root := tree.Add(NewMenu("Main", ids["video"], ids["audio"], ids["exit"]))

	return tree, root, ids
}

func TestMenu_RenderUnfocused(t *testing.T) {
	tree, root, _ := mainMenu(t)

	assert.Equal(t, "Main ⏎", tree.Render(root))
}

func TestMenu_EnterDrillsIntoFocusableItem(t *testing.T) {
	tree, root, ids := mainMenu(t)
	stack := NewStack(root)
	tree.Focus(root)

	assert.Equal(t, "◀　Video ⏎　▶", tree.Render(root))

	changed := tree.Control(stack.Top(), press(input.A), stack)

	require.True(t, changed)
	assert.Equal(t, 2, stack.Depth())
	assert.Equal(t, ids["video"], stack.Top())
	assert.Equal(t, "◀　Resolution: 720p ▲　▶", tree.Render(stack.Top()))
	assert.Equal(t, "◀　◀　Resolution: 720p ▲　▶　▶", tree.Render(root),
		"parent carousel wraps the child's own render")
}

func TestMenu_EnterIgnoresLowerBranches(t *testing.T) {
	tree, root, ids := mainMenu(t)
	stack := NewStack(root)
	tree.Focus(root)

	changed := tree.Control(root, press(input.A|input.Right|input.B), stack)

	assert.True(t, changed)
	assert.Equal(t, ids["video"], stack.Top())
	assert.Equal(t, 0, tree.Widget(root).(*Menu).Position())
}

func TestMenu_BackPopsOneLevel(t *testing.T) {
	tree, root, ids := mainMenu(t)
	stack := NewStack(root)
	tree.Focus(root)
	tree.Control(root, press(input.A), stack)

	changed := tree.Control(stack.Top(), press(input.B), stack)

	assert.True(t, changed)
	assert.Equal(t, 1, stack.Depth())
	assert.Equal(t, root, stack.Top())
	assert.False(t, tree.Widget(ids["video"]).(*Menu).Focused())
	assert.Equal(t, "Video ⏎", tree.Render(ids["video"]))
}

func TestMenu_BackAtRootIsNoop(t *testing.T) {
	tree, root, _ := mainMenu(t)
	stack := NewStack(root)
	tree.Focus(root)

	changed := tree.Control(root, press(input.B), stack)
	assert.False(t, changed)
	assert.Equal(t, 1, stack.Depth())
	assert.True(t, tree.Widget(root).(*Menu).Focused())

	// B wins over Right even when it does nothing.
	changed = tree.Control(root, press(input.B|input.Right), stack)
	assert.False(t, changed)
	assert.Equal(t, 0, tree.Widget(root).(*Menu).Position())
}

func TestMenu_CarouselIsCyclic(t *testing.T) {
	for n := 1; n <= 5; n++ {
		tree := NewTree(Glyphs{})
		items := make([]ID, n)
		for i := range items {
			items[i] = tree.Add(NewButton("b", nil))
		}
		root := tree.Add(NewMenu("m", items...))
		stack := NewStack(root)
		m := tree.Widget(root).(*Menu)

		for start := 0; start < n; start++ {
			for i := 0; i < start; i++ {
				tree.Control(root, press(input.Right), stack)
			}
			require.Equal(t, start, m.Position())

			for _, dir := range []input.Button{input.Right, input.Left} {
				for i := 0; i < n; i++ {
					assert.True(t, tree.Control(root, press(dir), stack))
				}
				assert.Equal(t, start, m.Position(), "n=%d start=%d dir=%s", n, start, dir)
			}

			// reset to 0
			for m.Position() != 0 {
				tree.Control(root, press(input.Left), stack)
			}
		}
	}
}

func TestMenu_LeftWrapsToLastItem(t *testing.T) {
	tree, root, ids := mainMenu(t)
	stack := NewStack(root)
	m := tree.Widget(root).(*Menu)

	tree.Control(root, press(input.Left), stack)

	assert.Equal(t, 2, m.Position())
	assert.Equal(t, ids["exit"], m.Current())
}

func TestMenu_DelegatesToCurrentItem(t *testing.T) {
	tree, root, ids := mainMenu(t)
	stack := NewStack(root)
	tree.Focus(root)
	tree.Control(root, press(input.Right), stack)
	tree.Control(root, press(input.A), stack)
	require.Equal(t, ids["audio"], stack.Top())

	changed := tree.Control(stack.Top(), press(input.Up), stack)

	assert.True(t, changed)
	assert.Equal(t, 6, tree.Widget(ids["volume"]).(*Number[int]).Value())
	assert.Equal(t, "◀　Volume: 6 ↕　▶", tree.Render(stack.Top()))
}

func TestMenu_AOnButtonRunsActionWithoutDrilling(t *testing.T) {
	tree := NewTree(Glyphs{})
	calls := 0
	btn := tree.Add(NewButton("Exit", func() { calls++ }))
	root := tree.Add(NewMenu("Main", btn))
	stack := NewStack(root)

	changed := tree.Control(root, press(input.A), stack)

	assert.False(t, changed)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, stack.Depth())
}

func TestNewMenu_PanicsWithoutItems(t *testing.T) {
	assert.Panics(t, func() { NewMenu("empty") })
}

func TestTree_AddRejectsUnknownChild(t *testing.T) {
	tree := NewTree(Glyphs{})
	assert.Panics(t, func() { tree.Add(NewMenu("m", ID(3))) })
	assert.Panics(t, func() { tree.Add(nil) })
	assert.Equal(t, 0, tree.Len())
}

func TestTree_ReentrantControlPanics(t *testing.T) {
	tree := NewTree(Glyphs{})
	var stack *Stack
	var root ID
	btn := tree.Add(NewButton("again", func() {
		tree.Control(root, press(input.A), stack)
	}))
	root = tree.Add(NewMenu("m", btn))
	stack = NewStack(root)

	assert.PanicsWithError(t, "menu: cannot control widget 1: already mutably borrowed", func() {
		tree.Control(root, press(input.A), stack)
	})

	// The guard is released once the panic unwinds.
	assert.Equal(t, "m ⏎", tree.Render(root))
}

func TestTree_RenderDuringControlPanics(t *testing.T) {
	tree := NewTree(Glyphs{})
	var root ID
	btn := tree.Add(NewButton("peek", func() { tree.Render(root) }))
	root = tree.Add(NewMenu("m", btn))
	stack := NewStack(root)

	assert.Panics(t, func() { tree.Control(root, press(input.A), stack) })
}

func TestTree_CustomGlyphs(t *testing.T) {
	tree := NewTree(Glyphs{Enter: "[>]"})
	btn := tree.Add(NewButton("x", nil))
	root := tree.Add(NewMenu("Main", btn))

	assert.Equal(t, "Main [>]", tree.Render(root))
	assert.Equal(t, DefaultGlyphs.Left, tree.Glyphs().Left)
}

func TestStack(t *testing.T) {
	s := NewStack(4)

	_, ok := s.Pop()
	assert.False(t, ok, "root cannot be popped")
	assert.Equal(t, 1, s.Depth())

	s.Push(7)
	s.Push(9)
	assert.Equal(t, ID(9), s.Top())
	assert.Equal(t, ID(4), s.Root())
	assert.Equal(t, []ID{4, 7, 9}, s.IDs())

	top, ok := s.Pop()
	assert.True(t, ok)
	assert.Equal(t, ID(9), top)
	assert.Equal(t, 2, s.Depth())

	ids := s.IDs()
	ids[0] = 99
	assert.Equal(t, ID(4), s.Root(), "IDs returns a copy")
}
