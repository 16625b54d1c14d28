package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButton_Has(t *testing.T) {
	set := L | R | A

	assert.True(t, set.Has(L|R))
	assert.True(t, set.Has(A))
	assert.False(t, set.Has(L|B))
	assert.True(t, set.Any(L|B))
	assert.False(t, set.Any(Up|Down))
	assert.True(t, None.Has(None))
}

func TestButton_String(t *testing.T) {
	assert.Equal(t, "None", None.String())
	assert.Equal(t, "A", A.String())
	assert.Equal(t, "Left|L|R", (R | L | Left).String())
}

func TestParseButtons(t *testing.T) {
	b, err := ParseButtons([]string{"l", "R", " a "})
	require.NoError(t, err)
	assert.Equal(t, L|R|A, b)

	_, err = ParseButtons([]string{"start"})
	assert.Error(t, err)
}

func TestState(t *testing.T) {
	s := State{Trigger: A, Hold: A | L | R}

	assert.True(t, s.Pressed(A))
	assert.False(t, s.Pressed(B))
	assert.True(t, s.Held(L|R))
	assert.False(t, s.Held(L|B))
}

func TestTracker(t *testing.T) {
	var tr Tracker

	s := tr.Next(L | R)
	assert.Equal(t, L|R, s.Trigger)
	assert.Equal(t, L|R, s.Hold)

	s = tr.Next(L | R | A)
	assert.Equal(t, A, s.Trigger, "only the newly pressed button triggers")

	s = tr.Next(L | R | A)
	assert.Equal(t, None, s.Trigger)
	assert.Equal(t, L|R|A, s.Hold)

	s = tr.Next(L | A)
	assert.Equal(t, None, s.Trigger, "release does not trigger")

	tr.Reset()
	s = tr.Next(L | A)
	assert.Equal(t, L|A, s.Trigger)
}

func TestKeyMap_Button(t *testing.T) {
	km := DefaultKeyMap("")

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Button
	}{
		{"enter is A", tea.KeyMsg{Type: tea.KeyEnter}, A},
		{"esc is B", tea.KeyMsg{Type: tea.KeyEsc}, B},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, Left},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, Right},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, Up},
		{"vim down", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, Down},
		{"shoulder L", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}}, L},
		{"shoulder R", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}}, R},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, km.Button(tt.msg))
		})
	}
}

func TestKeyMap_Latch(t *testing.T) {
	km := DefaultKeyMap("")
	assert.Equal(t, []string{"tab"}, km.Latch.Keys())

	km = DefaultKeyMap("ctrl+l")
	assert.Equal(t, []string{"ctrl+l"}, km.Latch.Keys())
	assert.Len(t, km.ShortHelp(), 8)
}
