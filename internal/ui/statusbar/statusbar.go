package statusbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/padmenu/internal/input"
	"github.com/riordanpawley/padmenu/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the host
type StatusBar struct {
	state  styles.OverlayState
	depth  int
	width  int
	keys   input.KeyMap
	styles *styles.Styles
}

// New creates a StatusBar for the given overlay state and focus depth
func New(state styles.OverlayState, depth, width int, keys input.KeyMap, s *styles.Styles) StatusBar {
	return StatusBar{
		state:  state,
		depth:  depth,
		width:  width,
		keys:   keys,
		styles: s,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	badge := sb.styles.Badge(sb.state).Render(sb.state.String())

	info := sb.styles.StatusInfo.Render(fmt.Sprintf(" depth %d", sb.depth))

	hints := GetHints(sb.state, sb.keys)
	separator := sb.styles.StatusHint.Render(" │ ")
	content := lipgloss.JoinHorizontal(lipgloss.Left,
		badge, info, separator, sb.styles.StatusHint.Render(hints))

	// Clip rather than wrap so the bar stays one line on narrow terminals.
	if inner := sb.width - 2; inner > 0 && lipgloss.Width(content) > inner {
		content = lipgloss.NewStyle().MaxWidth(inner).Render(content)
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
