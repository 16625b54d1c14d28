package statusbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/riordanpawley/padmenu/internal/input"
	"github.com/riordanpawley/padmenu/internal/ui/styles"
)

// GetHints returns the keybinding hints for the given overlay state.
// While idle only the gesture and quit keys matter.
func GetHints(state styles.OverlayState, keys input.KeyMap) string {
	var bindings []key.Binding
	switch state {
	case styles.StateIdle:
		bindings = []key.Binding{keys.Latch, keys.Quit}
	default:
		bindings = keys.ShortHelp()
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
