// Package styles holds the lipgloss styles shared by the terminal host.
package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains all the lipgloss styles for the UI
type Styles struct {
	// Scene
	Scene      lipgloss.Style
	SceneTitle lipgloss.Style
	SceneLabel lipgloss.Style
	SceneValue lipgloss.Style

	// HUD panel
	HUD      lipgloss.Style
	HUDText  lipgloss.Style
	HUDTitle lipgloss.Style

	// Status bar
	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style
	StatusHint lipgloss.Style
	StatusKey  lipgloss.Style
	StatusInfo lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastWarning lipgloss.Style
	ToastError   lipgloss.Style
}

// New creates a new Styles instance with Catppuccin Macchiato theme
func New() *Styles {
	return &Styles{
		Scene: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Surface1).
			Padding(1, 2),

		SceneTitle: lipgloss.NewStyle().
			Foreground(Mauve).
			Bold(true).
			MarginBottom(1),

		SceneLabel: lipgloss.NewStyle().
			Foreground(Subtext0).
			Width(12),

		SceneValue: lipgloss.NewStyle().
			Foreground(Text),

		HUD: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Teal).
			Background(Mantle).
			Padding(0, 1),

		HUDText: lipgloss.NewStyle().
			Foreground(Text).
			Bold(true),

		HUDTitle: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusBar: lipgloss.NewStyle().
			Background(Surface0).
			Foreground(Subtext0).
			Padding(0, 1),

		StatusMode: lipgloss.NewStyle().
			Foreground(Base).
			Bold(true).
			Padding(0, 1),

		StatusHint: lipgloss.NewStyle().
			Foreground(Overlay1),

		StatusKey: lipgloss.NewStyle().
			Foreground(Yellow).
			Bold(true),

		StatusInfo: lipgloss.NewStyle().
			Foreground(Subtext0),

		ToastInfo: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Blue).
			Foreground(Blue).
			Padding(0, 1),

		ToastWarning: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Yellow).
			Foreground(Yellow).
			Padding(0, 1),

		ToastError: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(Red).
			Foreground(Red).
			Padding(0, 1),
	}
}

// Badge returns the status bar badge style for an overlay state
func (s *Styles) Badge(state OverlayState) lipgloss.Style {
	color, ok := StateColors[state]
	if !ok {
		color = Overlay0
	}
	return s.StatusMode.Background(color)
}
