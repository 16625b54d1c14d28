// Package toast renders short-lived host notices under the scene.
package toast

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/padmenu/internal/ui/styles"
)

// Level indicates the severity of a toast
type Level int

const (
	Info Level = iota
	Warning
	Error
)

// Toast represents a notification message
type Toast struct {
	Level   Level
	Message string
	Expires time.Time
}

// Expire drops the toasts that have expired at now.
func Expire(toasts []Toast, now time.Time) []Toast {
	kept := toasts[:0]
	for _, t := range toasts {
		if now.Before(t.Expires) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Renderer handles rendering of toast notifications
type Renderer struct {
	styles *styles.Styles
}

// New creates a new Renderer with the given styles
func New(styles *styles.Styles) *Renderer {
	return &Renderer{
		styles: styles,
	}
}

// Render stacks toasts right-aligned. Returns "" if there is nothing to show.
func (r *Renderer) Render(toasts []Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	toastWidth := width / 2
	if toastWidth > 48 {
		toastWidth = 48
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		rendered = append(rendered, r.styleForLevel(t.Level).Width(toastWidth).Render(t.Message))
	}

	stack := lipgloss.JoinVertical(lipgloss.Right, rendered...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, stack)
}

func (r *Renderer) styleForLevel(level Level) lipgloss.Style {
	switch level {
	case Warning:
		return r.styles.ToastWarning
	case Error:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
