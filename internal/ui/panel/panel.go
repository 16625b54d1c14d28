// Package panel renders the overlay HUD as a lipgloss panel inside the
// terminal host. Panel satisfies hud.Sink.
package panel

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/padmenu/internal/hud"
	"github.com/riordanpawley/padmenu/internal/ui/styles"
)

// Panel is a single on-screen HUD slot. At most one handle is live at a
// time; creating a new one retires the previous.
type Panel struct {
	mu       sync.Mutex
	styles   *styles.Styles
	width    int
	minWidth int
	avail    int
	title    string
	text     string
	live     *panelHandle
}

var _ hud.Sink = (*Panel)(nil)

// New creates a Panel that draws at most width columns and refuses to show
// when the terminal is narrower than minWidth.
func New(s *styles.Styles, width, minWidth int) *Panel {
	return &Panel{
		styles:   s,
		width:    width,
		minWidth: minWidth,
	}
}

// SetTitle sets the dim caption drawn above the HUD text.
func (p *Panel) SetTitle(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.title = title
}

// Resize records the terminal width the panel is drawn into.
func (p *Panel) Resize(termWidth int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.avail = termWidth
}

// Create shows the panel with the initial text.
func (p *Panel) Create(initial string) (hud.Handle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.avail < p.minWidth {
		return nil, &hud.Error{Op: "create", Err: hud.ErrUnavailable}
	}

	if p.live != nil {
		p.live.closed = true
	}
	h := &panelHandle{panel: p}
	p.live = h
	p.text = initial
	return h, nil
}

// Visible reports whether a live handle is showing the panel.
func (p *Panel) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.live != nil
}

// Text returns the text currently shown, or "" when hidden.
func (p *Panel) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live == nil {
		return ""
	}
	return p.text
}

// View renders the panel, or "" when hidden.
func (p *Panel) View() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.live == nil {
		return ""
	}

	w := p.width
	if p.avail-2 < w {
		w = p.avail - 2
	}
	if w < 1 {
		w = 1
	}

	body := p.styles.HUDText.Render(p.text)
	if p.title != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, p.styles.HUDTitle.Render(p.title), body)
	}
	return p.styles.HUD.Width(w).Render(body)
}

type panelHandle struct {
	panel  *Panel
	closed bool
}

func (h *panelHandle) SetText(text string) error {
	p := h.panel
	p.mu.Lock()
	defer p.mu.Unlock()

	if h.closed {
		return &hud.Error{Op: "set text", Err: hud.ErrClosed}
	}
	p.text = text
	return nil
}

func (h *panelHandle) Close() error {
	p := h.panel
	p.mu.Lock()
	defer p.mu.Unlock()

	if h.closed {
		return &hud.Error{Op: "close", Err: hud.ErrClosed}
	}
	h.closed = true
	if p.live == h {
		p.live = nil
		p.text = ""
	}
	return nil
}
