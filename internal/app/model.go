// Package app contains the terminal host: a bubbletea program that runs the
// overlay controller once per frame over a small demo scene.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riordanpawley/padmenu/internal/config"
	"github.com/riordanpawley/padmenu/internal/demo"
	"github.com/riordanpawley/padmenu/internal/input"
	"github.com/riordanpawley/padmenu/internal/overlay"
	"github.com/riordanpawley/padmenu/internal/ui/panel"
	"github.com/riordanpawley/padmenu/internal/ui/statusbar"
	"github.com/riordanpawley/padmenu/internal/ui/styles"
	"github.com/riordanpawley/padmenu/internal/ui/toast"
)

const (
	latchToastTTL = 2 * time.Second
	hudToastTTL   = 4 * time.Second
)

// Model is the host application state
type Model struct {
	// Overlay
	ctrl     *overlay.Controller
	panel    *panel.Panel
	settings *demo.Settings

	// Input
	keys    input.KeyMap
	sampler *sampler
	frame   time.Duration
	now     func() time.Time

	toasts []toast.Toast

	// Terminal size
	width  int
	height int

	styles *styles.Styles
	config *config.Config
	logger *slog.Logger
}

type frameMsg time.Time

// New builds the host from cfg. The menu comes from cfg.Layout, or the
// built-in demo layout when that is empty.
func New(cfg *config.Config, logger *slog.Logger) (Model, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg = config.MergeWithDefaults(cfg)

	settings := demo.NewSettings(logger)
	tree, root, err := settings.Build(cfg.Layout, cfg.Glyphs)
	if err != nil {
		return Model{}, fmt.Errorf("failed to build menu: %w", err)
	}

	s := styles.New()
	p := panel.New(s, cfg.HUD.Width, cfg.HUD.MinWidth)
	p.SetTitle("debug")

	return Model{
		ctrl:     overlay.New(tree, root, p, logger),
		panel:    p,
		settings: settings,
		keys:     input.DefaultKeyMap(cfg.Input.LatchKey),
		sampler:  newSampler(time.Duration(cfg.Input.HoldMs) * time.Millisecond),
		frame:    time.Duration(cfg.Input.FrameMs) * time.Millisecond,
		now:      time.Now,
		styles:   s,
		config:   cfg,
		logger:   logger,
	}, nil
}

// Init starts the frame clock
func (m Model) Init() tea.Cmd {
	return frameEvery(m.frame)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.panel.Resize(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		now := time.Time(msg)
		m.toasts = toast.Expire(m.toasts, now)

		prev := m.State()
		m.settings.Tick()
		m.ctrl.Run(m.sampler.sample(now))
		if m.State() == styles.StateHeadless && prev != styles.StateHeadless {
			m.addToast(toast.Warning, fmt.Sprintf("HUD unavailable: terminal narrower than %d columns", m.config.HUD.MinWidth), now.Add(hudToastTTL))
		}
		if m.settings.Quit {
			m.ctrl.Close()
			return m, tea.Quit
		}
		return m, frameEvery(m.frame)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.ctrl.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Latch):
		latched := m.sampler.toggleLatch()
		m.logger.Debug("gesture latch toggled", "latched", latched)
		notice := "L+R released"
		if latched {
			notice = "L+R latched"
		}
		m.addToast(toast.Info, notice, m.now().Add(latchToastTTL))
		return m, nil
	}

	if b := m.keys.Button(msg); b != input.None {
		m.sampler.press(b, m.now())
	}
	return m, nil
}

// State returns the overlay state shown in the status bar.
func (m Model) State() styles.OverlayState {
	switch {
	case !m.ctrl.Active():
		return styles.StateIdle
	case m.ctrl.Visible():
		return styles.StateActive
	default:
		return styles.StateHeadless
	}
}

// View renders the scene, the HUD panel when shown, and the status bar
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	body := m.renderScene()
	if hudView := m.panel.View(); hudView != "" {
		hudView = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, hudView)
		body = lipgloss.JoinVertical(lipgloss.Left, hudView, body)
	}
	if toastView := toast.New(m.styles).Render(m.toasts, m.width); toastView != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, toastView)
	}
	body = lipgloss.Place(m.width, m.height-1, lipgloss.Left, lipgloss.Top, body)

	sb := statusbar.New(m.State(), m.ctrl.Depth(), m.width, m.keys, m.styles)
	return lipgloss.JoinVertical(lipgloss.Left, body, sb.Render())
}

func (m Model) renderScene() string {
	s := m.settings
	vol := fmt.Sprintf("%d", s.Volume)
	if s.Mute {
		vol += " (muted)"
	}

	rows := []struct{ label, value string }{
		{"Resolution", s.Resolution},
		{"VSync", onOff(s.VSync)},
		{"Brightness", fmt.Sprintf("%d", s.Brightness)},
		{"Volume", vol},
		{"Difficulty", s.Difficulty},
		{"Speed", fmt.Sprintf("x%.2f", s.Speed)},
		{"Frame", fmt.Sprintf("%d", s.Frames)},
		{"Resets", fmt.Sprintf("%d", s.Resets)},
	}

	lines := []string{m.styles.SceneTitle.Render("padmenu")}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.SceneLabel.Render(r.label),
			m.styles.SceneValue.Render(r.value)))
	}
	return m.styles.Scene.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m *Model) addToast(level toast.Level, msg string, expires time.Time) {
	m.toasts = append(m.toasts, toast.Toast{
		Level:   level,
		Message: msg,
		Expires: expires,
	})
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func frameEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
