// Package overlay drives a menu tree from per-tick gamepad input and shows
// it on a HUD while the activation gesture is held.
package overlay

import (
	"log/slog"

	"github.com/riordanpawley/padmenu/internal/hud"
	"github.com/riordanpawley/padmenu/internal/input"
	"github.com/riordanpawley/padmenu/internal/menu"
)

// Gesture is the pair of buttons that must be held to show the overlay.
const Gesture = input.L | input.R

// Controller owns the focus stack and the HUD handle. It is Idle while the
// gesture is released and Active while it is held. Navigation state
// survives deactivation; the HUD handle does not.
type Controller struct {
	tree   *menu.Tree
	stack  *menu.Stack
	sink   hud.Sink
	handle hud.Handle
	active bool
	logger *slog.Logger
}

// New creates an idle controller for the menu rooted at root. The root is
// focused immediately so the first frame shows its carousel.
func New(tree *menu.Tree, root menu.ID, sink hud.Sink, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	tree.Focus(root)
	return &Controller{
		tree:   tree,
		stack:  menu.NewStack(root),
		sink:   sink,
		logger: logger,
	}
}

// Run processes one tick of input.
func (c *Controller) Run(in input.State) {
	if !in.Held(Gesture) {
		if c.active {
			c.deactivate()
		}
		return
	}

	if !c.active {
		c.activate()
	}

	if c.tree.Control(c.stack.Top(), in, c.stack) {
		c.render()
	}
}

// Close hides the HUD if it is showing. The controller stays usable.
func (c *Controller) Close() {
	if c.active {
		c.deactivate()
	}
}

// Active reports whether the gesture is currently held.
func (c *Controller) Active() bool { return c.active }

// Visible reports whether a HUD handle is open.
func (c *Controller) Visible() bool { return c.handle != nil }

// Depth returns the focus stack depth.
func (c *Controller) Depth() int { return c.stack.Depth() }

// Stack returns the focus path from root to top.
func (c *Controller) Stack() []menu.ID { return c.stack.IDs() }

// Frame renders the top of the focus stack.
func (c *Controller) Frame() string {
	return c.tree.Render(c.stack.Top())
}

// activate creates the HUD once per session. A failed create leaves the
// session without a HUD until the gesture is released and held again.
func (c *Controller) activate() {
	c.active = true

	h, err := c.sink.Create(c.Frame())
	if err != nil {
		c.logger.Warn("failed to show overlay", "error", err)
		return
	}
	c.handle = h
	c.logger.Debug("overlay shown", "depth", c.stack.Depth())
}

func (c *Controller) deactivate() {
	c.active = false
	if c.handle == nil {
		return
	}
	if err := c.handle.Close(); err != nil {
		c.logger.Warn("failed to hide overlay", "error", err)
	}
	c.handle = nil
	c.logger.Debug("overlay hidden", "depth", c.stack.Depth())
}

func (c *Controller) render() {
	if c.handle == nil {
		return
	}
	frame := c.Frame()
	if err := c.handle.SetText(frame); err != nil {
		c.logger.Warn("failed to update overlay", "error", err, "frame", frame)
	}
}
