// Package hud defines the text sink the overlay draws into, and an
// in-memory implementation used for headless runs and tests.
package hud

// Sink creates HUD handles. Creating a handle shows the overlay.
type Sink interface {
	Create(initial string) (Handle, error)
}

// Handle is a visible HUD. Close hides it; a closed handle rejects SetText.
type Handle interface {
	SetText(text string) error
	Close() error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(initial string) (Handle, error)

// Create calls f.
func (f SinkFunc) Create(initial string) (Handle, error) {
	return f(initial)
}
