package hud

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrUnavailable = errors.New("hud unavailable")
	ErrClosed      = errors.New("hud closed")
)

// Error reports a failed HUD operation.
type Error struct {
	Op  string // "create", "set text", "close"
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("hud %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
