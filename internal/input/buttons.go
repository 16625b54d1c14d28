// Package input models the per-tick gamepad snapshot consumed by the menu
// engine.
package input

import (
	"fmt"
	"strings"
)

// Button is a set of gamepad buttons. Single-button constants combine with |.
type Button uint16

const (
	A Button = 1 << iota
	B
	Left
	Right
	Up
	Down
	L
	R
)

// None is the empty set.
const None Button = 0

var buttonNames = []struct {
	button Button
	name   string
}{
	{A, "A"},
	{B, "B"},
	{Left, "Left"},
	{Right, "Right"},
	{Up, "Up"},
	{Down, "Down"},
	{L, "L"},
	{R, "R"},
}

// Has reports whether every button in o is in b.
func (b Button) Has(o Button) bool {
	return b&o == o
}

// Any reports whether b and o share at least one button.
func (b Button) Any(o Button) bool {
	return b&o != 0
}

// String returns the buttons joined with "|", or "None".
func (b Button) String() string {
	if b == None {
		return "None"
	}
	var parts []string
	for _, bn := range buttonNames {
		if b.Has(bn.button) {
			parts = append(parts, bn.name)
		}
	}
	return strings.Join(parts, "|")
}

// ParseButton resolves a single button name, case-insensitively.
func ParseButton(name string) (Button, error) {
	for _, bn := range buttonNames {
		if strings.EqualFold(bn.name, strings.TrimSpace(name)) {
			return bn.button, nil
		}
	}
	return None, fmt.Errorf("unknown button %q", name)
}

// ParseButtons unions a list of button names.
func ParseButtons(names []string) (Button, error) {
	var set Button
	for _, name := range names {
		b, err := ParseButton(name)
		if err != nil {
			return None, err
		}
		set |= b
	}
	return set, nil
}
