package menu

import (
	"fmt"

	"github.com/riordanpawley/padmenu/internal/input"
)

// Numeric is the set of types a Number can hold.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Number is a bounded value stepped with Up and Down. The value always stays
// within [min, max].
type Number[T Numeric] struct {
	leaf
	label  string
	value  T
	step   T
	min    T
	max    T
	action func(*T)
}

// NewNumber creates a number control. The initial value is clamped into
// [min, max]; min > max panics. step must be positive: Up treats a sum
// below the current value as overflow and clamps to max. action runs on A
// with the current value.
func NewNumber[T Numeric](label string, value, step, min, max T, action func(*T)) *Number[T] {
	if min > max {
		panic(fmt.Sprintf("menu: number %q has min %v > max %v", label, min, max))
	}
	n := &Number[T]{
		label:  label,
		value:  value,
		step:   step,
		min:    min,
		max:    max,
		action: action,
	}
	switch {
	case n.value < min:
		n.value = min
	case n.value > max:
		n.value = max
	}
	return n
}

// Value returns the current value.
func (n *Number[T]) Value() T { return n.value }

// Bounds returns min and max.
func (n *Number[T]) Bounds() (T, T) { return n.min, n.max }

func (n *Number[T]) Render(t *Tree) string {
	icon := t.Glyphs().bounds(n.value == n.min, n.value == n.max)
	return fmt.Sprintf("%s: %v %s", n.label, n.value, icon)
}

// Control steps up and then down when both are pressed in one tick. A step
// that would leave the range, or that wraps around for unsigned or
// overflowing types, clamps to the bound instead.
func (n *Number[T]) Control(in input.State, _ *Nav) bool {
	changed := false

	if in.Pressed(input.Up) {
		next := n.value + n.step
		if next <= n.max && next >= n.value {
			n.value = next
		} else {
			n.value = n.max
		}
		changed = true
	}

	if in.Pressed(input.Down) {
		next := n.value - n.step
		if next >= n.min && next < n.value {
			n.value = next
		} else {
			n.value = n.min
		}
		changed = true
	}

	if in.Pressed(input.A) && n.action != nil {
		n.action(&n.value)
	}

	return changed
}
