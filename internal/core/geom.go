// Package core provides the shared types of the life simulator: key events,
// commands, print modes, the viewport origin, run settings and a colored
// screen buffer. It has no terminal dependencies so the engine stays pure and
// testable.
package core

// Origin is the display-space offset applied when drawing the board.
// Both axes are non-negative and only ever change by one step at a time.
type Origin struct {
	X, Y int
}

// MoveUp decrements Y unless it is already 0. It reports whether Y changed.
func (o *Origin) MoveUp() bool {
	if o.Y > 0 {
		o.Y--
		return true
	}
	return false
}

// MoveLeft decrements X unless it is already 0. It reports whether X changed.
func (o *Origin) MoveLeft() bool {
	if o.X > 0 {
		o.X--
		return true
	}
	return false
}

// MoveDown increments Y. It always reports a change.
func (o *Origin) MoveDown() bool {
	o.Y++
	return true
}

// MoveRight increments X. It always reports a change.
func (o *Origin) MoveRight() bool {
	o.X++
	return true
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
