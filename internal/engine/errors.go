package engine

import "errors"

var (
	// ErrClockBackwards is reported when the wall clock reads earlier than the loop start.
	ErrClockBackwards = errors.New("engine: clock moved backwards")

	// ErrClockUnavailable is reported by a clock that was never started.
	ErrClockUnavailable = errors.New("engine: clock unavailable")
)
