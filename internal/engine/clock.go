package engine

import (
	"fmt"
	"time"
)

// Clock reports the wall time elapsed since the loop started.
type Clock interface {
	Elapsed() (time.Duration, error)
}

// SystemClock measures elapsed time from the moment it was started.
type SystemClock struct {
	start time.Time
	now   func() time.Time
}

// NewSystemClock returns a clock started now.
func NewSystemClock() *SystemClock {
	c := &SystemClock{now: time.Now}
	c.start = c.now()
	return c
}

// Elapsed returns the time since the clock was started.
// time.Now carries a monotonic reading, so going backwards only happens
// when a start time without one is compared to a skewed wall clock.
func (c *SystemClock) Elapsed() (time.Duration, error) {
	if c == nil || c.start.IsZero() || c.now == nil {
		return 0, ErrClockUnavailable
	}
	d := c.now().Sub(c.start)
	if d < 0 {
		return 0, fmt.Errorf("%w: %s before start", ErrClockBackwards, -d)
	}
	return d, nil
}
