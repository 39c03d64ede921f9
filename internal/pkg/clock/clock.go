// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed implements Clock with a frozen instant, for deterministic tests
type Fixed struct {
	Instant time.Time
}

// Now returns the frozen instant
func (c *Fixed) Now() time.Time {
	return c.Instant
}

// NewFixed returns a clock frozen at the given instant
func NewFixed(instant time.Time) Clock {
	return &Fixed{Instant: instant}
}
