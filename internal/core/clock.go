package core

import "time"

// Clock returns the current time in milliseconds. Only differences between
// readings are meaningful.
type Clock func() int64

// SystemClock returns a monotonic clock counting milliseconds since the call.
func SystemClock() Clock {
	start := time.Now()
	return func() int64 {
		return time.Since(start).Milliseconds()
	}
}

// ManualClock is a clock driven by hand, used by tests and headless runs.
type ManualClock struct {
	now int64
}

// NewManualClock creates a manual clock starting at the given time.
func NewManualClock(start int64) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() int64 {
	return c.now
}

// Set moves the clock to an absolute time.
func (c *ManualClock) Set(ms int64) {
	c.now = ms
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms int64) {
	c.now += ms
}

// Clock returns the manual clock as a Clock function.
func (c *ManualClock) Clock() Clock {
	return c.Now
}
