package clock

import (
	"sync"
	"time"
)

// Clock provides an abstraction for time operations to enable deterministic testing.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system time.
type RealClock struct{}

// Now returns the current system time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FakeClock implements Clock with a controlled time for testing. It is safe
// for use by concurrent solver workers.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

// NewFakeClock creates a new FakeClock with the given time.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// NewSteppingClock creates a FakeClock that moves forward by step every time
// it is read.
func NewSteppingClock(t time.Time, step time.Duration) *FakeClock {
	return &FakeClock{current: t, step: step}
}

// Now returns the current fake time, then applies the step if any.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

// Set updates the fake time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// Advance moves the fake time forward by the given duration.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Deadline is a point in time measured on a Clock. The zero Deadline never
// expires.
type Deadline struct {
	clock Clock
	at    time.Time
}

// NewDeadline returns the deadline d from now on c. A non-positive d yields
// a deadline that never expires.
func NewDeadline(c Clock, d time.Duration) Deadline {
	if d <= 0 {
		return Deadline{}
	}
	return Deadline{clock: c, at: c.Now().Add(d)}
}

// Expired reports whether the deadline has passed.
func (d Deadline) Expired() bool {
	if d.clock == nil {
		return false
	}
	return !d.clock.Now().Before(d.at)
}
