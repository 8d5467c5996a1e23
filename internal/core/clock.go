package core

import "time"

// Clock is the time source every timing gate reads from.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so differences between two values are immune to wall-clock jumps.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a Clock that only moves when told to. Used by tests.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock starting at the given instant.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current instant.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// ElapsedMs returns whole milliseconds elapsed on clock c since the given instant.
// Negative spans (since in the future) report zero.
func ElapsedMs(c Clock, since time.Time) int64 {
	ms := c.Now().Sub(since).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

// Elapsed reports whether at least delay has passed on clock c since the given instant.
// It is the single gate every timed action goes through.
func Elapsed(c Clock, since time.Time, delay time.Duration) bool {
	return ElapsedMs(c, since) >= delay.Milliseconds()
}
