package timeutil

import (
	"sync"
	"time"
)

// Clock abstracts a time source.
type Clock interface {
	// Now returns current time (UTC expected by convention).
	Now() time.Time
	// Since is a convenience wrapper over Now().Sub(t).
	Since(t time.Time) time.Duration
}

// UTCClock uses system time in UTC.
type UTCClock struct{}

func (UTCClock) Now() time.Time { return time.Now().UTC() }

// Important: use Clock.Now() for consistency with custom clocks.
func (c UTCClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }

// StepClock starts at a fixed time and moves forward by Step on every Now call.
// Timings measured with it are deterministic, which makes duration assertions
// possible in tests.
type StepClock struct {
	mu   sync.Mutex
	t    time.Time // always UTC
	step time.Duration
}

func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{t: start.UTC(), step: step}
}

func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

func (c *StepClock) Since(t time.Time) time.Duration { return c.Now().Sub(t) }
