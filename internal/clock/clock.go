// Package clock abstracts the time source used for throughput sampling so
// tests can drive elapsed durations deterministically.
package clock

import (
	"sync"
	"time"
)

// Clock reports the current time and the time elapsed since an earlier
// reading. Production code uses Real; tests use Fake.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// Real returns a Clock backed by the time package. Readings carry the
// monotonic clock, so Since is immune to wall-clock adjustments.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Since(t time.Time) time.Duration { return time.Since(t) }

// Fake returns a FakeClock at initial. Time stands still unless Advance is
// called or a step is configured with SetStep.
func Fake(initial time.Time) *FakeClock {
	return &FakeClock{current: initial}
}

// FakeClock is a deterministic Clock. It is safe for concurrent use.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	step    time.Duration
}

var _ Clock = (*FakeClock)(nil)

// Now returns the fake time, then advances it by the configured step.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.current
	c.current = c.current.Add(c.step)

	return now
}

// Since returns the fake time elapsed since t. It does not apply the step.
func (c *FakeClock) Since(t time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current.Sub(t)
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current = c.current.Add(d)
}

// SetStep makes every subsequent Now call advance the clock by d, so each
// Now/Since pair observes exactly d.
func (c *FakeClock) SetStep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.step = d
}
