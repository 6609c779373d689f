// Package testutil provides deterministic test doubles shared across
// package tests and the conformance harness.
package testutil

import (
	"sync"
	"time"
)

// SteppingClock is a deterministic clock for tests: it starts at a fixed
// instant and advances by a fixed step on every Now call. Feeding it to the
// store pins created_at, which golden traces depend on.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type SteppingClock struct {
	mu   sync.Mutex
	next time.Time
	step time.Duration
}

// Epoch is the default start instant for stepping clocks.
var Epoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// NewSteppingClock creates a clock starting at Epoch advancing one second
// per call.
func NewSteppingClock() *SteppingClock {
	return NewSteppingClockAt(Epoch, time.Second)
}

// NewSteppingClockAt creates a clock starting at a specific instant with a
// specific step.
func NewSteppingClockAt(start time.Time, step time.Duration) *SteppingClock {
	return &SteppingClock{next: start, step: step}
}

// Now returns the current instant and advances the clock by one step.
func (c *SteppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.next
	c.next = c.next.Add(c.step)
	return t
}
