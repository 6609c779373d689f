package store

import "time"

// Clock supplies insertion timestamps. The store takes a Clock instead of
// calling time.Now directly so tests and conformance scenarios can pin
// created_at to fixed values.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
