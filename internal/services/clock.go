package services

import "time"

// Clock provides the current time. It is injected into the engine so tests
// can run against fixed dates instead of the wall clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall-clock implementation used in production.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
