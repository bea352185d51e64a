package ratelimit

import "time"

// Clock abstracts time.Now so bucket refill can be tested deterministically.
type Clock interface {
	Now() time.Time
}

// RealClock delegates to the system clock.
type RealClock struct{}

// Now returns the current system time.
func (RealClock) Now() time.Time { return time.Now() }

var _ Clock = RealClock{}
