package ratelimit

import "time"

// Limiter decides whether one more request for key fits its budget.
type Limiter interface {
	Allow(key string) bool
}

// Clock lets tests drive bucket expiry.
type Clock interface {
	Now() time.Time
}

// RealClock reads the wall clock.
type RealClock struct{}

// Now returns time.Now.
func (RealClock) Now() time.Time { return time.Now() }
