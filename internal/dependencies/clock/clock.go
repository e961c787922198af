package clock

import "time"

// Clock abstracts time so that expiry behaviour can be tested
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock backed by the system time
type RealClock struct{}

// New creates a RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current system time
func (c *RealClock) Now() time.Time {
	return time.Now()
}
