package mocks

import (
	"time"

	"wordroom/internal/dependencies/clock"
)

// MockClock is a manually-advanced Clock for tests
type MockClock struct {
	CurrentTime time.Time
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	return c.CurrentTime
}

// Advance moves the clock forward by d
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}

// Set pins the clock to t
func (c *MockClock) Set(t time.Time) {
	c.CurrentTime = t
}
