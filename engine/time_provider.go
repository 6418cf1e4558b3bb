package engine

import "time"

// TimeProvider supplies wall-clock readings to the scheduler
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the real clock; time.Now carries a monotonic reading
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates the real-time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time
func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
