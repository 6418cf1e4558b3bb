package engine

import "time"

// MockTimeProvider is a manually driven clock for tests and replays
type MockTimeProvider struct {
	current time.Time
}

// NewMockTimeProvider creates a mock clock reading start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	return m.current
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.current = t
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
