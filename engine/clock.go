package engine

import (
	"sync"
	"time"
)

// Clock abstracts the source of time so tests can drive the simulation
// deterministically.
type Clock interface {
	Now() time.Time
}

// TimeProvider is the production clock, backed by the system time.
type TimeProvider struct{}

// NewTimeProvider creates a system-time clock.
func NewTimeProvider() *TimeProvider {
	return &TimeProvider{}
}

// Now returns the current wall-clock time.
func (p *TimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a controllable clock for tests. Time only moves
// when Advance or SetTime is called.
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockTimeProvider creates a mock clock starting at the given time.
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the mock's current time.
func (p *MockTimeProvider) Now() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.now
}

// Advance moves the mock clock forward by d.
func (p *MockTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = p.now.Add(d)
}

// SetTime moves the mock clock to an absolute time.
func (p *MockTimeProvider) SetTime(t time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.now = t
}
