package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/vi-pong/parameter"
)

// MockTimeProvider is a manually driven clock for deterministic match tests
type MockTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMockTimeProvider creates a mock clock starting at start
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

// Now returns the mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// SetTime jumps the clock to t
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	m.now = t
	m.mu.Unlock()
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}

// AdvanceFrames moves the clock forward by n frame intervals
func (m *MockTimeProvider) AdvanceFrames(n int) {
	m.Advance(time.Duration(n) * parameter.FrameUpdateInterval)
}
