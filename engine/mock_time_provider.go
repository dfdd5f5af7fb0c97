package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Scheduled callbacks fire synchronously from Advance, in deadline order
type MockTimeProvider struct {
	mu          sync.Mutex
	currentTime time.Time
	timers      []*mockTimer
	seq         uint64
}

type mockTimer struct {
	owner    *MockTimeProvider
	deadline time.Time
	seq      uint64 // Tie-break: earlier registration fires first
	fn       func()
	done     bool // Fired or stopped
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentTime
}

// SetTime sets the current time for the mock without firing timers
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// AfterFunc registers fn to run once mocked time reaches now+d
func (m *MockTimeProvider) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &mockTimer{
		owner:    m,
		deadline: m.currentTime.Add(d),
		seq:      m.seq,
		fn:       fn,
	}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves time forward by d, firing every due timer including ones scheduled by fired callbacks
// The lock is released while a callback runs so it may schedule or stop timers
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.currentTime.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.nextDueLocked(target)
		if next == nil {
			m.currentTime = target
			m.pruneLocked()
			m.mu.Unlock()
			return
		}
		next.done = true
		m.currentTime = next.deadline
		m.mu.Unlock()

		next.fn()
	}
}

// Pending returns the number of timers that have neither fired nor been stopped
func (m *MockTimeProvider) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, t := range m.timers {
		if !t.done {
			n++
		}
	}
	return n
}

func (m *MockTimeProvider) nextDueLocked(target time.Time) *mockTimer {
	var next *mockTimer
	for _, t := range m.timers {
		if t.done || t.deadline.After(target) {
			continue
		}
		if next == nil || t.deadline.Before(next.deadline) ||
			(t.deadline.Equal(next.deadline) && t.seq < next.seq) {
			next = t
		}
	}
	return next
}

func (m *MockTimeProvider) pruneLocked() {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.done {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(m.timers); i++ {
		m.timers[i] = nil
	}
	m.timers = live
}

// Stop cancels the timer if it has not fired
func (t *mockTimer) Stop() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	return true
}
