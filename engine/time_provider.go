package engine

import "time"

// TimeProvider supplies the current time and schedules one-shot callbacks
// Callbacks run on a goroutine owned by the provider; they must only post events
type TimeProvider interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancellable scheduled callback
type Timer interface {
	// Stop prevents the callback from running, returns false if it already ran or was stopped
	Stop() bool
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn on the runtime timer heap
func (p *MonotonicTimeProvider) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
