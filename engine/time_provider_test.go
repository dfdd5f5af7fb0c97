package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicTimeProvider(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	t1 := provider.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := provider.Now()

	if !t2.After(t1) {
		t.Errorf("Expected t2 to be after t1, but got t1=%v, t2=%v", t1, t2)
	}
}

func TestMonotonicTimeProviderAfterFunc(t *testing.T) {
	provider := NewMonotonicTimeProvider()

	var fired atomic.Bool
	provider.AfterFunc(5*time.Millisecond, func() { fired.Store(true) })
	assert.Eventually(t, fired.Load, time.Second, time.Millisecond)

	var cancelled atomic.Bool
	timer := provider.AfterFunc(50*time.Millisecond, func() { cancelled.Store(true) })
	assert.True(t, timer.Stop())
	time.Sleep(80 * time.Millisecond)
	assert.False(t, cancelled.Load(), "stopped timer must not fire")
}

func TestMockTimeProvider(t *testing.T) {
	startTime := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(startTime)

	assert.True(t, mock.Now().Equal(startTime))

	newTime := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	mock.SetTime(newTime)
	assert.True(t, mock.Now().Equal(newTime))

	mock.Advance(1 * time.Hour)
	mock.Advance(30 * time.Minute)
	assert.True(t, mock.Now().Equal(newTime.Add(90*time.Minute)))
}

func TestMockTimeProviderFiresInDeadlineOrder(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	var order []string

	mock.AfterFunc(2*time.Second, func() { order = append(order, "b") })
	mock.AfterFunc(1*time.Second, func() { order = append(order, "a") })
	mock.AfterFunc(2*time.Second, func() { order = append(order, "c") })
	stopped := mock.AfterFunc(1500*time.Millisecond, func() { order = append(order, "x") })

	assert.True(t, stopped.Stop())
	assert.False(t, stopped.Stop(), "second stop reports already stopped")

	mock.Advance(3 * time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 0, mock.Pending())
}

func TestMockTimeProviderChainedCallbacks(t *testing.T) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	start := mock.Now()
	var fireTimes []time.Duration

	var schedule func()
	schedule = func() {
		mock.AfterFunc(time.Second, func() {
			fireTimes = append(fireTimes, mock.Now().Sub(start))
			schedule()
		})
	}
	schedule()

	mock.Advance(3500 * time.Millisecond)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, fireTimes)
	assert.Equal(t, 1, mock.Pending())
	assert.Equal(t, 3500*time.Millisecond, mock.Now().Sub(start))
}

func TestTimeProviderInterface(t *testing.T) {
	var _ TimeProvider = &MonotonicTimeProvider{}
	var _ TimeProvider = &MockTimeProvider{}
}
