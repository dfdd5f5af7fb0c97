package engine

import (
	"time"

	"github.com/lixenwraith/popit/events"
)

// RoundClock is the per-phase countdown
// One live timer handle at most; every restart or cancel bumps the generation so a tick
// already sitting in the queue is recognised as stale and dropped
// Not goroutine-safe: owned by the event loop, timer callbacks only post events
type RoundClock struct {
	provider TimeProvider
	interval time.Duration
	post     func(events.GameEvent)

	remaining int
	running   bool
	gen       uint64
	timer     Timer
	nextTick  time.Time // Deadline of the scheduled tick, advanced by interval to avoid drift
}

// NewRoundClock creates a stopped clock that posts EventClockTick through post
func NewRoundClock(provider TimeProvider, interval time.Duration, post func(events.GameEvent)) *RoundClock {
	return &RoundClock{
		provider: provider,
		interval: interval,
		post:     post,
	}
}

// Start cancels any running countdown and begins counting down from initialSeconds
func (c *RoundClock) Start(initialSeconds int) {
	c.Cancel()

	c.remaining = initialSeconds
	c.running = true
	c.nextTick = c.provider.Now().Add(c.interval)
	c.schedule()
}

// Cancel stops future ticks without changing the current value, idempotent
func (c *RoundClock) Cancel() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.running = false
	c.gen++
}

// Tick applies one countdown step for the tick generation gen
// applied is false for stale ticks; expired is true when the countdown reached zero,
// in which case the clock has stopped itself
func (c *RoundClock) Tick(gen uint64) (applied, expired bool) {
	if !c.running || gen != c.gen {
		return false, false
	}

	if c.remaining <= 1 {
		c.remaining = 0
		c.running = false
		c.timer = nil
		return true, true
	}

	c.remaining--
	c.nextTick = c.nextTick.Add(c.interval)
	c.schedule()
	return true, false
}

// Set overwrites the displayed value of a stopped clock
func (c *RoundClock) Set(seconds int) {
	c.remaining = seconds
}

// Remaining returns the seconds left
func (c *RoundClock) Remaining() int {
	return c.remaining
}

// Running reports whether a countdown is live
func (c *RoundClock) Running() bool {
	return c.running
}

// Generation returns the generation the next valid tick must carry
func (c *RoundClock) Generation() uint64 {
	return c.gen
}

func (c *RoundClock) schedule() {
	gen := c.gen
	delay := c.nextTick.Sub(c.provider.Now())
	if delay < 0 {
		delay = 0
	}
	post := c.post
	c.timer = c.provider.AfterFunc(delay, func() {
		post(events.GameEvent{Type: events.EventClockTick, Gen: gen})
	})
}
