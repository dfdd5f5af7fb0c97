package engine

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/popit/core"
	"github.com/lixenwraith/popit/events"
)

// EventLoop serializes player input and timer fires into a single handler
//
// Architecture:
//   - Producers (input poller, timer callbacks) Push into the lock-free queue
//   - One goroutine drains the queue in batches; the handler never runs concurrently
//   - Within a batch clock ticks are dispatched first, everything else in arrival order
type EventLoop struct {
	queue   *events.EventQueue
	handler events.Handler
	logger  zerolog.Logger

	processed atomic.Uint64
	dropped   uint64 // Last observed queue drop count, consumer-owned

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewEventLoop creates a stopped loop draining queue into handler
func NewEventLoop(queue *events.EventQueue, handler events.Handler, logger zerolog.Logger) *EventLoop {
	return &EventLoop{
		queue:    queue,
		handler:  handler,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Post enqueues an event, never blocks
func (l *EventLoop) Post(ev events.GameEvent) {
	l.queue.Push(ev)
}

// Start launches the loop goroutine
func (l *EventLoop) Start() {
	if l.running.CompareAndSwap(false, true) {
		l.wg.Add(1)
		// core.Go restores the terminal if a handler panics
		core.Go(l.run)
	}
}

// Stop halts the loop and waits for the in-flight batch to finish
func (l *EventLoop) Stop() {
	l.stopOnce.Do(func() {
		if l.running.CompareAndSwap(true, false) {
			close(l.stopChan)
			l.wg.Wait()
		}
	})
}

// Drain dispatches every pending event synchronously and returns how many ran
// Must not be called concurrently with a started loop
func (l *EventLoop) Drain() int {
	if d := l.queue.Dropped(); d != l.dropped {
		l.logger.Warn().Uint64("dropped", d-l.dropped).Msg("event queue full")
		l.dropped = d
	}

	batch := l.queue.Consume()
	if len(batch) == 0 {
		return 0
	}

	events.OrderBatch(batch)
	for _, ev := range batch {
		l.handler.HandleEvent(ev)
	}

	l.processed.Add(uint64(len(batch)))
	l.logger.Trace().Int("batch", len(batch)).Msg("events dispatched")
	return len(batch)
}

// Processed returns the total number of dispatched events
func (l *EventLoop) Processed() uint64 {
	return l.processed.Load()
}

func (l *EventLoop) run() {
	defer l.wg.Done()

	for {
		select {
		case <-l.stopChan:
			return
		case <-l.queue.Notify():
			l.Drain()
		}
	}
}
