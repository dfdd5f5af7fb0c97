package events

import (
	"sync/atomic"

	"github.com/lixenwraith/popit/constants"
)

// cell is one ring slot; seq == pos+1 marks it readable for position pos
type cell struct {
	seq atomic.Uint64
	ev  GameEvent
}

// EventQueue is a bounded lock-free MPSC ring buffer for game events
// Thread-Safety:
//   - Push: CAS on the write cursor, any number of producers (input, timers)
//   - Consume: single consumer (event loop)
//
// Overflow: a push into a full ring is dropped and counted
type EventQueue struct {
	cells   [constants.EventQueueSize]cell
	write   atomic.Uint64
	read    atomic.Uint64 // Advanced only by the consumer
	dropped atomic.Uint64

	notify chan struct{} // Coalesced wakeup for the consumer
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	eq := &EventQueue{notify: make(chan struct{}, 1)}
	for i := range eq.cells {
		eq.cells[i].seq.Store(uint64(i))
	}
	return eq
}

// Push enqueues ev without blocking
func (eq *EventQueue) Push(ev GameEvent) {
	pos := eq.write.Load()
	for {
		c := &eq.cells[pos&constants.EventBufferMask]
		seq := c.seq.Load()

		switch {
		case seq == pos:
			if !eq.write.CompareAndSwap(pos, pos+1) {
				pos = eq.write.Load()
				continue
			}
			c.ev = ev
			c.seq.Store(pos + 1) // Publish after the payload write
			eq.wake()
			return
		case seq < pos:
			// Slot still holds an unread event from the previous lap
			eq.dropped.Add(1)
			eq.wake()
			return
		default:
			pos = eq.write.Load()
		}
	}
}

func (eq *EventQueue) wake() {
	select {
	case eq.notify <- struct{}{}:
	default:
	}
}

// Notify returns the channel signalled after every Push
func (eq *EventQueue) Notify() <-chan struct{} {
	return eq.notify
}

// Len returns the number of events claimed by producers but not yet consumed
func (eq *EventQueue) Len() int {
	return int(eq.write.Load() - eq.read.Load())
}

// Dropped returns how many events were rejected by a full ring
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped.Load()
}

// Consume returns every published event in FIFO order, nil when empty
// Stops at the first claimed-but-unpublished slot; the producer's wake delivers the rest
func (eq *EventQueue) Consume() []GameEvent {
	var batch []GameEvent
	pos := eq.read.Load()
	for {
		c := &eq.cells[pos&constants.EventBufferMask]
		if c.seq.Load() != pos+1 {
			break
		}
		batch = append(batch, c.ev)
		c.ev = GameEvent{}
		c.seq.Store(pos + constants.EventQueueSize) // Free for the next lap
		pos++
	}
	eq.read.Store(pos)
	return batch
}
