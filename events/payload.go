package events

import "sort"

// GameEvent is a single entry in the event queue
type GameEvent struct {
	Type EventType
	Slot int    // EventPressSlot
	Gen  uint64 // EventClockTick, EventAdvanceDue
}

// Handler processes events drained from the queue
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously from the loop goroutine
	HandleEvent(ev GameEvent)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ev GameEvent)

func (f HandlerFunc) HandleEvent(ev GameEvent) { f(ev) }

// OrderBatch moves clock ticks ahead of every other event, preserving relative order otherwise
// A press and an expiry landing in the same batch resolve with the expiry first
// Advance fires stay in arrival order so input posted before them can still close the gate
func OrderBatch(batch []GameEvent) {
	sort.SliceStable(batch, func(i, j int) bool {
		return batch[i].Type.IsExpiry() && !batch[j].Type.IsExpiry()
	})
}
