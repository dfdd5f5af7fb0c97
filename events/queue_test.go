package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/popit/constants"
)

func TestEventQueueFIFO(t *testing.T) {
	eq := NewEventQueue()

	eq.Push(GameEvent{Type: EventStart})
	eq.Push(GameEvent{Type: EventPressSlot, Slot: 4})
	eq.Push(GameEvent{Type: EventToggleConfirm1})

	assert.Equal(t, 3, eq.Len())

	got := eq.Consume()
	require.Len(t, got, 3)
	assert.Equal(t, EventStart, got[0].Type)
	assert.Equal(t, EventPressSlot, got[1].Type)
	assert.Equal(t, 4, got[1].Slot)
	assert.Equal(t, EventToggleConfirm1, got[2].Type)

	assert.Nil(t, eq.Consume(), "queue should be empty after consume")
	assert.Equal(t, 0, eq.Len())
}

func TestEventQueueNotifyCoalesces(t *testing.T) {
	eq := NewEventQueue()

	select {
	case <-eq.Notify():
		t.Fatal("notify signalled before any push")
	default:
	}

	eq.Push(GameEvent{Type: EventReset})
	eq.Push(GameEvent{Type: EventReset})

	select {
	case <-eq.Notify():
	default:
		t.Fatal("expected notify after push")
	}

	select {
	case <-eq.Notify():
		t.Fatal("notify should coalesce to a single signal")
	default:
	}

	assert.Len(t, eq.Consume(), 2)
}

func TestEventQueueOverflowDropsNewest(t *testing.T) {
	eq := NewEventQueue()

	total := constants.EventQueueSize + 10
	for i := 0; i < total; i++ {
		eq.Push(GameEvent{Type: EventPressSlot, Slot: i})
	}
	assert.Equal(t, uint64(10), eq.Dropped())
	assert.Equal(t, constants.EventQueueSize, eq.Len())

	got := eq.Consume()
	require.Len(t, got, constants.EventQueueSize)
	assert.Equal(t, 0, got[0].Slot)
	assert.Equal(t, constants.EventQueueSize-1, got[len(got)-1].Slot)

	// Ring is reusable after a full lap
	eq.Push(GameEvent{Type: EventReset})
	got = eq.Consume()
	require.Len(t, got, 1)
	assert.Equal(t, EventReset, got[0].Type)
}

func TestEventQueueWrapsManyLaps(t *testing.T) {
	eq := NewEventQueue()

	for lap := 0; lap < 5; lap++ {
		for i := 0; i < constants.EventQueueSize-1; i++ {
			eq.Push(GameEvent{Type: EventClockTick, Gen: uint64(lap*1000 + i)})
		}
		got := eq.Consume()
		require.Len(t, got, constants.EventQueueSize-1)
		assert.Equal(t, uint64(lap*1000), got[0].Gen)
	}
	assert.Zero(t, eq.Dropped())
}

func TestEventQueueConcurrentProducers(t *testing.T) {
	eq := NewEventQueue()

	const producers = 4
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				eq.Push(GameEvent{Type: EventClockTick, Gen: uint64(i)})
			}
		}()
	}
	wg.Wait()

	assert.Len(t, eq.Consume(), producers*perProducer)
}

func TestOrderBatchPutsClockTicksFirst(t *testing.T) {
	batch := []GameEvent{
		{Type: EventPressSlot, Slot: 1},
		{Type: EventClockTick, Gen: 7},
		{Type: EventToggleConfirm2},
		{Type: EventAdvanceDue, Gen: 3},
		{Type: EventPressSlot, Slot: 2},
	}

	OrderBatch(batch)

	want := []GameEvent{
		{Type: EventClockTick, Gen: 7},
		{Type: EventPressSlot, Slot: 1},
		{Type: EventToggleConfirm2},
		{Type: EventAdvanceDue, Gen: 3},
		{Type: EventPressSlot, Slot: 2},
	}
	assert.Equal(t, want, batch)
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "press_slot", EventPressSlot.String())
	assert.Equal(t, "clock_tick", EventClockTick.String())
	assert.Equal(t, "unknown", EventType(99).String())
	assert.True(t, EventAdvanceDue.IsTimer())
	assert.False(t, EventStart.IsTimer())
	assert.True(t, EventClockTick.IsExpiry())
	assert.False(t, EventAdvanceDue.IsExpiry())
	assert.False(t, EventPressSlot.IsExpiry())
}
