package events

// EventType represents the type of game event
type EventType int

const (
	// EventStart begins a fresh round, restarting if one is active
	// Trigger: InputHandler (start key / start control)
	// Consumer: Engine | Payload: none
	EventStart EventType = iota

	// EventReset returns the engine to Idle
	// Trigger: InputHandler (reset key / reset control)
	// Consumer: Engine | Payload: none
	EventReset

	// EventPressSlot toggles a slot
	// Trigger: InputHandler (slot key or click)
	// Consumer: Engine | Payload: Slot
	EventPressSlot

	// EventToggleConfirm1 flips the first confirmation control
	// Trigger: InputHandler | Payload: none
	EventToggleConfirm1

	// EventToggleConfirm2 flips the second confirmation control
	// Trigger: InputHandler | Payload: none
	EventToggleConfirm2

	// EventClockTick decrements the round countdown
	// Trigger: RoundClock timer
	// Consumer: Engine | Payload: Gen (clock generation)
	EventClockTick

	// EventAdvanceDue fires when the advance gate has held for the full delay
	// Trigger: Engine advance timer
	// Consumer: Engine | Payload: Gen (advance generation)
	EventAdvanceDue
)

var typeNames = map[EventType]string{
	EventStart:          "start",
	EventReset:          "reset",
	EventPressSlot:      "press_slot",
	EventToggleConfirm1: "toggle_confirm1",
	EventToggleConfirm2: "toggle_confirm2",
	EventClockTick:      "clock_tick",
	EventAdvanceDue:     "advance_due",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsExpiry reports whether the event can end the round on time
// Only these outrank player input drained in the same batch
func (t EventType) IsExpiry() bool {
	return t == EventClockTick
}

// IsTimer reports whether the event originates from a timer rather than the player
func (t EventType) IsTimer() bool {
	return t == EventClockTick || t == EventAdvanceDue
}
