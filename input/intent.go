package input

import "github.com/lixenwraith/popit/events"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit    // Ctrl+Q, Ctrl+C
	IntentResize  // Terminal resize event
	IntentDismiss // Any key or click that is not a game action

	// Game intents
	IntentStart    // n
	IntentReset    // x
	IntentPress    // Slot key or click on a slot
	IntentConfirm1 // z or click on the upper control
	IntentConfirm2 // m or click on the lower control
)

var intentNames = map[IntentType]string{
	IntentNone:     "none",
	IntentQuit:     "quit",
	IntentResize:   "resize",
	IntentDismiss:  "dismiss",
	IntentStart:    "start",
	IntentReset:    "reset",
	IntentPress:    "press",
	IntentConfirm1: "confirm1",
	IntentConfirm2: "confirm2",
}

func (t IntentType) String() string {
	if name, ok := intentNames[t]; ok {
		return name
	}
	return "unknown"
}

// Intent is a parsed player action
type Intent struct {
	Type IntentType
	Slot int // Valid when Type == IntentPress
}

// GameEvent converts the intent to an engine event
// Returns false for intents the engine does not consume
func (i Intent) GameEvent() (events.GameEvent, bool) {
	switch i.Type {
	case IntentStart:
		return events.GameEvent{Type: events.EventStart}, true
	case IntentReset:
		return events.GameEvent{Type: events.EventReset}, true
	case IntentPress:
		return events.GameEvent{Type: events.EventPressSlot, Slot: i.Slot}, true
	case IntentConfirm1:
		return events.GameEvent{Type: events.EventToggleConfirm1}, true
	case IntentConfirm2:
		return events.GameEvent{Type: events.EventToggleConfirm2}, true
	}
	return events.GameEvent{}, false
}
