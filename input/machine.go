package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/popit/render"
)

// HitTester resolves a screen cell to the control drawn there
type HitTester interface {
	HitTest(x, y int) render.Target
}

// Machine turns tcell events into intents
type Machine struct {
	keyTable *KeyTable
	hits     HitTester

	// Primary button state of the previous mouse event, clicks fire on the down edge
	buttonDown bool
}

// NewMachine creates a parser with the default key table
func NewMachine(hits HitTester) *Machine {
	return &Machine{
		keyTable: DefaultKeyTable(),
		hits:     hits,
	}
}

// SetHitTester replaces the layout used for mouse resolution, called after resize
func (m *Machine) SetHitTester(hits HitTester) {
	m.hits = hits
}

// Process parses a terminal event and returns an Intent
// Returns nil for events that carry no action (mouse motion, button release)
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	// Some terminals report Ctrl+letter as a modified rune
	if ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 {
		switch toLower(ev.Rune()) {
		case 'c', 'q':
			return &Intent{Type: IntentQuit}
		}
	}

	intent := m.keyTable.Lookup(ev.Key(), ev.Rune())
	if intent.Type == IntentNone {
		// Unbound keys dismiss the message box
		intent.Type = IntentDismiss
	}
	return &intent
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	down := ev.Buttons()&tcell.Button1 != 0
	edge := down && !m.buttonDown
	m.buttonDown = down
	if !edge {
		return nil
	}

	if m.hits == nil {
		return &Intent{Type: IntentDismiss}
	}

	x, y := ev.Position()
	target := m.hits.HitTest(x, y)
	switch target.Kind {
	case render.TargetSlot:
		return &Intent{Type: IntentPress, Slot: target.Slot}
	case render.TargetConfirm1:
		return &Intent{Type: IntentConfirm1}
	case render.TargetConfirm2:
		return &Intent{Type: IntentConfirm2}
	}
	return &Intent{Type: IntentDismiss}
}
