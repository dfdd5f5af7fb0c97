package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/popit/constants"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings, matched case-insensitively
	Runes map[rune]Intent
}

// DefaultKeyTable returns the standard bindings, slot keys in panel order
func DefaultKeyTable() *KeyTable {
	kt := &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  {Type: IntentQuit},
			tcell.KeyCtrlQ:  {Type: IntentQuit},
			tcell.KeyEscape: {Type: IntentDismiss},
			tcell.KeyEnter:  {Type: IntentStart},
		},
		Runes: map[rune]Intent{
			constants.KeyStart:    {Type: IntentStart},
			constants.KeyReset:    {Type: IntentReset},
			constants.KeyConfirm1: {Type: IntentConfirm1},
			constants.KeyConfirm2: {Type: IntentConfirm2},
			constants.KeyDismiss:  {Type: IntentDismiss},
		},
	}

	for slot, key := range constants.SlotKeys {
		kt.Runes[key] = Intent{Type: IntentPress, Slot: slot}
	}
	return kt
}

// Lookup resolves a key event, the zero Intent means unbound
func (kt *KeyTable) Lookup(key tcell.Key, ch rune) Intent {
	if key != tcell.KeyRune {
		return kt.SpecialKeys[key]
	}
	if intent, ok := kt.Runes[ch]; ok {
		return intent
	}
	if lower := toLower(ch); lower != ch {
		return kt.Runes[lower]
	}
	return Intent{}
}

func toLower(ch rune) rune {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}
