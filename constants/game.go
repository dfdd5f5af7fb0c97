package constants

import "time"

// Panel
const (
	// TotalSlots is the fixed number of pressable slots on the panel
	TotalSlots = 13
)

// Phase progression
const (
	// FirstPhase is the phase a fresh round starts on
	FirstPhase = 1

	// MaxPhase is the last playable phase, advancing past it wins the game
	MaxPhase = 20

	// WinPhase is reported in the Won snapshot as the terminal win signal
	WinPhase = MaxPhase + 1

	// BaseLightCount is the lit-slot count for phases outside the table
	BaseLightCount = 3
)

// Round timing
const (
	// RoundStartSeconds is the countdown value when a round starts
	RoundStartSeconds = 5

	// PhaseAdvanceSeconds is the countdown value after a mid-game phase advance
	PhaseAdvanceSeconds = 4

	// IdleSeconds is the countdown value shown while idle
	IdleSeconds = 0

	// ClockTickInterval is the countdown decrement period
	ClockTickInterval = time.Second

	// AdvanceDelay is how long the advance gate must hold before the phase changes
	AdvanceDelay = 2 * time.Second
)

// Terminal messages
const (
	MessageWrongSlot   = "wrong slot pressed"
	MessageTimeExpired = "time expired"
	MessageAllComplete = "all phases completed"
)
