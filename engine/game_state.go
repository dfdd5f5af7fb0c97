package engine

import (
	"time"

	"github.com/lixenwraith/popit/constants"
)

// Status is the engine's coarse game state
type Status int

const (
	StatusIdle   Status = iota // Not started or just reset
	StatusActive               // Phase in progress
	StatusWon                  // Momentary, followed by reset
	StatusLost                 // Momentary, followed by reset
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusActive:
		return "active"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Settings holds the timing values of a round
type Settings struct {
	RoundStartSeconds   int
	PhaseAdvanceSeconds int
	IdleSeconds         int
	TickInterval        time.Duration
	AdvanceDelay        time.Duration
}

// DefaultSettings returns the stock round timing
func DefaultSettings() Settings {
	return Settings{
		RoundStartSeconds:   constants.RoundStartSeconds,
		PhaseAdvanceSeconds: constants.PhaseAdvanceSeconds,
		IdleSeconds:         constants.IdleSeconds,
		TickInterval:        constants.ClockTickInterval,
		AdvanceDelay:        constants.AdvanceDelay,
	}
}

// Snapshot is the read-only view handed to collaborators after every transition
type Snapshot struct {
	Status          Status
	Phase           int
	Lit             []int // Ascending slot indices
	Pressed         []int // Ascending slot indices
	Popped          [constants.TotalSlots]bool
	TimeRemaining   int
	Confirm1        bool
	Confirm2        bool
	AdvanceReady    bool
	TerminalMessage string // Empty when there is nothing to announce
	SessionID       string
}

// IsLit reports whether slot is in the lit set
func (s *Snapshot) IsLit(slot int) bool {
	for _, l := range s.Lit {
		if l == slot {
			return true
		}
	}
	return false
}
