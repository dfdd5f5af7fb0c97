package core

// SoundType represents the cues the game asks the audio collaborator to play
type SoundType int

const (
	SoundRoundStart   SoundType = iota // New round begins
	SoundPop                           // Lit slot toggled
	SoundPhaseAdvance                  // Phase advanced
	SoundWin                           // All phases completed
	SoundLose                          // Wrong slot or time expired
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	SoundRoundStart:   "round_start",
	SoundPop:          "pop",
	SoundPhaseAdvance: "phase_advance",
	SoundWin:          "win",
	SoundLose:         "lose",
}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}
