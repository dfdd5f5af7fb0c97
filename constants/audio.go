package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// DefaultAudioVolume is the linear output gain applied to every cue
	DefaultAudioVolume = 0.3
)

// Pop Sound Timing
const (
	PopSoundDuration = 50 * time.Millisecond
	PopSoundFreq     = 880.0
)

// Round Start Sound Timing
const (
	StartNoteDuration = 80 * time.Millisecond
	StartNoteLowFreq  = 660.0
	StartNoteHighFreq = 880.0
)

// Advance Sound Timing
const (
	AdvanceNoteDuration = 70 * time.Millisecond
)

// Win Sound Timing
const (
	WinNoteDuration = 120 * time.Millisecond
)

// Lose Sound Timing
const (
	LoseSoundDuration = 150 * time.Millisecond
	LoseSoundFreq     = 120.0
)

// Envelope shared by all synthesized notes
const (
	NoteAttack  = 5 * time.Millisecond
	NoteRelease = 20 * time.Millisecond
)
