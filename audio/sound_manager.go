package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/popit/constants"
	"github.com/lixenwraith/popit/core"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// Musical note frequencies (Hz) used by the cue phrases
const (
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
)

// Config controls audio output
type Config struct {
	Enabled bool
	Volume  float64 // Linear gain, 0..1
}

// SoundManager plays game cues through the speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	config      Config
	mixer       *beep.Mixer
	logger      zerolog.Logger
	initialized bool
}

// NewSoundManager creates a new sound manager, Initialize must be called before cues are audible
func NewSoundManager(cfg Config, logger zerolog.Logger) *SoundManager {
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize sets up the audio system
// Returns ErrAudioDisabled when configuration turns audio off; cues stay silent either way
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.config.Enabled {
		return ErrAudioDisabled
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug().Int("sample_rate", int(sampleRate)).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play queues the cue on the mixer, no-op when audio is not initialized
func (sm *SoundManager) Play(sound core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := sm.withVolume(CueStreamer(sound))
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// OnCue adapts SoundManager to the engine cue hook
func (sm *SoundManager) OnCue(sound core.SoundType) {
	sm.Play(sound)
}

func (sm *SoundManager) withVolume(s beep.Streamer) beep.Streamer {
	if s == nil {
		return nil
	}
	return &effects.Gain{Streamer: s, Gain: sm.config.Volume - 1}
}

// CueStreamer builds the finite streamer for a cue, nil for unknown cues
func CueStreamer(sound core.SoundType) beep.Streamer {
	switch sound {
	case core.SoundPop:
		return NewToneGenerator(sampleRate, constants.PopSoundFreq, constants.PopSoundDuration)
	case core.SoundRoundStart:
		return phrase(constants.StartNoteDuration, constants.StartNoteLowFreq, constants.StartNoteHighFreq)
	case core.SoundPhaseAdvance:
		return phrase(constants.AdvanceNoteDuration, noteC5, noteE5, noteG5)
	case core.SoundWin:
		return phrase(constants.WinNoteDuration, noteC5, noteE5, noteG5, noteC6)
	case core.SoundLose:
		return NewBuzzGenerator(sampleRate, constants.LoseSoundFreq, constants.LoseSoundDuration)
	default:
		return nil
	}
}

// CueDuration returns the playback length of a cue
func CueDuration(sound core.SoundType) time.Duration {
	switch sound {
	case core.SoundPop:
		return constants.PopSoundDuration
	case core.SoundRoundStart:
		return 2 * constants.StartNoteDuration
	case core.SoundPhaseAdvance:
		return 3 * constants.AdvanceNoteDuration
	case core.SoundWin:
		return 4 * constants.WinNoteDuration
	case core.SoundLose:
		return constants.LoseSoundDuration
	default:
		return 0
	}
}

// phrase plays notes back to back, each lasting d
func phrase(d time.Duration, freqs ...float64) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = NewToneGenerator(sampleRate, f, d)
	}
	return beep.Seq(notes...)
}
