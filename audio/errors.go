package audio

import "errors"

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
