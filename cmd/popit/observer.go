package main

import (
	"sync/atomic"

	"github.com/lixenwraith/popit/core"
	"github.com/lixenwraith/popit/engine"
)

// CuePlayer plays sound cues
type CuePlayer interface {
	Play(sound core.SoundType)
}

// viewState bridges the event loop goroutine to the render loop
// The engine publishes snapshots here, the frame ticker reads the latest one
type viewState struct {
	latest atomic.Pointer[engine.Snapshot]
	dirty  atomic.Bool
	sounds CuePlayer
}

func newViewState(sounds CuePlayer) *viewState {
	v := &viewState{sounds: sounds}
	v.latest.Store(&engine.Snapshot{Phase: 1})
	return v
}

func (v *viewState) OnSnapshot(snap engine.Snapshot) {
	v.latest.Store(&snap)
	v.dirty.Store(true)
}

func (v *viewState) OnCue(sound core.SoundType) {
	if v.sounds != nil {
		v.sounds.Play(sound)
	}
}

// Snapshot returns the most recently published state
func (v *viewState) Snapshot() engine.Snapshot {
	return *v.latest.Load()
}

// TakeDirty reports whether a snapshot arrived since the last call
func (v *viewState) TakeDirty() bool {
	return v.dirty.Swap(false)
}
