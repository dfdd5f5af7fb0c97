package engine

import (
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/popit/core"
	"github.com/lixenwraith/popit/events"
	"github.com/lixenwraith/popit/status"
)

// RecordingObserver captures every snapshot and cue for assertions
type RecordingObserver struct {
	Snapshots []Snapshot
	Cues      []core.SoundType
}

func (r *RecordingObserver) OnSnapshot(snap Snapshot) { r.Snapshots = append(r.Snapshots, snap) }
func (r *RecordingObserver) OnCue(sound core.SoundType) { r.Cues = append(r.Cues, sound) }

// Last returns the most recent snapshot
func (r *RecordingObserver) Last() Snapshot {
	if len(r.Snapshots) == 0 {
		return Snapshot{}
	}
	return r.Snapshots[len(r.Snapshots)-1]
}

// Statuses returns the status sequence of every recorded snapshot
func (r *RecordingObserver) Statuses() []Status {
	out := make([]Status, len(r.Snapshots))
	for i, s := range r.Snapshots {
		out[i] = s.Status
	}
	return out
}

// Clear drops recorded output
func (r *RecordingObserver) Clear() {
	r.Snapshots = nil
	r.Cues = nil
}

// NewTestEngine creates an engine on a mock clock with a seeded rng
// Timer callbacks dispatch synchronously, so MockTimeProvider.Advance drives the whole state machine
func NewTestEngine(seed uint64) (*Engine, *MockTimeProvider, *RecordingObserver) {
	mock := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	rec := &RecordingObserver{}

	var eng *Engine
	eng = New(Options{
		Settings:     DefaultSettings(),
		TimeProvider: mock,
		Rand:         rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Logger:       zerolog.Nop(),
		Observer:     rec,
		Stats:        status.NewRegistry(),
		Post: func(ev events.GameEvent) {
			eng.HandleEvent(ev)
		},
	})
	return eng, mock, rec
}
