package engine

import (
	"math/rand/v2"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/zyedidia/generic/mapset"

	"github.com/lixenwraith/popit/constants"
	"github.com/lixenwraith/popit/core"
	"github.com/lixenwraith/popit/events"
	"github.com/lixenwraith/popit/status"
)

// Observer receives engine output; both calls happen on the event loop goroutine
type Observer interface {
	OnSnapshot(snap Snapshot)
	OnCue(sound core.SoundType)
}

// Options configures a new Engine
type Options struct {
	Settings     Settings
	TimeProvider TimeProvider
	Rand         *rand.Rand // nil uses the global source
	Logger       zerolog.Logger
	Observer     Observer
	Stats        *status.Registry
	Post         func(events.GameEvent) // Timer callbacks enqueue through this
}

// Engine is the round/phase state machine
// Not goroutine-safe: every method must run on the event loop goroutine
type Engine struct {
	settings Settings
	provider TimeProvider
	rng      *rand.Rand
	logger   zerolog.Logger
	observer Observer
	post     func(events.GameEvent)

	status    Status
	phase     int
	lit       mapset.Set[int]
	pressed   mapset.Set[int]
	popped    [constants.TotalSlots]bool
	confirm1  bool
	confirm2  bool
	message   string
	sessionID string

	clock *RoundClock

	advanceTimer Timer
	advanceGen   uint64
	advanceArmed bool

	// Cached metric pointers
	statStarted *atomic.Int64
	statWon     *atomic.Int64
	statLost    *atomic.Int64
	stats       *status.Registry
}

// New creates an idle engine
func New(opts Options) *Engine {
	if opts.TimeProvider == nil {
		opts.TimeProvider = NewMonotonicTimeProvider()
	}
	if opts.Stats == nil {
		opts.Stats = status.NewRegistry()
	}
	if opts.Post == nil {
		panic("engine: Options.Post is required")
	}

	e := &Engine{
		settings:    opts.Settings,
		provider:    opts.TimeProvider,
		rng:         opts.Rand,
		logger:      opts.Logger,
		observer:    opts.Observer,
		post:        opts.Post,
		stats:       opts.Stats,
		statStarted: opts.Stats.Ints.Get(status.KeyGamesStarted),
		statWon:     opts.Stats.Ints.Get(status.KeyGamesWon),
		statLost:    opts.Stats.Ints.Get(status.KeyGamesLost),
	}
	e.clock = NewRoundClock(e.provider, e.settings.TickInterval, e.post)
	e.reset()
	return e
}

// HandleEvent routes a queued event to its transition
func (e *Engine) HandleEvent(ev events.GameEvent) {
	switch ev.Type {
	case events.EventStart:
		e.Start()
	case events.EventReset:
		e.Reset()
	case events.EventPressSlot:
		e.PressSlot(ev.Slot)
	case events.EventToggleConfirm1:
		e.ToggleConfirm1()
	case events.EventToggleConfirm2:
		e.ToggleConfirm2()
	case events.EventClockTick:
		e.onClockTick(ev.Gen)
	case events.EventAdvanceDue:
		e.onAdvanceDue(ev.Gen)
	default:
		e.logger.Warn().Stringer("event", ev.Type).Msg("unhandled event")
	}
}

// Start begins a fresh round at phase 1, restarting any round in progress
func (e *Engine) Start() {
	if e.status == StatusActive {
		e.logger.Debug().Str("session", e.sessionID).Int("phase", e.phase).Msg("round restarted")
	}
	e.cancelTimers()
	e.clearRound()

	e.sessionID = uuid.NewString()
	e.message = ""
	e.status = StatusActive
	e.phase = constants.FirstPhase
	e.lit = PickLitSlots(e.rng, LightCount(e.phase), constants.TotalSlots)
	e.clock.Start(e.settings.RoundStartSeconds)

	e.statStarted.Add(1)
	e.stats.StoreMax(status.KeyBestPhase, int64(e.phase))

	e.logger.Info().Str("session", e.sessionID).Ints("lit", sortedSlots(e.lit)).Msg("round started")
	e.cue(core.SoundRoundStart)
	e.emit()
}

// Reset returns to Idle from any state
func (e *Engine) Reset() {
	if e.status == StatusActive {
		e.logger.Info().Str("session", e.sessionID).Int("phase", e.phase).Msg("round reset")
	}
	e.reset()
	e.emit()
}

// PressSlot toggles a lit slot; any other slot loses the round
func (e *Engine) PressSlot(slot int) {
	if e.status != StatusActive {
		return
	}

	if slot < 0 || slot >= constants.TotalSlots || !e.lit.Has(slot) {
		e.logger.Debug().Str("session", e.sessionID).Int("slot", slot).Msg("unlit slot pressed")
		e.lose(constants.MessageWrongSlot)
		return
	}

	if e.pressed.Has(slot) {
		e.pressed.Remove(slot)
	} else {
		e.pressed.Put(slot)
	}
	e.popped[slot] = !e.popped[slot]

	e.cue(core.SoundPop)
	e.syncAdvance()
	e.emit()
}

// ToggleConfirm1 flips the first confirmation control
func (e *Engine) ToggleConfirm1() {
	if e.status != StatusActive {
		return
	}
	e.confirm1 = !e.confirm1
	e.syncAdvance()
	e.emit()
}

// ToggleConfirm2 flips the second confirmation control
func (e *Engine) ToggleConfirm2() {
	if e.status != StatusActive {
		return
	}
	e.confirm2 = !e.confirm2
	e.syncAdvance()
	e.emit()
}

// AdvanceReady reports whether every lit slot is pressed, both confirmations are on and time remains
func (e *Engine) AdvanceReady() bool {
	if e.status != StatusActive || !e.confirm1 || !e.confirm2 || e.clock.Remaining() <= 0 {
		return false
	}
	ready := true
	e.lit.Each(func(slot int) {
		if !e.pressed.Has(slot) {
			ready = false
		}
	})
	return ready
}

// Snapshot returns a copy of the current state
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Status:          e.status,
		Phase:           e.phase,
		Lit:             sortedSlots(e.lit),
		Pressed:         sortedSlots(e.pressed),
		Popped:          e.popped,
		TimeRemaining:   e.clock.Remaining(),
		Confirm1:        e.confirm1,
		Confirm2:        e.confirm2,
		AdvanceReady:    e.AdvanceReady(),
		TerminalMessage: e.message,
		SessionID:       e.sessionID,
	}
}

func (e *Engine) onClockTick(gen uint64) {
	if e.status != StatusActive {
		return
	}

	applied, expired := e.clock.Tick(gen)
	if !applied {
		return
	}
	if expired {
		e.lose(constants.MessageTimeExpired)
		return
	}
	e.emit()
}

func (e *Engine) onAdvanceDue(gen uint64) {
	if e.status != StatusActive || !e.advanceArmed || gen != e.advanceGen {
		return
	}
	e.advanceArmed = false
	e.advanceTimer = nil

	if !e.AdvanceReady() {
		return
	}
	e.advance()
}

// advance moves to the next phase or wins after the last one
func (e *Engine) advance() {
	if e.phase >= constants.MaxPhase {
		e.win()
		return
	}

	e.clearRound()
	e.phase++
	e.lit = PickLitSlots(e.rng, LightCount(e.phase), constants.TotalSlots)
	e.clock.Start(e.settings.PhaseAdvanceSeconds)

	e.stats.StoreMax(status.KeyBestPhase, int64(e.phase))

	e.logger.Info().Str("session", e.sessionID).Int("phase", e.phase).Ints("lit", sortedSlots(e.lit)).Msg("phase advanced")
	e.cue(core.SoundPhaseAdvance)
	e.emit()
}

func (e *Engine) win() {
	e.cancelTimers()
	e.status = StatusWon
	e.phase = constants.WinPhase
	e.message = constants.MessageAllComplete
	e.statWon.Add(1)

	e.logger.Info().Str("session", e.sessionID).Msg("game won")
	e.cue(core.SoundWin)
	e.emit()

	e.reset()
	e.emit()
}

func (e *Engine) lose(reason string) {
	e.cancelTimers()
	e.status = StatusLost
	e.message = reason
	e.statLost.Add(1)

	e.logger.Info().Str("session", e.sessionID).Int("phase", e.phase).Str("reason", reason).Msg("game lost")
	e.cue(core.SoundLose)
	e.emit()

	e.reset()
	e.emit()
}

// reset performs the Idle side effects, the terminal message is kept until the next Start
func (e *Engine) reset() {
	e.cancelTimers()
	e.clearRound()
	e.status = StatusIdle
	e.phase = constants.FirstPhase
	e.clock.Set(e.settings.IdleSeconds)
}

func (e *Engine) clearRound() {
	e.lit = mapset.New[int]()
	e.pressed = mapset.New[int]()
	e.popped = [constants.TotalSlots]bool{}
	e.confirm1 = false
	e.confirm2 = false
}

func (e *Engine) cancelTimers() {
	e.clock.Cancel()
	e.disarmAdvance()
}

// syncAdvance arms the advance delay when the gate opens and cancels it when the gate closes
func (e *Engine) syncAdvance() {
	ready := e.AdvanceReady()
	switch {
	case ready && !e.advanceArmed:
		e.advanceGen++
		gen := e.advanceGen
		post := e.post
		e.advanceTimer = e.provider.AfterFunc(e.settings.AdvanceDelay, func() {
			post(events.GameEvent{Type: events.EventAdvanceDue, Gen: gen})
		})
		e.advanceArmed = true
	case !ready && e.advanceArmed:
		e.disarmAdvance()
	}
}

func (e *Engine) disarmAdvance() {
	if e.advanceTimer != nil {
		e.advanceTimer.Stop()
		e.advanceTimer = nil
	}
	e.advanceArmed = false
	e.advanceGen++
}

func (e *Engine) cue(sound core.SoundType) {
	if e.observer != nil {
		e.observer.OnCue(sound)
	}
}

func (e *Engine) emit() {
	if e.observer != nil {
		e.observer.OnSnapshot(e.Snapshot())
	}
}
