package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/popit/config"
	"github.com/lixenwraith/popit/core"
	"github.com/lixenwraith/popit/engine"
	"github.com/lixenwraith/popit/events"
	"github.com/lixenwraith/popit/input"
	"github.com/lixenwraith/popit/render"
	"github.com/lixenwraith/popit/status"
)

// App wires the terminal, input parser, event loop and engine together
type App struct {
	screen   tcell.Screen
	renderer *render.PanelRenderer
	machine  *input.Machine
	loop     *engine.EventLoop
	engine   *engine.Engine
	view     *viewState
	stats    *status.Registry
	logger   zerolog.Logger
	provider engine.TimeProvider

	frameInterval time.Duration

	// Session whose terminal message the player dismissed
	dismissedSession string
	// Forces a redraw on the next frame for UI-only changes
	uiDirty bool
}

// AppOptions configures a new App
type AppOptions struct {
	Screen       tcell.Screen
	Config       *config.Config
	Logger       zerolog.Logger
	Sounds       CuePlayer
	Stats        *status.Registry
	TimeProvider engine.TimeProvider // nil uses the monotonic clock
}

// NewApp builds the game on an initialized screen, the event loop is not started
func NewApp(opts AppOptions) *App {
	if opts.Stats == nil {
		opts.Stats = status.NewRegistry()
	}
	if opts.TimeProvider == nil {
		opts.TimeProvider = engine.NewMonotonicTimeProvider()
	}

	queue := events.NewEventQueue()
	view := newViewState(opts.Sounds)

	eng := engine.New(engine.Options{
		Settings:     opts.Config.Settings(),
		TimeProvider: opts.TimeProvider,
		Logger:       opts.Logger.With().Str("component", "engine").Logger(),
		Observer:     view,
		Stats:        opts.Stats,
		Post:         queue.Push,
	})
	view.OnSnapshot(eng.Snapshot())

	renderer := render.NewPanelRenderer(opts.Screen)
	layout := renderer.Layout()

	return &App{
		screen:        opts.Screen,
		renderer:      renderer,
		machine:       input.NewMachine(&layout),
		loop:          engine.NewEventLoop(queue, eng, opts.Logger.With().Str("component", "loop").Logger()),
		engine:        eng,
		view:          view,
		stats:         opts.Stats,
		logger:        opts.Logger,
		provider:      opts.TimeProvider,
		frameInterval: opts.Config.UI.FrameInterval,
		uiDirty:       true,
	}
}

// HandleEvent applies one terminal event, returning false when the player quits
func (a *App) HandleEvent(ev tcell.Event) bool {
	intent := a.machine.Process(ev)
	if intent == nil {
		return true
	}

	switch intent.Type {
	case input.IntentQuit:
		a.logger.Info().Msg("quit requested")
		return false
	case input.IntentResize:
		a.screen.Sync()
		layout := a.renderer.Resize()
		a.machine.SetHitTester(&layout)
		a.uiDirty = true
	case input.IntentDismiss:
		if a.ModalVisible() {
			a.dismissedSession = a.view.Snapshot().SessionID
			a.uiDirty = true
		}
	default:
		if gev, ok := intent.GameEvent(); ok {
			a.loop.Post(gev)
		}
	}
	return true
}

// ModalVisible reports whether the terminal message box is showing
func (a *App) ModalVisible() bool {
	snap := a.view.Snapshot()
	return snap.TerminalMessage != "" && snap.SessionID != a.dismissedSession
}

// Render draws a frame when state changed, the pulse animation keeps an active round redrawing
func (a *App) Render() {
	changed := a.view.TakeDirty()
	snap := a.view.Snapshot()
	if !changed && !a.uiDirty && snap.Status != engine.StatusActive {
		return
	}
	a.uiDirty = false

	a.renderer.RenderFrame(render.Frame{
		Snapshot:     snap,
		Stats:        render.StatsFrom(a.stats),
		ModalVisible: a.ModalVisible(),
		Now:          a.provider.Now(),
	})
}

// Run drives the terminal until the player quits or the screen closes
func (a *App) Run() {
	a.loop.Start()
	defer a.loop.Stop()

	eventChan := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	// ChannelEvents closes eventChan once quit closes or the screen finishes
	a.screen.EnableMouse()
	core.Go(func() { a.screen.ChannelEvents(eventChan, quit) })

	frameTicker := time.NewTicker(a.frameInterval)
	defer frameTicker.Stop()

	a.Render()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if !a.HandleEvent(ev) {
				return
			}
		case <-frameTicker.C:
			a.Render()
		}
	}
}
