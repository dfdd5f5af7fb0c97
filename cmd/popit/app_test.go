package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/popit/config"
	"github.com/lixenwraith/popit/constants"
	"github.com/lixenwraith/popit/core"
	"github.com/lixenwraith/popit/engine"
	"github.com/lixenwraith/popit/status"
)

type recordingCues struct {
	played []core.SoundType
}

func (r *recordingCues) Play(sound core.SoundType) { r.played = append(r.played, sound) }

func testConfig() *config.Config {
	return &config.Config{
		Game: config.GameConfig{
			RoundStartSeconds:   constants.RoundStartSeconds,
			PhaseAdvanceSeconds: constants.PhaseAdvanceSeconds,
			IdleSeconds:         constants.IdleSeconds,
			AdvanceDelay:        constants.AdvanceDelay,
			TickInterval:        constants.ClockTickInterval,
		},
		Audio: config.AudioConfig{Enabled: false},
		UI:    config.UIConfig{FrameInterval: constants.FrameUpdateInterval},
		Log:   config.LogConfig{Level: "info"},
	}
}

func newTestApp(t *testing.T) (*App, tcell.SimulationScreen, *engine.MockTimeProvider, *recordingCues) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	mock := engine.NewMockTimeProvider(time.UnixMilli(0))
	cues := &recordingCues{}
	app := NewApp(AppOptions{
		Screen:       screen,
		Config:       testConfig(),
		Logger:       zerolog.Nop(),
		Sounds:       cues,
		Stats:        status.NewRegistry(),
		TimeProvider: mock,
	})
	return app, screen, mock, cues
}

func key(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

// send feeds an event and drains the resulting engine work
func send(t *testing.T, app *App, ev tcell.Event) {
	t.Helper()
	require.True(t, app.HandleEvent(ev))
	app.loop.Drain()
}

func screenContains(screen tcell.Screen, text string) bool {
	w, h := screen.Size()
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			ch, _, _, _ := screen.GetContent(x, y)
			sb.WriteRune(ch)
		}
		if strings.Contains(sb.String(), text) {
			return true
		}
	}
	return false
}

func unlitSlot(snap engine.Snapshot) int {
	for i := 0; i < constants.TotalSlots; i++ {
		if !snap.IsLit(i) {
			return i
		}
	}
	return -1
}

func TestAppStartAndRender(t *testing.T) {
	app, screen, _, cues := newTestApp(t)

	send(t, app, key(constants.KeyStart))

	snap := app.view.Snapshot()
	assert.Equal(t, engine.StatusActive, snap.Status)
	assert.Len(t, snap.Lit, 3)
	assert.Equal(t, []core.SoundType{core.SoundRoundStart}, cues.played)

	app.Render()
	assert.True(t, screenContains(screen, "Phase 1/20"))
	assert.True(t, screenContains(screen, "games 1"))
}

func TestAppWrongSlotShowsDismissableModal(t *testing.T) {
	app, screen, _, _ := newTestApp(t)

	send(t, app, key(constants.KeyStart))
	wrong := unlitSlot(app.view.Snapshot())
	send(t, app, key(rune(constants.SlotKeys[wrong])))

	snap := app.view.Snapshot()
	assert.Equal(t, engine.StatusIdle, snap.Status)
	assert.Equal(t, constants.MessageWrongSlot, snap.TerminalMessage)
	assert.True(t, app.ModalVisible())

	app.Render()
	assert.True(t, screenContains(screen, constants.MessageWrongSlot))

	// Unbound key dismisses without touching the engine
	send(t, app, key('p'))
	assert.False(t, app.ModalVisible())
	assert.Equal(t, constants.MessageWrongSlot, app.view.Snapshot().TerminalMessage)

	app.Render()
	assert.False(t, screenContains(screen, constants.MessageWrongSlot))

	// Next game clears the message
	send(t, app, key(constants.KeyStart))
	assert.Empty(t, app.view.Snapshot().TerminalMessage)
}

func TestAppTimeoutViaMockClock(t *testing.T) {
	app, _, mock, cues := newTestApp(t)

	send(t, app, key(constants.KeyStart))
	for i := 0; i < constants.RoundStartSeconds; i++ {
		mock.Advance(constants.ClockTickInterval)
		app.loop.Drain()
	}

	snap := app.view.Snapshot()
	assert.Equal(t, engine.StatusIdle, snap.Status)
	assert.Equal(t, constants.MessageTimeExpired, snap.TerminalMessage)
	assert.Equal(t, core.SoundLose, cues.played[len(cues.played)-1])
	assert.Equal(t, int64(1), app.stats.Ints.Get(status.KeyGamesLost).Load())
}

func TestAppMouseAdvancesPhase(t *testing.T) {
	app, _, mock, _ := newTestApp(t)
	layout := app.renderer.Layout()

	click := func(x, y int) {
		send(t, app, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
		send(t, app, tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
	}

	send(t, app, key(constants.KeyStart))
	for _, slot := range app.view.Snapshot().Lit {
		r := layout.Slots[slot]
		click(r.X, r.Y)
	}
	click(layout.Confirm1.X, layout.Confirm1.Y)
	click(layout.Confirm2.X, layout.Confirm2.Y)
	require.True(t, app.view.Snapshot().AdvanceReady)

	mock.Advance(constants.AdvanceDelay)
	app.loop.Drain()

	snap := app.view.Snapshot()
	assert.Equal(t, 2, snap.Phase)
	assert.Equal(t, constants.PhaseAdvanceSeconds, snap.TimeRemaining)
	assert.False(t, snap.Confirm1)
	assert.False(t, snap.Confirm2)
}

func TestAppQuit(t *testing.T) {
	app, _, _, _ := newTestApp(t)
	assert.False(t, app.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)))
}

func TestAppResize(t *testing.T) {
	app, screen, _, _ := newTestApp(t)

	screen.SetSize(120, 40)
	send(t, app, tcell.NewEventResize(120, 40))

	assert.Equal(t, 120, app.renderer.Layout().Width)
	assert.Equal(t, 40, app.renderer.Layout().Height)
}

func TestAppRenderSkipsIdleWithoutChanges(t *testing.T) {
	app, _, _, _ := newTestApp(t)

	app.Render()
	assert.False(t, app.uiDirty)
	assert.False(t, app.view.TakeDirty())
}
