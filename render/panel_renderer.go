package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/popit/constants"
	"github.com/lixenwraith/popit/engine"
	"github.com/lixenwraith/popit/status"
)

// Stats is the session statistics line shown in the status bar
type Stats struct {
	Started int64
	Won     int64
	Lost    int64
	Best    int64
}

// StatsFrom reads the current values out of the registry
func StatsFrom(reg *status.Registry) Stats {
	if reg == nil {
		return Stats{}
	}
	return Stats{
		Started: reg.Ints.Get(status.KeyGamesStarted).Load(),
		Won:     reg.Ints.Get(status.KeyGamesWon).Load(),
		Lost:    reg.Ints.Get(status.KeyGamesLost).Load(),
		Best:    reg.Ints.Get(status.KeyBestPhase).Load(),
	}
}

// Frame is everything needed to draw one screen
type Frame struct {
	Snapshot     engine.Snapshot
	Stats        Stats
	ModalVisible bool
	Now          time.Time
}

// PanelRenderer draws the slot panel and its controls to a tcell screen
type PanelRenderer struct {
	screen tcell.Screen
	layout Layout
}

// NewPanelRenderer creates a renderer sized to the current screen
func NewPanelRenderer(screen tcell.Screen) *PanelRenderer {
	r := &PanelRenderer{screen: screen}
	r.Resize()
	return r
}

// Resize recomputes the layout from the screen size
func (r *PanelRenderer) Resize() Layout {
	w, h := r.screen.Size()
	r.layout = ComputeLayout(w, h)
	return r.layout
}

// Layout returns the geometry used by the last Resize
func (r *PanelRenderer) Layout() Layout {
	return r.layout
}

// RenderFrame draws the frame and flushes it to the terminal
func (r *PanelRenderer) RenderFrame(f Frame) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	if !r.layout.Fits {
		r.drawText(0, 0, defaultStyle, "terminal too small")
		r.screen.Show()
		return
	}

	pulse := pulseOn(f.Now)
	snap := &f.Snapshot

	r.drawHeader(snap, pulse, defaultStyle)
	r.drawConfirm(r.layout.Confirm1, "CONFIRM 1", constants.KeyConfirm1, snap.Confirm1, snap, pulse)
	r.drawSlots(snap, pulse)
	r.drawConfirm(r.layout.Confirm2, "CONFIRM 2", constants.KeyConfirm2, snap.Confirm2, snap, pulse)
	r.drawStatusBar(f.Stats)

	if f.ModalVisible && snap.TerminalMessage != "" {
		r.drawModal(snap.TerminalMessage)
	}

	r.screen.Show()
}

// pulseOn alternates every PulsePeriodMs
func pulseOn(now time.Time) bool {
	return (now.UnixMilli()/constants.PulsePeriodMs)%2 == 0
}

func (r *PanelRenderer) drawHeader(snap *engine.Snapshot, pulse bool, style tcell.Style) {
	x := r.drawText(1, r.layout.Header.Y, style.Bold(true), "POP-IT")

	switch snap.Status {
	case engine.StatusActive:
		x = r.drawText(x+2, r.layout.Header.Y, style, fmt.Sprintf("Phase %d/%d", snap.Phase, constants.MaxPhase))
		timerStyle := style.Foreground(TimerColor(snap.TimeRemaining)).Bold(true)
		x = r.drawText(x+2, r.layout.Header.Y, timerStyle, fmt.Sprintf("Time %ds", snap.TimeRemaining))
		if snap.AdvanceReady && pulse {
			r.drawText(x+2, r.layout.Header.Y, style.Foreground(RgbConfirmReady).Bold(true), "READY")
		}
	default:
		r.drawText(x+2, r.layout.Header.Y, style.Foreground(RgbDimText),
			fmt.Sprintf("press %c to start", constants.KeyStart))
	}
}

func (r *PanelRenderer) drawSlots(snap *engine.Snapshot, pulse bool) {
	active := snap.Status == engine.StatusActive

	for i, rect := range r.layout.Slots {
		bg := RgbSlotIdle
		fg := RgbSlotLabelIdle
		switch {
		case active && snap.Popped[i]:
			bg, fg = RgbSlotPopped, RgbSlotLabel
		case active && snap.IsLit(i):
			bg, fg = RgbSlotLitDim, RgbSlotLabel
			if pulse {
				bg = RgbSlotLit
			}
		}
		style := tcell.StyleDefault.Background(bg).Foreground(fg)
		r.fill(rect, style)
		r.screen.SetContent(rect.X+rect.W/2, rect.Y, rune(constants.SlotKeys[i]), nil, style.Bold(true))
	}
}

func (r *PanelRenderer) drawConfirm(rect Rect, label string, key rune, on bool, snap *engine.Snapshot, pulse bool) {
	bg := RgbConfirmOff
	if on {
		bg = RgbConfirmOn
		if snap.AdvanceReady && pulse {
			bg = RgbConfirmReady
		}
	}
	style := tcell.StyleDefault.Background(bg).Foreground(RgbText)
	if on {
		style = style.Foreground(RgbStatusText).Bold(true)
	}
	r.fill(rect, style)

	text := fmt.Sprintf("%s (%c)", label, key)
	r.drawText(rect.X+(rect.W-len(text))/2, rect.Y, style, text)
}

func (r *PanelRenderer) drawStatusBar(stats Stats) {
	style := tcell.StyleDefault.Background(RgbStatusBarBg).Foreground(RgbStatusText)
	r.fill(r.layout.StatusBar, style)

	left := fmt.Sprintf(" games %d  won %d  lost %d  best %d", stats.Started, stats.Won, stats.Lost, stats.Best)
	r.drawText(0, r.layout.StatusBar.Y, style, left)

	hints := fmt.Sprintf("%c start  %c reset  ^q quit ", constants.KeyStart, constants.KeyReset)
	if x := r.layout.Width - len(hints); x > len(left) {
		r.drawText(x, r.layout.StatusBar.Y, style, hints)
	}
}

// drawModal renders the terminal message box centered over the panel
func (r *PanelRenderer) drawModal(message string) {
	hint := "press space to dismiss"
	inner := max(len(message), len(hint)) + 2*constants.ModalPadding
	box := Rect{
		X: (r.layout.Width - inner - 2) / 2,
		Y: (r.layout.Height - 5) / 2,
		W: inner + 2,
		H: 5,
	}

	bg := RgbModalLose
	if message == constants.MessageAllComplete {
		bg = RgbModalWin
	}
	style := tcell.StyleDefault.Background(bg).Foreground(RgbModalBorder)
	r.fill(box, style)

	// Border
	for x := box.X; x < box.X+box.W; x++ {
		r.screen.SetContent(x, box.Y, tcell.RuneHLine, nil, style)
		r.screen.SetContent(x, box.Y+box.H-1, tcell.RuneHLine, nil, style)
	}
	for y := box.Y; y < box.Y+box.H; y++ {
		r.screen.SetContent(box.X, y, tcell.RuneVLine, nil, style)
		r.screen.SetContent(box.X+box.W-1, y, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(box.X, box.Y, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(box.X+box.W-1, box.Y, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(box.X, box.Y+box.H-1, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(box.X+box.W-1, box.Y+box.H-1, tcell.RuneLRCorner, nil, style)

	r.drawText(box.X+(box.W-len(message))/2, box.Y+1, style.Bold(true), message)
	r.drawText(box.X+(box.W-len(hint))/2, box.Y+3, style, hint)
}

// drawText writes ASCII text and returns the column after it
func (r *PanelRenderer) drawText(x, y int, style tcell.Style, text string) int {
	for _, ch := range text {
		if x >= r.layout.Width {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func (r *PanelRenderer) fill(rect Rect, style tcell.Style) {
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
