package render

import "github.com/lixenwraith/popit/constants"

// Rect is a screen-space rectangle in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// TargetKind identifies the control under a screen cell
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetSlot
	TargetConfirm1
	TargetConfirm2
)

// Target is the result of a hit test
type Target struct {
	Kind TargetKind
	Slot int // Valid when Kind == TargetSlot
}

// Layout holds the cell geometry of every control for one screen size
type Layout struct {
	Width, Height int
	Fits          bool // False when the terminal is too small for the panel

	Header    Rect
	Confirm1  Rect
	Confirm2  Rect
	Slots     [constants.TotalSlots]Rect
	StatusBar Rect
}

// panelWidth returns the widest slot row in cells
func panelWidth() int {
	widest := 0
	for _, n := range constants.PanelRows {
		widest = max(widest, n)
	}
	return widest*constants.SlotCellWidth - 1
}

// contentHeight is header, confirm1, slot rows, confirm2 and status bar with one blank row between each
func contentHeight() int {
	rows := len(constants.PanelRows)*constants.SlotCellHeight - 1
	return 1 + 1 + 1 + 1 + rows + 1 + 1 + 1 + 1
}

// ComputeLayout places the panel centered in a width x height screen
func ComputeLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}

	needW := max(panelWidth(), constants.ConfirmWidth)
	if width < needW || height < contentHeight() {
		return l
	}
	l.Fits = true

	l.Header = Rect{X: 0, Y: 0, W: width, H: 1}
	l.StatusBar = Rect{X: 0, Y: height - 1, W: width, H: 1}

	// Block between header and status bar is centered vertically
	block := contentHeight() - 4
	top := 2 + (height-4-block)/2

	confirmX := (width - constants.ConfirmWidth) / 2
	l.Confirm1 = Rect{X: confirmX, Y: top, W: constants.ConfirmWidth, H: 1}

	y := top + 2
	slot := 0
	for _, n := range constants.PanelRows {
		rowW := n*constants.SlotCellWidth - 1
		x := (width - rowW) / 2
		for i := 0; i < n; i++ {
			l.Slots[slot] = Rect{
				X: x + i*constants.SlotCellWidth,
				Y: y,
				W: constants.SlotCellWidth - 1,
				H: constants.SlotCellHeight - 1,
			}
			slot++
		}
		y += constants.SlotCellHeight
	}

	lastRow := y - constants.SlotCellHeight
	l.Confirm2 = Rect{X: confirmX, Y: lastRow + 2, W: constants.ConfirmWidth, H: 1}
	return l
}

// HitTest returns the control under (x, y)
func (l *Layout) HitTest(x, y int) Target {
	if !l.Fits {
		return Target{Kind: TargetNone}
	}
	if l.Confirm1.Contains(x, y) {
		return Target{Kind: TargetConfirm1}
	}
	if l.Confirm2.Contains(x, y) {
		return Target{Kind: TargetConfirm2}
	}
	for i, r := range l.Slots {
		if r.Contains(x, y) {
			return Target{Kind: TargetSlot, Slot: i}
		}
	}
	return Target{Kind: TargetNone}
}
