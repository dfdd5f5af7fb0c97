package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for panel elements
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbText       = tcell.NewRGBColor(220, 220, 220) // Near white
	RgbDimText    = tcell.NewRGBColor(110, 110, 120) // Muted gray

	RgbSlotIdle      = tcell.NewRGBColor(60, 62, 80)   // Unlit slot
	RgbSlotLit       = tcell.NewRGBColor(255, 200, 0)  // Lit slot, pulse high
	RgbSlotLitDim    = tcell.NewRGBColor(160, 120, 0)  // Lit slot, pulse low
	RgbSlotPopped    = tcell.NewRGBColor(0, 200, 0)    // Pressed lit slot
	RgbSlotLabel     = tcell.NewRGBColor(0, 0, 0)      // Label on bright slots
	RgbSlotLabelIdle = tcell.NewRGBColor(150, 150, 160) // Label on unlit slots

	RgbConfirmOff   = tcell.NewRGBColor(70, 70, 90)    // Confirmation control released
	RgbConfirmOn    = tcell.NewRGBColor(100, 150, 255) // Confirmation control engaged
	RgbConfirmReady = tcell.NewRGBColor(144, 238, 144) // Gate open, advance pending

	RgbTimerOk   = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbTimerLow  = tcell.NewRGBColor(255, 165, 0)   // Orange at 2s
	RgbTimerCrit = tcell.NewRGBColor(200, 50, 50)   // Red at 1s or less

	RgbStatusBarBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)       // Dark text for status

	RgbModalBorder = tcell.NewRGBColor(255, 255, 255) // White
	RgbModalWin    = tcell.NewRGBColor(0, 130, 0)     // Dark green
	RgbModalLose   = tcell.NewRGBColor(180, 50, 50)   // Dark red
)

// TimerColor returns the countdown color for seconds remaining
func TimerColor(remaining int) tcell.Color {
	switch {
	case remaining <= 1:
		return RgbTimerCrit
	case remaining == 2:
		return RgbTimerLow
	default:
		return RgbTimerOk
	}
}
