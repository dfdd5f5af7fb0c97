package constants

// Panel layout: slots per row, top to bottom
var PanelRows = [...]int{4, 5, 4}

// UI Layout Constants
const (
	// SlotCellWidth is the horizontal space one slot occupies including gap
	SlotCellWidth = 6

	// SlotCellHeight is the vertical space one slot row occupies including gap
	SlotCellHeight = 2

	// ConfirmWidth is the width of a confirmation control
	ConfirmWidth = 16

	// ModalPadding is the horizontal padding inside the terminal message box
	ModalPadding = 2
)

// Key bindings, index == slot
const SlotKeys = "1234qwertasdf"

// Control keys
const (
	KeyConfirm1 = 'z'
	KeyConfirm2 = 'm'
	KeyStart    = 'n'
	KeyReset    = 'x'
	KeyDismiss  = ' '
)

// PulsePeriodMs is the blink period for lit slots and the ready gate
const PulsePeriodMs = 400
