package types

// Mode is the input mode of the board view
type Mode int

const (
	// ModeBoard navigates and edits the selected board
	ModeBoard Mode = iota
	// ModeConfirm waits for a yes/no answer
	ModeConfirm
	// ModeInput edits a form
	ModeInput
)

// String returns the label shown in the status bar
func (m Mode) String() string {
	switch m {
	case ModeBoard:
		return "BOARD"
	case ModeConfirm:
		return "CONFIRM"
	case ModeInput:
		return "INPUT"
	default:
		return "UNKNOWN"
	}
}
