package statusbar

import "github.com/riordanpawley/taskboard/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeBoard:
		return "tab: boards  h/l: columns  j/k: tasks  H/L: move  space: subtask  a: add  x: delete  q: quit"
	case types.ModeConfirm:
		return "y: yes  n: no  Enter: confirm  Esc: cancel"
	case types.ModeInput:
		return "Tab: next field  Ctrl+S: submit  Esc: cancel"
	default:
		return ""
	}
}
