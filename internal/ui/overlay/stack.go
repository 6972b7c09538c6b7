package overlay

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskboard/internal/types"
)

// Stack holds the open dialogs. Only the top dialog receives input and is
// drawn; the board underneath is hidden while any dialog is open.
type Stack struct {
	dialogs []Overlay
	styles  *Styles
}

// NewStack creates an empty stack
func NewStack() *Stack {
	return &Stack{styles: New()}
}

// Push opens o on top of the stack and returns its Init command, which
// starts the cursor blink of the forms
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.dialogs = append(s.dialogs, o)
	return o.Init()
}

// Pop closes the top dialog and returns it, or nil when nothing is open
func (s *Stack) Pop() Overlay {
	top := s.Current()
	if top != nil {
		s.dialogs = s.dialogs[:len(s.dialogs)-1]
	}
	return top
}

// Current returns the top dialog, or nil when nothing is open
func (s *Stack) Current() Overlay {
	if len(s.dialogs) == 0 {
		return nil
	}
	return s.dialogs[len(s.dialogs)-1]
}

// IsEmpty reports whether no dialog is open
func (s *Stack) IsEmpty() bool {
	return len(s.dialogs) == 0
}

// Len returns the number of open dialogs
func (s *Stack) Len() int {
	return len(s.dialogs)
}

// Dismiss closes the top dialog when msg ends it: a cancel or a confirm
// answer. It reports whether msg was such a message.
func (s *Stack) Dismiss(msg tea.Msg) bool {
	switch msg.(type) {
	case CloseOverlayMsg, SelectionMsg:
		s.Pop()
		return true
	}
	return false
}

// Update forwards msg to the top dialog and keeps its updated model
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	if s.Dismiss(msg) || s.IsEmpty() {
		return nil
	}

	next, cmd := s.Current().Update(msg)
	if o, ok := next.(Overlay); ok {
		s.dialogs[len(s.dialogs)-1] = o
	}
	return cmd
}

// Mode is the input mode shown in the status bar for the top dialog
func (s *Stack) Mode() types.Mode {
	switch s.Current().(type) {
	case *ConfirmDialog:
		return types.ModeConfirm
	case *TaskForm, *BoardForm:
		return types.ModeInput
	default:
		return types.ModeBoard
	}
}

// View renders the top dialog centered in a width x height area. It
// returns "" when nothing is open.
func (s *Stack) View(width, height int) string {
	top := s.Current()
	if top == nil {
		return ""
	}
	return Render(top, s.styles, width, height)
}
