// Package overlay provides the modal dialogs drawn over the board: a
// confirmation prompt and the task and board forms.
package overlay

import (
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"
)

// Overlay represents a modal overlay component
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the overlay should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when a confirm dialog is answered
type SelectionMsg struct {
	Key   string
	Value any
}

// Render frames the overlay with its title and centers it in a
// width x height area
func Render(o Overlay, s *Styles, width, height int) string {
	w, _ := o.Size()
	if w > width-2 {
		w = width - 2
	}
	body := lipgloss.JoinVertical(lipgloss.Left, s.Title.Render(o.Title()), o.View())
	box := s.Overlay.Width(w).Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func closeCmd() tea.Msg { return CloseOverlayMsg{} }
