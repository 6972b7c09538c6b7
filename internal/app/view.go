package app

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/ui/board"
	"github.com/riordanpawley/taskboard/internal/ui/statusbar"
)

// NoBoardText is shown when the selected board index has no board
const NoBoardText = "No board selected. Press B to create a board."

// View renders the board view
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	tabs := board.RenderTabs(m.boards.Boards(), m.selected, m.styles, m.width)
	status := m.renderStatusBar()

	var footer []string
	if toasts := m.toasts.Render(m.ui.Toasts(), m.width); toasts != "" {
		footer = append(footer, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toasts))
	}
	if m.help.ShowAll {
		footer = append(footer, m.help.View(m.keys))
	}
	footer = append(footer, status)
	bottom := lipgloss.JoinVertical(lipgloss.Left, footer...)

	mainHeight := max(m.height-lipgloss.Height(tabs)-lipgloss.Height(bottom), 3)

	main := m.overlayStack.View(m.width, mainHeight)
	if main == "" {
		main = m.renderBoard(mainHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabs, main, bottom)
}

// renderBoard renders the selected board, a loading indicator while the
// initial load runs, or the no-board placeholder
func (m Model) renderBoard(height int) string {
	if b, ok := m.boards.Board(m.selected); ok {
		// Column header and border take four lines
		return board.Render(b, m.cursor, m.styles, m.width, max(height-4, 1))
	}

	text := m.styles.ColumnEmpty.Render(NoBoardText)
	if m.ui.IsLoading() {
		text = lipgloss.JoinVertical(lipgloss.Center, m.spinner.View(), "Loading boards...")
	}
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, text)
}

func (m Model) renderStatusBar() string {
	sb := statusbar.New(m.overlayStack.Mode(), m.width, m.styles)
	if b, ok := m.boards.Board(m.selected); ok {
		sb = sb.WithBoard(b.Name, b.TaskCount())
	}
	if m.ui.IsLoading() {
		sb = sb.WithLoading(m.spinner.View())
	}
	return sb.Render()
}
