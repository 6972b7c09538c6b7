// Package board renders a single board with its columns side by side.
package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// EmptyBoardText is shown when a board has no columns
const EmptyBoardText = "This board is empty. Create a new column to get started."

// Render renders a board with one column per domain column
func Render(b domain.Board, cursor Cursor, s *styles.Styles, width int, height int) string {
	if len(b.Columns) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s.ColumnEmpty.Render(EmptyBoardText))
	}

	columnWidth := width / len(b.Columns)

	var columnStrings []string
	for i, col := range b.Columns {
		isActive := i == cursor.Column
		cursorTask := 0
		if isActive {
			cursorTask = cursor.Task
		}

		columnStr := renderColumn(col, i, cursorTask, isActive, columnWidth, height, s)

		// Force consistent width using lipgloss Width
		sized := lipgloss.NewStyle().Width(columnWidth).Height(height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
}

// RenderTabs renders the board names as a tab line, highlighting the
// selected board
func RenderTabs(boards []domain.Board, selected int, s *styles.Styles, width int) string {
	if len(boards) == 0 {
		return s.Tab.Render("No boards")
	}

	tabs := make([]string, 0, len(boards))
	for i, b := range boards {
		style := s.Tab
		if i == selected {
			style = s.TabActive
		}
		tabs = append(tabs, style.Render(b.Name))
	}

	line := strings.Join(tabs, " ")
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
