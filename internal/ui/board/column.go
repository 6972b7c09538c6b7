package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// renderColumn renders a board column with header and task cards
func renderColumn(
	col domain.Column,
	idx int,
	cursorTask int,
	isActive bool,
	width int,
	height int,
	s *styles.Styles,
) string {
	headerStyle := s.ColumnHeader
	if isActive {
		headerStyle = s.ColumnHeaderActive
	}

	// "● TODO (3) ─────"
	dot := lipgloss.NewStyle().Foreground(styles.ColumnColor(idx)).Render("●")
	label := fmt.Sprintf(" %s (%d) ", strings.ToUpper(col.Name), len(col.Tasks))
	remainingWidth := width - lipgloss.Width(label) - 3 // dot and padding
	if remainingWidth > 0 {
		label += strings.Repeat("─", remainingWidth)
	}
	header := dot + headerStyle.Render(label)

	var cardStrings []string
	cardWidth := width - 6 // Column border and padding, card border
	for i, task := range col.Tasks {
		cardStrings = append(cardStrings, renderCard(task, isActive && i == cursorTask, cardWidth, s))
	}

	content := s.ColumnEmpty.Render("No tasks")
	if len(cardStrings) > 0 {
		content = strings.Join(cardStrings, "\n")
	}

	columnStyle := s.Column.Width(width - 2).Height(height)
	return lipgloss.JoinVertical(lipgloss.Left, header, columnStyle.Render(content))
}
