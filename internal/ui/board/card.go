package board

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// renderCard renders a task card
func renderCard(task domain.Task, isCursor bool, width int, s *styles.Styles) string {
	cardStyle := s.Card
	if isCursor {
		cardStyle = s.CardActive
	}
	cardStyle = cardStyle.Width(width)

	// Account for padding (2) and the cursor marker
	title := truncate(task.Title, width-3)

	cursor := ""
	if isCursor {
		cursor = "▶"
	}

	titleLine := s.TaskTitle.Render(cursor + title)
	content := titleLine
	if len(task.Subtasks) > 0 {
		content = lipgloss.JoinVertical(lipgloss.Left, titleLine, subtaskLine(task, s))
	}

	return cardStyle.Render(content)
}

// subtaskLine renders the "done of total subtasks" progress line
func subtaskLine(task domain.Task, s *styles.Styles) string {
	done := task.CompletedSubtasks()
	text := fmt.Sprintf("%d of %d subtasks", done, len(task.Subtasks))
	if done == len(task.Subtasks) {
		return s.SubtaskDone.Render("✓ " + text)
	}
	return s.SubtaskCount.Render(text)
}

// RenderCard is the exported version for testing
func RenderCard(task domain.Task, isCursor bool, width int, s *styles.Styles) string {
	return renderCard(task, isCursor, width, s)
}

// truncate shortens text to at most max runes, ending with an ellipsis
func truncate(text string, max int) string {
	r := []rune(text)
	if max <= 0 {
		return ""
	}
	if len(r) <= max {
		return text
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}
