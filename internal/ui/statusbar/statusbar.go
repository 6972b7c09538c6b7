// Package statusbar renders the bottom status line.
package statusbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode    types.Mode
	board   string
	tasks   int
	loading string
	width   int
	styles  *styles.Styles
}

// New creates a new StatusBar with the given mode, width, and styles
func New(mode types.Mode, width int, styles *styles.Styles) StatusBar {
	return StatusBar{
		mode:   mode,
		width:  width,
		styles: styles,
	}
}

// WithBoard sets the selected board summary
func (sb StatusBar) WithBoard(name string, tasks int) StatusBar {
	sb.board = name
	sb.tasks = tasks
	return sb
}

// WithLoading sets the spinner frame shown while loading. Empty hides it.
func (sb StatusBar) WithLoading(spinner string) StatusBar {
	sb.loading = spinner
	return sb
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	parts := []string{sb.styles.StatusMode.Render(" " + sb.mode.String() + " ")}
	separator := sb.styles.StatusHint.Render(" │ ")

	if sb.loading != "" {
		parts = append(parts, " ", sb.styles.Spinner.Render(sb.loading), sb.styles.StatusInfo.Render(" Loading"))
	}

	if sb.board != "" {
		info := fmt.Sprintf("%s (%d tasks)", sb.board, sb.tasks)
		parts = append(parts, separator, sb.styles.StatusInfo.Render(info))
	}

	if hints := GetHints(sb.mode); hints != "" {
		parts = append(parts, separator, sb.styles.StatusHint.Render(hints))
	}

	return sb.styles.StatusBar.Width(sb.width).Render(lipgloss.JoinHorizontal(lipgloss.Left, parts...))
}
