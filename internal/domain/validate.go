package domain

import (
	"fmt"
	"strings"
)

// ValidateBoard checks a board name and its column names before they are
// dispatched. Column names must be non-blank and unique within the board.
func ValidateBoard(name string, columns []string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("board: %w", ErrEmptyName)
	}
	seen := make(map[string]bool, len(columns))
	for i, c := range columns {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("column %d: %w", i+1, ErrEmptyName)
		}
		if seen[c] {
			return fmt.Errorf("column %q: %w", c, ErrDuplicate)
		}
		seen[c] = true
	}
	return nil
}

// ValidateTask checks that a task and its subtasks have titles
func ValidateTask(t Task) error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task: %w", ErrEmptyName)
	}
	for i, st := range t.Subtasks {
		if strings.TrimSpace(st.Title) == "" {
			return fmt.Errorf("subtask %d: %w", i+1, ErrEmptyName)
		}
	}
	return nil
}
