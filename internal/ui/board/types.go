package board

import "github.com/riordanpawley/taskboard/internal/domain"

// Cursor represents the current cursor position on a board
type Cursor struct {
	Column int // Column index
	Task   int // Task index within column
}

// Clamp returns the cursor moved inside the bounds of b. An empty column
// leaves Task at 0.
func (c Cursor) Clamp(b domain.Board) Cursor {
	if len(b.Columns) == 0 {
		return Cursor{}
	}
	c.Column = clamp(c.Column, 0, len(b.Columns)-1)
	tasks := len(b.Columns[c.Column].Tasks)
	if tasks == 0 {
		c.Task = 0
		return c
	}
	c.Task = clamp(c.Task, 0, tasks-1)
	return c
}

// HasTask reports whether the cursor points at an existing task of b
func (c Cursor) HasTask(b domain.Board) bool {
	if c.Column < 0 || c.Column >= len(b.Columns) {
		return false
	}
	return c.Task >= 0 && c.Task < len(b.Columns[c.Column].Tasks)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
