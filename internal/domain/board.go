// Package domain contains the core board types for the taskboard application.
package domain

// BoardsData is the persisted document and the root the boards reducer
// operates on.
type BoardsData struct {
	Boards []Board `json:"boards"`
}

// Board is a named set of ordered columns. Boards are addressed by their
// index in BoardsData.Boards.
type Board struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// Column groups the tasks whose status equals its name
type Column struct {
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// Task is a card inside a column
type Task struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Subtasks    []Subtask `json:"subtasks"`
}

// Subtask is a checklist item of a task
type Subtask struct {
	Title       string `json:"title"`
	IsCompleted bool   `json:"isCompleted"`
}

// CompletedSubtasks returns how many subtasks are done
func (t Task) CompletedSubtasks() int {
	n := 0
	for _, st := range t.Subtasks {
		if st.IsCompleted {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the task
func (t Task) Clone() Task {
	out := t
	out.Subtasks = make([]Subtask, len(t.Subtasks))
	copy(out.Subtasks, t.Subtasks)
	return out
}

// Clone returns a deep copy of the column
func (c Column) Clone() Column {
	out := Column{Name: c.Name, Tasks: make([]Task, len(c.Tasks))}
	for i, t := range c.Tasks {
		out.Tasks[i] = t.Clone()
	}
	return out
}

// Clone returns a deep copy of the board
func (b Board) Clone() Board {
	out := Board{Name: b.Name, Columns: make([]Column, len(b.Columns))}
	for i, c := range b.Columns {
		out.Columns[i] = c.Clone()
	}
	return out
}

// ColumnIndex returns the index of the first column named name, or -1
func (b Board) ColumnIndex(name string) int {
	for i, c := range b.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// ColumnNames returns the column names in display order
func (b Board) ColumnNames() []string {
	names := make([]string, len(b.Columns))
	for i, c := range b.Columns {
		names[i] = c.Name
	}
	return names
}

// TaskCount returns the number of tasks across all columns
func (b Board) TaskCount() int {
	n := 0
	for _, c := range b.Columns {
		n += len(c.Tasks)
	}
	return n
}

// CloneBoards returns a deep copy of a board slice. A nil input yields an
// empty, non-nil slice so the result always serializes as an array.
func CloneBoards(boards []Board) []Board {
	out := make([]Board, len(boards))
	for i, b := range boards {
		out[i] = b.Clone()
	}
	return out
}

// StatusViolation describes a task whose status names no column of its board
type StatusViolation struct {
	Board  int
	Column string
	Task   int
	Status string
}

// CheckStatuses reports every task whose status does not match a column name
// within its board. An empty result means the status invariant holds.
func CheckStatuses(boards []Board) []StatusViolation {
	var out []StatusViolation
	for bi, b := range boards {
		names := make(map[string]bool, len(b.Columns))
		for _, c := range b.Columns {
			names[c.Name] = true
		}
		for _, c := range b.Columns {
			for ti, t := range c.Tasks {
				if !names[t.Status] {
					out = append(out, StatusViolation{Board: bi, Column: c.Name, Task: ti, Status: t.Status})
				}
			}
		}
	}
	return out
}
