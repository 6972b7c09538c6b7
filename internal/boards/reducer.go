package boards

import (
	"errors"
	"fmt"

	"github.com/riordanpawley/taskboard/internal/domain"
)

// Reduce applies an action and returns the new state. It never panics and
// never mutates s: an action whose target cannot be located returns s
// unchanged.
func Reduce(s domain.BoardsData, a Action) domain.BoardsData {
	next, _ := Apply(s, a)
	return next
}

// Apply is Reduce that also reports why an action was a no-op. The returned
// error is an *domain.ActionError wrapping domain.ErrNotFound; the returned
// state is always valid.
func Apply(s domain.BoardsData, a Action) (domain.BoardsData, error) {
	switch a := a.(type) {
	case SetBoards:
		return domain.BoardsData{Boards: domain.CloneBoards(a.Boards)}, nil

	case AddBoard:
		b := domain.Board{Name: a.Name, Columns: make([]domain.Column, 0, len(a.ColumnNames))}
		for _, name := range a.ColumnNames {
			b.Columns = append(b.Columns, domain.Column{Name: name, Tasks: []domain.Task{}})
		}
		boards := make([]domain.Board, len(s.Boards), len(s.Boards)+1)
		copy(boards, s.Boards)
		return domain.BoardsData{Boards: append(boards, b)}, nil

	case EditBoard:
		return withBoard(s, a.Type(), a.Board, func(b *domain.Board) error {
			b.Name = a.Name
			b.Columns = rebuildColumns(b.Columns, a.ColumnNames, a.RenamedFrom)
			return nil
		})

	case DeleteBoard:
		if !inRange(a.Board, len(s.Boards)) {
			return s, boardNotFound(a.Type(), a.Board)
		}
		boards := make([]domain.Board, 0, len(s.Boards)-1)
		boards = append(boards, s.Boards[:a.Board]...)
		boards = append(boards, s.Boards[a.Board+1:]...)
		return domain.BoardsData{Boards: boards}, nil

	case AddTask:
		return withColumn(s, a.Type(), a.Board, a.Column, func(c *domain.Column) error {
			t := a.Task.Clone()
			t.Status = c.Name
			c.Tasks = append(c.Tasks, t)
			return nil
		})

	case EditTask:
		return withColumn(s, a.Type(), a.Board, a.Column, func(c *domain.Column) error {
			if !inRange(a.TaskIndex, len(c.Tasks)) {
				return taskNotFound(a.TaskIndex)
			}
			t := a.Task.Clone()
			t.Status = c.Name
			c.Tasks[a.TaskIndex] = t
			return nil
		})

	case DeleteTask:
		return withColumn(s, a.Type(), a.Board, a.Column, func(c *domain.Column) error {
			if !inRange(a.TaskIndex, len(c.Tasks)) {
				return taskNotFound(a.TaskIndex)
			}
			c.Tasks = append(c.Tasks[:a.TaskIndex], c.Tasks[a.TaskIndex+1:]...)
			return nil
		})

	case MoveTask:
		return withBoard(s, a.Type(), a.Board, func(b *domain.Board) error {
			from := b.ColumnIndex(a.From)
			if from < 0 {
				return columnNotFound(a.From)
			}
			to := b.ColumnIndex(a.To)
			if to < 0 {
				return columnNotFound(a.To)
			}
			src := &b.Columns[from]
			if !inRange(a.TaskIndex, len(src.Tasks)) {
				return taskNotFound(a.TaskIndex)
			}
			t := src.Tasks[a.TaskIndex]
			src.Tasks = append(src.Tasks[:a.TaskIndex], src.Tasks[a.TaskIndex+1:]...)

			dst := &b.Columns[to]
			t.Status = dst.Name
			idx := min(max(a.ToIndex, 0), len(dst.Tasks))
			dst.Tasks = append(dst.Tasks, domain.Task{})
			copy(dst.Tasks[idx+1:], dst.Tasks[idx:])
			dst.Tasks[idx] = t
			return nil
		})

	case ToggleSubtask:
		return withColumn(s, a.Type(), a.Board, a.Column, func(c *domain.Column) error {
			if !inRange(a.TaskIndex, len(c.Tasks)) {
				return taskNotFound(a.TaskIndex)
			}
			t := &c.Tasks[a.TaskIndex]
			if !inRange(a.SubtaskIndex, len(t.Subtasks)) {
				return fmt.Errorf("subtask %d: %w", a.SubtaskIndex, domain.ErrNotFound)
			}
			t.Subtasks[a.SubtaskIndex].IsCompleted = !t.Subtasks[a.SubtaskIndex].IsCompleted
			return nil
		})

	default:
		return s, &domain.ActionError{Op: "UNKNOWN", Message: fmt.Sprintf("unsupported action %T", a), Err: domain.ErrNotFound}
	}
}

// withBoard runs fn on a deep copy of board idx and returns a state sharing
// every other board with s. When fn fails s is returned untouched.
func withBoard(s domain.BoardsData, op ActionType, idx int, fn func(b *domain.Board) error) (domain.BoardsData, error) {
	if !inRange(idx, len(s.Boards)) {
		return s, boardNotFound(op, idx)
	}
	b := s.Boards[idx].Clone()
	if err := fn(&b); err != nil {
		var colErr *columnError
		if errors.As(err, &colErr) {
			return s, &domain.ActionError{Op: string(op), Board: idx, Column: colErr.name, Message: "column not found", Err: domain.ErrNotFound}
		}
		return s, &domain.ActionError{Op: string(op), Board: idx, Err: err}
	}
	boards := make([]domain.Board, len(s.Boards))
	copy(boards, s.Boards)
	boards[idx] = b
	return domain.BoardsData{Boards: boards}, nil
}

// withColumn runs fn on the first column of board idx named column
func withColumn(s domain.BoardsData, op ActionType, idx int, column string, fn func(c *domain.Column) error) (domain.BoardsData, error) {
	next, err := withBoard(s, op, idx, func(b *domain.Board) error {
		ci := b.ColumnIndex(column)
		if ci < 0 {
			return columnNotFound(column)
		}
		return fn(&b.Columns[ci])
	})
	if ae, ok := err.(*domain.ActionError); ok && ae.Column == "" {
		ae.Column = column
	}
	return next, err
}

// rebuildColumns produces the new column set for EditBoard
func rebuildColumns(old []domain.Column, names, renamedFrom []string) []domain.Column {
	claimed := make([]bool, len(old))
	out := make([]domain.Column, 0, len(names))
	for i, name := range names {
		source := name
		if i < len(renamedFrom) && renamedFrom[i] != "" {
			source = renamedFrom[i]
		}

		col := domain.Column{Name: name, Tasks: []domain.Task{}}
		for oi := range old {
			if claimed[oi] || old[oi].Name != source {
				continue
			}
			claimed[oi] = true
			col.Tasks = old[oi].Tasks
			for ti := range col.Tasks {
				col.Tasks[ti].Status = name
			}
			break
		}
		out = append(out, col)
	}
	return out
}

type columnError struct {
	name string
}

func (e *columnError) Error() string {
	return fmt.Sprintf("column %q: %v", e.name, domain.ErrNotFound)
}

func (e *columnError) Unwrap() error {
	return domain.ErrNotFound
}

func columnNotFound(name string) error {
	return &columnError{name: name}
}

func taskNotFound(idx int) error {
	return fmt.Errorf("task %d: %w", idx, domain.ErrNotFound)
}

func boardNotFound(op ActionType, idx int) error {
	return &domain.ActionError{Op: string(op), Board: idx, Message: "board not found", Err: domain.ErrNotFound}
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}
