// Package boards holds the canonical boards collection and the reducer that
// is the only way to change it.
package boards

import "github.com/riordanpawley/taskboard/internal/domain"

// ActionType names a boards action
type ActionType string

const (
	ActionSetBoards     ActionType = "SET_BOARDS"
	ActionAddBoard      ActionType = "ADD_BOARD"
	ActionEditBoard     ActionType = "EDIT_BOARD"
	ActionDeleteBoard   ActionType = "DELETE_BOARD"
	ActionAddTask       ActionType = "ADD_TASK"
	ActionEditTask      ActionType = "EDIT_TASK"
	ActionDeleteTask    ActionType = "DELETE_TASK"
	ActionMoveTask      ActionType = "MOVE_TASK"
	ActionToggleSubtask ActionType = "TOGGLE_SUBTASK"
)

// Action is one of the closed set of mutations the reducer accepts.
// Implementations live in this package only.
type Action interface {
	Type() ActionType
	action()
}

// SetBoards replaces the entire collection
type SetBoards struct {
	Boards []domain.Board
}

// AddBoard appends a board with empty columns named ColumnNames
type AddBoard struct {
	Name        string
	ColumnNames []string
}

// EditBoard renames a board and replaces its column set.
//
// Each new column keeps the tasks of the existing column it comes from: the
// column named RenamedFrom[i] when that entry is present and non-empty,
// otherwise the column already named ColumnNames[i]. Kept tasks get their
// status rewritten to the new column name. Existing columns that no new
// column comes from are deleted together with their tasks.
type EditBoard struct {
	Board       int
	Name        string
	ColumnNames []string
	RenamedFrom []string
}

// DeleteBoard removes the board at Board; later boards shift down by one
type DeleteBoard struct {
	Board int
}

// AddTask appends Task to the column named Column
type AddTask struct {
	Board  int
	Column string
	Task   domain.Task
}

// EditTask replaces the task at TaskIndex in place
type EditTask struct {
	Board     int
	Column    string
	TaskIndex int
	Task      domain.Task
}

// DeleteTask removes the task at TaskIndex, closing the gap
type DeleteTask struct {
	Board     int
	Column    string
	TaskIndex int
}

// MoveTask moves a task to position ToIndex of column To and sets its status
// to To. ToIndex is clamped to the destination bounds.
type MoveTask struct {
	Board     int
	From      string
	TaskIndex int
	To        string
	ToIndex   int
}

// ToggleSubtask flips the completion flag of one subtask
type ToggleSubtask struct {
	Board        int
	Column       string
	TaskIndex    int
	SubtaskIndex int
}

func (SetBoards) Type() ActionType     { return ActionSetBoards }
func (AddBoard) Type() ActionType      { return ActionAddBoard }
func (EditBoard) Type() ActionType     { return ActionEditBoard }
func (DeleteBoard) Type() ActionType   { return ActionDeleteBoard }
func (AddTask) Type() ActionType       { return ActionAddTask }
func (EditTask) Type() ActionType      { return ActionEditTask }
func (DeleteTask) Type() ActionType    { return ActionDeleteTask }
func (MoveTask) Type() ActionType      { return ActionMoveTask }
func (ToggleSubtask) Type() ActionType { return ActionToggleSubtask }

func (SetBoards) action()     {}
func (AddBoard) action()      {}
func (EditBoard) action()     {}
func (DeleteBoard) action()   {}
func (AddTask) action()       {}
func (EditTask) action()      {}
func (DeleteTask) action()    {}
func (MoveTask) action()      {}
func (ToggleSubtask) action() {}

// EditBoardByPosition builds an EditBoard where the column at position i of
// prior is renamed to columnNames[i]. Positions past the end of prior are new
// columns.
func EditBoardByPosition(board int, name string, prior, columnNames []string) EditBoard {
	renamed := make([]string, len(columnNames))
	for i := range columnNames {
		if i < len(prior) {
			renamed[i] = prior[i]
		}
	}
	return EditBoard{Board: board, Name: name, ColumnNames: columnNames, RenamedFrom: renamed}
}
