// Package app contains the board view model and TEA implementation.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskboard/internal/boards"
	"github.com/riordanpawley/taskboard/internal/config"
	"github.com/riordanpawley/taskboard/internal/domain"
	"github.com/riordanpawley/taskboard/internal/services/uistate"
	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/riordanpawley/taskboard/internal/ui/board"
	"github.com/riordanpawley/taskboard/internal/ui/overlay"
	"github.com/riordanpawley/taskboard/internal/ui/styles"
	"github.com/riordanpawley/taskboard/internal/ui/toast"
)

// toastTick is how often expired toasts are swept
const toastTick = 500 * time.Millisecond

// Confirm dialog keys
const (
	confirmDeleteTask  = "delete-task"
	confirmDeleteBoard = "delete-board"
)

// Model is the board view. Board data lives in the boards store and
// loading and toast state in the UI state service; the model only keeps
// the selection and the open overlays.
type Model struct {
	boards *boards.Store
	ui     *uistate.Service

	// Selection
	selected int
	cursor   board.Cursor

	// Target of the open task form or delete confirmation
	target taskTarget

	overlayStack *overlay.Stack

	// Terminal size
	width  int
	height int

	spinner  spinner.Model
	keys     keyMap
	help     help.Model
	styles   *styles.Styles
	toasts   *toast.ToastRenderer
	config   *config.Config
	logger   *slog.Logger
	quitting bool
}

// taskTarget addresses a task, or a column for a new task
type taskTarget struct {
	board  int
	column string
	task   int
}

// StateChangedMsg tells the model that one of the stores changed outside
// of Update, such as a deferred loading stop
type StateChangedMsg struct{}

type initDoneMsg struct {
	err error
}

type tickMsg time.Time

// New creates the board view over the given stores
func New(store *boards.Store, ui *uistate.Service, cfg *config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	st := styles.New()
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = st.Spinner

	return Model{
		boards:       store,
		ui:           ui,
		overlayStack: overlay.NewStack(),
		spinner:      s,
		keys:         defaultKeyMap(),
		help:         help.New(),
		styles:       st,
		toasts:       toast.New(st),
		config:       cfg,
		logger:       logger,
	}
}

// Subscribe forwards store changes to p as StateChangedMsg. The returned
// func unsubscribes from both stores.
func Subscribe(p *tea.Program, store *boards.Store, ui *uistate.Service) func() {
	// Send blocks until the event loop receives, and stores notify from
	// inside Update, so forward from a goroutine.
	forward := func() { go p.Send(StateChangedMsg{}) }
	unsubBoards := store.Subscribe(forward)
	unsubUI := ui.Subscribe(forward)
	return func() {
		unsubBoards()
		unsubUI()
	}
}

// Init starts the spinner, the initial boards load and the toast sweep
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.initBoardsCmd(),
		tickEvery(toastTick),
	)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tickMsg:
		m.ui.ExpireToasts(m.config.Toasts.Duration())
		return m, tickEvery(toastTick)

	case initDoneMsg:
		if msg.err != nil {
			m.logger.Error("initial boards load failed", "error", msg.err)
			m.ui.ShowToast(types.ToastError, "Failed to load boards: "+msg.err.Error())
		}
		m.clampSelection()
		return m, nil

	case StateChangedMsg:
		m.clampSelection()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Dismiss(msg)
		return m, nil

	case overlay.SelectionMsg:
		m.overlayStack.Dismiss(msg)
		return m.handleSelection(msg)

	case overlay.TaskSubmittedMsg:
		return m.handleTaskSubmitted(msg)

	case overlay.BoardSubmittedMsg:
		return m.handleBoardSubmitted(msg)
	}

	// Cursor blink and other overlay-internal messages
	if !m.overlayStack.IsEmpty() {
		return m, m.overlayStack.Update(msg)
	}
	return m, nil
}

// handleKey processes keyboard input on the board
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b, hasBoard := m.boards.Board(m.selected)
	if hasBoard {
		m.cursor = m.cursor.Clamp(b)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NextBoard):
		m.selectBoard(m.selected + 1)

	case key.Matches(msg, m.keys.PrevBoard):
		m.selectBoard(m.selected - 1)

	case key.Matches(msg, m.keys.AddBoard):
		return m, m.overlayStack.Push(overlay.NewBoardForm())

	case !hasBoard:
		// Everything below needs a selected board

	case key.Matches(msg, m.keys.Left):
		m.cursor = board.Cursor{Column: m.cursor.Column - 1, Task: m.cursor.Task}.Clamp(b)

	case key.Matches(msg, m.keys.Right):
		m.cursor = board.Cursor{Column: m.cursor.Column + 1, Task: m.cursor.Task}.Clamp(b)

	case key.Matches(msg, m.keys.Up):
		m.cursor = board.Cursor{Column: m.cursor.Column, Task: m.cursor.Task - 1}.Clamp(b)

	case key.Matches(msg, m.keys.Down):
		m.cursor = board.Cursor{Column: m.cursor.Column, Task: m.cursor.Task + 1}.Clamp(b)

	case key.Matches(msg, m.keys.MoveLeft):
		m.moveTask(b, m.cursor.Column-1, -1)

	case key.Matches(msg, m.keys.MoveRight):
		m.moveTask(b, m.cursor.Column+1, -1)

	case key.Matches(msg, m.keys.MoveUp):
		m.moveTask(b, m.cursor.Column, m.cursor.Task-1)

	case key.Matches(msg, m.keys.MoveDown):
		m.moveTask(b, m.cursor.Column, m.cursor.Task+1)

	case key.Matches(msg, m.keys.Toggle):
		m.toggleFirstOpenSubtask(b)

	case key.Matches(msg, m.keys.AddTask):
		if len(b.Columns) == 0 {
			m.ui.ShowToast(types.ToastWarning, "Add a column before adding tasks")
			return m, nil
		}
		m.target = taskTarget{board: m.selected, column: b.Columns[m.cursor.Column].Name, task: -1}
		return m, m.overlayStack.Push(overlay.NewTaskForm())

	case key.Matches(msg, m.keys.EditTask):
		if !m.cursor.HasTask(b) {
			return m, nil
		}
		col := b.Columns[m.cursor.Column]
		m.target = taskTarget{board: m.selected, column: col.Name, task: m.cursor.Task}
		return m, m.overlayStack.Push(overlay.EditTaskForm(col.Tasks[m.cursor.Task]))

	case key.Matches(msg, m.keys.DeleteTask):
		if !m.cursor.HasTask(b) {
			return m, nil
		}
		col := b.Columns[m.cursor.Column]
		m.target = taskTarget{board: m.selected, column: col.Name, task: m.cursor.Task}
		title := col.Tasks[m.cursor.Task].Title
		return m, m.overlayStack.Push(overlay.NewConfirmDialog(
			confirmDeleteTask,
			"Delete this task?",
			fmt.Sprintf("Are you sure you want to delete the %q task and its subtasks? This action cannot be reversed.", title),
		))

	case key.Matches(msg, m.keys.EditBoard):
		return m, m.overlayStack.Push(overlay.EditBoardForm(b))

	case key.Matches(msg, m.keys.DeleteBoard):
		m.target = taskTarget{board: m.selected}
		return m, m.overlayStack.Push(overlay.NewConfirmDialog(
			confirmDeleteBoard,
			"Delete this board?",
			fmt.Sprintf("Are you sure you want to delete the %q board? This action will remove all columns and tasks and cannot be reversed.", b.Name),
		))
	}

	return m, nil
}

// handleSelection applies an answered confirm dialog
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	result, ok := msg.Value.(overlay.ConfirmResult)
	if !ok || !result.Confirmed {
		return m, nil
	}

	switch msg.Key {
	case confirmDeleteTask:
		m.dispatch(boards.DeleteTask{Board: m.target.board, Column: m.target.column, TaskIndex: m.target.task})
	case confirmDeleteBoard:
		if m.dispatch(boards.DeleteBoard{Board: m.target.board}) {
			m.selectBoard(m.target.board - 1)
		}
	}
	return m, nil
}

func (m Model) handleTaskSubmitted(msg overlay.TaskSubmittedMsg) (tea.Model, tea.Cmd) {
	if msg.Editing {
		m.dispatch(boards.EditTask{
			Board:     m.target.board,
			Column:    m.target.column,
			TaskIndex: m.target.task,
			Task:      msg.Task,
		})
		return m, nil
	}

	if m.dispatch(boards.AddTask{Board: m.target.board, Column: m.target.column, Task: msg.Task}) {
		if b, ok := m.boards.Board(m.target.board); ok {
			if ci := b.ColumnIndex(m.target.column); ci >= 0 {
				m.cursor = board.Cursor{Column: ci, Task: len(b.Columns[ci].Tasks) - 1}
			}
		}
	}
	return m, nil
}

func (m Model) handleBoardSubmitted(msg overlay.BoardSubmittedMsg) (tea.Model, tea.Cmd) {
	if msg.Editing {
		b, ok := m.boards.Board(m.selected)
		if !ok {
			return m, nil
		}
		m.dispatch(boards.EditBoardByPosition(m.selected, msg.Name, b.ColumnNames(), msg.Columns))
		return m, nil
	}

	if m.dispatch(boards.AddBoard{Name: msg.Name, ColumnNames: msg.Columns}) {
		m.selectBoard(m.boards.Len() - 1)
	}
	return m, nil
}

// moveTask moves the task under the cursor to column toCol at position
// toTask. A negative toTask appends.
func (m *Model) moveTask(b domain.Board, toCol, toTask int) {
	if !m.cursor.HasTask(b) || toCol < 0 || toCol >= len(b.Columns) {
		return
	}
	from := b.Columns[m.cursor.Column]
	dest := b.Columns[toCol]
	if toTask < 0 {
		toTask = len(dest.Tasks)
		if toCol == m.cursor.Column {
			toTask--
		}
	}
	if toCol == m.cursor.Column && (toTask < 0 || toTask >= len(from.Tasks)) {
		return
	}

	if m.dispatch(boards.MoveTask{
		Board:     m.selected,
		From:      from.Name,
		TaskIndex: m.cursor.Task,
		To:        dest.Name,
		ToIndex:   toTask,
	}) {
		m.cursor = board.Cursor{Column: toCol, Task: toTask}
		m.clampSelection()
	}
}

// toggleFirstOpenSubtask completes the first unfinished subtask of the
// task under the cursor
func (m *Model) toggleFirstOpenSubtask(b domain.Board) {
	if !m.cursor.HasTask(b) {
		return
	}
	col := b.Columns[m.cursor.Column]
	for i, st := range col.Tasks[m.cursor.Task].Subtasks {
		if !st.IsCompleted {
			m.dispatch(boards.ToggleSubtask{
				Board:        m.selected,
				Column:       col.Name,
				TaskIndex:    m.cursor.Task,
				SubtaskIndex: i,
			})
			return
		}
	}
	m.ui.ShowToast(types.ToastInfo, "No open subtasks")
}

// dispatch sends a to the boards store and reports whether it applied.
// The store already logs and toasts failures.
func (m *Model) dispatch(a boards.Action) bool {
	if err := m.boards.Dispatch(a); err != nil {
		m.logger.Debug("action not applied", "action", a.Type(), "error", err)
		return false
	}
	m.clampSelection()
	return true
}

// selectBoard switches to board idx, wrapping around, and resets the cursor
func (m *Model) selectBoard(idx int) {
	n := m.boards.Len()
	if n == 0 {
		m.selected = 0
		m.cursor = board.Cursor{}
		return
	}
	m.selected = ((idx % n) + n) % n
	m.cursor = board.Cursor{}
}

// clampSelection keeps the selected board and cursor in range after the
// boards changed
func (m *Model) clampSelection() {
	n := m.boards.Len()
	if m.selected >= n {
		m.selected = max(n-1, 0)
	}
	if b, ok := m.boards.Board(m.selected); ok {
		m.cursor = m.cursor.Clamp(b)
	} else {
		m.cursor = board.Cursor{}
	}
}

// initBoardsCmd runs the initial load under the init loading key
func (m Model) initBoardsCmd() tea.Cmd {
	store, ui, delay := m.boards, m.ui, m.config.Loading.InitDelay()
	return func() tea.Msg {
		return initDoneMsg{err: store.Init(context.Background(), ui, delay)}
	}
}

func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
