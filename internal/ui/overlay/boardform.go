package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskboard/internal/domain"
)

// BoardSubmittedMsg is emitted when the board form is submitted
type BoardSubmittedMsg struct {
	Name    string
	Columns []string
	Editing bool
}

// BoardForm creates or edits a board: its name and comma separated column
// names
type BoardForm struct {
	name       textinput.Model
	columns    textinput.Model
	editing    bool
	focusIndex int
	err        error
	styles     *Styles
}

const (
	boardFocusName = iota
	boardFocusColumns
	boardFocusSubmit
	boardFocusCount
)

// DefaultColumns prefill the column field of a new board
var DefaultColumns = []string{"Todo", "Doing"}

// NewBoardForm creates a board form for a new board
func NewBoardForm() *BoardForm {
	name := textinput.New()
	name.Placeholder = "e.g. Web Design"
	name.Focus()
	name.CharLimit = 100
	name.Width = 60

	cols := textinput.New()
	cols.Placeholder = "Todo, Doing, Done"
	cols.CharLimit = 500
	cols.Width = 60
	cols.SetValue(strings.Join(DefaultColumns, ", "))

	return &BoardForm{
		name:    name,
		columns: cols,
		styles:  New(),
	}
}

// EditBoardForm creates a form prefilled from b
func EditBoardForm(b domain.Board) *BoardForm {
	f := NewBoardForm()
	f.editing = true
	f.name.SetValue(b.Name)
	f.columns.SetValue(strings.Join(b.ColumnNames(), ", "))
	return f
}

// Init initializes the overlay
func (f *BoardForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *BoardForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return f, closeCmd
		case "ctrl+s", "enter":
			return f, f.submit()
		case "tab", "down":
			f.setFocus((f.focusIndex + 1) % boardFocusCount)
			return f, nil
		case "shift+tab", "up":
			f.setFocus((f.focusIndex - 1 + boardFocusCount) % boardFocusCount)
			return f, nil
		}
	}

	var cmd tea.Cmd
	switch f.focusIndex {
	case boardFocusName:
		f.name, cmd = f.name.Update(msg)
	case boardFocusColumns:
		f.columns, cmd = f.columns.Update(msg)
	}
	return f, cmd
}

func (f *BoardForm) setFocus(idx int) {
	f.focusIndex = idx
	f.name.Blur()
	f.columns.Blur()
	switch idx {
	case boardFocusName:
		f.name.Focus()
	case boardFocusColumns:
		f.columns.Focus()
	}
}

// Name returns the trimmed board name
func (f *BoardForm) Name() string {
	return strings.TrimSpace(f.name.Value())
}

// Columns returns the trimmed column names in order, skipping blanks
func (f *BoardForm) Columns() []string {
	return ParseColumns(f.columns.Value())
}

// ParseColumns splits a comma separated list of column names
func ParseColumns(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func (f *BoardForm) submit() tea.Cmd {
	name, cols := f.Name(), f.Columns()
	if err := domain.ValidateBoard(name, cols); err != nil {
		f.err = err
		return nil
	}
	f.err = nil

	editing := f.editing
	return tea.Batch(
		func() tea.Msg { return BoardSubmittedMsg{Name: name, Columns: cols, Editing: editing} },
		closeCmd,
	)
}

// Err returns the last validation error
func (f *BoardForm) Err() error {
	return f.err
}

// View renders the form
func (f *BoardForm) View() string {
	var b strings.Builder

	b.WriteString(f.styles.label("Board Name", f.focusIndex == boardFocusName))
	b.WriteString("\n")
	b.WriteString(f.name.View())
	b.WriteString("\n\n")

	b.WriteString(f.styles.label("Board Columns", f.focusIndex == boardFocusColumns))
	b.WriteString("\n")
	b.WriteString(f.columns.View())
	b.WriteString("\n\n")

	if f.err != nil {
		b.WriteString(f.styles.Error.Render(f.err.Error()))
		b.WriteString("\n\n")
	}

	submitStyle := f.styles.MenuItem
	if f.focusIndex == boardFocusSubmit {
		submitStyle = f.styles.MenuItemActive
	}
	label := "[ Create New Board ]"
	if f.editing {
		label = "[ Save Changes ]"
	}
	b.WriteString(submitStyle.Render(label))
	b.WriteString("\n")

	b.WriteString(f.styles.Footer.Render(formHints(f.styles)))
	return b.String()
}

// Title returns the overlay title
func (f *BoardForm) Title() string {
	if f.editing {
		return "Edit Board"
	}
	return "Add New Board"
}

// Size returns the overlay dimensions
func (f *BoardForm) Size() (width, height int) {
	return 70, 14
}
