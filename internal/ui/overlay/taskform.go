package overlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskboard/internal/domain"
)

// TaskSubmittedMsg is emitted when the task form is submitted. Status is
// left empty; the board assigns it from the target column.
type TaskSubmittedMsg struct {
	Task    domain.Task
	Editing bool
}

// TaskForm creates or edits a task: title, description and one subtask
// per line
type TaskForm struct {
	title       textinput.Model
	description textarea.Model
	subtasks    textarea.Model
	prior       []domain.Subtask
	editing     bool
	focusIndex  int
	err         error
	styles      *Styles
}

const (
	taskFocusTitle = iota
	taskFocusDescription
	taskFocusSubtasks
	taskFocusSubmit
	taskFocusCount
)

// NewTaskForm creates an empty task form
func NewTaskForm() *TaskForm {
	ti := textinput.New()
	ti.Placeholder = "e.g. Take coffee break"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	desc := textarea.New()
	desc.Placeholder = "e.g. It's always good to take a break..."
	desc.CharLimit = 2000
	desc.SetWidth(60)
	desc.SetHeight(4)

	subs := textarea.New()
	subs.Placeholder = "One subtask per line"
	subs.SetWidth(60)
	subs.SetHeight(4)

	return &TaskForm{
		title:       ti,
		description: desc,
		subtasks:    subs,
		focusIndex:  taskFocusTitle,
		styles:      New(),
	}
}

// EditTaskForm creates a form prefilled from t. Subtasks whose title is
// kept on submit keep their completion state.
func EditTaskForm(t domain.Task) *TaskForm {
	f := NewTaskForm()
	f.editing = true
	f.prior = t.Clone().Subtasks
	f.title.SetValue(t.Title)
	f.description.SetValue(t.Description)

	lines := make([]string, len(t.Subtasks))
	for i, st := range t.Subtasks {
		lines[i] = st.Title
	}
	f.subtasks.SetValue(strings.Join(lines, "\n"))
	return f
}

// Init initializes the overlay
func (f *TaskForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *TaskForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return f, closeCmd
		case "ctrl+s":
			return f, f.submit()
		case "tab":
			f.setFocus((f.focusIndex + 1) % taskFocusCount)
			return f, nil
		case "shift+tab":
			f.setFocus((f.focusIndex - 1 + taskFocusCount) % taskFocusCount)
			return f, nil
		case "enter":
			if f.focusIndex == taskFocusSubmit || f.focusIndex == taskFocusTitle {
				return f, f.submit()
			}
		}
	}

	var cmd tea.Cmd
	switch f.focusIndex {
	case taskFocusTitle:
		f.title, cmd = f.title.Update(msg)
	case taskFocusDescription:
		f.description, cmd = f.description.Update(msg)
	case taskFocusSubtasks:
		f.subtasks, cmd = f.subtasks.Update(msg)
	}
	return f, cmd
}

func (f *TaskForm) setFocus(idx int) {
	f.focusIndex = idx
	f.title.Blur()
	f.description.Blur()
	f.subtasks.Blur()
	switch idx {
	case taskFocusTitle:
		f.title.Focus()
	case taskFocusDescription:
		f.description.Focus()
	case taskFocusSubtasks:
		f.subtasks.Focus()
	}
}

// Task builds the task described by the form
func (f *TaskForm) Task() domain.Task {
	used := make([]bool, len(f.prior))
	var subtasks []domain.Subtask
	for _, line := range strings.Split(f.subtasks.Value(), "\n") {
		title := strings.TrimSpace(line)
		if title == "" {
			continue
		}
		st := domain.Subtask{Title: title}
		for i, p := range f.prior {
			if !used[i] && p.Title == title {
				used[i] = true
				st.IsCompleted = p.IsCompleted
				break
			}
		}
		subtasks = append(subtasks, st)
	}
	if subtasks == nil {
		subtasks = []domain.Subtask{}
	}

	return domain.Task{
		Title:       strings.TrimSpace(f.title.Value()),
		Description: strings.TrimSpace(f.description.Value()),
		Subtasks:    subtasks,
	}
}

// submit emits a TaskSubmittedMsg and closes the overlay, or records the
// validation error and stays open
func (f *TaskForm) submit() tea.Cmd {
	task := f.Task()
	if err := domain.ValidateTask(task); err != nil {
		f.err = err
		return nil
	}
	f.err = nil

	editing := f.editing
	return tea.Batch(
		func() tea.Msg { return TaskSubmittedMsg{Task: task, Editing: editing} },
		closeCmd,
	)
}

// Err returns the last validation error
func (f *TaskForm) Err() error {
	return f.err
}

// View renders the form
func (f *TaskForm) View() string {
	var b strings.Builder

	b.WriteString(f.styles.label("Title", f.focusIndex == taskFocusTitle))
	b.WriteString("\n")
	b.WriteString(f.title.View())
	b.WriteString("\n\n")

	b.WriteString(f.styles.label("Description", f.focusIndex == taskFocusDescription))
	b.WriteString("\n")
	b.WriteString(f.description.View())
	b.WriteString("\n\n")

	b.WriteString(f.styles.label("Subtasks", f.focusIndex == taskFocusSubtasks))
	b.WriteString("\n")
	b.WriteString(f.subtasks.View())
	b.WriteString("\n\n")

	if f.err != nil {
		b.WriteString(f.styles.Error.Render(f.err.Error()))
		b.WriteString("\n\n")
	}

	submitStyle := f.styles.MenuItem
	if f.focusIndex == taskFocusSubmit {
		submitStyle = f.styles.MenuItemActive
	}
	label := "[ Create Task ]"
	if f.editing {
		label = "[ Save Changes ]"
	}
	b.WriteString(submitStyle.Render(label))
	b.WriteString("\n")

	b.WriteString(f.styles.Footer.Render(formHints(f.styles)))
	return b.String()
}

// Title returns the overlay title
func (f *TaskForm) Title() string {
	if f.editing {
		return "Edit Task"
	}
	return "Add New Task"
}

// Size returns the overlay dimensions
func (f *TaskForm) Size() (width, height int) {
	return 70, 24
}

func formHints(s *Styles) string {
	hints := []string{
		s.MenuKey.Render("Tab") + " " + s.Footer.Render("Switch fields"),
		s.MenuKey.Render("Ctrl+S") + " " + s.Footer.Render("Submit"),
		s.MenuKey.Render("Esc") + " " + s.Footer.Render("Cancel"),
	}
	return strings.Join(hints, " • ")
}
