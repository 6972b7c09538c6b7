package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/taskboard/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOverlay is a simple overlay implementation for testing
type mockOverlay struct {
	title   string
	width   int
	height  int
	value   string
	updates int
}

func (m mockOverlay) Init() tea.Cmd {
	return nil
}

func (m mockOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.updates++
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			return m, func() tea.Msg { return SelectionMsg{Key: "test", Value: m.value} }
		case "esc":
			return m, closeCmd
		}
	}
	return m, nil
}

func (m mockOverlay) View() string {
	return m.title
}

func (m mockOverlay) Title() string {
	return m.title
}

func (m mockOverlay) Size() (width, height int) {
	return m.width, m.height
}

func TestStack_PushPop(t *testing.T) {
	stack := NewStack()
	require.True(t, stack.IsEmpty())
	assert.Nil(t, stack.Current())
	assert.Nil(t, stack.Pop())

	assert.Nil(t, stack.Push(mockOverlay{title: "first"}))
	stack.Push(mockOverlay{title: "second"})

	assert.Equal(t, 2, stack.Len())
	assert.Equal(t, "second", stack.Current().Title())

	assert.Equal(t, "second", stack.Pop().Title())
	assert.Equal(t, "first", stack.Current().Title())
	assert.Equal(t, "first", stack.Pop().Title())
	assert.True(t, stack.IsEmpty())
}

func TestStack_UpdateForwardsToTop(t *testing.T) {
	stack := NewStack()
	stack.Push(mockOverlay{title: "bottom"})
	stack.Push(mockOverlay{title: "top", value: "picked"})

	cmd := stack.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(SelectionMsg)
	require.True(t, ok)
	assert.Equal(t, "picked", msg.Value)

	top := stack.Current().(mockOverlay)
	assert.Equal(t, 1, top.updates, "updated model replaces the top overlay")
	assert.Equal(t, 0, stack.dialogs[0].(mockOverlay).updates)
}

func TestStack_CloseOverlayMsgPops(t *testing.T) {
	stack := NewStack()
	stack.Push(mockOverlay{title: "bottom"})
	stack.Push(mockOverlay{title: "top"})

	assert.Nil(t, stack.Update(CloseOverlayMsg{}))
	assert.Equal(t, "bottom", stack.Current().Title())
}

func TestStack_UpdateEmpty(t *testing.T) {
	assert.Nil(t, NewStack().Update(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestStack_Dismiss(t *testing.T) {
	tests := []struct {
		name    string
		msg     tea.Msg
		dismiss bool
	}{
		{name: "cancel", msg: CloseOverlayMsg{}, dismiss: true},
		{name: "confirm answer", msg: SelectionMsg{Key: "delete-task", Value: ConfirmResult{Confirmed: true}}, dismiss: true},
		{name: "key press", msg: tea.KeyMsg{Type: tea.KeyEnter}, dismiss: false},
		{name: "form result", msg: TaskSubmittedMsg{}, dismiss: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stack := NewStack()
			stack.Push(mockOverlay{title: "dialog"})

			assert.Equal(t, tt.dismiss, stack.Dismiss(tt.msg))
			assert.Equal(t, tt.dismiss, stack.IsEmpty())
		})
	}

	assert.False(t, NewStack().Dismiss(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.True(t, NewStack().Dismiss(CloseOverlayMsg{}), "closing with nothing open is harmless")
}

func TestStack_Mode(t *testing.T) {
	stack := NewStack()
	assert.Equal(t, types.ModeBoard, stack.Mode())

	stack.Push(NewTaskForm())
	assert.Equal(t, types.ModeInput, stack.Mode())

	stack.Push(NewConfirmDialog("delete-task", "Delete this task?", "Sure?"))
	assert.Equal(t, types.ModeConfirm, stack.Mode())

	stack.Pop()
	stack.Pop()
	stack.Push(NewBoardForm())
	assert.Equal(t, types.ModeInput, stack.Mode())
}

func TestStack_View(t *testing.T) {
	stack := NewStack()
	assert.Empty(t, stack.View(80, 20))

	stack.Push(mockOverlay{title: "Add New Task", width: 40})
	view := stack.View(80, 20)
	assert.Contains(t, view, "Add New Task")
}
