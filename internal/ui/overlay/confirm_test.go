package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answerOf(t *testing.T, cmd tea.Cmd) SelectionMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(SelectionMsg)
	require.True(t, ok, "expected SelectionMsg")
	return msg
}

func TestNewConfirmDialog(t *testing.T) {
	d := NewConfirmDialog("delete-task", "Delete this task?", "This cannot be reversed.")

	assert.Equal(t, "Delete this task?", d.Title())
	assert.False(t, d.selected, "defaults to No")
	require.NotNil(t, d.styles)
	assert.Nil(t, d.Init())

	w, h := d.Size()
	assert.Equal(t, 60, w)
	assert.Equal(t, 7, h)
}

func TestConfirmDialog_Keys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want bool
	}{
		{"y", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true},
		{"Y", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, true},
		{"n", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, false},
		{"N", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("N")}, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, false},
		{"enter defaults to no", tea.KeyMsg{Type: tea.KeyEnter}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewConfirmDialog("delete-task", "Delete?", "")
			_, cmd := d.Update(tt.key)

			msg := answerOf(t, cmd)
			assert.Equal(t, "delete-task", msg.Key)
			assert.Equal(t, ConfirmResult{Confirmed: tt.want}, msg.Value)
		})
	}
}

func TestConfirmDialog_NavigateThenEnter(t *testing.T) {
	d := NewConfirmDialog("delete-board", "Delete?", "")

	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Nil(t, cmd)
	assert.True(t, d.selected)

	_, cmd = d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ConfirmResult{Confirmed: true}, answerOf(t, cmd).Value)

	d.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, d.selected)
}

func TestConfirmDialog_IgnoresOtherMessages(t *testing.T) {
	d := NewConfirmDialog("k", "Delete?", "")
	model, cmd := d.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	assert.Same(t, d, model)
	assert.Nil(t, cmd)
}

func TestConfirmDialog_View(t *testing.T) {
	view := NewConfirmDialog("k", "Delete?", "All 3 tasks go with it.").View()

	assert.Contains(t, view, "All 3 tasks go with it.")
	assert.Contains(t, view, "[Y] Yes")
	assert.Contains(t, view, "[N] No")
}
