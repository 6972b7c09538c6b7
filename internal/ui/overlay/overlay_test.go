package overlay

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestOverlayInterface(t *testing.T) {
	var _ Overlay = mockOverlay{}
	var _ Overlay = &ConfirmDialog{}
	var _ Overlay = &TaskForm{}
	var _ Overlay = &BoardForm{}
}

func TestRender(t *testing.T) {
	o := mockOverlay{title: "Delete board?", width: 40, height: 6}

	got := Render(o, New(), 100, 30)

	assert.Contains(t, got, "Delete board?")
	assert.Equal(t, 100, lipgloss.Width(got))
	assert.Equal(t, 30, lipgloss.Height(got))
}

func TestRender_NarrowTerminal(t *testing.T) {
	o := mockOverlay{title: "Wide", width: 200, height: 6}

	got := Render(o, New(), 60, 20)

	assert.LessOrEqual(t, lipgloss.Width(got), 60)
}
