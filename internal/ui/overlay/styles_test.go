package overlay

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStyles(t *testing.T) {
	s := New()
	require.NotNil(t, s)

	tests := map[string]lipgloss.Style{
		"Overlay":        s.Overlay,
		"Title":          s.Title,
		"MenuItem":       s.MenuItem,
		"MenuItemActive": s.MenuItemActive,
		"MenuKey":        s.MenuKey,
		"Separator":      s.Separator,
		"Footer":         s.Footer,
		"Label":          s.Label,
		"LabelFocus":     s.LabelFocus,
		"Error":          s.Error,
	}

	for name, style := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, style.Render("test"), "test")
		})
	}
}

func TestStyles_Label(t *testing.T) {
	s := New()
	assert.Contains(t, s.label("Title", true), "Title")
	assert.Contains(t, s.label("Title", false), "Title")
}
