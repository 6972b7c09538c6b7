package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	s := New()
	require.NotNil(t, s)
	assert.NotEmpty(t, s.Card.Render("card"))
}

func TestColumnColor(t *testing.T) {
	tests := []struct {
		name string
		idx  int
		want int
	}{
		{"first", 0, 0},
		{"within palette", 2, 2},
		{"wraps around", len(ColumnColors), 0},
		{"wraps twice", 2*len(ColumnColors) + 1, 1},
		{"negative", -1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, ColumnColors[tt.want], ColumnColor(tt.idx))
		})
	}
}

func TestThemeColors(t *testing.T) {
	colors := map[string]string{
		"Base":   string(Base),
		"Blue":   string(Blue),
		"Red":    string(Red),
		"Green":  string(Green),
		"Yellow": string(Yellow),
	}

	for name, c := range colors {
		t.Run(name, func(t *testing.T) {
			require.NotEmpty(t, c)
			// Catppuccin colors start with #
			assert.Equal(t, byte('#'), c[0])
		})
	}
}
