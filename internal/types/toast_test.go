package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToastLevel_String(t *testing.T) {
	tests := []struct {
		level ToastLevel
		want  string
	}{
		{ToastInfo, "info"},
		{ToastSuccess, "success"},
		{ToastWarning, "warning"},
		{ToastError, "error"},
		{ToastLevel(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestParseToastLevel(t *testing.T) {
	for _, level := range []ToastLevel{ToastInfo, ToastSuccess, ToastWarning, ToastError} {
		assert.Equal(t, level, ParseToastLevel(level.String()))
	}
	assert.Equal(t, ToastInfo, ParseToastLevel("bogus"))
}
