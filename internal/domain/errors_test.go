package domain

import (
	"errors"
	"testing"
)

func TestActionError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  ActionError
		want string
	}{
		{
			name: "with column and message",
			err:  ActionError{Op: "ADD_TASK", Board: 0, Column: "Todo", Message: "column not found"},
			want: "ADD_TASK [board 0/Todo]: column not found",
		},
		{
			name: "with message only",
			err:  ActionError{Op: "DELETE_BOARD", Board: 3, Message: "board not found"},
			want: "DELETE_BOARD [board 3]: board not found",
		},
		{
			name: "with underlying error",
			err:  ActionError{Op: "EDIT_TASK", Board: 1, Err: ErrNotFound},
			want: "EDIT_TASK [board 1]: not found",
		},
		{
			name: "minimal",
			err:  ActionError{Op: "MOVE_TASK", Board: 2},
			want: "MOVE_TASK [board 2] failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ActionError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActionError_Unwrap(t *testing.T) {
	err := &ActionError{Op: "ADD_TASK", Err: ErrNotFound}

	if !errors.Is(err, ErrNotFound) {
		t.Errorf("errors.Is(%v, ErrNotFound) = false, want true", err)
	}
}

func TestStorageError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  StorageError
		want string
	}{
		{
			name: "with backend",
			err:  StorageError{Op: "save", Backend: "file", Err: errors.New("disk full")},
			want: "storage save [file]: disk full",
		},
		{
			name: "without backend",
			err:  StorageError{Op: "load", Err: ErrMalformed},
			want: "storage load: malformed document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("StorageError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStorageError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &StorageError{Op: "save", Err: underlying}

	if unwrapped := err.Unwrap(); unwrapped != underlying {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, underlying)
	}
}
