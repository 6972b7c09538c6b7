package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound  = errors.New("not found")
	ErrMalformed = errors.New("malformed document")
	ErrEmptyName = errors.New("name cannot be empty")
	ErrDuplicate = errors.New("duplicate name")
)

// ActionError reports a boards action that could not be applied
type ActionError struct {
	Op      string // Action type: "ADD_TASK", "MOVE_TASK", etc.
	Board   int    // Board index the action addressed
	Column  string // Optional: column name the action addressed
	Message string // Human-readable context
	Err     error  // Underlying error
}

func (e *ActionError) Error() string {
	target := fmt.Sprintf("board %d", e.Board)
	if e.Column != "" {
		target = fmt.Sprintf("board %d/%s", e.Board, e.Column)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s [%s]: %s", e.Op, target, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %v", e.Op, target, e.Err)
	}
	return fmt.Sprintf("%s [%s] failed", e.Op, target)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// StorageError represents an error from a persistence backend
type StorageError struct {
	Op      string // "load" or "save"
	Backend string // "file", "redis"
	Err     error
}

func (e *StorageError) Error() string {
	if e.Backend != "" {
		return fmt.Sprintf("storage %s [%s]: %v", e.Op, e.Backend, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
