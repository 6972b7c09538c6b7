// Package types contains shared types used across the application.
package types

import "time"

// Toast represents a notification message
type Toast struct {
	ID        string
	Level     ToastLevel
	Message   string
	CreatedAt time.Time
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// String returns the string representation of the level
func (l ToastLevel) String() string {
	switch l {
	case ToastInfo:
		return "info"
	case ToastSuccess:
		return "success"
	case ToastWarning:
		return "warning"
	case ToastError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseToastLevel maps a level name to a ToastLevel, defaulting to info
func ParseToastLevel(s string) ToastLevel {
	switch s {
	case "success":
		return ToastSuccess
	case "warning":
		return ToastWarning
	case "error":
		return ToastError
	default:
		return ToastInfo
	}
}
