package store

import "errors"

var (
	// ErrEmptyText is returned when a task's text is blank after trimming.
	ErrEmptyText = errors.New("task text is empty")

	// ErrIndexOutOfRange is returned when a position no longer refers to a task.
	ErrIndexOutOfRange = errors.New("task index out of range")

	// ErrBadColor is returned when a hex color cannot be parsed.
	ErrBadColor = errors.New("invalid hex color")

	// ErrNoPath is returned when persistence has no file to work with.
	ErrNoPath = errors.New("no data path configured")
)
