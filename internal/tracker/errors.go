package tracker

import (
	"fmt"

	"github.com/brk3/momentum/internal/storage"
)

type UnknownHabitError struct {
	ID string
}

func (e *UnknownHabitError) Error() string {
	return fmt.Sprintf("unknown habit %q", e.ID)
}

func (e *UnknownHabitError) Unwrap() error {
	return storage.ErrNotFound
}

// ValidationError reports input rejected at the service boundary.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bad %s: %s", e.Field, e.Msg)
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
