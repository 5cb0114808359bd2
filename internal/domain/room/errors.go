package room

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("room not found")
	ErrNotOwner = errors.New("not authorized to modify this room")
)

// ValidationError reports malformed input. Fields lists the offending
// field names when the problem is missing required fields.
type ValidationError struct {
	Message string
	Fields  []string
}

func (e *ValidationError) Error() string { return e.Message }

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
