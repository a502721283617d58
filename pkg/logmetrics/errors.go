package logmetrics

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat reports a time file that is not a JSON object of integers.
	ErrFormat = errors.New("logmetrics: malformed input")
	// ErrMissingField is matched by every *MissingFieldError.
	ErrMissingField = errors.New("logmetrics: missing field")
)

// MissingFieldError names the required key absent from a time file.
type MissingFieldError struct {
	Path  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Path, e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
