package mandel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports a missing, non-numeric or out of range render parameter.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrResourceNotFound reports a palette resource that is missing, unreadable or not a regular file.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrMalformedPaletteLine reports a palette line that does not hold three integer channels.
	ErrMalformedPaletteLine = errors.New("malformed palette line")
)

// ResourceError describes a resource that could not be opened.
type ResourceError struct {
	Path string // absolute path the resource resolved to
	Hint string // optional advice about the working directory
	Err  error
}

func (e *ResourceError) Error() string {
	msg := fmt.Sprintf("%v: %q", ErrResourceNotFound, e.Path)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Hint != "" {
		msg += " (hint: " + e.Hint + ")"
	}
	return msg
}

// Unwrap makes errors.Is(err, ErrResourceNotFound) hold along with the underlying cause.
func (e *ResourceError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrResourceNotFound}
	}
	return []error{ErrResourceNotFound, e.Err}
}

// invalidArgf returns an error wrapping ErrInvalidArgument.
func invalidArgf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, a...))
}
