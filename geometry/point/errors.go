package point

import (
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid point input")

// InputError reports a value that could not be turned into a finite
// coordinate.
type InputError struct {
	Value  any
	Reason string
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Reason == "" {
		return fmt.Sprintf("%s: %#v", ErrInvalidInput, e.Value)
	}
	return fmt.Sprintf("%s: %#v: %s", ErrInvalidInput, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInvalidInput }

func invalid(v any, format string, args ...any) error {
	return &InputError{Value: v, Reason: fmt.Sprintf(format, args...)}
}
