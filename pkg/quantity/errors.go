package quantity

import (
	"errors"
	"fmt"
)

// ErrNilArgument is wrapped by the panics raised when a composition
// helper receives a nil operand or factory.
var ErrNilArgument = errors.New("nil argument")

// ArgumentError names the offending argument.
type ArgumentError struct {
	Argument string
	Err      error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Argument, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func nilArgument(name string) *ArgumentError {
	return &ArgumentError{Argument: name, Err: ErrNilArgument}
}
