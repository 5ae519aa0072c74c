package runtime

import (
	"errors"
	"fmt"

	"mini/interpreter-go/pkg/text"
)

var ErrDivisionByZero = errors.New("division by zero")

// RuntimeError is a failure raised while evaluating a well-formed program.
// Span locates the expression that failed.
type RuntimeError struct {
	Span text.Span
	Err  error
}

func NewDivisionByZeroError(span text.Span) *RuntimeError {
	return &RuntimeError{Span: span, Err: ErrDivisionByZero}
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error at %s: %v", e.Span, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
