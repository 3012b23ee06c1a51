package result

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNilPayload is wrapped by the panic value of Ok and Err when they are
// given a nil payload.
var ErrNilPayload = errors.New("result: nil payload")

// UnwrapError is the panic value of an extractor called on the wrong variant.
type UnwrapError struct {
	Message string
}

func (e *UnwrapError) Error() string {
	return e.Message
}

func unwrapFailed(format string, args ...any) *UnwrapError {
	return &UnwrapError{Message: fmt.Sprintf(format, args...)}
}

// ErrorTypeMismatchError is the panic value of TryOr when the error returned
// by the supplier is not of the requested type.
type ErrorTypeMismatchError struct {
	Expected reflect.Type
	Actual   error
}

func (e *ErrorTypeMismatchError) Error() string {
	return fmt.Sprintf("result: expected an error assignable to %v but caught an error of type %T: %v",
		e.Expected, e.Actual, e.Actual)
}

func (e *ErrorTypeMismatchError) Unwrap() error {
	return e.Actual
}
