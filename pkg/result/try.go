package result

import "reflect"

// TryOr calls thunk and turns its outcome into a Result.
//
// A nil error gives Ok(t). A non-nil error that is an F gives Err with that
// error. Any other error makes TryOr panic with *ErrorTypeMismatchError,
// which wraps the caught error. Narrowing is a type assertion on the
// returned error itself; wrapped errors are not searched. Panics raised by
// thunk are not recovered.
func TryOr[T any, F error](thunk CheckedSupplier[T]) Result[T, F] {
	t, err := thunk()
	if err == nil {
		return Ok[T, F](t)
	}

	if f, ok := err.(F); ok {
		return Err[T, F](f)
	}

	panic(&ErrorTypeMismatchError{Expected: reflect.TypeFor[F](), Actual: err})
}

// Try is TryOr narrowing to error, which never mismatches.
func Try[T any](thunk CheckedSupplier[T]) Result[T, error] {
	return TryOr[T, error](thunk)
}

// FromPair converts a (value, error) pair into a Result.
func FromPair[T any](t T, err error) Result[T, error] {
	return Try[T](func() (T, error) { return t, err })
}
