package result

import "fmt"

// Result is either Ok with a T or Err with an E. It has exactly two
// implementations and cannot be implemented outside this package.
//
// Results are immutable. When T and E are comparable, two Results are equal
// under == iff they are the same variant with equal payloads, so they can be
// used as map keys.
type Result[T, E any] interface {
	// IsOk reports whether the Result is Ok.
	IsOk() bool
	// IsErr reports whether the Result is Err.
	IsErr() bool
	// Ok returns the Ok payload and true, or the zero T and false.
	Ok() (T, bool)
	// Err returns the Err payload and true, or the zero E and false.
	Err() (E, bool)
	// Unwrap returns the Ok payload. It panics with *UnwrapError on Err.
	Unwrap() T
	// UnwrapErr returns the Err payload. It panics with *UnwrapError on Ok.
	UnwrapErr() E
	// Expect is Unwrap with the given panic message.
	Expect(msg string) T
	// ExpectErr is UnwrapErr with the given panic message.
	ExpectErr(msg string) E
	// UnwrapOr returns the Ok payload or def.
	UnwrapOr(def T) T

	fmt.Stringer

	sealed()
}

type success[T, E any] struct {
	value T
}

type failure[T, E any] struct {
	value E
}

// Ok returns a Result holding t. It panics if t is nil.
func Ok[T, E any](t T) Result[T, E] {
	mustNotBeNil("Ok", t)
	return success[T, E]{value: t}
}

// Err returns a Result holding e. It panics if e is nil.
func Err[T, E any](e E) Result[T, E] {
	mustNotBeNil("Err", e)
	return failure[T, E]{value: e}
}

func (s success[T, E]) IsOk() bool  { return true }
func (s success[T, E]) IsErr() bool { return false }

func (s success[T, E]) Ok() (T, bool) { return s.value, true }

func (s success[T, E]) Err() (E, bool) {
	var zero E
	return zero, false
}

func (s success[T, E]) Unwrap() T { return s.value }

func (s success[T, E]) UnwrapErr() E {
	panic(unwrapFailed("called UnwrapErr on an Ok value: %v", s.value))
}

func (s success[T, E]) Expect(string) T { return s.value }

func (s success[T, E]) ExpectErr(msg string) E {
	panic(&UnwrapError{Message: msg})
}

func (s success[T, E]) UnwrapOr(T) T { return s.value }

func (s success[T, E]) String() string {
	return fmt.Sprintf("Ok(%v)", s.value)
}

func (s success[T, E]) sealed() {}

func (f failure[T, E]) IsOk() bool  { return false }
func (f failure[T, E]) IsErr() bool { return true }

func (f failure[T, E]) Ok() (T, bool) {
	var zero T
	return zero, false
}

func (f failure[T, E]) Err() (E, bool) { return f.value, true }

func (f failure[T, E]) Unwrap() T {
	panic(unwrapFailed("called Unwrap on an Err value: %v", f.value))
}

func (f failure[T, E]) UnwrapErr() E { return f.value }

func (f failure[T, E]) Expect(msg string) T {
	panic(&UnwrapError{Message: msg})
}

func (f failure[T, E]) ExpectErr(string) E { return f.value }

func (f failure[T, E]) UnwrapOr(def T) T { return def }

func (f failure[T, E]) String() string {
	return fmt.Sprintf("Err(%v)", f.value)
}

func (f failure[T, E]) sealed() {}
