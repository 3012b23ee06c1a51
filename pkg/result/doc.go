// Package result provides Result[T, E], a value that is either Ok and holds a
// T, or Err and holds an E. E is any type, not necessarily an error.
//
// The package is split the way Go generics force it to be:
// - Ok/Err: construct a Result; nil payloads are rejected with a panic
// - methods: IsOk/IsErr, Ok/Err views, Unwrap/UnwrapErr/Expect/ExpectErr
// - functions: Match/Visit, Map/MapErr, And/AndThen, Or/OrElse and the
//   other operations that introduce a new type parameter
// - TryOr/Try/FromPair: bridge from (T, error) returning code into a Result
//
// Extractors panic with *UnwrapError when the wrong variant is demanded.
// TryOr panics with *ErrorTypeMismatchError when the returned error cannot be
// narrowed to the requested type. Nothing in this package recovers panics
// raised by caller supplied functions.
package result
