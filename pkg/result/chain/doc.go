// Package chain provides a fluent, context-carrying wrapper around
// result.Result[T, E] for building synchronous railway chains.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain
// - Then/Map: continue on the Ok track (methods keep T, functions change it)
// - Recover/Or/And: switch tracks
// - TryOr/Try: call a (U, error) function and narrow its error
// - Ensure: run side effects without changing the result
// - RepeatUntil/While: loop a step while the chain stays Ok
// - Finally: collapse the chain into a plain value
//
// Every step receives the chain's context. The chain never inspects it.
package chain
