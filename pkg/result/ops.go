package result

// Match calls ifOk or ifErr, whichever matches the variant of r, and returns
// its output. The other function is never called.
func Match[T, E, U any](r Result[T, E], ifOk func(T) U, ifErr func(E) U) U {
	switch v := r.(type) {
	case success[T, E]:
		return ifOk(v.value)
	case failure[T, E]:
		return ifErr(v.value)
	}
	panic("result: Match on a nil Result")
}

// Visit is Match for side effects only.
func Visit[T, E any](r Result[T, E], ifOk func(T), ifErr func(E)) {
	Match(r,
		func(t T) struct{} {
			ifOk(t)
			return struct{}{}
		},
		func(e E) struct{} {
			ifErr(e)
			return struct{}{}
		})
}

// ExpectFunc returns the Ok payload of r. On Err it panics with f(e).
func ExpectFunc[T, E any, F error](r Result[T, E], f func(E) F) T {
	return Match(r,
		func(t T) T { return t },
		func(e E) T { panic(f(e)) })
}

// ExpectErrFunc returns the Err payload of r. On Ok it panics with f(t).
func ExpectErrFunc[T, E any, F error](r Result[T, E], f func(T) F) E {
	return Match(r,
		func(t T) E { panic(f(t)) },
		func(e E) E { return e })
}

// UnwrapOrElse returns the Ok payload of r, or orElse(e) on Err.
func UnwrapOrElse[T, E any](r Result[T, E], orElse func(E) T) T {
	return Match(r, func(t T) T { return t }, orElse)
}

// Map returns Ok(f(t)) when r is Ok(t), otherwise r's Err retyped.
func Map[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	return Match(r,
		func(t T) Result[U, E] { return Ok[U, E](f(t)) },
		passErr[U, E])
}

// MapErr returns Err(f(e)) when r is Err(e), otherwise r's Ok retyped.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	return Match(r,
		passOk[T, F],
		func(e E) Result[T, F] { return Err[T, F](f(e)) })
}

// And returns x itself when r is Ok, otherwise r's Err retyped.
func And[T, E, U any](r Result[T, E], x Result[U, E]) Result[U, E] {
	return Match(r,
		func(T) Result[U, E] { return x },
		passErr[U, E])
}

// AndThen returns f(t) when r is Ok(t), otherwise r's Err retyped.
func AndThen[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	return Match(r, f, passErr[U, E])
}

// Or returns x itself when r is Err, otherwise r's Ok retyped.
func Or[T, E, F any](r Result[T, E], x Result[T, F]) Result[T, F] {
	return Match(r,
		passOk[T, F],
		func(E) Result[T, F] { return x })
}

// OrElse returns f(e) when r is Err(e), otherwise r's Ok retyped.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	return Match(r, passOk[T, F], f)
}

// Flatten removes one level of nesting from the Ok channel.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	return AndThen(r, func(inner Result[T, E]) Result[T, E] { return inner })
}

// Inspect calls f with the Ok payload, if any, and returns r.
func Inspect[T, E any](r Result[T, E], f func(T)) Result[T, E] {
	if t, ok := r.Ok(); ok {
		f(t)
	}
	return r
}

// InspectErr calls f with the Err payload, if any, and returns r.
func InspectErr[T, E any](r Result[T, E], f func(E)) Result[T, E] {
	if e, ok := r.Err(); ok {
		f(e)
	}
	return r
}

// Equal reports whether a and b are the same variant with equal payloads.
func Equal[T, E comparable](a, b Result[T, E]) bool {
	return EqualFunc(a, b,
		func(x, y T) bool { return x == y },
		func(x, y E) bool { return x == y })
}

// EqualFunc is Equal with caller supplied payload equality.
func EqualFunc[T, E any](a, b Result[T, E], eqOk func(T, T) bool, eqErr func(E, E) bool) bool {
	if at, ok := a.Ok(); ok {
		bt, ok := b.Ok()
		return ok && eqOk(at, bt)
	}

	ae, _ := a.Err()
	be, ok := b.Err()
	return ok && eqErr(ae, be)
}

// the payload was checked when the original variant was built
func passOk[T, F any](t T) Result[T, F] {
	return success[T, F]{value: t}
}

func passErr[U, E any](e E) Result[U, E] {
	return failure[U, E]{value: e}
}
