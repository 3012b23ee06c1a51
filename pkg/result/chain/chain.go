package chain

import (
	"context"

	"github.com/ib-77/result/pkg/result"
)

type Chain[T, E any] struct {
	ctx context.Context
	res result.Result[T, E]
}

func Start[T, E any](ctx context.Context, r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, result.Ok[T, E](v))
}

func FromError[T, E any](ctx context.Context, e E) Chain[T, E] {
	return Start(ctx, result.Err[T, E](e))
}

func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

func (c Chain[T, E]) Context() context.Context {
	return c.ctx
}

func (c Chain[T, E]) with(r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: r}
}

// Then composes functions that already return result.Result[T, E]
func (c Chain[T, E]) Then(onOk func(ctx context.Context, t T) result.Result[T, E]) Chain[T, E] {
	return c.with(result.AndThen(c.res, func(t T) result.Result[T, E] { return onOk(c.ctx, t) }))
}

// Map transforms the Ok value
func (c Chain[T, E]) Map(onOk func(ctx context.Context, t T) T) Chain[T, E] {
	return c.with(result.Map(c.res, func(t T) T { return onOk(c.ctx, t) }))
}

// Recover gives an Err chain a second chance to get back on the Ok track
func (c Chain[T, E]) Recover(onErr func(ctx context.Context, e E) result.Result[T, E]) Chain[T, E] {
	return c.with(result.OrElse(c.res, func(e E) result.Result[T, E] { return onErr(c.ctx, e) }))
}

// Or keeps c when it is Ok, otherwise returns alternative.
func (c Chain[T, E]) Or(alternative Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	return alternative
}

// And returns required when c is Ok, otherwise c.
func (c Chain[T, E]) And(required Chain[T, E]) Chain[T, E] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// RepeatUntil runs step at least once and keeps running it while the chain
// is Ok and done reports false.
func (c Chain[T, E]) RepeatUntil(step func(ctx context.Context, t T) result.Result[T, E],
	done func(ctx context.Context, t T) bool) Chain[T, E] {

	if c.res.IsErr() {
		return c
	}

	for {
		c = c.Then(step)

		t, ok := c.res.Ok()
		if !ok || done(c.ctx, t) {
			return c
		}
	}
}

// While runs step as long as the chain is Ok and cond holds.
func (c Chain[T, E]) While(step func(ctx context.Context, t T) result.Result[T, E],
	cond func(ctx context.Context, t T) bool) Chain[T, E] {

	for {
		t, ok := c.res.Ok()
		if !ok || !cond(c.ctx, t) {
			return c
		}
		c = c.Then(step)
	}
}

// Ensure triggers side effects for Ok/Err without changing the result
func (c Chain[T, E]) Ensure(onOk func(context.Context, T), onErr func(context.Context, E)) Chain[T, E] {
	if onOk != nil {
		result.Inspect(c.res, func(t T) { onOk(c.ctx, t) })
	}
	if onErr != nil {
		result.InspectErr(c.res, func(e E) { onErr(c.ctx, e) })
	}
	return c
}

// Finally collapses the chain to a final value of the same type
func (c Chain[T, E]) Finally(onOk func(context.Context, T) T, onErr func(context.Context, E) T) T {
	return Finally(c, onOk, onErr)
}

// Then chains a function that switches the Ok type
func Then[T, U, E any](c Chain[T, E], onOk func(context.Context, T) result.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{
		ctx: c.ctx,
		res: result.AndThen(c.res, func(t T) result.Result[U, E] { return onOk(c.ctx, t) }),
	}
}

// Map chains a pure transformation function
func Map[T, U, E any](c Chain[T, E], onOk func(context.Context, T) U) Chain[U, E] {
	return Chain[U, E]{
		ctx: c.ctx,
		res: result.Map(c.res, func(t T) U { return onOk(c.ctx, t) }),
	}
}

// MapErr changes the Err type
func MapErr[T, E, F any](c Chain[T, E], onErr func(context.Context, E) F) Chain[T, F] {
	return Chain[T, F]{
		ctx: c.ctx,
		res: result.MapErr(c.res, func(e E) F { return onErr(c.ctx, e) }),
	}
}

// TryOr chains a (U, error) function, narrowing its error to F as
// result.TryOr does.
func TryOr[T, U any, F error](c Chain[T, F], try func(context.Context, T) (U, error)) Chain[U, F] {
	return Then(c, func(ctx context.Context, t T) result.Result[U, F] {
		return result.TryOr[U, F](func() (U, error) { return try(ctx, t) })
	})
}

// Try is TryOr for chains whose Err type is error
func Try[T, U any](c Chain[T, error], try func(context.Context, T) (U, error)) Chain[U, error] {
	return TryOr(c, try)
}

// Finally collapses the chain into a final value
func Finally[T, E, U any](c Chain[T, E], onOk func(context.Context, T) U, onErr func(context.Context, E) U) U {
	return result.Match(c.res,
		func(t T) U { return onOk(c.ctx, t) },
		func(e E) U { return onErr(c.ctx, e) })
}
