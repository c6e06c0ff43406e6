package chain

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return Start(c.ctx, solo.Bind(c.ctx, c.result, onSuccess))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.result, tryOnSuccess))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map(c.ctx, c.result, onSuccess))
}

// Combine accumulates an independent result into the chain
func Combine[T, U any](c *Chain[T], other rop.Result[U]) *Chain[rop.Pair[T, U]] {
	return Start(c.ctx, solo.Combine(c.result, other))
}

// And folds in a payload-less validation, keeping the chain value
func (c *Chain[T]) And(check rop.Result[rop.Unit]) *Chain[T] {
	return Start(c.ctx, solo.CombineUnit(c.result, check))
}

// Tap performs a side effect on success without changing the result
func (c *Chain[T]) Tap(onSuccess func(context.Context, T)) *Chain[T] {
	return Start(c.ctx, solo.Tap(c.ctx, c.result, onSuccess))
}

// TapError performs a side effect on failure without changing the result
func (c *Chain[T]) TapError(onFailure func(context.Context, rop.Error)) *Chain[T] {
	return Start(c.ctx, solo.TapError(c.ctx, c.result, onFailure))
}

// Ensure turns a success into a failure when predicate rejects the value
func (c *Chain[T]) Ensure(predicate func(context.Context, T) bool, err rop.Error) *Chain[T] {
	return Start(c.ctx, solo.Ensure(c.ctx, c.result, predicate, err))
}

func (c *Chain[T]) MapError(onFailure func(context.Context, rop.Error) rop.Error) *Chain[T] {
	return Start(c.ctx, solo.MapError(c.ctx, c.result, onFailure))
}

func (c *Chain[T]) Compensate(onFailure func(context.Context, rop.Error) rop.Result[T]) *Chain[T] {
	return Start(c.ctx, solo.Compensate(c.ctx, c.result, onFailure))
}

func (c *Chain[T]) CompensateIf(predicate func(rop.Error) bool,
	onFailure func(context.Context, rop.Error) rop.Result[T]) *Chain[T] {
	return Start(c.ctx, solo.CompensateIf(c.ctx, c.result, predicate, onFailure))
}

// RecoverOnFailure is Compensate; calls chain so a failed recovery can be
// recovered again
func (c *Chain[T]) RecoverOnFailure(onFailure func(context.Context, rop.Error) rop.Result[T]) *Chain[T] {
	return Start(c.ctx, solo.RecoverOnFailure(c.ctx, c.result, onFailure))
}

// Or returns the first successful chain, or c's failure when none succeeds
func (c *Chain[T]) Or(alternatives ...*Chain[T]) *Chain[T] {
	if c.result.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.result.IsSuccess() {
			return alt
		}
	}
	return c
}

// Finally collapses the chain into a final value using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, rop.Error) U, onCancel func(context.Context, rop.Error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}

// Match collapses the chain into a final value
func Match[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, rop.Error) U) U {
	return solo.Match(c.ctx, c.result, onSuccess, onFailure)
}
