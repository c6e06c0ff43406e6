package solo

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
)

// Compensate replaces a failure with whatever onFailure returns.
func Compensate[T any](ctx context.Context,
	input rop.Result[T],
	onFailure func(ctx context.Context, err rop.Error) rop.Result[T]) rop.Result[T] {

	if input.IsFailure() {
		return onFailure(ctx, input.Err())
	}
	return input
}

// CompensateIf is Compensate gated by predicate. A non-matching failure
// is returned untouched.
func CompensateIf[T any](ctx context.Context,
	input rop.Result[T],
	predicate func(err rop.Error) bool,
	onFailure func(ctx context.Context, err rop.Error) rop.Result[T]) rop.Result[T] {

	if input.IsFailure() && predicate(input.Err()) {
		return onFailure(ctx, input.Err())
	}
	return input
}

// RecoverOnFailure tries each recovery left to right, each receiving the
// latest error, and stops at the first success.
func RecoverOnFailure[T any](ctx context.Context,
	input rop.Result[T],
	recoveries ...func(ctx context.Context, err rop.Error) rop.Result[T]) rop.Result[T] {

	res := input
	for _, recovery := range recoveries {
		if res.IsSuccess() {
			return res
		}
		res = recovery(ctx, res.Err())
	}
	return res
}
