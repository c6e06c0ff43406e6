package lite

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/core"
	"github.com/ib-77/railway/pkg/rop/solo"
)

func Validate[T any](field string,
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) core.Engine[T, T] {
	return core.Lift(func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.Bind(ctx, input, func(ctx context.Context, v T) rop.Result[T] {
			return solo.Validate(ctx, v, field, validate)
		})
	})
}

func Map[In, Out any](onSuccess func(ctx context.Context, r In) Out) core.Engine[In, Out] {
	return core.Lift(func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Map(ctx, input, onSuccess)
	})
}

// Bind is the switch stage: onSuccess may fail.
func Bind[In, Out any](onSuccess func(ctx context.Context, r In) rop.Result[Out]) core.Engine[In, Out] {
	return core.Lift(func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Bind(ctx, input, onSuccess)
	})
}

func Tap[T any](onSuccess func(ctx context.Context, r T)) core.Engine[T, T] {
	return core.Lift(func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.Tap(ctx, input, onSuccess)
	})
}

func TapError[T any](onFailure func(ctx context.Context, err rop.Error)) core.Engine[T, T] {
	return core.Lift(func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.TapError(ctx, input, onFailure)
	})
}

func DoubleTap[T any](onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err rop.Error),
	onCancel func(ctx context.Context, err rop.Error)) core.Engine[T, T] {
	return core.Lift(func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.DoubleTap(ctx, input, onSuccess, onError, onCancel)
	})
}

func Ensure[T any](predicate func(ctx context.Context, r T) bool, err rop.Error) core.Engine[T, T] {
	return core.Lift(func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.Ensure(ctx, input, predicate, err)
	})
}

func MapError[T any](onFailure func(ctx context.Context, err rop.Error) rop.Error) core.Engine[T, T] {
	return core.Lift(func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.MapError(ctx, input, onFailure)
	})
}

func Compensate[T any](onFailure func(ctx context.Context, err rop.Error) rop.Result[T]) core.Engine[T, T] {
	return core.Lift(func(ctx context.Context, input rop.Result[T]) rop.Result[T] {
		return solo.Compensate(ctx, input, onFailure)
	})
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) core.Engine[In, Out] {
	return core.Lift(func(ctx context.Context, input rop.Result[In]) rop.Result[Out] {
		return solo.Try(ctx, input, onTryExecute)
	})
}
