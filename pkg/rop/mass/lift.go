package mass

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// then awaits input and applies step to whatever it resolved to. A
// cancelled wait reaches step as a failure, so user functions behind
// step never run for it.
func then[In, Out any](ctx context.Context, input *Pending[In],
	step func(ctx context.Context, r rop.Result[In]) rop.Result[Out]) *Pending[Out] {

	return Go(ctx, func(ctx context.Context) rop.Result[Out] {
		return step(ctx, input.Await(ctx))
	})
}

// run applies step to a known result on its own goroutine.
func run[In, Out any](ctx context.Context, input rop.Result[In],
	step func(ctx context.Context, r rop.Result[In]) rop.Result[Out]) *Pending[Out] {

	return Go(ctx, func(ctx context.Context) rop.Result[Out] {
		return step(ctx, input)
	})
}

// awaiting adapts an asynchronous function to the synchronous shape.
func awaiting[In, Out any](f func(ctx context.Context, r In) *Pending[Out]) func(ctx context.Context, r In) rop.Result[Out] {
	return func(ctx context.Context, r In) rop.Result[Out] {
		return f(ctx, r).Await(ctx)
	}
}

func MapFrom[In, Out any](ctx context.Context, input *Pending[In],
	onSuccess func(ctx context.Context, r In) Out) *Pending[Out] {
	return then(ctx, input, func(ctx context.Context, r rop.Result[In]) rop.Result[Out] {
		return solo.Map(ctx, r, onSuccess)
	})
}

// MapAsync runs a possibly slow onSuccess off the caller's goroutine.
func MapAsync[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) *Pending[Out] {
	return run(ctx, input, func(ctx context.Context, r rop.Result[In]) rop.Result[Out] {
		return solo.Map(ctx, r, onSuccess)
	})
}

func BindFrom[In, Out any](ctx context.Context, input *Pending[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) *Pending[Out] {
	return then(ctx, input, func(ctx context.Context, r rop.Result[In]) rop.Result[Out] {
		return solo.Bind(ctx, r, onSuccess)
	})
}

func BindAsync[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) *Pending[Out]) *Pending[Out] {
	return run(ctx, input, func(ctx context.Context, r rop.Result[In]) rop.Result[Out] {
		return solo.Bind(ctx, r, awaiting(onSuccess))
	})
}

func BindFromAsync[In, Out any](ctx context.Context, input *Pending[In],
	onSuccess func(ctx context.Context, r In) *Pending[Out]) *Pending[Out] {
	return then(ctx, input, func(ctx context.Context, r rop.Result[In]) rop.Result[Out] {
		return solo.Bind(ctx, r, awaiting(onSuccess))
	})
}

func TapFrom[T any](ctx context.Context, input *Pending[T],
	onSuccess func(ctx context.Context, r T)) *Pending[T] {
	return then(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.Tap(ctx, r, onSuccess)
	})
}

// TapAsync resolves after the side effect has finished.
func TapAsync[T any](ctx context.Context, input rop.Result[T],
	onSuccess func(ctx context.Context, r T)) *Pending[T] {
	return run(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.Tap(ctx, r, onSuccess)
	})
}

func EnsureFrom[T any](ctx context.Context, input *Pending[T],
	predicate func(ctx context.Context, r T) bool, err rop.Error) *Pending[T] {
	return then(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.Ensure(ctx, r, predicate, err)
	})
}

func EnsureAsync[T any](ctx context.Context, input rop.Result[T],
	predicate func(ctx context.Context, r T) bool, err rop.Error) *Pending[T] {
	return run(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.Ensure(ctx, r, predicate, err)
	})
}

func MapErrorFrom[T any](ctx context.Context, input *Pending[T],
	onFailure func(ctx context.Context, err rop.Error) rop.Error) *Pending[T] {
	return then(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.MapError(ctx, r, onFailure)
	})
}

func MapErrorAsync[T any](ctx context.Context, input rop.Result[T],
	onFailure func(ctx context.Context, err rop.Error) rop.Error) *Pending[T] {
	return run(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.MapError(ctx, r, onFailure)
	})
}

func CompensateFrom[T any](ctx context.Context, input *Pending[T],
	onFailure func(ctx context.Context, err rop.Error) rop.Result[T]) *Pending[T] {
	return then(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.Compensate(ctx, r, onFailure)
	})
}

func CompensateAsync[T any](ctx context.Context, input rop.Result[T],
	onFailure func(ctx context.Context, err rop.Error) *Pending[T]) *Pending[T] {
	return run(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.Compensate(ctx, r, awaiting(onFailure))
	})
}

func CompensateFromAsync[T any](ctx context.Context, input *Pending[T],
	onFailure func(ctx context.Context, err rop.Error) *Pending[T]) *Pending[T] {
	return then(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.Compensate(ctx, r, awaiting(onFailure))
	})
}

func CompensateIfFrom[T any](ctx context.Context, input *Pending[T],
	predicate func(err rop.Error) bool,
	onFailure func(ctx context.Context, err rop.Error) rop.Result[T]) *Pending[T] {
	return then(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.CompensateIf(ctx, r, predicate, onFailure)
	})
}

func CompensateIfAsync[T any](ctx context.Context, input rop.Result[T],
	predicate func(err rop.Error) bool,
	onFailure func(ctx context.Context, err rop.Error) *Pending[T]) *Pending[T] {
	return run(ctx, input, func(ctx context.Context, r rop.Result[T]) rop.Result[T] {
		return solo.CompensateIf(ctx, r, predicate, awaiting(onFailure))
	})
}

func TryFrom[In, Out any](ctx context.Context, input *Pending[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) *Pending[Out] {
	return then(ctx, input, func(ctx context.Context, r rop.Result[In]) rop.Result[Out] {
		return solo.Try(ctx, r, onTryExecute)
	})
}

func TryAsync[In, Out any](ctx context.Context, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) *Pending[Out] {
	return run(ctx, input, func(ctx context.Context, r rop.Result[In]) rop.Result[Out] {
		return solo.Try(ctx, r, onTryExecute)
	})
}

// MatchFrom blocks until input resolves and folds it.
func MatchFrom[In, Out any](ctx context.Context, input *Pending[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, err rop.Error) Out) Out {
	return solo.Match(ctx, input.Await(ctx), onSuccess, onFailure)
}
