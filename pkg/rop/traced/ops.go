package traced

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/mass"
	"github.com/ib-77/railway/pkg/rop/solo"
)

func Map[In, Out any](ctx context.Context, t *Tracer, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	return run(ctx, t, "map", func(ctx context.Context) rop.Result[Out] {
		return solo.Map(ctx, input, onSuccess)
	})
}

func Bind[In, Out any](ctx context.Context, t *Tracer, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	return run(ctx, t, "bind", func(ctx context.Context) rop.Result[Out] {
		return solo.Bind(ctx, input, onSuccess)
	})
}

func Ensure[T any](ctx context.Context, t *Tracer, input rop.Result[T],
	predicate func(ctx context.Context, r T) bool, err rop.Error) rop.Result[T] {

	return run(ctx, t, "ensure", func(ctx context.Context) rop.Result[T] {
		return solo.Ensure(ctx, input, predicate, err)
	})
}

func Try[In, Out any](ctx context.Context, t *Tracer, input rop.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	return run(ctx, t, "try", func(ctx context.Context) rop.Result[Out] {
		return solo.Try(ctx, input, onTryExecute)
	})
}

func Compensate[T any](ctx context.Context, t *Tracer, input rop.Result[T],
	onFailure func(ctx context.Context, err rop.Error) rop.Result[T]) rop.Result[T] {

	return run(ctx, t, "compensate", func(ctx context.Context) rop.Result[T] {
		return solo.Compensate(ctx, input, onFailure)
	})
}

func Combine[A, B any](ctx context.Context, t *Tracer, r1 rop.Result[A], r2 rop.Result[B]) rop.Result[rop.Pair[A, B]] {
	return run(ctx, t, "combine", func(context.Context) rop.Result[rop.Pair[A, B]] {
		return solo.Combine(r1, r2)
	})
}

func CombineAll[T any](ctx context.Context, t *Tracer, results ...rop.Result[T]) rop.Result[[]T] {
	return run(ctx, t, "combine_all", func(context.Context) rop.Result[[]T] {
		return solo.CombineAll(results...)
	}, attribute.Int(AttrItems, len(results)))
}

// Traverse records a single span for the whole walk; f sees the span's
// context.
func Traverse[T, U any](ctx context.Context, t *Tracer, items []T,
	f func(ctx context.Context, item T) rop.Result[U]) rop.Result[[]U] {

	return run(ctx, t, "traverse", func(ctx context.Context) rop.Result[[]U] {
		return solo.Traverse(ctx, items, f)
	}, attribute.Int(AttrItems, len(items)))
}

// Parallel runs producers with mass.Parallel under one span and waits for
// all of them.
func Parallel[T any](ctx context.Context, t *Tracer, producers ...mass.Producer[T]) rop.Result[[]T] {
	return run(ctx, t, "parallel", func(ctx context.Context) rop.Result[[]T] {
		return mass.Parallel(ctx, producers...).Await()
	}, attribute.Int(AttrItems, len(producers)))
}
