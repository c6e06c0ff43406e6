package mass

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Combine waits for both inputs, whatever either resolves to, then
// accumulates them like solo.Combine.
func Combine[A, B any](ctx context.Context, p1 *Pending[A], p2 *Pending[B]) *Pending[rop.Pair[A, B]] {
	return Go(ctx, func(ctx context.Context) rop.Result[rop.Pair[A, B]] {
		r1 := p1.Await(ctx)
		r2 := p2.Await(ctx)
		return solo.Combine(r1, r2)
	})
}

func CombineUnit[A any](ctx context.Context, p1 *Pending[A], p2 *Pending[rop.Unit]) *Pending[A] {
	return Go(ctx, func(ctx context.Context) rop.Result[A] {
		r1 := p1.Await(ctx)
		r2 := p2.Await(ctx)
		return solo.CombineUnit(r1, r2)
	})
}

// CombineAll waits for every input and accumulates them in argument order.
func CombineAll[T any](ctx context.Context, pending ...*Pending[T]) *Pending[[]T] {
	return Go(ctx, func(ctx context.Context) rop.Result[[]T] {
		results := make([]rop.Result[T], len(pending))
		for i, p := range pending {
			results[i] = p.Await(ctx)
		}
		return solo.CombineAll(results...)
	})
}

// Traverse maps items one at a time through an asynchronous f, stopping
// at the first failure. An ended ctx stops before the next item with a
// cancelled failure.
func Traverse[T, U any](ctx context.Context, items []T,
	f func(ctx context.Context, item T) *Pending[U]) *Pending[[]U] {

	return Go(ctx, func(ctx context.Context) rop.Result[[]U] {
		out := make([]U, 0, len(items))
		for _, item := range items {
			if err := ctx.Err(); err != nil {
				return rop.Fail[[]U](rop.Canceled(err))
			}

			res := f(ctx, item).Await(ctx)
			if res.IsFailure() {
				return rop.FailFrom[U, []U](res)
			}
			out = append(out, res.Value())
		}
		return rop.Success(out)
	})
}
