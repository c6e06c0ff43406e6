package solo

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
)

func errOf[T any](r rop.Result[T]) rop.Error {
	if err, failed := r.TryErr(); failed {
		return err
	}
	return nil
}

// Combine pairs two independent results. A lone failure is returned as
// is; two failures are merged with rop.MergeErrors.
func Combine[A, B any](r1 rop.Result[A], r2 rop.Result[B]) rop.Result[rop.Pair[A, B]] {
	if r1.IsSuccess() && r2.IsSuccess() {
		return rop.Success(rop.PairOf(r1.Value(), r2.Value()))
	}
	return rop.Fail[rop.Pair[A, B]](rop.MergeErrors(errOf(r1), errOf(r2)))
}

// CombineWith combines two results and folds both values with f.
func CombineWith[A, B, Out any](ctx context.Context, r1 rop.Result[A], r2 rop.Result[B],
	f func(ctx context.Context, a A, b B) Out) rop.Result[Out] {

	return Map(ctx, Combine(r1, r2), func(ctx context.Context, p rop.Pair[A, B]) Out {
		return f(ctx, p.First, p.Second)
	})
}

// CombineUnit folds in a payload-less result, keeping r1's value.
func CombineUnit[A any](r1 rop.Result[A], r2 rop.Result[rop.Unit]) rop.Result[A] {
	if r1.IsSuccess() && r2.IsSuccess() {
		return r1
	}
	return rop.Fail[A](rop.MergeErrors(errOf(r1), errOf(r2)))
}

// CombineAll left-folds Combine over results of one type. Values keep
// argument order.
func CombineAll[T any](results ...rop.Result[T]) rop.Result[[]T] {
	var err rop.Error
	values := make([]T, 0, len(results))

	for _, r := range results {
		if v, ok := r.TryValue(); ok {
			values = append(values, v)
			continue
		}
		err = rop.MergeErrors(err, r.Err())
	}

	if err != nil {
		return rop.Fail[[]T](err)
	}
	return rop.Success(values)
}

// Traverse maps items through f and stops at the first failure; later
// items are never passed to f.
func Traverse[T, U any](ctx context.Context, items []T,
	f func(ctx context.Context, item T) rop.Result[U]) rop.Result[[]U] {

	out := make([]U, 0, len(items))
	for _, item := range items {
		res := f(ctx, item)
		if res.IsFailure() {
			return rop.FailFrom[U, []U](res)
		}
		out = append(out, res.Value())
	}
	return rop.Success(out)
}
