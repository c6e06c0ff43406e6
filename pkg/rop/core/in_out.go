package core

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
)

type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSuccess   func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

// ToChanFromArgsResults streams values as successful results. Handlers
// observe each sent value and, on cancellation, the values never sent.
func ToChanFromArgsResults[T any](ctx context.Context, handlers ToChanHandlers[T], values ...T) <-chan rop.Result[T] {
	in := make(chan rop.Result[T])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- rop.Success(v):
				if handlers.OnSuccess != nil {
					handlers.OnSuccess(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

func ToChanManyResultsWithHandlers[T any](ctx context.Context, handlers ToChanHandlers[T], values []T) <-chan rop.Result[T] {
	return ToChanFromArgsResults[T](ctx, handlers, values...)
}

func ToChanManyResults[T any](ctx context.Context, values []T) <-chan rop.Result[T] {
	return ToChanFromArgsResults[T](ctx, ToChanHandlers[T]{}, values...)
}

// FromChanFirstOrDefault returns the first value from out, or defaultV
// when out closes empty or ctx ends first.
func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	select {
	case v, ok := <-out:
		if !ok {
			return defaultV
		}
		return v
	case <-ctx.Done():
		return defaultV
	}
}

// FromChanMany collects out until it closes or ctx ends.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
