package lite

import (
	"context"
	"sync"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/core"
)

// Run pushes every result of inputCh through engine using lines workers.
// Output order is not guaranteed once lines > 1.
func Run[T any](ctx context.Context, inputCh <-chan rop.Result[T],
	engine core.Engine[T, T], lines int) <-chan rop.Result[T] {
	return Turnout(ctx, inputCh, engine, lines)
}

// Turnout is Run for stages that change the value type.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In],
	engine core.Engine[In, Out], lines int) <-chan rop.Result[Out] {

	if lines < 1 {
		lines = 1
	}

	out := make(chan rop.Result[Out])
	wg := &sync.WaitGroup{}
	handlers := cancellation[In, Out]()

	for range lines {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, nil, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// RunSingle keeps input order.
func RunSingle[T any](ctx context.Context, inputCh <-chan rop.Result[T],
	engine core.Engine[T, T]) <-chan rop.Result[T] {
	return Turnout(ctx, inputCh, engine, 1)
}

type FinallyHandlers[In, Out any] struct {
	OnSuccess func(ctx context.Context, r In) Out
	OnError   func(ctx context.Context, err rop.Error) Out
	// OnCancel handles cancelled failures; nil routes them to OnError.
	OnCancel func(ctx context.Context, err rop.Error) Out
}

// Finally folds every result of input into a value. After ctx ends it
// keeps folding only when remaining inputs are processed.
func Finally[In, Out any](ctx context.Context, input <-chan rop.Result[In],
	handlers FinallyHandlers[In, Out]) <-chan Out {

	onCancel := handlers.OnCancel
	if onCancel == nil {
		onCancel = handlers.OnError
	}
	processRemaining := core.IsProcessRemainingEnabled(ctx, true)

	out := make(chan Out)

	go func() {
		defer close(out)

		for in := range input {
			v := foldResult(ctx, in, handlers.OnSuccess, handlers.OnError, onCancel)

			if processRemaining {
				out <- v
				continue
			}

			select {
			case out <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func foldResult[In, Out any](ctx context.Context, in rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError, onCancel func(ctx context.Context, err rop.Error) Out) Out {

	switch {
	case in.IsSuccess():
		return onSuccess(ctx, in.Value())
	case in.IsCancel():
		return onCancel(ctx, in.Err())
	default:
		return onError(ctx, in.Err())
	}
}
