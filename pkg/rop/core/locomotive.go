package core

import (
	"context"
	"sync"

	"github.com/ib-77/railway/pkg/rop"
)

// Engine processes one result and delivers its output on the returned
// channel.
type Engine[In, Out any] func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out]

// Lift turns a synchronous step into an Engine running on its own
// goroutine. A context that ends before the step starts closes the
// channel without a value.
func Lift[In, Out any](step func(ctx context.Context, input rop.Result[In]) rop.Result[Out]) Engine[In, Out] {
	return func(ctx context.Context, input rop.Result[In]) <-chan rop.Result[Out] {
		out := make(chan rop.Result[Out], 1)

		go func() {
			defer close(out)

			if ctx.Err() == nil {
				out <- step(ctx, input)
			}
		}()

		return out
	}
}

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out])
	OnCancelUnprocessed func(ctx context.Context, unprocessed rop.Result[In], outCh chan<- rop.Result[Out])
	OnCancelProcessed   func(ctx context.Context, in rop.Result[In], processed rop.Result[Out], outCh chan<- rop.Result[Out])
}

// Locomotive pulls results from inputCh through engine into outCh until
// the input closes or ctx ends.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out],
	engine Engine[In, Out],
	handlers CancellationHandlers[In, Out],
	onSuccess func(ctx context.Context, in rop.Result[Out]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					if handlers.OnCancelUnprocessed != nil {
						handlers.OnCancelUnprocessed(ctx, in, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onSuccess != nil {
						onSuccess(ctx, pr)
					}
				}
			}
		}
	}
}
