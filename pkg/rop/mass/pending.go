package mass

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
)

// Pending is a result still being computed. It resolves exactly once and
// may be awaited by any number of goroutines.
type Pending[T any] struct {
	done     chan struct{}
	res      rop.Result[T]
	panicVal any
	panicked bool
}

// Go starts f on its own goroutine. A panic in f is re-raised by Await.
func Go[T any](ctx context.Context, f func(ctx context.Context) rop.Result[T]) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{})}

	go func() {
		defer close(p.done)
		defer func() {
			if r := recover(); r != nil {
				p.panicVal = r
				p.panicked = true
			}
		}()

		p.res = f(ctx)
	}()

	return p
}

// Ready wraps an already known result.
func Ready[T any](r rop.Result[T]) *Pending[T] {
	p := &Pending[T]{done: make(chan struct{}), res: r}
	close(p.done)
	return p
}

// FromChan resolves to the first result received from ch. A channel that
// closes empty resolves to an Unexpected failure.
func FromChan[T any](ctx context.Context, ch <-chan rop.Result[T]) *Pending[T] {
	return Go(ctx, func(ctx context.Context) rop.Result[T] {
		select {
		case r, ok := <-ch:
			if !ok {
				return rop.Fail[T](ErrNoResult)
			}
			return r
		case <-ctx.Done():
			return rop.Fail[T](rop.Canceled(ctx.Err()))
		}
	})
}

// ErrNoResult reports a producer channel that closed without a result.
var ErrNoResult = rop.Unexpected("pending computation closed without a result")

// Done is closed once the result is available.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Await blocks until the result is available or ctx ends; the latter
// yields a cancelled failure.
func (p *Pending[T]) Await(ctx context.Context) rop.Result[T] {
	select {
	case <-p.done:
		return p.resolved()
	default:
	}

	select {
	case <-p.done:
		return p.resolved()
	case <-ctx.Done():
		return rop.Fail[T](rop.Canceled(ctx.Err()))
	}
}

func (p *Pending[T]) resolved() rop.Result[T] {
	if p.panicked {
		panic(p.panicVal)
	}
	return p.res
}

// Await is p.Await(ctx).
func Await[T any](ctx context.Context, p *Pending[T]) rop.Result[T] {
	return p.Await(ctx)
}

// Chan delivers the result on a channel, for stream stages.
func (p *Pending[T]) Chan(ctx context.Context) <-chan rop.Result[T] {
	out := make(chan rop.Result[T], 1)
	go func() {
		defer close(out)
		out <- p.Await(ctx)
	}()
	return out
}
