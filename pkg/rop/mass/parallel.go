package mass

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/core"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Producer computes one independent result.
type Producer[T any] func(ctx context.Context) rop.Result[T]

// Batch is a set of producers running concurrently.
type Batch[T any] struct {
	done     chan struct{}
	results  []rop.Result[T]
	mu       sync.Mutex
	panicVal any
	panicked bool
}

// Parallel starts every producer at once, or at most
// core.GetWorkerMaxCount at a time when the context carries a worker
// limit. Every producer shares ctx; none is cancelled because a sibling
// failed.
func Parallel[T any](ctx context.Context, producers ...Producer[T]) *Batch[T] {
	b := &Batch[T]{
		done:    make(chan struct{}),
		results: make([]rop.Result[T], len(producers)),
	}

	limit := core.GetWorkerMaxCount(ctx, core.Unbounded)

	go func() {
		defer close(b.done)

		var g errgroup.Group
		g.SetLimit(limit)

		for i, produce := range producers {
			g.Go(func() error {
				defer b.recover()
				b.results[i] = produce(ctx)
				return nil
			})
		}

		_ = g.Wait()
	}()

	return b
}

func (b *Batch[T]) recover() {
	if r := recover(); r != nil {
		b.mu.Lock()
		defer b.mu.Unlock()
		if !b.panicked {
			b.panicVal = r
			b.panicked = true
		}
	}
}

// Done is closed once every producer has returned.
func (b *Batch[T]) Done() <-chan struct{} {
	return b.done
}

// Await blocks until every producer has returned and accumulates their
// results in producer order. A producer panic is re-raised here.
func (b *Batch[T]) Await() rop.Result[[]T] {
	return solo.CombineAll(b.Results()...)
}

// Results blocks like Await and returns each producer's own result.
func (b *Batch[T]) Results() []rop.Result[T] {
	<-b.done
	if b.panicked {
		panic(b.panicVal)
	}
	return append([]rop.Result[T](nil), b.results...)
}

// Pending exposes the accumulated outcome for further lifted steps.
func (b *Batch[T]) Pending(ctx context.Context) *Pending[[]T] {
	return Go(ctx, func(context.Context) rop.Result[[]T] {
		return b.Await()
	})
}
