package lite

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/core"
)

func cancellation[In, Out any]() core.CancellationHandlers[In, Out] {
	return core.CancellationHandlers[In, Out]{
		OnCancel:            CancelRemainingResults[In, Out],
		OnCancelUnprocessed: CancelRemainingResult[In, Out],
		OnCancelProcessed:   DeliverProcessed[In, Out],
	}
}

// Cancelled re-types in as a cancelled failure. An input that already
// failed by cancellation keeps its error.
func Cancelled[In, Out any](ctx context.Context, in rop.Result[In]) rop.Result[Out] {
	if in.IsCancel() {
		return rop.FailFrom[In, Out](in)
	}
	return rop.Fail[Out](rop.Canceled(context.Cause(ctx)))
}

// CancelRemainingResults drains inputCh into outCh as cancelled failures
// when remaining inputs are processed.
func CancelRemainingResults[In, Out any](ctx context.Context,
	inputCh <-chan rop.Result[In], outCh chan<- rop.Result[Out]) {

	if !core.IsProcessRemainingEnabled(ctx, true) {
		return
	}
	for in := range inputCh {
		outCh <- Cancelled[In, Out](ctx, in)
	}
}

func CancelRemainingResult[In, Out any](ctx context.Context, in rop.Result[In],
	outCh chan<- rop.Result[Out]) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- Cancelled[In, Out](ctx, in)
	}
}

// DeliverProcessed forwards a result computed just before ctx ended.
func DeliverProcessed[In, Out any](ctx context.Context, _ rop.Result[In],
	processed rop.Result[Out], outCh chan<- rop.Result[Out]) {

	if core.IsProcessRemainingEnabled(ctx, true) {
		outCh <- processed
	}
}
