package core

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/railway/pkg/rop"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	assert.Equal(t, 4, GetWorkerMaxCount(ctx, 4))
	assert.True(t, IsProcessRemainingEnabled(ctx, true))
}

func TestOptions_FromContext(t *testing.T) {
	t.Parallel()
	ctx := WithProcessOptions(WithWorkerOptions(context.Background(), 2), false)

	assert.Equal(t, 2, GetWorkerMaxCount(ctx, 4))
	assert.False(t, IsProcessRemainingEnabled(ctx, true))
}

func TestOptions_WorkerCountBelowOneIsUnbounded(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Unbounded, GetWorkerMaxCount(context.Background(), 0))
	assert.Equal(t, Unbounded, GetWorkerMaxCount(WithWorkerOptions(context.Background(), 0), 4))
	assert.Equal(t, Unbounded, GetWorkerMaxCount(WithWorkerOptions(context.Background(), -7), 4))
}

func TestToChanManyResults_FromChanMany(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := FromChanMany(ctx, ToChanManyResults(ctx, []int{1, 2, 3}))

	require.Len(t, out, 3)
	for i, r := range out {
		assert.Equal(t, i+1, r.Value())
	}
}

func TestToChanFromArgsResults_StartFail(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var failed []int
	out := FromChanMany(context.Background(), ToChanManyResultsWithHandlers(ctx,
		ToChanHandlers[int]{OnStartFail: func(_ context.Context, input []int) { failed = input }},
		[]int{1, 2}))

	assert.Empty(t, out)
	assert.Equal(t, []int{1, 2}, failed)
}

func TestFromChanFirstOrDefault(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	first := FromChanFirstOrDefault(ctx, ToChanManyResults(ctx, []int{5}), rop.Success(-1))
	assert.Equal(t, 5, first.Value())

	none := FromChanFirstOrDefault(ctx, ToChanManyResults(ctx, []int{}), rop.Success(-1))
	assert.Equal(t, -1, none.Value())
}

func TestLocomotive_ProcessesAll(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	out := make(chan rop.Result[int], 3)
	wg := &sync.WaitGroup{}

	double := Lift(func(_ context.Context, in rop.Result[int]) rop.Result[int] {
		return rop.Success(in.Value() * 2)
	})

	var seen int
	wg.Add(1)
	Locomotive(ctx, ToChanManyResults(ctx, []int{1, 2, 3}), out, double,
		CancellationHandlers[int, int]{}, func(_ context.Context, _ rop.Result[int]) { seen++ }, wg)
	wg.Wait()
	close(out)

	var sum int
	for r := range out {
		sum += r.Value()
	}
	assert.Equal(t, 12, sum)
	assert.Equal(t, 3, seen)
}

func TestLift_SkipsEndedContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	engine := Lift(func(_ context.Context, in rop.Result[int]) rop.Result[int] {
		called = true
		return in
	})

	_, ok := <-engine(ctx, rop.Success(1))
	assert.False(t, ok)
	assert.False(t, called)
}
