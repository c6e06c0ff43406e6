package core

import "context"

type OptionKey string

const (
	ProcessOptionKey OptionKey = "process_options"
	WorkerOptionKey  OptionKey = "worker_options"
)

// Unbounded is the worker count meaning no limit. errgroup.SetLimit
// reads negative values the same way.
const Unbounded = -1

type WorkerOptions struct {
	MaxCount int
}

type ProcessOptions struct {
	// ProcessRemaining drains inputs left behind by a cancelled stage as
	// cancelled failures instead of dropping them.
	ProcessRemaining bool
}

// WithProcessOptions stores the cancellation policy for stream stages.
func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

// WithWorkerOptions bounds how many producers or workers run at once.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxCount: normalizeWorkers(maxWorkers)})
}

// GetWorkerMaxCount returns the limit stored in ctx, or fallback. Either
// way a value below one comes back as Unbounded.
func GetWorkerMaxCount(ctx context.Context, fallback int) int {
	if options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions); ok {
		return options.MaxCount
	}
	return normalizeWorkers(fallback)
}

func normalizeWorkers(n int) int {
	if n < 1 {
		return Unbounded
	}
	return n
}

func IsProcessRemainingEnabled(ctx context.Context, fallback bool) bool {
	if options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions); ok {
		return options.ProcessRemaining
	}
	return fallback
}
