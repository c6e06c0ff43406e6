// Package solo contains single-value, synchronous ROP primitives that operate
// on rop.Result[T]. These functions are the building blocks for error-aware
// pipelines without channels.
//
// Highlights:
// - Succeed/Fail/Validate: construct Result[T]
// - Map/Bind: transform or switch successful values; failures pass through untouched
// - Tap/TapIf/TapError/DoubleTap: side-effect helpers
// - Ensure/EnsureFunc/EnsureAll: guard a value, EnsureAll accumulating every failed check
// - MapError/Compensate/CompensateIf/RecoverOnFailure: work on the failure track
// - Try/FailOnError: call a function (Out, error) and convert error or panic to failure
// - Combine/CombineUnit/CombineAll: accumulate independent results
// - Traverse: map a slice, stopping at the first failure
// - Match/Finally: reduce to a concrete value
package solo
