// Package mass lifts solo primitives over results that are still being
// computed, and runs independent producers concurrently.
//
// A Pending[T] resolves once to a rop.Result[T]. Every combinator comes in
// an XFrom form (input pending, function synchronous) and an XAsync form
// (input known, function running off the caller's goroutine or returning
// its own Pending); BindFromAsync and CompensateFromAsync cover both. The
// branching rules are those of solo, applied once the inputs resolve.
//
// Parallel launches producers concurrently and Batch.Await accumulates
// their results with the combine policy once all of them have returned.
package mass
