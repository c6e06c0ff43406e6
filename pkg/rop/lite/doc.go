// Package lite runs solo primitives as stream stages over channels of
// results.
//
// Common usage:
// - Validate/Map/Bind/Try/Ensure/Compensate: build a stage (core.Engine)
// - Run/Turnout: drive a stage over an input channel with N workers
// - Finally: fold the stream into plain values
//
// When the context ends, whether inputs left in flight come out as
// cancelled failures or are dropped is decided by core.WithProcessOptions
// (processed by default).
package lite
