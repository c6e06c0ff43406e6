// Package chain provides a fluent wrapper around rop.Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Methods keep the value type (Tap, Ensure, MapError, Compensate,
// RecoverOnFailure, And, Or); functions change it (Then, ThenTry, Map,
// Combine), since Go methods cannot introduce type parameters.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - RecoverOnFailure: replace a failure; calls chain left to right
// - Finally/Match: collapse the chain into a final value via handlers
package chain
