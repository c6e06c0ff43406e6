package rop

import (
	"fmt"
)

// Try runs f and lifts its outcome into a Result. A returned error becomes
// a failure (taxonomy errors are kept, others wrapped as Unexpected) and a
// panic is recovered into an Unexpected failure.
func Try[T any](f func() (T, error)) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			res = Fail[T](RecoveredPanic(p))
		}
	}()

	v, err := f()
	if !IsNil(err) {
		return Fail[T](As(err))
	}
	return Success(v)
}

// FromPair lifts a (value, error) pair.
func FromPair[T any](v T, err error) Result[T] {
	if !IsNil(err) {
		return Fail[T](As(err))
	}
	return Success(v)
}

// RecoveredPanic converts a recovered panic value into an Unexpected
// error. Panic values that are errors become the cause.
func RecoveredPanic(p any) *Fault {
	switch v := p.(type) {
	case error:
		return Unexpected("panic: " + v.Error()).WithCause(v)
	case string:
		return Unexpected("panic: " + v)
	default:
		return Unexpected(fmt.Sprintf("panic: [%T] %v", v, v))
	}
}
