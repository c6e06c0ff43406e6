package rop

import (
	"errors"
)

var (
	// ErrNoValue is the panic value of Value on a failed Result.
	ErrNoValue = errors.New("rop: value accessed on failed result")
	// ErrNoError is the panic value of Err on a successful Result.
	ErrNoError = errors.New("rop: error accessed on successful result")
	// ErrNilError is the panic value of Fail(nil).
	ErrNilError = errors.New("rop: failure requires a non-nil error")
)

// Result is either a success holding one value or a failure holding one
// Error. The zero Result is not valid; build one with Success or Fail.
type Result[T any] struct {
	value     T
	err       Error
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
	}
}

func Fail[T any](err Error) Result[T] {
	if IsNil(err) {
		panic(ErrNilError)
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
	}
}

// SuccessIf returns Success(v) when cond holds and Fail(err) otherwise.
func SuccessIf[T any](cond bool, v T, err Error) Result[T] {
	if cond {
		return Success(v)
	}
	return Fail[T](err)
}

// FailFrom carries a failure over to another value type.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Fail[Out](from.Err())
}

// Value returns the success value. It panics with ErrNoValue on failure.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic(ErrNoValue)
	}
	return r.value
}

// Err returns the failure. It panics with ErrNoError on success.
func (r Result[T]) Err() Error {
	if r.isSuccess {
		panic(ErrNoError)
	}
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// IsCancel reports a failure caused by a cancelled or expired context.
func (r Result[T]) IsCancel() bool {
	return !r.isSuccess && IsCancellationError(r.err)
}

func (r Result[T]) TryValue() (T, bool) {
	return r.value, r.isSuccess
}

func (r Result[T]) TryErr() (Error, bool) {
	return r.err, !r.isSuccess
}

func (r Result[T]) ValueOr(def T) T {
	if r.isSuccess {
		return r.value
	}
	return def
}

// Unpack converts r to the usual (value, error) pair. The error is nil on
// success.
func (r Result[T]) Unpack() (T, error) {
	if r.isSuccess {
		return r.value, nil
	}
	return r.value, r.err
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return "Success"
	}
	return "Failure(" + r.err.Error() + ")"
}

// Equal compares two results structurally.
func Equal[T comparable](a, b Result[T]) bool {
	if a.isSuccess != b.isSuccess {
		return false
	}
	if a.isSuccess {
		return a.value == b.value
	}
	return ErrorsEqual(a.err, b.err)
}

// EqualFunc is Equal for values that are not comparable.
func EqualFunc[T any](a, b Result[T], eq func(T, T) bool) bool {
	if a.isSuccess != b.isSuccess {
		return false
	}
	if a.isSuccess {
		return eq(a.value, b.value)
	}
	return ErrorsEqual(a.err, b.err)
}
