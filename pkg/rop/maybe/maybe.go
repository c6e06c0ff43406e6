// Package maybe bridges optional values into rop.Result.
package maybe

import (
	"errors"

	"github.com/ib-77/railway/pkg/rop"
)

// ErrNoValue is the panic value of Value on an empty Maybe.
var ErrNoValue = errors.New("maybe: no value")

// Maybe holds zero or one value.
type Maybe[T any] struct {
	value    T
	hasValue bool
}

func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, hasValue: true}
}

func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPointer is None for a nil pointer and Some(*p) otherwise.
func FromPointer[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (m Maybe[T]) HasValue() bool {
	return m.hasValue
}

func (m Maybe[T]) Value() T {
	if !m.hasValue {
		panic(ErrNoValue)
	}
	return m.value
}

func (m Maybe[T]) ValueOr(def T) T {
	if m.hasValue {
		return m.value
	}
	return def
}

// ToResult is a success with the held value, or a failure with err.
func ToResult[T any](m Maybe[T], err rop.Error) rop.Result[T] {
	if m.hasValue {
		return rop.Success(m.value)
	}
	return rop.Fail[T](err)
}

// ToResultFunc is ToResult with a lazily built error.
func ToResultFunc[T any](m Maybe[T], errFactory func() rop.Error) rop.Result[T] {
	if m.hasValue {
		return rop.Success(m.value)
	}
	return rop.Fail[T](errFactory())
}
