package rop

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// TryValue returns the value and whether there is one
	TryValue() (T, bool)
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if operation failed
	Err() Error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

// WithCancel extends WithError with cancellation support
type WithCancel[T any] interface {
	WithError[T]
	// IsCancel returns true if the operation was cancelled
	IsCancel() bool
}

var _ WithCancel[int] = Result[int]{}
