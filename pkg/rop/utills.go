package rop

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors lists the members of err. Aggregates and joined errors are
// expanded one level; nil yields an empty list.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

func IsCancellationError(err error) bool {
	if IsNil(err) {
		return false
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
