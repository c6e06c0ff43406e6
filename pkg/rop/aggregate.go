package rop

import (
	"strings"

	"github.com/google/uuid"
)

// AggregateError holds independent failures that are not all validation
// errors. It is always flat.
type AggregateError struct {
	instance string
	errs     []Error
}

// Aggregate flattens errs into one AggregateError. Nested aggregates are
// spliced in place and every validation member is merged into the first
// one, so members never repeat a ValidationError. Nil entries are
// skipped.
func Aggregate(errs ...Error) *AggregateError {
	a := &AggregateError{}
	for _, err := range errs {
		a.push(err)
	}
	return a
}

func (a *AggregateError) push(err Error) {
	switch e := err.(type) {
	case nil:
		return
	case *AggregateError:
		if e == nil {
			return
		}
		if a.instance == "" {
			a.instance = e.instance
		}
		for _, inner := range e.errs {
			a.push(inner)
		}
	case *ValidationError:
		if e == nil {
			return
		}
		for i, existing := range a.errs {
			if v, ok := existing.(*ValidationError); ok {
				a.errs[i] = v.Merge(e)
				return
			}
		}
		a.errs = append(a.errs, e)
	default:
		if IsNil(err) {
			return
		}
		a.errs = append(a.errs, err)
	}
}

func (a *AggregateError) Kind() Kind       { return KindAggregate }
func (a *AggregateError) Code() string     { return CodeAggregate }
func (a *AggregateError) Instance() string { return a.instance }

func (a *AggregateError) Detail() string {
	details := make([]string, 0, len(a.errs))
	for _, e := range a.errs {
		details = append(details, e.Detail())
	}
	return strings.Join(details, "; ")
}

func (a *AggregateError) Error() string {
	msgs := make([]string, 0, len(a.errs))
	for _, e := range a.errs {
		msgs = append(msgs, e.Error())
	}
	return CodeAggregate + ": [" + strings.Join(msgs, " | ") + "]"
}

// Errors returns a copy of the members in order.
func (a *AggregateError) Errors() []Error {
	return append([]Error(nil), a.errs...)
}

func (a *AggregateError) Len() int {
	return len(a.errs)
}

// Unwrap exposes members to errors.Is and errors.As.
func (a *AggregateError) Unwrap() []error {
	out := make([]error, len(a.errs))
	for i, e := range a.errs {
		out[i] = e
	}
	return out
}

func (a *AggregateError) WithInstance(instance string) *AggregateError {
	return &AggregateError{instance: instance, errs: a.Errors()}
}

func (a *AggregateError) Correlated() *AggregateError {
	return a.WithInstance(uuid.NewString())
}

// MergeErrors combines two independent failures. Two validation errors
// merge into one; anything else becomes a flat AggregateError in
// argument order. A nil side yields the other side.
func MergeErrors(left, right Error) Error {
	if IsNil(left) {
		return right
	}
	if IsNil(right) {
		return left
	}

	lv, lok := left.(*ValidationError)
	rv, rok := right.(*ValidationError)
	if lok && rok {
		return lv.Merge(rv)
	}
	return Aggregate(left, right)
}
