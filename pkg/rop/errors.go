package rop

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Kind tags an Error with its variant.
type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConflict
	KindUnauthorized
	KindForbidden
	KindRateLimit
	KindServiceUnavailable
	KindDomain
	KindBadRequest
	KindUnexpected
	KindAggregate
)

const (
	CodeValidation         = "validation.error"
	CodeNotFound           = "not.found.error"
	CodeConflict           = "conflict.error"
	CodeUnauthorized       = "unauthorized.error"
	CodeForbidden          = "forbidden.error"
	CodeRateLimit          = "rate.limit.error"
	CodeServiceUnavailable = "service.unavailable.error"
	CodeDomain             = "domain.error"
	CodeBadRequest         = "bad.request.error"
	CodeUnexpected         = "unexpected.error"
	CodeAggregate          = "aggregate.error"
	CodeCanceled           = "canceled.error"
)

var kindNames = map[Kind]string{
	KindValidation:         "validation",
	KindNotFound:           "not_found",
	KindConflict:           "conflict",
	KindUnauthorized:       "unauthorized",
	KindForbidden:          "forbidden",
	KindRateLimit:          "rate_limit",
	KindServiceUnavailable: "service_unavailable",
	KindDomain:             "domain",
	KindBadRequest:         "bad_request",
	KindUnexpected:         "unexpected",
	KindAggregate:          "aggregate",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

// Error is the failure side of a Result.
type Error interface {
	error
	// Kind returns the variant tag
	Kind() Kind
	// Code returns a stable machine-readable code
	Code() string
	// Detail returns the human message
	Detail() string
	// Instance returns the optional correlation token, empty when unset
	Instance() string
}

// Fault is a leaf Error: every variant except Validation and Aggregate.
// Setters never mutate the receiver.
type Fault struct {
	kind     Kind
	code     string
	detail   string
	instance string
	cause    error
}

func newFault(kind Kind, code, detail string) *Fault {
	return &Fault{kind: kind, code: code, detail: detail}
}

func NotFound(detail string) *Fault     { return newFault(KindNotFound, CodeNotFound, detail) }
func Conflict(detail string) *Fault     { return newFault(KindConflict, CodeConflict, detail) }
func Unauthorized(detail string) *Fault { return newFault(KindUnauthorized, CodeUnauthorized, detail) }
func Forbidden(detail string) *Fault    { return newFault(KindForbidden, CodeForbidden, detail) }
func RateLimit(detail string) *Fault    { return newFault(KindRateLimit, CodeRateLimit, detail) }
func Domain(detail string) *Fault       { return newFault(KindDomain, CodeDomain, detail) }
func BadRequest(detail string) *Fault   { return newFault(KindBadRequest, CodeBadRequest, detail) }
func Unexpected(detail string) *Fault   { return newFault(KindUnexpected, CodeUnexpected, detail) }

func ServiceUnavailable(detail string) *Fault {
	return newFault(KindServiceUnavailable, CodeServiceUnavailable, detail)
}

// Canceled reports an operation abandoned because its context ended.
func Canceled(cause error) *Fault {
	detail := "operation cancelled"
	if cause != nil {
		detail = cause.Error()
	}
	return &Fault{kind: KindUnexpected, code: CodeCanceled, detail: detail, cause: cause}
}

// As extracts an Error from err's chain, or wraps err as Unexpected.
// A nil err yields nil.
func As(err error) Error {
	if IsNil(err) {
		return nil
	}
	var e Error
	if errors.As(err, &e) {
		return e
	}
	if IsCancellationError(err) {
		return Canceled(err)
	}
	return Unexpected(err.Error()).WithCause(err)
}

func (f *Fault) Kind() Kind       { return f.kind }
func (f *Fault) Code() string     { return f.code }
func (f *Fault) Detail() string   { return f.detail }
func (f *Fault) Instance() string { return f.instance }
func (f *Fault) Unwrap() error    { return f.cause }

func (f *Fault) Error() string {
	if f.detail == "" {
		return f.code
	}
	return f.code + ": " + f.detail
}

// Is matches another Fault with the same kind and code, so sentinel
// faults work with errors.Is.
func (f *Fault) Is(target error) bool {
	t, ok := target.(*Fault)
	if !ok {
		return false
	}
	return t.kind == f.kind && t.code == f.code && (t.detail == "" || t.detail == f.detail)
}

func (f *Fault) WithCode(code string) *Fault {
	c := *f
	c.code = code
	return &c
}

func (f *Fault) WithInstance(instance string) *Fault {
	c := *f
	c.instance = instance
	return &c
}

func (f *Fault) WithCause(cause error) *Fault {
	c := *f
	c.cause = cause
	return &c
}

// Correlated returns a copy carrying a fresh random instance token.
func (f *Fault) Correlated() *Fault {
	return f.WithInstance(uuid.NewString())
}

// IsKind returns a predicate matching errors of the given kinds.
func IsKind(kinds ...Kind) func(Error) bool {
	return func(err Error) bool {
		if err == nil {
			return false
		}
		for _, k := range kinds {
			if err.Kind() == k {
				return true
			}
		}
		return false
	}
}

// ErrorsEqual compares two errors structurally. Causes are not compared.
func ErrorsEqual(a, b Error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() || a.Code() != b.Code() ||
		a.Detail() != b.Detail() || a.Instance() != b.Instance() {
		return false
	}

	switch av := a.(type) {
	case *ValidationError:
		bv, ok := b.(*ValidationError)
		if !ok || len(av.fields) != len(bv.fields) {
			return false
		}
		for i := range av.fields {
			if !av.fields[i].equal(bv.fields[i]) {
				return false
			}
		}
	case *AggregateError:
		bv, ok := b.(*AggregateError)
		if !ok || len(av.errs) != len(bv.errs) {
			return false
		}
		for i := range av.errs {
			if !ErrorsEqual(av.errs[i], bv.errs[i]) {
				return false
			}
		}
	}
	return true
}

// Cases holds one handler per variant for MatchError. A nil handler falls back
// to Default.
type Cases[R any] struct {
	Validation         func(*ValidationError) R
	Aggregate          func(*AggregateError) R
	NotFound           func(Error) R
	Conflict           func(Error) R
	Unauthorized       func(Error) R
	Forbidden          func(Error) R
	RateLimit          func(Error) R
	ServiceUnavailable func(Error) R
	Domain             func(Error) R
	BadRequest         func(Error) R
	Unexpected         func(Error) R
	Default            func(Error) R
}

// MatchError dispatches err on its Kind. It panics when neither the
// variant handler nor Default is set.
func MatchError[R any](err Error, cases Cases[R]) R {
	var h func(Error) R

	switch err.Kind() {
	case KindValidation:
		if v, ok := err.(*ValidationError); ok && cases.Validation != nil {
			return cases.Validation(v)
		}
	case KindAggregate:
		if v, ok := err.(*AggregateError); ok && cases.Aggregate != nil {
			return cases.Aggregate(v)
		}
	case KindNotFound:
		h = cases.NotFound
	case KindConflict:
		h = cases.Conflict
	case KindUnauthorized:
		h = cases.Unauthorized
	case KindForbidden:
		h = cases.Forbidden
	case KindRateLimit:
		h = cases.RateLimit
	case KindServiceUnavailable:
		h = cases.ServiceUnavailable
	case KindDomain:
		h = cases.Domain
	case KindBadRequest:
		h = cases.BadRequest
	case KindUnexpected:
		h = cases.Unexpected
	}

	if h == nil {
		h = cases.Default
	}
	if h == nil {
		panic(fmt.Errorf("rop: no case for %s error", err.Kind()))
	}
	return h(err)
}
