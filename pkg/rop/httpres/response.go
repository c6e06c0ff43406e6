// Package httpres converts HTTP responses into results and taxonomy
// errors into problem JSON.
package httpres

import (
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/ib-77/railway/pkg/rop"
)

// maxProblemBody bounds how much of an error body is read.
const maxProblemBody = 1 << 20

// FromResponse decodes a 2xx JSON body into T. Other statuses become the
// matching failure, enriched from a problem body when one is present.
// The body is always closed.
func FromResponse[T any](resp *http.Response) rop.Result[T] {
	if resp == nil {
		return rop.Fail[T](rop.Unexpected("nil http response"))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return decodeBody[T](resp)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxProblemBody))
	if err != nil {
		return rop.Fail[T](rop.Unexpected("reading error body").WithCause(err))
	}

	var doc ProblemDocument
	if len(body) > 0 && jsoniter.ConfigFastest.Valid(body) {
		_ = jsoniter.ConfigFastest.Unmarshal(body, &doc)
	}

	return rop.Fail[T](FromStatus(resp.StatusCode, doc))
}

func decodeBody[T any](resp *http.Response) rop.Result[T] {
	var v T
	if resp.StatusCode == http.StatusNoContent {
		return rop.Success(v)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return rop.Fail[T](rop.Unexpected("reading response body").WithCause(err))
	}
	if len(body) == 0 {
		return rop.Success(v)
	}

	if !jsoniter.ConfigFastest.Valid(body) {
		return rop.Fail[T](rop.Unexpected(fmt.Sprintf("decoding %T body: invalid json", v)))
	}
	if err := jsoniter.ConfigFastest.Unmarshal(body, &v); err != nil {
		return rop.Fail[T](rop.Unexpected(fmt.Sprintf("decoding %T body", v)).WithCause(err))
	}
	return rop.Success(v)
}

// GeneralField names the entry of a validation problem that carried no
// per-field errors.
const GeneralField = "_"

// FromStatus builds the error for a non-2xx status from doc. A known
// doc.Kind wins over the status, so documents written by Write read back
// as the same variant.
func FromStatus(status int, doc ProblemDocument) rop.Error {
	detail := doc.Detail
	if detail == "" {
		detail = http.StatusText(status)
	}

	kind, ok := rop.ParseKind(doc.Kind)
	if !ok || (kind == rop.KindAggregate && len(doc.Members) == 0) {
		kind = kindOf(status)
	}

	switch kind {
	case rop.KindValidation:
		return validation(detail, doc)
	case rop.KindAggregate:
		return aggregate(doc)
	}

	f := fault(kind, detail)
	if doc.Code != "" {
		f = f.WithCode(doc.Code)
	}
	if doc.Instance != "" {
		f = f.WithInstance(doc.Instance)
	}
	return f
}

func kindOf(status int) rop.Kind {
	switch status {
	case http.StatusBadRequest:
		return rop.KindBadRequest
	case http.StatusUnauthorized:
		return rop.KindUnauthorized
	case http.StatusForbidden:
		return rop.KindForbidden
	case http.StatusNotFound:
		return rop.KindNotFound
	case http.StatusConflict:
		return rop.KindConflict
	case http.StatusUnprocessableEntity:
		return rop.KindValidation
	case http.StatusTooManyRequests:
		return rop.KindRateLimit
	case http.StatusServiceUnavailable:
		return rop.KindServiceUnavailable
	default:
		return rop.KindUnexpected
	}
}

func fault(kind rop.Kind, detail string) *rop.Fault {
	switch kind {
	case rop.KindBadRequest:
		return rop.BadRequest(detail)
	case rop.KindUnauthorized:
		return rop.Unauthorized(detail)
	case rop.KindForbidden:
		return rop.Forbidden(detail)
	case rop.KindNotFound:
		return rop.NotFound(detail)
	case rop.KindConflict:
		return rop.Conflict(detail)
	case rop.KindRateLimit:
		return rop.RateLimit(detail)
	case rop.KindServiceUnavailable:
		return rop.ServiceUnavailable(detail)
	case rop.KindDomain:
		return rop.Domain(detail)
	default:
		return rop.Unexpected(detail)
	}
}

func aggregate(doc ProblemDocument) *rop.AggregateError {
	members := make([]rop.Error, 0, len(doc.Members))
	for _, m := range doc.Members {
		members = append(members, FromStatus(m.Status, m))
	}

	agg := rop.Aggregate(members...)
	if doc.Instance != "" {
		agg = agg.WithInstance(doc.Instance)
	}
	return agg
}

func validation(detail string, doc ProblemDocument) *rop.ValidationError {
	fields := make([]rop.FieldError, 0, len(doc.Errors))
	for _, p := range doc.Errors {
		fields = append(fields, rop.FieldError{Field: p.Field, Messages: p.Messages})
	}

	v := rop.Validations(fields...)
	if len(fields) == 0 {
		v = rop.Validation(detail, GeneralField)
	}
	if doc.Code != "" {
		v = v.WithCode(doc.Code)
	}
	if doc.Instance != "" {
		v = v.WithInstance(doc.Instance)
	}
	return v
}
