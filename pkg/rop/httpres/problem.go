package httpres

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/ib-77/railway/pkg/rop"
)

// ProblemDocument is the JSON body exchanged for a failed request.
type ProblemDocument struct {
	Status   int               `json:"status"`
	Kind     string            `json:"kind,omitempty"`
	Code     string            `json:"code,omitempty"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []FieldProblem    `json:"errors,omitempty"`
	Members  []ProblemDocument `json:"members,omitempty"`
}

type FieldProblem struct {
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// Problem renders err as a problem document.
func Problem(err rop.Error) ProblemDocument {
	doc := ProblemDocument{
		Status:   StatusCode(err),
		Kind:     err.Kind().String(),
		Code:     err.Code(),
		Detail:   err.Detail(),
		Instance: err.Instance(),
	}

	switch e := err.(type) {
	case *rop.ValidationError:
		for _, f := range e.Fields() {
			doc.Errors = append(doc.Errors, FieldProblem{Field: f.Field, Messages: f.Messages})
		}
	case *rop.AggregateError:
		for _, member := range e.Errors() {
			doc.Members = append(doc.Members, Problem(member))
		}
	}

	return doc
}

func Marshal(err rop.Error) ([]byte, error) {
	return jsoniter.ConfigFastest.Marshal(Problem(err))
}

// Write sends err as a JSON problem response.
func Write(w http.ResponseWriter, err rop.Error) error {
	body, marshalErr := Marshal(err)
	if marshalErr != nil {
		return marshalErr
	}

	w.Header().Set("Content-Type", ContentTypeProblem)
	w.WriteHeader(StatusCode(err))
	_, writeErr := w.Write(body)
	return writeErr
}

const ContentTypeProblem = "application/problem+json"

// StatusCode maps an error to its HTTP status. An aggregate takes its
// members' status when they agree, 400 when all are client errors, and
// 500 otherwise.
func StatusCode(err rop.Error) int {
	switch err.Kind() {
	case rop.KindValidation:
		return http.StatusUnprocessableEntity
	case rop.KindBadRequest, rop.KindDomain:
		return http.StatusBadRequest
	case rop.KindUnauthorized:
		return http.StatusUnauthorized
	case rop.KindForbidden:
		return http.StatusForbidden
	case rop.KindNotFound:
		return http.StatusNotFound
	case rop.KindConflict:
		return http.StatusConflict
	case rop.KindRateLimit:
		return http.StatusTooManyRequests
	case rop.KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case rop.KindAggregate:
		return aggregateStatus(err)
	default:
		return http.StatusInternalServerError
	}
}

func aggregateStatus(err rop.Error) int {
	agg, ok := err.(*rop.AggregateError)
	if !ok || agg.Len() == 0 {
		return http.StatusInternalServerError
	}

	first := StatusCode(agg.Errors()[0])
	same, client := true, true
	for _, member := range agg.Errors() {
		status := StatusCode(member)
		same = same && status == first
		client = client && status >= 400 && status < 500
	}

	switch {
	case same:
		return first
	case client:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
