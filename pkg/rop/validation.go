package rop

import (
	"strings"

	"github.com/google/uuid"
)

// FieldError holds every message reported for one field.
type FieldError struct {
	Field    string
	Messages []string
}

func (f FieldError) equal(o FieldError) bool {
	if f.Field != o.Field || len(f.Messages) != len(o.Messages) {
		return false
	}
	for i := range f.Messages {
		if f.Messages[i] != o.Messages[i] {
			return false
		}
	}
	return true
}

// ValidationError collects field errors in insertion order, one entry
// per distinct field.
type ValidationError struct {
	code     string
	instance string
	fields   []FieldError
}

// Validation reports message against field.
func Validation(message, field string) *ValidationError {
	return (&ValidationError{code: CodeValidation}).And(field, message)
}

// Validations builds a ValidationError from ready field errors, merging
// repeated fields.
func Validations(fields ...FieldError) *ValidationError {
	v := &ValidationError{code: CodeValidation}
	for _, f := range fields {
		v = v.And(f.Field, f.Messages...)
	}
	return v
}

func (v *ValidationError) Kind() Kind       { return KindValidation }
func (v *ValidationError) Code() string     { return v.code }
func (v *ValidationError) Instance() string { return v.instance }

// Detail joins every message of every field.
func (v *ValidationError) Detail() string {
	var msgs []string
	for _, f := range v.fields {
		msgs = append(msgs, f.Messages...)
	}
	return strings.Join(msgs, "; ")
}

func (v *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(v.code)
	for i, f := range v.fields {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(f.Field)
		sb.WriteString(" [")
		sb.WriteString(strings.Join(f.Messages, "; "))
		sb.WriteString("]")
	}
	return sb.String()
}

// Fields returns a copy of the field errors.
func (v *ValidationError) Fields() []FieldError {
	out := make([]FieldError, len(v.fields))
	for i, f := range v.fields {
		out[i] = FieldError{Field: f.Field, Messages: append([]string(nil), f.Messages...)}
	}
	return out
}

// Field returns the messages recorded for name.
func (v *ValidationError) Field(name string) ([]string, bool) {
	for _, f := range v.fields {
		if f.Field == name {
			return append([]string(nil), f.Messages...), true
		}
	}
	return nil, false
}

// And returns a copy with messages appended to field. An existing entry
// for field keeps its position.
func (v *ValidationError) And(field string, messages ...string) *ValidationError {
	out := &ValidationError{code: v.code, instance: v.instance, fields: v.Fields()}
	for i := range out.fields {
		if out.fields[i].Field == field {
			out.fields[i].Messages = append(out.fields[i].Messages, messages...)
			return out
		}
	}
	out.fields = append(out.fields, FieldError{Field: field, Messages: append([]string(nil), messages...)})
	return out
}

// Merge returns v's fields followed by other's; same-named fields are
// merged with messages appended. Duplicate messages are kept.
func (v *ValidationError) Merge(other *ValidationError) *ValidationError {
	out := &ValidationError{code: v.code, instance: v.instance, fields: v.Fields()}
	if out.instance == "" {
		out.instance = other.instance
	}
	for _, f := range other.fields {
		out = out.And(f.Field, f.Messages...)
	}
	return out
}

func (v *ValidationError) WithCode(code string) *ValidationError {
	return &ValidationError{code: code, instance: v.instance, fields: v.Fields()}
}

func (v *ValidationError) WithInstance(instance string) *ValidationError {
	return &ValidationError{code: v.code, instance: instance, fields: v.Fields()}
}

func (v *ValidationError) Correlated() *ValidationError {
	return v.WithInstance(uuid.NewString())
}
