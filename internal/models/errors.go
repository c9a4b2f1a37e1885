package models

import "fmt"

// ErrorType identifies the category of a load-time validation failure.
type ErrorType string

const (
	// ErrDuplicateName means two non-template records share a name.
	ErrDuplicateName ErrorType = "duplicate_name"
	// ErrMissingField means a required field is absent even after the
	// template and constraint were consulted.
	ErrMissingField ErrorType = "missing_field"
	// ErrInvalidMetric means an enabled record has no metrics, or a
	// primary metric outside the recognized performance set.
	ErrInvalidMetric ErrorType = "invalid_metric"
	// ErrInvalidValue means an explicitly supplied field holds a value
	// outside its allowed range.
	ErrInvalidValue ErrorType = "invalid_value"
)

// ValidationError reports why a benchmark source was rejected. Loading
// aborts on the first one; a partial registry is never returned.
type ValidationError struct {
	Type   ErrorType
	Task   string // record name, or "#n" for an unnamed record at position n
	Field  string
	Detail string
}

func (e *ValidationError) Error() string {
	msg := string(e.Type)
	if e.Field != "" {
		msg = fmt.Sprintf("%s: field %q", msg, e.Field)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Task != "" {
		return fmt.Sprintf("task %s: %s", e.Task, msg)
	}
	return msg
}
