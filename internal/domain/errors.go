package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors shared by stores and services.
var (
	ErrNotFound     = errors.New("article not found")
	ErrConflict     = errors.New("article status changed concurrently")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("role not permitted for this stage")
)

// ValidationError reports malformed input rejected before any store write.
// Fields maps a field name to a machine-readable reason.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// StaleStateError means another reviewer moved the article first. The caller
// should re-fetch and retry.
type StaleStateError struct {
	ArticleID string
	Expected  Status
	Actual    Status
}

func (e *StaleStateError) Error() string {
	if e.Actual == e.Expected {
		return fmt.Sprintf("article %s was modified concurrently", e.ArticleID)
	}
	return fmt.Sprintf("article %s is %s, expected %s", e.ArticleID, e.Actual, e.Expected)
}

// Is lets errors.Is(err, ErrConflict) match stale state errors.
func (e *StaleStateError) Is(target error) bool {
	return target == ErrConflict
}

// InvalidTransitionError is a non-retryable rejection of a status change.
type InvalidTransitionError struct {
	ArticleID string
	From      Status
	To        Status
	Reason    string
}

func (e *InvalidTransitionError) Error() string {
	switch {
	case e.From != "" && e.To != "":
		return fmt.Sprintf("invalid transition %s -> %s for article %s: %s", e.From, e.To, e.ArticleID, e.Reason)
	case e.From != "":
		return fmt.Sprintf("invalid transition from %s for article %s: %s", e.From, e.ArticleID, e.Reason)
	default:
		return fmt.Sprintf("invalid transition for article %s: %s", e.ArticleID, e.Reason)
	}
}

// ExtractionError reports a document whose text could not be read.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract text from %s: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NotificationError wraps a failed email delivery. It is logged, never
// returned from a transition.
type NotificationError struct {
	ArticleID string
	Recipient string
	Err       error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notify %s about article %s: %v", e.Recipient, e.ArticleID, e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}
