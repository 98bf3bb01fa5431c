package errors

import "fmt"

// ValidationError reports a violated value-object invariant. It carries the
// offending field, the constraint that was expected to hold, and the actual
// value, so callers can render a precise message or branch on the field.
type ValidationError struct {
	Field      string
	Constraint string
	Value      any
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (%v) must be %s", e.Field, e.Value, e.Constraint)
}

// Unwrap makes the error match ErrValidation under errors.Is.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// Validationf builds a ValidationError for the given field.
func Validationf(field, constraint string, value any) error {
	return &ValidationError{Field: field, Constraint: constraint, Value: value}
}

// UnresolvedIdentifierError reports an input that could not be classified
// into any accepted identifier shape for its entity kind.
type UnresolvedIdentifierError struct {
	Kind  string
	Value any
}

func (e *UnresolvedIdentifierError) Error() string {
	return fmt.Sprintf("cannot parse %s: %v", e.Kind, e.Value)
}

func (e *UnresolvedIdentifierError) Unwrap() error { return ErrUnresolved }

// Unresolvedf builds an UnresolvedIdentifierError for the given entity kind.
func Unresolvedf(kind string, value any) error {
	return &UnresolvedIdentifierError{Kind: kind, Value: value}
}

// NotFoundError reports a well-formed identifier with no stored match.
type NotFoundError struct {
	Kind  string
	Value any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found for %v", e.Kind, e.Value)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NotFoundf builds a NotFoundError for the given entity kind.
func NotFoundf(kind string, value any) error {
	return &NotFoundError{Kind: kind, Value: value}
}

// AmbiguousMatchError reports multiple stored entities matching a single
// identifier. This always signals a data-integrity violation.
type AmbiguousMatchError struct {
	Kind    string
	Value   any
	Matches int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("%d %s rows match %v, expected exactly one", e.Matches, e.Kind, e.Value)
}

func (e *AmbiguousMatchError) Unwrap() error { return ErrAmbiguous }

// Ambiguousf builds an AmbiguousMatchError for the given entity kind.
func Ambiguousf(kind string, value any, matches int) error {
	return &AmbiguousMatchError{Kind: kind, Value: value, Matches: matches}
}
