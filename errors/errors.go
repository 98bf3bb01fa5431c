// Package errors provides error handling for xraykit.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - PII-safe error formatting
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := doSomething(); err != nil {
//	    return errors.Wrap(err, "failed to do something")
//	}
//
//	// Check errors
//	if errors.Is(err, errors.ErrNotFound) {
//	    // handle not found
//	}
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint    = crdb.WithHint
	WithHintf   = crdb.WithHintf
	WithDetail  = crdb.WithDetail
	WithDetailf = crdb.WithDetailf
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Assertions
var (
	AssertionFailedf = crdb.AssertionFailedf
)

// Sentinel errors for the resolution layer. Use with errors.Is() for
// type-safe checking; wrap with errors.Wrap() to add context while
// preserving the kind.
var (
	// ErrNotFound indicates a well-formed identifier matched no stored entity
	ErrNotFound = New("not found")

	// ErrUnresolved indicates an identifier could not be classified into any
	// accepted shape for its entity kind
	ErrUnresolved = New("unresolved identifier")

	// ErrAmbiguous indicates more than one stored entity matched — a
	// data-integrity problem, not a caller error
	ErrAmbiguous = New("ambiguous match")

	// ErrValidation indicates a value object's invariant was violated
	ErrValidation = New("validation failed")
)

// IsNotFound checks if an error is or wraps ErrNotFound
func IsNotFound(err error) bool {
	return err != nil && Is(err, ErrNotFound)
}

// IsUnresolved checks if an error is or wraps ErrUnresolved
func IsUnresolved(err error) bool {
	return err != nil && Is(err, ErrUnresolved)
}

// IsAmbiguous checks if an error is or wraps ErrAmbiguous
func IsAmbiguous(err error) bool {
	return err != nil && Is(err, ErrAmbiguous)
}

// IsValidation checks if an error is or wraps ErrValidation
func IsValidation(err error) bool {
	return err != nil && Is(err, ErrValidation)
}
