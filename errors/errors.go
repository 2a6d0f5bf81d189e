// Package errors provides error handling for javawriter.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints and details
//
// Usage:
//
//	// Create new error
//	err := errors.New("something went wrong")
//
//	// Wrap with context
//	if err := w.EndType(); err != nil {
//	    return errors.Wrap(err, "failed to close type")
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "call EmitPackage before declaring types")
//
//	// Check errors
//	if errors.Is(err, errors.ErrScopeMismatch) {
//	    // caller sequenced begin/end calls incorrectly
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
	Mark         = crdb.Mark
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
	Is            = crdb.Is
	IsAny         = crdb.IsAny
	As            = crdb.As
	Unwrap        = crdb.Unwrap
	UnwrapAll     = crdb.UnwrapAll
	GetAllHints   = crdb.GetAllHints
	GetAllDetails = crdb.GetAllDetails
	FlattenHints  = crdb.FlattenHints
)

// Sentinel errors for the source emitter.
// Every one of them reports a caller sequencing bug; none is transient.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrScopeMismatch indicates an end call did not match the innermost open scope,
	// or a construct was begun in a scope that does not allow it
	ErrScopeMismatch = New("scope mismatch")

	// ErrDuplicateImport indicates the same fully-qualified name was imported twice
	ErrDuplicateImport = New("duplicate import")

	// ErrMalformedName indicates an import is not a dotted qualified name
	ErrMalformedName = New("malformed name")

	// ErrPackageAlreadySet indicates the package declaration was emitted twice
	ErrPackageAlreadySet = New("package already set")

	// ErrCompressionBeforePackage indicates a type name was compressed before the package was emitted
	ErrCompressionBeforePackage = New("type compression before package")

	// ErrInvalidParameterList indicates a parameter list did not pair types with names
	ErrInvalidParameterList = New("invalid parameter list")

	// ErrUnknownModifier indicates a modifier keyword is not a Java modifier
	ErrUnknownModifier = New("unknown modifier")

	// ErrClosed indicates the writer was used after its sink was released
	ErrClosed = New("writer closed")

	// ErrInvalidUnit indicates a declarative compilation unit failed validation
	ErrInvalidUnit = New("invalid compilation unit")
)

// IsScopeMismatch checks if an error is or wraps ErrScopeMismatch
func IsScopeMismatch(err error) bool {
	return err != nil && Is(err, ErrScopeMismatch)
}

// IsDuplicateImport checks if an error is or wraps ErrDuplicateImport
func IsDuplicateImport(err error) bool {
	return err != nil && Is(err, ErrDuplicateImport)
}

// IsMalformedName checks if an error is or wraps ErrMalformedName
func IsMalformedName(err error) bool {
	return err != nil && Is(err, ErrMalformedName)
}

// IsInvalidUnit checks if an error is or wraps ErrInvalidUnit
func IsInvalidUnit(err error) bool {
	return err != nil && Is(err, ErrInvalidUnit)
}

// IsCallerError reports whether err is one of the emitter's sequencing errors
// rather than a failure of the underlying sink.
func IsCallerError(err error) bool {
	if err == nil {
		return false
	}
	return IsAny(err,
		ErrScopeMismatch,
		ErrDuplicateImport,
		ErrMalformedName,
		ErrPackageAlreadySet,
		ErrCompressionBeforePackage,
		ErrInvalidParameterList,
		ErrUnknownModifier,
		ErrClosed,
	)
}

// NewScopeMismatch creates a scope-mismatch error with a formatted message
func NewScopeMismatch(format string, args ...interface{}) error {
	return Wrap(ErrScopeMismatch, Newf(format, args...).Error())
}

// NewInvalidUnitError creates an invalid-unit error with a formatted message
func NewInvalidUnitError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidUnit, Newf(format, args...).Error())
}
