package javawriter

import "github.com/teranos/javagen/errors"

// Sentinel errors returned (wrapped) by Writer methods. Test with errors.Is.
var (
	ErrScopeMismatch            = errors.ErrScopeMismatch
	ErrDuplicateImport          = errors.ErrDuplicateImport
	ErrMalformedName            = errors.ErrMalformedName
	ErrPackageAlreadySet        = errors.ErrPackageAlreadySet
	ErrCompressionBeforePackage = errors.ErrCompressionBeforePackage
	ErrInvalidParameterList     = errors.ErrInvalidParameterList
	ErrUnknownModifier          = errors.ErrUnknownModifier
	ErrClosed                   = errors.ErrClosed
)
