package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesSentinel(t *testing.T) {
	wrapped := Wrapf(ErrDuplicateImport, "import %s", "java.util.List")

	assert.Contains(t, wrapped.Error(), "import java.util.List")
	assert.Contains(t, wrapped.Error(), "duplicate import")
	assert.True(t, Is(wrapped, ErrDuplicateImport))
	assert.True(t, IsDuplicateImport(wrapped))
	assert.False(t, IsScopeMismatch(wrapped))
}

func TestNewScopeMismatch(t *testing.T) {
	err := NewScopeMismatch("expected %s, found %s", "method", "type")

	require.Error(t, err)
	assert.True(t, IsScopeMismatch(err))
	assert.Contains(t, err.Error(), "expected method, found type")
}

func TestNewInvalidUnitError(t *testing.T) {
	err := NewInvalidUnitError("type %d has no name", 2)

	assert.True(t, Is(err, ErrInvalidUnit))
	assert.False(t, IsCallerError(err))
}

func TestIsCallerError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"scope mismatch", ErrScopeMismatch, true},
		{"wrapped package", Wrap(ErrPackageAlreadySet, "second package"), true},
		{"compression", WithHint(ErrCompressionBeforePackage, "emit the package first"), true},
		{"parameters", ErrInvalidParameterList, true},
		{"malformed", ErrMalformedName, true},
		{"closed", ErrClosed, true},
		{"sink failure", New("disk full"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCallerError(tt.err))
		})
	}
}

func TestWithHint(t *testing.T) {
	err := WithHint(ErrMalformedName, "imports must be dotted names")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "imports must be dotted names", hints[0])
	assert.True(t, IsMalformedName(err))
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.False(t, IsScopeMismatch(nil))
	assert.False(t, IsDuplicateImport(nil))
	assert.False(t, IsMalformedName(nil))
}

func TestStackTrace(t *testing.T) {
	err := Wrap(ErrScopeMismatch, "with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func ExampleWrap() {
	err := Wrap(ErrPackageAlreadySet, "emit package com.example")
	fmt.Println(err)
	// Output: emit package com.example: package already set
}
