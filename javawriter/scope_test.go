package javawriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/javagen/errors"
)

func TestScopeStack_PushPop(t *testing.T) {
	var s scopeStack
	assert.Equal(t, 0, s.depth())

	s.push(ScopeType)
	s.push(ScopeMethod)
	s.push(ScopeControlFlow)
	assert.Equal(t, 3, s.depth())

	got, err := s.pop(ScopeControlFlow)
	require.NoError(t, err)
	assert.Equal(t, ScopeControlFlow, got)

	got, err = s.pop(ScopeMethod, ScopeConstructor, ScopeAbstractMethod)
	require.NoError(t, err)
	assert.Equal(t, ScopeMethod, got)

	_, err = s.pop(ScopeType)
	require.NoError(t, err)
	assert.Equal(t, 0, s.depth())
}

func TestScopeStack_MismatchLeavesStack(t *testing.T) {
	var s scopeStack
	s.push(ScopeType)
	s.push(ScopeMethod)

	_, err := s.pop(ScopeControlFlow)
	require.Error(t, err)
	assert.True(t, errors.IsScopeMismatch(err))
	assert.Contains(t, err.Error(), "expected control flow, found method")
	assert.Equal(t, 2, s.depth())

	top, ok := s.top()
	assert.True(t, ok)
	assert.Equal(t, ScopeMethod, top)
}

func TestScopeStack_PopEmpty(t *testing.T) {
	var s scopeStack

	_, err := s.pop(ScopeType)
	assert.True(t, errors.IsScopeMismatch(err))
	assert.Contains(t, err.Error(), "no scope is open")
}

func TestScopeStack_Requirements(t *testing.T) {
	tests := []struct {
		name       string
		scopes     []Scope
		inMethod   bool
		inTypeBody bool
	}{
		{"file level", nil, false, false},
		{"type", []Scope{ScopeType}, false, true},
		{"method", []Scope{ScopeType, ScopeMethod}, true, false},
		{"constructor", []Scope{ScopeType, ScopeConstructor}, true, false},
		{"abstract method", []Scope{ScopeType, ScopeAbstractMethod}, false, false},
		{"initializer", []Scope{ScopeType, ScopeInitializer}, true, false},
		{"switch", []Scope{ScopeType, ScopeMethod, ScopeSwitch}, true, false},
		{"control flow", []Scope{ScopeType, ScopeMethod, ScopeControlFlow}, true, false},
		{"annotation attribute", []Scope{ScopeType, ScopeAnnotationAttribute}, false, false},
		{"nested type", []Scope{ScopeType, ScopeType}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scopeStack{scopes: tt.scopes}
			assert.Equal(t, tt.inMethod, s.inMethod())
			assert.Equal(t, tt.inTypeBody, s.inTypeBody())
			assert.Equal(t, tt.inMethod, s.requireMethod("statement") == nil)
			assert.Equal(t, tt.inTypeBody, s.requireTypeBody("method") == nil)
		})
	}
}

func TestScope_String(t *testing.T) {
	assert.Equal(t, "type", ScopeType.String())
	assert.Equal(t, "abstract method", ScopeAbstractMethod.String())
	assert.Equal(t, "annotation array value", ScopeAnnotationArrayValue.String())
	assert.Equal(t, "switch", ScopeSwitch.String())
	assert.Equal(t, "invalid", Scope(42).String())
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "nothing", describe(nil))
	assert.Equal(t, "type", describe([]Scope{ScopeType}))
	assert.Equal(t, "method or constructor", describe([]Scope{ScopeMethod, ScopeConstructor}))
	assert.Equal(t, "method, constructor or abstract method",
		describe([]Scope{ScopeMethod, ScopeConstructor, ScopeAbstractMethod}))
}
