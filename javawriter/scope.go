package javawriter

import (
	"github.com/teranos/javagen/errors"
)

// Scope enumerates the nesting contexts an open construct can leave on the stack.
type Scope uint8

const (
	ScopeType Scope = iota
	ScopeAbstractMethod
	ScopeMethod
	ScopeConstructor
	ScopeControlFlow
	ScopeAnnotationAttribute
	ScopeAnnotationArrayValue
	ScopeInitializer
	ScopeSwitch
)

func (s Scope) String() string {
	switch s {
	case ScopeType:
		return "type"
	case ScopeAbstractMethod:
		return "abstract method"
	case ScopeMethod:
		return "method"
	case ScopeConstructor:
		return "constructor"
	case ScopeControlFlow:
		return "control flow"
	case ScopeAnnotationAttribute:
		return "annotation attribute"
	case ScopeAnnotationArrayValue:
		return "annotation array value"
	case ScopeInitializer:
		return "initializer"
	case ScopeSwitch:
		return "switch"
	default:
		return "invalid"
	}
}

// methodLike reports whether statements may appear directly inside s.
func (s Scope) methodLike() bool {
	switch s {
	case ScopeMethod, ScopeConstructor, ScopeControlFlow, ScopeInitializer, ScopeSwitch:
		return true
	}
	return false
}

// scopeStack is the ordered set of open scopes. Its depth is the indentation level.
type scopeStack struct {
	scopes []Scope
}

func (s *scopeStack) push(scope Scope) {
	s.scopes = append(s.scopes, scope)
}

// pop removes the innermost scope if it is one of expected.
// On mismatch the stack is left untouched.
func (s *scopeStack) pop(expected ...Scope) (Scope, error) {
	top, ok := s.top()
	if !ok {
		return 0, errors.NewScopeMismatch("expected %s, but no scope is open", describe(expected))
	}
	for _, e := range expected {
		if top == e {
			s.scopes = s.scopes[:len(s.scopes)-1]
			return top, nil
		}
	}
	return 0, errors.NewScopeMismatch("expected %s, found %s", describe(expected), top)
}

func (s *scopeStack) top() (Scope, bool) {
	if len(s.scopes) == 0 {
		return 0, false
	}
	return s.scopes[len(s.scopes)-1], true
}

func (s *scopeStack) depth() int {
	return len(s.scopes)
}

func (s *scopeStack) inMethod() bool {
	top, ok := s.top()
	return ok && top.methodLike()
}

// inTypeBody reports whether the innermost scope is a type declaration.
func (s *scopeStack) inTypeBody() bool {
	top, ok := s.top()
	return ok && top == ScopeType
}

// requireMethod fails unless a statement may be written at the current position.
func (s *scopeStack) requireMethod(construct string) error {
	if s.inMethod() {
		return nil
	}
	return errors.WithHint(
		errors.NewScopeMismatch("%s outside a method body (current scope: %s)", construct, s.describeTop()),
		"open a method, constructor or initializer first",
	)
}

// requireTypeBody fails unless the innermost scope is a type declaration.
func (s *scopeStack) requireTypeBody(construct string) error {
	if s.inTypeBody() {
		return nil
	}
	return errors.WithHint(
		errors.NewScopeMismatch("%s outside a type body (current scope: %s)", construct, s.describeTop()),
		"call BeginType first",
	)
}

func (s *scopeStack) describeTop() string {
	top, ok := s.top()
	if !ok {
		return "file"
	}
	return top.String()
}

func describe(scopes []Scope) string {
	switch len(scopes) {
	case 0:
		return "nothing"
	case 1:
		return scopes[0].String()
	}
	out := scopes[0].String()
	for _, s := range scopes[1 : len(scopes)-1] {
		out += ", " + s.String()
	}
	return out + " or " + scopes[len(scopes)-1].String()
}
