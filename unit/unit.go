// Package unit describes a Java compilation unit as data and renders it
// through a javawriter.Writer.
//
// Units are decoded from YAML, TOML or JSON. Strings that end up in Java
// source (field values, annotation values, statements) are Java
// expressions and are written verbatim, so a string annotation value is
// given as "\"text\"".
package unit

import (
	"path"
	"strings"
)

// Unit is one .java file.
type Unit struct {
	// File overrides the output path derived from the package and first type.
	File          string   `yaml:"file,omitempty" toml:"file" json:"file,omitempty"`
	Header        string   `yaml:"header,omitempty" toml:"header" json:"header,omitempty"`
	Package       string   `yaml:"package" toml:"package" json:"package"`
	Imports       []string `yaml:"imports,omitempty" toml:"imports" json:"imports,omitempty"`
	StaticImports []string `yaml:"static_imports,omitempty" toml:"static_imports" json:"static_imports,omitempty"`
	Types         []Type   `yaml:"types" toml:"types" json:"types"`
}

// Type is a class, interface, enum or annotation type declaration.
type Type struct {
	Name         string        `yaml:"name" toml:"name" json:"name"`
	Kind         string        `yaml:"kind,omitempty" toml:"kind" json:"kind,omitempty"` // default "class"
	Modifiers    []string      `yaml:"modifiers,omitempty" toml:"modifiers" json:"modifiers,omitempty"`
	Extends      string        `yaml:"extends,omitempty" toml:"extends" json:"extends,omitempty"`
	Implements   []string      `yaml:"implements,omitempty" toml:"implements" json:"implements,omitempty"`
	Javadoc      string        `yaml:"javadoc,omitempty" toml:"javadoc" json:"javadoc,omitempty"`
	Annotations  []Annotation  `yaml:"annotations,omitempty" toml:"annotations" json:"annotations,omitempty"`
	EnumValues   []string      `yaml:"enum_values,omitempty" toml:"enum_values" json:"enum_values,omitempty"`
	Fields       []Field       `yaml:"fields,omitempty" toml:"fields" json:"fields,omitempty"`
	Initializers []Initializer `yaml:"initializers,omitempty" toml:"initializers" json:"initializers,omitempty"`
	Constructors []Method      `yaml:"constructors,omitempty" toml:"constructors" json:"constructors,omitempty"`
	Methods      []Method      `yaml:"methods,omitempty" toml:"methods" json:"methods,omitempty"`
	Types        []Type        `yaml:"types,omitempty" toml:"types" json:"types,omitempty"`
}

// Field is a field declaration. Value is the initializer expression, if any.
type Field struct {
	Name        string       `yaml:"name" toml:"name" json:"name"`
	Type        string       `yaml:"type" toml:"type" json:"type"`
	Modifiers   []string     `yaml:"modifiers,omitempty" toml:"modifiers" json:"modifiers,omitempty"`
	Value       string       `yaml:"value,omitempty" toml:"value" json:"value,omitempty"`
	Javadoc     string       `yaml:"javadoc,omitempty" toml:"javadoc" json:"javadoc,omitempty"`
	Annotations []Annotation `yaml:"annotations,omitempty" toml:"annotations" json:"annotations,omitempty"`
}

// Method is a method or constructor. Constructors leave Name and Returns empty.
type Method struct {
	Name        string       `yaml:"name,omitempty" toml:"name" json:"name,omitempty"`
	Returns     string       `yaml:"returns,omitempty" toml:"returns" json:"returns,omitempty"`
	Modifiers   []string     `yaml:"modifiers,omitempty" toml:"modifiers" json:"modifiers,omitempty"`
	Parameters  []Parameter  `yaml:"parameters,omitempty" toml:"parameters" json:"parameters,omitempty"`
	Throws      []string     `yaml:"throws,omitempty" toml:"throws" json:"throws,omitempty"`
	Javadoc     string       `yaml:"javadoc,omitempty" toml:"javadoc" json:"javadoc,omitempty"`
	Annotations []Annotation `yaml:"annotations,omitempty" toml:"annotations" json:"annotations,omitempty"`
	Body        []Statement  `yaml:"body,omitempty" toml:"body" json:"body,omitempty"`
}

// Parameter is one method parameter.
type Parameter struct {
	Type string `yaml:"type" toml:"type" json:"type"`
	Name string `yaml:"name" toml:"name" json:"name"`
}

// Initializer is a static or instance initializer block.
type Initializer struct {
	Static bool        `yaml:"static,omitempty" toml:"static" json:"static,omitempty"`
	Body   []Statement `yaml:"body,omitempty" toml:"body" json:"body,omitempty"`
}

// Annotation is @Name, @Name(Value) or @Name(attr = ..., ...).
type Annotation struct {
	Name       string      `yaml:"name" toml:"name" json:"name"`
	Value      string      `yaml:"value,omitempty" toml:"value" json:"value,omitempty"`
	Attributes []Attribute `yaml:"attributes,omitempty" toml:"attributes" json:"attributes,omitempty"`
}

// Attribute is a named annotation attribute. Values renders as an array initializer.
type Attribute struct {
	Name   string   `yaml:"name" toml:"name" json:"name"`
	Value  string   `yaml:"value,omitempty" toml:"value" json:"value,omitempty"`
	Values []string `yaml:"values,omitempty" toml:"values" json:"values,omitempty"`
}

// Statement is one element of a body. Exactly one of Code, Comment, Flow,
// Switch or Blank is set.
type Statement struct {
	Code    string `yaml:"code,omitempty" toml:"code" json:"code,omitempty"`
	Comment string `yaml:"comment,omitempty" toml:"comment" json:"comment,omitempty"`
	Blank   bool   `yaml:"blank,omitempty" toml:"blank" json:"blank,omitempty"`

	// Flow opens a block such as "if (x)"; Next continues it ("else") and
	// While closes it with a trailing clause ("while (more)").
	Flow  string   `yaml:"flow,omitempty" toml:"flow" json:"flow,omitempty"`
	Next  []Branch `yaml:"next,omitempty" toml:"next" json:"next,omitempty"`
	While string   `yaml:"while,omitempty" toml:"while" json:"while,omitempty"`

	Switch string `yaml:"switch,omitempty" toml:"switch" json:"switch,omitempty"`

	Body []Statement `yaml:"body,omitempty" toml:"body" json:"body,omitempty"`
}

// Branch is a continuation of a control flow block.
type Branch struct {
	Flow string      `yaml:"flow" toml:"flow" json:"flow"`
	Body []Statement `yaml:"body,omitempty" toml:"body" json:"body,omitempty"`
}

// FileName returns the slash-separated path of the unit's .java file
// relative to a source root, e.g. com/example/Foo.java.
func (u *Unit) FileName() string {
	if u.File != "" {
		return u.File
	}
	name := "Unit"
	if len(u.Types) > 0 {
		name = simpleName(u.Types[0].Name)
	}
	return path.Join(strings.ReplaceAll(u.Package, ".", "/"), name+".java")
}

func simpleName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func (t *Type) kind() string {
	if t.Kind == "" {
		return "class"
	}
	return t.Kind
}
