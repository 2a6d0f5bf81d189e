package javawriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/javagen/errors"
)

func TestCompressType(t *testing.T) {
	w, _ := newTestWriter(t)
	require.NoError(t, w.EmitPackage("com.example"))
	require.NoError(t, w.EmitImports("java.util.List", "java.util.Map", "com.other.Bar"))

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"imported", "java.util.List", "List"},
		{"imported with type argument", "java.util.List<java.lang.String>", "List<String>"},
		{"nested generics", "java.util.Map<java.lang.String, java.util.List<com.example.Baz>>", "Map<String, List<Baz>>"},
		{"same package", "com.example.Foo", "Foo"},
		{"same package nested class", "com.example.Outer.Inner", "Outer.Inner"},
		{"subpackage kept", "com.example.sub.Thing", "com.example.sub.Thing"},
		{"package name itself", "com.example", "com.example"},
		{"not imported", "java.util.Set", "java.util.Set"},
		{"java.lang", "java.lang.Integer", "Integer"},
		{"primitive", "int", "int"},
		{"array", "java.util.List[]", "List[]"},
		{"imported from other package", "com.other.Bar", "Bar"},
		{"same package collides with import", "com.example.Bar", "com.example.Bar"},
		{"wildcard", "java.util.Map<?, ? extends java.lang.Number>", "Map<?, ? extends Number>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := w.CompressType(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompressType_ImportWinsOverPackage(t *testing.T) {
	w, _ := newTestWriter(t)
	require.NoError(t, w.EmitPackage("com.example"))
	require.NoError(t, w.EmitImports("com.example.sub.Widget"))

	got, err := w.CompressType("com.example.sub.Widget")
	require.NoError(t, err)
	assert.Equal(t, "Widget", got)
}

func TestCompressType_DefaultPackage(t *testing.T) {
	w, _ := newTestWriter(t)
	require.NoError(t, w.EmitPackage(""))

	tests := []struct {
		in   string
		want string
	}{
		{"Foo", "Foo"},
		{"Outer.Inner", "Outer.Inner"},
		{"java.util.List", "java.util.List"},
		{"java.lang.String", "String"},
	}
	for _, tt := range tests {
		got, err := w.CompressType(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "CompressType(%q)", tt.in)
	}
}

func TestCompressType_BeforePackage(t *testing.T) {
	w, _ := newTestWriter(t)

	_, err := w.CompressType("java.util.List")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrCompressionBeforePackage)
	assert.NotEmpty(t, errors.GetAllHints(err))
}
