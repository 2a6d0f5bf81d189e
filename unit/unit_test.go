package unit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/javawriter"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
		want string
	}{
		{
			name: "package path and simple name",
			unit: Unit{Package: "com.example", Types: []Type{{Name: "com.example.Foo"}}},
			want: "com/example/Foo.java",
		},
		{
			name: "default package",
			unit: Unit{Types: []Type{{Name: "Main"}}},
			want: "Main.java",
		},
		{
			name: "first type wins",
			unit: Unit{Package: "a.b", Types: []Type{{Name: "First"}, {Name: "Second"}}},
			want: "a/b/First.java",
		},
		{
			name: "explicit file",
			unit: Unit{File: "custom/Path.java", Package: "a.b", Types: []Type{{Name: "X"}}},
			want: "custom/Path.java",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.unit.FileName())
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"a.yaml": FormatYAML,
		"a.YML":  FormatYAML,
		"a.toml": FormatTOML,
		"a.json": FormatJSON,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}

	_, err := FormatFromPath("a.xml")
	assert.Error(t, err)
}

func TestDecode_UnknownKeys(t *testing.T) {
	tests := []struct {
		format Format
		data   string
	}{
		{FormatYAML, "package: a\ntypes:\n  - name: A\n    feilds: []\n"},
		{FormatTOML, "package = \"a\"\n[[types]]\nname = \"A\"\nfeilds = []\n"},
		{FormatJSON, `{"package": "a", "types": [{"name": "A", "feilds": []}]}`},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "foo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: com.example\ntypes:\n  - name: Foo\n"), 0644))

	u, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "com.example", u.Package)
	assert.Equal(t, "com/example/Foo.java", u.FileName())

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	method := func(m Method) Unit {
		return Unit{Types: []Type{{Name: "A", Methods: []Method{m}}}}
	}

	tests := []struct {
		name    string
		unit    Unit
		wantErr string
	}{
		{
			name: "minimal",
			unit: Unit{Types: []Type{{Name: "A"}}},
		},
		{
			name:    "no types",
			unit:    Unit{Package: "a"},
			wantErr: "no types",
		},
		{
			name:    "unknown kind",
			unit:    Unit{Types: []Type{{Name: "A", Kind: "struct"}}},
			wantErr: `unknown kind "struct"`,
		},
		{
			name:    "enum values on class",
			unit:    Unit{Types: []Type{{Name: "A", EnumValues: []string{"X"}}}},
			wantErr: "enum_values on a class",
		},
		{
			name:    "unknown modifier",
			unit:    Unit{Types: []Type{{Name: "A", Modifiers: []string{"sealed"}}}},
			wantErr: "unknown modifier",
		},
		{
			name:    "method without returns",
			unit:    method(Method{Name: "run"}),
			wantErr: "types[0] (A).methods[0]: name and returns are required",
		},
		{
			name: "abstract with body",
			unit: method(Method{Name: "run", Returns: "void", Modifiers: []string{"abstract"},
				Body: []Statement{{Code: "x()"}}}),
			wantErr: "abstract methods have no body",
		},
		{
			name:    "statement with two kinds",
			unit:    method(Method{Name: "run", Returns: "void", Body: []Statement{{Code: "x()", Comment: "y"}}}),
			wantErr: "body[0]: exactly one of",
		},
		{
			name: "nested statement error path",
			unit: method(Method{Name: "run", Returns: "void", Body: []Statement{
				{Flow: "if (x)", Body: []Statement{{}}},
			}}),
			wantErr: "body[0].body[0]",
		},
		{
			name:    "while without flow",
			unit:    method(Method{Name: "run", Returns: "void", Body: []Statement{{Code: "x()", While: "while (y)"}}}),
			wantErr: "next and while need a flow",
		},
		{
			name: "while with next",
			unit: method(Method{Name: "run", Returns: "void", Body: []Statement{
				{Flow: "do", While: "while (y)", Next: []Branch{{Flow: "else"}}},
			}}),
			wantErr: "no next branches",
		},
		{
			name:    "constructor with name",
			unit:    Unit{Types: []Type{{Name: "A", Constructors: []Method{{Name: "A"}}}}},
			wantErr: "constructors take neither name nor returns",
		},
		{
			name: "attribute needs value",
			unit: Unit{Types: []Type{{Name: "A", Annotations: []Annotation{
				{Name: "X", Attributes: []Attribute{{Name: "a"}}},
			}}}},
			wantErr: "exactly one of value or values",
		},
		{
			name: "repeated attribute",
			unit: Unit{Types: []Type{{Name: "A", Annotations: []Annotation{
				{Name: "X", Attributes: []Attribute{{Name: "a", Value: "1"}, {Name: "a", Value: "2"}}},
			}}}},
			wantErr: `attribute "a" repeated`,
		},
		{
			name:    "nested type",
			unit:    Unit{Types: []Type{{Name: "A", Types: []Type{{Name: "B", Fields: []Field{{Name: "x"}}}}}}},
			wantErr: "types[0] (A).types[0] (B).fields[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.unit.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInvalidUnit(err), "got %v", err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRender_WriterOptions(t *testing.T) {
	u := &Unit{
		Package: "com.example",
		Types: []Type{{
			Name:   "com.example.Foo",
			Fields: []Field{{Name: "names", Type: "java.util.List<java.lang.String>"}},
		}},
	}

	got, err := RenderBytes(u, javawriter.WithIndent("\t"), javawriter.WithCompression(false))
	require.NoError(t, err)
	assert.Equal(t, "package com.example;\n\nclass com.example.Foo {\n\tjava.util.List<java.lang.String> names;\n}\n", string(got))
}

func TestRender_WriterErrorNamesFile(t *testing.T) {
	u := &Unit{
		Package: "com.example",
		Imports: []string{"java.util.List<String>"},
		Types:   []Type{{Name: "Foo"}},
	}

	_, err := RenderBytes(u)
	require.Error(t, err)
	assert.True(t, errors.IsMalformedName(err))
	assert.True(t, strings.HasPrefix(err.Error(), "render com/example/Foo.java"), err.Error())
}
