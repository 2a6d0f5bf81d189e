package javawriter

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "abc", `"abc"`},
		{"empty", "", `""`},
		{"quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `C:\dir`, `"C:\\dir"`},
		{"whitespace escapes", "a\tb\nc\rd", `"a\tb\nc\rd"`},
		{"backspace and form feed", "\b\f", `"\b\f"`},
		{"other control characters", "\x00\x1b\x7f", `"\u0000\u001b\u007f"`},
		{"non-ascii kept", "héllo ☃", `"héllo ☃"`},
		{"invalid byte", "a\xffb", `"a\ufffdb"`},
		{"truncated sequence", "\xe2\x98", `"\ufffd\ufffd"`},
		{"literal replacement character", "\ufffd", "\"\ufffd\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StringLiteral(tt.in))
		})
	}
}

// Java and Go share the escapes StringLiteral produces, so strconv.Unquote
// undoes them.
func TestStringLiteral_RoundTrip(t *testing.T) {
	inputs := []string{
		"",
		`"quoted"`,
		`back\slash\\`,
		"tab\there",
		"lines\nand\r\nmore\n",
		"bell\a and nul\x00 and esc\x1b",
		"\u0085 next line",
		"mixed \"\\\t\n\x01 ünïcödé",
	}

	for _, in := range inputs {
		got, err := strconv.Unquote(StringLiteral(in))
		require.NoError(t, err, "literal %s", StringLiteral(in))
		assert.Equal(t, in, got)
	}
}

func TestType(t *testing.T) {
	assert.Equal(t, "java.util.List", Type("java.util.List"))
	assert.Equal(t, "java.util.Map<String, Integer>", Type("java.util.Map", "String", "Integer"))
	assert.Equal(t, "java.util.List<java.util.List<String>>", Type("java.util.List", Type("java.util.List", "String")))
}
