package javawriter

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// StringLiteral returns data as a quoted Java string literal.
// Control characters without a short escape are written as \uXXXX.
// data should be valid UTF-8: Java strings hold characters, not bytes, so
// each invalid byte is written as the replacement character \ufffd.
func StringLiteral(data string) string {
	var sb strings.Builder
	sb.Grow(len(data) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(data); {
		c, size := utf8.DecodeRuneInString(data[i:])
		i += size
		if c == utf8.RuneError && size == 1 {
			sb.WriteString(`\ufffd`)
			continue
		}
		switch c {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\f':
			sb.WriteString(`\f`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			if unicode.IsControl(c) {
				fmt.Fprintf(&sb, `\u%04x`, c)
			} else {
				sb.WriteRune(c)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// Type builds a parameterized type name, e.g. Type("java.util.Map", "String", "Integer")
// returns "java.util.Map<String, Integer>".
func Type(raw string, parameters ...string) string {
	if len(parameters) == 0 {
		return raw
	}
	return raw + "<" + strings.Join(parameters, ", ") + ">"
}
