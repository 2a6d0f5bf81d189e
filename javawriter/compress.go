package javawriter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/teranos/javagen/errors"
)

const javaLangPrefix = "java.lang."

// CompressType rewrites every qualified name in text to its shortest
// unambiguous form. Text between names (generic brackets, commas, spaces)
// is copied unchanged.
//
// A name is shortened, in order of preference, to its imported short name,
// to its package-relative name when it lives in the current package, or
// without the java.lang prefix.
func (w *Writer) CompressType(text string) (string, error) {
	if !w.packageSet {
		return "", errors.WithHint(
			errors.Wrapf(errors.ErrCompressionBeforePackage, "compress %q", text),
			"call EmitPackage (with \"\" for the default package) before declaring anything",
		)
	}

	var sb strings.Builder
	pos := 0
	for _, loc := range typePattern.FindAllStringIndex(text, -1) {
		sb.WriteString(text[pos:loc[0]])
		sb.WriteString(w.compressName(text[loc[0]:loc[1]]))
		pos = loc[1]
	}
	sb.WriteString(text[pos:])
	return sb.String(), nil
}

func (w *Writer) compressName(name string) string {
	if short, ok := w.imports.lookup(name); ok {
		return short
	}
	if w.isClassInPackage(name) {
		compressed := name[len(w.packagePrefix):]
		if w.imports.hasShortName(compressed) {
			return name
		}
		return compressed
	}
	if strings.HasPrefix(name, javaLangPrefix) {
		return name[len(javaLangPrefix):]
	}
	return name
}

// isClassInPackage guesses whether name is a type of the current package
// rather than something in a subpackage: either nothing after the prefix
// contains a dot, or the first character after it is upper case.
func (w *Writer) isClassInPackage(name string) bool {
	if !strings.HasPrefix(name, w.packagePrefix) || len(name) == len(w.packagePrefix) {
		return false
	}
	rest := name[len(w.packagePrefix):]
	if !strings.Contains(rest, ".") {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsUpper(r)
}

// requireCompression fails when names would need compressing but the
// package is not known yet. Declarations call it before writing anything.
func (w *Writer) requireCompression(text string) error {
	if !w.compress {
		return nil
	}
	_, err := w.CompressType(text)
	return err
}

// typeName returns typ as it should be written. Callers have already
// passed requireCompression, so compression cannot fail here.
func (w *Writer) typeName(typ string) string {
	if !w.compress {
		return typ
	}
	compressed, err := w.CompressType(typ)
	if err != nil {
		return typ
	}
	return compressed
}
