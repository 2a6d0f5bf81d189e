package javawriter

import (
	"regexp"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/teranos/javagen/errors"
)

// typePattern matches a qualified type name. Group 1 is the last segment,
// which may itself carry dots, '$' (nested classes) or a '*' wildcard.
var (
	typePattern     = regexp.MustCompile(`(?:[\w$]+\.)*([\w.*$]+)`)
	fullTypePattern = regexp.MustCompile(`^(?:[\w$]+\.)*([\w.*$]+)$`)
)

// importTable maps imported fully-qualified names to the short names they are written as.
// Iteration follows registration order.
type importTable struct {
	types *orderedmap.OrderedMap[string, string]
}

func newImportTable() *importTable {
	return &importTable{types: orderedmap.New[string, string]()}
}

// shortName validates fqn against the qualified-name grammar and returns its last segment.
func shortName(fqn string) (string, error) {
	m := fullTypePattern.FindStringSubmatch(fqn)
	if m == nil {
		return "", errors.WithHint(
			errors.Wrapf(errors.ErrMalformedName, "import %q", fqn),
			"imports are dotted identifiers such as java.util.List",
		)
	}
	return m[1], nil
}

// check reports whether fqn could be added without error.
func (t *importTable) check(fqn string) (string, error) {
	short, err := shortName(fqn)
	if err != nil {
		return "", err
	}
	if _, exists := t.types.Get(fqn); exists {
		return "", errors.Wrapf(errors.ErrDuplicateImport, "import %q", fqn)
	}
	return short, nil
}

// add registers fqn and returns its short name.
// Distinct names that share a short name are all accepted; the compressor
// resolves the collision for same-package references.
func (t *importTable) add(fqn string) (string, error) {
	short, err := t.check(fqn)
	if err != nil {
		return "", err
	}
	t.types.Set(fqn, short)
	return short, nil
}

func (t *importTable) lookup(fqn string) (string, bool) {
	return t.types.Get(fqn)
}

// hasShortName reports whether any import is written as short.
func (t *importTable) hasShortName(short string) bool {
	for pair := t.types.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == short {
			return true
		}
	}
	return false
}

func (t *importTable) len() int {
	return t.types.Len()
}

// Import is one registered import.
type Import struct {
	Name      string // fully-qualified name
	ShortName string
}

func (t *importTable) entries() []Import {
	out := make([]Import, 0, t.types.Len())
	for pair := t.types.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Import{Name: pair.Key, ShortName: pair.Value})
	}
	return out
}
