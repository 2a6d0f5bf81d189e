package javawriter

import (
	"fmt"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// maxSingleLineAttributes is the most attributes an annotation keeps on one line.
const maxSingleLineAttributes = 3

// Attributes holds annotation attributes in the order they are written.
// Values are written with fmt.Sprint, so strings must already be Java
// expressions (use StringLiteral for quoted text). Slice and array values
// are written as {...} array initializers.
type Attributes = orderedmap.OrderedMap[string, any]

// NewAttributes returns an empty attribute set.
func NewAttributes() *Attributes {
	return orderedmap.New[string, any]()
}

// EmitAnnotation writes a marker annotation such as @Override.
func (w *Writer) EmitAnnotation(name string) error {
	return w.EmitAnnotationAttributes(name, nil)
}

// EmitAnnotationValue writes an annotation with a single unnamed value, as
// in @SuppressWarnings("unchecked").
func (w *Writer) EmitAnnotationValue(name string, value any) error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.requireCompression(name); err != nil {
		return err
	}
	w.writeIndent()
	w.write("@", w.typeName(name), "(")
	if err := w.writeAnnotationValue(value); err != nil {
		return err
	}
	w.write(")\n")
	return w.err
}

// EmitAnnotationAttributes writes an annotation with named attributes. A
// lone attribute named "value" is written without its name. More than
// three attributes, or any array value, puts each attribute on its own line.
func (w *Writer) EmitAnnotationAttributes(name string, attributes *Attributes) error {
	if err := w.ready(); err != nil {
		return err
	}
	if err := w.requireCompression(name); err != nil {
		return err
	}

	w.writeIndent()
	w.write("@", w.typeName(name))

	count := 0
	if attributes != nil {
		count = attributes.Len()
	}
	switch count {
	case 0:
	case 1:
		pair := attributes.Oldest()
		w.write("(")
		if pair.Key != "value" {
			w.write(pair.Key, " = ")
		}
		if err := w.writeAnnotationValue(pair.Value); err != nil {
			return err
		}
		w.write(")")
	default:
		split := count > maxSingleLineAttributes || containsArray(attributes)
		w.write("(")
		w.pushScope(ScopeAnnotationAttribute)
		separator := "\n"
		for pair := attributes.Oldest(); pair != nil; pair = pair.Next() {
			if split {
				w.write(separator)
				w.writeIndent()
				separator = ",\n"
			} else if pair != attributes.Oldest() {
				w.write(", ")
			}
			w.write(pair.Key, " = ")
			if err := w.writeAnnotationValue(pair.Value); err != nil {
				return err
			}
		}
		if err := w.popScope(ScopeAnnotationAttribute); err != nil {
			return err
		}
		if split {
			w.write("\n")
			w.writeIndent()
		}
		w.write(")")
	}
	w.write("\n")
	return w.err
}

// writeAnnotationValue writes value, expanding slices and arrays one
// element per line.
func (w *Writer) writeAnnotationValue(value any) error {
	if !isArray(value) {
		w.write(fmt.Sprint(value))
		return w.err
	}

	v := reflect.ValueOf(value)
	w.write("{")
	w.pushScope(ScopeAnnotationArrayValue)
	for i := 0; i < v.Len(); i++ {
		if i == 0 {
			w.write("\n")
		} else {
			w.write(",\n")
		}
		w.writeIndent()
		w.write(fmt.Sprint(v.Index(i).Interface()))
	}
	if err := w.popScope(ScopeAnnotationArrayValue); err != nil {
		return err
	}
	w.write("\n")
	w.writeIndent()
	w.write("}")
	return w.err
}

func isArray(value any) bool {
	if value == nil {
		return false
	}
	switch reflect.TypeOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func containsArray(attributes *Attributes) bool {
	for pair := attributes.Oldest(); pair != nil; pair = pair.Next() {
		if isArray(pair.Value) {
			return true
		}
	}
	return false
}
