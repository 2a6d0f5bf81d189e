package unit

import (
	"bytes"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/javawriter"
	"github.com/teranos/javagen/logger"
)

// Render validates u and emits it through w in declaration order. Within a
// type, members are written as enum constants, fields, initializers,
// constructors, methods and nested types, separated by blank lines.
func Render(u *Unit, w *javawriter.Writer) error {
	if err := u.Validate(); err != nil {
		return err
	}

	start := time.Now()
	r := renderer{w: w, log: logger.ComponentLogger("unit.render")}
	if err := r.unit(u); err != nil {
		return errors.Wrapf(err, "render %s", u.FileName())
	}
	if depth := w.Depth(); depth != 0 {
		return errors.Newf("render %s: %d scopes left open", u.FileName(), depth)
	}

	r.log.Infow("Rendered unit",
		logger.FieldFile, u.FileName(),
		logger.FieldCount, len(u.Types),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return nil
}

// RenderBytes renders u into memory with a fresh writer.
func RenderBytes(u *Unit, opts ...javawriter.Option) ([]byte, error) {
	var buf bytes.Buffer
	w := javawriter.New(&buf, opts...)
	if err := Render(u, w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type renderer struct {
	w   *javawriter.Writer
	log *zap.SugaredLogger
}

func (r *renderer) unit(u *Unit) error {
	if u.Header != "" {
		for _, line := range strings.Split(strings.TrimRight(u.Header, "\n"), "\n") {
			if err := r.w.EmitSingleLineComment(line); err != nil {
				return err
			}
		}
		if err := r.w.EmitEmptyLine(); err != nil {
			return err
		}
	}

	if err := r.w.EmitPackage(u.Package); err != nil {
		return err
	}
	if len(u.Imports) > 0 {
		if err := r.w.EmitImports(u.Imports...); err != nil {
			return err
		}
	}
	if len(u.StaticImports) > 0 {
		if err := r.w.EmitStaticImports(u.StaticImports...); err != nil {
			return err
		}
	}
	if len(u.Imports)+len(u.StaticImports) > 0 {
		if err := r.w.EmitEmptyLine(); err != nil {
			return err
		}
	}

	for i := range u.Types {
		if i > 0 {
			if err := r.w.EmitEmptyLine(); err != nil {
				return err
			}
		}
		if err := r.typeDecl(&u.Types[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) typeDecl(t *Type) error {
	r.log.Debugw("Rendering type", logger.FieldType, t.Name, logger.FieldKind, t.kind())

	if err := r.preamble(t.Javadoc, t.Annotations); err != nil {
		return err
	}
	mods, err := javawriter.ParseModifiers(t.Modifiers)
	if err != nil {
		return err
	}
	if err := r.w.BeginType(t.Name, t.kind(), mods, t.Extends, t.Implements...); err != nil {
		return err
	}

	m := members{w: r.w}
	if len(t.EnumValues) > 0 {
		m.started = true
		if err := r.w.EmitEnumValues(t.EnumValues...); err != nil {
			return err
		}
	}

	if len(t.Fields) > 0 {
		if err := m.next(); err != nil {
			return err
		}
		for i := range t.Fields {
			if err := r.field(&t.Fields[i]); err != nil {
				return err
			}
		}
	}

	for _, init := range t.Initializers {
		if err := m.next(); err != nil {
			return err
		}
		if err := r.w.BeginInitializer(init.Static); err != nil {
			return err
		}
		if err := r.body(init.Body); err != nil {
			return err
		}
		if err := r.w.EndInitializer(); err != nil {
			return err
		}
	}

	for i := range t.Constructors {
		if err := m.next(); err != nil {
			return err
		}
		if err := r.method(&t.Constructors[i], true); err != nil {
			return err
		}
	}

	for i := range t.Methods {
		if err := m.next(); err != nil {
			return err
		}
		if err := r.method(&t.Methods[i], false); err != nil {
			return err
		}
	}

	for i := range t.Types {
		if err := m.next(); err != nil {
			return err
		}
		if err := r.typeDecl(&t.Types[i]); err != nil {
			return err
		}
	}

	return r.w.EndType()
}

// members separates consecutive members of a type body with blank lines.
type members struct {
	w       *javawriter.Writer
	started bool
}

func (m *members) next() error {
	if !m.started {
		m.started = true
		return nil
	}
	return m.w.EmitEmptyLine()
}

func (r *renderer) field(f *Field) error {
	if err := r.preamble(f.Javadoc, f.Annotations); err != nil {
		return err
	}
	mods, err := javawriter.ParseModifiers(f.Modifiers)
	if err != nil {
		return err
	}
	return r.w.EmitField(f.Type, f.Name, mods, f.Value)
}

func (r *renderer) method(m *Method, constructor bool) error {
	if err := r.preamble(m.Javadoc, m.Annotations); err != nil {
		return err
	}
	mods, err := javawriter.ParseModifiers(m.Modifiers)
	if err != nil {
		return err
	}
	params := make([]string, 0, 2*len(m.Parameters))
	for _, p := range m.Parameters {
		params = append(params, p.Type, p.Name)
	}

	if constructor {
		if err := r.w.BeginConstructor(mods, params, m.Throws); err != nil {
			return err
		}
		if err := r.body(m.Body); err != nil {
			return err
		}
		return r.w.EndConstructor()
	}

	if err := r.w.BeginMethod(m.Returns, m.Name, mods, params, m.Throws); err != nil {
		return err
	}
	if err := r.body(m.Body); err != nil {
		return err
	}
	return r.w.EndMethod()
}

func (r *renderer) preamble(javadoc string, annotations []Annotation) error {
	if javadoc != "" {
		if err := r.w.EmitJavadoc(javadoc); err != nil {
			return err
		}
	}
	for i := range annotations {
		if err := r.annotation(&annotations[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) annotation(a *Annotation) error {
	switch {
	case a.Value != "":
		return r.w.EmitAnnotationValue(a.Name, a.Value)
	case len(a.Attributes) > 0:
		attrs := javawriter.NewAttributes()
		for _, attr := range a.Attributes {
			if len(attr.Values) > 0 {
				attrs.Set(attr.Name, attr.Values)
			} else {
				attrs.Set(attr.Name, attr.Value)
			}
		}
		return r.w.EmitAnnotationAttributes(a.Name, attrs)
	default:
		return r.w.EmitAnnotation(a.Name)
	}
}

func (r *renderer) body(stmts []Statement) error {
	for i := range stmts {
		if err := r.statement(&stmts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) statement(s *Statement) error {
	switch {
	case s.Code != "":
		return r.w.EmitStatement(s.Code)
	case s.Comment != "":
		return r.w.EmitSingleLineComment(s.Comment)
	case s.Blank:
		return r.w.EmitEmptyLine()
	case s.Switch != "":
		if err := r.w.BeginSwitch(s.Switch); err != nil {
			return err
		}
		if err := r.body(s.Body); err != nil {
			return err
		}
		return r.w.EndSwitch()
	}

	if err := r.w.BeginControlFlow(s.Flow); err != nil {
		return err
	}
	if err := r.body(s.Body); err != nil {
		return err
	}
	for _, b := range s.Next {
		if err := r.w.NextControlFlow(b.Flow); err != nil {
			return err
		}
		if err := r.body(b.Body); err != nil {
			return err
		}
	}
	if s.While != "" {
		return r.w.EndControlFlowWith(s.While)
	}
	return r.w.EndControlFlow()
}
