package unit

import (
	"fmt"

	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/javawriter"
)

var typeKinds = map[string]bool{
	"class":      true,
	"interface":  true,
	"enum":       true,
	"@interface": true,
}

// Validate checks the unit for mistakes the writer would only catch half
// way through rendering. Errors wrap errors.ErrInvalidUnit and name the
// offending element, e.g. types[0].methods[2].body[1].
func (u *Unit) Validate() error {
	if len(u.Types) == 0 {
		return errors.WithHint(
			errors.NewInvalidUnitError("unit declares no types"),
			"add at least one entry under types",
		)
	}
	for i := range u.Types {
		if err := u.Types[i].validate(fmt.Sprintf("types[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Type) validate(at string) error {
	if t.Name == "" {
		return errors.NewInvalidUnitError("%s: name is required", at)
	}
	at = fmt.Sprintf("%s (%s)", at, t.Name)
	if !typeKinds[t.kind()] {
		return errors.NewInvalidUnitError("%s: unknown kind %q", at, t.Kind)
	}
	if len(t.EnumValues) > 0 && t.kind() != "enum" {
		return errors.NewInvalidUnitError("%s: enum_values on a %s", at, t.kind())
	}
	if err := validateModifiers(at, t.Modifiers); err != nil {
		return err
	}
	if err := validateAnnotations(at, t.Annotations); err != nil {
		return err
	}

	for i, f := range t.Fields {
		fat := fmt.Sprintf("%s.fields[%d]", at, i)
		if f.Name == "" || f.Type == "" {
			return errors.NewInvalidUnitError("%s: name and type are required", fat)
		}
		if err := validateModifiers(fat, f.Modifiers); err != nil {
			return err
		}
		if err := validateAnnotations(fat, f.Annotations); err != nil {
			return err
		}
	}
	for i, init := range t.Initializers {
		if err := validateBody(fmt.Sprintf("%s.initializers[%d]", at, i), init.Body); err != nil {
			return err
		}
	}
	for i := range t.Constructors {
		c := &t.Constructors[i]
		cat := fmt.Sprintf("%s.constructors[%d]", at, i)
		if c.Name != "" || c.Returns != "" {
			return errors.NewInvalidUnitError("%s: constructors take neither name nor returns", cat)
		}
		if err := c.validate(cat); err != nil {
			return err
		}
	}
	for i := range t.Methods {
		m := &t.Methods[i]
		mat := fmt.Sprintf("%s.methods[%d]", at, i)
		if m.Name == "" || m.Returns == "" {
			return errors.WithHint(
				errors.NewInvalidUnitError("%s: name and returns are required", mat),
				"use returns: void for methods without a result",
			)
		}
		if err := m.validate(mat); err != nil {
			return err
		}
	}
	for i := range t.Types {
		if err := t.Types[i].validate(fmt.Sprintf("%s.types[%d]", at, i)); err != nil {
			return err
		}
	}
	return nil
}

func (m *Method) validate(at string) error {
	mods, err := javawriter.ParseModifiers(m.Modifiers)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "%s", at), errors.ErrInvalidUnit)
	}
	if mods.Has(javawriter.Abstract) && len(m.Body) > 0 {
		return errors.NewInvalidUnitError("%s: abstract methods have no body", at)
	}
	for i, p := range m.Parameters {
		if p.Type == "" || p.Name == "" {
			return errors.NewInvalidUnitError("%s.parameters[%d]: type and name are required", at, i)
		}
	}
	if err := validateAnnotations(at, m.Annotations); err != nil {
		return err
	}
	return validateBody(at+".body", m.Body)
}

func validateModifiers(at string, keywords []string) error {
	if _, err := javawriter.ParseModifiers(keywords); err != nil {
		return errors.Mark(errors.Wrapf(err, "%s", at), errors.ErrInvalidUnit)
	}
	return nil
}

func validateAnnotations(at string, annotations []Annotation) error {
	for i, a := range annotations {
		aat := fmt.Sprintf("%s.annotations[%d]", at, i)
		if a.Name == "" {
			return errors.NewInvalidUnitError("%s: name is required", aat)
		}
		if a.Value != "" && len(a.Attributes) > 0 {
			return errors.NewInvalidUnitError("%s: value and attributes are exclusive", aat)
		}
		seen := make(map[string]bool, len(a.Attributes))
		for j, attr := range a.Attributes {
			if attr.Name == "" {
				return errors.NewInvalidUnitError("%s.attributes[%d]: name is required", aat, j)
			}
			if seen[attr.Name] {
				return errors.NewInvalidUnitError("%s: attribute %q repeated", aat, attr.Name)
			}
			seen[attr.Name] = true
			if (attr.Value == "") == (len(attr.Values) == 0) {
				return errors.NewInvalidUnitError("%s.attributes[%d]: exactly one of value or values is required", aat, j)
			}
		}
	}
	return nil
}

func validateBody(at string, body []Statement) error {
	for i := range body {
		if err := body[i].validate(fmt.Sprintf("%s[%d]", at, i)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) validate(at string) error {
	set := 0
	for _, present := range []bool{s.Code != "", s.Comment != "", s.Flow != "", s.Switch != "", s.Blank} {
		if present {
			set++
		}
	}
	if set != 1 {
		return errors.WithHint(
			errors.NewInvalidUnitError("%s: exactly one of code, comment, flow, switch or blank is required", at),
			"nest statements under body",
		)
	}
	if s.Flow == "" && (len(s.Next) > 0 || s.While != "") {
		return errors.NewInvalidUnitError("%s: next and while need a flow", at)
	}
	if s.Flow == "" && s.Switch == "" && len(s.Body) > 0 {
		return errors.NewInvalidUnitError("%s: only flow and switch statements have a body", at)
	}
	if s.While != "" && len(s.Next) > 0 {
		return errors.NewInvalidUnitError("%s: a block ending in while has no next branches", at)
	}
	if err := validateBody(at+".body", s.Body); err != nil {
		return err
	}
	for i, b := range s.Next {
		bat := fmt.Sprintf("%s.next[%d]", at, i)
		if b.Flow == "" {
			return errors.NewInvalidUnitError("%s: flow is required", bat)
		}
		if err := validateBody(bat+".body", b.Body); err != nil {
			return err
		}
	}
	return nil
}
