package javawriter

import (
	"strings"

	"github.com/teranos/javagen/errors"
)

// Modifier is a set of Java modifiers. Combine flags with |; the set is
// always written in the canonical order below, never in call order.
type Modifier uint16

const (
	Public Modifier = 1 << iota
	Protected
	Private
	Abstract
	Default
	Static
	Final
	Transient
	Volatile
	Synchronized
	Native
	Strictfp

	// NoModifiers is the empty set.
	NoModifiers Modifier = 0
)

// modifierOrder is the canonical order modifiers are written in.
var modifierOrder = []struct {
	flag    Modifier
	keyword string
}{
	{Public, "public"},
	{Protected, "protected"},
	{Private, "private"},
	{Abstract, "abstract"},
	{Default, "default"},
	{Static, "static"},
	{Final, "final"},
	{Transient, "transient"},
	{Volatile, "volatile"},
	{Synchronized, "synchronized"},
	{Native, "native"},
	{Strictfp, "strictfp"},
}

// Has reports whether every modifier in other is in m.
func (m Modifier) Has(other Modifier) bool {
	return m&other == other
}

// Keywords returns the modifier keywords in canonical order.
func (m Modifier) Keywords() []string {
	var out []string
	for _, mod := range modifierOrder {
		if m&mod.flag != 0 {
			out = append(out, mod.keyword)
		}
	}
	return out
}

func (m Modifier) String() string {
	return strings.Join(m.Keywords(), " ")
}

// ParseModifier returns the modifier for a single keyword.
func ParseModifier(keyword string) (Modifier, error) {
	k := strings.ToLower(strings.TrimSpace(keyword))
	for _, mod := range modifierOrder {
		if mod.keyword == k {
			return mod.flag, nil
		}
	}
	return NoModifiers, errors.Wrapf(errors.ErrUnknownModifier, "modifier %q", keyword)
}

// ParseModifiers combines keywords into one set. Repeats are harmless.
func ParseModifiers(keywords []string) (Modifier, error) {
	var m Modifier
	for _, k := range keywords {
		mod, err := ParseModifier(k)
		if err != nil {
			return NoModifiers, err
		}
		m |= mod
	}
	return m, nil
}
