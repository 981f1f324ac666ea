package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/

import (
	"fmt"
	"strings"
)

// ValueKind classifies property values.
type ValueKind int8

// Kinds of property values.
const (
	NoValue      ValueKind = iota
	KeywordValue           // enumerated keyword, e.g. `auto`, `none`, `scroll`
	NumberValue            // number with optional unit suffix
	ColorValue             // decoded color literal
	StringValue            // quoted string, e.g. a font family
)

// Value is a typed scalar value for a style property. Values are immutable
// and comparable; they are produced by the tokenizer (colors and numbers
// are decoded at lex time) and flow unchanged through cascade and layout.
type Value struct {
	kind  ValueKind
	str   string
	num   float64
	unit  string
	color Color
}

// Keyword wraps an enumerated keyword as a property value.
func Keyword(k string) Value {
	return Value{kind: KeywordValue, str: k}
}

// Number wraps a number with an advisory unit suffix (px, vw, vh, pt, %
// or empty) as a property value.
func Number(n float64, unit string) Value {
	return Value{kind: NumberValue, num: n, unit: unit}
}

// ColorVal wraps a decoded color as a property value.
func ColorVal(c Color) Value {
	return Value{kind: ColorValue, color: c}
}

// StringVal wraps a quoted string as a property value.
func StringVal(s string) Value {
	return Value{kind: StringValue, str: s}
}

// Kind returns the kind of a value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Keyword returns the keyword of a keyword-value, or "" otherwise.
func (v Value) Keyword() string {
	if v.kind != KeywordValue {
		return ""
	}
	return v.str
}

// Number returns a numeric value together with its unit suffix.
func (v Value) Number() (float64, string) {
	return v.num, v.unit
}

// Color returns the color of a color-value.
func (v Value) Color() (Color, bool) {
	return v.color, v.kind == ColorValue
}

// Text returns the content of a string-value or the keyword of a
// keyword-value.
func (v Value) Text() string {
	return v.str
}

// IsInitial denotes if a value is the keyword `initial`.
func (v Value) IsInitial() bool {
	return v.kind == KeywordValue && v.str == "initial"
}

// Dimen interprets a value as a dimension: numbers become lengths
// (percent-suffixed numbers become percentages), the keywords `auto` and
// `initial` map to their Dimen counterparts. Anything else is the unset
// dimension.
func (v Value) Dimen() Dimen {
	switch v.kind {
	case NumberValue:
		return Length(v.num, v.unit)
	case KeywordValue:
		switch v.str {
		case "auto":
			return Auto()
		case "initial":
			return Initial()
		}
	}
	return Dimen{}
}

func (v Value) String() string {
	switch v.kind {
	case KeywordValue:
		return v.str
	case NumberValue:
		return fmt.Sprintf("%g%s", v.num, v.unit)
	case ColorValue:
		return v.color.String()
	case StringValue:
		return fmt.Sprintf("%q", v.str)
	}
	return "<none>"
}

// --- Declarations and rule-sets ---------------------------------------

// Declaration is a single `property: value;` entry of a rule-set. A
// property may carry a single value or an ordered tuple (shorthands,
// e.g. `border: 1 red;`).
type Declaration struct {
	Property string
	Values   []Value
}

// Scalar returns the single value of a non-tuple declaration, or the
// first value of a tuple.
func (d Declaration) Scalar() Value {
	if len(d.Values) == 0 {
		return Value{}
	}
	return d.Values[0]
}

// IsTuple denotes if a declaration carries more than one value.
func (d Declaration) IsTuple() bool {
	return len(d.Values) > 1
}

func (d Declaration) String() string {
	vals := make([]string, len(d.Values))
	for i, v := range d.Values {
		vals[i] = v.String()
	}
	return fmt.Sprintf("%s: %s;", d.Property, strings.Join(vals, " "))
}

// Selector is a chain of composite segment strings, root-most first.
// A segment is either an element predicate in composite form
// (`type#id.class1.class2:pseudo1`, with optional `::pseudo-element` and
// `[attr]`/`[attr="val"]` parts) or the child-combinator marker `>`.
// Two adjacent predicates without a marker combine as descendants.
type Selector []string

func (sel Selector) String() string {
	return strings.Join(sel, " ")
}

// RuleSet is one stylesheet block: a list of comma-separated selectors
// and the declarations that apply to every element matched by any of
// them. Declarations keep document order.
type RuleSet struct {
	Selectors    []Selector
	Declarations []Declaration
}

func (r RuleSet) String() string {
	sels := make([]string, len(r.Selectors))
	for i, sel := range r.Selectors {
		sels[i] = sel.String()
	}
	var sb strings.Builder
	sb.WriteString(strings.Join(sels, ", "))
	sb.WriteString(" {")
	for _, d := range r.Declarations {
		sb.WriteString(" ")
		sb.WriteString(d.String())
	}
	sb.WriteString(" }")
	return sb.String()
}
