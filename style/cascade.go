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

// ComputedStyle is the flat outcome of the cascade: longhand property
// name to final scalar value. Shorthands are fully expanded before a
// computed style is handed to layout; layout code never sees shorthand
// keys. Properties whose final value is `initial` are dropped.
type ComputedStyle map[string]Value

// Value returns the value of a longhand property, or the zero Value.
func (cs ComputedStyle) Value(key string) Value {
	return cs[key]
}

// Has is a predicate for a longhand property being set.
func (cs ComputedStyle) Has(key string) bool {
	_, ok := cs[key]
	return ok
}

// Dimen interprets a longhand property as a dimension.
func (cs ComputedStyle) Dimen(key string) Dimen {
	return cs[key].Dimen()
}

// Color returns a longhand property as a color.
func (cs ComputedStyle) Color(key string) (Color, bool) {
	return cs[key].Color()
}

// Keyword returns the keyword value of a longhand property, or "".
func (cs ComputedStyle) Keyword(key string) string {
	return cs[key].Keyword()
}

func (cs ComputedStyle) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for k, v := range cs {
		fmt.Fprintf(&sb, " %s=%s", k, v)
	}
	sb.WriteString(" }")
	return sb.String()
}

// Cascade merges a flat list of declarations, already gathered in
// priority order, into a computed style: shorthands are expanded via the
// expander table, later occurrences of a longhand overwrite earlier
// ones, and `initial`-valued entries are dropped at the end.
func Cascade(decls []Declaration) (ComputedStyle, error) {
	cs := make(ComputedStyle)
	for _, d := range decls {
		if expand, ok := expanders[d.Property]; ok {
			if err := expand(d, cs); err != nil {
				return nil, err
			}
			continue
		}
		cs[d.Property] = d.Scalar()
	}
	for k, v := range cs {
		if v.IsInitial() {
			delete(cs, k)
		}
	}
	return cs, nil
}

// --- Shorthand expansion ----------------------------------------------

// expander turns one shorthand declaration into its longhand entries.
type expander func(d Declaration, cs ComputedStyle) error

// expanders is the fixed table of shorthand properties. Dispatch is
// data-driven so each entry is testable on its own.
var expanders = map[string]expander{
	"margin":       trblExpander("margin-", ""),
	"padding":      trblExpander("padding-", ""),
	"border":       expandBorder,
	"border-color": trblExpander("border-", "-color"),
	"background":   expandBackground,
	"font":         expandFont,
	"width":        minMaxExpander("width"),
	"height":       minMaxExpander("height"),
	"overflow":     expandOverflow,
}

// trbl expands a 1/2/3/4-value tuple per the CSS top/right/bottom/left
// convention.
func trbl(d Declaration) (t, r, b, l Value, err error) {
	v := d.Values
	switch len(v) {
	case 1:
		t, r, b, l = v[0], v[0], v[0], v[0]
	case 2:
		t, r, b, l = v[0], v[1], v[0], v[1]
	case 3:
		t, r, b, l = v[0], v[1], v[2], v[1]
	case 4:
		t, r, b, l = v[0], v[1], v[2], v[3]
	default:
		err = fmt.Errorf("%s with %d values: %w", d.Property, len(v), ErrShorthand)
	}
	return
}

func trblExpander(prefix, suffix string) expander {
	return func(d Declaration, cs ComputedStyle) error {
		t, r, b, l, err := trbl(d)
		if err != nil {
			return err
		}
		cs[prefix+"top"+suffix] = t
		cs[prefix+"right"+suffix] = r
		cs[prefix+"bottom"+suffix] = b
		cs[prefix+"left"+suffix] = l
		return nil
	}
}

// expandBorder handles `border: <width> [<color>...]`. The first value is
// the uniform border width; remaining values trbl-expand into the
// per-side border colors.
func expandBorder(d Declaration, cs ComputedStyle) error {
	if len(d.Values) == 0 || len(d.Values) > 5 {
		return fmt.Errorf("border with %d values: %w", len(d.Values), ErrShorthand)
	}
	cs["border-width"] = d.Values[0]
	if len(d.Values) == 1 {
		return nil
	}
	colors := Declaration{Property: d.Property, Values: d.Values[1:]}
	return trblExpander("border-", "-color")(colors, cs)
}

// expandBackground handles `background: <color>` (the background
// shorthand carries a color only).
func expandBackground(d Declaration, cs ComputedStyle) error {
	if len(d.Values) != 1 {
		return fmt.Errorf("background with %d values: %w", len(d.Values), ErrShorthand)
	}
	cs["background-color"] = d.Values[0]
	return nil
}

// expandFont handles `font: [<style>] [<weight>] <size> <family>...`.
// Optional leading keywords set font-style and font-weight, the first
// number is the font size, everything after it joins into the family.
func expandFont(d Declaration, cs ComputedStyle) error {
	i := 0
	for ; i < len(d.Values); i++ {
		v := d.Values[i]
		if v.Kind() != KeywordValue {
			break
		}
		switch v.Keyword() {
		case "italic", "oblique":
			cs["font-style"] = v
		case "bold", "bolder", "lighter":
			cs["font-weight"] = v
		case "normal":
			// normal is the default for both style and weight
		default:
			return fmt.Errorf("font keyword %q: %w", v.Keyword(), ErrShorthand)
		}
	}
	if i >= len(d.Values) || d.Values[i].Kind() != NumberValue {
		return fmt.Errorf("font without a size: %w", ErrShorthand)
	}
	cs["font-size"] = d.Values[i]
	if i+1 < len(d.Values) {
		family := make([]string, 0, len(d.Values)-i-1)
		for _, v := range d.Values[i+1:] {
			family = append(family, v.Text())
		}
		cs["font-family"] = StringVal(strings.Join(family, " "))
	}
	return nil
}

// minMaxExpander fans `width`/`height` out to the corresponding `min-*`
// and `max-*` pair, layering fixed-size semantics on top of the
// min/max-based layout model.
func minMaxExpander(prop string) expander {
	return func(d Declaration, cs ComputedStyle) error {
		if len(d.Values) != 1 {
			return fmt.Errorf("%s with %d values: %w", prop, len(d.Values), ErrShorthand)
		}
		cs["min-"+prop] = d.Values[0]
		cs["max-"+prop] = d.Values[0]
		return nil
	}
}

// expandOverflow handles the overflow shorthand. `overflow: scroll`
// expands asymmetrically to `overflow-x: auto, overflow-y: scroll`:
// vertical content scrolls, horizontal overflow only gets a scrollbar
// when it has to. Every other value applies to both axes.
func expandOverflow(d Declaration, cs ComputedStyle) error {
	if len(d.Values) != 1 {
		return fmt.Errorf("overflow with %d values: %w", len(d.Values), ErrShorthand)
	}
	v := d.Values[0]
	if v.Keyword() == "scroll" {
		cs["overflow-x"] = Keyword("auto")
		cs["overflow-y"] = Keyword("scroll")
		return nil
	}
	cs["overflow-x"] = v
	cs["overflow-y"] = v
	return nil
}
