/*
Package cssparse parses stylesheet text into rule-sets.

The grammar is CSS-like:

	selector[, selector]* {
	    property: value[ value]*;
	    ...
	}

Tokenizing runs over gorilla/css scanner tokens, classified by an
ordered rule table; colors and numbers are decoded during tokenizing.
The parser is a plain recursive descent over the token stream. Any
malformed input fails with a SyntaxError carrying the offending line
number; loading a stylesheet never yields a partial rule list.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/
package cssparse

import (
	"fmt"
	"strings"

	"github.com/cuttlekit/cuttle/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cuttle.style'
func tracer() tracing.Trace {
	return tracing.Select("cuttle.style")
}

// SyntaxError is returned for malformed stylesheet text: either no token
// rule matches the remaining input, or an expected literal is missing.
// Loading a stylesheet with a syntax error fails as a whole.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error on line %d: %s", e.Line, e.Msg)
}

// Parse parses stylesheet text into rule-sets in document order.
func Parse(text string) ([]style.RuleSet, error) {
	toks, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	var rules []style.RuleSet
	for p.peek().Kind != EOF {
		rule, err := p.ruleSet()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	tracer().Debugf("parsed stylesheet with %d rule-sets", len(rules))
	return rules, nil
}

type parser struct {
	toks []Token
	pos  int
}

func (p *parser) peek() Token {
	return p.toks[p.pos]
}

func (p *parser) next() Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) peekSpecial(raw string) bool {
	t := p.peek()
	return t.Kind == Special && t.Raw == raw
}

func (p *parser) expectSpecial(raw string) (Token, error) {
	t := p.next()
	if t.Kind != Special || t.Raw != raw {
		return t, &SyntaxError{Line: t.Line, Msg: fmt.Sprintf("expected %q but saw %q", raw, t.Raw)}
	}
	return t, nil
}

func (p *parser) expectKind(k Kind) (Token, error) {
	t := p.next()
	if t.Kind != k {
		return t, &SyntaxError{Line: t.Line, Msg: fmt.Sprintf("expected %s but saw %q", k, t.Raw)}
	}
	return t, nil
}

// ruleSet parses one `selectors { declarations }` block.
func (p *parser) ruleSet() (style.RuleSet, error) {
	var rule style.RuleSet
	rule.Selectors = []style.Selector{nil}
	cur := func() style.Selector { return rule.Selectors[len(rule.Selectors)-1] }
	for !p.peekSpecial("{") {
		t := p.peek()
		switch {
		case t.Kind == Ident || p.peekSpecial("*") || len(cur()) == 0 && predicateStart(t):
			e, err := p.elem()
			if err != nil {
				return rule, err
			}
			rule.Selectors[len(rule.Selectors)-1] = append(cur(), e)
		case p.peekSpecial(">"):
			if len(cur()) == 0 {
				return rule, &SyntaxError{Line: t.Line, Msg: `combinator ">" without a left-hand element`}
			}
			p.next()
			e, err := p.elem()
			if err != nil {
				return rule, err
			}
			rule.Selectors[len(rule.Selectors)-1] = append(cur(), ">", e)
		case p.peekSpecial(","):
			p.next()
			rule.Selectors = append(rule.Selectors, nil)
		default:
			return rule, &SyntaxError{Line: t.Line, Msg: fmt.Sprintf(`expected selector or "{" but saw %q`, t.Raw)}
		}
	}
	if _, err := p.expectSpecial("{"); err != nil {
		return rule, err
	}
	for {
		for p.peekSpecial(";") {
			p.next()
		}
		if p.peekSpecial("}") || p.peek().Kind == EOF {
			break
		}
		d, err := p.declaration()
		if err != nil {
			return rule, err
		}
		rule.Declarations = append(rule.Declarations, d)
	}
	if _, err := p.expectSpecial("}"); err != nil {
		return rule, err
	}
	return rule, nil
}

// predicateStart tells if a token may open an element predicate without
// an explicit type, which is allowed at the start of a selector chain
// and after `>` only. Whitespace is no token, so `elem1 .class` folds
// into the composite predicate `elem1.class` instead.
func predicateStart(t Token) bool {
	if t.Kind != Special {
		return false
	}
	switch t.Raw {
	case ".", "#", ":", "[":
		return true
	}
	return false
}

// elem parses one element predicate into its composite string form,
// `type#id.class:pseudo-class::pseudo-element[attr="val"]`.
func (p *parser) elem() (string, error) {
	var sb strings.Builder
	t := p.peek()
	switch {
	case predicateStart(t):
		sb.WriteString("*")
	case t.Kind == Special && t.Raw == "*":
		p.next()
		sb.WriteString("*")
	case t.Kind == Ident:
		p.next()
		sb.WriteString(t.Raw)
	default:
		return "", &SyntaxError{Line: t.Line, Msg: fmt.Sprintf("expected element type but saw %q", t.Raw)}
	}
	for predicateStart(p.peek()) {
		switch p.next().Raw {
		case ".":
			name, err := p.expectKind(Ident)
			if err != nil {
				return "", err
			}
			sb.WriteString("." + name.Raw)
		case "#":
			name, err := p.expectKind(Ident)
			if err != nil {
				return "", err
			}
			sb.WriteString("#" + name.Raw)
		case ":":
			if p.peekSpecial(":") {
				p.next()
				name, err := p.expectKind(Ident)
				if err != nil {
					return "", err
				}
				sb.WriteString("::" + name.Raw)
				break
			}
			name, err := p.expectKind(Pseudo)
			if err != nil {
				return "", err
			}
			sb.WriteString(":" + name.Raw)
		case "[":
			attr, err := p.attribute()
			if err != nil {
				return "", err
			}
			sb.WriteString(attr)
		}
	}
	return sb.String(), nil
}

// attribute parses `attr]` or `attr="val"]` (the opening bracket has
// been consumed already).
func (p *parser) attribute() (string, error) {
	key, err := p.expectKind(Ident)
	if err != nil {
		return "", err
	}
	if p.peekSpecial("]") {
		p.next()
		return "[" + key.Raw + "]", nil
	}
	if _, err := p.expectSpecial("="); err != nil {
		return "", err
	}
	val := p.next()
	switch val.Kind {
	case Str, Ident:
	default:
		return "", &SyntaxError{Line: val.Line, Msg: fmt.Sprintf("expected attribute value but saw %q", val.Raw)}
	}
	if _, err := p.expectSpecial("]"); err != nil {
		return "", err
	}
	return fmt.Sprintf("[%s=%q]", key.Raw, val.Raw), nil
}

// declaration parses one `property: value[ value]*;` entry. A value
// followed immediately by `;` stays scalar; otherwise values accumulate
// into a tuple until `;` (or the closing `}`) is seen.
func (p *parser) declaration() (style.Declaration, error) {
	var d style.Declaration
	key, err := p.expectKind(Key)
	if err != nil {
		return d, err
	}
	d.Property = key.Raw
	if _, err := p.expectSpecial(":"); err != nil {
		return d, err
	}
	v, err := p.value()
	if err != nil {
		return d, err
	}
	d.Values = []style.Value{v}
	for !p.peekSpecial(";") && !p.peekSpecial("}") && p.peek().Kind != EOF {
		v, err := p.value()
		if err != nil {
			return d, err
		}
		d.Values = append(d.Values, v)
	}
	if _, err := p.expectSpecial(";"); err != nil {
		return d, err
	}
	return d, nil
}

func (p *parser) value() (style.Value, error) {
	t := p.next()
	switch t.Kind {
	case ColorTok:
		return style.ColorVal(t.Color), nil
	case Num:
		return style.Number(t.Num, t.Unit), nil
	case Str, URI:
		return style.StringVal(t.Raw), nil
	case ValueKw, Cursor, Pseudo, Ident, Key:
		return style.Keyword(t.Raw), nil
	}
	return style.Value{}, &SyntaxError{Line: t.Line, Msg: fmt.Sprintf("expected a value but saw %q", t.Raw)}
}
