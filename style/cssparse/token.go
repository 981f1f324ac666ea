package cssparse

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cuttlekit/cuttle/style"
	"github.com/gorilla/css/scanner"
)

// Kind classifies lexemes of the stylesheet language.
type Kind int8

// Token kinds, in classification order.
const (
	Special Kind = iota // structural punctuation - . : * > { } , ( ) ; [ ] =
	Key                 // property keyword
	ValueKw             // enumerated value keyword
	Cursor              // cursor keyword
	ColorTok            // color literal, decoded at lex time
	Pseudo              // pseudo-class keyword
	Num                 // number with optional unit suffix
	Ident               // identifier
	Str                 // quoted string (quotes stripped)
	URI                 // url(...) literal
	EOF
)

func (k Kind) String() string {
	switch k {
	case Special:
		return "special"
	case Key:
		return "key"
	case ValueKw:
		return "value"
	case Cursor:
		return "cursor"
	case ColorTok:
		return "color"
	case Pseudo:
		return "pseudoclass"
	case Num:
		return "num"
	case Ident:
		return "id"
	case Str:
		return "string"
	case URI:
		return "uri"
	case EOF:
		return "eof"
	}
	return "?"
}

// Token is a classified lexeme with its decoded value. Tokens are
// immutable once produced.
type Token struct {
	Kind  Kind
	Raw   string
	Line  int
	Num   float64
	Unit  string
	Color style.Color
}

func (t Token) String() string {
	return fmt.Sprintf("<%s %q>", t.Kind, t.Raw)
}

// --- Identifier classification ----------------------------------------

// Identifiers are classified by an ordered rule table; the first
// matching rule wins. The catch-all identifier rule goes last.
var identRules = []struct {
	kind  Kind
	match func(string) bool
}{
	{Key, keyKeywords.has},
	{ValueKw, valueKeywords.has},
	{Cursor, cursorKeywords.has},
	{ColorTok, style.IsColorName},
	{Pseudo, pseudoKeywords.has},
	{Ident, func(string) bool { return true }},
}

type keywordSet map[string]struct{}

func (ks keywordSet) has(s string) bool {
	_, ok := ks[s]
	return ok
}

func keywords(words ...string) keywordSet {
	ks := make(keywordSet, len(words))
	for _, w := range words {
		ks[w] = struct{}{}
	}
	return ks
}

var keyKeywords = keywords(
	"display", "color",
	"background", "background-color",
	"margin", "margin-left", "margin-right", "margin-top", "margin-bottom",
	"padding", "padding-left", "padding-right", "padding-top", "padding-bottom",
	"border", "border-width", "border-radius", "border-color",
	"border-left-color", "border-right-color", "border-top-color", "border-bottom-color",
	"width", "min-width", "max-width",
	"height", "min-height", "max-height",
	"overflow", "overflow-x", "overflow-y",
	"font", "font-size", "font-style", "font-weight", "font-family",
	"cursor",
)

var valueKeywords = keywords(
	"auto", "visible", "hidden", "none", "scroll", "initial",
	"normal", "italic", "oblique", "bold", "bolder", "lighter",
)

var cursorKeywords = keywords(
	"default", "wait", "grab", "crosshair", "pointer", "text",
	"e-resize", "w-resize", "ew-resize",
	"n-resize", "s-resize", "ns-resize",
	"all-scroll",
)

var pseudoKeywords = keywords("hover", "active", "focus", "disabled")

// --- Tokenizing -------------------------------------------------------

const specialChars = "-.:*>{},();[]="

var colorFunctions = keywords("rgb(", "rgba(", "hsl(", "hsla(")

// Tokenize turns stylesheet text into a classified token stream.
// Whitespace and comments are dropped; color literals (all 5 syntaxes)
// and numbers are decoded here, so the parser and everything after it
// only ever see decoded values. A lexeme no rule matches yields a
// SyntaxError with its line number.
func Tokenize(text string) ([]Token, error) {
	s := scanner.New(text)
	var raw []*scanner.Token
	line := 1
	for {
		t := s.Next()
		line = t.Line
		if t.Type == scanner.TokenError {
			return nil, &SyntaxError{Line: t.Line, Msg: fmt.Sprintf("cannot tokenize %q", t.Value)}
		}
		if t.Type == scanner.TokenEOF {
			break
		}
		raw = append(raw, t)
	}

	var toks []Token
	for i := 0; i < len(raw); i++ {
		t := raw[i]
		switch t.Type {
		case scanner.TokenS, scanner.TokenComment, scanner.TokenCDO, scanner.TokenCDC:
			// ignore rule: whitespace and comments
		case scanner.TokenIdent:
			toks = append(toks, classifyIdent(t))
		case scanner.TokenChar:
			if t.Value == "-" && i+1 < len(raw) && isNumberToken(raw[i+1]) {
				// unary minus: fold into the number
				n, unit, err := decodeNumber(raw[i+1])
				if err != nil {
					return nil, err
				}
				toks = append(toks, Token{Kind: Num, Raw: "-" + raw[i+1].Value, Line: t.Line, Num: -n, Unit: unit})
				i++
				break
			}
			if !strings.Contains(specialChars, t.Value) {
				return nil, &SyntaxError{Line: t.Line, Msg: fmt.Sprintf("no token rule matches %q", t.Value)}
			}
			toks = append(toks, Token{Kind: Special, Raw: t.Value, Line: t.Line})
		case scanner.TokenNumber, scanner.TokenPercentage, scanner.TokenDimension:
			n, unit, err := decodeNumber(t)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Kind: Num, Raw: t.Value, Line: t.Line, Num: n, Unit: unit})
		case scanner.TokenHash:
			hashTok, err := decodeHash(t)
			if err != nil {
				return nil, err
			}
			toks = append(toks, hashTok...)
		case scanner.TokenFunction:
			if !colorFunctions.has(t.Value) {
				return nil, &SyntaxError{Line: t.Line, Msg: fmt.Sprintf("unknown function %q", t.Value)}
			}
			lit, skip, err := collectFunction(raw[i:])
			if err != nil {
				return nil, err
			}
			c, cerr := style.ParseColor(lit)
			if cerr != nil {
				return nil, &SyntaxError{Line: t.Line, Msg: cerr.Error()}
			}
			toks = append(toks, Token{Kind: ColorTok, Raw: lit, Line: t.Line, Color: c})
			i += skip
		case scanner.TokenString:
			toks = append(toks, Token{Kind: Str, Raw: strings.Trim(t.Value, `"'`), Line: t.Line})
		case scanner.TokenURI:
			toks = append(toks, Token{Kind: URI, Raw: t.Value, Line: t.Line})
		default:
			return nil, &SyntaxError{Line: t.Line, Msg: fmt.Sprintf("no token rule matches %q", t.Value)}
		}
	}
	toks = append(toks, Token{Kind: EOF, Raw: "", Line: line})
	return toks, nil
}

func classifyIdent(t *scanner.Token) Token {
	for _, rule := range identRules {
		if rule.match(t.Value) {
			tok := Token{Kind: rule.kind, Raw: t.Value, Line: t.Line}
			if rule.kind == ColorTok {
				tok.Color, _ = style.ColorFromName(t.Value)
			}
			return tok
		}
	}
	return Token{Kind: Ident, Raw: t.Value, Line: t.Line} // unreachable, table has a catch-all
}

func isNumberToken(t *scanner.Token) bool {
	switch t.Type {
	case scanner.TokenNumber, scanner.TokenPercentage, scanner.TokenDimension:
		return true
	}
	return false
}

func decodeNumber(t *scanner.Token) (float64, string, error) {
	v := t.Value
	unit := ""
	switch t.Type {
	case scanner.TokenPercentage:
		v, unit = strings.TrimSuffix(v, "%"), "%"
	case scanner.TokenDimension:
		cut := len(v)
		for cut > 0 && !isNumChar(v[cut-1]) {
			cut--
		}
		v, unit = v[:cut], v[cut:]
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, "", &SyntaxError{Line: t.Line, Msg: fmt.Sprintf("cannot decode number %q", t.Value)}
	}
	return n, unit, nil
}

func isNumChar(c byte) bool {
	return c >= '0' && c <= '9' || c == '.'
}

// decodeHash resolves the `#` ambiguity: six hex digits are a color
// literal, anything else is an id reference and splits into `#` plus an
// identifier.
func decodeHash(t *scanner.Token) ([]Token, error) {
	name := t.Value[1:]
	if len(name) == 6 && isHex(name) {
		c, err := style.ParseColor(t.Value)
		if err != nil {
			return nil, &SyntaxError{Line: t.Line, Msg: err.Error()}
		}
		return []Token{{Kind: ColorTok, Raw: t.Value, Line: t.Line, Color: c}}, nil
	}
	return []Token{
		{Kind: Special, Raw: "#", Line: t.Line},
		{Kind: Ident, Raw: name, Line: t.Line},
	}, nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F') {
			return false
		}
	}
	return true
}

// collectFunction re-assembles the raw text of a function call, i.e.
// `rgb(` up to and including the closing `)`.
func collectFunction(raw []*scanner.Token) (string, int, error) {
	var sb strings.Builder
	for i, t := range raw {
		if t.Type == scanner.TokenS {
			continue
		}
		sb.WriteString(t.Value)
		if t.Type == scanner.TokenChar && t.Value == ")" {
			return sb.String(), i, nil
		}
	}
	return "", 0, &SyntaxError{Line: raw[0].Line, Msg: fmt.Sprintf("unterminated %q literal", raw[0].Value)}
}
