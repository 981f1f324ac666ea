package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/

import "strings"

// Styling is an ordered list of rule-sets, i.e. one stylesheet, plus a
// memo cache from resolved selector paths to the declarations the sheet
// contributes to them. The cache is invalidated as a whole whenever the
// rule list changes, never partially.
//
// Styling is not safe for concurrent use; all style computation happens
// on the single UI thread.
type Styling struct {
	rules []RuleSet
	cache map[string][]Declaration
}

// NewStyling creates a stylesheet from rule-sets in document order.
func NewStyling(rules ...RuleSet) *Styling {
	return &Styling{
		rules: rules,
		cache: make(map[string][]Declaration),
	}
}

// Rules returns the rule-sets of the stylesheet, in document order.
func (s *Styling) Rules() []RuleSet {
	return s.rules
}

// AppendRules appends rule-sets at the end of the stylesheet, giving
// them the highest priority under last-wins cascading. The memo cache is
// dropped.
func (s *Styling) AppendRules(rules ...RuleSet) {
	s.rules = append(s.rules, rules...)
	s.invalidate()
}

// Replace swaps out the whole rule list, e.g. for a stylesheet reload.
// The memo cache is dropped.
func (s *Styling) Replace(rules []RuleSet) {
	s.rules = rules
	s.invalidate()
}

func (s *Styling) invalidate() {
	tracer().Debugf("styling: invalidating %d cached selector paths", len(s.cache))
	s.cache = make(map[string][]Declaration)
}

func pathKey(path []string) string {
	return strings.Join(path, " ")
}

// Collect gathers every declaration of every rule-set matching the given
// selector path, preserving document order. Results are memoized per
// path; callers must not modify the returned slice.
func (s *Styling) Collect(path []string) []Declaration {
	key := pathKey(path)
	if decls, ok := s.cache[key]; ok {
		return decls
	}
	var decls []Declaration
	for _, rule := range s.rules {
		if rule.Match(path) {
			decls = append(decls, rule.Declarations...)
		}
	}
	if s.cache == nil {
		s.cache = make(map[string][]Declaration)
	}
	s.cache[key] = decls
	return decls
}

// ComputeStyle runs the cascade for an element's selector path over one
// or more stylesheets, given lowest priority first (consistent with
// later-wins ordering; an element's inline style sheet goes last).
func ComputeStyle(path []string, sheets ...*Styling) (ComputedStyle, error) {
	var decls []Declaration
	for _, sheet := range sheets {
		if sheet == nil {
			continue
		}
		decls = append(decls, sheet.Collect(path)...)
	}
	return Cascade(decls)
}
