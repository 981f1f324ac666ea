package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/

import "strings"

// Segment is one decomposed element predicate of a selector, or of an
// element's composite selector-path entry.
type Segment struct {
	Type           string
	ID             string
	Classes        []string
	PseudoClasses  []string
	PseudoElements []string
	Attributes     map[string]string // required attribute/value pairs
	AttrPresent    []string          // bare attribute-presence requirements
}

// ParseSegment decomposes a composite predicate string of the form
//
//	type#id.class1.class2:pseudo1::pseudoelem[attr][attr2="val"]
//
// into its parts. An empty or missing type is recorded as given;
// matching treats `*` and the empty type as wildcards.
func ParseSegment(s string) Segment {
	var seg Segment
	i := 0
	readName := func() string {
		start := i
		for i < len(s) && !strings.ContainsRune("#.:[", rune(s[i])) {
			i++
		}
		return s[start:i]
	}
	seg.Type = readName()
	for i < len(s) {
		switch s[i] {
		case '#':
			i++
			seg.ID = readName()
		case '.':
			i++
			seg.Classes = append(seg.Classes, readName())
		case ':':
			i++
			if i < len(s) && s[i] == ':' {
				i++
				seg.PseudoElements = append(seg.PseudoElements, readName())
			} else {
				seg.PseudoClasses = append(seg.PseudoClasses, readName())
			}
		case '[':
			i++
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				end = len(s) - i
			}
			attr := s[i : i+end]
			i += end
			if i < len(s) {
				i++ // skip ']'
			}
			if eq := strings.IndexByte(attr, '='); eq >= 0 {
				key := attr[:eq]
				val := strings.Trim(attr[eq+1:], `"'`)
				if seg.Attributes == nil {
					seg.Attributes = make(map[string]string)
				}
				seg.Attributes[key] = val
			} else {
				seg.AttrPresent = append(seg.AttrPresent, attr)
			}
		default:
			i++ // stray character, skip
		}
	}
	return seg
}

// matchedBy reports whether an element segment el satisfies every
// constraint of the rule segment seg.
func (seg Segment) matchedBy(el Segment) bool {
	if seg.Type != "" && seg.Type != "*" && seg.Type != el.Type {
		return false
	}
	if seg.ID != "" && seg.ID != el.ID {
		return false
	}
	if !subset(seg.Classes, el.Classes) {
		return false
	}
	if !subset(seg.PseudoClasses, el.PseudoClasses) {
		return false
	}
	if !subset(seg.PseudoElements, el.PseudoElements) {
		return false
	}
	for _, attr := range seg.AttrPresent {
		if _, ok := el.Attributes[attr]; !ok {
			return false
		}
	}
	for attr, val := range seg.Attributes {
		if have, ok := el.Attributes[attr]; !ok || have != val {
			return false
		}
	}
	return true
}

func subset(required, have []string) bool {
	for _, r := range required {
		found := false
		for _, h := range have {
			if r == h {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// selItem is a rule-selector predicate, flagged if the combinator to its
// left is the strict child combinator `>`.
type selItem struct {
	seg   Segment
	child bool
}

func selectorItems(sel Selector) []selItem {
	items := make([]selItem, 0, len(sel))
	child := false
	for _, s := range sel {
		if s == ">" {
			child = true
			continue
		}
		items = append(items, selItem{seg: ParseSegment(s), child: child})
		child = false
	}
	return items
}

// Matches reports whether a single selector chain matches an element's
// selector path. The path is the element's full ancestor chain as
// composite predicate strings, root first, the element itself last.
//
// Matching runs right-to-left: the selector's last predicate must match
// the element itself; a predicate preceded by `>` must match the
// immediate parent, while the implicit descendant combinator searches
// any ancestor (with backtracking).
func Matches(sel Selector, path []string) bool {
	items := selectorItems(sel)
	if len(items) == 0 || len(path) == 0 {
		return false
	}
	segs := make([]Segment, len(path))
	for i, p := range path {
		segs[i] = ParseSegment(p)
	}
	return matchItems(items, len(items)-1, segs, len(segs)-1)
}

func matchItems(items []selItem, k int, path []Segment, p int) bool {
	if !items[k].seg.matchedBy(path[p]) {
		return false
	}
	if k == 0 {
		return true
	}
	if items[k].child {
		// strict hop to the immediate parent
		if p == 0 {
			return false
		}
		return matchItems(items, k-1, path, p-1)
	}
	for q := p - 1; q >= 0; q-- {
		if matchItems(items, k-1, path, q) {
			return true
		}
	}
	return false
}

// Match reports whether any of the rule-set's comma-separated selectors
// matches the given element selector path.
func (r RuleSet) Match(path []string) bool {
	for _, sel := range r.Selectors {
		if Matches(sel, path) {
			return true
		}
	}
	return false
}
