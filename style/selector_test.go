package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseSegment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.style")
	defer teardown()
	//
	seg := ParseSegment(`div#main.a.b:hover::before[open][title="x"]`)
	if seg.Type != "div" || seg.ID != "main" {
		t.Errorf("type/id decomposed wrong: %q/%q", seg.Type, seg.ID)
	}
	if len(seg.Classes) != 2 || seg.Classes[0] != "a" || seg.Classes[1] != "b" {
		t.Errorf("classes decomposed wrong: %v", seg.Classes)
	}
	if len(seg.PseudoClasses) != 1 || seg.PseudoClasses[0] != "hover" {
		t.Errorf("pseudo-classes decomposed wrong: %v", seg.PseudoClasses)
	}
	if len(seg.PseudoElements) != 1 || seg.PseudoElements[0] != "before" {
		t.Errorf("pseudo-elements decomposed wrong: %v", seg.PseudoElements)
	}
	if len(seg.AttrPresent) != 1 || seg.AttrPresent[0] != "open" {
		t.Errorf("bare attributes decomposed wrong: %v", seg.AttrPresent)
	}
	if seg.Attributes["title"] != "x" {
		t.Errorf("valued attributes decomposed wrong: %v", seg.Attributes)
	}
}

func TestChildCombinatorIsStrict(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.style")
	defer teardown()
	//
	child := Selector{"div.a", ">", "span:hover"}
	descendant := Selector{"div.a", "span:hover"}
	direct := []string{"div.a", "span:hover"}
	skipping := []string{"div.a", "p", "span:hover"}

	if !Matches(child, direct) {
		t.Error("`div.a > span:hover` must match [div.a span:hover], doesn't")
	}
	if Matches(child, skipping) {
		t.Error("`div.a > span:hover` must not match [div.a p span:hover], does")
	}
	if !Matches(descendant, direct) || !Matches(descendant, skipping) {
		t.Error("`div.a span:hover` must match both paths, doesn't")
	}
}

func TestDescendantBacktracks(t *testing.T) {
	// the first `div` candidate (div.b) fails the class check; matching
	// must back up and try the outer div.a
	sel := Selector{"div.a", "span"}
	path := []string{"div.a", "div.b", "span"}
	if !Matches(sel, path) {
		t.Error("descendant search must backtrack over ancestors, doesn't")
	}
}

func TestWildcardAndConstraints(t *testing.T) {
	if !Matches(Selector{"*"}, []string{"anything.foo"}) {
		t.Error("`*` must match any element, doesn't")
	}
	if Matches(Selector{"*.foo"}, []string{"div.bar"}) {
		t.Error("class constraint must hold under wildcard type, doesn't")
	}
	if !Matches(Selector{"div#x"}, []string{"body", "div#x.c:active"}) {
		t.Error("element may carry more markup than the rule requires")
	}
	if Matches(Selector{"div#x"}, []string{"body", "div#y"}) {
		t.Error("id constraint violated but matched")
	}
}

func TestAttributeMatching(t *testing.T) {
	path := []string{`input[type="text"][disabled=""]`}
	if !Matches(Selector{"input[type]"}, path) {
		t.Error("bare attribute presence must match, doesn't")
	}
	if !Matches(Selector{`input[type="text"]`}, path) {
		t.Error("attribute value pair must match exactly, doesn't")
	}
	if Matches(Selector{`input[type="password"]`}, path) {
		t.Error("mismatching attribute value matched")
	}
	if Matches(Selector{"input[missing]"}, path) {
		t.Error("absent attribute matched")
	}
}

func TestRuleSetAnySelectorMatches(t *testing.T) {
	rule := RuleSet{
		Selectors: []Selector{{"p"}, {"span"}},
	}
	if !rule.Match([]string{"body", "span"}) {
		t.Error("rule must match if any comma-separated selector matches")
	}
	if rule.Match([]string{"body", "div"}) {
		t.Error("rule matched although no selector applies")
	}
}
