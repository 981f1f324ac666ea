package element

import (
	"errors"
	"testing"

	"github.com/cuttlekit/cuttle/render"
	"github.com/cuttlekit/cuttle/style"
	"github.com/cuttlekit/cuttle/style/cssparse"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func sheet(t *testing.T, src string) *style.Styling {
	t.Helper()
	rules, err := cssparse.Parse(src)
	if err != nil {
		t.Fatalf("cannot parse stylesheet: %v", err)
	}
	return style.NewStyling(rules...)
}

func TestLayoutTwoPasses(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.element")
	defer teardown()
	//
	base := sheet(t, `
		div { width: 100; height: 100; }
		span { color: blue; }
	`)
	body, header, content, item1, item2 := buildTree()
	if err := body.Recalculate(base); err != nil {
		t.Fatal(err)
	}
	minW, minH := content.MinSize()
	maxW, maxH := content.MaxSize()
	if minW != 100 || minH != 100 || maxW != 100 || maxH != 100 {
		t.Errorf("expected the div to be fixed at 100x100, min %gx%g max %gx%g",
			minW, minH, maxW, maxH)
	}
	blue, _ := style.ColorFromName("blue")
	for _, span := range []*Element{header, item1, item2} {
		if c, ok := span.ComputedStyle().Color("color"); !ok || c != blue {
			t.Errorf("expected %s to compute color blue, has %v", span, c)
		}
		if w, h := span.MinSize(); w != 0 || h != 0 {
			t.Errorf("expected %s to have no intrinsic size, has %gx%g", span, w, h)
		}
	}
	// the body aggregates: widths max over children, heights summed
	if w, h := body.MinSize(); w != 100 || h != 100 {
		t.Errorf("expected body min size 100x100, has %gx%g", w, h)
	}

	body.Position(render.NewRect(0, 0, 200, 200))
	if body.Box() != render.NewRect(0, 0, 200, 200) {
		t.Errorf("expected body to take the assigned box, has %v", body.Box())
	}
	// the div is clamped to its fixed size, stacked below the empty header
	if content.Box() != render.NewRect(0, 0, 100, 100) {
		t.Errorf("expected the div box at (0,0) 100x100, has %v", content.Box())
	}
}

func TestRecalculateSkipsCleanSubtrees(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.element")
	defer teardown()
	//
	base := sheet(t, "span { color: blue; }")
	body, _, _, item1, _ := buildTree()
	if err := body.Recalculate(base); err != nil {
		t.Fatal(err)
	}
	blue, _ := style.ColorFromName("blue")
	if c, _ := item1.ComputedStyle().Color("color"); c != blue {
		t.Fatalf("expected blue after the first pass, has %v", c)
	}

	// swap the sheet contents without dirtying: a clean tree must not
	// restyle
	base.Replace(mustRules(t, "span { color: red; }"))
	if err := body.Recalculate(base); err != nil {
		t.Fatal(err)
	}
	if c, _ := item1.ComputedStyle().Color("color"); c != blue {
		t.Error("expected the clean subtree to keep its computed style")
	}

	item1.Dirty(true, false)
	if err := body.Recalculate(base); err != nil {
		t.Fatal(err)
	}
	red, _ := style.ColorFromName("red")
	if c, _ := item1.ComputedStyle().Color("color"); c != red {
		t.Error("expected the dirtied element to restyle")
	}
}

func mustRules(t *testing.T, src string) []style.RuleSet {
	t.Helper()
	rules, err := cssparse.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	return rules
}

func TestInvisibleElementsContributeNothing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.element")
	defer teardown()
	//
	base := sheet(t, "div { width: 100; height: 100; }")
	body, _, content, _, _ := buildTree()
	if err := content.SetInlineStyle("display: none;"); err != nil {
		t.Fatal(err)
	}
	if err := body.Recalculate(base); err != nil {
		t.Fatal(err)
	}
	if content.IsVisible() {
		t.Error("expected display none to hide the element")
	}
	if w, h := content.MinSize(); w != 0 || h != 0 {
		t.Errorf("expected a hidden element to report zero size, has %gx%g", w, h)
	}
	if w, h := body.MinSize(); w != 0 || h != 0 {
		t.Errorf("expected the hidden subtree to contribute nothing, body has %gx%g", w, h)
	}
}

func TestScrollingContainerHasNoMinHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.element")
	defer teardown()
	//
	base := sheet(t, ".tall { height: 500; }")
	list := New("div", nil)
	if err := list.SetInlineStyle("overflow: scroll;"); err != nil {
		t.Fatal(err)
	}
	row := New("div", list)
	row.AddClass("tall")
	if err := list.Recalculate(base); err != nil {
		t.Fatal(err)
	}
	if _, h := list.MinSize(); h != 0 {
		t.Errorf("expected a vertically scrolling container to have min-height 0, has %g", h)
	}
	if _, h := list.MaxSize(); h != 500 {
		t.Errorf("expected the container to still want its content height, has %g", h)
	}
}

func TestPaddingAddsToContentSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.element")
	defer teardown()
	//
	base := sheet(t, "div { width: 100; height: 100; }")
	box := New("section", nil)
	if err := box.SetInlineStyle("padding: 5;"); err != nil {
		t.Fatal(err)
	}
	New("div", box)
	if err := box.Recalculate(base); err != nil {
		t.Fatal(err)
	}
	if w, h := box.MinSize(); w != 110 || h != 110 {
		t.Errorf("expected padding to grow the container to 110x110, has %gx%g", w, h)
	}

	box.Position(render.NewRect(0, 0, 110, 110))
	child := box.Children()[0]
	if child.Box() != render.NewRect(5, 5, 100, 100) {
		t.Errorf("expected the child inset by the padding, has %v", child.Box())
	}
}

func TestRecalculateSurfacesShorthandErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.element")
	defer teardown()
	//
	e := New("div", nil)
	if err := e.SetInlineStyle("margin: 1 2 3 4 5;"); err != nil {
		t.Fatal(err) // parses fine, fails only during expansion
	}
	err := e.Recalculate(nil)
	if err == nil {
		t.Fatal("expected the malformed shorthand to surface")
	}
	if !errors.Is(err, style.ErrShorthand) {
		t.Errorf("expected ErrShorthand, got %v", err)
	}
}
