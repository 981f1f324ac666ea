package element

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// buildTree creates body -> (header, content -> (item1, item2)).
func buildTree() (body, header, content, item1, item2 *Element) {
	body = New("body", nil)
	header = New("span", body)
	content = New("div", body)
	item1 = New("span", content)
	item2 = New("span", content)
	return
}

func cleanAll(els ...*Element) {
	for _, e := range els {
		e.isDirty = false
	}
}

func TestElementConstructionMarksDirty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.element")
	defer teardown()
	//
	body := New("body", nil)
	child := New("div", body)
	if !body.IsDirty() || !child.IsDirty() {
		t.Error("expected attaching a child to dirty both sides")
	}
	if child.Parent() != body {
		t.Error("expected child to link back to body")
	}
	if n := len(body.Children()); n != 1 {
		t.Errorf("expected 1 child, have %d", n)
	}
}

func TestDirtyPropagatesUpChainOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.element")
	defer teardown()
	//
	body, header, content, item1, item2 := buildTree()
	cleanAll(body, header, content, item1, item2)

	item1.Dirty(true, false)
	if !item1.IsDirty() || !content.IsDirty() || !body.IsDirty() {
		t.Error("expected every ancestor up to the root to be dirty")
	}
	if header.IsDirty() {
		t.Error("siblings of the dirty chain must stay clean")
	}
	if item2.IsDirty() {
		t.Error("siblings of the dirty leaf must stay clean")
	}
}

func TestDirtyPropagatesToChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.element")
	defer teardown()
	//
	body, header, content, item1, item2 := buildTree()
	cleanAll(body, header, content, item1, item2)

	content.Dirty(false, true)
	if !item1.IsDirty() || !item2.IsDirty() {
		t.Error("expected the whole subtree below to be dirty")
	}
	if body.IsDirty() || header.IsDirty() {
		t.Error("upward propagation was not requested")
	}
}

func TestDeferDirtyRecordsAndReplays(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.element")
	defer teardown()
	//
	body, header, content, item1, item2 := buildTree()
	cleanAll(body, header, content, item1, item2)

	content.DeferDirty(func() {
		content.Dirty(true, false)
		content.Dirty(false, true)
		if body.IsDirty() || item1.IsDirty() {
			t.Error("propagation must be suppressed inside the batch")
		}
	})
	if !body.IsDirty() {
		t.Error("expected deferred upward propagation to replay")
	}
	if !item1.IsDirty() || !item2.IsDirty() {
		t.Error("expected deferred downward propagation to replay")
	}
	if header.IsDirty() {
		t.Error("replay must not widen the propagation")
	}
}

func TestRemoveDirtiesBothSides(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.element")
	defer teardown()
	//
	body, header, content, item1, item2 := buildTree()
	cleanAll(body, header, content, item1, item2)

	content.Remove(item1)
	if item1.Parent() != nil {
		t.Error("expected removed element to be detached")
	}
	if n := len(content.Children()); n != 1 {
		t.Errorf("expected the child list to compact, has %d entries", n)
	}
	if !content.IsDirty() || !body.IsDirty() {
		t.Error("expected the former parent chain to be dirty")
	}
	if !item1.IsDirty() {
		t.Error("expected the removed element to be dirty")
	}
	_ = header
	_ = item2
}

func TestSelectorComposite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.element")
	defer teardown()
	//
	e := New("div", nil)
	e.SetID("main")
	e.AddClass("a")
	e.AddClass("b")
	e.AddPseudoClass("hover")
	e.SetAttribute("open", "")
	want := `div#main.a.b:hover[open=""]`
	if got := e.Selector(); got != want {
		t.Errorf("expected selector %q, got %q", want, got)
	}
}

func TestSelectorPath(t *testing.T) {
	body, _, content, item1, _ := buildTree()
	content.AddClass("list")
	path := item1.SelectorPath()
	if len(path) != 3 {
		t.Fatalf("expected path of length 3, have %d", len(path))
	}
	if path[0] != "body" || path[1] != "div.list" || path[2] != "span" {
		t.Errorf("unexpected path %v", path)
	}
	_ = body
}

func TestClassAndPseudoClassEditing(t *testing.T) {
	e := New("div", nil)
	e.AddClass("x")
	e.AddClass("x") // idempotent
	if !e.HasClass("x") {
		t.Error("expected class x to be set")
	}
	e.RemoveClass("x")
	if e.HasClass("x") {
		t.Error("expected class x to be removed")
	}
	e.AddPseudoClass("hover")
	if !e.HasPseudoClass("hover") {
		t.Error("expected pseudo-class hover to be set")
	}
	e.RemovePseudoClass("hover")
	if e.HasPseudoClass("hover") {
		t.Error("expected pseudo-class hover to be removed")
	}
}

func TestSetInlineStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cuttle.element")
	defer teardown()
	//
	e := New("div", nil)
	if err := e.SetInlineStyle("width: 10; color: red;"); err != nil {
		t.Fatalf("cannot set inline style: %v", err)
	}
	if e.InlineStyle() == "" {
		t.Error("expected inline source to be recorded")
	}
	if err := e.SetInlineStyle("width: ; broken"); err == nil {
		t.Error("expected a syntax error for broken inline style")
	}
	if e.InlineStyle() != "width: 10; color: red;" {
		t.Error("a failed parse must leave the previous inline style in place")
	}
}
