package element

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/

import "github.com/cuttlekit/cuttle/render"

// Draw walks the subtree in paint order. For each visible element the
// element's box is pushed onto the scissor stack (clamped against the
// parent clip), the element is handed to the renderer, the children are
// drawn in child-list order, and the clip is popped again.
//
// A subtree whose clip rectangle has no area is culled: nothing below
// it can be visible, since child clips never exceed the parent clip.
// A fault inside the renderer is contained and logged; one broken draw
// callback must not take down the frame.
func (e *Element) Draw(scissor *render.ScissorStack, renderer render.Renderer) {
	if !e.visible {
		return
	}
	scissor.Push(e.box, true)
	defer scissor.Pop()
	if !scissor.IsVisible() {
		return
	}
	e.drawSelf(renderer)
	for _, child := range e.Children() {
		child.Draw(scissor, renderer)
	}
}

func (e *Element) drawSelf(renderer render.Renderer) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("contained fault in draw callback for %s: %v", e, r)
		}
	}()
	renderer.DrawBox(e.box, e.computed)
}

// ElementUnderPoint hit-tests the subtree with the box rectangles of
// the last positioning pass. Children are probed in reverse child-list
// order, so of overlapping siblings the last-drawn (topmost) one wins;
// invisible elements and their subtrees are skipped.
func (e *Element) ElementUnderPoint(x, y float64) *Element {
	if !e.visible || !e.box.Contains(x, y) {
		return nil
	}
	children := e.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if hit := children[i].ElementUnderPoint(x, y); hit != nil {
			return hit
		}
	}
	return e
}
