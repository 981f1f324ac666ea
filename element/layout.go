package element

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/

import (
	"github.com/cuttlekit/cuttle/render"
	"github.com/cuttlekit/cuttle/style"
)

/*
Layout runs in two passes per frame:

 1. Recalculate, bottom-up: recompute the computed style of every dirty
    element, then derive min/max sizes from the children's aggregated
    content size plus the element's own margin, border and padding.
 2. Position, top-down: assign each element a rectangle, subtract its
    margin/border/padding to get the content rectangle, and stack the
    children into it.

Aggregation policy for a container: content min/max width is the
maximum over the visible children's min/max widths, content min/max
height the sum over their min/max heights (vertical block flow).
Invisible children contribute nothing. A container that scrolls
vertically (`overflow-y` of scroll or auto) reports a content
min-height of zero, since its content can scroll it never forces the
parent taller.
*/

// Recalculate runs the bottom-up sizing pass over the subtree, against
// a base stylesheet. Clean elements are skipped entirely, including
// selector matching; an element in a deferred mutation batch is skipped
// as well and keeps its previous metrics until the batch ends.
//
// Recalculation fails on a malformed shorthand declaration
// (style.ErrShorthand); this is an authoring error and surfaces to the
// caller instead of producing a partial layout.
func (e *Element) Recalculate(base *style.Styling) error {
	if !e.isDirty || e.deferDirty {
		return nil
	}
	path := e.SelectorPath()
	computed, err := style.ComputeStyle(path, base, e.inline)
	if err != nil {
		return err
	}
	e.computed = computed
	e.visible = computed.Keyword("display") != "none"
	if !e.visible {
		e.minWidth, e.maxWidth = 0, 0
		e.minHeight, e.maxHeight = 0, 0
		e.isDirty = false
		return nil
	}

	// children first: sizes aggregate bottom-up
	var contentMinW, contentMaxW, contentMinH, contentMaxH float64
	for _, child := range e.Children() {
		if err := child.Recalculate(base); err != nil {
			return err
		}
		if !child.visible {
			continue
		}
		contentMinW = fmax(contentMinW, child.minWidth)
		contentMaxW = fmax(contentMaxW, child.maxWidth)
		contentMinH += child.minHeight
		contentMaxH += child.maxHeight
	}
	if e.scrollsVertically() {
		contentMinH = 0
	}

	top, right, bottom, left := e.mbp()
	e.minWidth = contentMinW + left + right
	e.maxWidth = contentMaxW + left + right
	e.minHeight = contentMinH + top + bottom
	e.maxHeight = contentMaxH + top + bottom

	// explicit constraints override the content-derived sizes
	if e.computed.Has("min-width") {
		e.minWidth = e.computed.Dimen("min-width").Resolve(0)
	}
	if e.computed.Has("max-width") {
		e.maxWidth = e.computed.Dimen("max-width").Resolve(0)
	}
	if e.computed.Has("min-height") {
		e.minHeight = e.computed.Dimen("min-height").Resolve(0)
	}
	if e.computed.Has("max-height") {
		e.maxHeight = e.computed.Dimen("max-height").Resolve(0)
	}
	e.maxWidth = fmax(e.maxWidth, e.minWidth)
	e.maxHeight = fmax(e.maxHeight, e.minHeight)

	e.isDirty = false
	tracer().Debugf("recalculated %s: min %gx%g, max %gx%g", e,
		e.minWidth, e.minHeight, e.maxWidth, e.maxHeight)
	return nil
}

// Position runs the top-down positioning pass: the element takes the
// assigned rectangle, subtracts its margin/border/padding to get the
// content rectangle, and stacks its visible children into it (block
// flow, y growing downward). A child's width is the content width
// clamped to the child's min/max; its height is the child's preferred
// (maximal) height clamped to the remaining content height and its own
// minimum.
func (e *Element) Position(box render.Rect) {
	if !e.visible {
		return
	}
	e.box = box
	top, right, bottom, left := e.mbp()
	content := render.Rect{
		Left:   box.Left + left,
		Top:    box.Top + top,
		Width:  fmax(0, box.Width-left-right),
		Height: fmax(0, box.Height-top-bottom),
	}
	y := content.Top
	for _, child := range e.Children() {
		if !child.visible {
			continue
		}
		w := fclamp(content.Width, child.minWidth, child.maxWidth)
		remaining := fmax(0, content.Bottom()-y)
		h := fclamp(remaining, child.minHeight, child.maxHeight)
		child.Position(render.Rect{Left: content.Left, Top: y, Width: w, Height: h})
		y += h
	}
}

// scrollsVertically is a predicate for scrolling containers.
func (e *Element) scrollsVertically() bool {
	switch e.computed.Keyword("overflow-y") {
	case "scroll", "auto":
		return true
	}
	return false
}

// mbp sums up margin, border and padding per side. Percentages are
// treated as zero during sizing; the format documents lengths as
// pixels.
func (e *Element) mbp() (top, right, bottom, left float64) {
	border := e.computed.Dimen("border-width").Resolve(0)
	top = e.computed.Dimen("margin-top").Resolve(0) + border + e.computed.Dimen("padding-top").Resolve(0)
	right = e.computed.Dimen("margin-right").Resolve(0) + border + e.computed.Dimen("padding-right").Resolve(0)
	bottom = e.computed.Dimen("margin-bottom").Resolve(0) + border + e.computed.Dimen("padding-bottom").Resolve(0)
	left = e.computed.Dimen("margin-left").Resolve(0) + border + e.computed.Dimen("padding-left").Resolve(0)
	return
}

func fmax(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func fclamp(x, lo, hi float64) float64 {
	if x > hi {
		x = hi
	}
	if x < lo {
		x = lo
	}
	return x
}
