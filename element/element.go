/*
Package element implements the retained-mode UI tree: elements carry
id/class/pseudo-class markup, inline styles, and computed box metrics,
and the package drives the dirty-tracking two-pass layout (bottom-up
size recalculation, top-down positioning), the draw traversal with
nested clipping, hit-testing, and DOM-style event dispatch.

Elements build on the generic tree of package tree; every element
embeds a tree node whose payload points back to the element itself.

All operations are meant for the single UI thread; nothing in this
package synchronizes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/
package element

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cuttlekit/cuttle/render"
	"github.com/cuttlekit/cuttle/style"
	"github.com/cuttlekit/cuttle/style/cssparse"
	"github.com/cuttlekit/cuttle/tree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cuttle.element'
func tracer() tracing.Trace {
	return tracing.Select("cuttle.element")
}

// Element is a node of the retained UI tree. The child list owns its
// members; the parent link is a non-owning back-reference. An element
// carries selector markup (type, id, classes, pseudo-classes,
// attributes), an optional inline style, the computed style derived
// from the cascade, and the box metrics of the two layout passes.
type Element struct {
	tree.Node[*Element] // we build on top of the general purpose tree

	typ           string
	id            string
	classes       []string
	pseudoClasses []string
	attributes    map[string]string

	inlineSrc string
	inline    *style.Styling

	computed style.ComputedStyle
	visible  bool

	// sizing pass results
	minWidth, maxWidth   float64
	minHeight, maxHeight float64

	// positioning pass result
	box render.Rect

	// dirty tracking
	isDirty          bool
	deferDirty       bool
	deferredParent   bool
	deferredChildren bool

	listeners map[string][]listener
}

// New creates an element of a given type, optionally attached to a
// parent. Attaching registers the element in the parent's child list
// and marks both dirty.
func New(typ string, parent *Element) *Element {
	e := &Element{typ: typ}
	e.Payload = e // Payload will always reference the element itself
	if parent != nil {
		parent.Append(e)
	}
	return e
}

func (e *Element) String() string {
	return fmt.Sprintf("<%s>", e.Selector())
}

// --- Tree structure ---------------------------------------------------

// Parent returns the parent element, or nil for the root.
func (e *Element) Parent() *Element {
	p := e.Node.Parent()
	if p == nil {
		return nil
	}
	return p.Payload
}

// Children returns the child elements in order. Child order doubles as
// paint order.
func (e *Element) Children() []*Element {
	nodes := e.Node.Children()
	children := make([]*Element, len(nodes))
	for i, n := range nodes {
		children[i] = n.Payload
	}
	return children
}

// Append attaches a child at the end of the child list and marks the
// subtree boundary dirty on both sides.
func (e *Element) Append(child *Element) *Element {
	if child == nil {
		return e
	}
	e.AddChild(&child.Node)
	child.Dirty(true, true)
	return e
}

// Remove detaches a child. The former parent and the removed element
// are both marked dirty; the removed element keeps its subtree and may
// be re-attached elsewhere.
func (e *Element) Remove(child *Element) {
	if child == nil || child.Parent() != e {
		return
	}
	child.Isolate()
	e.Dirty(true, false)
	child.Dirty(false, true)
}

// --- Selector markup --------------------------------------------------

// Type returns the element type used for selector matching.
func (e *Element) Type() string {
	return e.typ
}

// ID returns the element id.
func (e *Element) ID() string {
	return e.id
}

// SetID sets the element id.
func (e *Element) SetID(id string) {
	if e.id == id {
		return
	}
	e.id = id
	e.Dirty(true, true)
}

// AddClass adds a style class.
func (e *Element) AddClass(class string) {
	for _, c := range e.classes {
		if c == class {
			return
		}
	}
	e.classes = append(e.classes, class)
	e.Dirty(true, true)
}

// RemoveClass removes a style class.
func (e *Element) RemoveClass(class string) {
	for i, c := range e.classes {
		if c == class {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			e.Dirty(true, true)
			return
		}
	}
}

// HasClass is a predicate for a style class being set.
func (e *Element) HasClass(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}

// AddPseudoClass adds a pseudo-class, e.g. `hover` or `active`.
func (e *Element) AddPseudoClass(pc string) {
	for _, p := range e.pseudoClasses {
		if p == pc {
			return
		}
	}
	e.pseudoClasses = append(e.pseudoClasses, pc)
	e.Dirty(true, true)
}

// RemovePseudoClass removes a pseudo-class.
func (e *Element) RemovePseudoClass(pc string) {
	for i, p := range e.pseudoClasses {
		if p == pc {
			e.pseudoClasses = append(e.pseudoClasses[:i], e.pseudoClasses[i+1:]...)
			e.Dirty(true, true)
			return
		}
	}
}

// HasPseudoClass is a predicate for a pseudo-class being set.
func (e *Element) HasPseudoClass(pc string) bool {
	for _, p := range e.pseudoClasses {
		if p == pc {
			return true
		}
	}
	return false
}

// SetAttribute sets an attribute usable in `[attr]`/`[attr="val"]`
// selector predicates.
func (e *Element) SetAttribute(key, val string) {
	if e.attributes == nil {
		e.attributes = make(map[string]string)
	}
	if have, ok := e.attributes[key]; ok && have == val {
		return
	}
	e.attributes[key] = val
	e.Dirty(true, true)
}

// Attribute returns an attribute value.
func (e *Element) Attribute(key string) (string, bool) {
	v, ok := e.attributes[key]
	return v, ok
}

// DeleteAttribute removes an attribute.
func (e *Element) DeleteAttribute(key string) {
	if _, ok := e.attributes[key]; !ok {
		return
	}
	delete(e.attributes, key)
	e.Dirty(true, true)
}

// SetInlineStyle parses declarations like `width: 100; color: red;` into
// the element's inline stylesheet. During the cascade the inline sheet
// is appended after the document sheets, giving it the highest priority
// under last-wins ordering. A syntax error leaves the previous inline
// style untouched.
func (e *Element) SetInlineStyle(src string) error {
	if src == e.inlineSrc {
		return nil
	}
	if strings.TrimSpace(src) == "" {
		e.inlineSrc, e.inline = "", nil
		e.Dirty(true, true)
		return nil
	}
	rules, err := cssparse.Parse("* { " + src + " }")
	if err != nil {
		return err
	}
	e.inlineSrc = src
	e.inline = style.NewStyling(rules...)
	e.Dirty(true, true)
	return nil
}

// InlineStyle returns the inline style source text.
func (e *Element) InlineStyle() string {
	return e.inlineSrc
}

// Selector returns the element's composite selector string, i.e.
// `type#id.class1.class2:pseudo1[attr="val"]`.
func (e *Element) Selector() string {
	var sb strings.Builder
	sb.WriteString(e.typ)
	if e.id != "" {
		sb.WriteString("#" + e.id)
	}
	for _, c := range e.classes {
		sb.WriteString("." + c)
	}
	for _, p := range e.pseudoClasses {
		sb.WriteString(":" + p)
	}
	if len(e.attributes) > 0 {
		keys := make([]string, 0, len(e.attributes))
		for k := range e.attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "[%s=%q]", k, e.attributes[k])
		}
	}
	return sb.String()
}

// SelectorPath returns the full ancestor chain as composite selector
// strings, root first, the element itself last. This is the input to
// selector matching and the memo-cache key of the cascade.
func (e *Element) SelectorPath() []string {
	nodes := e.PathToRoot()
	path := make([]string, len(nodes))
	for i, n := range nodes {
		path[len(nodes)-1-i] = n.Payload.Selector()
	}
	return path
}

// --- Derived state ----------------------------------------------------

// ComputedStyle returns the style of the last recalculation.
func (e *Element) ComputedStyle() style.ComputedStyle {
	return e.computed
}

// IsVisible tells if the element was visible (`display` other than
// `none`) at the last recalculation. Invisible elements contribute no
// size and are skipped entirely by positioning, drawing and
// hit-testing.
func (e *Element) IsVisible() bool {
	return e.visible
}

// MinSize returns the minimal width and height of the sizing pass.
func (e *Element) MinSize() (w, h float64) {
	return e.minWidth, e.minHeight
}

// MaxSize returns the maximal width and height of the sizing pass.
func (e *Element) MaxSize() (w, h float64) {
	return e.maxWidth, e.maxHeight
}

// Box returns the rectangle assigned by the positioning pass.
func (e *Element) Box() render.Rect {
	return e.box
}
