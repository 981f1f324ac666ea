package document

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/

import "github.com/cuttlekit/cuttle/element"

/*
Input routing. The host delivers discrete events; the document resolves
the element under the pointer and dispatches DOM-style events to it.
The document also manages the interaction pseudo-classes: `hover` is
kept on the element under the mouse and all of its ancestors, `active`
on the pressed element, `focus` on the focused one. Pseudo-class
changes dirty the affected elements so hover-dependent rules take
effect at the next Update.
*/

// MouseMove routes a pointer move: the hover path is updated when the
// element under the pointer changes, and a `mousemove` event is
// dispatched to it.
func (d *Document) MouseMove(x, y float64) {
	hit := d.ElementUnderPoint(x, y)
	if hit != d.underMouse {
		setPseudoClassPath(d.underMouse, "hover", false)
		setPseudoClassPath(hit, "hover", true)
		d.underMouse = hit
		tracer().Debugf("element under mouse is now %v", hit)
	}
	if hit != nil {
		hit.DispatchEvent(&element.Event{Type: "mousemove", X: x, Y: y})
	}
}

// MouseDown routes a button press: the hit element turns `active` and
// receives a `mousedown` event.
func (d *Document) MouseDown(x, y float64, button int) {
	hit := d.ElementUnderPoint(x, y)
	if hit == nil {
		return
	}
	d.active = hit
	hit.AddPseudoClass("active")
	hit.DispatchEvent(&element.Event{Type: "mousedown", X: x, Y: y, Button: button})
}

// MouseUp routes a button release. If the release happens over the
// element that went active on the press, it also counts as a `click`.
func (d *Document) MouseUp(x, y float64, button int) {
	hit := d.ElementUnderPoint(x, y)
	if d.active != nil {
		d.active.RemovePseudoClass("active")
	}
	if hit != nil {
		hit.DispatchEvent(&element.Event{Type: "mouseup", X: x, Y: y, Button: button})
		if hit == d.active {
			hit.DispatchEvent(&element.Event{Type: "click", X: x, Y: y, Button: button})
		}
	}
	d.active = nil
}

// DoubleClick dispatches a `dblclick` to the element under the pointer.
func (d *Document) DoubleClick(x, y float64, button int) {
	if hit := d.ElementUnderPoint(x, y); hit != nil {
		hit.DispatchEvent(&element.Event{Type: "dblclick", X: x, Y: y, Button: button})
	}
}

// Scroll dispatches a `scroll` event to the element under the pointer.
func (d *Document) Scroll(x, y float64) {
	if hit := d.ElementUnderPoint(x, y); hit != nil {
		hit.DispatchEvent(&element.Event{Type: "scroll", X: x, Y: y})
	}
}

// Focus moves keyboard focus. The previously focused element loses its
// `focus` pseudo-class and receives `blur`; the newly focused one gains
// the pseudo-class and receives `focus`. Focusing nil just blurs.
func (d *Document) Focus(el *element.Element) {
	if el == d.focused {
		return
	}
	if d.focused != nil {
		d.focused.RemovePseudoClass("focus")
		d.focused.DispatchEvent(&element.Event{Type: "blur"})
	}
	d.focused = el
	if el != nil {
		el.AddPseudoClass("focus")
		el.DispatchEvent(&element.Event{Type: "focus"})
	}
}

// Focused returns the element holding keyboard focus, or nil.
func (d *Document) Focused() *element.Element {
	return d.focused
}

// KeyDown dispatches a `keydown` to the focused element, falling back
// to the body.
func (d *Document) KeyDown(key string) {
	d.keyEvent("keydown", key)
}

// KeyUp dispatches a `keyup` to the focused element, falling back to
// the body.
func (d *Document) KeyUp(key string) {
	d.keyEvent("keyup", key)
}

func (d *Document) keyEvent(typ, key string) {
	target := d.focused
	if target == nil {
		target = d.body
	}
	target.DispatchEvent(&element.Event{Type: typ, Key: key})
}

// setPseudoClassPath toggles a pseudo-class on an element and every
// ancestor up to the root, so rules like `div:hover span` apply along
// the whole chain.
func setPseudoClassPath(el *element.Element, pc string, on bool) {
	for ; el != nil; el = el.Parent() {
		if on {
			el.AddPseudoClass(pc)
		} else {
			el.RemovePseudoClass(pc)
		}
	}
}
