package element

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/

// Event is a discrete input event delivered by the host (the toolkit
// never polls input itself). Dispatch follows the DOM model: a
// capturing phase from the root down to the target's parent, the target
// phase, and a bubbling phase back up to the root.
type Event struct {
	Type   string   // mousemove, mousedown, mouseup, click, dblclick, keydown, keyup, scroll, focus, blur
	Target *Element // set by DispatchEvent
	X, Y   float64  // pointer position for mouse events
	Button int
	Key    string

	stopped          bool
	defaultPrevented bool
}

// StopPropagation ends dispatch after the current element's listeners
// have run.
func (ev *Event) StopPropagation() {
	ev.stopped = true
}

// PreventDefault marks the event as handled, telling the host not to
// apply its default behavior.
func (ev *Event) PreventDefault() {
	ev.defaultPrevented = true
}

// DefaultPrevented reports whether a listener called PreventDefault.
func (ev *Event) DefaultPrevented() bool {
	return ev.defaultPrevented
}

// Listener is an event callback. A panic inside a listener is contained
// at the dispatch boundary and logged; it never unwinds into the host
// loop.
type Listener func(*Event)

type listener struct {
	fn      Listener
	capture bool
}

// AddEventListener registers a listener for an event type. Capturing
// listeners run during the capture phase (root towards target),
// non-capturing ones during the target and bubble phases.
func (e *Element) AddEventListener(typ string, fn Listener, capture bool) {
	if fn == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]listener)
	}
	e.listeners[typ] = append(e.listeners[typ], listener{fn: fn, capture: capture})
}

// DispatchEvent delivers an event to this element as the target,
// running capture, target and bubble phases over the root path.
// StopPropagation ends the dispatch after the current element.
func (e *Element) DispatchEvent(ev *Event) {
	ev.Target = e

	// root path, root first
	nodes := e.PathToRoot()
	chain := make([]*Element, len(nodes))
	for i, n := range nodes {
		chain[len(nodes)-1-i] = n.Payload
	}

	// capture phase: root down to the target's parent
	for _, el := range chain[:len(chain)-1] {
		el.invokeListeners(ev, true)
		if ev.stopped {
			return
		}
	}
	// target phase: both listener kinds
	e.invokeListeners(ev, true)
	e.invokeListeners(ev, false)
	if ev.stopped {
		return
	}
	// bubble phase: target's parent back up to the root
	for i := len(chain) - 2; i >= 0; i-- {
		chain[i].invokeListeners(ev, false)
		if ev.stopped {
			return
		}
	}
}

func (e *Element) invokeListeners(ev *Event, capture bool) {
	for _, l := range e.listeners[ev.Type] {
		if l.capture != capture {
			continue
		}
		e.invokeListener(ev, l)
	}
}

func (e *Element) invokeListener(ev *Event, l listener) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("contained fault in %q listener of %s: %v", ev.Type, e, r)
		}
	}()
	l.fn(ev)
}
