/*
Package fsm provides a small finite-state-machine framework driving
per-tool control flow.

States are named by strings and registered explicitly with up to five
callback roles: a `main` callback runs every tick while the state is
active and requests the next state through its return value; `can exit`
and `can enter` guard pending transitions; `exit` and `enter` are
side-effecting hooks around the actual switch.

A machine is driven by the host's event loop, one Update per tick. A
panic inside any callback is recovered at the dispatch boundary, logged
with state context, and treated as "no transition requested" — a tool
callback must never crash the host loop.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/
package fsm

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cuttle.fsm'
func tracer() tracing.Trace {
	return tracing.Select("cuttle.fsm")
}

// Callbacks bundles the substate callbacks of one named state. Every
// field is optional; a missing Main simply requests no transition.
type Callbacks struct {
	Main     func() string // runs every tick; returns the next state's name, or "" to remain
	Enter    func()        // side-effecting hook after switching to this state
	Exit     func()        // side-effecting hook before leaving this state
	CanEnter func() bool   // guard on entering; false cancels the pending transition
	CanExit  func() bool   // guard on leaving; false cancels the pending transition
}

// Machine is a per-object state machine. It is driven cooperatively from
// the single UI thread and is not safe for concurrent use.
type Machine struct {
	name    string
	states  map[string]Callbacks
	current string
	next    string
	pending bool
}

// New creates a machine. The start state becomes a pending transition
// which the first Update carries out, running the start state's guards
// and enter hook.
func New(name string, start string) *Machine {
	return &Machine{
		name:    name,
		states:  make(map[string]Callbacks),
		next:    start,
		pending: true,
	}
}

// Define registers the callbacks of a named state. Registering a state
// twice is an error.
func (m *Machine) Define(state string, cb Callbacks) error {
	if _, ok := m.states[state]; ok {
		return fmt.Errorf("fsm %q: state %q registered twice", m.name, state)
	}
	m.states[state] = cb
	return nil
}

// State returns the name of the active state, or "" before the first
// Update.
func (m *Machine) State() string {
	return m.current
}

// Update drives one tick. If a transition is pending, the current
// state's `can exit` and the target's `can enter` guards run first; a
// false from either drops the request and leaves the state unchanged.
// An admitted transition runs `exit`, switches, and runs `enter`. In any
// case the active state's `main` runs afterwards and its return value
// becomes the pending transition for the following tick.
//
// Update fails if the machine is asked to run or enter a state that was
// never defined.
func (m *Machine) Update() error {
	if m.pending && m.next != m.current {
		target := m.next
		if _, ok := m.states[target]; !ok {
			m.pending = false
			return fmt.Errorf("fsm %q: transition to undefined state %q", m.name, target)
		}
		switch {
		case !m.callGuard(m.current, "can exit", m.states[m.current].CanExit):
			tracer().Debugf("fsm %q: cannot exit %q", m.name, m.current)
			m.pending = false
		case !m.callGuard(target, "can enter", m.states[target].CanEnter):
			tracer().Debugf("fsm %q: cannot enter %q", m.name, target)
			m.pending = false
		default:
			tracer().Debugf("fsm %q: %q -> %q", m.name, m.current, target)
			m.callHook(m.current, "exit", m.states[m.current].Exit)
			m.current = target
			m.callHook(m.current, "enter", m.states[m.current].Enter)
			m.pending = false
		}
	}
	cb, ok := m.states[m.current]
	if !ok {
		return fmt.Errorf("fsm %q: active state %q is not defined", m.name, m.current)
	}
	if next := m.callMain(m.current, cb.Main); next != "" {
		m.next = next
		m.pending = true
	}
	return nil
}

// ForceSetState switches the active state immediately, bypassing both
// guards, and drops any pending transition. The exit hook of the old and
// the enter hook of the new state run only when requested.
func (m *Machine) ForceSetState(state string, callExit, callEnter bool) {
	tracer().Debugf("fsm %q: force state %q -> %q", m.name, m.current, state)
	if callExit {
		m.callHook(m.current, "exit", m.states[m.current].Exit)
	}
	m.current = state
	m.pending = false
	if callEnter {
		m.callHook(m.current, "enter", m.states[m.current].Enter)
	}
}

// --- Contained callback dispatch --------------------------------------

// Faults inside callbacks are recovered here, logged with state context,
// and degrade to neutral results: a faulted main requests no transition,
// a faulted guard does not veto.

func (m *Machine) callMain(state string, fn func() string) (next string) {
	if fn == nil {
		return ""
	}
	defer m.contain(state, "main")
	return fn()
}

func (m *Machine) callGuard(state, substate string, fn func() bool) (allow bool) {
	if fn == nil {
		return true
	}
	allow = true
	defer m.contain(state, substate)
	allow = fn()
	return
}

func (m *Machine) callHook(state, substate string, fn func()) {
	if fn == nil {
		return
	}
	defer m.contain(state, substate)
	fn()
}

func (m *Machine) contain(state, substate string) {
	if r := recover(); r != nil {
		tracer().Errorf("fsm %q: fault in state %q, substate %q: %v", m.name, state, substate, r)
	}
}
