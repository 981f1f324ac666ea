package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/

import "fmt"

// ScissorStack manages nested clip rectangles during a draw traversal.
// The top of the stack is the active clip.
//
// One stack belongs to one document; it is not process-global state. Its
// lifecycle is strict: Start seeds the stack with the region rectangle,
// then Push and Pop must balance exactly, and End asserts the stack has
// returned to depth 1. Misuse indicates a traversal bug and panics with
// ErrStackDiscipline, it is never silently corrected.
type ScissorStack struct {
	stack   []Rect
	started bool
}

// NewScissorStack creates an unstarted scissor stack.
func NewScissorStack() *ScissorStack {
	return &ScissorStack{}
}

func (s *ScissorStack) violation(format string, args ...interface{}) {
	panic(fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrStackDiscipline))
}

// Start begins a draw traversal with the given region rectangle as the
// outermost clip. Starting a started stack is a discipline violation.
func (s *ScissorStack) Start(region Rect) {
	if s.started {
		s.violation("attempt to start a started scissor stack")
	}
	s.stack = append(s.stack[:0], region)
	s.started = true
	tracer().Debugf("scissor: start with region %s", region)
}

// End finishes a draw traversal. Ending an unstarted stack, or one that
// has not been popped back to depth 1, is a discipline violation.
func (s *ScissorStack) End() {
	if !s.started {
		s.violation("attempt to end a non-started scissor stack")
	}
	if len(s.stack) != 1 {
		s.violation("attempt to end a scissor stack at depth %d", len(s.stack))
	}
	s.started = false
}

// Push makes r the active clip. With clamp set, r is intersected with
// the current top first; a node's clip can then never exceed its
// parent's. Unclamped pushes are for overlays that deliberately escape
// the parent clip.
func (s *ScissorStack) Push(r Rect, clamp bool) {
	if !s.started {
		s.violation("attempt to push to a non-started scissor stack")
	}
	if clamp {
		r = r.Intersect(s.Current())
	}
	s.stack = append(s.stack, r)
}

// Pop restores the previous clip. Popping the region rectangle itself is
// a discipline violation.
func (s *ScissorStack) Pop() {
	if !s.started {
		s.violation("attempt to pop from a non-started scissor stack")
	}
	if len(s.stack) <= 1 {
		s.violation("attempt to pop from an empty scissor stack")
	}
	s.stack = s.stack[:len(s.stack)-1]
}

// Current returns the active clip rectangle.
func (s *ScissorStack) Current() Rect {
	if !s.started || len(s.stack) == 0 {
		s.violation("attempt to read a non-started scissor stack")
	}
	return s.stack[len(s.stack)-1]
}

// Depth returns the current nesting depth; a started stack has depth 1
// before any push.
func (s *ScissorStack) Depth() int {
	return len(s.stack)
}

// IsStarted is a predicate for an active start/end lifecycle.
func (s *ScissorStack) IsStarted() bool {
	return s.started
}

// IsVisible tells if the active clip has any area at all.
func (s *ScissorStack) IsVisible() bool {
	return !s.Current().IsEmpty()
}

// IsBoxVisible tells if any part of the given box lies within the active
// clip. Draw traversals may use this to cull subtrees; a conservative
// caller must make sure culling never skips a visible node.
func (s *ScissorStack) IsBoxVisible(r Rect) bool {
	return s.Current().Overlaps(r)
}
