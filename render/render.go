/*
Package render holds the drawing-side collaborator interfaces of the
toolkit: the rectangle type shared by layout and drawing, the external
Renderer that issues the actual graphics calls, and the scissor stack
bounding draw and hit-test operations to nested visible regions.

The toolkit itself never touches a graphics API; it hands fully computed
boxes and styles to a Renderer supplied by the host.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/
package render

import (
	"errors"

	"github.com/cuttlekit/cuttle/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cuttle.render'
func tracer() tracing.Trace {
	return tracing.Select("cuttle.render")
}

// ErrStackDiscipline flags scissor-stack misuse: unbalanced push/pop,
// ending a stack that is not back at depth 1, or using a stack outside
// its start/end lifecycle. Violations indicate a bug in the drawing
// traversal and panic with an error wrapping this sentinel.
var ErrStackDiscipline = errors.New("scissor stack discipline violated")

// Renderer is the external drawing collaborator. The layout engine calls
// DrawBox once per visible element, in paint order; the renderer decides
// how margin, border and background of the computed style turn into
// graphics-API calls.
type Renderer interface {
	DrawBox(box Rect, computed style.ComputedStyle)
}
