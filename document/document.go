/*
Package document ties the toolkit together: a Document owns the body
element tree, the document stylesheet, the renderer collaborator and
the scissor stack, and provides the per-frame entry points (Update,
Render) plus input routing with hover/active/focus pseudo-class
management.

A Document replaces any notion of process-wide UI state: one context
object per document, passed explicitly, with no hidden globals.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/
package document

import (
	"fmt"
	"os"

	"github.com/cuttlekit/cuttle/element"
	"github.com/cuttlekit/cuttle/render"
	"github.com/cuttlekit/cuttle/style"
	"github.com/cuttlekit/cuttle/style/cssparse"
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'cuttle.document'
func tracer() tracing.Trace {
	return tracing.Select("cuttle.document")
}

// Document is the per-document context of the toolkit. It is driven
// cooperatively from the host's single UI thread: the host calls Update
// once per frame or event, then Render, and feeds input through the
// Mouse*/Key* entry points. Nothing in a Document synchronizes.
type Document struct {
	body     *element.Element
	styling  *style.Styling
	renderer render.Renderer
	scissor  *render.ScissorStack

	width, height float64

	underMouse *element.Element
	active     *element.Element
	focused    *element.Element
}

// New creates an empty document with a `body` root element.
func New(renderer render.Renderer) *Document {
	return &Document{
		body:     element.New("body", nil),
		styling:  style.NewStyling(),
		renderer: renderer,
		scissor:  render.NewScissorStack(),
	}
}

// Body returns the root element of the document tree.
func (d *Document) Body() *element.Element {
	return d.body
}

// Styling returns the document stylesheet.
func (d *Document) Styling() *style.Styling {
	return d.styling
}

// ScissorStack returns the clip stack used by Render.
func (d *Document) ScissorStack() *render.ScissorStack {
	return d.scissor
}

// --- Stylesheet loading -----------------------------------------------

// LoadStylesheet reads and parses a stylesheet file, replacing the
// document stylesheet. A syntax error is surfaced to the caller and
// leaves the previous stylesheet in place; a sheet is never partially
// loaded.
func (d *Document) LoadStylesheet(path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot load stylesheet: %w", err)
	}
	if err := d.SetStylesheetSource(string(text)); err != nil {
		return fmt.Errorf("stylesheet %s: %w", path, err)
	}
	tracer().Infof("loaded stylesheet %s", path)
	return nil
}

// SetStylesheetSource parses stylesheet text and replaces the document
// stylesheet, restyling the whole tree.
func (d *Document) SetStylesheetSource(text string) error {
	rules, err := cssparse.Parse(text)
	if err != nil {
		return err
	}
	d.styling.Replace(rules)
	d.body.Dirty(false, true)
	return nil
}

// AppendStylesheetSource parses stylesheet text and appends its rules
// after the existing ones, giving them the highest priority under
// last-wins cascading.
func (d *Document) AppendStylesheetSource(text string) error {
	rules, err := cssparse.Parse(text)
	if err != nil {
		return err
	}
	d.styling.AppendRules(rules...)
	d.body.Dirty(false, true)
	return nil
}

// --- Frame entry points -----------------------------------------------

// SetViewSize sets the document's region size in pixels. A size change
// dirties the tree for relayout.
func (d *Document) SetViewSize(width, height float64) {
	if d.width == width && d.height == height {
		return
	}
	d.width, d.height = width, height
	d.body.Dirty(false, true)
}

// Update runs the two layout passes if anything is dirty: bottom-up
// size recalculation over the dirty parts of the tree, then top-down
// positioning starting from the full region rectangle.
func (d *Document) Update() error {
	if !d.body.IsDirty() {
		return nil
	}
	if err := d.body.Recalculate(d.styling); err != nil {
		return err
	}
	d.body.Position(render.NewRect(0, 0, d.width, d.height))
	return nil
}

// Render draws the tree through the renderer, bounded by the scissor
// stack. The stack is started on the region rectangle, must balance
// during the traversal, and is ended afterwards.
func (d *Document) Render() {
	d.scissor.Start(render.NewRect(0, 0, d.width, d.height))
	defer d.scissor.End()
	d.body.Draw(d.scissor, d.renderer)
}

// ElementUnderPoint hit-tests the tree with the boxes of the last
// Update.
func (d *Document) ElementUnderPoint(x, y float64) *element.Element {
	return d.body.ElementUnderPoint(x, y)
}
