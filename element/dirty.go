package element

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/

// Dirty marks the element as needing recalculation and propagates the
// request: with parent set, every ancestor up the chain is marked (but
// none of their other descendants); with children set, the whole
// subtree below is marked. While propagation is deferred (see
// DeferDirty) the requested directions are recorded and replayed when
// the deferral ends.
func (e *Element) Dirty(parent, children bool) {
	e.isDirty = true
	if e.deferDirty {
		e.deferredParent = e.deferredParent || parent
		e.deferredChildren = e.deferredChildren || children
		return
	}
	if parent {
		if p := e.Parent(); p != nil {
			p.Dirty(true, false)
		}
	}
	if children {
		for _, child := range e.Children() {
			child.Dirty(false, true)
		}
	}
}

// IsDirty tells if the element needs recalculation.
func (e *Element) IsDirty() bool {
	return e.isDirty
}

// DeferDirty runs a mutation batch with dirty propagation suppressed.
// Requested propagation directions are recorded during the batch and
// replayed once when it ends, so a bulk edit of a large subtree pays
// for propagation once instead of per mutation.
func (e *Element) DeferDirty(batch func()) {
	if e.deferDirty { // nested batches fold into the outermost one
		batch()
		return
	}
	e.deferDirty = true
	defer func() {
		e.deferDirty = false
		parent, children := e.deferredParent, e.deferredChildren
		e.deferredParent, e.deferredChildren = false, false
		if e.isDirty && (parent || children) {
			tracer().Debugf("replaying deferred dirtiness of %s (parent=%v children=%v)", e, parent, children)
			e.Dirty(parent, children)
		}
	}()
	batch()
}
