/*
Package elemdbg produces a debugging dump of an element tree, one line
per element with its selector, visibility and box metrics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/
package elemdbg

import (
	"fmt"
	"io"

	"github.com/cuttlekit/cuttle/element"
	"github.com/xlab/treeprint"
)

// Dump writes an indented tree rendering of the element tree rooted at
// root, including each element's computed box metrics.
func Dump(w io.Writer, root *element.Element) error {
	if root == nil {
		return nil
	}
	tp := treeprint.NewWithRoot(label(root))
	addChildren(tp, root)
	_, err := io.WriteString(w, tp.String())
	return err
}

func addChildren(branch treeprint.Tree, e *element.Element) {
	for _, child := range e.Children() {
		if child.ChildCount() == 0 {
			branch.AddNode(label(child))
			continue
		}
		sub := branch.AddBranch(label(child))
		addChildren(sub, child)
	}
}

func label(e *element.Element) string {
	if !e.IsVisible() {
		return fmt.Sprintf("%s hidden", e.Selector())
	}
	box := e.Box()
	minW, minH := e.MinSize()
	maxW, maxH := e.MaxSize()
	return fmt.Sprintf("%s box=%s min=%gx%g max=%gx%g",
		e.Selector(), box, minW, minH, maxW, maxH)
}
