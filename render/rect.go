package render

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 The cuttle authors

*/

import "fmt"

// Rect is an axis-aligned rectangle in region coordinates, given by its
// top-left corner plus extent. The y-axis grows downward.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// NewRect is a convenience constructor.
func NewRect(left, top, width, height float64) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.Left, r.Top, r.Width, r.Height)
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// IsEmpty is a predicate for rectangles without area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains tests if a point lies within the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}

// Intersect clamps r against o. Non-overlapping rectangles produce an
// empty result (zero width/height), never negative extents.
func (r Rect) Intersect(o Rect) Rect {
	left := max(r.Left, o.Left)
	top := max(r.Top, o.Top)
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	return Rect{
		Left:   left,
		Top:    top,
		Width:  max(0, right-left),
		Height: max(0, bottom-top),
	}
}

// Overlaps tests if two rectangles share any area.
func (r Rect) Overlaps(o Rect) bool {
	return !r.Intersect(o).IsEmpty()
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
