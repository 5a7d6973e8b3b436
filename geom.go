package arcade

import (
	"fmt"
	"image"
)

// Rect is an axis-aligned rectangle with float64 coordinates. The coordinate
// system has its origin at the top-left, with Y increasing downward.
// Sub-pixel positions are preserved everywhere in arcade; truncation to
// integer pixels happens only at the backend boundary (ImageRect).
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether other lies fully within r.
// Rectangles sharing an edge are considered contained.
func (r Rect) Contains(other Rect) bool {
	return other.X >= r.X && other.X+other.Width <= r.X+r.Width &&
		other.Y >= r.Y && other.Y+other.Height <= r.Y+r.Height
}

// Overlaps reports whether r and other have a non-empty intersection.
// Adjacent rectangles (sharing only an edge) do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// MoveInside returns a copy of r translated the minimal distance needed to
// lie within parent. The second return value is false when r is wider or
// taller than parent, in which case no placement exists.
func (r Rect) MoveInside(parent Rect) (Rect, bool) {
	if r.Width > parent.Width || r.Height > parent.Height {
		return Rect{}, false
	}

	moved := r
	switch {
	case r.X < parent.X:
		moved.X = parent.X
	case r.X+r.Width >= parent.X+parent.Width:
		moved.X = parent.X + parent.Width - r.Width
	}
	switch {
	case r.Y < parent.Y:
		moved.Y = parent.Y
	case r.Y+r.Height >= parent.Y+parent.Height:
		moved.Y = parent.Y + parent.Height - r.Height
	}
	return moved, true
}

// ImageRect converts r to the backend's integer pixel rectangle. Fractional
// coordinates truncate toward zero. Panics on negative width or height —
// that is a programming error, not a drawable rectangle.
func (r Rect) ImageRect() image.Rectangle {
	if r.Width < 0 || r.Height < 0 {
		panic(fmt.Sprintf("arcade: negative rect dimensions %gx%g", r.Width, r.Height))
	}
	x0, y0 := int(r.X), int(r.Y)
	return image.Rect(x0, y0, x0+int(r.Width), y0+int(r.Height))
}
