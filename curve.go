package hilbert

import (
	"iter"
	"slices"

	"deedles.dev/hilbert/geom"
	"deedles.dev/xiter"
)

// Curve is a space-filling curve over a rectangular grid.
type Curve struct {
	// Type is the construction used to build the curve.
	Type Type

	// Orientation is the orientation the curve was built with. It
	// differs from the requested one if Build had to fall back to the
	// orientation's partner.
	Orientation Orientation

	// Bounds is the grid covered by the curve.
	Bounds geom.Rect[uint32]

	// Points holds every cell of Bounds exactly once, in curve order.
	// The Index of each point equals its position in the slice.
	Points []Point
}

// Len returns the number of points on the curve.
func (c *Curve) Len() int {
	return len(c.Points)
}

// At returns the point at index i.
func (c *Curve) At(i int) Point {
	return c.Points[i]
}

// All yields the index and point of every point on the curve, in
// order.
func (c *Curve) All() iter.Seq2[int, Point] {
	return xiter.Enumerate(slices.Values(c.Points))
}

// Coords yields the coordinates of the curve in order.
func (c *Curve) Coords() iter.Seq[geom.Point[uint32]] {
	return func(yield func(geom.Point[uint32]) bool) {
		for _, p := range c.Points {
			if !yield(p.Coord()) {
				return
			}
		}
	}
}

// Sorted reports whether c.Points is in curve order. This is always
// true of a curve returned by Build unless Points has been reordered.
func (c *Curve) Sorted() bool {
	return slices.IsSortedFunc(c.Points, Point.Compare)
}
