package hilbert

import (
	"cmp"
	"fmt"

	"deedles.dev/hilbert/geom"
)

// Point is a grid coordinate together with its position along a
// curve.
//
// Two points are equal, in the sense of ==, only if all three fields
// match. Ordering, as defined by Compare and Less, considers Index
// alone, so distinct cells that share an index compare as equal
// without being equal.
type Point struct {
	X, Y  uint32
	Index uint64
}

// Pt returns the point (x, y) with an index of zero.
func Pt(x, y uint32) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Coord returns the coordinate of p without its index.
func (p Point) Coord() geom.Point[uint32] {
	return geom.Pt(p.X, p.Y)
}

// Compare returns -1, 0, or 1 depending on whether p comes before,
// at the same position as, or after q along a curve.
func (p Point) Compare(q Point) int {
	return cmp.Compare(p.Index, q.Index)
}

// Less reports whether p comes before q along a curve.
func (p Point) Less(q Point) bool {
	return p.Index < q.Index
}

// Add returns p translated by q. The result keeps p's index.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Index: p.Index}
}

// Sub returns p translated by -q. The result keeps p's index.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Index: p.Index}
}

// AddN returns p with n added to both coordinates.
func (p Point) AddN(n uint32) Point {
	return Point{X: p.X + n, Y: p.Y + n, Index: p.Index}
}

// SubN returns p with n subtracted from both coordinates.
func (p Point) SubN(n uint32) Point {
	return Point{X: p.X - n, Y: p.Y - n, Index: p.Index}
}
