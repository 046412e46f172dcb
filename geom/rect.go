package geom

import "fmt"

// Point is an X, Y coordinate pair.
type Point[T Integer] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Integer](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// In reports whether p is in r.
func (p Point[T]) In(r Rect[T]) bool {
	return (r.Min.X <= p.X) && (p.X < r.Max.X) &&
		(r.Min.Y <= p.Y) && (p.Y < r.Max.Y)
}

// Rect is a half-open rectangle of cells. It contains the cells whose
// coordinates satisfy Min.X <= X < Max.X and Min.Y <= Y < Max.Y.
type Rect[T Integer] struct {
	Min, Max Point[T]
}

// Rt is shorthand for Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}. The
// returned rectangle has the minimum and maximum coordinates swapped
// if necessary so that it is well-formed.
func Rt[T Integer](x0, y0, x1, y1 T) Rect[T] {
	return Rect[T]{Min: Pt(x0, y0), Max: Pt(x1, y1)}.Canon()
}

// Sized returns the rectangle with its Min corner at origin and the given
// size.
func Sized[T Integer](origin, size Point[T]) Rect[T] {
	return Rect[T]{Min: origin, Max: origin.Add(size)}
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("%v-%v", r.Min, r.Max)
}

// Canon returns the canonical version of r. The returned rectangle
// has minimum and maximum coordinates swapped if necessary so that
// it is well-formed.
func (r Rect[T]) Canon() Rect[T] {
	if r.Max.X < r.Min.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Dx returns r's width.
func (r Rect[T]) Dx() T {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r Rect[T]) Dy() T {
	return r.Max.Y - r.Min.Y
}

// Size returns r's width and height as a point.
func (r Rect[T]) Size() Point[T] {
	return Pt(r.Dx(), r.Dy())
}

// Area returns the number of cells in r. It is computed in uint64 so
// that it cannot overflow for 32-bit coordinates.
func (r Rect[T]) Area() uint64 {
	if r.Empty() {
		return 0
	}
	return uint64(r.Dx()) * uint64(r.Dy())
}

// Empty reports whether r contains no cells.
func (r Rect[T]) Empty() bool {
	return (r.Min.X >= r.Max.X) || (r.Min.Y >= r.Max.Y)
}

// Add returns r translated by p.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

// Resize returns r with its Min corner unchanged and the given size.
func (r Rect[T]) Resize(size Point[T]) Rect[T] {
	return Sized(r.Min, size)
}

// Corner returns the cell of r that sits in the corner identified by
// e. Bits of e that do not name an edge pick the Min side. The result
// is meaningless if r is empty.
func (r Rect[T]) Corner(e Edges) Point[T] {
	p := r.Min
	if e&EdgeRight != 0 {
		p.X = r.Max.X - 1
	}
	if e&EdgeTop != 0 {
		p.Y = r.Max.Y - 1
	}
	return p
}
