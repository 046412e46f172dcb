package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// hsplit splits a rectangle into two rectangles arranged
// horizontally, the left one being w cells wide.
func hsplit[T Integer](r Rect[T], w T) (left, right Rect[T]) {
	left = r.Resize(Pt(w, r.Dy()))
	right = r.Resize(Pt(r.Dx()-w, r.Dy())).Add(Pt(w, 0))
	return left, right
}

// vsplit splits a rectangle into two rectangles arranged vertically,
// the bottom one being h cells tall.
func vsplit[T Integer](r Rect[T], h T) (bottom, top Rect[T]) {
	bottom = r.Resize(Pt(r.Dx(), h))
	top = r.Resize(Pt(r.Dx(), r.Dy()-h)).Add(Pt(0, h))
	return bottom, top
}

// SplitX cuts r into a left part w cells wide and a right part
// holding the remaining columns. w must not exceed r.Dx().
func SplitX[T Integer](r Rect[T], w T) (left, right Rect[T]) {
	return hsplit(r, w)
}

// SplitY cuts r into a bottom part h cells tall and a top part
// holding the remaining rows. h must not exceed r.Dy().
func SplitY[T Integer](r Rect[T], h T) (bottom, top Rect[T]) {
	return vsplit(r, h)
}

// Quarter cuts r at w cells from its left edge and h cells from its
// bottom edge, producing four quadrants. In other words,
//
//	bl, br, tl, tr := Quarter(geom.Rt(0, 0, 5, 3), 2, 1)
//
// will produce
//
//	-----------
//	| tl | tr |   2 rows
//	-----------
//	| bl | br |   1 row
//	-----------
//	  2    3
//
// Quadrants are empty when a cut lies on an edge of r.
func Quarter[T Integer](r Rect[T], w, h T) (bl, br, tl, tr Rect[T]) {
	bottom, top := vsplit(r, h)
	bl, br = hsplit(bottom, w)
	tl, tr = hsplit(top, w)
	return bl, br, tl, tr
}

// Cuts yields the interior cut positions of a side n cells long, that
// is every k with 0 < k < n, exactly once each. If first is itself an
// interior position it is yielded before anything else. The remaining
// positions follow in order of their distance from the middle of the
// side, nearer to the Min edge first on ties.
func Cuts[T Integer](n, first T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n < 2 {
			return
		}
		if (first > 0) && (first < n) {
			if !yield(first) {
				return
			}
		}

		lo, hi := n/2, n-n/2
		for {
			more := false
			if lo > 0 {
				more = true
				if (lo != first) && !yield(lo) {
					return
				}
			}
			if hi < n {
				more = true
				if (hi != lo) && (hi != first) && !yield(hi) {
					return
				}
			}
			if !more {
				return
			}

			if lo > 0 {
				lo--
			}
			if hi < n {
				hi++
			}
		}
	}
}

// Cells yields every cell of r, row by row, starting from r.Min and
// moving right and then up.
func Cells[T Integer](r Rect[T]) iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if !yield(Pt(x, y)) {
					return
				}
			}
		}
	}
}

// CollectCells fills cells with the cells of r in the order produced
// by [Cells] and returns the number written. It stops early if cells
// is too short.
func CollectCells[T Integer](cells []Point[T], r Rect[T]) int {
	var n int
	for i, c := range xiter.Enumerate(Cells(r)) {
		if i >= len(cells) {
			break
		}
		cells[i] = c
		n++
	}
	return n
}
