package hilbert

import (
	"fmt"
	"sync"

	"deedles.dev/hilbert/geom"
	"deedles.dev/xiter"
)

// quadrant names one of the four parts produced by geom.Quarter.
type quadrant uint8

const (
	bottomLeft quadrant = iota
	bottomRight
	topLeft
	topRight
)

type transition struct {
	quad        quadrant
	orientation Orientation
}

// transitions lists, for each orientation, the quadrants of a region
// with the orientations they are given, in construction order.
// Quadrants are filled in the reverse of this order.
//
//	A -> [D, A, A, B]
//	B -> [C, B, B, A]
//	C -> [B, C, C, D]
//	D -> [A, D, D, C]
var transitions = [4][4]transition{
	Up:    {{bottomRight, Right}, {topRight, Up}, {topLeft, Up}, {bottomLeft, Left}},
	Left:  {{topLeft, Down}, {topRight, Left}, {bottomRight, Left}, {bottomLeft, Up}},
	Down:  {{topLeft, Left}, {bottomLeft, Down}, {bottomRight, Down}, {topRight, Right}},
	Right: {{bottomRight, Up}, {bottomLeft, Right}, {topLeft, Right}, {topRight, Down}},
}

// squareLayouts holds the order in which each orientation visits the
// cells of a 2×2 region, as offsets from the region's origin.
var squareLayouts = [4][4]geom.Point[uint32]{
	Up:    {{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}},
	Left:  {{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
	Down:  {{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 1}},
	Right: {{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}},
}

// quasiSquare is a rectangular region of the grid that is still to
// be filled.
type quasiSquare struct {
	orientation Orientation
	bounds      geom.Rect[uint32]
}

func (q quasiSquare) String() string {
	return fmt.Sprintf("%v %v", q.orientation, q.bounds)
}

func (q quasiSquare) traversable() bool {
	return q.orientation.Traversable(q.bounds.Dy(), q.bounds.Dx())
}

// halve returns the length of the Min side part when a side n cells
// long is cut in two. Regions entered at their origin make the Min
// side part even where possible, the others the Max side part.
func (q quasiSquare) halve(n uint32) uint32 {
	first, second := n/2, n-n/2
	if q.orientation.fromOrigin() {
		if first%2 == 1 {
			return second
		}
		return first
	}
	if second%2 == 1 {
		return second
	}
	return first
}

// split divides q into the regions that fill it, in the order they
// are to be filled. It returns the regions and how many of them are
// in use, either two or four.
//
// The preferred split halves both sides of q and assigns orientations
// according to transitions. If that would leave a quadrant that
// cannot be traversed between its entry and exit corners, other cut
// positions are tried, closest to the middle first. Failing that, q is
// cut in two along the direction of travel, both halves keeping q's
// orientation. Regions that are long in that direction try the latter
// first.
func (q quasiSquare) split() ([4]quasiSquare, int) {
	h, w := q.bounds.Dy(), q.bounds.Dx()
	h1, w1 := q.halve(h), q.halve(w)

	along, across := uint64(w), uint64(h)
	if !q.orientation.horizontal() {
		along, across = across, along
	}
	if along > 2*across {
		if parts, ok := q.stripes(h1, w1); ok {
			return parts, 2
		}
	}

	if parts, ok := q.quadrants(h1, w1); ok {
		return parts, 4
	}
	if parts, ok := q.stripes(h1, w1); ok {
		return parts, 2
	}

	panic(fmt.Errorf("no traversable split of %v", q))
}

func (q quasiSquare) quadrants(h1, w1 uint32) (parts [4]quasiSquare, ok bool) {
	for dy := range geom.Cuts(q.bounds.Dy(), h1) {
		for dx := range geom.Cuts(q.bounds.Dx(), w1) {
			parts, ok = q.quarter(dx, dy)
			if ok {
				return parts, true
			}
		}
	}
	return parts, false
}

// quarter cuts q at (dx, dy) and reports whether every quadrant is
// traversable with the orientation it is assigned.
func (q quasiSquare) quarter(dx, dy uint32) (parts [4]quasiSquare, ok bool) {
	var quads [4]geom.Rect[uint32]
	quads[bottomLeft], quads[bottomRight], quads[topLeft], quads[topRight] = geom.Quarter(q.bounds, dx, dy)

	table := &transitions[q.orientation]
	for i, t := range table {
		part := quasiSquare{orientation: t.orientation, bounds: quads[t.quad]}
		if !part.traversable() {
			return parts, false
		}
		parts[len(table)-1-i] = part
	}
	return parts, true
}

func (q quasiSquare) stripes(h1, w1 uint32) (parts [4]quasiSquare, ok bool) {
	n, first := q.bounds.Dx(), w1
	cut := geom.SplitX[uint32]
	if !q.orientation.horizontal() {
		n, first = q.bounds.Dy(), h1
		cut = geom.SplitY[uint32]
	}

	for k := range geom.Cuts(n, first) {
		lo, hi := cut(q.bounds, k)
		a := quasiSquare{orientation: q.orientation, bounds: lo}
		b := quasiSquare{orientation: q.orientation, bounds: hi}
		if !a.traversable() || !b.traversable() {
			continue
		}

		if !q.orientation.fromOrigin() {
			a, b = b, a
		}
		parts[0], parts[1] = a, b
		return parts, true
	}
	return parts, false
}

// filler writes the points of a curve into a shared buffer. Every
// call to fill owns the index range of the region it is given, so
// concurrent calls on sibling regions never touch the same element.
type filler struct {
	points        []Point
	parallelDepth int
}

func (f *filler) set(index uint64, c geom.Point[uint32]) {
	f.points[index] = Point{X: c.X, Y: c.Y, Index: index}
}

// fill writes the points of q, starting at the given index.
func (f *filler) fill(q quasiSquare, index uint64, depth int) {
	h, w := q.bounds.Dy(), q.bounds.Dx()
	switch {
	case (h == 1) && (w == 1):
		f.set(index, q.bounds.Min)

	case (h == 1) || (w == 1):
		f.strip(q, index)

	case (h == 2) && (w == 2):
		for i, off := range squareLayouts[q.orientation] {
			f.set(index+uint64(i), q.bounds.Min.Add(off))
		}

	default:
		f.partition(q, index, depth)
	}
}

// strip fills a region that is a single row or column. Regions
// entered at their origin run away from it, the others run towards
// it.
func (f *filler) strip(q quasiSquare, index uint64) {
	last := index + q.bounds.Area() - 1
	for i, c := range xiter.Enumerate(geom.Cells(q.bounds)) {
		if q.orientation.fromOrigin() {
			f.set(index+uint64(i), c)
			continue
		}
		f.set(last-uint64(i), c)
	}
}

func (f *filler) partition(q quasiSquare, index uint64, depth int) {
	parts, n := q.split()
	if depth >= f.parallelDepth {
		for _, part := range parts[:n] {
			f.fill(part, index, depth+1)
			index += part.bounds.Area()
		}
		return
	}

	var wg sync.WaitGroup
	for _, part := range parts[:n] {
		wg.Add(1)
		go func(index uint64) {
			defer wg.Done()
			f.fill(part, index, depth+1)
		}(index)
		index += part.bounds.Area()
	}
	wg.Wait()
}
