package hilbert_test

import (
	"testing"

	"deedles.dev/hilbert"
	"deedles.dev/hilbert/geom"
	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func coords(pts ...[2]uint32) []geom.Point[uint32] {
	s := make([]geom.Point[uint32], 0, len(pts))
	for _, p := range pts {
		s = append(s, geom.Pt(p[0], p[1]))
	}
	return s
}

func curveCoords(c *hilbert.Curve) []geom.Point[uint32] {
	s := make([]geom.Point[uint32], 0, c.Len())
	for p := range c.Coords() {
		s = append(s, p)
	}
	return s
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}

func adjacent(p, q hilbert.Point) bool {
	return absDiff(p.X, q.X)+absDiff(p.Y, q.Y) == 1
}

// checkCurve fails t unless c visits every cell of the height×width
// grid at origin exactly once, with consecutive indices and adjacent
// consecutive cells.
func checkCurve(t *testing.T, c *hilbert.Curve, height, width uint32, origin hilbert.Point) {
	t.Helper()

	bounds := geom.Sized(origin.Coord(), geom.Pt(width, height))
	if c.Bounds != bounds {
		t.Fatalf("bounds: expected %v, got %v", bounds, c.Bounds)
	}
	if c.Len() != int(bounds.Area()) {
		t.Fatalf("length: expected %v, got %v", bounds.Area(), c.Len())
	}

	seen := make(map[geom.Point[uint32]]struct{}, c.Len())
	for i, p := range c.All() {
		if p.Index != uint64(i) {
			t.Fatalf("point %v at position %v has index %v", p, i, p.Index)
		}
		if !p.Coord().In(bounds) {
			t.Fatalf("point %v is outside of %v", p, bounds)
		}
		if _, ok := seen[p.Coord()]; ok {
			t.Fatalf("point %v visited twice", p)
		}
		seen[p.Coord()] = struct{}{}

		if (i > 0) && !adjacent(c.At(i-1), p) {
			t.Fatalf("points %v and %v at %v are not adjacent", c.At(i-1), p, i)
		}
	}
}
