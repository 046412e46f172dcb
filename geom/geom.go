// Package geom provides utilities for manipulating integer
// rectangular geometry.
//
// It is patterned heavily after image.Rectangle and image.Point, but
// is generic over the coordinate type and uses a y-up convention:
// the bottom of a rectangle is its Min.Y side.
package geom

import "golang.org/x/exp/constraints"

// Integer is a constraint for the coordinate types that geom types
// and functions can handle.
type Integer interface {
	constraints.Integer
}

// Edges is a bitmask representing zero or more edges of a rectangle.
// A pair of adjacent edges identifies a corner.
type Edges uint32

const (
	EdgeNone   Edges = 0
	EdgeBottom Edges = 1 << (iota - 1)
	EdgeTop
	EdgeLeft
	EdgeRight
)

// Corners of a rectangle.
const (
	BottomLeft  = EdgeBottom | EdgeLeft
	BottomRight = EdgeBottom | EdgeRight
	TopLeft     = EdgeTop | EdgeLeft
	TopRight    = EdgeTop | EdgeRight
)

func (e Edges) String() string {
	switch e {
	case EdgeNone:
		return "none"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	}

	var s string
	for _, n := range []struct {
		e    Edges
		name string
	}{{EdgeBottom, "bottom"}, {EdgeTop, "top"}, {EdgeLeft, "left"}, {EdgeRight, "right"}} {
		if e&n.e == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += n.name
	}
	return s
}
