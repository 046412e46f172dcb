package hilbert

import (
	"fmt"

	"deedles.dev/hilbert/geom"
)

// Orientation determines which corners of a region a curve enters
// and leaves through, and with it how the region's sub-regions are
// arranged.
//
//	Orientation  Entry         Exit
//	Up    (A)    bottom-left   bottom-right
//	Left  (B)    bottom-left   top-left
//	Down  (C)    top-right     top-left
//	Right (D)    top-right     bottom-right
//
// The bottom of a region is the row containing its origin.
type Orientation uint8

const (
	Up Orientation = iota
	Left
	Down
	Right
)

func (o Orientation) String() string {
	switch o {
	case Up:
		return "A(↑)"
	case Left:
		return "B(←)"
	case Down:
		return "C(↓)"
	case Right:
		return "D(→)"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Valid reports whether o is one of the four defined orientations.
func (o Orientation) Valid() bool {
	return o <= Right
}

// Entry returns the corner of a region at which a curve with this
// orientation starts.
func (o Orientation) Entry() geom.Edges {
	if o.fromOrigin() {
		return geom.BottomLeft
	}
	return geom.TopRight
}

// Exit returns the corner of a region at which a curve with this
// orientation ends.
func (o Orientation) Exit() geom.Edges {
	switch o {
	case Up, Right:
		return geom.BottomRight
	default:
		return geom.TopLeft
	}
}

// Traversable reports whether a curve with this orientation can
// visit every cell of a height×width region, moving one cell at a
// time, while starting at the entry corner and finishing at the exit
// corner.
func (o Orientation) Traversable(height, width uint32) bool {
	if o.horizontal() {
		if width == 1 {
			return height == 1
		}
		return (width%2 == 0) || (height%2 == 1)
	}

	if height == 1 {
		return width == 1
	}
	return (height%2 == 0) || (width%2 == 1)
}

// partner returns the orientation sharing o's entry corner.
func (o Orientation) partner() Orientation {
	switch o {
	case Up:
		return Left
	case Left:
		return Up
	case Down:
		return Right
	default:
		return Down
	}
}

// fromOrigin reports whether o enters a region at its origin.
func (o Orientation) fromOrigin() bool {
	return (o == Up) || (o == Left)
}

// horizontal reports whether o's entry and exit corners share a row.
func (o Orientation) horizontal() bool {
	return (o == Up) || (o == Down)
}
