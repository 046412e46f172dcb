// Package hilbert computes generalized Hilbert curves over arbitrary
// rectangular grids of integer coordinates.
//
// A curve is a total ordering of every cell of a height×width
// rectangle in which consecutive cells are always adjacent. Unlike
// the classic Hilbert curve, the grid need not be square, nor need its
// sides be powers of two. This makes a curve useful as a
// locality-preserving iteration order for spatial indexing,
// rasterization, or cache-friendly traversal of 2D data.
//
// Curves are built by recursively cutting the grid into nearly square
// regions. See [Build].
package hilbert

import (
	"errors"
	"fmt"
	"math"

	"deedles.dev/hilbert/geom"
)

var (
	// ErrInvalidDimensions is returned when a requested grid is empty
	// or too large to address.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrInvalidOrientation is returned for an Orientation other than
	// the four defined ones.
	ErrInvalidOrientation = errors.New("invalid orientation")

	// ErrUnsupportedType is returned for a curve Type that has no
	// implementation.
	ErrUnsupportedType = errors.New("unsupported curve type")
)

// Build returns a curve covering the height×width grid whose
// bottom-left cell is origin. The index of origin is ignored.
//
// The curve enters the grid at the entry corner of orientation. If the
// grid is larger than 2×2 and cannot be traversed from that corner to
// orientation's exit corner, the orientation sharing its entry corner
// is used instead, and the returned curve reports it.
//
// Build fails with ErrInvalidDimensions if height or width is zero or
// if the grid does not fit in the coordinate space. No points are
// allocated unless Build succeeds.
func Build(height, width uint32, origin Point, orientation Orientation, opts ...Option) (*Curve, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := Logger().With(
		"height", height,
		"width", width,
		"origin", origin,
		"orientation", orientation,
		"type", o.typ,
	)
	log.Debug("build curve")

	bounds, err := validate(height, width, origin, orientation, o.typ)
	if err != nil {
		log.Warn("rejected curve", "err", err)
		return nil, err
	}

	if (height > 2 || width > 2) && !orientation.Traversable(height, width) {
		log.Debug("exit corner unreachable, using partner orientation", "partner", orientation.partner())
		orientation = orientation.partner()
	}

	c := Curve{
		Type:        o.typ,
		Orientation: orientation,
		Bounds:      bounds,
		Points:      make([]Point, bounds.Area()),
	}
	f := filler{
		points:        c.Points,
		parallelDepth: o.parallelDepth,
	}
	f.fill(quasiSquare{orientation: orientation, bounds: bounds}, 0, 0)

	log.Debug("built curve", "points", len(c.Points))
	return &c, nil
}

func validate(height, width uint32, origin Point, orientation Orientation, typ Type) (geom.Rect[uint32], error) {
	if !typ.implemented() {
		return geom.Rect[uint32]{}, fmt.Errorf("%w: %v", ErrUnsupportedType, typ)
	}
	if !orientation.Valid() {
		return geom.Rect[uint32]{}, fmt.Errorf("%w: %v", ErrInvalidOrientation, orientation)
	}
	if (height == 0) || (width == 0) {
		return geom.Rect[uint32]{}, fmt.Errorf("%w: %dx%d grid is empty", ErrInvalidDimensions, height, width)
	}
	if (uint64(origin.X)+uint64(width) > math.MaxUint32) || (uint64(origin.Y)+uint64(height) > math.MaxUint32) {
		return geom.Rect[uint32]{}, fmt.Errorf("%w: %dx%d grid at %v exceeds coordinate space", ErrInvalidDimensions, height, width, origin)
	}
	if uint64(height)*uint64(width) > math.MaxInt {
		return geom.Rect[uint32]{}, fmt.Errorf("%w: %dx%d grid has too many cells", ErrInvalidDimensions, height, width)
	}

	return geom.Sized(origin.Coord(), geom.Pt(width, height)), nil
}
