package hilbert_test

import (
	"testing"

	"deedles.dev/hilbert"
	"deedles.dev/hilbert/geom"
	"github.com/stretchr/testify/require"
)

func TestOrientationCorners(t *testing.T) {
	tests := []struct {
		o           hilbert.Orientation
		entry, exit geom.Edges
		str         string
	}{
		{hilbert.Up, geom.BottomLeft, geom.BottomRight, "A(↑)"},
		{hilbert.Left, geom.BottomLeft, geom.TopLeft, "B(←)"},
		{hilbert.Down, geom.TopRight, geom.TopLeft, "C(↓)"},
		{hilbert.Right, geom.TopRight, geom.BottomRight, "D(→)"},
	}

	for _, test := range tests {
		require.True(t, test.o.Valid())
		require.Equal(t, test.entry, test.o.Entry(), test.str)
		require.Equal(t, test.exit, test.o.Exit(), test.str)
		require.Equal(t, test.str, test.o.String())
	}

	require.False(t, hilbert.Orientation(4).Valid())
	require.Equal(t, "Orientation(4)", hilbert.Orientation(4).String())
}

func TestOrientationTraversable(t *testing.T) {
	tests := []struct {
		o             hilbert.Orientation
		height, width uint32
		ok            bool
	}{
		{hilbert.Up, 1, 1, true},
		{hilbert.Up, 1, 7, true},
		{hilbert.Up, 7, 1, false},
		{hilbert.Up, 2, 3, false},
		{hilbert.Up, 3, 3, true},
		{hilbert.Up, 3, 4, true},
		{hilbert.Down, 4, 6, true},
		{hilbert.Down, 4, 5, false},
		{hilbert.Left, 1, 7, false},
		{hilbert.Left, 7, 1, true},
		{hilbert.Left, 3, 2, false},
		{hilbert.Left, 2, 3, true},
		{hilbert.Right, 5, 5, true},
		{hilbert.Right, 5, 4, false},
	}

	for _, test := range tests {
		require.Equal(t, test.ok, test.o.Traversable(test.height, test.width), "%v %vx%v", test.o, test.height, test.width)
	}
}
