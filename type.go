package hilbert

import "fmt"

// Type selects the construction used to build a curve. Only
// QuasiSquare is implemented. Other values are reserved for future
// variants and are rejected by Build.
type Type int

const (
	// QuasiSquare recursively quarters the grid into nearly square
	// regions, falling back to halving elongated regions.
	QuasiSquare Type = iota
)

func (t Type) String() string {
	switch t {
	case QuasiSquare:
		return "QuasiSquare"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

func (t Type) implemented() bool {
	return t == QuasiSquare
}
