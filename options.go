package hilbert

// Option configures a call to Build.
//
// Example:
//
//	// Fill the first two levels of the recursion concurrently.
//	c, err := hilbert.Build(1024, 768, hilbert.Pt(0, 0), hilbert.Up,
//		hilbert.WithParallelDepth(2))
type Option func(*options)

type options struct {
	typ           Type
	parallelDepth int
}

func defaultOptions() options {
	return options{
		typ: QuasiSquare,
	}
}

// WithType selects the curve construction. The default is
// QuasiSquare.
func WithType(t Type) Option {
	return func(o *options) {
		o.typ = t
	}
}

// WithParallelDepth fills the sub-regions of every region less than
// depth levels below the full grid on separate goroutines. Sibling
// regions write disjoint parts of the result, so the output is the
// same as that of a sequential build. A depth of zero or less, the
// default, builds sequentially.
func WithParallelDepth(depth int) Option {
	return func(o *options) {
		o.parallelDepth = depth
	}
}
