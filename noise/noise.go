// Package noise defines the contracts shared by every noise kernel, module and pipeline.
//
// A Source is a pure function of its configuration and the coordinate it is
// evaluated at. Sources are immutable once built and safe for concurrent use.
package noise

// Source evaluates a scalar noise field in one to four dimensions.
type Source interface {
	Eval1(x float64) float64
	Eval2(x, y float64) float64
	Eval3(x, y, z float64) float64
	Eval4(x, y, z, w float64) float64
}

// Seeded is a Source whose output is keyed by a 64-bit seed and which can be
// evaluated under a different seed without being rebuilt.
type Seeded interface {
	Source
	Seed() int64
	Eval1Seeded(seed int64, x float64) float64
	Eval2Seeded(seed int64, x, y float64) float64
	Eval3Seeded(seed int64, x, y, z float64) float64
	Eval4Seeded(seed int64, x, y, z, w float64) float64
}

// Detailed is a Source that can also return a structured Result carrying
// auxiliary payload alongside the value.
type Detailed interface {
	Source
	Eval1Result(x float64) Result
	Eval2Result(x, y float64) Result
	Eval3Result(x, y, z float64) Result
	Eval4Result(x, y, z, w float64) Result
}

// Dimensional is implemented by sources that cannot be evaluated below a
// minimum dimensionality. Sources that do not implement it support 1D to 4D.
type Dimensional interface {
	MinDimension() int
}

// Result is the structured output of a Detailed source.
type Result struct {
	// Value is the current value; pipeline modifiers overwrite it.
	Value float64
	// Unmodified is the value the kernel produced before any modifier ran.
	Unmodified float64
	// Closest is the nearest feature point for cellular kernels, nil otherwise.
	Closest []float64
}

// NewResult returns a Result whose value and unmodified value are both v.
func NewResult(v float64, closest []float64) Result {
	return Result{Value: v, Unmodified: v, Closest: closest}
}

// Eval evaluates src at the coordinate c, dispatching on len(c).
func Eval(src Source, c []float64) float64 {
	switch len(c) {
	case 1:
		return src.Eval1(c[0])
	case 2:
		return src.Eval2(c[0], c[1])
	case 3:
		return src.Eval3(c[0], c[1], c[2])
	case 4:
		return src.Eval4(c[0], c[1], c[2], c[3])
	}
	panic(&UnsupportedDimensionError{Source: "noise.Eval", Dimension: len(c)})
}
