package functions

// ReturnDistance reduces a Worley distance stack, nearest first, to a value.
type ReturnDistance int

const (
	Distance0 ReturnDistance = iota
	Distance1
	DistanceAdd
	DistanceSub
	DistanceMul
)

var returnDistanceNames = []string{"distance_0", "distance_1", "add", "sub", "mul"}

// MinDepth is the shortest distance stack Apply can read.
func (r ReturnDistance) MinDepth() int {
	if r == Distance0 {
		return 1
	}
	return 2
}

// Apply reduces d, which must hold at least MinDepth entries.
func (r ReturnDistance) Apply(d []float64) float64 {
	switch r {
	case Distance1:
		return d[1]
	case DistanceAdd:
		return d[0] + d[1]
	case DistanceSub:
		return d[1] - d[0]
	case DistanceMul:
		return d[0] * d[1]
	}
	return d[0]
}

func (r ReturnDistance) String() string { return nameOf(returnDistanceNames, int(r)) }

// ParseReturnDistance resolves a return function name.
func ParseReturnDistance(s string) (ReturnDistance, error) {
	i, err := parse("return_distance", returnDistanceNames, s)
	return ReturnDistance(i), err
}
