package functions

import "math"

// Combiner merges two scalar values into one.
type Combiner int

const (
	Add Combiner = iota
	Multiply
	Max
	Min
	Pow
	ExponentialSmoothMin
	PowerSmoothMin
	PolynomialSmoothMin
)

var combinerNames = []string{
	"add", "multiply", "max", "min", "pow",
	"exponential_smooth_min", "power_smooth_min", "polynomial_smooth_min",
}

const (
	expSmoothK  = 32.0
	powSmoothK  = 8.0
	polySmoothK = 0.1
)

// Apply combines a and b.
func (c Combiner) Apply(a, b float64) float64 {
	switch c {
	case Multiply:
		return a * b
	case Max:
		return math.Max(a, b)
	case Min:
		return math.Min(a, b)
	case Pow:
		return math.Pow(a, b)
	case ExponentialSmoothMin:
		res := math.Exp2(-expSmoothK*a) + math.Exp2(-expSmoothK*b)
		return -math.Log2(res) / expSmoothK
	case PowerSmoothMin:
		a = math.Pow(a, powSmoothK)
		b = math.Pow(b, powSmoothK)
		return math.Pow((a*b)/(a+b), 1.0/powSmoothK)
	case PolynomialSmoothMin:
		h := math.Max(polySmoothK-math.Abs(a-b), 0.0) / polySmoothK
		return math.Min(a, b) - h*h*polySmoothK*(1.0/4.0)
	}
	return a + b
}

func (c Combiner) String() string { return nameOf(combinerNames, int(c)) }

// ParseCombiner resolves a combiner name.
func ParseCombiner(s string) (Combiner, error) {
	i, err := parse("combiner", combinerNames, s)
	return Combiner(i), err
}
