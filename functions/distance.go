package functions

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pthm-cable/lattice/noise"
)

// Distance measures the separation of two points of equal dimension.
type Distance interface {
	Distance1(x0, x1 float64) float64
	Distance2(x0, y0, x1, y1 float64) float64
	Distance3(x0, y0, z0, x1, y1, z1 float64) float64
	Distance4(x0, y0, z0, w0, x1, y1, z1, w1 float64) float64
}

// Metric is one of the fixed distance metrics.
type Metric int

const (
	Euclidean Metric = iota
	EuclideanSquared
	Manhattan
	Chebyshev
)

var metricNames = []string{"euclidean", "euclidean_squared", "manhattan", "chebyshev"}

func (m Metric) Distance1(x0, x1 float64) float64 {
	d := x1 - x0
	if m == EuclideanSquared {
		return d * d
	}
	return math.Abs(d)
}

func (m Metric) Distance2(x0, y0, x1, y1 float64) float64 {
	dx, dy := x1-x0, y1-y0
	switch m {
	case EuclideanSquared:
		return dx*dx + dy*dy
	case Manhattan:
		return math.Abs(dx) + math.Abs(dy)
	case Chebyshev:
		return math.Max(math.Abs(dx), math.Abs(dy))
	}
	return math.Sqrt(dx*dx + dy*dy)
}

func (m Metric) Distance3(x0, y0, z0, x1, y1, z1 float64) float64 {
	dx, dy, dz := x1-x0, y1-y0, z1-z0
	switch m {
	case EuclideanSquared:
		return dx*dx + dy*dy + dz*dz
	case Manhattan:
		return math.Abs(dx) + math.Abs(dy) + math.Abs(dz)
	case Chebyshev:
		return math.Max(math.Max(math.Abs(dx), math.Abs(dy)), math.Abs(dz))
	}
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

func (m Metric) Distance4(x0, y0, z0, w0, x1, y1, z1, w1 float64) float64 {
	dx, dy, dz, dw := x1-x0, y1-y0, z1-z0, w1-w0
	switch m {
	case EuclideanSquared:
		return dx*dx + dy*dy + dz*dz + dw*dw
	case Manhattan:
		return math.Abs(dx) + math.Abs(dy) + math.Abs(dz) + math.Abs(dw)
	case Chebyshev:
		return math.Max(math.Max(math.Abs(dx), math.Abs(dy)), math.Max(math.Abs(dz), math.Abs(dw)))
	}
	return math.Sqrt(dx*dx + dy*dy + dz*dz + dw*dw)
}

func (m Metric) String() string { return nameOf(metricNames, int(m)) }

// Minkowski is the p-norm distance. P must be positive.
type Minkowski struct {
	P float64
}

func (m Minkowski) Distance1(x0, x1 float64) float64 {
	return math.Abs(x1 - x0)
}

func (m Minkowski) Distance2(x0, y0, x1, y1 float64) float64 {
	return math.Pow(m.pow(x1-x0)+m.pow(y1-y0), 1/m.P)
}

func (m Minkowski) Distance3(x0, y0, z0, x1, y1, z1 float64) float64 {
	return math.Pow(m.pow(x1-x0)+m.pow(y1-y0)+m.pow(z1-z0), 1/m.P)
}

func (m Minkowski) Distance4(x0, y0, z0, w0, x1, y1, z1, w1 float64) float64 {
	return math.Pow(m.pow(x1-x0)+m.pow(y1-y0)+m.pow(z1-z0)+m.pow(w1-w0), 1/m.P)
}

func (m Minkowski) pow(d float64) float64 {
	return math.Pow(math.Abs(d), m.P)
}

func (m Minkowski) String() string {
	return fmt.Sprintf("minkowski(%g)", m.P)
}

// ParseDistance resolves a metric name, or "minkowski(p)" for a p-norm.
func ParseDistance(s string) (Distance, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if rest, ok := strings.CutPrefix(s, "minkowski("); ok {
		p, err := strconv.ParseFloat(strings.TrimSuffix(rest, ")"), 64)
		if err != nil || !strings.HasSuffix(rest, ")") {
			return nil, noise.Invalid("distance", s, "has a malformed minkowski exponent")
		}
		if p <= 0 {
			return nil, noise.Invalid("distance", s, "must have a positive exponent")
		}
		return Minkowski{P: p}, nil
	}
	i, err := parse("distance", metricNames, s)
	if err != nil {
		return nil, err
	}
	return Metric(i), nil
}
