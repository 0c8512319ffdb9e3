// Package modifiers rewrites the value a source produced.
package modifiers

import (
	"math"

	"github.com/pthm-cable/lattice/noise"
)

// Modifier maps a sampled value to a new one.
type Modifier interface {
	Apply(v float64) float64
}

// Abs returns the absolute value.
type Abs struct{}

func (Abs) Apply(v float64) float64 { return math.Abs(v) }

// Invert negates the value.
type Invert struct{}

func (Invert) Apply(v float64) float64 { return -v }

// Clamp limits the value to [Min, Max].
type Clamp struct {
	Min, Max float64
}

// NewClamp validates the bounds.
func NewClamp(lower, upper float64) (Clamp, error) {
	if math.IsNaN(lower) || math.IsNaN(upper) {
		return Clamp{}, noise.Invalid("clamp", [2]float64{lower, upper}, "bounds must not be NaN")
	}
	if lower > upper {
		return Clamp{}, noise.Invalid("clamp.min", lower, "exceeds clamp.max")
	}
	return Clamp{Min: lower, Max: upper}, nil
}

func (c Clamp) Apply(v float64) float64 {
	return math.Max(c.Min, math.Min(c.Max, v))
}
