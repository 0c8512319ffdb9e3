// Package functions holds the small strategy enumerations shared by kernels and
// modules: fade curves, interpolation, distance metrics, fractal shaping,
// binary combiners and Worley return functions.
package functions

import (
	"fmt"
	"math"
	"strings"

	"github.com/pthm-cable/lattice/noise"
)

// Fade smooths a fractional lattice offset in [0, 1].
type Fade int

const (
	FadeNone Fade = iota
	FadeSmoothstep
	FadeQuintic
)

var fadeNames = []string{"none", "smoothstep", "quintic"}

// Apply returns the faded offset.
func (f Fade) Apply(t float64) float64 {
	switch f {
	case FadeSmoothstep:
		return t * t * (3 - 2*t)
	case FadeQuintic:
		return t * t * t * (t*(t*6-15) + 10)
	}
	return t
}

func (f Fade) String() string { return nameOf(fadeNames, int(f)) }

// ParseFade resolves a fade name.
func ParseFade(s string) (Fade, error) {
	i, err := parse("fade", fadeNames, s)
	return Fade(i), err
}

// Interpolation blends a and b by factor t.
type Interpolation int

const (
	Linear Interpolation = iota
	Quadratic
	Cubic
	Quartic
	Cosine
)

var interpolationNames = []string{"linear", "quadratic", "cubic", "quartic", "cosine"}

// Lerp interpolates between a (t=0) and b (t=1).
func (i Interpolation) Lerp(t, a, b float64) float64 {
	switch i {
	case Quadratic:
		return a + (b-a)*t*t
	case Cubic:
		return a + (b-a)*t*t*t
	case Quartic:
		return a + (b-a)*t*t*t*t
	case Cosine:
		return a + ((1.0-math.Cos(t*math.Pi))/2.0)*(b-a)
	}
	return a + t*(b-a)
}

// LerpCorners reduces 2^len(t) corner values, ordered with the first axis
// varying fastest, by interpolating along each axis in turn. values is
// overwritten.
func (i Interpolation) LerpCorners(t []float64, values []float64) float64 {
	n := len(values)
	for _, ti := range t {
		for j := 0; j < n; j += 2 {
			values[j/2] = i.Lerp(ti, values[j], values[j+1])
		}
		n /= 2
	}
	return values[0]
}

func (i Interpolation) String() string { return nameOf(interpolationNames, int(i)) }

// ParseInterpolation resolves an interpolation name.
func ParseInterpolation(s string) (Interpolation, error) {
	i, err := parse("interpolation", interpolationNames, s)
	return Interpolation(i), err
}

// Fractal shapes each octave sample before it is summed.
type Fractal int

const (
	FBM Fractal = iota
	Billow
	RidgedMulti
)

var fractalNames = []string{"fbm", "billow", "ridged_multi"}

// Apply shapes a single octave sample.
func (f Fractal) Apply(v float64) float64 {
	switch f {
	case Billow:
		return math.Abs(v)*2 - 1
	case RidgedMulti:
		return 1 - math.Abs(v)
	}
	return v
}

func (f Fractal) String() string { return nameOf(fractalNames, int(f)) }

// ParseFractal resolves a fractal function name.
func ParseFractal(s string) (Fractal, error) {
	i, err := parse("fractal", fractalNames, s)
	return Fractal(i), err
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parse(kind string, names []string, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, noise.Invalid(kind, s, "is not one of "+strings.Join(names, ", "))
}
