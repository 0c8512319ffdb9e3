package functions

import (
	"errors"
	"math"
	"testing"

	"github.com/pthm-cable/lattice/noise"
)

const eps = 1e-12

func TestFadeApply(t *testing.T) {
	tests := []struct {
		name string
		fade Fade
		t    float64
		want float64
	}{
		{"none midpoint", FadeNone, 0.25, 0.25},
		{"smoothstep zero", FadeSmoothstep, 0, 0},
		{"smoothstep one", FadeSmoothstep, 1, 1},
		{"smoothstep half", FadeSmoothstep, 0.5, 0.5},
		{"smoothstep quarter", FadeSmoothstep, 0.25, 0.15625},
		{"quintic one", FadeQuintic, 1, 1},
		{"quintic half", FadeQuintic, 0.5, 0.5},
		{"quintic quarter", FadeQuintic, 0.25, 0.103515625},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fade.Apply(tt.t)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("%v.Apply(%v) = %v, want %v", tt.fade, tt.t, got, tt.want)
			}
		})
	}
}

func TestInterpolationLerp(t *testing.T) {
	tests := []struct {
		name   string
		interp Interpolation
		t      float64
		want   float64
	}{
		{"linear", Linear, 0.25, 1.5},
		{"quadratic", Quadratic, 0.5, 1.5},
		{"cubic", Cubic, 0.5, 1.25},
		{"quartic", Quartic, 0.5, 1.125},
		{"cosine", Cosine, 0.5, 2},
		{"cosine end", Cosine, 1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.interp.Lerp(tt.t, 1, 3)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("%v.Lerp(%v, 1, 3) = %v, want %v", tt.interp, tt.t, got, tt.want)
			}
		})
	}
}

func TestLerpCornersReducesFirstAxisFirst(t *testing.T) {
	// c00=0 c10=1 c01=2 c11=3 with x fastest.
	values := []float64{0, 1, 2, 3}
	got := Linear.LerpCorners([]float64{0.5, 0}, values)
	if math.Abs(got-0.5) > eps {
		t.Errorf("LerpCorners = %v, want 0.5", got)
	}
	values = []float64{0, 1, 2, 3}
	got = Linear.LerpCorners([]float64{0, 1}, values)
	if math.Abs(got-2) > eps {
		t.Errorf("LerpCorners = %v, want 2", got)
	}
}

func TestFractalApply(t *testing.T) {
	tests := []struct {
		name    string
		fractal Fractal
		v       float64
		want    float64
	}{
		{"fbm", FBM, -0.3, -0.3},
		{"billow", Billow, -0.3, -0.4},
		{"ridged", RidgedMulti, -0.3, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fractal.Apply(tt.v)
			if math.Abs(got-tt.want) > eps {
				t.Errorf("%v.Apply(%v) = %v, want %v", tt.fractal, tt.v, got, tt.want)
			}
		})
	}
}

func TestCombinerApply(t *testing.T) {
	tests := []struct {
		name     string
		combiner Combiner
		a, b     float64
		want     float64
	}{
		{"add", Add, 0.5, 0.25, 0.75},
		{"multiply", Multiply, 0.5, 0.25, 0.125},
		{"max", Max, 0.5, 0.25, 0.5},
		{"min", Min, 0.5, 0.25, 0.25},
		{"pow", Pow, 2, 3, 8},
		{"polynomial far apart", PolynomialSmoothMin, 0.5, 0.25, 0.25},
		{"polynomial equal", PolynomialSmoothMin, 0.5, 0.5, 0.475},
		{"power equal", PowerSmoothMin, 1, 1, math.Pow(0.5, 1.0/8)},
		{"exponential equal", ExponentialSmoothMin, 0, 0, -1.0 / 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.combiner.Apply(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("%v.Apply(%v, %v) = %v, want %v", tt.combiner, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSmoothMinBelowMin(t *testing.T) {
	for _, c := range []Combiner{ExponentialSmoothMin, PolynomialSmoothMin} {
		for _, p := range [][2]float64{{0.1, 0.12}, {0.3, 0.31}, {0.7, 0.65}} {
			got := c.Apply(p[0], p[1])
			if got > math.Min(p[0], p[1])+eps {
				t.Errorf("%v.Apply(%v, %v) = %v, exceeds min", c, p[0], p[1], got)
			}
		}
	}
}

func TestMetricDistances(t *testing.T) {
	tests := []struct {
		name   string
		metric Distance
		want2  float64
		want4  float64
	}{
		{"euclidean", Euclidean, 5, math.Sqrt(25 + 1 + 4)},
		{"euclidean squared", EuclideanSquared, 25, 30},
		{"manhattan", Manhattan, 7, 10},
		{"chebyshev", Chebyshev, 4, 4},
		{"minkowski 1", Minkowski{P: 1}, 7, 10},
		{"minkowski 2", Minkowski{P: 2}, 5, math.Sqrt(30)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.metric.Distance2(0, 0, 3, -4)
			if math.Abs(got-tt.want2) > 1e-9 {
				t.Errorf("Distance2 = %v, want %v", got, tt.want2)
			}
			got = tt.metric.Distance4(0, 0, 0, 0, 3, -4, 1, 2)
			if math.Abs(got-tt.want4) > 1e-9 {
				t.Errorf("Distance4 = %v, want %v", got, tt.want4)
			}
		})
	}
}

func TestMinkowski1DIsAbsolute(t *testing.T) {
	got := Minkowski{P: 3}.Distance1(2, -1.5)
	if got != 3.5 {
		t.Errorf("Distance1 = %v, want 3.5", got)
	}
}

func TestReturnDistance(t *testing.T) {
	d := []float64{0.25, 1}
	tests := []struct {
		r     ReturnDistance
		want  float64
		depth int
	}{
		{Distance0, 0.25, 1},
		{Distance1, 1, 2},
		{DistanceAdd, 1.25, 2},
		{DistanceSub, 0.75, 2},
		{DistanceMul, 0.25, 2},
	}

	for _, tt := range tests {
		t.Run(tt.r.String(), func(t *testing.T) {
			if got := tt.r.Apply(d); got != tt.want {
				t.Errorf("Apply = %v, want %v", got, tt.want)
			}
			if got := tt.r.MinDepth(); got != tt.depth {
				t.Errorf("MinDepth = %v, want %v", got, tt.depth)
			}
		})
	}
}

func TestParse(t *testing.T) {
	if f, err := ParseFade(" Quintic "); err != nil || f != FadeQuintic {
		t.Errorf("ParseFade = %v, %v", f, err)
	}
	if c, err := ParseCombiner("polynomial_smooth_min"); err != nil || c != PolynomialSmoothMin {
		t.Errorf("ParseCombiner = %v, %v", c, err)
	}
	if r, err := ParseReturnDistance("sub"); err != nil || r != DistanceSub {
		t.Errorf("ParseReturnDistance = %v, %v", r, err)
	}
	d, err := ParseDistance("minkowski(1.5)")
	if err != nil || d != (Minkowski{P: 1.5}) {
		t.Errorf("ParseDistance = %v, %v", d, err)
	}
	for _, bad := range []string{"minkowski(0)", "minkowski(x)", "minkowski(2", "hamming"} {
		if _, err := ParseDistance(bad); !errors.Is(err, noise.ErrInvalidParameter) {
			t.Errorf("ParseDistance(%q) err = %v, want ErrInvalidParameter", bad, err)
		}
	}
	if _, err := ParseInterpolation("spline"); !errors.Is(err, noise.ErrInvalidParameter) {
		t.Errorf("ParseInterpolation err = %v", err)
	}
}
