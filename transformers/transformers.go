// Package transformers rewrites coordinates before a source sees them.
package transformers

import (
	"math"

	"github.com/pthm-cable/lattice/noise"
)

// Simple transforms each axis independently of the others.
type Simple interface {
	TransformX(x float64) float64
	TransformY(y float64) float64
	TransformZ(z float64) float64
	TransformW(w float64) float64
}

// Detailed transforms a whole coordinate and may mix axes.
type Detailed interface {
	Transform1(x float64) float64
	Transform2(x, y float64) (float64, float64)
	Transform3(x, y, z float64) (float64, float64, float64)
	Transform4(x, y, z, w float64) (float64, float64, float64, float64)
}

// Scale multiplies each axis by a fixed factor.
type Scale struct {
	x, y, z, w float64
}

// NewScale builds a per-axis scale. Factors must be finite and non-zero.
func NewScale(x, y, z, w float64) (*Scale, error) {
	for _, f := range []struct {
		name string
		v    float64
	}{{"scale.x", x}, {"scale.y", y}, {"scale.z", z}, {"scale.w", w}} {
		if f.v == 0 || math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return nil, noise.Invalid(f.name, f.v, "must be finite and non-zero")
		}
	}
	return &Scale{x: x, y: y, z: z, w: w}, nil
}

// NewUniformScale scales every axis by f.
func NewUniformScale(f float64) (*Scale, error) {
	return NewScale(f, f, f, f)
}

func (s *Scale) TransformX(x float64) float64 { return x * s.x }
func (s *Scale) TransformY(y float64) float64 { return y * s.y }
func (s *Scale) TransformZ(z float64) float64 { return z * s.z }
func (s *Scale) TransformW(w float64) float64 { return w * s.w }
