package generators

import (
	"math"

	"github.com/pthm-cable/lattice/noise"
)

// Constant returns the same value everywhere.
type Constant struct {
	Value float64
}

func (c Constant) Eval1(float64) float64 { return c.Value }
func (c Constant) Eval2(float64, float64) float64 { return c.Value }
func (c Constant) Eval3(float64, float64, float64) float64 { return c.Value }
func (c Constant) Eval4(float64, float64, float64, float64) float64 { return c.Value }

// Checkerboard alternates 1 and 0 between neighbouring unit cells, with 1 at
// the origin cell.
type Checkerboard struct{}

func (Checkerboard) Eval1(x float64) float64 {
	return parity(floor(x))
}

func (Checkerboard) Eval2(x, y float64) float64 {
	return parity(floor(x) ^ floor(y))
}

func (Checkerboard) Eval3(x, y, z float64) float64 {
	return parity(floor(x) ^ floor(y) ^ floor(z))
}

func (Checkerboard) Eval4(x, y, z, w float64) float64 {
	return parity(floor(x) ^ floor(y) ^ floor(z) ^ floor(w))
}

func parity(v int64) float64 {
	if v&1 != 0 {
		return 0
	}
	return 1
}

// Sphere draws concentric unit-spaced shells around the origin: 1 on a shell,
// falling to 0 halfway between shells.
type Sphere struct{}

func (Sphere) Eval1(x float64) float64 {
	return rings(math.Abs(x))
}

func (Sphere) Eval2(x, y float64) float64 {
	return rings(math.Sqrt(x*x + y*y))
}

func (Sphere) Eval3(x, y, z float64) float64 {
	return rings(math.Sqrt(x*x + y*y + z*z))
}

func (Sphere) Eval4(x, y, z, w float64) float64 {
	return rings(math.Sqrt(x*x + y*y + z*z + w*w))
}

// Cylinder draws concentric shells around the last axis, which is ignored.
// It has no 1D form.
type Cylinder struct{}

func (Cylinder) MinDimension() int { return 2 }

func (Cylinder) Eval1(float64) float64 {
	noise.Unsupported("generators.Cylinder", 1)
	return 0
}

func (Cylinder) Eval2(x, _ float64) float64 {
	return rings(math.Abs(x))
}

func (Cylinder) Eval3(x, y, _ float64) float64 {
	return rings(math.Sqrt(x*x + y*y))
}

func (Cylinder) Eval4(x, y, z, _ float64) float64 {
	return rings(math.Sqrt(x*x + y*y + z*z))
}

func rings(d float64) float64 {
	inner := d - math.Floor(d)
	return 1 - 2*math.Min(inner, 1-inner)
}
