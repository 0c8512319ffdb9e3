// Package generators holds the lattice noise kernels: Perlin, Value, White,
// Gaussian white, Worley, Constant and the geometric pattern sources.
package generators

import (
	"math"

	"github.com/pthm-cable/lattice/functions"
	"github.com/pthm-cable/lattice/hashing"
)

// DefaultSeed is the seed kernels use when none is configured.
const DefaultSeed int64 = 1729

var grad1 = [2]float64{1, -1}

var grad2 = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{0, 1}, {0, -1}, {1, 0}, {-1, 0},
}

var grad3 = [20][3]float64{
	{1, 1, 1}, {-1, 1, 1}, {1, -1, 1}, {-1, -1, 1},
	{1, 1, -1}, {-1, 1, -1}, {1, -1, -1}, {-1, -1, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
}

var grad4 = [48][4]float64{
	{1, 1, 1, 1}, {1, 1, -1, 1}, {1, -1, 1, 1}, {1, -1, -1, 1},
	{-1, 1, 1, 1}, {-1, 1, -1, 1}, {-1, -1, 1, 1}, {-1, -1, -1, 1},
	{1, 1, 1, -1}, {1, 1, -1, -1}, {1, -1, 1, -1}, {1, -1, -1, -1},
	{-1, 1, 1, -1}, {-1, 1, -1, -1}, {-1, -1, 1, -1}, {-1, -1, -1, -1},

	{0, 1, 1, 1}, {0, 1, -1, 1}, {0, -1, 1, 1}, {0, -1, -1, 1},
	{0, 1, 1, -1}, {0, 1, -1, -1}, {0, -1, 1, -1}, {0, -1, -1, -1},
	{1, 0, 1, 1}, {1, 0, -1, 1}, {-1, 0, 1, 1}, {-1, 0, -1, 1},
	{1, 0, 1, -1}, {1, 0, -1, -1}, {-1, 0, 1, -1}, {-1, 0, -1, -1},
	{1, 1, 0, 1}, {1, -1, 0, 1}, {-1, 1, 0, 1}, {-1, -1, 0, 1},
	{1, 1, 0, -1}, {1, -1, 0, -1}, {-1, 1, 0, -1}, {-1, -1, 0, -1},
	{1, 1, 1, 0}, {1, -1, 1, 0}, {-1, 1, 1, 0}, {-1, -1, 1, 0},
	{1, 1, -1, 0}, {1, -1, -1, 0}, {-1, 1, -1, 0}, {-1, -1, -1, 0},
}

// Gradient index masks. These are bitmasks over the hash, not moduli, so the
// 3D and 4D tables are not sampled uniformly.
const (
	mask1 = 1
	mask2 = 7
	mask3 = 19
	mask4 = 47
)

// PerlinConfig configures a Perlin gradient kernel.
type PerlinConfig struct {
	Seed          int64
	Interpolation functions.Interpolation
	Fade          functions.Fade
}

// DefaultPerlin returns the default Perlin configuration.
func DefaultPerlin() PerlinConfig {
	return PerlinConfig{
		Seed:          DefaultSeed,
		Interpolation: functions.Linear,
		Fade:          functions.FadeQuintic,
	}
}

// Perlin is classic gradient noise. Output lies in [-sqrt(d/2), sqrt(d/2)].
type Perlin struct {
	seed   int64
	interp functions.Interpolation
	fade   functions.Fade
}

// NewPerlin builds a Perlin kernel.
func NewPerlin(cfg PerlinConfig) *Perlin {
	return &Perlin{seed: cfg.Seed, interp: cfg.Interpolation, fade: cfg.Fade}
}

func (p *Perlin) Seed() int64 { return p.seed }

func (p *Perlin) Eval1(x float64) float64 { return p.Eval1Seeded(p.seed, x) }
func (p *Perlin) Eval2(x, y float64) float64 { return p.Eval2Seeded(p.seed, x, y) }
func (p *Perlin) Eval3(x, y, z float64) float64 { return p.Eval3Seeded(p.seed, x, y, z) }
func (p *Perlin) Eval4(x, y, z, w float64) float64 { return p.Eval4Seeded(p.seed, x, y, z, w) }

func (p *Perlin) Eval1Seeded(seed int64, x float64) float64 {
	ix, fx := split(x)
	d0 := fx * grad1[hashing.Hash1(seed, ix)&mask1]
	d1 := (fx - 1) * grad1[hashing.Hash1(seed, ix+1)&mask1]
	return p.interp.Lerp(p.fade.Apply(fx), d0, d1)
}

func (p *Perlin) Eval2Seeded(seed int64, x, y float64) float64 {
	ix, fx := split(x)
	iy, fy := split(y)
	var dots [4]float64
	for c := range dots {
		ox, oy := int64(c&1), int64(c>>1&1)
		g := &grad2[hashing.Hash2(seed, ix+ox, iy+oy)&mask2]
		dots[c] = (fx-float64(ox))*g[0] + (fy-float64(oy))*g[1]
	}
	t := [2]float64{p.fade.Apply(fx), p.fade.Apply(fy)}
	return p.interp.LerpCorners(t[:], dots[:])
}

func (p *Perlin) Eval3Seeded(seed int64, x, y, z float64) float64 {
	ix, fx := split(x)
	iy, fy := split(y)
	iz, fz := split(z)
	var dots [8]float64
	for c := range dots {
		ox, oy, oz := int64(c&1), int64(c>>1&1), int64(c>>2&1)
		g := &grad3[hashing.Hash3(seed, ix+ox, iy+oy, iz+oz)&mask3]
		dots[c] = (fx-float64(ox))*g[0] + (fy-float64(oy))*g[1] + (fz-float64(oz))*g[2]
	}
	t := [3]float64{p.fade.Apply(fx), p.fade.Apply(fy), p.fade.Apply(fz)}
	return p.interp.LerpCorners(t[:], dots[:])
}

func (p *Perlin) Eval4Seeded(seed int64, x, y, z, w float64) float64 {
	ix, fx := split(x)
	iy, fy := split(y)
	iz, fz := split(z)
	iw, fw := split(w)
	var dots [16]float64
	for c := range dots {
		ox, oy, oz, ow := int64(c&1), int64(c>>1&1), int64(c>>2&1), int64(c>>3&1)
		g := &grad4[hashing.Hash4(seed, ix+ox, iy+oy, iz+oz, iw+ow)&mask4]
		dots[c] = (fx-float64(ox))*g[0] + (fy-float64(oy))*g[1] +
			(fz-float64(oz))*g[2] + (fw-float64(ow))*g[3]
	}
	t := [4]float64{p.fade.Apply(fx), p.fade.Apply(fy), p.fade.Apply(fz), p.fade.Apply(fw)}
	return p.interp.LerpCorners(t[:], dots[:])
}

// split returns the lattice cell of v and the offset into it.
func split(v float64) (int64, float64) {
	i := int64(math.Floor(v))
	return i, v - float64(i)
}
