package generators

import (
	"github.com/pthm-cable/lattice/functions"
	"github.com/pthm-cable/lattice/hashing"
)

// ValueConfig configures a Value noise kernel.
type ValueConfig struct {
	Seed          int64
	Interpolation functions.Interpolation
	Fade          functions.Fade
}

// DefaultValue returns the default Value configuration.
func DefaultValue() ValueConfig {
	return ValueConfig{
		Seed:          DefaultSeed,
		Interpolation: functions.Linear,
		Fade:          functions.FadeQuintic,
	}
}

// Value interpolates hashed scalars at the cell corners. Output lies in [-1, 1].
type Value struct {
	seed   int64
	interp functions.Interpolation
	fade   functions.Fade
}

// NewValue builds a Value kernel.
func NewValue(cfg ValueConfig) *Value {
	return &Value{seed: cfg.Seed, interp: cfg.Interpolation, fade: cfg.Fade}
}

func (v *Value) Seed() int64 { return v.seed }

func (v *Value) Eval1(x float64) float64 { return v.Eval1Seeded(v.seed, x) }
func (v *Value) Eval2(x, y float64) float64 { return v.Eval2Seeded(v.seed, x, y) }
func (v *Value) Eval3(x, y, z float64) float64 { return v.Eval3Seeded(v.seed, x, y, z) }
func (v *Value) Eval4(x, y, z, w float64) float64 { return v.Eval4Seeded(v.seed, x, y, z, w) }

func (v *Value) Eval1Seeded(seed int64, x float64) float64 {
	ix, fx := split(x)
	return v.interp.Lerp(v.fade.Apply(fx), hashing.Value1(seed, ix), hashing.Value1(seed, ix+1))
}

func (v *Value) Eval2Seeded(seed int64, x, y float64) float64 {
	ix, fx := split(x)
	iy, fy := split(y)
	var vals [4]float64
	for c := range vals {
		vals[c] = hashing.Value2(seed, ix+int64(c&1), iy+int64(c>>1&1))
	}
	t := [2]float64{v.fade.Apply(fx), v.fade.Apply(fy)}
	return v.interp.LerpCorners(t[:], vals[:])
}

func (v *Value) Eval3Seeded(seed int64, x, y, z float64) float64 {
	ix, fx := split(x)
	iy, fy := split(y)
	iz, fz := split(z)
	var vals [8]float64
	for c := range vals {
		vals[c] = hashing.Value3(seed, ix+int64(c&1), iy+int64(c>>1&1), iz+int64(c>>2&1))
	}
	t := [3]float64{v.fade.Apply(fx), v.fade.Apply(fy), v.fade.Apply(fz)}
	return v.interp.LerpCorners(t[:], vals[:])
}

func (v *Value) Eval4Seeded(seed int64, x, y, z, w float64) float64 {
	ix, fx := split(x)
	iy, fy := split(y)
	iz, fz := split(z)
	iw, fw := split(w)
	var vals [16]float64
	for c := range vals {
		vals[c] = hashing.Value4(seed, ix+int64(c&1), iy+int64(c>>1&1), iz+int64(c>>2&1), iw+int64(c>>3&1))
	}
	t := [4]float64{v.fade.Apply(fx), v.fade.Apply(fy), v.fade.Apply(fz), v.fade.Apply(fw)}
	return v.interp.LerpCorners(t[:], vals[:])
}
