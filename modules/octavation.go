// Package modules composes sources: fractal octave sums, blends, binary
// combinations and threshold selection.
package modules

import (
	"fmt"
	"math"

	"github.com/pthm-cable/lattice/functions"
	"github.com/pthm-cable/lattice/noise"
)

// OctavationConfig configures an Octavation.
type OctavationConfig struct {
	Source     noise.Source
	Octaves    int
	Gain       float64
	Lacunarity float64
	Fractal    functions.Fractal
	// IncrementSeed evaluates octave i under seed+i. Requires a noise.Seeded source.
	IncrementSeed bool
}

// DefaultOctavation wraps src in a single unit octave, which reproduces src.
func DefaultOctavation(src noise.Source) OctavationConfig {
	return OctavationConfig{Source: src, Octaves: 1, Gain: 1, Lacunarity: 1, Fractal: functions.FBM}
}

// Octavation sums successively scaled copies of a source and normalizes the
// sum by the total amplitude.
type Octavation struct {
	src        noise.Source
	seeded     noise.Seeded // set only when incrementing the seed
	octaves    int
	gain       float64
	lacunarity float64
	fractal    functions.Fractal
	bounding   float64
}

// NewOctavation validates cfg.
func NewOctavation(cfg OctavationConfig) (*Octavation, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("octavation: %w", noise.ErrMissingSource)
	}
	if cfg.Octaves < 1 {
		return nil, noise.Invalid("octaves", cfg.Octaves, "must be at least 1")
	}
	if !(cfg.Gain > 0) || math.IsInf(cfg.Gain, 0) {
		return nil, noise.Invalid("gain", cfg.Gain, "must be positive and finite")
	}
	if !(cfg.Lacunarity > 0) || math.IsInf(cfg.Lacunarity, 0) {
		return nil, noise.Invalid("lacunarity", cfg.Lacunarity, "must be positive and finite")
	}
	o := &Octavation{
		src:        cfg.Source,
		octaves:    cfg.Octaves,
		gain:       cfg.Gain,
		lacunarity: cfg.Lacunarity,
		fractal:    cfg.Fractal,
	}
	if cfg.IncrementSeed {
		s, ok := cfg.Source.(noise.Seeded)
		if !ok {
			return nil, fmt.Errorf("octavation: increment seed on %T: %w", cfg.Source, noise.ErrNotSeeded)
		}
		o.seeded = s
	}

	amp := 1.0
	for i := 0; i < o.octaves; i++ {
		amp *= o.gain
		o.bounding += amp
	}
	return o, nil
}

func (o *Octavation) MinDimension() int { return noise.MinDimension(o.src) }

// nextSeed advances the octave seed. Overflow wraps.
func (o *Octavation) nextSeed(seed int64) int64 {
	if o.seeded == nil {
		return seed
	}
	return seed + 1
}

func (o *Octavation) baseSeed() int64 {
	if o.seeded == nil {
		return 0
	}
	return o.seeded.Seed()
}

func (o *Octavation) Eval1(x float64) float64 {
	at := func(seed int64, x float64) float64 {
		if o.seeded != nil {
			return o.seeded.Eval1Seeded(seed, x)
		}
		return o.src.Eval1(x)
	}
	seed, amp := o.baseSeed(), o.gain
	out := o.fractal.Apply(at(seed, x)) * amp
	for i := 1; i < o.octaves; i++ {
		x *= o.lacunarity
		seed = o.nextSeed(seed)
		amp *= o.gain
		out += o.fractal.Apply(at(seed, x)) * amp
	}
	return out / o.bounding
}

func (o *Octavation) Eval2(x, y float64) float64 {
	at := func(seed int64, x, y float64) float64 {
		if o.seeded != nil {
			return o.seeded.Eval2Seeded(seed, x, y)
		}
		return o.src.Eval2(x, y)
	}
	seed, amp := o.baseSeed(), o.gain
	out := o.fractal.Apply(at(seed, x, y)) * amp
	for i := 1; i < o.octaves; i++ {
		x *= o.lacunarity
		y *= o.lacunarity
		seed = o.nextSeed(seed)
		amp *= o.gain
		out += o.fractal.Apply(at(seed, x, y)) * amp
	}
	return out / o.bounding
}

func (o *Octavation) Eval3(x, y, z float64) float64 {
	at := func(seed int64, x, y, z float64) float64 {
		if o.seeded != nil {
			return o.seeded.Eval3Seeded(seed, x, y, z)
		}
		return o.src.Eval3(x, y, z)
	}
	seed, amp := o.baseSeed(), o.gain
	out := o.fractal.Apply(at(seed, x, y, z)) * amp
	for i := 1; i < o.octaves; i++ {
		x *= o.lacunarity
		y *= o.lacunarity
		z *= o.lacunarity
		seed = o.nextSeed(seed)
		amp *= o.gain
		out += o.fractal.Apply(at(seed, x, y, z)) * amp
	}
	return out / o.bounding
}

func (o *Octavation) Eval4(x, y, z, w float64) float64 {
	at := func(seed int64, x, y, z, w float64) float64 {
		if o.seeded != nil {
			return o.seeded.Eval4Seeded(seed, x, y, z, w)
		}
		return o.src.Eval4(x, y, z, w)
	}
	seed, amp := o.baseSeed(), o.gain
	out := o.fractal.Apply(at(seed, x, y, z, w)) * amp
	for i := 1; i < o.octaves; i++ {
		x *= o.lacunarity
		y *= o.lacunarity
		z *= o.lacunarity
		w *= o.lacunarity
		seed = o.nextSeed(seed)
		amp *= o.gain
		out += o.fractal.Apply(at(seed, x, y, z, w)) * amp
	}
	return out / o.bounding
}
