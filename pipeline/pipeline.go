// Package pipeline chains coordinate transformers, a root source and value
// modifiers into a single noise.Source.
//
// Evaluation order is fixed: simple transformers per axis in order, then
// detailed transformers in order, then the source, then modifiers in order.
package pipeline

import (
	"fmt"

	"github.com/pthm-cable/lattice/modifiers"
	"github.com/pthm-cable/lattice/noise"
	"github.com/pthm-cable/lattice/transformers"
)

// Config lists the stages of a pipeline.
type Config struct {
	Source    noise.Source
	Simple    []transformers.Simple
	Detailed  []transformers.Detailed
	Modifiers []modifiers.Modifier
}

// chain holds the stages shared by Pipeline and DetailedPipeline.
type chain struct {
	simple    []transformers.Simple
	detailed  []transformers.Detailed
	modifiers []modifiers.Modifier
	minDim    int
}

func newChain(cfg Config) (chain, error) {
	if cfg.Source == nil {
		return chain{}, fmt.Errorf("pipeline: %w", noise.ErrMissingSource)
	}
	c := chain{
		simple:    append([]transformers.Simple(nil), cfg.Simple...),
		detailed:  append([]transformers.Detailed(nil), cfg.Detailed...),
		modifiers: append([]modifiers.Modifier(nil), cfg.Modifiers...),
		minDim:    noise.MinDimension(cfg.Source),
	}
	for i, t := range c.simple {
		if t == nil {
			return chain{}, noise.Invalid(fmt.Sprintf("simple[%d]", i), nil, "is nil")
		}
	}
	for i, t := range c.detailed {
		if t == nil {
			return chain{}, noise.Invalid(fmt.Sprintf("detailed[%d]", i), nil, "is nil")
		}
		if d, ok := t.(noise.Dimensional); ok {
			c.minDim = max(c.minDim, d.MinDimension())
		}
	}
	for i, m := range c.modifiers {
		if m == nil {
			return chain{}, noise.Invalid(fmt.Sprintf("modifiers[%d]", i), nil, "is nil")
		}
	}
	return c, nil
}

func (c *chain) MinDimension() int { return c.minDim }

func (c *chain) transform1(x float64) float64 {
	for _, t := range c.simple {
		x = t.TransformX(x)
	}
	for _, t := range c.detailed {
		x = t.Transform1(x)
	}
	return x
}

func (c *chain) transform2(x, y float64) (float64, float64) {
	for _, t := range c.simple {
		x, y = t.TransformX(x), t.TransformY(y)
	}
	for _, t := range c.detailed {
		x, y = t.Transform2(x, y)
	}
	return x, y
}

func (c *chain) transform3(x, y, z float64) (float64, float64, float64) {
	for _, t := range c.simple {
		x, y, z = t.TransformX(x), t.TransformY(y), t.TransformZ(z)
	}
	for _, t := range c.detailed {
		x, y, z = t.Transform3(x, y, z)
	}
	return x, y, z
}

func (c *chain) transform4(x, y, z, w float64) (float64, float64, float64, float64) {
	for _, t := range c.simple {
		x, y, z, w = t.TransformX(x), t.TransformY(y), t.TransformZ(z), t.TransformW(w)
	}
	for _, t := range c.detailed {
		x, y, z, w = t.Transform4(x, y, z, w)
	}
	return x, y, z, w
}

func (c *chain) modify(v float64) float64 {
	for _, m := range c.modifiers {
		v = m.Apply(v)
	}
	return v
}

// Pipeline is an immutable noise.Source built from a Config.
type Pipeline struct {
	chain
	src noise.Source
}

// New validates cfg and builds a Pipeline.
func New(cfg Config) (*Pipeline, error) {
	c, err := newChain(cfg)
	if err != nil {
		return nil, err
	}
	return &Pipeline{chain: c, src: cfg.Source}, nil
}

// Source returns the root source.
func (p *Pipeline) Source() noise.Source { return p.src }

func (p *Pipeline) Eval1(x float64) float64 {
	return p.modify(p.src.Eval1(p.transform1(x)))
}

func (p *Pipeline) Eval2(x, y float64) float64 {
	return p.modify(p.src.Eval2(p.transform2(x, y)))
}

func (p *Pipeline) Eval3(x, y, z float64) float64 {
	return p.modify(p.src.Eval3(p.transform3(x, y, z)))
}

func (p *Pipeline) Eval4(x, y, z, w float64) float64 {
	return p.modify(p.src.Eval4(p.transform4(x, y, z, w)))
}

// Seeded returns p as a noise.Seeded when its root source is seeded, so that
// modules such as Octavation can vary the seed through the whole chain.
func (p *Pipeline) Seeded() (noise.Seeded, error) {
	s, ok := p.src.(noise.Seeded)
	if !ok {
		return nil, fmt.Errorf("pipeline source %T: %w", p.src, noise.ErrNotSeeded)
	}
	return &seededPipeline{Pipeline: p, seeded: s}, nil
}

type seededPipeline struct {
	*Pipeline
	seeded noise.Seeded
}

func (p *seededPipeline) Seed() int64 { return p.seeded.Seed() }

func (p *seededPipeline) Eval1Seeded(seed int64, x float64) float64 {
	return p.modify(p.seeded.Eval1Seeded(seed, p.transform1(x)))
}

func (p *seededPipeline) Eval2Seeded(seed int64, x, y float64) float64 {
	x, y = p.transform2(x, y)
	return p.modify(p.seeded.Eval2Seeded(seed, x, y))
}

func (p *seededPipeline) Eval3Seeded(seed int64, x, y, z float64) float64 {
	x, y, z = p.transform3(x, y, z)
	return p.modify(p.seeded.Eval3Seeded(seed, x, y, z))
}

func (p *seededPipeline) Eval4Seeded(seed int64, x, y, z, w float64) float64 {
	x, y, z, w = p.transform4(x, y, z, w)
	return p.modify(p.seeded.Eval4Seeded(seed, x, y, z, w))
}
