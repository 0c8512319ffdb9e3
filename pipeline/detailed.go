package pipeline

import (
	"fmt"

	"github.com/pthm-cable/lattice/noise"
)

// DetailedPipeline is a Pipeline over a noise.Detailed source. Modifiers
// overwrite Result.Value and leave Unmodified and Closest untouched.
type DetailedPipeline struct {
	chain
	src noise.Detailed
}

// NewDetailed builds a DetailedPipeline. The source must implement noise.Detailed.
func NewDetailed(cfg Config) (*DetailedPipeline, error) {
	c, err := newChain(cfg)
	if err != nil {
		return nil, err
	}
	d, ok := cfg.Source.(noise.Detailed)
	if !ok {
		return nil, fmt.Errorf("pipeline source %T: %w", cfg.Source, noise.ErrNotDetailed)
	}
	return &DetailedPipeline{chain: c, src: d}, nil
}

func (p *DetailedPipeline) apply(r noise.Result) noise.Result {
	r.Value = p.modify(r.Value)
	return r
}

func (p *DetailedPipeline) Eval1Result(x float64) noise.Result {
	return p.apply(p.src.Eval1Result(p.transform1(x)))
}

func (p *DetailedPipeline) Eval2Result(x, y float64) noise.Result {
	return p.apply(p.src.Eval2Result(p.transform2(x, y)))
}

func (p *DetailedPipeline) Eval3Result(x, y, z float64) noise.Result {
	return p.apply(p.src.Eval3Result(p.transform3(x, y, z)))
}

func (p *DetailedPipeline) Eval4Result(x, y, z, w float64) noise.Result {
	return p.apply(p.src.Eval4Result(p.transform4(x, y, z, w)))
}

func (p *DetailedPipeline) Eval1(x float64) float64 { return p.Eval1Result(x).Value }

func (p *DetailedPipeline) Eval2(x, y float64) float64 { return p.Eval2Result(x, y).Value }

func (p *DetailedPipeline) Eval3(x, y, z float64) float64 { return p.Eval3Result(x, y, z).Value }

func (p *DetailedPipeline) Eval4(x, y, z, w float64) float64 { return p.Eval4Result(x, y, z, w).Value }
