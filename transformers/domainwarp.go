package transformers

import (
	"fmt"

	"github.com/pthm-cable/lattice/noise"
)

// DomainWarpConfig configures a DomainWarp. Axis i is displaced by Warp[i]
// times the source sampled at the input shifted by offset i-1; axis 0 samples
// the unshifted input.
type DomainWarpConfig struct {
	Source   noise.Source
	Warp     [4]float64
	Offset2D [2]float64
	Offset3D [2][3]float64
	Offset4D [3][4]float64
}

// DefaultDomainWarp returns the default warp strength and sample offsets
// around src.
func DefaultDomainWarp(src noise.Source) DomainWarpConfig {
	return DomainWarpConfig{
		Source:   src,
		Warp:     [4]float64{4, 4, 4, 4},
		Offset2D: [2]float64{5.2, 1.3},
		Offset3D: [2][3]float64{
			{5.2, 1.3, 9.2},
			{1.7, 8.3, 2.8},
		},
		Offset4D: [3][4]float64{
			{5.2, 1.3, 9.2, 2.4},
			{1.7, 8.3, 2.8, 4.3},
			{1.9, 6.2, 4.1, 8.9},
		},
	}
}

// DomainWarp displaces coordinates by a noise field. It needs at least two
// dimensions.
type DomainWarp struct {
	cfg DomainWarpConfig
}

// NewDomainWarp validates cfg.
func NewDomainWarp(cfg DomainWarpConfig) (*DomainWarp, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("domain warp: %w", noise.ErrMissingSource)
	}
	return &DomainWarp{cfg: cfg}, nil
}

func (d *DomainWarp) MinDimension() int { return 2 }

func (d *DomainWarp) Transform1(x float64) float64 {
	noise.Unsupported("domain warp", 1)
	return x
}

func (d *DomainWarp) Transform2(x, y float64) (float64, float64) {
	src, o, k := d.cfg.Source, d.cfg.Offset2D, d.cfg.Warp
	q0 := src.Eval2(x, y)
	q1 := src.Eval2(x+o[0], y+o[1])
	return x + k[0]*q0, y + k[1]*q1
}

func (d *DomainWarp) Transform3(x, y, z float64) (float64, float64, float64) {
	src, o, k := d.cfg.Source, d.cfg.Offset3D, d.cfg.Warp
	q0 := src.Eval3(x, y, z)
	q1 := src.Eval3(x+o[0][0], y+o[0][1], z+o[0][2])
	q2 := src.Eval3(x+o[1][0], y+o[1][1], z+o[1][2])
	return x + k[0]*q0, y + k[1]*q1, z + k[2]*q2
}

func (d *DomainWarp) Transform4(x, y, z, w float64) (float64, float64, float64, float64) {
	src, o, k := d.cfg.Source, d.cfg.Offset4D, d.cfg.Warp
	q0 := src.Eval4(x, y, z, w)
	q1 := src.Eval4(x+o[0][0], y+o[0][1], z+o[0][2], w+o[0][3])
	q2 := src.Eval4(x+o[1][0], y+o[1][1], z+o[1][2], w+o[1][3])
	q3 := src.Eval4(x+o[2][0], y+o[2][1], z+o[2][2], w+o[2][3])
	return x + k[0]*q0, y + k[1]*q1, z + k[2]*q2, w + k[3]*q3
}
