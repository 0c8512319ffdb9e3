package generators

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/pthm-cable/lattice/hashing"
	"github.com/pthm-cable/lattice/noise"
)

// White returns one hashed scalar in [-1, 1) per unit cell.
type White struct {
	seed int64
}

// NewWhite builds a White kernel.
func NewWhite(seed int64) *White {
	return &White{seed: seed}
}

func (n *White) Seed() int64 { return n.seed }

func (n *White) Eval1(x float64) float64 { return n.Eval1Seeded(n.seed, x) }
func (n *White) Eval2(x, y float64) float64 { return n.Eval2Seeded(n.seed, x, y) }
func (n *White) Eval3(x, y, z float64) float64 { return n.Eval3Seeded(n.seed, x, y, z) }
func (n *White) Eval4(x, y, z, w float64) float64 { return n.Eval4Seeded(n.seed, x, y, z, w) }

func (n *White) Eval1Seeded(seed int64, x float64) float64 {
	return hashing.Value1(seed, floor(x))
}

func (n *White) Eval2Seeded(seed int64, x, y float64) float64 {
	return hashing.Value2(seed, floor(x), floor(y))
}

func (n *White) Eval3Seeded(seed int64, x, y, z float64) float64 {
	return hashing.Value3(seed, floor(x), floor(y), floor(z))
}

func (n *White) Eval4Seeded(seed int64, x, y, z, w float64) float64 {
	return hashing.Value4(seed, floor(x), floor(y), floor(z), floor(w))
}

// GaussianWhiteConfig configures a GaussianWhite kernel.
type GaussianWhiteConfig struct {
	Seed   int64
	Mean   float64
	StdDev float64
}

// DefaultGaussianWhite returns the default configuration: mean 0, standard
// deviation 1/3, so nearly all samples fall in [-1, 1].
func DefaultGaussianWhite() GaussianWhiteConfig {
	return GaussianWhiteConfig{Seed: DefaultSeed, StdDev: 1.0 / 3.0}
}

// GaussianWhite draws one normally distributed sample per unit cell from a
// generator seeded by the cell hash.
type GaussianWhite struct {
	seed   int64
	mean   float64
	stdDev float64
}

// NewGaussianWhite builds a GaussianWhite kernel.
func NewGaussianWhite(cfg GaussianWhiteConfig) (*GaussianWhite, error) {
	if !(cfg.StdDev > 0) || math.IsInf(cfg.StdDev, 0) {
		return nil, noise.Invalid("stddev", cfg.StdDev, "must be positive and finite")
	}
	if math.IsNaN(cfg.Mean) || math.IsInf(cfg.Mean, 0) {
		return nil, noise.Invalid("mean", cfg.Mean, "must be finite")
	}
	return &GaussianWhite{seed: cfg.Seed, mean: cfg.Mean, stdDev: cfg.StdDev}, nil
}

func (n *GaussianWhite) Seed() int64 { return n.seed }

func (n *GaussianWhite) Eval1(x float64) float64 { return n.Eval1Seeded(n.seed, x) }
func (n *GaussianWhite) Eval2(x, y float64) float64 { return n.Eval2Seeded(n.seed, x, y) }
func (n *GaussianWhite) Eval3(x, y, z float64) float64 { return n.Eval3Seeded(n.seed, x, y, z) }
func (n *GaussianWhite) Eval4(x, y, z, w float64) float64 {
	return n.Eval4Seeded(n.seed, x, y, z, w)
}

func (n *GaussianWhite) Eval1Seeded(seed int64, x float64) float64 {
	return n.sample(hashing.Hash1(seed, floor(x)))
}

func (n *GaussianWhite) Eval2Seeded(seed int64, x, y float64) float64 {
	return n.sample(hashing.Hash2(seed, floor(x), floor(y)))
}

func (n *GaussianWhite) Eval3Seeded(seed int64, x, y, z float64) float64 {
	return n.sample(hashing.Hash3(seed, floor(x), floor(y), floor(z)))
}

func (n *GaussianWhite) Eval4Seeded(seed int64, x, y, z, w float64) float64 {
	return n.sample(hashing.Hash4(seed, floor(x), floor(y), floor(z), floor(w)))
}

func (n *GaussianWhite) sample(hash int32) float64 {
	dist := distuv.Normal{Mu: n.mean, Sigma: n.stdDev, Src: cellRand(hash)}
	return dist.Rand()
}

// cellRand returns a generator whose stream depends only on a cell hash.
func cellRand(hash int32) *rand.PCG {
	return rand.NewPCG(uint64(int64(hash)), uint64(uint32(hash))*0x9E3779B97F4A7C15)
}

func floor(v float64) int64 {
	return int64(math.Floor(v))
}
