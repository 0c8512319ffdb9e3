package simplex

import (
	"github.com/ojrac/opensimplex-go"
)

// Legacy is the original 2014 OpenSimplex kernel. Each seed needs its own
// permutation tables, which are shared through a Cache.
type Legacy struct {
	seed  int64
	cache *Cache[opensimplex.Noise]
	noise opensimplex.Noise
}

// NewLegacy builds a legacy kernel. A nil cache uses DefaultLegacyCache.
func NewLegacy(seed int64, cache *Cache[opensimplex.Noise]) *Legacy {
	if cache == nil {
		cache = DefaultLegacyCache
	}
	return &Legacy{seed: seed, cache: cache, noise: cache.Get(seed)}
}

func (l *Legacy) Seed() int64 { return l.seed }

func (l *Legacy) Eval1(x float64) float64 { return l.noise.Eval2(x, 0) }
func (l *Legacy) Eval2(x, y float64) float64 { return l.noise.Eval2(x, y) }
func (l *Legacy) Eval3(x, y, z float64) float64 { return l.noise.Eval3(x, y, z) }
func (l *Legacy) Eval4(x, y, z, w float64) float64 { return l.noise.Eval4(x, y, z, w) }

func (l *Legacy) Eval1Seeded(seed int64, x float64) float64 {
	return l.at(seed).Eval2(x, 0)
}

func (l *Legacy) Eval2Seeded(seed int64, x, y float64) float64 {
	return l.at(seed).Eval2(x, y)
}

func (l *Legacy) Eval3Seeded(seed int64, x, y, z float64) float64 {
	return l.at(seed).Eval3(x, y, z)
}

func (l *Legacy) Eval4Seeded(seed int64, x, y, z, w float64) float64 {
	return l.at(seed).Eval4(x, y, z, w)
}

func (l *Legacy) at(seed int64) opensimplex.Noise {
	if seed == l.seed {
		return l.noise
	}
	return l.cache.Get(seed)
}
