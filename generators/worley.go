package generators

import (
	"math"
	"math/rand/v2"

	"github.com/pthm-cable/lattice/functions"
	"github.com/pthm-cable/lattice/hashing"
	"github.com/pthm-cable/lattice/noise"
)

// Feature point counts per cell are clamped to this range.
const (
	MinFeaturePoints = 1
	MaxFeaturePoints = 10
)

// FeaturePoints maps a cell hash to the number of feature points in the cell.
type FeaturePoints func(hash int32) int

// ConstantPoints places n feature points in every cell.
func ConstantPoints(n int) FeaturePoints {
	return func(int32) int { return n }
}

// HashedPoints varies the count per cell between 1 and limit using the cell hash.
func HashedPoints(limit int) FeaturePoints {
	limit = max(limit, 1)
	return func(hash int32) int {
		return 1 + int(uint32(hash)>>8)%limit
	}
}

// WorleyConfig configures a Worley (cellular) kernel.
type WorleyConfig struct {
	Seed int64
	// Depth is how many nearest distances are tracked.
	Depth         int
	Distance      functions.Distance
	FeaturePoints FeaturePoints
	Return        functions.ReturnDistance
	// Minimizer folds a new distance into the stack; Min, or one of the
	// smooth minimums for softer cell borders.
	Minimizer functions.Combiner
}

// DefaultWorley returns the default Worley configuration.
func DefaultWorley() WorleyConfig {
	return WorleyConfig{
		Seed:          DefaultSeed,
		Depth:         1,
		Distance:      functions.EuclideanSquared,
		FeaturePoints: ConstantPoints(1),
		Return:        functions.Distance0,
		Minimizer:     functions.Min,
	}
}

// Worley measures the distance from the query point to the nearest feature
// points scattered through the surrounding cells. Output lies in [0, +Inf).
type Worley struct {
	seed      int64
	depth     int
	distance  functions.Distance
	points    FeaturePoints
	ret       functions.ReturnDistance
	minimizer functions.Combiner
}

// NewWorley validates cfg and builds a Worley kernel.
func NewWorley(cfg WorleyConfig) (*Worley, error) {
	if cfg.Depth < 1 {
		return nil, noise.Invalid("depth", cfg.Depth, "must be at least 1")
	}
	if cfg.Depth < cfg.Return.MinDepth() {
		return nil, noise.Invalid("depth", cfg.Depth, "is too shallow for return function "+cfg.Return.String())
	}
	if cfg.Distance == nil {
		return nil, noise.Invalid("distance", nil, "is required")
	}
	if cfg.FeaturePoints == nil {
		return nil, noise.Invalid("feature_points", nil, "is required")
	}
	switch cfg.Minimizer {
	case functions.Min, functions.ExponentialSmoothMin, functions.PolynomialSmoothMin, functions.PowerSmoothMin:
	default:
		return nil, noise.Invalid("minimizer", cfg.Minimizer, "must be a minimum")
	}
	return &Worley{
		seed:      cfg.Seed,
		depth:     cfg.Depth,
		distance:  cfg.Distance,
		points:    cfg.FeaturePoints,
		ret:       cfg.Return,
		minimizer: cfg.Minimizer,
	}, nil
}

func (w *Worley) Seed() int64 { return w.seed }

func (w *Worley) Eval1(x float64) float64 { return w.Eval1Seeded(w.seed, x) }
func (w *Worley) Eval2(x, y float64) float64 { return w.Eval2Seeded(w.seed, x, y) }
func (w *Worley) Eval3(x, y, z float64) float64 { return w.Eval3Seeded(w.seed, x, y, z) }
func (w *Worley) Eval4(x, y, z, v float64) float64 { return w.Eval4Seeded(w.seed, x, y, z, v) }

func (w *Worley) Eval1Seeded(seed int64, x float64) float64 {
	return w.eval1(seed, x).Value
}

func (w *Worley) Eval2Seeded(seed int64, x, y float64) float64 {
	return w.eval2(seed, x, y).Value
}

func (w *Worley) Eval3Seeded(seed int64, x, y, z float64) float64 {
	return w.eval3(seed, x, y, z).Value
}

func (w *Worley) Eval4Seeded(seed int64, x, y, z, v float64) float64 {
	return w.eval4(seed, x, y, z, v).Value
}

func (w *Worley) Eval1Result(x float64) noise.Result { return w.eval1(w.seed, x) }
func (w *Worley) Eval2Result(x, y float64) noise.Result { return w.eval2(w.seed, x, y) }
func (w *Worley) Eval3Result(x, y, z float64) noise.Result { return w.eval3(w.seed, x, y, z) }
func (w *Worley) Eval4Result(x, y, z, v float64) noise.Result {
	return w.eval4(w.seed, x, y, z, v)
}

// distanceStack holds the nearest distances seen so far, nearest first.
type distanceStack struct {
	d         []float64
	minimizer functions.Combiner
}

func (w *Worley) newStack() *distanceStack {
	d := make([]float64, w.depth)
	for i := range d {
		d[i] = math.MaxFloat64
	}
	return &distanceStack{d: d, minimizer: w.minimizer}
}

// push folds dist into the stack and reports whether it became the nearest.
func (s *distanceStack) push(dist float64) bool {
	for i := len(s.d) - 1; i >= 1; i-- {
		s.d[i] = math.Max(s.fold(s.d[i], dist), s.d[i-1])
	}
	if dist < s.d[0] {
		s.d[0] = s.fold(s.d[0], dist)
		return true
	}
	return false
}

// fold minimizes held with dist. An empty slot takes dist as is; the
// power smooth minimum overflows on the sentinel.
func (s *distanceStack) fold(held, dist float64) float64 {
	if held == math.MaxFloat64 {
		return dist
	}
	return s.minimizer.Apply(dist, held)
}

func (w *Worley) count(hash int32) int {
	return min(max(w.points(hash), MinFeaturePoints), MaxFeaturePoints)
}

func (w *Worley) eval1(seed int64, x float64) noise.Result {
	ix := floor(x)
	stack := w.newStack()
	var closest [1]float64
	for ox := int64(-1); ox <= 1; ox++ {
		cx := ix + ox
		hash := hashing.Hash1(seed, cx)
		rng := rand.New(cellRand(hash))
		for range w.count(hash) {
			px := rng.Float64() + float64(cx)
			if stack.push(w.distance.Distance1(x, px)) {
				closest = [1]float64{px}
			}
		}
	}
	return noise.NewResult(w.ret.Apply(stack.d), closest[:])
}

func (w *Worley) eval2(seed int64, x, y float64) noise.Result {
	ix, iy := floor(x), floor(y)
	stack := w.newStack()
	var closest [2]float64
	for ox := int64(-1); ox <= 1; ox++ {
		cx := ix + ox
		for oy := int64(-1); oy <= 1; oy++ {
			cy := iy + oy
			hash := hashing.Hash2(seed, cx, cy)
			rng := rand.New(cellRand(hash))
			for range w.count(hash) {
				px := rng.Float64() + float64(cx)
				py := rng.Float64() + float64(cy)
				if stack.push(w.distance.Distance2(x, y, px, py)) {
					closest = [2]float64{px, py}
				}
			}
		}
	}
	return noise.NewResult(w.ret.Apply(stack.d), closest[:])
}

func (w *Worley) eval3(seed int64, x, y, z float64) noise.Result {
	ix, iy, iz := floor(x), floor(y), floor(z)
	stack := w.newStack()
	var closest [3]float64
	for ox := int64(-1); ox <= 1; ox++ {
		cx := ix + ox
		for oy := int64(-1); oy <= 1; oy++ {
			cy := iy + oy
			for oz := int64(-1); oz <= 1; oz++ {
				cz := iz + oz
				hash := hashing.Hash3(seed, cx, cy, cz)
				rng := rand.New(cellRand(hash))
				for range w.count(hash) {
					px := rng.Float64() + float64(cx)
					py := rng.Float64() + float64(cy)
					pz := rng.Float64() + float64(cz)
					if stack.push(w.distance.Distance3(x, y, z, px, py, pz)) {
						closest = [3]float64{px, py, pz}
					}
				}
			}
		}
	}
	return noise.NewResult(w.ret.Apply(stack.d), closest[:])
}

func (w *Worley) eval4(seed int64, x, y, z, v float64) noise.Result {
	ix, iy, iz, iv := floor(x), floor(y), floor(z), floor(v)
	stack := w.newStack()
	var closest [4]float64
	for ox := int64(-1); ox <= 1; ox++ {
		cx := ix + ox
		for oy := int64(-1); oy <= 1; oy++ {
			cy := iy + oy
			for oz := int64(-1); oz <= 1; oz++ {
				cz := iz + oz
				for ov := int64(-1); ov <= 1; ov++ {
					cv := iv + ov
					hash := hashing.Hash4(seed, cx, cy, cz, cv)
					rng := rand.New(cellRand(hash))
					for range w.count(hash) {
						px := rng.Float64() + float64(cx)
						py := rng.Float64() + float64(cy)
						pz := rng.Float64() + float64(cz)
						pv := rng.Float64() + float64(cv)
						if stack.push(w.distance.Distance4(x, y, z, v, px, py, pz, pv)) {
							closest = [4]float64{px, py, pz, pv}
						}
					}
				}
			}
		}
	}
	return noise.NewResult(w.ret.Apply(stack.d), closest[:])
}
