package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/lattice/config"
	"github.com/pthm-cable/lattice/sampler"
	"github.com/pthm-cable/lattice/telemetry"
)

// FitnessEvaluator samples the configured pipeline and scores how far its
// output spread is from the calibration targets.
type FitnessEvaluator struct {
	params     *ParamVector
	seeds      []int64
	baseConfig *config.Config
	pool       *sampler.Pool

	// Best run tracking
	mu        sync.Mutex
	lastStats telemetry.SampleStats // pooled stats from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator sampling with pool.
func NewFitnessEvaluator(params *ParamVector, seeds []int64, baseCfg *config.Config, pool *sampler.Pool) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		seeds:      seeds,
		baseConfig: baseCfg,
		pool:       pool,
	}
}

// LastStats returns the sample stats from the most recent evaluation.
func (fe *FitnessEvaluator) LastStats() telemetry.SampleStats {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastStats
}

// failedFitness scores parameter vectors whose pipeline cannot be built.
const failedFitness = 1e9

// Evaluate computes fitness for raw parameter values (lower = better):
// squared distance of the stddev and p05-p95 spread from their targets,
// pooled over every seed.
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	cfg, err := fe.baseConfig.Clone()
	if err != nil {
		return failedFitness
	}
	if err := fe.params.ApplyToConfig(cfg, raw); err != nil {
		return failedFitness
	}

	grid := cfg.Grid()
	values := make([]float64, 0, grid.Len()*len(fe.seeds))
	buf := make([]float64, grid.Len())
	for _, seed := range fe.seeds {
		cfg.Seed = seed
		src, err := cfg.Build()
		if err != nil {
			return failedFitness
		}
		if err := fe.pool.Sample(src, grid, buf); err != nil {
			return failedFitness
		}
		values = append(values, buf...)
	}

	stats := telemetry.ComputeSampleStats("calibrate", values)
	fe.mu.Lock()
	fe.lastStats = stats
	fe.mu.Unlock()

	return Score(stats, fe.baseConfig.Calibrate)
}

// Score is the squared error of stats against the calibration targets.
// NaN samples make the score failedFitness.
func Score(stats telemetry.SampleStats, target config.CalibrateConfig) float64 {
	if stats.NaN > 0 || stats.Samples == 0 {
		return failedFitness
	}
	dStd := stats.StdDev - target.TargetStdDev
	dRange := stats.Spread() - target.TargetRange
	score := dStd*dStd + dRange*dRange
	if math.IsNaN(score) {
		return failedFitness
	}
	return score
}
