// Command calibrate tunes the gain and lacunarity of a configured octavation
// node so sampled output reaches a target stddev and p05-p95 spread.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/lattice/config"
	"github.com/pthm-cable/lattice/sampler"
)

// EvalRow is one line of calibrate_log.csv.
type EvalRow struct {
	Eval       int     `csv:"eval"`
	Fitness    float64 `csv:"fitness"`
	Gain       float64 `csv:"gain"`
	Lacunarity float64 `csv:"lacunarity"`
	StdDev     float64 `csv:"stddev"`
	Spread     float64 `csv:"spread"`
}

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 0, "Maximum number of evaluations (0 = calibrate.max_iter)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if *outputDir == "" {
		slog.Error("-output is required")
		os.Exit(1)
	}
	if err := calibrate(*configPath, *outputDir, *seeds, *maxEvals); err != nil {
		slog.Error("calibration failed", "error", err)
		os.Exit(1)
	}
}

// calibrate runs the search and writes calibrate_log.csv and
// best_config.yaml to outputDir.
func calibrate(configPath, outputDir string, seeds, maxEvals int) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	baseCfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	node, path := findOctavation(&baseCfg.Source, "source")
	if node == nil {
		return fmt.Errorf("source tree has no octavation node to calibrate")
	}
	if maxEvals <= 0 {
		maxEvals = baseCfg.Calibrate.MaxIter
	}

	params := NewParamVector(path, node)

	// Generate seeds for evaluation
	evalSeeds := make([]int64, max(seeds, 1))
	for i := range evalSeeds {
		evalSeeds[i] = baseCfg.Seed + int64(i*1000)
	}

	pool := sampler.NewPool(baseCfg.Sampling.Workers)
	defer pool.Close()
	evaluator := NewFitnessEvaluator(params, evalSeeds, baseCfg, pool)

	var rows []EvalRow
	bestFitness := failedFitness
	bestParams := params.DefaultVector()
	startTime := time.Now()
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			clamped := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(clamped)
			stats := evaluator.LastStats()

			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = clamped
			}
			rows = append(rows, EvalRow{
				Eval:       len(rows) + 1,
				Fitness:    fitness,
				Gain:       clamped[0],
				Lacunarity: clamped[1],
				StdDev:     stats.StdDev,
				Spread:     stats.Spread(),
			})
			slog.Debug("eval", "n", len(rows), "fitness", fitness, "gain", clamped[0], "lacunarity", clamped[1])
			return fitness
		},
	}

	slog.Info("starting calibration",
		"node", path,
		"seeds", len(evalSeeds),
		"max_evals", maxEvals,
		"target_stddev", baseCfg.Calibrate.TargetStdDev,
		"target_range", baseCfg.Calibrate.TargetRange,
	)

	initX := params.Normalize(params.DefaultVector())
	settings := &optimize.Settings{FuncEvaluations: maxEvals}
	result, err := optimize.Minimize(problem, initX, settings, &optimize.NelderMead{})
	if err != nil {
		slog.Warn("optimization ended", "error", err)
	}
	status := "none"
	if result != nil {
		status = result.Status.String()
	}

	slog.Info("calibration complete",
		"evals", len(rows),
		"elapsed", time.Since(startTime).Round(time.Millisecond).String(),
		"status", status,
		"best_fitness", bestFitness,
		"gain", bestParams[0],
		"lacunarity", bestParams[1],
	)

	logPath := filepath.Join(outputDir, "calibrate_log.csv")
	f, err := os.Create(logPath)
	if err != nil {
		return fmt.Errorf("creating calibrate_log.csv: %w", err)
	}
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		f.Close()
		return fmt.Errorf("writing calibrate_log.csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	bestCfg, err := baseCfg.Clone()
	if err != nil {
		return err
	}
	if err := params.ApplyToConfig(bestCfg, bestParams); err != nil {
		return err
	}
	configOutPath := filepath.Join(outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(configOutPath); err != nil {
		return err
	}
	slog.Info("best config saved", "path", configOutPath)
	return nil
}
