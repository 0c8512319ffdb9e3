package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/lattice/config"
	"github.com/pthm-cable/lattice/sampler"
	"github.com/pthm-cable/lattice/telemetry"
)

func main() {
	fs, configPath, logStats := newFlags()
	fs.Parse(os.Args[1:])

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()
	applyOverrides(fs, cfg)

	total, err := run(cfg, *logStats)
	if err != nil {
		slog.Error("sampling failed", "error", err)
		os.Exit(1)
	}
	slog.Info("sampled", "stats", total)
}

// newFlags defines the CLI flags. Overrides of config values are applied by
// applyOverrides.
func newFlags() (fs *flag.FlagSet, configPath *string, logStats *bool) {
	fs = flag.NewFlagSet("lattice", flag.ExitOnError)
	configPath = fs.String("config", "", "Path to config.yaml (empty = use defaults)")
	logStats = fs.Bool("log-stats", false, "Output per-window stats via slog")
	fs.String("output-dir", "", "Output directory for CSV logs and config snapshot (empty = use config)")
	fs.Int64("seed", 0, "Pipeline seed (unset = use config)")
	fs.Int("workers", -1, "Sampling workers (0 = GOMAXPROCS, -1 = use config)")
	fs.Bool("write-samples", false, "Write every sample to samples.csv")
	return fs, configPath, logStats
}

// applyOverrides copies the flags given on the command line into cfg.
func applyOverrides(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "seed":
			cfg.Seed = v.(int64)
		case "output-dir":
			if dir := v.(string); dir != "" {
				cfg.Output.Dir = dir
			}
		case "workers":
			if w := v.(int); w >= 0 {
				cfg.Sampling.Workers = w
			}
		case "write-samples":
			cfg.Output.WriteSample = v.(bool)
		}
	})
}

// run samples the configured grid in windows of Telemetry.PerfWindow rows,
// streaming stats and samples to the output directory.
func run(cfg *config.Config, logStats bool) (telemetry.SampleStats, error) {
	src, err := cfg.Build()
	if err != nil {
		return telemetry.SampleStats{}, err
	}
	grid := cfg.Grid()
	if err := grid.Validate(src); err != nil {
		return telemetry.SampleStats{}, err
	}

	om, err := telemetry.NewOutputManager(cfg.Output.Dir, cfg.Output.WriteSample)
	if err != nil {
		return telemetry.SampleStats{}, err
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		return telemetry.SampleStats{}, err
	}

	pool := sampler.NewPool(cfg.Sampling.Workers)
	defer pool.Close()

	window := cfg.Telemetry.PerfWindow
	if window < 1 {
		window = 1
	}
	collector := telemetry.NewCollector(cfg.Source.Type, window)
	perf := telemetry.NewPerfCollector(32)

	slog.Info("starting sampling",
		"seed", cfg.Seed,
		"dimension", grid.Dimension,
		"width", grid.Width,
		"height", grid.Height,
		"workers", pool.Workers(),
		"output_dir", om.Dir(),
	)

	buf := make([]float64, window*grid.Width)
	batch := 0
	for r0 := 0; r0 < grid.Height; r0 += window {
		r1 := min(r0+window, grid.Height)
		values := buf[:(r1-r0)*grid.Width]

		perf.StartBatch()
		perf.StartPhase(telemetry.PhaseSample)
		if err := pool.SampleRows(src, grid, r0, r1, values); err != nil {
			return telemetry.SampleStats{}, err
		}

		perf.StartPhase(telemetry.PhaseStats)
		collector.Record(values, r1-r0)
		if collector.ShouldFlush() || r1 == grid.Height {
			stats := collector.Flush()
			if logStats {
				stats.LogStats()
			}
			if err := om.WriteStats(stats); err != nil {
				return telemetry.SampleStats{}, err
			}
		}

		perf.StartPhase(telemetry.PhaseWrite)
		if cfg.Output.WriteSample {
			if err := om.WriteSamples(sampleRows(grid, r0, values)); err != nil {
				return telemetry.SampleStats{}, err
			}
		}
		perf.EndBatch(len(values))

		if err := om.WritePerf(perf.Stats(), batch); err != nil {
			return telemetry.SampleStats{}, err
		}
		batch++
	}

	perf.Stats().LogStats()

	total := collector.Total()
	if err := om.WriteStats(total); err != nil {
		return total, err
	}
	if err := om.WriteHistogram(collector.Histogram(cfg.Telemetry.Bins)); err != nil {
		return total, err
	}
	return total, om.Close()
}

// sampleRows pairs values, which start at row r0, with their coordinates.
func sampleRows(grid sampler.Grid, r0 int, values []float64) []telemetry.SampleRow {
	rows := make([]telemetry.SampleRow, len(values))
	for i, v := range values {
		col, row := i%grid.Width, r0+i/grid.Width
		c := grid.Coord(col, row)
		rows[i] = telemetry.SampleRow{Col: col, Row: row, X: c[0], Y: c[1], Z: c[2], W: c[3], Value: v}
	}
	return rows
}
