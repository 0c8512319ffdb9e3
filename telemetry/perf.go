package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for one sampling batch.
const (
	PhaseSample = "sample"
	PhaseStats  = "stats"
	PhaseWrite  = "write"
)

// PerfSample holds timing data for a single batch of rows.
type PerfSample struct {
	BatchDuration time.Duration
	Samples       int
	Phases        map[string]time.Duration
}

// PerfCollector tracks performance metrics over a rolling window of batches.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	batchStart    time.Time
	phaseStart    time.Time
	lastPhase     string
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of batches to average over.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 32
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
	}
}

// StartBatch begins timing a new batch.
func (p *PerfCollector) StartBatch() {
	p.batchStart = time.Now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	// End previous phase if any
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndBatch finishes timing the current batch of n samples and records it.
func (p *PerfCollector) EndBatch(n int) {
	now := time.Now()
	// End final phase
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples[p.writeIndex] = PerfSample{
		BatchDuration: now.Sub(p.batchStart),
		Samples:       n,
		Phases:        p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	// Batch timing
	AvgBatchDuration time.Duration
	MinBatchDuration time.Duration
	MaxBatchDuration time.Duration

	// Phase breakdown (average durations)
	PhaseAvg map[string]time.Duration

	// Phase percentages of total batch time
	PhasePct map[string]float64

	// Throughput
	BatchesPerSecond float64
	SamplesPerSecond float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	if p.sampleCount == 0 {
		return PerfStats{
			PhaseAvg: make(map[string]time.Duration),
			PhasePct: make(map[string]float64),
		}
	}

	var total time.Duration
	var minBatch, maxBatch time.Duration
	var samples int
	phaseSum := make(map[string]time.Duration)

	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		total += s.BatchDuration
		samples += s.Samples

		if i == 0 || s.BatchDuration < minBatch {
			minBatch = s.BatchDuration
		}
		if s.BatchDuration > maxBatch {
			maxBatch = s.BatchDuration
		}

		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	avg := total / time.Duration(p.sampleCount)

	phaseAvg := make(map[string]time.Duration)
	phasePct := make(map[string]float64)
	for phase, sum := range phaseSum {
		phaseAvg[phase] = sum / time.Duration(p.sampleCount)
		if avg > 0 {
			phasePct[phase] = float64(phaseAvg[phase]) / float64(avg) * 100
		}
	}

	var batchesPerSec, samplesPerSec float64
	if avg > 0 {
		batchesPerSec = float64(time.Second) / float64(avg)
	}
	if total > 0 {
		samplesPerSec = float64(samples) / total.Seconds()
	}

	return PerfStats{
		AvgBatchDuration: avg,
		MinBatchDuration: minBatch,
		MaxBatchDuration: maxBatch,
		PhaseAvg:         phaseAvg,
		PhasePct:         phasePct,
		BatchesPerSecond: batchesPerSec,
		SamplesPerSecond: samplesPerSec,
	}
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_batch_us", s.AvgBatchDuration.Microseconds(),
		"min_batch_us", s.MinBatchDuration.Microseconds(),
		"max_batch_us", s.MaxBatchDuration.Microseconds(),
		"samples_per_sec", int(s.SamplesPerSecond),
	}

	for _, phase := range []string{PhaseSample, PhaseStats, PhaseWrite} {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, phase+"_pct", int(pct*10)/10.0)
		}
	}

	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_batch_us", s.AvgBatchDuration.Microseconds()),
		slog.Int64("min_batch_us", s.MinBatchDuration.Microseconds()),
		slog.Int64("max_batch_us", s.MaxBatchDuration.Microseconds()),
		slog.Float64("batches_per_sec", s.BatchesPerSecond),
		slog.Float64("samples_per_sec", s.SamplesPerSecond),
	}

	for phase, pct := range s.PhasePct {
		attrs = append(attrs, slog.Float64(phase+"_pct", pct))
	}

	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	Batch         int     `csv:"batch"`
	AvgBatchUS    int64   `csv:"avg_batch_us"`
	MinBatchUS    int64   `csv:"min_batch_us"`
	MaxBatchUS    int64   `csv:"max_batch_us"`
	SamplesPerSec float64 `csv:"samples_per_sec"`
	SamplePct     float64 `csv:"sample_pct"`
	StatsPct      float64 `csv:"stats_pct"`
	WritePct      float64 `csv:"write_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(batch int) PerfStatsCSV {
	return PerfStatsCSV{
		Batch:         batch,
		AvgBatchUS:    s.AvgBatchDuration.Microseconds(),
		MinBatchUS:    s.MinBatchDuration.Microseconds(),
		MaxBatchUS:    s.MaxBatchDuration.Microseconds(),
		SamplesPerSec: s.SamplesPerSecond,
		SamplePct:     s.PhasePct[PhaseSample],
		StatsPct:      s.PhasePct[PhaseStats],
		WritePct:      s.PhasePct[PhaseWrite],
	}
}
