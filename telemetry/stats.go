package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SampleStats summarises the values of one sampled grid.
type SampleStats struct {
	Label   string `csv:"label"`
	Samples int    `csv:"samples"`
	NaN     int    `csv:"nan"` // Excluded from every other field

	// OutOfRange counts finite values outside [-1, 1].
	OutOfRange int `csv:"out_of_range"`

	Mean   float64 `csv:"mean"`
	StdDev float64 `csv:"stddev"`
	Skew   float64 `csv:"skew"`
	Min    float64 `csv:"min"`
	Max    float64 `csv:"max"`

	P05 float64 `csv:"p05"`
	P10 float64 `csv:"p10"`
	P50 float64 `csv:"p50"`
	P90 float64 `csv:"p90"`
	P95 float64 `csv:"p95"`
}

// Spread returns P95 - P05.
func (s SampleStats) Spread() float64 { return s.P95 - s.P05 }

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// sortedFinite returns the non-NaN values of values in ascending order and
// the number of NaNs dropped.
func sortedFinite(values []float64) ([]float64, int) {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			sorted = append(sorted, v)
		}
	}
	sort.Float64s(sorted)
	return sorted, len(values) - len(sorted)
}

// ComputeSampleStats calculates moments and percentiles of values.
func ComputeSampleStats(label string, values []float64) SampleStats {
	sorted, nan := sortedFinite(values)
	s := SampleStats{Label: label, Samples: len(values), NaN: nan}
	n := len(sorted)
	if n == 0 {
		return s
	}

	for _, v := range sorted {
		if v < -1 || v > 1 {
			s.OutOfRange++
		}
	}

	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	if n > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(sorted, nil)
		if s.StdDev > 0 {
			s.Skew = stat.Skew(sorted, nil)
		}
	} else {
		s.Mean = sorted[0]
	}

	s.P05 = Percentile(sorted, 0.05)
	s.P10 = Percentile(sorted, 0.10)
	s.P50 = Percentile(sorted, 0.50)
	s.P90 = Percentile(sorted, 0.90)
	s.P95 = Percentile(sorted, 0.95)
	return s
}

// HistogramBin is one bucket of a value histogram. Lo is inclusive, Hi
// exclusive except for the last bin.
type HistogramBin struct {
	Label string  `csv:"label"`
	Bin   int     `csv:"bin"`
	Lo    float64 `csv:"lo"`
	Hi    float64 `csv:"hi"`
	Count int     `csv:"count"`
}

// ComputeHistogram buckets the non-NaN values into bins equal-width bins
// spanning their range.
func ComputeHistogram(label string, values []float64, bins int) []HistogramBin {
	if bins < 1 {
		bins = 1
	}
	sorted, _ := sortedFinite(values)
	if len(sorted) == 0 {
		return nil
	}
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		return []HistogramBin{{Label: label, Lo: lo, Hi: hi, Count: len(sorted)}}
	}

	dividers := floats.Span(make([]float64, bins+1), lo, hi)
	// The top divider must lie strictly above the maximum.
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	out := make([]HistogramBin, bins)
	for i, c := range counts {
		out[i] = HistogramBin{Label: label, Bin: i, Lo: dividers[i], Hi: dividers[i+1], Count: int(c)}
	}
	out[bins-1].Hi = hi
	return out
}

// LogValue implements slog.LogValuer for structured logging.
func (s SampleStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("label", s.Label),
		slog.Int("samples", s.Samples),
		slog.Int("nan", s.NaN),
		slog.Int("out_of_range", s.OutOfRange),
		slog.Float64("mean", s.Mean),
		slog.Float64("stddev", s.StdDev),
		slog.Float64("skew", s.Skew),
		slog.Float64("min", s.Min),
		slog.Float64("max", s.Max),
		slog.Float64("p05", s.P05),
		slog.Float64("p10", s.P10),
		slog.Float64("p50", s.P50),
		slog.Float64("p90", s.P90),
		slog.Float64("p95", s.P95),
	)
}

// LogStats logs the sample stats using slog.
func (s SampleStats) LogStats() {
	slog.Info("stats",
		"label", s.Label,
		"samples", s.Samples,
		"nan", s.NaN,
		"out_of_range", s.OutOfRange,
		"mean", s.Mean,
		"stddev", s.StdDev,
		"min", s.Min,
		"max", s.Max,
		"p05", s.P05,
		"p50", s.P50,
		"p95", s.P95,
	)
}
