package telemetry

import "fmt"

// Collector accumulates sampled rows in windows and produces SampleStats per
// window and for the whole run.
type Collector struct {
	label      string
	windowRows int

	// Current window tracking
	windowStart int
	rows        int
	window      []float64

	all []float64
}

// NewCollector creates a new stats collector.
// windowRows: how many rows each stats window spans.
func NewCollector(label string, windowRows int) *Collector {
	if windowRows < 1 {
		windowRows = 1
	}
	return &Collector{label: label, windowRows: windowRows}
}

// Record adds rows of samples to the current window.
func (c *Collector) Record(values []float64, rows int) {
	c.window = append(c.window, values...)
	c.all = append(c.all, values...)
	c.rows += rows
}

// ShouldFlush returns true if the current window holds windowRows rows.
func (c *Collector) ShouldFlush() bool {
	return c.rows-c.windowStart >= c.windowRows
}

// Pending reports whether rows were recorded since the last Flush.
func (c *Collector) Pending() bool {
	return c.rows > c.windowStart
}

// Flush produces stats for the current window, labelled with its row range,
// and starts the next window.
func (c *Collector) Flush() SampleStats {
	s := ComputeSampleStats(c.windowLabel(), c.window)
	c.windowStart = c.rows
	c.window = c.window[:0]
	return s
}

func (c *Collector) windowLabel() string {
	return fmt.Sprintf("%s/rows_%d_%d", c.label, c.windowStart, c.rows)
}

// Total produces stats over every recorded sample.
func (c *Collector) Total() SampleStats {
	return ComputeSampleStats(c.label, c.all)
}

// Histogram buckets every recorded sample.
func (c *Collector) Histogram(bins int) []HistogramBin {
	return ComputeHistogram(c.label, c.all, bins)
}
