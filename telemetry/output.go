package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/pthm-cable/lattice/config"
)

// SampleRow is one grid sample written to samples.csv.
type SampleRow struct {
	Col   int     `csv:"col"`
	Row   int     `csv:"row"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Z     float64 `csv:"z"`
	W     float64 `csv:"w"`
	Value float64 `csv:"value"`
}

// csvFile is an output file that writes its header once.
type csvFile struct {
	name          string
	f             *os.File
	headerWritten bool
}

func (c *csvFile) write(records any) error {
	if c.f == nil {
		return nil
	}
	if !c.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, c.f); err != nil {
			return fmt.Errorf("writing %s: %w", c.name, err)
		}
		c.headerWritten = true
		return nil
	}
	// Subsequent writes skip headers
	if err := gocsv.MarshalWithoutHeaders(records, c.f); err != nil {
		return fmt.Errorf("writing %s: %w", c.name, err)
	}
	return nil
}

// OutputManager handles structured sampling output with CSV logging.
type OutputManager struct {
	dir       string
	samples   csvFile
	stats     csvFile
	histogram csvFile
	perf      csvFile
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled). samples.csv is only created
// when withSamples is set.
func NewOutputManager(dir string, withSamples bool) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{
		dir:       dir,
		samples:   csvFile{name: "samples.csv"},
		stats:     csvFile{name: "stats.csv"},
		histogram: csvFile{name: "histogram.csv"},
		perf:      csvFile{name: "perf.csv"},
	}

	files := []*csvFile{&om.stats, &om.histogram, &om.perf}
	if withSamples {
		files = append(files, &om.samples)
	}
	for _, c := range files {
		f, err := os.Create(filepath.Join(dir, c.name))
		if err != nil {
			om.Close()
			return nil, fmt.Errorf("creating %s: %w", c.name, err)
		}
		c.f = f
	}

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteSamples appends rows to samples.csv. It is a no-op when samples
// were not requested.
func (om *OutputManager) WriteSamples(rows []SampleRow) error {
	if om == nil || len(rows) == 0 {
		return nil
	}
	return om.samples.write(rows)
}

// WriteStats writes a sample stats record to stats.csv.
func (om *OutputManager) WriteStats(stats SampleStats) error {
	if om == nil {
		return nil
	}
	return om.stats.write([]SampleStats{stats})
}

// WriteHistogram appends histogram bins to histogram.csv.
func (om *OutputManager) WriteHistogram(bins []HistogramBin) error {
	if om == nil || len(bins) == 0 {
		return nil
	}
	return om.histogram.write(bins)
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, batch int) error {
	if om == nil {
		return nil
	}
	return om.perf.write([]PerfStatsCSV{stats.ToCSV(batch)})
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	for _, c := range []*csvFile{&om.samples, &om.stats, &om.histogram, &om.perf} {
		if c.f == nil {
			continue
		}
		if err := c.f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		c.f = nil
	}
	return firstErr
}
