// Package config provides configuration loading and access for noise
// pipelines and the sampling tools built on them.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds a pipeline description plus sampling and output options.
type Config struct {
	Seed      int64           `yaml:"seed"` // Inherited by every node that sets no seed
	Source    SourceConfig    `yaml:"source"`
	Sampling  SamplingConfig  `yaml:"sampling"`
	Output    OutputConfig    `yaml:"output"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Calibrate CalibrateConfig `yaml:"calibrate"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// SourceConfig describes one node of the pipeline tree. Which fields apply
// depends on Type; unused fields are ignored.
type SourceConfig struct {
	Type string `yaml:"type"`
	Seed *int64 `yaml:"seed,omitempty"`

	// perlin, value
	Interpolation string `yaml:"interpolation,omitempty"`
	Fade          string `yaml:"fade,omitempty"`

	// simplex
	Kind      string `yaml:"kind,omitempty"`       // fast or super
	Variant2D string `yaml:"variant_2d,omitempty"` // classic, improve_x
	Variant3D string `yaml:"variant_3d,omitempty"`
	Variant4D string `yaml:"variant_4d,omitempty"`

	// gaussian_white
	Mean   float64  `yaml:"mean,omitempty"`
	StdDev *float64 `yaml:"stddev,omitempty"`

	// worley
	Depth         *int   `yaml:"depth,omitempty"`
	Distance      string `yaml:"distance,omitempty"`       // euclidean, manhattan, minkowski(p), ...
	FeaturePoints int    `yaml:"feature_points,omitempty"` // Points per cell
	HashedPoints  bool   `yaml:"hashed_points,omitempty"`  // Vary count per cell in [1, feature_points]
	Return        string `yaml:"return,omitempty"`
	Minimizer     string `yaml:"minimizer,omitempty"`

	// constant
	Value float64 `yaml:"value,omitempty"`

	// octavation
	Octaves       *int     `yaml:"octaves,omitempty"`
	Gain          *float64 `yaml:"gain,omitempty"`
	Lacunarity    *float64 `yaml:"lacunarity,omitempty"`
	Fractal       string   `yaml:"fractal,omitempty"`
	IncrementSeed bool     `yaml:"increment_seed,omitempty"`

	// Child of octavation.
	Input *SourceConfig `yaml:"input,omitempty"`

	// blend, combination, selection
	A        *SourceConfig `yaml:"a,omitempty"`
	B        *SourceConfig `yaml:"b,omitempty"`
	Control  *SourceConfig `yaml:"control,omitempty"`
	Combiner string        `yaml:"combiner,omitempty"`
	Boundary float64       `yaml:"boundary,omitempty"`

	// Pipeline stages wrapped around this node.
	Scale     []float64        `yaml:"scale,omitempty"` // One uniform factor or one per axis
	Warp      *WarpConfig      `yaml:"warp,omitempty"`
	Modifiers []ModifierConfig `yaml:"modifiers,omitempty"`
}

// WarpConfig describes a domain warp applied before the node is sampled.
type WarpConfig struct {
	Strength []float64    `yaml:"strength,omitempty"` // One uniform strength or one per axis
	Source   SourceConfig `yaml:"source"`
}

// ModifierConfig describes one value modifier.
type ModifierConfig struct {
	Type string  `yaml:"type"` // abs, clamp, invert
	Min  float64 `yaml:"min,omitempty"`
	Max  float64 `yaml:"max,omitempty"`
}

// SamplingConfig describes the grid sampled by the CLIs.
// The grid spans X and Y; Z and W stay at their origin values.
type SamplingConfig struct {
	Dimension int       `yaml:"dimension"` // 1 to 4
	Width     int       `yaml:"width"`
	Height    int       `yaml:"height"` // Forced to 1 for 1D
	Origin    []float64 `yaml:"origin"` // Up to four values, missing axes are 0
	Step      float64   `yaml:"step"`
	Workers   int       `yaml:"workers"` // 0 = runtime.GOMAXPROCS(0)
}

// OutputConfig controls what the CLIs write.
type OutputConfig struct {
	Dir         string `yaml:"dir"` // Empty disables file output
	WriteSample bool   `yaml:"write_samples"`
	PNG         string `yaml:"png"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow int `yaml:"perf_window"` // Rows per perf sample
	Bins       int `yaml:"bins"`        // Histogram bins in stats output
}

// CalibrateConfig holds the targets of cmd/calibrate.
type CalibrateConfig struct {
	TargetStdDev float64 `yaml:"target_stddev"`
	TargetRange  float64 `yaml:"target_range"` // Desired p95 - p05
	MaxIter      int     `yaml:"max_iter"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Origin  [4]float64 // Sampling.Origin padded to four axes
	Samples int        // Width * Height
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := Parse(data, cfg); err != nil {
			return nil, err
		}
	}

	cfg.computeDerived()
	return cfg, nil
}

// Parse overlays YAML data onto cfg. A source tree in data replaces the
// default tree rather than merging into it.
func Parse(data []byte, cfg *Config) error {
	var probe struct {
		Source *yaml.Node `yaml:"source"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	if probe.Source != nil {
		cfg.Source = SourceConfig{}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Sampling.Dimension == 1 {
		c.Sampling.Height = 1
	}
	c.Derived.Origin = [4]float64{}
	for i := 0; i < len(c.Sampling.Origin) && i < 4; i++ {
		c.Derived.Origin[i] = c.Sampling.Origin[i]
	}
	c.Derived.Samples = c.Sampling.Width * c.Sampling.Height

	c.Source.fillDefaults()
}

// fillDefaults applies per-type defaults to fields a node leaves unset.
// Numeric fields are pointers so an explicit zero survives to Build.
func (s *SourceConfig) fillDefaults() {
	switch s.Type {
	case "perlin", "value":
		if s.Interpolation == "" {
			s.Interpolation = "linear"
		}
		if s.Fade == "" {
			s.Fade = "quintic"
		}
	case "simplex":
		if s.Kind == "" {
			s.Kind = "fast"
		}
	case "gaussian_white":
		if s.StdDev == nil {
			s.StdDev = ptr(1.0 / 3.0)
		}
	case "worley":
		if s.Depth == nil {
			s.Depth = ptr(1)
		}
		if s.Distance == "" {
			s.Distance = "euclidean_squared"
		}
		if s.FeaturePoints == 0 {
			s.FeaturePoints = 1
		}
		if s.Return == "" {
			s.Return = "distance_0"
		}
		if s.Minimizer == "" {
			s.Minimizer = "min"
		}
	case "octavation":
		if s.Octaves == nil {
			s.Octaves = ptr(1)
		}
		if s.Gain == nil {
			s.Gain = ptr(0.5)
		}
		if s.Lacunarity == nil {
			s.Lacunarity = ptr(2.0)
		}
		if s.Fractal == "" {
			s.Fractal = "fbm"
		}
	case "blend":
		if s.Interpolation == "" {
			s.Interpolation = "linear"
		}
	case "combination":
		if s.Combiner == "" {
			s.Combiner = "add"
		}
	}

	for _, child := range []*SourceConfig{s.Input, s.A, s.B, s.Control} {
		if child != nil {
			child.fillDefaults()
		}
	}
	if s.Warp != nil {
		if len(s.Warp.Strength) == 0 {
			s.Warp.Strength = []float64{4}
		}
		s.Warp.Source.fillDefaults()
	}
}

func ptr[T any](v T) *T { return &v }

// deref returns *p, or the zero value when p is nil.
func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Clone returns a deep copy of c, sharing no source tree nodes.
func (c *Config) Clone() (*Config, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	out := &Config{}
	if err := yaml.Unmarshal(data, out); err != nil {
		return nil, fmt.Errorf("parsing config copy: %w", err)
	}
	out.computeDerived()
	return out, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
