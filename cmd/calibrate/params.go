package main

import (
	"fmt"

	"github.com/pthm-cable/lattice/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Starting value
}

// ParamVector holds the set of tunable parameters of one octavation node.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the tunable parameters, starting from the values
// found in node.
func NewParamVector(path string, node *config.SourceConfig) *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "gain", Path: path + ".gain", Min: 0.05, Max: 0.95, Default: valueOr(node.Gain, 0.5)},
			{Name: "lacunarity", Path: path + ".lacunarity", Min: 1.1, Max: 4.0, Default: valueOr(node.Lacunarity, 2)},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the starting parameter values, clamped to bounds.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return pv.Clamp(v)
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = max(spec.Min, min(spec.Max, v[i]))
	}
	return clamped
}

// ApplyToConfig writes clamped values into the first octavation node of cfg.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) error {
	node, _ := findOctavation(&cfg.Source, "source")
	if node == nil {
		return fmt.Errorf("no octavation node in source tree")
	}
	clamped := pv.Clamp(values)
	node.Gain = &clamped[0]
	node.Lacunarity = &clamped[1]
	return nil
}

// ExtractFromConfig reads the current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	node, _ := findOctavation(&cfg.Source, "source")
	if node == nil {
		return nil
	}
	return []float64{valueOr(node.Gain, 0.5), valueOr(node.Lacunarity, 2)}
}

func valueOr(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}

// branch is a child node and its path segment.
type branch struct {
	node *config.SourceConfig
	name string
}

// findOctavation returns the first octavation node of the tree rooted at s,
// depth first, and its config path.
func findOctavation(s *config.SourceConfig, path string) (*config.SourceConfig, string) {
	if s == nil {
		return nil, ""
	}
	if s.Type == "octavation" {
		return s, path
	}
	children := []branch{{s.Input, "input"}, {s.A, "a"}, {s.B, "b"}, {s.Control, "control"}}
	if s.Warp != nil {
		children = append(children, branch{&s.Warp.Source, "warp.source"})
	}
	for _, c := range children {
		if node, p := findOctavation(c.node, path+"."+c.name); node != nil {
			return node, p
		}
	}
	return nil, ""
}
