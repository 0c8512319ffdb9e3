package config

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/lattice/functions"
	"github.com/pthm-cable/lattice/generators"
	"github.com/pthm-cable/lattice/generators/simplex"
	"github.com/pthm-cable/lattice/modifiers"
	"github.com/pthm-cable/lattice/modules"
	"github.com/pthm-cable/lattice/noise"
	"github.com/pthm-cable/lattice/pipeline"
	"github.com/pthm-cable/lattice/sampler"
	"github.com/pthm-cable/lattice/transformers"
)

// Build constructs the configured pipeline and checks it can be sampled in
// Sampling.Dimension dimensions.
func (c *Config) Build() (*pipeline.Pipeline, error) {
	src, err := c.Source.build(c.Seed, "source")
	if err != nil {
		return nil, err
	}
	p, err := pipeline.New(pipeline.Config{Source: src})
	if err != nil {
		return nil, err
	}
	if err := noise.CheckDimension(p, c.Sampling.Dimension); err != nil {
		return nil, fmt.Errorf("sampling.dimension: %w", err)
	}
	slog.Debug("built pipeline", "root", c.Source.Type, "seed", c.Seed, "dimension", c.Sampling.Dimension)
	return p, nil
}

// BuildDetailed constructs the configured pipeline over a detailed root,
// currently only worley.
func (c *Config) BuildDetailed() (*pipeline.DetailedPipeline, error) {
	root := c.Source
	stages := pipeline.Config{}
	if err := root.stages(root.seed(c.Seed), "source", &stages); err != nil {
		return nil, err
	}
	root.Scale, root.Warp, root.Modifiers = nil, nil, nil
	src, err := root.build(c.Seed, "source")
	if err != nil {
		return nil, err
	}
	stages.Source = src
	return pipeline.NewDetailed(stages)
}

// Grid returns the sampling grid described by Sampling.
func (c *Config) Grid() sampler.Grid {
	return sampler.Grid{
		Dimension: c.Sampling.Dimension,
		Width:     c.Sampling.Width,
		Height:    c.Sampling.Height,
		Origin:    c.Derived.Origin,
		Step:      c.Sampling.Step,
	}
}

func (s *SourceConfig) seed(parent int64) int64 {
	if s.Seed != nil {
		return *s.Seed
	}
	return parent
}

func (s *SourceConfig) build(parentSeed int64, path string) (noise.Source, error) {
	seed := s.seed(parentSeed)
	src, err := s.buildKernel(seed, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(s.Scale) == 0 && s.Warp == nil && len(s.Modifiers) == 0 {
		return src, nil
	}

	stages := pipeline.Config{Source: src}
	if err := s.stages(seed, path, &stages); err != nil {
		return nil, err
	}
	p, err := pipeline.New(stages)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if seeded, err := p.Seeded(); err == nil {
		return seeded, nil
	}
	return p, nil
}

// stages resolves the transformers and modifiers declared on s into cfg.
func (s *SourceConfig) stages(seed int64, path string, cfg *pipeline.Config) error {
	if len(s.Scale) > 0 {
		f, err := axes(s.Scale)
		if err != nil {
			return fmt.Errorf("%s.scale: %w", path, err)
		}
		sc, err := transformers.NewScale(f[0], f[1], f[2], f[3])
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		cfg.Simple = append(cfg.Simple, sc)
	}
	if s.Warp != nil {
		warpSrc, err := s.Warp.Source.build(seed, path+".warp.source")
		if err != nil {
			return err
		}
		wcfg := transformers.DefaultDomainWarp(warpSrc)
		if wcfg.Warp, err = axes(s.Warp.Strength); err != nil {
			return fmt.Errorf("%s.warp.strength: %w", path, err)
		}
		dw, err := transformers.NewDomainWarp(wcfg)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		cfg.Detailed = append(cfg.Detailed, dw)
	}
	for i, m := range s.Modifiers {
		mod, err := m.build()
		if err != nil {
			return fmt.Errorf("%s.modifiers[%d]: %w", path, i, err)
		}
		cfg.Modifiers = append(cfg.Modifiers, mod)
	}
	return nil
}

// axes expands one uniform value or four per-axis values.
func axes(v []float64) ([4]float64, error) {
	switch len(v) {
	case 1:
		return [4]float64{v[0], v[0], v[0], v[0]}, nil
	case 4:
		return [4]float64{v[0], v[1], v[2], v[3]}, nil
	}
	return [4]float64{}, noise.Invalid("axes", v, "must list one or four values")
}

func (m ModifierConfig) build() (modifiers.Modifier, error) {
	switch m.Type {
	case "abs":
		return modifiers.Abs{}, nil
	case "invert":
		return modifiers.Invert{}, nil
	case "clamp":
		return modifiers.NewClamp(m.Min, m.Max)
	}
	return nil, noise.Invalid("type", m.Type, "is not abs, clamp or invert")
}

func (s *SourceConfig) buildKernel(seed int64, path string) (noise.Source, error) {
	switch s.Type {
	case "perlin":
		interp, fade, err := s.lattice()
		if err != nil {
			return nil, err
		}
		return generators.NewPerlin(generators.PerlinConfig{Seed: seed, Interpolation: interp, Fade: fade}), nil

	case "value":
		interp, fade, err := s.lattice()
		if err != nil {
			return nil, err
		}
		return generators.NewValue(generators.ValueConfig{Seed: seed, Interpolation: interp, Fade: fade}), nil

	case "simplex":
		return s.simplex(seed)

	case "legacy_simplex":
		return simplex.NewLegacy(seed, nil), nil

	case "white":
		return generators.NewWhite(seed), nil

	case "gaussian_white":
		return generators.NewGaussianWhite(generators.GaussianWhiteConfig{Seed: seed, Mean: s.Mean, StdDev: deref(s.StdDev)})

	case "worley":
		return s.worley(seed)

	case "constant":
		return generators.Constant{Value: s.Value}, nil
	case "checkerboard":
		return generators.Checkerboard{}, nil
	case "sphere":
		return generators.Sphere{}, nil
	case "cylinder":
		return generators.Cylinder{}, nil

	case "octavation":
		if s.Input == nil {
			return nil, fmt.Errorf("input: %w", noise.ErrMissingSource)
		}
		input, err := s.Input.build(seed, path+".input")
		if err != nil {
			return nil, err
		}
		fractal, err := functions.ParseFractal(s.Fractal)
		if err != nil {
			return nil, err
		}
		return modules.NewOctavation(modules.OctavationConfig{
			Source:        input,
			Octaves:       deref(s.Octaves),
			Gain:          deref(s.Gain),
			Lacunarity:    deref(s.Lacunarity),
			Fractal:       fractal,
			IncrementSeed: s.IncrementSeed,
		})

	case "blend":
		a, b, control, err := s.children(seed, path, true)
		if err != nil {
			return nil, err
		}
		interp, err := functions.ParseInterpolation(s.Interpolation)
		if err != nil {
			return nil, err
		}
		return modules.NewBlend(a, b, control, interp)

	case "combination":
		a, b, _, err := s.children(seed, path, false)
		if err != nil {
			return nil, err
		}
		combiner, err := functions.ParseCombiner(s.Combiner)
		if err != nil {
			return nil, err
		}
		return modules.NewCombination(a, b, combiner)

	case "selection":
		a, b, control, err := s.children(seed, path, true)
		if err != nil {
			return nil, err
		}
		return modules.NewSelection(a, b, control, s.Boundary)
	}
	return nil, noise.Invalid("type", s.Type, "is not a known source type")
}

func (s *SourceConfig) lattice() (functions.Interpolation, functions.Fade, error) {
	interp, err := functions.ParseInterpolation(s.Interpolation)
	if err != nil {
		return 0, 0, err
	}
	fade, err := functions.ParseFade(s.Fade)
	if err != nil {
		return 0, 0, err
	}
	return interp, fade, nil
}

func (s *SourceConfig) simplex(seed int64) (noise.Source, error) {
	cfg := simplex.Config{Seed: seed}
	var err error
	if cfg.Kind, err = simplex.ParseKind(s.Kind); err != nil {
		return nil, err
	}
	if s.Variant2D != "" {
		if cfg.Variant2D, err = simplex.ParseVariant2D(s.Variant2D); err != nil {
			return nil, err
		}
	}
	if s.Variant3D != "" {
		if cfg.Variant3D, err = simplex.ParseVariant3D(s.Variant3D); err != nil {
			return nil, err
		}
	}
	if s.Variant4D != "" {
		if cfg.Variant4D, err = simplex.ParseVariant4D(s.Variant4D); err != nil {
			return nil, err
		}
	}
	return simplex.New(cfg)
}

func (s *SourceConfig) worley(seed int64) (noise.Source, error) {
	cfg := generators.DefaultWorley()
	cfg.Seed = seed
	cfg.Depth = deref(s.Depth)
	var err error
	if cfg.Distance, err = functions.ParseDistance(s.Distance); err != nil {
		return nil, err
	}
	if cfg.Return, err = functions.ParseReturnDistance(s.Return); err != nil {
		return nil, err
	}
	if cfg.Minimizer, err = functions.ParseCombiner(s.Minimizer); err != nil {
		return nil, err
	}
	if s.HashedPoints {
		cfg.FeaturePoints = generators.HashedPoints(s.FeaturePoints)
	} else {
		cfg.FeaturePoints = generators.ConstantPoints(s.FeaturePoints)
	}
	return generators.NewWorley(cfg)
}

func (s *SourceConfig) children(seed int64, path string, withControl bool) (a, b, control noise.Source, err error) {
	if a, err = child(s.A, seed, path, "a"); err != nil {
		return nil, nil, nil, err
	}
	if b, err = child(s.B, seed, path, "b"); err != nil {
		return nil, nil, nil, err
	}
	if withControl {
		if control, err = child(s.Control, seed, path, "control"); err != nil {
			return nil, nil, nil, err
		}
	}
	return a, b, control, nil
}

func child(cfg *SourceConfig, seed int64, path, name string) (noise.Source, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%s: %w", name, noise.ErrMissingSource)
	}
	return cfg.build(seed, path+"."+name)
}
