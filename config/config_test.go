package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pthm-cable/lattice/noise"
)

// fromYAML overlays doc on the embedded defaults.
func fromYAML(t *testing.T, doc string) *Config {
	t.Helper()
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load defaults: %v", err)
	}
	if err := Parse([]byte(doc), cfg); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg.computeDerived()
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Seed != 1729 {
		t.Errorf("Seed = %d, want 1729", cfg.Seed)
	}
	if cfg.Derived.Samples != 256*256 {
		t.Errorf("Derived.Samples = %d", cfg.Derived.Samples)
	}
	if cfg.Source.Type != "octavation" || cfg.Source.Input == nil {
		t.Fatalf("default source = %+v", cfg.Source)
	}

	p, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for i := 0; i < 200; i++ {
		v := p.Eval2(float64(i)*3.7, float64(i)*-1.3)
		if v < -1 || v > 1 || math.IsNaN(v) {
			t.Fatalf("sample %v outside the clamp", v)
		}
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lattice.yaml")
	doc := "sampling:\n  width: 10\nsource:\n  type: worley\n"
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sampling.Width != 10 || cfg.Sampling.Height != 256 {
		t.Errorf("sampling = %+v, want width 10 over default height", cfg.Sampling)
	}
	if cfg.Source.Input != nil || cfg.Source.Octaves != nil || len(cfg.Source.Modifiers) != 0 {
		t.Errorf("default source tree leaked into override: %+v", cfg.Source)
	}
	if cfg.Source.Distance != "euclidean_squared" || *cfg.Source.Depth != 1 || cfg.Source.FeaturePoints != 1 {
		t.Errorf("worley defaults not filled: %+v", cfg.Source)
	}
	if _, err := cfg.Build(); err != nil {
		t.Errorf("Build: %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file: expected error")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("seed: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed file: expected error")
	}
}

func TestBuildSourceTypes(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"perlin", "source: {type: perlin, fade: smoothstep, interpolation: cosine}"},
		{"value", "source: {type: value}"},
		{"super simplex", "source: {type: simplex, kind: super, variant_4d: improve_xyz}"},
		{"legacy simplex", "source: {type: legacy_simplex}"},
		{"white", "source: {type: white}"},
		{"gaussian", "source: {type: gaussian_white, mean: 0.2, stddev: 0.1}"},
		{"worley", "source: {type: worley, depth: 2, return: sub, distance: 'minkowski(3)', feature_points: 4, hashed_points: true}"},
		{"checkerboard", "source: {type: checkerboard, scale: [0.1]}"},
		{"sphere", "source: {type: sphere, modifiers: [{type: abs}, {type: invert}]}"},
		{"blend", "source: {type: blend, a: {type: perlin}, b: {type: constant, value: 1}, control: {type: value}}"},
		{"combination", "source: {type: combination, combiner: max, a: {type: perlin}, b: {type: white}}"},
		{"selection", "source: {type: selection, boundary: 0.1, a: {type: perlin}, b: {type: value}, control: {type: simplex}}"},
		{"warped", "source: {type: perlin, warp: {strength: [1, 2, 3, 4], source: {type: value}}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fromYAML(t, tt.doc)
			p, err := cfg.Build()
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if v := p.Eval2(1.3, 2.7); math.IsNaN(v) {
				t.Error("sample is NaN")
			}
		})
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown type", "source: {type: fractal_flame}", noise.ErrInvalidParameter},
		{"octavation without input", "source: {type: octavation}", noise.ErrMissingSource},
		{"blend without control", "source: {type: blend, a: {type: perlin}, b: {type: perlin}}", noise.ErrMissingSource},
		{"bad fade", "source: {type: perlin, fade: bouncy}", noise.ErrInvalidParameter},
		{"bad modifier", "source: {type: perlin, modifiers: [{type: square}]}", noise.ErrInvalidParameter},
		{"three scale axes", "source: {type: perlin, scale: [1, 2, 3]}", noise.ErrInvalidParameter},
		{"zero scale", "source: {type: perlin, scale: [0]}", noise.ErrInvalidParameter},
		{"unseeded octaves", "source: {type: octavation, increment_seed: true, input: {type: constant, value: 1}}", noise.ErrNotSeeded},
		{"bad worley depth", "source: {type: worley, return: distance_1}", noise.ErrInvalidParameter},
		{"cylinder in 1D", "sampling: {dimension: 1}\nsource: {type: cylinder}", noise.ErrUnsupportedDimension},
		{"warp in 1D", "sampling: {dimension: 1}\nsource: {type: perlin, warp: {source: {type: value}}}", noise.ErrUnsupportedDimension},
		{"dimension five", "sampling: {dimension: 5}\nsource: {type: perlin}", noise.ErrUnsupportedDimension},
		{"zero octaves", "source: {type: octavation, octaves: 0, input: {type: perlin}}", noise.ErrInvalidParameter},
		{"zero gain", "source: {type: octavation, gain: 0, input: {type: perlin}}", noise.ErrInvalidParameter},
		{"zero lacunarity", "source: {type: octavation, lacunarity: 0, input: {type: perlin}}", noise.ErrInvalidParameter},
		{"zero stddev", "source: {type: gaussian_white, stddev: 0}", noise.ErrInvalidParameter},
		{"zero worley depth", "source: {type: worley, depth: 0}", noise.ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := fromYAML(t, tt.doc)
			if _, err := cfg.Build(); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestExplicitZeroKept(t *testing.T) {
	cfg := fromYAML(t, "source: {type: octavation, octaves: 0, gain: 0, lacunarity: 0, input: {type: gaussian_white, stddev: 0}}")
	s := cfg.Source
	if *s.Octaves != 0 || *s.Gain != 0 || *s.Lacunarity != 0 || *s.Input.StdDev != 0 {
		t.Errorf("explicit zeros replaced: octaves=%d gain=%v lacunarity=%v stddev=%v",
			*s.Octaves, *s.Gain, *s.Lacunarity, *s.Input.StdDev)
	}

	cfg = fromYAML(t, "source: {type: octavation, input: {type: gaussian_white}}")
	s = cfg.Source
	if *s.Octaves != 1 || *s.Gain != 0.5 || *s.Lacunarity != 2 || *s.Input.StdDev != 1.0/3.0 {
		t.Errorf("defaults not filled: octaves=%d gain=%v lacunarity=%v stddev=%v",
			*s.Octaves, *s.Gain, *s.Lacunarity, *s.Input.StdDev)
	}
}

func TestSeedInheritance(t *testing.T) {
	base := fromYAML(t, "seed: 5\nsource: {type: perlin}")
	override := fromYAML(t, "seed: 5\nsource: {type: perlin, seed: 6}")
	reseeded := fromYAML(t, "seed: 6\nsource: {type: perlin}")

	a, err := base.Build()
	if err != nil {
		t.Fatal(err)
	}
	b, err := override.Build()
	if err != nil {
		t.Fatal(err)
	}
	c, err := reseeded.Build()
	if err != nil {
		t.Fatal(err)
	}
	differ := 0
	for i := 0; i < 50; i++ {
		x, y := float64(i)*0.37+0.1, float64(i)*0.21+0.3
		if b.Eval2(x, y) != c.Eval2(x, y) {
			t.Fatal("node seed did not override the top-level seed")
		}
		if a.Eval2(x, y) != b.Eval2(x, y) {
			differ++
		}
	}
	if differ == 0 {
		t.Error("different seeds produced identical samples")
	}
}

func TestBuildDetailed(t *testing.T) {
	cfg := fromYAML(t, "source: {type: worley, scale: [0.5], modifiers: [{type: invert}]}")
	p, err := cfg.BuildDetailed()
	if err != nil {
		t.Fatalf("BuildDetailed: %v", err)
	}
	r := p.Eval2Result(3, 4)
	if r.Value != -r.Unmodified || len(r.Closest) != 2 {
		t.Errorf("result = %+v", r)
	}

	cfg = fromYAML(t, "source: {type: perlin}")
	if _, err := cfg.BuildDetailed(); !errors.Is(err, noise.ErrNotDetailed) {
		t.Errorf("err = %v, want ErrNotDetailed", err)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, loaded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestOneDimensionForcesSingleRow(t *testing.T) {
	cfg := fromYAML(t, "sampling: {dimension: 1, width: 64, origin: [2]}")
	if cfg.Sampling.Height != 1 || cfg.Derived.Samples != 64 {
		t.Errorf("sampling = %+v, samples = %d", cfg.Sampling, cfg.Derived.Samples)
	}
	if cfg.Derived.Origin != [4]float64{2, 0, 0, 0} {
		t.Errorf("Derived.Origin = %v", cfg.Derived.Origin)
	}
}

func TestInitAndCfg(t *testing.T) {
	defer func() { global = nil }()

	global = nil
	func() {
		defer func() {
			if recover() == nil {
				t.Error("Cfg() before Init did not panic")
			}
		}()
		Cfg()
	}()

	if err := Init(""); err != nil {
		t.Fatal(err)
	}
	if Cfg().Seed != 1729 {
		t.Errorf("Cfg().Seed = %d", Cfg().Seed)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustInit with a missing file did not panic")
		}
	}()
	MustInit(filepath.Join(t.TempDir(), "nope.yaml"))
}

func TestGrid(t *testing.T) {
	cfg := fromYAML(t, "sampling: {dimension: 3, width: 8, height: 4, origin: [1, 2, 3], step: 0.25}")
	g := cfg.Grid()
	if g.Dimension != 3 || g.Width != 8 || g.Height != 4 || g.Step != 0.25 {
		t.Errorf("grid = %+v", g)
	}
	if g.Origin != [4]float64{1, 2, 3, 0} {
		t.Errorf("grid origin = %v", g.Origin)
	}
	if g.Len() != cfg.Derived.Samples {
		t.Errorf("Len() = %d, Derived.Samples = %d", g.Len(), cfg.Derived.Samples)
	}
}

func TestClone(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cp, err := cfg.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, cp) {
		t.Fatalf("clone differs:\n got %+v\nwant %+v", cp, cfg)
	}
	cp.Source.Input.Kind = "super"
	*cp.Source.Gain = 0.9
	if cfg.Source.Input.Kind == "super" || *cfg.Source.Gain == 0.9 {
		t.Error("clone shares its source tree with the original")
	}
}
