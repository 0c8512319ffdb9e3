// Package simplex implements the OpenSimplex2 kernels: Fast (2F) and the
// smoother Super (2S), with lattice orientation variants per dimensionality,
// plus the original OpenSimplex kernel behind a per-seed cache.
package simplex

import (
	"fmt"
	"strings"

	"github.com/pthm-cable/lattice/noise"
)

// DefaultSeed matches the seed used by the other kernels.
const DefaultSeed int64 = 1729

// Kind selects the OpenSimplex2 kernel.
type Kind int

const (
	Fast Kind = iota
	Super
)

var (
	kindNames      = []string{"fast", "super"}
	variant2DNames = []string{"classic", "improve_x"}
	variant3DNames = []string{"classic", "improve_xy", "improve_xz"}
	variant4DNames = []string{
		"classic",
		"improve_xy_improve_zw",
		"improve_xyz_improve_xz",
		"improve_xyz_improve_xy",
		"improve_xyz",
	}
)

func (k Kind) String() string { return nameOf(kindNames, int(k)) }
func (v Variant2D) String() string { return nameOf(variant2DNames, int(v)) }
func (v Variant3D) String() string { return nameOf(variant3DNames, int(v)) }
func (v Variant4D) String() string { return nameOf(variant4DNames, int(v)) }

func ParseKind(s string) (Kind, error) {
	i, err := parse("simplex kind", kindNames, s)
	return Kind(i), err
}

func ParseVariant2D(s string) (Variant2D, error) {
	i, err := parse("variant_2d", variant2DNames, s)
	return Variant2D(i), err
}

func ParseVariant3D(s string) (Variant3D, error) {
	i, err := parse("variant_3d", variant3DNames, s)
	return Variant3D(i), err
}

func ParseVariant4D(s string) (Variant4D, error) {
	i, err := parse("variant_4d", variant4DNames, s)
	return Variant4D(i), err
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parse(kind string, names []string, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, noise.Invalid(kind, s, "is not one of "+strings.Join(names, ", "))
}

// Config configures an OpenSimplex2 kernel. The zero value is a Fast kernel
// with seed 0 and classic orientation everywhere.
type Config struct {
	Seed      int64
	Kind      Kind
	Variant2D Variant2D
	Variant3D Variant3D
	Variant4D Variant4D
}

// DefaultConfig returns a Fast kernel at DefaultSeed.
func DefaultConfig() Config {
	return Config{Seed: DefaultSeed, Kind: Fast}
}

// Noise is an OpenSimplex2 kernel with its orientation variants resolved.
// Output lies in [-1, 1].
type Noise struct {
	seed int64
	kind Kind
	l    *lattice

	eval2 eval2Func
	eval3 eval3Func
	eval4 eval4Func
}

// New resolves cfg into a kernel.
func New(cfg Config) (*Noise, error) {
	var l *lattice
	switch cfg.Kind {
	case Fast:
		l = fastKernel
	case Super:
		l = superKernel
	default:
		return nil, noise.Invalid("simplex kind", cfg.Kind, "is not fast or super")
	}
	e2, e3, e4, err := l.resolve(cfg.Variant2D, cfg.Variant3D, cfg.Variant4D)
	if err != nil {
		return nil, err
	}
	return &Noise{seed: cfg.Seed, kind: cfg.Kind, l: l, eval2: e2, eval3: e3, eval4: e4}, nil
}

// Kind reports which kernel n evaluates.
func (n *Noise) Kind() Kind { return n.kind }

func (n *Noise) Seed() int64 { return n.seed }

func (n *Noise) Eval1(x float64) float64 { return n.Eval1Seeded(n.seed, x) }

func (n *Noise) Eval2(x, y float64) float64 { return n.Eval2Seeded(n.seed, x, y) }

func (n *Noise) Eval3(x, y, z float64) float64 { return n.Eval3Seeded(n.seed, x, y, z) }

func (n *Noise) Eval4(x, y, z, w float64) float64 { return n.Eval4Seeded(n.seed, x, y, z, w) }

// Eval1Seeded samples the classic 2D kernel along the line y = 1.
func (n *Noise) Eval1Seeded(seed int64, x float64) float64 {
	return float64(n.l.noise2(seed, x, 1.0))
}

func (n *Noise) Eval2Seeded(seed int64, x, y float64) float64 {
	return float64(n.eval2(seed, x, y))
}

func (n *Noise) Eval3Seeded(seed int64, x, y, z float64) float64 {
	return float64(n.eval3(seed, x, y, z))
}

func (n *Noise) Eval4Seeded(seed int64, x, y, z, w float64) float64 {
	return float64(n.eval4(seed, x, y, z, w))
}
