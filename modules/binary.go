package modules

import (
	"fmt"

	"github.com/pthm-cable/lattice/functions"
	"github.com/pthm-cable/lattice/noise"
)

func requireSources(module string, srcs map[string]noise.Source) error {
	for _, name := range []string{"a", "b", "control"} {
		if src, ok := srcs[name]; ok && src == nil {
			return fmt.Errorf("%s: source %s: %w", module, name, noise.ErrMissingSource)
		}
	}
	return nil
}

func minDimension(srcs ...noise.Source) int {
	d := 1
	for _, s := range srcs {
		d = max(d, noise.MinDimension(s))
	}
	return d
}

// Blend interpolates from A to B by the value of Control.
type Blend struct {
	a, b, control noise.Source
	interp        functions.Interpolation
}

// NewBlend builds a Blend. Pass functions.Linear for a plain lerp.
func NewBlend(a, b, control noise.Source, interp functions.Interpolation) (*Blend, error) {
	if err := requireSources("blend", map[string]noise.Source{"a": a, "b": b, "control": control}); err != nil {
		return nil, err
	}
	return &Blend{a: a, b: b, control: control, interp: interp}, nil
}

func (m *Blend) MinDimension() int { return minDimension(m.a, m.b, m.control) }

func (m *Blend) Eval1(x float64) float64 {
	return m.interp.Lerp(m.control.Eval1(x), m.a.Eval1(x), m.b.Eval1(x))
}

func (m *Blend) Eval2(x, y float64) float64 {
	return m.interp.Lerp(m.control.Eval2(x, y), m.a.Eval2(x, y), m.b.Eval2(x, y))
}

func (m *Blend) Eval3(x, y, z float64) float64 {
	return m.interp.Lerp(m.control.Eval3(x, y, z), m.a.Eval3(x, y, z), m.b.Eval3(x, y, z))
}

func (m *Blend) Eval4(x, y, z, w float64) float64 {
	return m.interp.Lerp(m.control.Eval4(x, y, z, w), m.a.Eval4(x, y, z, w), m.b.Eval4(x, y, z, w))
}

// Combination merges A and B with a Combiner.
type Combination struct {
	a, b     noise.Source
	combiner functions.Combiner
}

func NewCombination(a, b noise.Source, combiner functions.Combiner) (*Combination, error) {
	if err := requireSources("combination", map[string]noise.Source{"a": a, "b": b}); err != nil {
		return nil, err
	}
	return &Combination{a: a, b: b, combiner: combiner}, nil
}

func (m *Combination) MinDimension() int { return minDimension(m.a, m.b) }

func (m *Combination) Eval1(x float64) float64 {
	return m.combiner.Apply(m.a.Eval1(x), m.b.Eval1(x))
}

func (m *Combination) Eval2(x, y float64) float64 {
	return m.combiner.Apply(m.a.Eval2(x, y), m.b.Eval2(x, y))
}

func (m *Combination) Eval3(x, y, z float64) float64 {
	return m.combiner.Apply(m.a.Eval3(x, y, z), m.b.Eval3(x, y, z))
}

func (m *Combination) Eval4(x, y, z, w float64) float64 {
	return m.combiner.Apply(m.a.Eval4(x, y, z, w), m.b.Eval4(x, y, z, w))
}

// Selection returns A where Control is at or above Boundary and B elsewhere.
// Only the selected source is evaluated.
type Selection struct {
	a, b, control noise.Source
	boundary      float64
}

func NewSelection(a, b, control noise.Source, boundary float64) (*Selection, error) {
	if err := requireSources("selection", map[string]noise.Source{"a": a, "b": b, "control": control}); err != nil {
		return nil, err
	}
	return &Selection{a: a, b: b, control: control, boundary: boundary}, nil
}

func (m *Selection) MinDimension() int { return minDimension(m.a, m.b, m.control) }

func (m *Selection) Eval1(x float64) float64 {
	if m.control.Eval1(x) >= m.boundary {
		return m.a.Eval1(x)
	}
	return m.b.Eval1(x)
}

func (m *Selection) Eval2(x, y float64) float64 {
	if m.control.Eval2(x, y) >= m.boundary {
		return m.a.Eval2(x, y)
	}
	return m.b.Eval2(x, y)
}

func (m *Selection) Eval3(x, y, z float64) float64 {
	if m.control.Eval3(x, y, z) >= m.boundary {
		return m.a.Eval3(x, y, z)
	}
	return m.b.Eval3(x, y, z)
}

func (m *Selection) Eval4(x, y, z, w float64) float64 {
	if m.control.Eval4(x, y, z, w) >= m.boundary {
		return m.a.Eval4(x, y, z, w)
	}
	return m.b.Eval4(x, y, z, w)
}
