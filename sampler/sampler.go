// Package sampler evaluates noise sources over regular grids, splitting rows
// across a persistent worker pool.
package sampler

import (
	"fmt"

	"github.com/pthm-cable/lattice/noise"
)

// Grid is a Width x Height lattice of sample points stepping along X and Y
// from Origin. Z and W stay at their origin values.
type Grid struct {
	Dimension int
	Width     int
	Height    int
	Origin    [4]float64
	Step      float64
}

// Len returns the number of samples in the grid.
func (g Grid) Len() int { return g.Width * g.Height }

// Coord returns the coordinate of the sample at (col, row).
func (g Grid) Coord(col, row int) [4]float64 {
	c := g.Origin
	c[0] += float64(col) * g.Step
	c[1] += float64(row) * g.Step
	return c
}

// Validate checks the grid shape and that src can be evaluated in
// g.Dimension dimensions.
func (g Grid) Validate(src noise.Source) error {
	if g.Width < 1 || g.Height < 1 {
		return noise.Invalid("grid", fmt.Sprintf("%dx%d", g.Width, g.Height), "must have at least one sample")
	}
	if g.Dimension == 1 && g.Height != 1 {
		return noise.Invalid("grid.height", g.Height, "must be 1 for 1D sampling")
	}
	if g.Step == 0 {
		return noise.Invalid("grid.step", g.Step, "must be non-zero")
	}
	return noise.CheckDimension(src, g.Dimension)
}

// at evaluates src at (col, row).
func (g Grid) at(src noise.Source, col, row int) float64 {
	c := g.Coord(col, row)
	switch g.Dimension {
	case 1:
		return src.Eval1(c[0])
	case 2:
		return src.Eval2(c[0], c[1])
	case 3:
		return src.Eval3(c[0], c[1], c[2])
	}
	return src.Eval4(c[0], c[1], c[2], c[3])
}

// sampleRows fills out for rows [r0, r1). out holds rows row-major starting
// at row first.
func (g Grid) sampleRows(src noise.Source, r0, r1, first int, out []float64) {
	for row := r0; row < r1; row++ {
		base := (row - first) * g.Width
		for col := 0; col < g.Width; col++ {
			out[base+col] = g.at(src, col, row)
		}
	}
}

// Sequential samples the whole grid on the calling goroutine.
func Sequential(src noise.Source, g Grid, out []float64) error {
	if err := g.Validate(src); err != nil {
		return err
	}
	if err := g.checkRows(0, g.Height, out); err != nil {
		return err
	}
	g.sampleRows(src, 0, g.Height, 0, out)
	return nil
}

// checkRows validates a row range and its output slice.
func (g Grid) checkRows(r0, r1 int, out []float64) error {
	if r0 < 0 || r1 > g.Height || r0 >= r1 {
		return noise.Invalid("rows", fmt.Sprintf("[%d, %d)", r0, r1), fmt.Sprintf("is not within the grid height %d", g.Height))
	}
	if n := (r1 - r0) * g.Width; len(out) < n {
		return noise.Invalid("out", len(out), fmt.Sprintf("is shorter than the rows (%d)", n))
	}
	return nil
}
