package noise

import (
	"errors"
	"testing"
)

// axisSum returns the sum of its coordinates.
type axisSum struct{}

func (axisSum) Eval1(x float64) float64 { return x }
func (axisSum) Eval2(x, y float64) float64 { return x + y }
func (axisSum) Eval3(x, y, z float64) float64 { return x + y + z }
func (axisSum) Eval4(x, y, z, w float64) float64 { return x + y + z + w }

type planar struct{ axisSum }

func (planar) MinDimension() int { return 2 }

func TestEvalDispatch(t *testing.T) {
	tests := []struct {
		name string
		c    []float64
		want float64
	}{
		{"1D", []float64{1}, 1},
		{"2D", []float64{1, 2}, 3},
		{"3D", []float64{1, 2, 3}, 6},
		{"4D", []float64{1, 2, 3, 4}, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eval(axisSum{}, tt.c); got != tt.want {
				t.Errorf("Eval(%v) = %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestEvalPanicsOnFiveDimensions(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnsupportedDimension) {
			t.Errorf("recovered %v, want an unsupported dimension error", r)
		}
	}()
	Eval(axisSum{}, make([]float64, 5))
}

func TestCheckDimension(t *testing.T) {
	tests := []struct {
		name string
		src  Source
		dim  int
		ok   bool
	}{
		{"plain 1D", axisSum{}, 1, true},
		{"plain 4D", axisSum{}, 4, true},
		{"zero", axisSum{}, 0, false},
		{"five", axisSum{}, 5, false},
		{"planar 1D", planar{}, 1, false},
		{"planar 2D", planar{}, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckDimension(tt.src, tt.dim)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrUnsupportedDimension) {
				t.Errorf("err = %v, want ErrUnsupportedDimension", err)
			}
		})
	}

	var dimErr *UnsupportedDimensionError
	if !errors.As(CheckDimension(planar{}, 1), &dimErr) || dimErr.Dimension != 1 {
		t.Errorf("expected an *UnsupportedDimensionError for 1D, got %v", dimErr)
	}
	if MinDimension(planar{}) != 2 || MinDimension(axisSum{}) != 1 {
		t.Error("MinDimension mismatch")
	}
}

func TestUnsupportedPanics(t *testing.T) {
	defer func() {
		var dimErr *UnsupportedDimensionError
		err, _ := recover().(error)
		if !errors.As(err, &dimErr) || dimErr.Source != "cylinder" || dimErr.Dimension != 1 {
			t.Errorf("recovered %v", err)
		}
	}()
	Unsupported("cylinder", 1)
}

func TestInvalidWrapsSentinel(t *testing.T) {
	err := Invalid("octaves", 0, "must be at least 1")
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("err = %v does not wrap ErrInvalidParameter", err)
	}
	if want := "octaves=0 must be at least 1: invalid parameter"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNewResult(t *testing.T) {
	r := NewResult(0.5, []float64{1, 2})
	if r.Value != 0.5 || r.Unmodified != 0.5 || len(r.Closest) != 2 {
		t.Errorf("NewResult = %+v", r)
	}
}
