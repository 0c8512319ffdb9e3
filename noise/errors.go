package noise

import (
	"errors"
	"fmt"
)

// Construction errors. Builders wrap these with the offending parameter.
var (
	ErrMissingSource        = errors.New("missing noise source")
	ErrInvalidParameter     = errors.New("invalid parameter")
	ErrNotSeeded            = errors.New("noise source has no seed")
	ErrNotDetailed          = errors.New("noise source does not produce detailed results")
	ErrUnsupportedDimension = errors.New("unsupported dimension")
)

// UnsupportedDimensionError reports a source evaluated in a dimensionality it
// cannot represent. Evaluation panics with this value; CheckDimension returns it.
type UnsupportedDimensionError struct {
	Source    string
	Dimension int
}

func (e *UnsupportedDimensionError) Error() string {
	return fmt.Sprintf("%s: %dD evaluation: %v", e.Source, e.Dimension, ErrUnsupportedDimension)
}

func (e *UnsupportedDimensionError) Unwrap() error {
	return ErrUnsupportedDimension
}

// Unsupported panics with an UnsupportedDimensionError.
func Unsupported(source string, dim int) {
	panic(&UnsupportedDimensionError{Source: source, Dimension: dim})
}

// CheckDimension reports whether src can be evaluated in dim dimensions.
func CheckDimension(src Source, dim int) error {
	if dim < 1 || dim > 4 {
		return fmt.Errorf("dimension %d: %w", dim, ErrUnsupportedDimension)
	}
	if d, ok := src.(Dimensional); ok && dim < d.MinDimension() {
		return &UnsupportedDimensionError{Source: fmt.Sprintf("%T", src), Dimension: dim}
	}
	return nil
}

// MinDimension returns the smallest dimensionality src supports.
func MinDimension(src Source) int {
	if d, ok := src.(Dimensional); ok {
		return d.MinDimension()
	}
	return 1
}

// Invalid wraps ErrInvalidParameter with the parameter name and value.
func Invalid(param string, value any, reason string) error {
	return fmt.Errorf("%s=%v %s: %w", param, value, reason, ErrInvalidParameter)
}
