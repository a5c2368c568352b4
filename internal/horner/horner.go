// Package horner evaluates polynomials given as coefficient slices ordered
// from the constant term upward.
package horner

import (
	"errors"
	"fmt"

	"github.com/soniakeys/meeus/v3/base"
)

// ErrNoCoefficients is returned when a polynomial has no coefficients.
var ErrNoCoefficients = errors.New("polynomial has no coefficients")

// Eval returns c[0] + c[1]*x + c[2]*x² + ... using Horner's method.
func Eval(x float64, c []float64) (float64, error) {
	if len(c) == 0 {
		return 0, ErrNoCoefficients
	}
	return base.Horner(x, c...), nil
}

// MustEval is like Eval but panics on an empty coefficient slice.
// It is meant for the fixed package-level tables, which are never empty.
func MustEval(x float64, c []float64) float64 {
	y, err := Eval(x, c)
	if err != nil {
		panic(fmt.Sprintf("horner: %v", err))
	}
	return y
}
