// Package obliquity holds the mean obliquity of the ecliptic polynomials.
//
// Two models are provided: the IAU 1980 cubic (Meeus 22.2), good to about
// 1″ over 2000 years and 10″ over 4000 years, and Laskar's tenth-degree
// polynomial (Meeus 22.3), intended for ±10000 years around J2000.
package obliquity

import (
	"errors"
	"math"

	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/nutation/internal/horner"
)

// ErrOutOfRange is returned by Laskar outside its ±10000 year range.
var ErrOutOfRange = errors.New("outside the ±10000 year range of the Laskar obliquity model")

// Coefficients are radians per century power, t⁰ upward.
var (
	iau = []float64{
		unit.NewAngle(' ', 23, 26, 21.448).Rad(),
		unit.NewAngle('-', 0, 0, 46.815).Rad(),
		unit.NewAngle('-', 0, 0, 0.00059).Rad(),
		unit.NewAngle(' ', 0, 0, 0.001813).Rad(),
	}

	laskar = []float64{
		unit.NewAngle(' ', 23, 26, 21.448).Rad(),
		unit.NewAngle('-', 0, 0, 4680.93).Rad(),
		unit.NewAngle('-', 0, 0, 1.55).Rad(),
		unit.NewAngle(' ', 0, 0, 1999.25).Rad(),
		unit.NewAngle('-', 0, 0, 51.38).Rad(),
		unit.NewAngle('-', 0, 0, 249.67).Rad(),
		unit.NewAngle('-', 0, 0, 39.05).Rad(),
		unit.NewAngle(' ', 0, 0, 7.12).Rad(),
		unit.NewAngle(' ', 0, 0, 27.87).Rad(),
		unit.NewAngle(' ', 0, 0, 5.79).Rad(),
		unit.NewAngle(' ', 0, 0, 2.45).Rad(),
	}
)

// IAU returns the mean obliquity at t, centuries since J2000.
// It accepts any t, with accuracy degrading away from the epoch.
func IAU(t float64) unit.Angle {
	return unit.Angle(horner.MustEval(t, iau))
}

// Laskar returns the mean obliquity at t, centuries since J2000, or
// ErrOutOfRange when t is 100 centuries or more from the epoch.
//
// The range is checked in units of 10000 years; the polynomial is
// evaluated at t.
func Laskar(t float64) (unit.Angle, error) {
	if u := t / 100; math.Abs(u) >= 1 {
		return 0, ErrOutOfRange
	}
	return unit.Angle(horner.MustEval(t, laskar)), nil
}
