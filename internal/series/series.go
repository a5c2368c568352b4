// Package series evaluates the truncated lunisolar nutation series of
// Meeus, "Astronomical Algorithms", chapter 22: 63 periodic terms over the
// five fundamental arguments D, M, M′, F and Ω.
//
// Accuracy is about 0.5″ in Δψ and 0.1″ in Δε, which is what the table
// was truncated for.
package series

import (
	"math"

	"github.com/soniakeys/unit"
)

// table units are 0.0001″; this turns them into degrees.
const unitsPerDegree = 10000 * 3600

// Sum returns the nutation in longitude (Δψ) and obliquity (Δε) at t,
// centuries since J2000.
func Sum(t float64) (Δψ, Δε unit.Angle) {
	return SumArgs(t, FundamentalArguments(t))
}

// SumArgs is Sum with precomputed fundamental arguments. t is still needed
// for the secular parts of the coefficients.
func SumArgs(t float64, args Arguments) (Δψ, Δε unit.Angle) {
	var dpsi, deps float64 // degrees
	for _, tm := range terms {
		arg := float64(tm.D)*args[D].Rad() +
			float64(tm.M)*args[M].Rad() +
			float64(tm.MPrime)*args[MPrime].Rad() +
			float64(tm.F)*args[F].Rad() +
			float64(tm.Omega)*args[Omega].Rad()

		s, c := math.Sincos(arg)
		dpsi += (tm.Sin0 + tm.Sin1*t) * s / unitsPerDegree
		deps += (tm.Cos0 + tm.Cos1*t) * c / unitsPerDegree
	}
	return unit.AngleFromDeg(dpsi), unit.AngleFromDeg(deps)
}
