package series

import (
	"fmt"

	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/nutation/internal/horner"
)

// Argument identifies one of the five lunisolar fundamental arguments.
type Argument int

const (
	D      Argument = iota // mean elongation of the Moon from the Sun
	M                      // mean anomaly of the Sun
	MPrime                 // mean anomaly of the Moon
	F                      // Moon's argument of latitude
	Omega                  // longitude of the Moon's ascending node

	numArguments
)

// Arguments holds the five fundamental arguments evaluated at one instant,
// indexed by Argument.
type Arguments [numArguments]unit.Angle

// argumentPolys are degrees and degrees per century power, t⁰..t³.
var argumentPolys = [numArguments][]float64{
	D:      {297.85036, 445267.111480, -0.0019142, 1.0 / 189474},
	M:      {357.52772, 35999.050340, -0.0001603, -1.0 / 300000},
	MPrime: {134.96298, 477198.867398, 0.0086972, 1.0 / 56250},
	F:      {93.27191, 483202.017538, -0.0036825, 1.0 / 327270},
	Omega:  {125.04452, -1934.136261, 0.0020708, 1.0 / 450000},
}

func (a Argument) String() string {
	switch a {
	case D:
		return "D"
	case M:
		return "M"
	case MPrime:
		return "M'"
	case F:
		return "F"
	case Omega:
		return "Ω"
	default:
		return fmt.Sprintf("Argument(%d)", int(a))
	}
}

// At evaluates the argument at t (centuries since J2000) and normalizes the
// result to [0°, 360°).
func (a Argument) At(t float64) unit.Angle {
	deg := horner.MustEval(t, argumentPolys[a])
	return unit.AngleFromDeg(deg).Mod1()
}

// FundamentalArguments evaluates all five arguments at t.
func FundamentalArguments(t float64) Arguments {
	var args Arguments
	for a := D; a < numArguments; a++ {
		args[a] = a.At(t)
	}
	return args
}
