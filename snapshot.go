package nutation

import (
	"time"

	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/nutation/internal/obliquity"
	"github.com/thurmanmarka/nutation/internal/timeutil"
)

// Snapshot bundles every nutation quantity for one instant. The series is
// evaluated once and shared by the derived values.
type Snapshot struct {
	Time          time.Time  // the instant evaluated, as given
	JD            float64    // Julian Day (UTC)
	T             float64    // centuries since J2000
	Nutation      Result     // Δψ, Δε
	MeanObliquity unit.Angle // IAU
	TrueObliquity unit.Angle
	NutationInRA  unit.Time // seconds, rounded to 4 decimals
}

// At computes a Snapshot for date.
func At(date time.Time) Snapshot {
	jd := timeutil.JulianDay(date)
	t := timeutil.CenturiesFromJD(jd)

	r := nutationAt(t)
	ε := trueObliquityAt(t, r)

	return Snapshot{
		Time:          date,
		JD:            jd,
		T:             t,
		Nutation:      r,
		MeanObliquity: obliquity.IAU(t),
		TrueObliquity: ε,
		NutationInRA:  nutationInRAAt(r, ε),
	}
}
