package timeutil

import (
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// -----------------------------
// Time relative to J2000
// -----------------------------

// J2000 is the Julian Day of the J2000.0 epoch: 2000-01-01 12:00:00.
const J2000 = 2451545.0

// DaysPerCentury is the length of a Julian century in days.
const DaysPerCentury = 36525.0

// JulianDay returns the Julian Day of t, taken in UTC.
func JulianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// JulianCenturies returns centuries since J2000.0.
func JulianCenturies(t time.Time) float64 {
	return CenturiesFromJD(JulianDay(t))
}

// CenturiesFromJD converts a Julian Day into the time factor used by the
// polynomial series: centuries since J2000.0. Negative before the epoch.
func CenturiesFromJD(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// CalendarYear returns the UTC calendar year of t.
func CalendarYear(t time.Time) int {
	return t.UTC().Year()
}
