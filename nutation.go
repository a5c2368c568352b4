// Package nutation computes the Earth's nutation in longitude (Δψ) and in
// obliquity (Δε) for a given date, along with the quantities derived from
// them: the mean and true obliquity of the ecliptic and the nutation in
// right ascension (equation of the equinoxes).
//
// The series is the truncated 63-term one from Meeus, "Astronomical
// Algorithms", chapter 22. It is good to about 0.5″ in Δψ and 0.1″ in Δε,
// which is enough for correcting coordinates to sub-arcsecond level but is
// not a substitute for the IAU 2000/2006 models.
//
// Currently implemented:
//   - Nutation in longitude and obliquity via Nutation
//   - Mean obliquity via MeanObliquity (IAU), MeanObliquityIAU and
//     MeanObliquityLaskar
//   - True obliquity via TrueObliquity
//   - Nutation in right ascension via NutationInRA
//
// Every function is pure and safe for concurrent use.
package nutation

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/nutation/internal/horner"
	"github.com/thurmanmarka/nutation/internal/obliquity"
	"github.com/thurmanmarka/nutation/internal/series"
	"github.com/thurmanmarka/nutation/internal/timeutil"
)

// Result holds the nutation for one date.
type Result struct {
	Long unit.Angle // Δψ, nutation in longitude
	Obli unit.Angle // Δε, nutation in obliquity
}

// String formats r as "Δψ = <long>, Δε = <obli>" in sexagesimal notation.
func (r Result) String() string {
	return fmt.Sprintf("Δψ = %#.3s, Δε = %#.3s", sexa.FmtAngle(r.Long), sexa.FmtAngle(r.Obli))
}

// ObliquityModel selects a mean obliquity polynomial.
type ObliquityModel int

const (
	// IAU is the IAU 1980 cubic. It accepts any date.
	IAU ObliquityModel = iota

	// Laskar is Laskar's tenth-degree polynomial, valid within 10000 years
	// of J2000.
	Laskar
)

func (m ObliquityModel) String() string {
	switch m {
	case IAU:
		return "iau"
	case Laskar:
		return "laskar"
	default:
		return fmt.Sprintf("ObliquityModel(%d)", int(m))
	}
}

// ParseObliquityModel parses "iau" or "laskar", case insensitively.
func ParseObliquityModel(s string) (ObliquityModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "iau":
		return IAU, nil
	case "laskar":
		return Laskar, nil
	default:
		return 0, fmt.Errorf("unknown obliquity model %q (use iau or laskar)", s)
	}
}

var (
	// ErrNoCoefficients is returned by Horner for an empty coefficient list.
	ErrNoCoefficients = horner.ErrNoCoefficients

	// ErrOutOfRange is wrapped by RangeError.
	ErrOutOfRange = obliquity.ErrOutOfRange
)

// RangeError is returned when a date lies outside the range of a model.
type RangeError struct {
	Model ObliquityModel
	Year  int     // calendar year (UTC) of the rejected date
	T     float64 // centuries since J2000
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s obliquity: year %d is more than 10000 years from J2000", e.Model, e.Year)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// Horner evaluates c[0] + c[1]*x + c[2]*x² + ... and returns
// ErrNoCoefficients if c is empty.
func Horner(x float64, c []float64) (float64, error) {
	return horner.Eval(x, c)
}

// Nutation returns Δψ and Δε for date.
func Nutation(date time.Time) Result {
	return nutationAt(timeutil.JulianCenturies(date))
}

func nutationAt(t float64) Result {
	Δψ, Δε := series.Sum(t)
	return Result{Long: Δψ, Obli: Δε}
}

// MeanObliquity returns the mean obliquity of the ecliptic for date.
//
// It always uses the IAU model, whatever the date. Callers who want
// Laskar's polynomial must ask for it with MeanObliquityLaskar or
// MeanObliquityFor.
func MeanObliquity(date time.Time) unit.Angle {
	return MeanObliquityIAU(date)
}

// MeanObliquityIAU returns the mean obliquity for date using the IAU 1980
// polynomial.
func MeanObliquityIAU(date time.Time) unit.Angle {
	return obliquity.IAU(timeutil.JulianCenturies(date))
}

// MeanObliquityLaskar returns the mean obliquity for date using Laskar's
// polynomial. Dates 10000 years or more from J2000 yield a *RangeError.
func MeanObliquityLaskar(date time.Time) (unit.Angle, error) {
	t := timeutil.JulianCenturies(date)
	ε0, err := obliquity.Laskar(t)
	if errors.Is(err, obliquity.ErrOutOfRange) {
		return 0, &RangeError{Model: Laskar, Year: timeutil.CalendarYear(date), T: t}
	}
	return ε0, err
}

// MeanObliquityFor returns the mean obliquity for date using model.
func MeanObliquityFor(model ObliquityModel, date time.Time) (unit.Angle, error) {
	switch model {
	case IAU:
		return MeanObliquityIAU(date), nil
	case Laskar:
		return MeanObliquityLaskar(date)
	default:
		return 0, fmt.Errorf("unknown obliquity model %v", model)
	}
}

// TrueObliquity returns the mean obliquity plus Δε for date.
func TrueObliquity(date time.Time) unit.Angle {
	t := timeutil.JulianCenturies(date)
	return trueObliquityAt(t, nutationAt(t))
}

func trueObliquityAt(t float64, r Result) unit.Angle {
	return obliquity.IAU(t) + r.Obli
}

// NutationInRA returns the nutation in right ascension (the equation of
// the equinoxes) for date, in seconds of time rounded to 4 decimals.
func NutationInRA(date time.Time) unit.Time {
	t := timeutil.JulianCenturies(date)
	r := nutationAt(t)
	return nutationInRAAt(r, trueObliquityAt(t, r))
}

func nutationInRAAt(r Result, ε unit.Angle) unit.Time {
	// 15° of arc per hour of time
	hours := unit.Angle(r.Long.Rad() * ε.Cos() / 15).Deg()
	return unit.Time(math.Round(hours*3600*1e4) / 1e4)
}
