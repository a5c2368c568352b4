package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/thurmanmarka/nutation"
)

// AngleOutput renders an angle in sexagesimal and decimal form.
type AngleOutput struct {
	Sexagesimal string  `json:"sexagesimal" yaml:"sexagesimal"`
	Degrees     float64 `json:"degrees" yaml:"degrees"`
	Arcseconds  float64 `json:"arcseconds" yaml:"arcseconds"`
}

func newAngleOutput(a unit.Angle) AngleOutput {
	return AngleOutput{
		Sexagesimal: fmt.Sprintf("%#.3s", sexa.FmtAngle(a)),
		Degrees:     a.Deg(),
		Arcseconds:  a.Sec(),
	}
}

func (a AngleOutput) String() string {
	return fmt.Sprintf("%s (%.4f″)", a.Sexagesimal, a.Arcseconds)
}

// NutationOutput is the payload of the nut command.
type NutationOutput struct {
	Time string      `json:"time" yaml:"time"`
	JD   float64     `json:"jd" yaml:"jd"`
	DPsi AngleOutput `json:"dpsi" yaml:"dpsi"`
	DEps AngleOutput `json:"deps" yaml:"deps"`
}

func (o NutationOutput) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Nutation at %s (JD %.5f)\n", o.Time, o.JD)
	fmt.Fprintf(&b, "  Δψ : %s\n", o.DPsi)
	fmt.Fprintf(&b, "  Δε : %s", o.DEps)
	return b.String()
}

// ObliquityOutput is the payload of the obliquity command.
type ObliquityOutput struct {
	Time      string      `json:"time" yaml:"time"`
	Model     string      `json:"model" yaml:"model"`
	Obliquity AngleOutput `json:"obliquity" yaml:"obliquity"`
}

func (o ObliquityOutput) String() string {
	return fmt.Sprintf("Obliquity (%s) at %s\n  ε : %s", o.Model, o.Time, o.Obliquity)
}

// RAOutput is the payload of the ra command.
type RAOutput struct {
	Time    string  `json:"time" yaml:"time"`
	Seconds float64 `json:"seconds" yaml:"seconds"`
}

func (o RAOutput) String() string {
	return fmt.Sprintf("Nutation in right ascension at %s\n  Δα : %+.4fs", o.Time, o.Seconds)
}

// SnapshotOutput is the payload of the all and batch commands.
type SnapshotOutput struct {
	Time          string      `json:"time" yaml:"time"`
	JD            float64     `json:"jd" yaml:"jd"`
	T             float64     `json:"t" yaml:"t"`
	DPsi          AngleOutput `json:"dpsi" yaml:"dpsi"`
	DEps          AngleOutput `json:"deps" yaml:"deps"`
	MeanObliquity AngleOutput `json:"mean_obliquity" yaml:"mean_obliquity"`
	TrueObliquity AngleOutput `json:"true_obliquity" yaml:"true_obliquity"`
	RASeconds     float64     `json:"ra_seconds" yaml:"ra_seconds"`
}

func newSnapshotOutput(s nutation.Snapshot) SnapshotOutput {
	return SnapshotOutput{
		Time:          formatTime(s.Time),
		JD:            s.JD,
		T:             s.T,
		DPsi:          newAngleOutput(s.Nutation.Long),
		DEps:          newAngleOutput(s.Nutation.Obli),
		MeanObliquity: newAngleOutput(s.MeanObliquity),
		TrueObliquity: newAngleOutput(s.TrueObliquity),
		RASeconds:     s.NutationInRA.Sec(),
	}
}

func (o SnapshotOutput) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (JD %.5f, T %+.10f)\n", o.Time, o.JD, o.T)
	fmt.Fprintf(&b, "  Δψ             : %s\n", o.DPsi)
	fmt.Fprintf(&b, "  Δε             : %s\n", o.DEps)
	fmt.Fprintf(&b, "  mean obliquity : %s\n", o.MeanObliquity)
	fmt.Fprintf(&b, "  true obliquity : %s\n", o.TrueObliquity)
	fmt.Fprintf(&b, "  Δα             : %+.4fs", o.RASeconds)
	return b.String()
}

// BatchOutput is the payload of the batch command.
type BatchOutput struct {
	Results []SnapshotOutput `json:"results" yaml:"results"`
}

func (o BatchOutput) String() string {
	parts := make([]string, len(o.Results))
	for i, r := range o.Results {
		parts[i] = r.String()
	}
	return strings.Join(parts, "\n\n")
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
