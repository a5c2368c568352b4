package obliquity

import (
	"testing"

	"github.com/soniakeys/unit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2015-07-10 00:00 UTC
const t20150710 = (2457213.5 - 2451545.0) / 36525.0

func TestIAU(t *testing.T) {
	// epoch value is the constant term
	assert.InDelta(t, unit.NewAngle(' ', 23, 26, 21.448).Sec(), IAU(0).Sec(), 1e-9)

	// 23°26′14.183″
	want := unit.NewAngle(' ', 23, 26, 14.183)
	assert.InDelta(t, want.Sec(), IAU(t20150710).Sec(), 0.001)

	// Meeus example 22.a: ε0 = 23°26′27.407″
	assert.InDelta(t, unit.NewAngle(' ', 23, 26, 27.407).Sec(), IAU(-0.127296372348).Sec(), 0.001)
}

func TestIAUNeverRejects(t *testing.T) {
	for _, tc := range []float64{-1000, -101, 0, 101, 1000} {
		assert.NotPanics(t, func() { IAU(tc) })
	}
}

func TestLaskar(t *testing.T) {
	got, err := Laskar(t20150710)
	require.NoError(t, err)

	// 23°14′22.374″
	want := unit.NewAngle(' ', 23, 14, 22.374)
	assert.InDelta(t, want.Sec(), got.Sec(), 0.001)
}

func TestLaskarRange(t *testing.T) {
	tests := []struct {
		name    string
		t       float64
		wantErr bool
	}{
		{"epoch", 0, false},
		{"year 2015", t20150710, false},
		{"year 2500", 5, false},
		{"just inside future", 99.99, false},
		{"just inside past", -99.99, false},
		{"exactly 100 centuries", 100, true},
		{"year 12100", 101, true},
		{"year -8100", -101, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Laskar(tt.t)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOutOfRange)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCoefficientTables(t *testing.T) {
	require.Len(t, iau, 4)
	require.Len(t, laskar, 11)
	assert.Equal(t, iau[0], laskar[0])
}
