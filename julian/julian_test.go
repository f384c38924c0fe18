package julian

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastipletonis/meeus/temporal"
)

// conversionVectors are the Chapter 7 reference conversions, spanning
// both calendar systems.
var conversionVectors = []struct {
	name string
	dt   temporal.DateTime
	jd   string
}{
	{"sputnik", temporal.MustDateTime(1957, 10, 4, 19, 26, 24, 0), "2436116.31"},
	{"julian_noon", temporal.MustDateTime(333, 1, 27, 12, 0, 0, 0), "1842713"},
	{"j2000", temporal.MustDateTime(2000, 1, 1, 12, 0, 0, 0), "2451545"},
	{"modern_midnight", temporal.MustDateTime(1999, 1, 1, 0, 0, 0, 0), "2451179.5"},
	{"gregorian_era", temporal.MustDateTime(1987, 1, 27, 0, 0, 0, 0), "2446822.5"},
	{"year_1600", temporal.MustDateTime(1600, 12, 31, 0, 0, 0, 0), "2305812.5"},
	{"early_medieval", temporal.MustDateTime(837, 4, 10, 7, 12, 0, 0), "2026871.8"},
	{"negative_year", temporal.MustDateTime(-123, 12, 31, 0, 0, 0, 0), "1676496.5"},
	{"epoch", temporal.MustDateTime(-4712, 1, 1, 12, 0, 0, 0), "0"},
	{"unix_epoch", temporal.MustDateTime(1970, 1, 1, 0, 0, 0, 0), "2440587.5"},
	{"last_julian_day", temporal.MustDateTime(1582, 10, 4, 0, 0, 0, 0), "2299159.5"},
	{"first_gregorian_day", temporal.MustDateTime(1582, 10, 15, 0, 0, 0, 0), "2299160.5"},
}

func TestDay(t *testing.T) {
	for _, tt := range conversionVectors {
		t.Run(tt.name, func(t *testing.T) {
			want := decimal.RequireFromString(tt.jd).InexactFloat64()
			assert.InDelta(t, want, Day(tt.dt), 1e-6)
		})
	}
}

func TestDecimalDay(t *testing.T) {
	for _, tt := range conversionVectors {
		t.Run(tt.name, func(t *testing.T) {
			want := decimal.RequireFromString(tt.jd)
			got := DecimalDay(tt.dt)
			assert.True(t, got.Equal(want), "got %s, want %s", got, want)
		})
	}
}

func TestTwoPrecisionAgreement(t *testing.T) {
	for _, tt := range conversionVectors {
		t.Run(tt.name, func(t *testing.T) {
			f := Day(tt.dt)
			d := DecimalDay(tt.dt)
			assert.InDelta(t, f, d.InexactFloat64(), 1e-4)
		})
	}
}

func TestDateTime(t *testing.T) {
	tests := []struct {
		name string
		jd   float64
		want temporal.DateTime
	}{
		{"sputnik", 2436116.31, temporal.MustDateTime(1957, 10, 4, 19, 26, 24, 0)},
		{"julian_noon", 1842713.0, temporal.MustDateTime(333, 1, 27, 12, 0, 0, 0)},
		{"negative_year", 1676496.5, temporal.MustDateTime(-123, 12, 31, 0, 0, 0, 0)},
		{"epoch_noon", 0.0, temporal.MustDateTime(-4712, 1, 1, 12, 0, 0, 0)},
		{"last_julian_day", 2299159.5, temporal.MustDateTime(1582, 10, 4, 0, 0, 0, 0)},
		{"first_gregorian_day", 2299160.5, temporal.MustDateTime(1582, 10, 15, 0, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateTime(tt.jd)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateTimeFromDecimal(t *testing.T) {
	tests := []struct {
		name string
		jd   string
		want temporal.DateTime
	}{
		{"sputnik", "2436116.31", temporal.MustDateTime(1957, 10, 4, 19, 26, 24, 0)},
		{"julian_noon", "1842713", temporal.MustDateTime(333, 1, 27, 12, 0, 0, 0)},
		{"negative_year", "1676496.5", temporal.MustDateTime(-123, 12, 31, 0, 0, 0, 0)},
		{"first_gregorian_day", "2299160.5", temporal.MustDateTime(1582, 10, 15, 0, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateTimeFromDecimal(decimal.RequireFromString(tt.jd))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateTimeRejectsNegative(t *testing.T) {
	_, err := DateTime(-1.0)
	require.Error(t, err)
	assert.True(t, IsNegativeDayError(err))
	assert.EqualError(t, err, "cannot convert negative julian day -1")

	_, err = DateTime(-0.0001)
	require.Error(t, err)
	assert.True(t, IsNegativeDayError(err))

	_, err = DateTimeFromDecimal(decimal.NewFromInt(-1))
	require.Error(t, err)
	assert.True(t, IsNegativeDayError(err))
}

func TestIsJulian(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   int
		want  bool
	}{
		{"deep_past", -4712, 1, 1, true},
		{"medieval", 837, 4, 10, true},
		{"year_before_cutover", 1581, 12, 31, true},
		{"month_before_cutover", 1582, 9, 30, true},
		{"day_before_gap", 1582, 10, 4, true},
		{"last_skipped_day", 1582, 10, 14, true},
		{"cutover_date", 1582, 10, 15, false},
		{"month_after_cutover", 1582, 11, 1, false},
		{"year_after_cutover", 1583, 1, 1, false},
		{"modern", 2000, 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsJulian(tt.year, tt.month, tt.day))
		})
	}
}

// The recovered date must match exactly; the recovered time of day is
// bounded by the six-digit textual intermediate, half a microday.
func TestRoundTrip(t *testing.T) {
	const halfMicroday = 43_200_001 // nanoseconds

	for _, tt := range conversionVectors {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateTime(Day(tt.dt))
			require.NoError(t, err)
			assert.Equal(t, tt.dt.Date, got.Date)
			assert.InDelta(t, float64(tt.dt.NanoOfDay()), float64(got.NanoOfDay()), halfMicroday)
		})
	}
}

func TestDecimalRoundTrip(t *testing.T) {
	const halfMicroday = 43_200_001 // nanoseconds

	for _, tt := range conversionVectors {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateTimeFromDecimal(DecimalDay(tt.dt))
			require.NoError(t, err)
			assert.Equal(t, tt.dt.Date, got.Date)
			assert.InDelta(t, float64(tt.dt.NanoOfDay()), float64(got.NanoOfDay()), halfMicroday)
		})
	}
}
