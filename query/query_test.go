package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastipletonis/meeus/temporal"
)

var (
	sputnikLaunch = temporal.MustDateTime(1957, 10, 4, 19, 26, 24, 0)
	sputnikDate   = temporal.MustDate(1957, 10, 4)
	sputnikTime   = temporal.MustTime(19, 26, 24, 0)
)

func TestJulianDay(t *testing.T) {
	got, ok := JulianDay(sputnikLaunch)
	require.True(t, ok)
	assert.InDelta(t, 2436116.31, got, 1e-6)
}

func TestJulianDayUnsupported(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "date_lacks_clock", value: sputnikDate},
		{name: "time_lacks_calendar", value: sputnikTime},
		{name: "unrelated_type", value: "1957-10-04.81"},
		{name: "nil", value: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := JulianDay(tt.value)
			assert.False(t, ok)
		})
	}
}

func TestHPJulianDay(t *testing.T) {
	got, ok := HPJulianDay(sputnikLaunch)
	require.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("2436116.31")), "got %s", got)

	_, ok = HPJulianDay(sputnikTime)
	assert.False(t, ok)
}

func TestDecimalTime(t *testing.T) {
	got, ok := DecimalTime(sputnikTime)
	require.True(t, ok)
	assert.InDelta(t, 0.81, got, 1e-4)

	got, ok = DecimalTime(sputnikLaunch)
	require.True(t, ok)
	assert.InDelta(t, 0.81, got, 1e-4)

	_, ok = DecimalTime(sputnikDate)
	assert.False(t, ok)
}

func TestHPDecimalTime(t *testing.T) {
	got, ok := HPDecimalTime(temporal.MustTime(12, 0, 0, 0))
	require.True(t, ok)
	assert.True(t, got.Equal(decimal.RequireFromString("0.5")), "got %s", got)

	_, ok = HPDecimalTime(sputnikDate)
	assert.False(t, ok)
}

func TestRightAscension(t *testing.T) {
	got, ok := RightAscension(temporal.MustTime(9, 14, 55, 800_000_000))
	require.True(t, ok)
	assert.InDelta(t, 138.7325, got, 1e-9)

	_, ok = RightAscension(sputnikDate)
	assert.False(t, ok)
}

func TestAdaptsHostTime(t *testing.T) {
	launch := time.Date(1957, time.October, 4, 19, 26, 24, 0, time.UTC)

	jd, ok := JulianDay(launch)
	require.True(t, ok)
	assert.InDelta(t, 2436116.31, jd, 1e-6)

	ra, ok := RightAscension(launch)
	require.True(t, ok)
	assert.InDelta(t, 291.6, ra, 1e-9)
}

// Adaptation keeps the civil fields of a zoned value as they read on
// its local clock.
func TestAdaptationIgnoresZone(t *testing.T) {
	zone := time.FixedZone("UTC+4", 4*60*60)
	local := time.Date(1957, time.October, 4, 19, 26, 24, 0, zone)
	utc := time.Date(1957, time.October, 4, 19, 26, 24, 0, time.UTC)

	gotLocal, ok := JulianDay(local)
	require.True(t, ok)
	gotUTC, ok := JulianDay(utc)
	require.True(t, ok)
	assert.Equal(t, gotUTC, gotLocal)
}

type brokenClock struct{}

func (brokenClock) CalendarDate() (int, int, int) { return 2000, 1, 1 }

func (brokenClock) NanoOfDay() int64 { return -1 }

// Values whose fields fall outside the valid ranges count as
// unsupported rather than producing garbage quantities.
func TestOutOfRangeFieldsUnsupported(t *testing.T) {
	_, ok := JulianDay(brokenClock{})
	assert.False(t, ok)

	_, ok = DecimalTime(brokenClock{})
	assert.False(t, ok)
}
