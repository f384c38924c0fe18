package query

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fastipletonis/meeus/decimaltime"
	"github.com/fastipletonis/meeus/julian"
	"github.com/fastipletonis/meeus/rightascension"
	"github.com/fastipletonis/meeus/temporal"
)

// JulianDay returns the Julian Day of v. It answers false when v
// lacks either the calendar or the clock fields.
func JulianDay(v any) (float64, bool) {
	dt, ok := dateTimeOf(v)
	if !ok {
		return 0, false
	}
	return julian.Day(dt), true
}

// HPJulianDay is the arbitrary-precision variant of JulianDay.
func HPJulianDay(v any) (decimal.Decimal, bool) {
	dt, ok := dateTimeOf(v)
	if !ok {
		return decimal.Decimal{}, false
	}
	return julian.DecimalDay(dt), true
}

// DecimalTime returns the decimal time of v, the fraction of the day
// elapsed since midnight. It answers false when v lacks the clock
// fields.
func DecimalTime(v any) (float64, bool) {
	t, ok := timeOf(v)
	if !ok {
		return 0, false
	}
	return decimaltime.Encode(t), true
}

// HPDecimalTime is the arbitrary-precision variant of DecimalTime.
func HPDecimalTime(v any) (decimal.Decimal, bool) {
	t, ok := timeOf(v)
	if !ok {
		return decimal.Decimal{}, false
	}
	return decimaltime.EncodeDecimal(t), true
}

// RightAscension returns the right-ascension angle of v in degrees.
// It answers false when v lacks the clock fields.
func RightAscension(v any) (float64, bool) {
	t, ok := timeOf(v)
	if !ok {
		return 0, false
	}
	return rightascension.Degrees(t), true
}

// dateTimeOf assembles a DateTime from a value carrying both the
// calendar and the clock capability. Values whose fields fall
// outside the calendar or clock ranges count as unsupported.
func dateTimeOf(v any) (temporal.DateTime, bool) {
	v = adapt(v)
	cal, ok := v.(temporal.CalendarFields)
	if !ok {
		return temporal.DateTime{}, false
	}
	clock, ok := v.(temporal.ClockFields)
	if !ok {
		return temporal.DateTime{}, false
	}
	date, err := temporal.NewDate(cal.CalendarDate())
	if err != nil {
		return temporal.DateTime{}, false
	}
	t, err := temporal.TimeFromNanos(clock.NanoOfDay())
	if err != nil {
		return temporal.DateTime{}, false
	}
	return date.At(t), true
}

// timeOf extracts the time of day from a value carrying the clock
// capability.
func timeOf(v any) (temporal.Time, bool) {
	v = adapt(v)
	clock, ok := v.(temporal.ClockFields)
	if !ok {
		return temporal.Time{}, false
	}
	t, err := temporal.TimeFromNanos(clock.NanoOfDay())
	if err != nil {
		return temporal.Time{}, false
	}
	return t, true
}

// adapt converts host time values to the module's representation.
func adapt(v any) any {
	if t, ok := v.(time.Time); ok {
		return temporal.FromTime(t)
	}
	return v
}
