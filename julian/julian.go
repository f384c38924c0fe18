package julian

import (
	"github.com/shopspring/decimal"

	"github.com/fastipletonis/meeus/decimaltime"
	"github.com/fastipletonis/meeus/temporal"
)

// Day returns the astronomical Julian Day of a calendar date-time as
// a float64.
//
// Dates before the epoch -4712-01-01T12:00 yield a negative result;
// the inverse direction rejects such values.
func Day(dt temporal.DateTime) float64 {
	d := float64(dt.Day) + decimaltime.Encode(dt.Time)
	return floatConv.dayNumber(dt.Year, dt.Month, d, IsJulian(dt.Year, dt.Month, dt.Day))
}

// DecimalDay is the arbitrary-precision variant of Day.
func DecimalDay(dt temporal.DateTime) decimal.Decimal {
	d := decimal.NewFromInt(int64(dt.Day)).Add(decimaltime.EncodeDecimal(dt.Time))
	return decimalConv.dayNumber(dt.Year, dt.Month, d, IsJulian(dt.Year, dt.Month, dt.Day))
}

// DateTime converts a Julian Day back to a calendar date-time.
// A negative day fails with *NegativeDayError.
//
// The fractional day recovered by the inverse procedure re-enters
// through the textual interchange notation at six fractional digits,
// which bounds the precision of the recovered time of day.
func DateTime(jd float64) (temporal.DateTime, error) {
	if jd < 0 {
		return temporal.DateTime{}, &NegativeDayError{Day: jd}
	}
	year, month, day := floatConv.calendar(jd)
	return decimaltime.ParseDateTime(decimaltime.FormatDateTime(year, month, day))
}

// DateTimeFromDecimal is the arbitrary-precision variant of DateTime.
// The intermediate quantities stay decimal; the final fractional day
// passes through the same six-digit textual notation as the float
// path.
func DateTimeFromDecimal(jd decimal.Decimal) (temporal.DateTime, error) {
	if jd.Sign() < 0 {
		return temporal.DateTime{}, &NegativeDayError{Day: jd.InexactFloat64()}
	}
	year, month, day := decimalConv.calendar(jd)
	return decimaltime.ParseDateTime(decimaltime.FormatDateTime(year, month, decimalConv.ops.Float(day)))
}
