package decimaltime

import (
	"github.com/shopspring/decimal"

	"github.com/fastipletonis/meeus/temporal"
)

// Encode returns the decimal time for a time of day: the fraction of
// the day elapsed since midnight, in [0, 1).
func Encode(t temporal.Time) float64 {
	return float64(t.NanoOfDay()) / float64(temporal.NanosPerDay)
}

// EncodeDecimal is the arbitrary-precision variant of Encode. The
// quotient is rounded half-up at QuotientScale decimal places.
func EncodeDecimal(t temporal.Time) decimal.Decimal {
	return decimal.NewFromInt(t.NanoOfDay()).DivRound(nanosPerDay, QuotientScale)
}

// Decode converts a decimal time back to a time of day, truncating to
// whole nanoseconds. The fraction is expected in [0, 1); a value
// outside the day surfaces the temporal range error.
func Decode(f float64) (temporal.Time, error) {
	return temporal.TimeFromNanos(int64(f * float64(temporal.NanosPerDay)))
}

// DecodeDecimal is the arbitrary-precision variant of Decode. The
// nanosecond product is exact; truncation happens on the final
// integer extraction.
func DecodeDecimal(d decimal.Decimal) (temporal.Time, error) {
	return temporal.TimeFromNanos(d.Mul(nanosPerDay).IntPart())
}
