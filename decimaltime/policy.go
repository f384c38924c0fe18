package decimaltime

import (
	"github.com/shopspring/decimal"

	"github.com/fastipletonis/meeus/temporal"
)

// Precision policy for the arbitrary-precision path.
//
// Encode quotients round half-up at QuotientScale decimal places;
// Decode and the integral steps of the day conversion truncate toward
// zero.
const (
	// SignificantDigits is the minimum number of significant digits
	// every nonzero decimal-time quotient retains.
	SignificantDigits = 20

	// QuotientScale is the decimal-place count of the encode
	// division. The smallest nonzero fraction of a day, one
	// nanosecond at about 1.16e-14, still carries SignificantDigits
	// significant digits at this scale.
	QuotientScale = 34
)

var nanosPerDay = decimal.NewFromInt(temporal.NanosPerDay)
