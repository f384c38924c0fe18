package julian

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// arith provides the numeric operations the day conversion needs,
// letting the algorithm be written once and instantiated per numeric
// representation.
type arith[T any] interface {
	FromInt(int64) T
	FromString(string) T
	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T

	// Floor drops the fractional part. The float form rounds toward
	// negative infinity, the decimal form truncates toward zero; the
	// two agree on every quantity the conversion floors, all of
	// which are non-negative.
	Floor(T) T

	// DivInt returns the integral part of a/b, with the same
	// rounding as Floor.
	DivInt(a, b T) T

	Less(a, b T) bool
	Int(T) int64
	Float(T) float64
}

// floatArith instantiates the conversion over float64.
type floatArith struct{}

func (floatArith) FromInt(n int64) float64 { return float64(n) }

func (floatArith) FromString(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(err)
	}
	return f
}

func (floatArith) Add(a, b float64) float64    { return a + b }
func (floatArith) Sub(a, b float64) float64    { return a - b }
func (floatArith) Mul(a, b float64) float64    { return a * b }
func (floatArith) Floor(v float64) float64     { return math.Floor(v) }
func (floatArith) DivInt(a, b float64) float64 { return math.Floor(a / b) }
func (floatArith) Less(a, b float64) bool      { return a < b }
func (floatArith) Int(v float64) int64         { return int64(v) }
func (floatArith) Float(v float64) float64     { return v }

// decimalArith instantiates the conversion over shopspring decimals.
// Sums and products are exact; Floor and DivInt truncate toward
// zero, the rounding the precision policy prescribes for integral
// steps.
type decimalArith struct{}

func (decimalArith) FromInt(n int64) decimal.Decimal     { return decimal.NewFromInt(n) }
func (decimalArith) FromString(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func (decimalArith) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func (decimalArith) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (decimalArith) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }
func (decimalArith) Floor(v decimal.Decimal) decimal.Decimal  { return v.Truncate(0) }

func (decimalArith) DivInt(a, b decimal.Decimal) decimal.Decimal {
	q, _ := a.QuoRem(b, 0)
	return q
}

func (decimalArith) Less(a, b decimal.Decimal) bool  { return a.Cmp(b) < 0 }
func (decimalArith) Int(v decimal.Decimal) int64     { return v.IntPart() }
func (decimalArith) Float(v decimal.Decimal) float64 { return v.InexactFloat64() }
