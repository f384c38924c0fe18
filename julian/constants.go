package julian

import "github.com/shopspring/decimal"

// constants carries the fixed Meeus coefficients pre-parsed into the
// numeric representation T.
type constants[T any] struct {
	half       T // 0.5
	one        T // 1
	two        T // 2
	four       T // 4
	hundred    T // 100
	monthCoeff T // 30.6001
	monthBias  T // 122.1
	yearDays   T // 365.25
	era        T // 1524
	eraHalf    T // 1524.5
	eraYears   T // 4716
	century    T // 36524.25
	gregEpoch  T // 1867216.25
	gregStart  T // 2299161
}

func newConstants[T any](ops arith[T]) constants[T] {
	return constants[T]{
		half:       ops.FromString("0.5"),
		one:        ops.FromInt(1),
		two:        ops.FromInt(2),
		four:       ops.FromInt(4),
		hundred:    ops.FromInt(100),
		monthCoeff: ops.FromString("30.6001"),
		monthBias:  ops.FromString("122.1"),
		yearDays:   ops.FromString("365.25"),
		era:        ops.FromInt(1524),
		eraHalf:    ops.FromString("1524.5"),
		eraYears:   ops.FromInt(4716),
		century:    ops.FromString("36524.25"),
		gregEpoch:  ops.FromString("1867216.25"),
		gregStart:  ops.FromInt(2299161),
	}
}

// The two converter instances are built once at package load and are
// read-only afterwards, so they are safe to share across goroutines.
var (
	floatConv   = converter[float64]{ops: floatArith{}, k: newConstants[float64](floatArith{})}
	decimalConv = converter[decimal.Decimal]{ops: decimalArith{}, k: newConstants[decimal.Decimal](decimalArith{})}
)
