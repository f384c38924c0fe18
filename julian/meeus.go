package julian

// First Gregorian calendar date.
const (
	cutoverYear  = 1582
	cutoverMonth = 10
	cutoverDay   = 15
)

// IsJulian classifies a calendar date triple: true when the date
// precedes the 1582-10-15 cutover and is therefore read in the
// Julian calendar. The cutover date itself is Gregorian.
func IsJulian(year, month, day int) bool {
	switch {
	case year != cutoverYear:
		return year < cutoverYear
	case month != cutoverMonth:
		return month < cutoverMonth
	default:
		return day < cutoverDay
	}
}

// converter binds the numeric operations and the constant table for
// one numeric representation of the Chapter 7 procedure.
type converter[T any] struct {
	ops arith[T]
	k   constants[T]
}

// dayNumber implements the forward conversion. The day argument
// carries the day of month plus the decimal time fraction; julian
// selects the zero correction term.
func (cv converter[T]) dayNumber(year, month int, day T, julian bool) T {
	ops, k := cv.ops, cv.k
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	yT := ops.FromInt(int64(y))
	b := ops.FromInt(0)
	if !julian {
		a := ops.DivInt(yT, k.hundred)
		b = ops.Add(ops.Sub(k.two, a), ops.DivInt(a, k.four))
	}
	jd := ops.Floor(ops.Mul(k.yearDays, ops.Add(yT, k.eraYears)))
	jd = ops.Add(jd, ops.Floor(ops.Mul(k.monthCoeff, ops.FromInt(int64(m+1)))))
	jd = ops.Add(jd, day)
	jd = ops.Add(jd, b)
	return ops.Sub(jd, k.eraHalf)
}

// calendar implements the inverse conversion, yielding the calendar
// year and month plus the real-valued day that carries the recovered
// time fraction. Callers reject negative input before this runs.
func (cv converter[T]) calendar(jd T) (year, month int, day T) {
	ops, k := cv.ops, cv.k
	jdc := ops.Add(jd, k.half)
	z := ops.Floor(jdc)
	f := ops.Sub(jdc, z)
	a := z
	if !ops.Less(z, k.gregStart) {
		alpha := ops.DivInt(ops.Sub(z, k.gregEpoch), k.century)
		a = ops.Sub(ops.Add(ops.Add(z, k.one), alpha), ops.DivInt(alpha, k.four))
	}
	b := ops.Add(a, k.era)
	c := ops.DivInt(ops.Sub(b, k.monthBias), k.yearDays)
	d := ops.Floor(ops.Mul(k.yearDays, c))
	e := ops.DivInt(ops.Sub(b, d), k.monthCoeff)
	day = ops.Add(ops.Sub(ops.Sub(b, d), ops.Floor(ops.Mul(k.monthCoeff, e))), f)

	ei, ci := int(ops.Int(e)), int(ops.Int(c))
	if ei < 14 {
		month = ei - 1
	} else {
		month = ei - 13
	}
	if month > 2 {
		year = ci - 4716
	} else {
		year = ci - 4715
	}
	return year, month, day
}
