package temporal

import (
	"fmt"
	"strings"
)

// NanosPerDay is the number of nanoseconds in a civil day.
const NanosPerDay int64 = 86_400_000_000_000

const (
	nanosPerSecond int64 = 1_000_000_000
	nanosPerMinute       = 60 * nanosPerSecond
	nanosPerHour         = 60 * nanosPerMinute
)

// Time is a clock time of day, stored as nanoseconds since midnight.
// The zero value is midnight.
type Time struct {
	nanos int64
}

// TimeOf returns the Time for the given hour, minute, second and
// nanosecond components.
func TimeOf(hour, minute, sec, nano int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, rangeError("hour", int64(hour), 0, 23)
	}
	if minute < 0 || minute > 59 {
		return Time{}, rangeError("minute", int64(minute), 0, 59)
	}
	if sec < 0 || sec > 59 {
		return Time{}, rangeError("second", int64(sec), 0, 59)
	}
	if nano < 0 || nano > 999_999_999 {
		return Time{}, rangeError("nanosecond", int64(nano), 0, 999_999_999)
	}
	n := int64(hour)*nanosPerHour + int64(minute)*nanosPerMinute + int64(sec)*nanosPerSecond + int64(nano)
	return Time{nanos: n}, nil
}

// MustTime is like TimeOf but panics on invalid input. Intended for
// fixtures and package-level tables.
func MustTime(hour, minute, sec, nano int) Time {
	t, err := TimeOf(hour, minute, sec, nano)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeFromNanos returns the Time for a nanosecond-of-day count in
// [0, NanosPerDay).
func TimeFromNanos(n int64) (Time, error) {
	if n < 0 || n >= NanosPerDay {
		return Time{}, rangeError("nano-of-day", n, 0, NanosPerDay-1)
	}
	return Time{nanos: n}, nil
}

// NanoOfDay returns the nanoseconds elapsed since midnight.
func (t Time) NanoOfDay() int64 { return t.nanos }

// Hour returns the hour of day in [0, 23].
func (t Time) Hour() int { return int(t.nanos / nanosPerHour) }

// Minute returns the minute of hour in [0, 59].
func (t Time) Minute() int { return int(t.nanos/nanosPerMinute) % 60 }

// Second returns the second of minute in [0, 59].
func (t Time) Second() int { return int(t.nanos/nanosPerSecond) % 60 }

// Nanosecond returns the nanosecond of second in [0, 999999999].
func (t Time) Nanosecond() int { return int(t.nanos % nanosPerSecond) }

// String renders the time as HH:MM:SS, with a fractional-second
// suffix when the nanosecond component is nonzero.
func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	if ns := t.Nanosecond(); ns != 0 {
		s += "." + strings.TrimRight(fmt.Sprintf("%09d", ns), "0")
	}
	return s
}
