package temporal

import "time"

// DateTime is a calendar date combined with a time of day. It embeds
// both components and so carries both the calendar and the clock
// capabilities.
type DateTime struct {
	Date
	Time
}

// NewDateTime returns a DateTime built from individual components.
func NewDateTime(year, month, day, hour, minute, sec, nano int) (DateTime, error) {
	d, err := NewDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	t, err := TimeOf(hour, minute, sec, nano)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{Date: d, Time: t}, nil
}

// MustDateTime is like NewDateTime but panics on invalid input.
// Intended for fixtures and package-level tables.
func MustDateTime(year, month, day, hour, minute, sec, nano int) DateTime {
	dt, err := NewDateTime(year, month, day, hour, minute, sec, nano)
	if err != nil {
		panic(err)
	}
	return dt
}

// FromTime converts a standard library time.Time, keeping the civil
// fields and discarding the location. The caller chooses the frame
// (normally UTC) before converting.
func FromTime(t time.Time) DateTime {
	year, month, day := t.Date()
	n := int64(t.Hour())*nanosPerHour +
		int64(t.Minute())*nanosPerMinute +
		int64(t.Second())*nanosPerSecond +
		int64(t.Nanosecond())
	return DateTime{
		Date: Date{Year: year, Month: int(month), Day: day},
		Time: Time{nanos: n},
	}
}

// String renders the combined ISO-style form, e.g. 1957-10-04T19:26:24.
func (dt DateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String()
}
