package temporal

import "fmt"

// Date is a calendar date in the proleptic calendar. Year may be zero
// or negative; month and day follow the civil 1-based convention.
//
// Day is validated against the fixed 1-31 range only, not against the
// length of the month, matching the interchange grammar it backs.
type Date struct {
	Year  int
	Month int
	Day   int
}

// NewDate returns a Date after validating the month and day ranges.
func NewDate(year, month, day int) (Date, error) {
	if month < 1 || month > 12 {
		return Date{}, rangeError("month", int64(month), 1, 12)
	}
	if day < 1 || day > 31 {
		return Date{}, rangeError("day", int64(day), 1, 31)
	}
	return Date{Year: year, Month: month, Day: day}, nil
}

// MustDate is like NewDate but panics on invalid input. Intended for
// fixtures and package-level tables.
func MustDate(year, month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// CalendarDate returns the year, month and day components.
func (d Date) CalendarDate() (year, month, day int) {
	return d.Year, d.Month, d.Day
}

// At combines the date with a time of day.
func (d Date) At(t Time) DateTime {
	return DateTime{Date: d, Time: t}
}

// String renders the date as [-]YYYY-MM-DD, with the year zero-padded
// to four digits and a leading minus for negative years.
func (d Date) String() string {
	if d.Year < 0 {
		return fmt.Sprintf("-%04d-%02d-%02d", -d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
