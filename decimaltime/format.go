package decimaltime

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/fastipletonis/meeus/temporal"
)

// decimalDateTime matches the interchange notation, e.g. 1957-10-04.81.
// The fractional part is mandatory; both "." and "," separate it from
// the day. Matching uses find semantics, so the expression may occur
// anywhere in the input.
var decimalDateTime = regexp.MustCompile(`([+-]?[0-9]{1,4})-([0-9]{1,2})-([0-9]{1,2})[.,]([0-9]+)`)

// Parse extracts a calendar date and a decimal time from text in the
// 1957-10-04.81 notation. The fraction digits are read as "0.digits",
// so midnight of 2000-11-01 is written 2000-11-01.0 (or 2000-11-1,0).
//
// A *ParseError reports text the grammar does not match. Components
// the grammar accepts but the calendar rejects, such as month 13,
// surface the temporal range error instead.
func Parse(text string) (temporal.Date, float64, error) {
	m := decimalDateTime.FindStringSubmatch(text)
	if m == nil {
		return temporal.Date{}, 0, &ParseError{Text: text}
	}
	year, err := atoiComponent(text, m[1])
	if err != nil {
		return temporal.Date{}, 0, err
	}
	month, err := atoiComponent(text, m[2])
	if err != nil {
		return temporal.Date{}, 0, err
	}
	day, err := atoiComponent(text, m[3])
	if err != nil {
		return temporal.Date{}, 0, err
	}
	frac, err := strconv.ParseFloat("0."+m[4], 64)
	if err != nil {
		return temporal.Date{}, 0, &ParseError{Text: text, Err: err}
	}
	date, err := temporal.NewDate(year, month, day)
	if err != nil {
		return temporal.Date{}, 0, fmt.Errorf("parse %q: %w", text, err)
	}
	return date, frac, nil
}

// ParseDateTime parses the decimal notation and decodes the fraction,
// so 1957-10-04.81 becomes 1957-10-04T19:26:24.
func ParseDateTime(text string) (temporal.DateTime, error) {
	date, frac, err := Parse(text)
	if err != nil {
		return temporal.DateTime{}, err
	}
	t, err := Decode(frac)
	if err != nil {
		return temporal.DateTime{}, fmt.Errorf("parse %q: %w", text, err)
	}
	return date.At(t), nil
}

// FormatDateTime renders the inverse conversion's intermediate in the
// parse notation: "%d-%d-%f", six fractional digits. The fractional
// day re-enters through Parse, which bounds the time-of-day precision
// recovered from an inverse conversion to this width.
func FormatDateTime(year, month int, day float64) string {
	return fmt.Sprintf("%d-%d-%f", year, month, day)
}

func atoiComponent(text, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &ParseError{Text: text, Err: err}
	}
	return n, nil
}
