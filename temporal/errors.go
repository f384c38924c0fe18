package temporal

import (
	"errors"
	"fmt"
)

// RangeError reports a calendar or clock component outside its valid
// range.
type RangeError struct {
	// Field names the offending component ("month", "nano-of-day", ...).
	Field string

	// Value is the rejected value.
	Value int64

	// Min and Max bound the valid range, inclusive.
	Min, Max int64
}

// Error implements the error interface.
func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// IsRangeError returns true if the error is a component range error.
// Uses errors.As to handle wrapped errors.
func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}

func rangeError(field string, value, min, max int64) *RangeError {
	return &RangeError{Field: field, Value: value, Min: min, Max: max}
}
