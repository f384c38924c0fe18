package decimaltime

import (
	"errors"
	"fmt"
)

// ParseError reports text that could not be parsed as a decimal
// date-time expression.
type ParseError struct {
	// Text is the original input.
	Text string

	// Offset is the zero-based position of the failure. The grammar
	// is matched against the whole input, so it is always 0.
	Offset int

	// Err is the underlying component error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as decimal date-time (offset %d)", e.Text, e.Offset)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }

// IsParseError returns true if the error is a decimal date-time parse
// error. Uses errors.As to handle wrapped errors.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
