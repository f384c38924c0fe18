package julian

import (
	"errors"
	"fmt"
)

// NegativeDayError reports an inverse conversion attempted on a
// negative Julian Day.
type NegativeDayError struct {
	// Day is the rejected value.
	Day float64
}

// Error implements the error interface.
func (e *NegativeDayError) Error() string {
	return fmt.Sprintf("cannot convert negative julian day %v", e.Day)
}

// IsNegativeDayError returns true if the error reports a negative
// Julian Day. Uses errors.As to handle wrapped errors.
func IsNegativeDayError(err error) bool {
	var ne *NegativeDayError
	return errors.As(err, &ne)
}
