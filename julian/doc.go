// Package julian converts calendar date-times to the astronomical
// Julian Day and back, following the procedure in Meeus, Astronomical
// Algorithms, Chapter 7.
//
// Unlike an integer Julian Day Number, the values here carry the time
// of day as a fraction, so 1957-10-04T19:26:24 maps to 2436116.31.
// Every conversion exists in two numeric realizations sharing one
// algorithm skeleton: a float64 path and an arbitrary-precision path
// over shopspring/decimal. Dates are classified against the
// 1582-10-15 Julian/Gregorian cutover on every call.
//
// The conversions ignore time zones; callers supply the frame.
package julian
