// Package decimaltime encodes time-of-day as a fraction of the day
// and parses the year-month-day.fraction interchange notation.
//
// Decimal time covers [0, 1), with 0 at midnight rather than noon;
// adding 0.5 gives the astronomical convention. The codec has a fast
// float64 path and an arbitrary-precision path built on
// shopspring/decimal, governed by the precision constants in this
// package. All functions ignore time zones.
package decimaltime
