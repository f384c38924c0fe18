// Package temporal provides the immutable calendar and clock value
// types shared by the converter packages.
//
// This package contains value types only. Every other package in the
// module imports temporal; temporal imports nothing from the module.
// Date, Time and DateTime are plain values: constructed once, never
// mutated, safe to copy and to share across goroutines.
//
// The types carry naive civil timestamps. There is no time zone, no
// leap-second handling and no time-scale correction; callers convert
// to the frame they need (normally UTC) before constructing values.
package temporal
