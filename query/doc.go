// Package query derives astronomical quantities from arbitrary
// date/time values.
//
// Each accessor probes the value for the calendar and clock
// capabilities it needs and reports (zero, false) when one is
// missing, so callers can ask any value for a quantity without
// knowing its concrete type. A time.Time is adapted through
// temporal.FromTime before probing, which lets the standard
// library's type participate directly.
package query
