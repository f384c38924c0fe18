package temporal

// CalendarFields is satisfied by values that expose a calendar date.
// Capability checks in the query layer probe for this interface
// before attempting a conversion that needs the date components.
type CalendarFields interface {
	CalendarDate() (year, month, day int)
}

// ClockFields is satisfied by values that expose a time of day.
type ClockFields interface {
	NanoOfDay() int64
}

var (
	_ CalendarFields = Date{}
	_ ClockFields    = Time{}
	_ CalendarFields = DateTime{}
	_ ClockFields    = DateTime{}
)
