package rightascension

import "github.com/fastipletonis/meeus/temporal"

// nanosPerDegree converts an angle in degrees to nanoseconds of
// right-ascension time. One degree is four minutes of time.
const nanosPerDegree = 24.0e10

// Degrees converts a time of day to a right-ascension angle in
// degrees.
func Degrees(t temporal.Time) float64 {
	seconds := float64(t.Second()) + float64(t.Nanosecond())*1e-9
	hours := float64(t.Hour()) + float64(t.Minute())/60 + seconds/3600
	return hours * 15
}

// Time converts a right-ascension angle in degrees to a time of day,
// truncating to whole nanoseconds. Angles outside [0, 360) fall
// outside the clock range and are rejected.
func Time(degrees float64) (temporal.Time, error) {
	return temporal.TimeFromNanos(int64(degrees * nanosPerDegree))
}
