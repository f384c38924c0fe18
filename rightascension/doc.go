// Package rightascension converts right ascension between its
// time-of-day and angle representations.
//
// A full day of right ascension spans 360 degrees, 15 per hour. The
// conversions are linear and ignore time zones.
package rightascension
