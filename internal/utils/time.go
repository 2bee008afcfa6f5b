package utils

import (
	"time"

	"github.com/julianstephens/wellness/internal/constants"
)

// DayKey returns the day-key (YYYY-MM-DD) for the given instant in its own
// location. All instants within one local calendar day share the same key,
// and keys for later days sort lexically after keys for earlier days.
func DayKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDayKey parses a day-key in the given location. The result is midnight
// of that day.
func ParseDayKey(day string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(constants.DateFormat, day, loc)
}

// DaysBetween returns the number of whole calendar days from the date of
// `from` to the date of `to`, each taken in its own location. The count is
// by calendar day, not elapsed hours, so DST transitions do not skew it.
func DaysBetween(from, to time.Time) int {
	a := midnightUTC(from)
	b := midnightUTC(to)
	return int(b.Sub(a).Hours() / 24)
}

// midnightUTC re-anchors the instant's local calendar date at UTC midnight
// so day arithmetic is exact regardless of zone offsets.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
