package utils

import (
	"strings"
	"time"
)

// Itinerary dates travel as plain YYYY-MM-DD strings and compare
// lexicographically; these helpers are the only place they cross into
// time.Time, for day arithmetic in the derived views.
const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate reads a calendar date in the local timezone so trip days line
// up with the traveller's wall clock.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateTime renders booking timestamps ("booked_at") for storage.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}
