package timeutil

import (
	"fmt"
	"time"
)

// Humanize renders when relative to now: "today", "yesterday", "3 days ago",
// falling back to the date for anything older than a week.
func Humanize(when, now time.Time) string {
	day := func(t time.Time) time.Time {
		t = t.Local()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	}
	gap := int(day(now).Sub(day(when)).Round(24*time.Hour) / (24 * time.Hour))

	switch {
	case gap <= 0:
		return "today"
	case gap == 1:
		return "yesterday"
	case gap < 7:
		return fmt.Sprintf("%d days ago", gap)
	default:
		return when.Local().Format("Jan 2, 2006")
	}
}
