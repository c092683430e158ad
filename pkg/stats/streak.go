// Package stats derives streaks and emotion histograms from an entry list.
// Everything here is a pure function of the entries and a reference time,
// so recomputation is idempotent and safe to run after every mutation.
package stats

import (
	"math"
	"sort"
	"time"

	"tableflip.dev/reflexa/pkg/entry"
)

// dayStart truncates to local midnight so gaps count calendar days, not
// 24-hour windows.
func dayStart(t time.Time) time.Time {
	year, month, day := t.Local().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// wholeDays is the calendar-day difference between two instants. Rounding
// absorbs DST-shortened or -lengthened days.
func wholeDays(later, earlier time.Time) int {
	return int(math.Round(dayStart(later).Sub(dayStart(earlier)).Hours() / 24))
}

// CurrentStreak counts consecutive journaled days ending today or
// yesterday relative to now. A most recent entry older than one whole day
// breaks the streak outright.
func CurrentStreak(entries []*entry.Entry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	sorted := sortedByDate(entries, false)
	if wholeDays(now, sorted[0].Date.Time) > 1 {
		return 0
	}

	streak := 1
	current := sorted[0].Date.Time
	for _, e := range sorted[1:] {
		gap := wholeDays(current, e.Date.Time)
		if gap == 1 {
			streak++
			current = e.Date.Time
		} else if gap > 1 {
			break
		}
		// A zero gap is another entry on the same day; it neither extends
		// nor breaks the streak.
	}
	return streak
}

// LongestStreak finds the longest run of consecutive journaled days across
// the whole history.
func LongestStreak(entries []*entry.Entry) int {
	if len(entries) == 0 {
		return 0
	}

	sorted := sortedByDate(entries, true)
	longest, current := 1, 1
	previous := sorted[0].Date.Time
	for _, e := range sorted[1:] {
		gap := wholeDays(e.Date.Time, previous)
		if gap == 1 {
			current++
			if current > longest {
				longest = current
			}
		} else if gap > 1 {
			current = 1
		}
		previous = e.Date.Time
	}
	return longest
}

// sortedByDate returns a copy ordered by date without touching the input.
func sortedByDate(entries []*entry.Entry, ascending bool) []*entry.Entry {
	sorted := append([]*entry.Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Date.Before(sorted[j].Date.Time)
		}
		return sorted[i].Date.After(sorted[j].Date.Time)
	})
	return sorted
}
