package stats

import (
	"sort"
	"time"

	"tableflip.dev/reflexa/pkg/emotion"
	"tableflip.dev/reflexa/pkg/entry"
)

// Count is one histogram bucket. Emotions with no occurrences in range are
// omitted entirely rather than reported as zero.
type Count struct {
	Emotion emotion.Emotion `json:"emotion"`
	Count   int             `json:"count"`
}

// Range selects a sliding window anchored on now. This is the chart-query
// flavor of aggregation; the weekly/monthly snapshot below is
// calendar-aligned and intentionally disagrees near window edges.
type Range string

const (
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeYear  Range = "year"
)

// CountsInRange tallies effective emotions for entries inside the sliding
// window ending at now.
func CountsInRange(entries []*entry.Entry, r Range, now time.Time) []Count {
	var start time.Time
	switch r {
	case RangeWeek:
		start = now.AddDate(0, 0, -7)
	case RangeMonth:
		start = now.AddDate(0, -1, 0)
	case RangeYear:
		start = now.AddDate(-1, 0, 0)
	default:
		return nil
	}
	return CountsBetween(entries, start, now)
}

// CountsBetween tallies effective emotions for entries whose date falls in
// [start, end]. Buckets appear in first-seen order.
func CountsBetween(entries []*entry.Entry, start, end time.Time) []Count {
	counts := make([]Count, 0)
	for _, e := range entries {
		d := e.Date.Time
		if d.Before(start) || d.After(end) {
			continue
		}
		counts = tally(counts, e.EffectiveEmotion())
	}
	return counts
}

// WeeklyEmotions is the calendar-aligned snapshot for the current
// Monday-start week.
type WeeklyEmotions struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Counts    []Count   `json:"counts"`
}

// MonthlyEmotions is one yyyy-MM bucket of the monthly snapshot.
type MonthlyEmotions struct {
	Month  string  `json:"month"`
	Counts []Count `json:"counts"`
}

const monthKeyLayout = "2006-01"

// WeekRange returns the Monday-start calendar week containing t.
func WeekRange(t time.Time) (start, end time.Time) {
	t = t.Local()
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday closes the week rather than opening it
	}
	year, month, day := t.Date()
	start = time.Date(year, month, day, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1-weekday)
	end = start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// Weekly computes the snapshot histogram for the calendar week containing
// now.
func Weekly(entries []*entry.Entry, now time.Time) WeeklyEmotions {
	start, end := WeekRange(now)
	week := WeeklyEmotions{StartDate: start, EndDate: end, Counts: make([]Count, 0)}
	for _, e := range entries {
		d := e.Date.Time
		if d.Before(start) || d.After(end) {
			continue
		}
		week.Counts = tally(week.Counts, e.EffectiveEmotion())
	}
	return week
}

// Monthly buckets the entire history into yyyy-MM histograms, oldest month
// first.
func Monthly(entries []*entry.Entry) []MonthlyEmotions {
	buckets := make(map[string][]Count)
	for _, e := range entries {
		key := e.Date.Local().Format(monthKeyLayout)
		buckets[key] = tally(buckets[key], e.EffectiveEmotion())
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	months := make([]MonthlyEmotions, 0, len(keys))
	for _, key := range keys {
		months = append(months, MonthlyEmotions{Month: key, Counts: buckets[key]})
	}
	return months
}

func tally(counts []Count, e emotion.Emotion) []Count {
	for i := range counts {
		if counts[i].Emotion == e {
			counts[i].Count++
			return counts
		}
	}
	return append(counts, Count{Emotion: e, Count: 1})
}
