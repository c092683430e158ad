package stats

import (
	"time"

	"tableflip.dev/reflexa/pkg/entry"
)

// Snapshot bundles every derived statistic. It is recomputed from scratch
// after each mutation and never persisted; the entry list is the only
// source of truth.
type Snapshot struct {
	CurrentStreak int               `json:"currentStreak"`
	LongestStreak int               `json:"longestStreak"`
	Weekly        WeeklyEmotions    `json:"weeklyEmotions"`
	Monthly       []MonthlyEmotions `json:"monthlyEmotions"`
}

// Compute derives the full snapshot for the entries as of now.
func Compute(entries []*entry.Entry, now time.Time) Snapshot {
	return Snapshot{
		CurrentStreak: CurrentStreak(entries, now),
		LongestStreak: LongestStreak(entries),
		Weekly:        Weekly(entries, now),
		Monthly:       Monthly(entries),
	}
}
