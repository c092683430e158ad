package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tableflip.dev/reflexa/pkg/emotion"
	"tableflip.dev/reflexa/pkg/entry"
)

func entryOn(id string, at time.Time, e emotion.Emotion) *entry.Entry {
	return &entry.Entry{
		ID:      id,
		Content: "entry " + id,
		Date:    entry.Timestamp{Time: at},
		Emotion: e,
	}
}

func TestCurrentStreakConsecutiveDays(t *testing.T) {
	now := time.Date(2026, time.April, 10, 18, 0, 0, 0, time.Local)
	entries := []*entry.Entry{
		entryOn("a", now.Add(-2*time.Hour), emotion.Joy),
		entryOn("b", now.AddDate(0, 0, -1), emotion.Joy),
		entryOn("c", now.AddDate(0, 0, -2), emotion.Sadness),
	}

	assert.Equal(t, 3, CurrentStreak(entries, now))
}

func TestCurrentStreakBrokenByGap(t *testing.T) {
	now := time.Date(2026, time.April, 10, 18, 0, 0, 0, time.Local)
	entries := []*entry.Entry{
		entryOn("a", now.Add(-time.Hour), emotion.Joy),
		entryOn("b", now.AddDate(0, 0, -3), emotion.Joy),
	}

	assert.Equal(t, 1, CurrentStreak(entries, now))
}

func TestCurrentStreakStale(t *testing.T) {
	now := time.Date(2026, time.April, 10, 18, 0, 0, 0, time.Local)
	entries := []*entry.Entry{
		entryOn("a", now.AddDate(0, 0, -5), emotion.Joy),
	}

	assert.Equal(t, 0, CurrentStreak(entries, now))
}

func TestCurrentStreakYesterdayAnchors(t *testing.T) {
	now := time.Date(2026, time.April, 10, 18, 0, 0, 0, time.Local)
	entries := []*entry.Entry{
		entryOn("a", now.AddDate(0, 0, -1), emotion.Joy),
		entryOn("b", now.AddDate(0, 0, -2), emotion.Joy),
	}

	assert.Equal(t, 2, CurrentStreak(entries, now))
}

func TestCurrentStreakSameDayEntries(t *testing.T) {
	now := time.Date(2026, time.April, 10, 18, 0, 0, 0, time.Local)
	entries := []*entry.Entry{
		entryOn("a", now.Add(-time.Hour), emotion.Joy),
		entryOn("b", now.Add(-2*time.Hour), emotion.Love),
		entryOn("c", now.AddDate(0, 0, -1), emotion.Joy),
	}

	// The second same-day entry neither extends nor breaks the run.
	assert.Equal(t, 2, CurrentStreak(entries, now))
}

func TestCurrentStreakEmpty(t *testing.T) {
	assert.Equal(t, 0, CurrentStreak(nil, time.Now()))
}

func TestLongestStreak(t *testing.T) {
	base := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.Local)
	entries := []*entry.Entry{
		// A 2-day run, a gap, then a 4-day run.
		entryOn("a", base, emotion.Joy),
		entryOn("b", base.AddDate(0, 0, 1), emotion.Joy),
		entryOn("c", base.AddDate(0, 0, 5), emotion.Fear),
		entryOn("d", base.AddDate(0, 0, 6), emotion.Fear),
		entryOn("e", base.AddDate(0, 0, 7), emotion.Fear),
		entryOn("f", base.AddDate(0, 0, 8), emotion.Fear),
	}

	assert.Equal(t, 4, LongestStreak(entries))
}

func TestLongestStreakSingle(t *testing.T) {
	entries := []*entry.Entry{entryOn("a", time.Now(), emotion.Joy)}
	assert.Equal(t, 1, LongestStreak(entries))
	assert.Equal(t, 0, LongestStreak(nil))
}

func TestStreaksDoNotReorderInput(t *testing.T) {
	now := time.Date(2026, time.April, 10, 18, 0, 0, 0, time.Local)
	entries := []*entry.Entry{
		entryOn("old", now.AddDate(0, 0, -1), emotion.Joy),
		entryOn("new", now.Add(-time.Hour), emotion.Joy),
	}

	CurrentStreak(entries, now)
	LongestStreak(entries)

	assert.Equal(t, "old", entries[0].ID)
	assert.Equal(t, "new", entries[1].ID)
}
