package journal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/reflexa/pkg/emotion"
	"tableflip.dev/reflexa/pkg/entry"
)

// memoryPersistence records calls so tests can assert on write-through
// behavior without touching disk.
type memoryPersistence struct {
	stored  []*entry.Entry
	deleted []string
	seed    []*entry.Entry
}

func (m *memoryPersistence) List(ctx context.Context) []*entry.Entry {
	return m.seed
}

func (m *memoryPersistence) Store(e *entry.Entry) error {
	m.stored = append(m.stored, e.Clone())
	return nil
}

func (m *memoryPersistence) Delete(e *entry.Entry) error {
	m.deleted = append(m.deleted, e.ID)
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testEntry(t *testing.T, id, content string, at time.Time, e emotion.Emotion) *entry.Entry {
	t.Helper()
	return &entry.Entry{
		ID:      id,
		Content: content,
		Date:    entry.Timestamp{Time: at},
		Emotion: e,
	}
}

func TestAddEntryPrependsAndRecomputes(t *testing.T) {
	now := time.Date(2026, time.July, 8, 20, 0, 0, 0, time.Local)
	repo := NewRepository(nil, WithClock(fixedClock(now)))

	require.NoError(t, repo.AddEntry(testEntry(t, "a", "yesterday", now.AddDate(0, 0, -1), emotion.Joy)))
	require.NoError(t, repo.AddEntry(testEntry(t, "b", "today", now.Add(-time.Hour), emotion.Sadness)))

	all := repo.Entries()
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID, "newest insertion first")

	snap := repo.Snapshot()
	assert.Equal(t, 2, snap.CurrentStreak)
	assert.Equal(t, 2, snap.LongestStreak)
}

func TestAddEntryRejectsDuplicateID(t *testing.T) {
	now := time.Now()
	repo := NewRepository(nil)

	require.NoError(t, repo.AddEntry(testEntry(t, "dup", "one", now, emotion.Joy)))
	err := repo.AddEntry(testEntry(t, "dup", "two", now, emotion.Joy))
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Equal(t, 1, repo.TotalEntries())
}

func TestAddEntryValidates(t *testing.T) {
	repo := NewRepository(nil)
	err := repo.AddEntry(&entry.Entry{ID: "x", Date: entry.Timestamp{Time: time.Now()}})
	assert.ErrorIs(t, err, entry.ErrEmptyContent)
}

func TestUpdateEntryMergesFields(t *testing.T) {
	now := time.Now()
	repo := NewRepository(nil)
	require.NoError(t, repo.AddEntry(testEntry(t, "a", "before", now, emotion.Joy)))

	content := "after"
	marked := true
	repo.UpdateEntry("a", Update{Content: &content, IsBookmarked: &marked})

	e, ok := repo.GetEntryByID("a")
	require.True(t, ok)
	assert.Equal(t, "after", e.Content)
	assert.True(t, e.IsBookmarked)
	assert.True(t, e.Date.Equal(now), "date is immutable")
}

func TestUpdateEntryUnknownIDIsNoop(t *testing.T) {
	repo := NewRepository(nil)
	content := "ghost"
	repo.UpdateEntry("missing", Update{Content: &content})
	assert.Zero(t, repo.TotalEntries())
}

func TestDeleteEntry(t *testing.T) {
	now := time.Date(2026, time.July, 8, 20, 0, 0, 0, time.Local)
	p := &memoryPersistence{}
	repo := NewRepository(p, WithClock(fixedClock(now)))

	require.NoError(t, repo.AddEntry(testEntry(t, "a", "only", now, emotion.Joy)))
	repo.DeleteEntry("a")
	repo.DeleteEntry("a") // second delete is a no-op

	assert.Zero(t, repo.TotalEntries())
	assert.Equal(t, []string{"a"}, p.deleted)
	assert.Zero(t, repo.Snapshot().CurrentStreak)
}

func TestCorrectEmotionMovesHistogramBucket(t *testing.T) {
	now := time.Date(2026, time.July, 8, 20, 0, 0, 0, time.Local)
	repo := NewRepository(nil, WithClock(fixedClock(now)))

	require.NoError(t, repo.AddEntry(testEntry(t, "a", "joyful", now.Add(-time.Hour), emotion.Joy)))
	require.NoError(t, repo.AddEntry(testEntry(t, "b", "joyful too", now.Add(-2*time.Hour), emotion.Joy)))
	require.NoError(t, repo.AddEntry(testEntry(t, "c", "sad but actually fine", now.Add(-3*time.Hour), emotion.Sadness)))

	repo.CorrectEmotion("c", emotion.Joy)

	weekly := repo.Snapshot().Weekly
	require.Len(t, weekly.Counts, 1)
	assert.Equal(t, emotion.Joy, weekly.Counts[0].Emotion)
	assert.Equal(t, 3, weekly.Counts[0].Count)
}

func TestToggleFlags(t *testing.T) {
	repo := NewRepository(nil)
	require.NoError(t, repo.AddEntry(testEntry(t, "a", "flags", time.Now(), emotion.Joy)))

	repo.ToggleBookmark("a")
	repo.TogglePrivate("a")

	e, ok := repo.GetEntryByID("a")
	require.True(t, ok)
	assert.True(t, e.IsBookmarked)
	assert.True(t, e.IsPrivate)

	repo.ToggleBookmark("a")
	e, _ = repo.GetEntryByID("a")
	assert.False(t, e.IsBookmarked)

	require.Len(t, repo.BookmarkedEntries(), 0)
}

func TestGetEntriesByDate(t *testing.T) {
	noon := time.Date(2026, time.July, 8, 12, 0, 0, 0, time.Local)
	repo := NewRepository(nil)

	require.NoError(t, repo.AddEntry(testEntry(t, "a", "morning", noon.Add(-3*time.Hour), emotion.Joy)))
	require.NoError(t, repo.AddEntry(testEntry(t, "b", "evening", noon.Add(9*time.Hour), emotion.Joy)))
	require.NoError(t, repo.AddEntry(testEntry(t, "c", "tomorrow", noon.AddDate(0, 0, 1), emotion.Joy)))

	same := repo.GetEntriesByDate(noon)
	assert.Len(t, same, 2)
}

func TestLoadRecomputesFromPersistedEntries(t *testing.T) {
	now := time.Date(2026, time.July, 8, 20, 0, 0, 0, time.Local)
	p := &memoryPersistence{seed: []*entry.Entry{
		testEntry(t, "a", "today", now.Add(-time.Hour), emotion.Joy),
		testEntry(t, "b", "yesterday", now.AddDate(0, 0, -1), emotion.Sadness),
	}}
	repo := NewRepository(p, WithClock(fixedClock(now)))

	require.NoError(t, repo.Load(context.Background()))

	assert.Equal(t, 2, repo.TotalEntries())
	assert.Equal(t, 2, repo.Snapshot().CurrentStreak)
}

func TestLoadRestoresInsertionOrderForBackdatedEntries(t *testing.T) {
	now := time.Date(2026, time.July, 8, 20, 0, 0, 0, time.Local)
	p := &memoryPersistence{}
	repo := NewRepository(p, WithClock(fixedClock(now)))

	require.NoError(t, repo.AddEntry(testEntry(t, "today", "written first, dated today", now, emotion.Joy)))
	require.NoError(t, repo.AddEntry(testEntry(t, "back", "written second, backdated", now.AddDate(0, 0, -3), emotion.Sadness)))
	before := repo.Entries()
	require.Equal(t, "back", before[0].ID)

	// Serve the stored documents newest date first, the way the on-disk
	// store keyed by calendar day hands them out.
	reloaded := NewRepository(&memoryPersistence{seed: []*entry.Entry{
		p.stored[0], // dated today
		p.stored[1], // backdated, written last
	}}, WithClock(fixedClock(now)))
	require.NoError(t, reloaded.Load(context.Background()))

	after := reloaded.Entries()
	require.Len(t, after, 2)
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
	}
}

func TestLoadContinuesInsertionSequence(t *testing.T) {
	now := time.Date(2026, time.July, 8, 20, 0, 0, 0, time.Local)
	seeded := &memoryPersistence{}
	first := NewRepository(seeded, WithClock(fixedClock(now)))
	require.NoError(t, first.AddEntry(testEntry(t, "a", "one", now.AddDate(0, 0, -1), emotion.Joy)))
	require.NoError(t, first.AddEntry(testEntry(t, "b", "two", now, emotion.Joy)))

	p := &memoryPersistence{seed: seeded.stored}
	repo := NewRepository(p, WithClock(fixedClock(now)))
	require.NoError(t, repo.Load(context.Background()))

	require.NoError(t, repo.AddEntry(testEntry(t, "c", "after reload", now.AddDate(0, 0, -5), emotion.Love)))

	assert.Equal(t, "c", repo.Entries()[0].ID)
	// The persisted sequence keeps counting past the loaded maximum, so
	// the new entry stays in front across the next reload too.
	require.Len(t, p.stored, 1)
	assert.Greater(t, p.stored[0].Seq, seeded.stored[1].Seq)
}

func TestSnapshotRecomputeIdempotent(t *testing.T) {
	now := time.Date(2026, time.July, 8, 20, 0, 0, 0, time.Local)
	repo := NewRepository(nil, WithClock(fixedClock(now)))
	require.NoError(t, repo.AddEntry(testEntry(t, "a", "hello", now, emotion.Joy)))

	first := repo.Snapshot()
	second := repo.Snapshot()
	assert.Equal(t, first, second)
}

func TestReturnedEntriesAreCopies(t *testing.T) {
	repo := NewRepository(nil)
	require.NoError(t, repo.AddEntry(testEntry(t, "a", "original", time.Now(), emotion.Joy)))

	e, ok := repo.GetEntryByID("a")
	require.True(t, ok)
	e.Content = "mutated"

	again, _ := repo.GetEntryByID("a")
	assert.Equal(t, "original", again.Content)
}

func TestWriteThroughPersistence(t *testing.T) {
	p := &memoryPersistence{}
	repo := NewRepository(p)

	require.NoError(t, repo.AddEntry(testEntry(t, "a", "persisted", time.Now(), emotion.Joy)))
	repo.ToggleBookmark("a")

	require.Len(t, p.stored, 2)
	assert.True(t, p.stored[1].IsBookmarked)
}
