package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/reflexa/pkg/emotion"
	"tableflip.dev/reflexa/pkg/entry"
	"tableflip.dev/reflexa/pkg/journal"
	"tableflip.dev/reflexa/pkg/stats"
)

func tempPersistence(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(StaticConfig{Path: t.TempDir()})
	require.NoError(t, err)
	return p
}

func storedEntry(t *testing.T, content string, at time.Time) *entry.Entry {
	t.Helper()
	e, err := entry.NewAt(content, at)
	require.NoError(t, err)
	e.SetAnalysis(emotion.Normalize([]emotion.RawScore{{Emotion: "joy", Confidence: 100}}))
	return e
}

func TestRoundTrip(t *testing.T) {
	p := tempPersistence(t)
	now := time.Date(2026, time.August, 3, 21, 15, 0, 0, time.Local)

	first := storedEntry(t, "walked along the river", now)
	first.IsBookmarked = true
	second := storedEntry(t, "quiet morning", now.AddDate(0, 0, -1))
	second.UserCorrectedEmotion = emotion.Love

	require.NoError(t, p.Store(first))
	require.NoError(t, p.Store(second))

	loaded := p.List(context.Background())
	require.Len(t, loaded, 2)

	// Newest date first, entry for entry identical.
	assert.Equal(t, first.ID, loaded[0].ID)
	assert.Equal(t, first.Content, loaded[0].Content)
	assert.True(t, loaded[0].IsBookmarked)
	assert.Equal(t, first.Emotions, loaded[0].Emotions)
	assert.True(t, loaded[0].Date.Equal(first.Date.Time))

	assert.Equal(t, second.ID, loaded[1].ID)
	assert.Equal(t, emotion.Love, loaded[1].UserCorrectedEmotion)
}

func TestRoundTripPreservesInsertionOrder(t *testing.T) {
	p := tempPersistence(t)
	now := time.Date(2026, time.August, 3, 21, 15, 0, 0, time.Local)

	repo := journal.NewRepository(p)
	today := storedEntry(t, "dated today, written first", now)
	backdated := storedEntry(t, "backdated, written second", now.AddDate(0, 0, -3))
	require.NoError(t, repo.AddEntry(today))
	require.NoError(t, repo.AddEntry(backdated))
	before := repo.Entries()

	reloaded := journal.NewRepository(p)
	require.NoError(t, reloaded.Load(context.Background()))
	after := reloaded.Entries()

	// The backdated entry was written last, so it stays in front even
	// though its date sorts it behind the first one.
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, before[i].ID, after[i].ID)
	}
	assert.Equal(t, backdated.ID, after[0].ID)
}

func TestListOrdersBySequence(t *testing.T) {
	p := tempPersistence(t)
	now := time.Date(2026, time.August, 3, 21, 15, 0, 0, time.Local)

	first := storedEntry(t, "dated today", now)
	first.Seq = 1
	second := storedEntry(t, "backdated", now.AddDate(0, 0, -3))
	second.Seq = 2

	require.NoError(t, p.Store(first))
	require.NoError(t, p.Store(second))

	loaded := p.List(context.Background())
	require.Len(t, loaded, 2)
	assert.Equal(t, second.ID, loaded[0].ID)
	assert.Equal(t, first.ID, loaded[1].ID)
}

func TestRoundTripStatsMatch(t *testing.T) {
	p := tempPersistence(t)
	now := time.Date(2026, time.August, 3, 21, 15, 0, 0, time.Local)

	entries := []*entry.Entry{
		storedEntry(t, "today", now.Add(-time.Hour)),
		storedEntry(t, "yesterday", now.AddDate(0, 0, -1)),
		storedEntry(t, "two days back", now.AddDate(0, 0, -2)),
	}
	for _, e := range entries {
		require.NoError(t, p.Store(e))
	}

	loaded := p.List(context.Background())
	assert.Equal(t, stats.Compute(entries, now), stats.Compute(loaded, now))
}

func TestDelete(t *testing.T) {
	p := tempPersistence(t)
	e := storedEntry(t, "gone soon", time.Now())

	require.NoError(t, p.Store(e))
	require.NoError(t, p.Delete(e))

	assert.Empty(t, p.List(context.Background()))
}

func TestStoreOverwritesSameID(t *testing.T) {
	p := tempPersistence(t)
	e := storedEntry(t, "before", time.Now())

	require.NoError(t, p.Store(e))
	e.Content = "after"
	require.NoError(t, p.Store(e))

	loaded := p.List(context.Background())
	require.Len(t, loaded, 1)
	assert.Equal(t, "after", loaded[0].Content)
}

func TestKeyTransformRoundTrip(t *testing.T) {
	e := storedEntry(t, "key check", time.Date(2026, time.August, 3, 8, 0, 0, 0, time.Local))
	key := toKey(e)

	pk := keyToPathTransform(key)
	assert.Equal(t, []string{"2026", "08", "03"}, pk.Path)
	assert.Equal(t, key, pathToKeyTransform(pk))
}

func TestWatchSeesWrites(t *testing.T) {
	p := tempPersistence(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := p.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, p.Store(storedEntry(t, "watched", time.Now())))

	select {
	case _, ok := <-events:
		assert.True(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("no watch event observed")
	}
}
