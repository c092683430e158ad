package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/reflexa/pkg/emotion"
	"tableflip.dev/reflexa/pkg/entry"
	"tableflip.dev/reflexa/pkg/journal"
)

type memoryPersistence struct {
	entries map[string]*entry.Entry
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{entries: make(map[string]*entry.Entry)}
}

func (m *memoryPersistence) List(ctx context.Context) []*entry.Entry {
	out := make([]*entry.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out
}

func (m *memoryPersistence) Store(e *entry.Entry) error {
	m.entries[e.ID] = e.Clone()
	return nil
}

func (m *memoryPersistence) Delete(e *entry.Entry) error {
	delete(m.entries, e.ID)
	return nil
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	repo := journal.NewRepository(newMemoryPersistence())
	if err := repo.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return NewService(repo)
}

func TestServiceAddEntryDetectsEmotion(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.AddEntry(ctx, AddEntryOptions{
		Content: "I am so happy about the launch",
	})
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if dto.ID == "" {
		t.Fatalf("expected generated id")
	}
	if dto.Emotion != string(emotion.Joy) {
		t.Fatalf("expected joy, got %s", dto.Emotion)
	}
	if dto.Confidence == 0 {
		t.Fatalf("expected non-zero confidence")
	}
}

func TestServiceAddEntryUserSelected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.AddEntry(ctx, AddEntryOptions{
		Content: "quiet afternoon",
		Emotion: "love",
	})
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if dto.Emotion != string(emotion.Love) {
		t.Fatalf("expected love, got %s", dto.Emotion)
	}
	if dto.Confidence != 100 {
		t.Fatalf("expected confidence 100, got %d", dto.Confidence)
	}
}

func TestServiceAddEntryRejectsEmpty(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.AddEntry(ctx, AddEntryOptions{Content: "   "}); err == nil {
		t.Fatalf("expected error for empty content")
	}
}

func TestServiceCorrectEmotion(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.AddEntry(ctx, AddEntryOptions{Content: "feeling sad today"})
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	corrected, err := svc.CorrectEmotion(ctx, dto.ID, "joy")
	if err != nil {
		t.Fatalf("CorrectEmotion failed: %v", err)
	}
	if corrected.Emotion != string(emotion.Joy) {
		t.Fatalf("expected joy, got %s", corrected.Emotion)
	}
	if !corrected.UserCorrected {
		t.Fatalf("expected correction flag set")
	}
}

func TestServiceDeleteEntry(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.AddEntry(ctx, AddEntryOptions{Content: "to be removed"})
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	if err := svc.DeleteEntry(ctx, dto.ID); err != nil {
		t.Fatalf("DeleteEntry failed: %v", err)
	}
	if _, err := svc.EntryByID(ctx, dto.ID); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestServiceToggleBookmark(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.AddEntry(ctx, AddEntryOptions{Content: "bookmark me"})
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	toggled, err := svc.ToggleBookmark(ctx, dto.ID)
	if err != nil {
		t.Fatalf("ToggleBookmark failed: %v", err)
	}
	if !toggled.IsBookmarked {
		t.Fatalf("expected bookmarked entry")
	}

	marked, err := svc.ListEntries(ctx, nil, true)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(marked) != 1 || marked[0].ID != dto.ID {
		t.Fatalf("expected one bookmarked entry, got %d", len(marked))
	}
}

func TestServiceInsights(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.AddEntry(ctx, AddEntryOptions{Content: "happy entry about joy"}); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	insights, err := svc.Insights(ctx)
	if err != nil {
		t.Fatalf("Insights failed: %v", err)
	}
	if insights.CurrentStreak != 1 {
		t.Fatalf("expected streak 1, got %d", insights.CurrentStreak)
	}
	if insights.TotalEntries != 1 {
		t.Fatalf("expected one entry, got %d", insights.TotalEntries)
	}
}

func TestServiceListEntriesByDay(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	yesterday := time.Now().AddDate(0, 0, -1)
	dto, err := svc.AddEntry(ctx, AddEntryOptions{Content: "from yesterday", On: &yesterday})
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if _, err := svc.AddEntry(ctx, AddEntryOptions{Content: "from today"}); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	results, err := svc.ListEntries(ctx, &yesterday, false)
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(results) != 1 || results[0].ID != dto.ID {
		t.Fatalf("expected only yesterday's entry, got %d", len(results))
	}
}

func TestServiceSearchEntries(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.AddEntry(ctx, AddEntryOptions{Content: "walked along the beach"}); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if _, err := svc.AddEntry(ctx, AddEntryOptions{Content: "stayed home reading"}); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	results, err := svc.SearchEntries(ctx, "BEACH", 10)
	if err != nil {
		t.Fatalf("SearchEntries failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one match, got %d", len(results))
	}
}

func TestServiceReflectionPromptsWithoutService(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	all, err := svc.ReflectionPrompts(ctx)
	if err != nil {
		t.Fatalf("ReflectionPrompts failed: %v", err)
	}
	if len(all) == 0 {
		t.Fatalf("expected at least one prompt")
	}
}
