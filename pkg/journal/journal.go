// Package journal owns the authoritative entry list and the derived
// statistics that are recomputed after every mutation.
package journal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"tableflip.dev/reflexa/pkg/emotion"
	"tableflip.dev/reflexa/pkg/entry"
	"tableflip.dev/reflexa/pkg/stats"
)

var (
	// ErrDuplicateID is returned when an entry with the same id already
	// exists. Rejecting on insert keeps lookups unambiguous.
	ErrDuplicateID = errors.New("journal: entry id already exists")
)

// Persistence is the narrow durable-storage contract the repository needs.
// Only the entry list survives restarts; derived statistics are always
// recomputed and never loaded.
type Persistence interface {
	List(ctx context.Context) []*entry.Entry
	Store(e *entry.Entry) error
	Delete(e *entry.Entry) error
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock overrides the time source, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// Repository holds the in-memory entry list, newest insertion first, and a
// statistics snapshot that is always consistent with it. Construct one and
// hand it to whoever needs it; there is no package-level instance.
type Repository struct {
	mu          sync.RWMutex
	entries     []*entry.Entry
	snapshot    stats.Snapshot
	persistence Persistence
	now         func() time.Time
	seq         uint64
}

// NewRepository builds a repository over the given persistence. A nil
// persistence yields a purely in-memory journal.
func NewRepository(p Persistence, opts ...Option) *Repository {
	r := &Repository{
		persistence: p,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.snapshot = stats.Compute(nil, r.now())
	return r
}

// Load rehydrates the entry list from persistence and recomputes every
// derived statistic. Stored stats are never trusted. Insertion order is
// restored from the persisted sequence numbers; documents written before
// sequence tracking keep the order persistence handed them out in.
func (r *Repository) Load(ctx context.Context) error {
	if r.persistence == nil {
		return nil
	}
	loaded := r.persistence.List(ctx)
	sort.SliceStable(loaded, func(i, j int) bool {
		return loaded[i].Seq > loaded[j].Seq
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = loaded
	r.seq = 0
	for _, e := range loaded {
		if e.Seq > r.seq {
			r.seq = e.Seq
		}
	}
	r.recompute()
	return nil
}

// AddEntry prepends the entry and recomputes statistics. Duplicate ids are
// rejected so lookups never face ambiguity.
func (r *Repository) AddEntry(e *entry.Entry) error {
	if e == nil {
		return errors.New("journal: nil entry")
	}
	if err := e.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findLocked(e.ID) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateID, e.ID)
	}

	r.seq++
	stored := e.Clone()
	stored.Seq = r.seq
	r.entries = append([]*entry.Entry{stored}, r.entries...)
	r.recompute()
	r.persist(stored)
	return nil
}

// Update carries the fields a caller may change after creation. Nil fields
// are left untouched; the id and date of an entry can never change.
type Update struct {
	Content           *string
	AdditionalContent *string
	Image             *string
	IsBookmarked      *bool
	IsPrivate         *bool
	Analysis          *emotion.Analysis
}

// UpdateEntry merges the update into the matching entry. Unknown ids are a
// silent no-op per the repository contract.
func (r *Repository) UpdateEntry(id string, u Update) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.findLocked(id)
	if e == nil {
		return
	}
	if u.Content != nil {
		e.Content = *u.Content
	}
	if u.AdditionalContent != nil {
		e.AdditionalContent = *u.AdditionalContent
	}
	if u.Image != nil {
		e.Image = *u.Image
	}
	if u.IsBookmarked != nil {
		e.IsBookmarked = *u.IsBookmarked
	}
	if u.IsPrivate != nil {
		e.IsPrivate = *u.IsPrivate
	}
	if u.Analysis != nil {
		e.SetAnalysis(*u.Analysis)
	}
	r.recompute()
	r.persist(e)
}

// DeleteEntry removes the matching entry permanently. Unknown ids are a
// silent no-op.
func (r *Repository) DeleteEntry(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.entries {
		if e.ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			r.recompute()
			if r.persistence != nil {
				if err := r.persistence.Delete(e); err != nil {
					fmt.Fprintf(os.Stderr, "journal: delete %s: %v\n", e.ID, err)
				}
			}
			return
		}
	}
}

// CorrectEmotion records a manual override of the classified emotion and
// recomputes statistics so aggregation reflects the correction.
func (r *Repository) CorrectEmotion(id string, label emotion.Emotion) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.findLocked(id)
	if e == nil {
		return
	}
	e.UserCorrectedEmotion = label
	r.recompute()
	r.persist(e)
}

// ToggleBookmark flips the bookmark flag.
func (r *Repository) ToggleBookmark(id string) {
	r.toggle(id, func(e *entry.Entry) { e.IsBookmarked = !e.IsBookmarked })
}

// TogglePrivate flips the privacy flag.
func (r *Repository) TogglePrivate(id string) {
	r.toggle(id, func(e *entry.Entry) { e.IsPrivate = !e.IsPrivate })
}

func (r *Repository) toggle(id string, flip func(*entry.Entry)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.findLocked(id)
	if e == nil {
		return
	}
	flip(e)
	// Streaks and histograms ignore these flags, but the uniform recompute
	// keeps the snapshot correct by construction.
	r.recompute()
	r.persist(e)
}

// GetEntryByID returns a copy of the entry, or false when absent.
func (r *Repository) GetEntryByID(id string) (*entry.Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if e := r.findLocked(id); e != nil {
		return e.Clone(), true
	}
	return nil, false
}

// GetEntriesByDate returns copies of all entries on the same local calendar
// day as date.
func (r *Repository) GetEntriesByDate(date time.Time) []*entry.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*entry.Entry, 0)
	for _, e := range r.entries {
		if e.Date.SameDay(date) {
			matched = append(matched, e.Clone())
		}
	}
	return matched
}

// Entries returns a copy of the full list, newest insertion first.
func (r *Repository) Entries() []*entry.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entry.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		all = append(all, e.Clone())
	}
	return all
}

// BookmarkedEntries returns copies of the bookmarked entries.
func (r *Repository) BookmarkedEntries() []*entry.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	marked := make([]*entry.Entry, 0)
	for _, e := range r.entries {
		if e.IsBookmarked {
			marked = append(marked, e.Clone())
		}
	}
	return marked
}

// TotalEntries reports the entry count.
func (r *Repository) TotalEntries() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Snapshot returns the derived statistics consistent with the current
// entry list.
func (r *Repository) Snapshot() stats.Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

func (r *Repository) findLocked(id string) *entry.Entry {
	for _, e := range r.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// recompute must run with the write lock held after every mutation so the
// snapshot never goes stale.
func (r *Repository) recompute() {
	r.snapshot = stats.Compute(r.entries, r.now())
}

// persist writes through to durable storage. The in-memory state stays
// authoritative; a failed write is logged, not surfaced.
func (r *Repository) persist(e *entry.Entry) {
	if r.persistence == nil {
		return
	}
	if err := r.persistence.Store(e); err != nil {
		fmt.Fprintf(os.Stderr, "journal: store %s: %v\n", e.ID, err)
	}
}
