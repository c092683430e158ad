package prompts

import (
	"sync"
	"time"

	"tableflip.dev/reflexa/pkg/entry"
)

// DefaultTTL is how long a filled cache stays valid without any journal
// change.
const DefaultTTL = 5 * time.Minute

// State describes how usable the cached prompt list is.
type State int

const (
	StateEmpty State = iota
	StateValid
	StateStale
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateValid:
		return "valid"
	case StateStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Cache holds generated prompts for the lifetime of the process. It is
// advisory: a redundant regeneration is harmless, so staleness checks are
// cheap and the fill path is last-writer-wins.
type Cache struct {
	mu          sync.Mutex
	prompts     []Prompt
	lastEntryID string
	entryCount  int
	filledAt    time.Time
	ttl         time.Duration
	now         func() time.Time
}

// NewCache creates an empty cache with the default TTL.
func NewCache() *Cache {
	return &Cache{ttl: DefaultTTL, now: time.Now}
}

// state must be called with the lock held.
func (c *Cache) state(entries []*entry.Entry) State {
	if c.filledAt.IsZero() {
		return StateEmpty
	}
	newestID := ""
	if len(entries) > 0 {
		newestID = entries[0].ID
	}
	switch {
	case newestID != c.lastEntryID:
		return StateStale
	case len(entries) != c.entryCount:
		return StateStale
	case c.now().Sub(c.filledAt) > c.ttl:
		return StateStale
	default:
		return StateValid
	}
}

// State reports the cache state against the current entry list.
func (c *Cache) State(entries []*entry.Entry) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state(entries)
}

// get returns the cached prompts and whether they are still valid.
func (c *Cache) get(entries []*entry.Entry) ([]Prompt, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state(entries) != StateValid {
		return nil, false
	}
	return append([]Prompt(nil), c.prompts...), true
}

// fill records a successful regeneration.
func (c *Cache) fill(prompts []Prompt, entries []*entry.Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.prompts = append([]Prompt(nil), prompts...)
	c.lastEntryID = ""
	if len(entries) > 0 {
		c.lastEntryID = entries[0].ID
	}
	c.entryCount = len(entries)
	c.filledAt = c.now()
}
