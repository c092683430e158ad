// Package store persists the journal to disk. Each entry is a single JSON
// document keyed by its calendar day and id; derived statistics are never
// written, only the entry list survives a restart.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/reflexa/pkg/entry"
)

// Persistence is the durable-storage contract for journal entries.
type Persistence interface {
	List(ctx context.Context) []*entry.Entry
	Store(e *entry.Entry) error
	Delete(e *entry.Entry) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) read(key string) (*entry.Entry, error) {
	val, err := p.d.Read(key)
	if err != nil {
		return nil, err
	}
	e := &entry.Entry{}
	if err := json.Unmarshal(val, e); err != nil {
		return nil, err
	}
	if e.ID == "" {
		pk := keyToPathTransform(key)
		e.ID = pk.FileName
	}
	return e, nil
}

// List returns every stored entry, newest insertion first per the persisted
// sequence numbers, falling back to newest date first for documents written
// before sequence tracking. Unreadable documents are skipped with a note on
// stderr so one corrupt file cannot take the journal down.
func (p *persistence) List(ctx context.Context) []*entry.Entry {
	all := make([]*entry.Entry, 0)
	for key := range p.d.Keys(ctx.Done()) {
		e, err := p.read(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	sortEntries(all)
	return all
}

func (p *persistence) Store(e *entry.Entry) error {
	key := toKey(e)
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.d.Write(key, data)
}

func (p *persistence) Delete(e *entry.Entry) error {
	return p.d.Erase(toKey(e))
}

const layoutISO = "2006-01-02"

// sortEntries orders newest insertion first by sequence number. Documents
// without a sequence sort after the sequenced ones, newest date first, with
// ids breaking ties deterministically.
func sortEntries(entries []*entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left := entries[i]
		right := entries[j]
		if left == nil || right == nil {
			return left != nil
		}
		if left.Seq != right.Seq {
			return left.Seq > right.Seq
		}
		lt := left.Date.Time
		rt := right.Date.Time
		switch {
		case lt.IsZero() && rt.IsZero():
			return left.ID < right.ID
		case lt.IsZero():
			return false
		case rt.IsZero():
			return true
		default:
			if lt.Equal(rt) {
				return left.ID < right.ID
			}
			return lt.After(rt)
		}
	})
}

// keyToPathTransform splits `2006-01-02-<id>` so the date components become
// nested directories and the id is the file name.
func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}

// toKey makes `date-id`. The id is uuid-shaped but used opaquely; the date
// prefix keeps a day's entries in one directory.
func toKey(e *entry.Entry) string {
	return fmt.Sprintf("%s-%s", e.Date.Local().Format(layoutISO), sanitizeID(e.ID))
}

// sanitizeID strips the separator so the path transform can split keys
// unambiguously.
func sanitizeID(id string) string {
	return strings.ReplaceAll(id, "-", "")
}
