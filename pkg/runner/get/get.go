package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/reflexa/pkg/entry"
	"tableflip.dev/reflexa/pkg/journal"
	"tableflip.dev/reflexa/pkg/printers"
	"tableflip.dev/reflexa/pkg/store"
)

// Watcher streams storage change notifications; the diskv store satisfies
// this.
type Watcher interface {
	Watch(ctx context.Context) (<-chan store.Event, error)
}

type Get struct {
	ShowID         bool
	ShowConfidence bool
	ShowPrivate    bool

	ID         string
	On         *time.Time
	Bookmarked bool

	// Watch keeps the listing alive, reprinting whenever the underlying
	// storage changes.
	Watch   bool
	Watcher Watcher

	Repo *journal.Repository
}

func (n *Get) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not get, no journal")
	}

	if err := n.print(); err != nil {
		return err
	}

	if !n.Watch || n.Watcher == nil {
		return nil
	}

	events, err := n.Watcher.Watch(ctx)
	if err != nil {
		return err
	}
	for range events {
		if err := n.Repo.Load(ctx); err != nil {
			return err
		}
		if err := n.print(); err != nil {
			return err
		}
	}
	return nil
}

func (n *Get) print() error {
	pp := printers.PrettyPrint{ShowID: n.ShowID, ShowConfidence: n.ShowConfidence}
	fmt.Println("")

	if n.ID != "" {
		e, ok := n.Repo.GetEntryByID(n.ID)
		if !ok {
			return fmt.Errorf("no entry with id %q", n.ID)
		}
		pp.Title(e.Date.Local().Format("January 2, 2006"))
		pp.Entries(e)
		return nil
	}

	if n.Bookmarked {
		all := n.filtered(n.Repo.BookmarkedEntries())
		pp.TitleWithCount("Bookmarked", len(all))
		pp.Entries(all...)
		return nil
	}

	if n.On != nil {
		all := n.filtered(n.Repo.GetEntriesByDate(*n.On))
		pp.TitleWithCount(n.On.Format("January 2, 2006"), len(all))
		pp.Entries(all...)
		return nil
	}

	all := n.filtered(n.Repo.Entries())
	pp.TitleWithCount("Journal", len(all))
	pp.Entries(all...)
	return nil
}

// filtered hides private entries unless asked for.
func (n *Get) filtered(all []*entry.Entry) []*entry.Entry {
	if n.ShowPrivate {
		return all
	}
	c := make([]*entry.Entry, 0, len(all))
	for _, a := range all {
		if !a.IsPrivate {
			c = append(c, a)
		}
	}
	return c
}
