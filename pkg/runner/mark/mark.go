// Package mark toggles the bookmark and privacy flags on an entry.
package mark

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/reflexa/pkg/journal"
	"tableflip.dev/reflexa/pkg/printers"
)

type Mark struct {
	ID       string
	Bookmark bool
	Private  bool

	Repo *journal.Repository
}

func (n *Mark) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not mark, no journal")
	}
	if n.ID == "" {
		return errors.New("an entry id is required")
	}
	if !n.Bookmark && !n.Private {
		return errors.New("nothing to toggle")
	}
	if _, ok := n.Repo.GetEntryByID(n.ID); !ok {
		return fmt.Errorf("no entry with id %q", n.ID)
	}

	if n.Bookmark {
		n.Repo.ToggleBookmark(n.ID)
	}
	if n.Private {
		n.Repo.TogglePrivate(n.ID)
	}

	e, _ := n.Repo.GetEntryByID(n.ID)
	pp := printers.PrettyPrint{ShowID: true}
	pp.Entries(e)
	return nil
}
