package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/reflexa/pkg/journal"
)

type Remove struct {
	ID   string
	Repo *journal.Repository
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not remove, no journal")
	}
	if n.ID == "" {
		return errors.New("an entry id is required")
	}
	if _, ok := n.Repo.GetEntryByID(n.ID); !ok {
		return fmt.Errorf("no entry with id %q", n.ID)
	}

	n.Repo.DeleteEntry(n.ID)

	f := color.New(color.Faint)
	_, _ = f.Printf("removed %s\n", n.ID)
	return nil
}
