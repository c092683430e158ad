package edit

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/reflexa/pkg/journal"
	"tableflip.dev/reflexa/pkg/printers"
)

type Edit struct {
	ID         string
	Content    *string
	Additional *string
	Image      *string

	Repo *journal.Repository
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not edit, no journal")
	}
	if n.ID == "" {
		return errors.New("an entry id is required")
	}
	if _, ok := n.Repo.GetEntryByID(n.ID); !ok {
		return fmt.Errorf("no entry with id %q", n.ID)
	}

	n.Repo.UpdateEntry(n.ID, journal.Update{
		Content:           n.Content,
		AdditionalContent: n.Additional,
		Image:             n.Image,
	})

	e, _ := n.Repo.GetEntryByID(n.ID)
	pp := printers.PrettyPrint{}
	pp.Entries(e)
	return nil
}
