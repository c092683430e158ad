package correct

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/reflexa/pkg/emotion"
	"tableflip.dev/reflexa/pkg/journal"
	"tableflip.dev/reflexa/pkg/printers"
)

type Correct struct {
	ID      string
	Emotion string

	Repo *journal.Repository
}

func (n *Correct) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not correct, no journal")
	}
	if n.ID == "" {
		return errors.New("an entry id is required")
	}

	label, err := emotion.Parse(n.Emotion)
	if err != nil {
		return err
	}
	if _, ok := n.Repo.GetEntryByID(n.ID); !ok {
		return fmt.Errorf("no entry with id %q", n.ID)
	}

	n.Repo.CorrectEmotion(n.ID, label)

	e, _ := n.Repo.GetEntryByID(n.ID)
	pp := printers.PrettyPrint{ShowConfidence: true}
	pp.Entries(e)
	return nil
}
