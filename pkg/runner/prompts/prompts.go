package prompts

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/reflexa/pkg/journal"
	"tableflip.dev/reflexa/pkg/prompts"
)

type Prompts struct {
	Service *prompts.Service
	Repo    *journal.Repository
}

func (n *Prompts) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not prompt, no journal")
	}
	if n.Service == nil {
		return errors.New("can not prompt, no prompt service")
	}

	all := n.Service.Prompts(ctx, n.Repo.Entries())

	b := color.New(color.Bold)
	f := color.New(color.Faint, color.Italic)

	fmt.Println("")
	for _, p := range all {
		_, _ = b.Printf("  %s\n", p.Question)
		if p.Context != "" {
			_, _ = f.Printf("  %s\n", p.Context)
		}
		fmt.Println("")
	}
	return nil
}
