package add

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/reflexa/pkg/emotion"
	"tableflip.dev/reflexa/pkg/entry"
	"tableflip.dev/reflexa/pkg/journal"
	"tableflip.dev/reflexa/pkg/printers"
)

// Analyzer scores entry text. The gemini classifier satisfies this; tests
// substitute their own.
type Analyzer interface {
	AnalyzeEmotion(ctx context.Context, text string) emotion.Analysis
}

type Add struct {
	Content    string
	Additional string
	On         *time.Time
	Emotion    string
	Private    bool

	ShowConfidence bool

	Analyzer Analyzer
	Repo     *journal.Repository
}

func (n *Add) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not add, no journal")
	}

	var (
		e   *entry.Entry
		err error
	)
	if n.On != nil {
		e, err = entry.NewAt(n.Content, *n.On)
	} else {
		e, err = entry.New(n.Content)
	}
	if err != nil {
		return err
	}
	e.AdditionalContent = n.Additional
	e.IsPrivate = n.Private

	switch {
	case n.Emotion != "":
		label, err := emotion.Parse(n.Emotion)
		if err != nil {
			return err
		}
		e.SetAnalysis(emotion.UserSelected(label))
	case n.Analyzer != nil:
		e.SetAnalysis(n.Analyzer.AnalyzeEmotion(ctx, n.Content))
	default:
		e.SetAnalysis(emotion.KeywordAnalysis(n.Content))
	}

	if err := n.Repo.AddEntry(e); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowConfidence: n.ShowConfidence}
	pp.Title("Today")
	pp.Entries(e)
	return nil
}
