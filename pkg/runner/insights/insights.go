package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/reflexa/pkg/journal"
	"tableflip.dev/reflexa/pkg/printers"
	"tableflip.dev/reflexa/pkg/stats"
	"tableflip.dev/reflexa/pkg/timeutil"
)

type Insights struct {
	// Window is an ad-hoc report window like "2w" or "30d". When set, a
	// sliding count over that window is printed instead of the calendar
	// aggregates.
	Window string

	// Range selects one of the chart windows: week, month, or year.
	Range string

	Calendar bool

	Repo *journal.Repository
}

func (n *Insights) Do(ctx context.Context) error {
	if n.Repo == nil {
		return errors.New("can not report, no journal")
	}

	now := time.Now()
	entries := n.Repo.Entries()
	snap := n.Repo.Snapshot()

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Streaks(snap)

	if n.Window != "" {
		win, err := timeutil.ParseWindow(n.Window)
		if err != nil {
			return err
		}
		counts := stats.CountsBetween(entries, win.Start(now), now)
		pp.Counts("Last "+win.Label(), counts)
		return nil
	}

	if n.Range != "" {
		r := stats.Range(n.Range)
		switch r {
		case stats.RangeWeek, stats.RangeMonth, stats.RangeYear:
		default:
			return fmt.Errorf("unknown range %q (expected week, month, or year)", n.Range)
		}
		pp.Counts("This "+n.Range, stats.CountsInRange(entries, r, now))
		return nil
	}

	pp.Weekly([]stats.WeeklyEmotions{snap.Weekly})
	pp.Monthly(snap.Monthly)

	if n.Calendar {
		pp.Calendar(now, entries...)
	}
	return nil
}
