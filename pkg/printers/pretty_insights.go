package printers

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/reflexa/pkg/entry"
	"tableflip.dev/reflexa/pkg/glyph"
	"tableflip.dev/reflexa/pkg/stats"
)

// Streaks renders the streak card.
func (pp *PrettyPrint) Streaks(snap stats.Snapshot) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	_, _ = b.Printf("🔥 %d", snap.CurrentStreak)
	switch snap.CurrentStreak {
	case 1:
		_, _ = f.Print(" day streak")
	default:
		_, _ = f.Print(" days streak")
	}
	_, _ = f.Printf("  (longest %d)\n\n", snap.LongestStreak)
}

// Counts renders an emotion histogram as a table, most frequent first.
func (pp *PrettyPrint) Counts(title string, counts []stats.Count) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(title), bold.Sprint("Count"))

	sorted := append([]stats.Count(nil), counts...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Count > sorted[j].Count })

	for _, c := range sorted {
		g := glyph.ForEmotion(c.Emotion)
		tbl.AddRow(g.Color().Sprintf("%s %s", g.Symbol, string(c.Emotion)), c.Count)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}

// Weekly renders the calendar-week histogram, most recent week first.
func (pp *PrettyPrint) Weekly(weeks []stats.WeeklyEmotions) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Week of"), bold.Sprint("Emotions"))

	for i := len(weeks) - 1; i >= 0; i-- {
		w := weeks[i]
		tbl.AddRow(w.StartDate.Format("Jan 02"), summarize(w.Counts))
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}

// Monthly renders the per-month histogram, most recent month first.
func (pp *PrettyPrint) Monthly(months []stats.MonthlyEmotions) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Month"), bold.Sprint("Emotions"))

	for i := len(months) - 1; i >= 0; i-- {
		m := months[i]
		tbl.AddRow(m.Month, summarize(m.Counts))
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	_, _ = fmt.Fprintln(color.Output, "")
}

func summarize(counts []stats.Count) string {
	sorted := append([]stats.Count(nil), counts...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Count != sorted[j].Count {
			return sorted[i].Count > sorted[j].Count
		}
		return sorted[i].Emotion < sorted[j].Emotion
	})

	parts := make([]string, 0, len(sorted))
	for _, c := range sorted {
		g := glyph.ForEmotion(c.Emotion)
		parts = append(parts, g.Color().Sprintf("%s %d", g.Symbol, c.Count))
	}
	return strings.Join(parts, "  ")
}

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar renders a month of journaling activity, days with entries bold.
func (pp *PrettyPrint) Calendar(then time.Time, entries ...*entry.Entry) {
	days := daysIn(then)

	count := make([]int, days)
	for _, e := range entries {
		if e.Date.SameMonth(then) {
			count[e.Date.Local().Day()-1]++
		}
	}

	pp.printMonthCount(then, count)
}

func (pp *PrettyPrint) printMonthCount(then time.Time, count []int) {
	d := startDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := daysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			l2.Printf("%2d ", i+1)
		} else {
			l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func daysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func startDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
