package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/reflexa/pkg/entry"
	"tableflip.dev/reflexa/pkg/glyph"
)

type PrettyPrint struct {
	ShowID         bool
	ShowConfidence bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entries renders a list of journal entries, one line each.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	b := color.New(color.FgHiYellow)
	f := color.New(color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			short := shortID(e.ID)
			_, _ = y.Print(short)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(short)))
		}

		g := glyph.ForEmotion(e.EffectiveEmotion())
		_, _ = g.Color().Printf("%s %-8s ", g.Symbol, string(e.EffectiveEmotion()))
		_, _ = t.Print(e.Content)
		if e.IsBookmarked {
			_, _ = b.Print(" ✷")
		}
		if e.IsPrivate {
			_, _ = f.Print(" (private)")
		}
		if pp.ShowConfidence {
			_, _ = f.Printf("  %d%%", e.Confidence())
		}
		_, _ = t.Println("")

		if e.AdditionalContent != "" {
			if pp.ShowID {
				_, _ = t.Print(spacing)
			}
			_, _ = f.Printf("           %s\n", e.AdditionalContent)
		}
	}
	_, _ = t.Println("")
}

func shortID(id string) string {
	if len(id) > 18 {
		return id[:18]
	}
	return id
}
