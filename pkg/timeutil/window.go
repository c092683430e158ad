package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is the report window used when none is given.
const DefaultWindow = "1w"

// Window is a report span expressed in calendar units. Months and years
// shift by calendar arithmetic rather than a fixed hour count, so "1mo"
// lands on the same day of the previous month.
type Window struct {
	Days   int
	Weeks  int
	Months int
	Years  int
}

var (
	segmentPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)

	// Journal reports span whole days at minimum; hours and smaller units
	// are not accepted.
	windowUnits = map[string]string{
		"d": "d", "day": "d", "days": "d",
		"w": "w", "wk": "w", "wks": "w", "week": "w", "weeks": "w",
		"m": "mo", "mo": "mo", "mos": "mo", "month": "mo", "months": "mo",
		"y": "y", "yr": "y", "yrs": "y", "year": "y", "years": "y",
	}
)

// ParseWindow parses spans like "2w", "30d", "6mo", "1y", or composites
// like "1y6mo". The empty string means the default window of one week.
func ParseWindow(input string) (Window, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))
	if trimmed == "" {
		trimmed = DefaultWindow
	}

	var w Window
	remaining := trimmed
	for len(remaining) > 0 {
		matches := segmentPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Window{}, fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return Window{}, fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		switch windowUnits[matches[2]] {
		case "d":
			w.Days += value
		case "w":
			w.Weeks += value
		case "mo":
			w.Months += value
		case "y":
			w.Years += value
		default:
			return Window{}, fmt.Errorf("unsupported window unit %q (use d, w, mo, or y)", matches[2])
		}
		remaining = remaining[len(matches[0]):]
	}

	if w.IsZero() {
		return Window{}, fmt.Errorf("window must cover at least one day")
	}
	return w, nil
}

// IsZero reports whether the window covers no time at all.
func (w Window) IsZero() bool {
	return w.Days == 0 && w.Weeks == 0 && w.Months == 0 && w.Years == 0
}

// Start returns the beginning of the window that ends at now.
func (w Window) Start(now time.Time) time.Time {
	return now.AddDate(-w.Years, -w.Months, -(w.Weeks*7 + w.Days))
}

// Label renders the window for report titles: "week", "30 days",
// "1 year 6 months". The count is dropped only when a single unit covers
// the whole window exactly once.
func (w Window) Label() string {
	type part struct {
		count int
		unit  string
	}
	all := []part{
		{w.Years, "year"},
		{w.Months, "month"},
		{w.Weeks, "week"},
		{w.Days, "day"},
	}

	parts := make([]string, 0, len(all))
	var only part
	for _, p := range all {
		if p.count == 0 {
			continue
		}
		only = p
		unit := p.unit
		if p.count != 1 {
			unit += "s"
		}
		parts = append(parts, fmt.Sprintf("%d %s", p.count, unit))
	}
	if len(parts) == 1 && only.count == 1 {
		return only.unit
	}
	return strings.Join(parts, " ")
}
