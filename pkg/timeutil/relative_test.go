package timeutil

import (
	"testing"
	"time"
)

func TestHumanize(t *testing.T) {
	now := time.Date(2026, 5, 20, 15, 0, 0, 0, time.Local)

	cases := []struct {
		when time.Time
		want string
	}{
		{now, "today"},
		{now.Add(-2 * time.Hour), "today"},
		{now.AddDate(0, 0, -1), "yesterday"},
		// Late yesterday vs early today is still one calendar day apart.
		{time.Date(2026, 5, 19, 23, 30, 0, 0, time.Local), "yesterday"},
		{now.AddDate(0, 0, -3), "3 days ago"},
		{now.AddDate(0, 0, -10), "May 10, 2026"},
	}

	for _, tc := range cases {
		if got := Humanize(tc.when, now); got != tc.want {
			t.Fatalf("Humanize(%v) = %q, want %q", tc.when, got, tc.want)
		}
	}
}
