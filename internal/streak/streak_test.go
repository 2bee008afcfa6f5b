package streak

import (
	"testing"
	"time"

	"github.com/julianstephens/wellness/internal/utils"
)

var today = time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC)

// days builds day-keys offset backwards from the pinned "today"
func days(offsets ...int) []string {
	keys := make([]string, 0, len(offsets))
	for _, off := range offsets {
		keys = append(keys, utils.DayKey(today.AddDate(0, 0, -off)))
	}
	return keys
}

func TestCurrent(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{name: "no completions", dates: nil, want: 0},
		{name: "only today", dates: days(0), want: 1},
		{name: "today and yesterday", dates: days(0, 1), want: 2},
		{name: "week ending today", dates: days(0, 1, 2, 3, 4, 5, 6), want: 7},
		{name: "streak ends at gap", dates: days(0, 1, 3, 4), want: 2},
		{name: "yesterday only still counts", dates: days(1), want: 0},
		{name: "old run does not count", dates: days(5, 6, 7), want: 0},
		{name: "duplicate day breaks the run", dates: append(days(0, 0), days(1)...), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Current(tt.dates, today); got != tt.want {
				t.Errorf("Current(%v) = %d, want %d", tt.dates, got, tt.want)
			}
		})
	}
}

func TestCurrent_InputOrderDoesNotMatter(t *testing.T) {
	sorted := days(0, 1, 2)
	shuffled := []string{sorted[1], sorted[2], sorted[0]}

	if got := Current(shuffled, today); got != 3 {
		t.Errorf("Current on shuffled input = %d, want 3", got)
	}
}

func TestCurrent_DoesNotMutateInput(t *testing.T) {
	dates := days(2, 0, 1)
	original := make([]string, len(dates))
	copy(original, dates)

	Current(dates, today)

	for i := range dates {
		if dates[i] != original[i] {
			t.Fatalf("input slice reordered at %d: %q -> %q", i, original[i], dates[i])
		}
	}
}

func TestCurrent_MalformedDateEndsTheRun(t *testing.T) {
	// the malformed key sorts before real keys, so it is reached after today's
	dates := append(days(0), "1999-xx-xx")

	if got := Current(dates, today); got != 1 {
		t.Errorf("Current with malformed tail = %d, want 1", got)
	}
}
