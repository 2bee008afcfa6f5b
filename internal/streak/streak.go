package streak

import (
	"sort"
	"time"

	"github.com/julianstephens/wellness/internal/utils"
)

// Current returns the length of the run of consecutive completed days
// ending at `today`. dates is a set of day-keys (YYYY-MM-DD); order does not
// matter. Walking the keys most-recent-first, the run continues while the
// key at position i is exactly i whole days before today, so a habit not
// completed today has a current streak of zero.
func Current(dates []string, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	sorted := make([]string, len(dates))
	copy(sorted, dates)
	sort.Sort(sort.Reverse(sort.StringSlice(sorted)))

	count := 0
	for i, day := range sorted {
		d, err := utils.ParseDayKey(day, today.Location())
		if err != nil {
			break
		}
		if utils.DaysBetween(d, today) != i {
			break
		}
		count++
	}

	return count
}
