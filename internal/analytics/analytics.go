package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/wellness/internal/models"
	"github.com/julianstephens/wellness/internal/utils"
)

// Range selects the bucketing mode for a completion series
type Range string

const (
	RangeHourly  Range = "hourly"  // last 24 hours, one bucket per hour
	RangeWeekly  Range = "weekly"  // last 7 days
	RangeMonthly Range = "monthly" // last 30 days
	RangeYearly  Range = "yearly"  // last 12 months
)

// Ranges returns the supported ranges in display order
func Ranges() []Range {
	return []Range{RangeHourly, RangeWeekly, RangeMonthly, RangeYearly}
}

// Valid reports whether r is a supported range
func (r Range) Valid() bool {
	switch r {
	case RangeHourly, RangeWeekly, RangeMonthly, RangeYearly:
		return true
	}
	return false
}

// Bucket is one unit of a time-partitioned completion series
type Bucket struct {
	Label      string
	Completed  int
	Total      int
	Percentage int
}

// CategoryCount is one slice of the category distribution
type CategoryCount struct {
	Category models.Category
	Count    int
}

// Summary holds the headline stats for the whole collection
type Summary struct {
	TotalHabits      int
	TotalCompletions int
	AvgCurrentStreak int
	BestStreak       int
}

// Progress describes today's completion state
type Progress struct {
	CompletedToday int
	TotalHabits    int
	CompletionRate float64
}

// Series produces the ordered completion series for the given range, oldest
// bucket first. Each bucket counts the habits completed on its
// representative day-key; the percentage is 0 when there are no habits.
func Series(habits []models.Habit, rng Range, clock utils.Clock) []Bucket {
	now := clock.Now()

	steps := 7
	switch rng {
	case RangeHourly:
		steps = 24
	case RangeWeekly:
		steps = 7
	case RangeMonthly:
		steps = 30
	case RangeYearly:
		steps = 12
	}

	buckets := make([]Bucket, 0, steps)
	for i := steps - 1; i >= 0; i-- {
		t := now
		switch rng {
		case RangeHourly:
			t = now.Add(-time.Duration(i) * time.Hour)
		case RangeYearly:
			t = now.AddDate(0, -i, 0)
		default:
			t = now.AddDate(0, 0, -i)
		}

		day := utils.DayKey(t)
		completed := 0
		for _, h := range habits {
			if h.CompletedOn(day) {
				completed++
			}
		}

		var label string
		switch rng {
		case RangeHourly:
			label = fmt.Sprintf("%d:00", t.Hour())
		case RangeYearly:
			label = t.Format("Jan")
		default:
			label = t.Format("Jan 2")
		}

		percentage := 0
		if len(habits) > 0 {
			percentage = int(math.Round(float64(completed) / float64(len(habits)) * 100))
		}

		buckets = append(buckets, Bucket{
			Label:      label,
			Completed:  completed,
			Total:      len(habits),
			Percentage: percentage,
		})
	}

	return buckets
}

// CategoryBreakdown counts habits per category. Categories with no habits
// are omitted; present ones appear in fixed category order.
func CategoryBreakdown(habits []models.Habit) []CategoryCount {
	counts := make(map[models.Category]int)
	for _, h := range habits {
		counts[h.Category]++
	}

	var breakdown []CategoryCount
	for _, c := range models.Categories() {
		if counts[c] > 0 {
			breakdown = append(breakdown, CategoryCount{Category: c, Count: counts[c]})
		}
	}
	return breakdown
}

// Stats computes the headline summary for the collection
func Stats(habits []models.Habit) Summary {
	s := Summary{TotalHabits: len(habits)}

	streakSum := 0
	for _, h := range habits {
		s.TotalCompletions += len(h.CompletedDates)
		streakSum += h.CurrentStreak
		if h.BestStreak > s.BestStreak {
			s.BestStreak = h.BestStreak
		}
	}
	if len(habits) > 0 {
		s.AvgCurrentStreak = int(math.Round(float64(streakSum) / float64(len(habits))))
	}

	return s
}

// TodayProgress reports how much of today's checklist is done. The rate is
// 0 for an empty collection.
func TodayProgress(habits []models.Habit, clock utils.Clock) Progress {
	today := utils.DayKey(clock.Now())

	p := Progress{TotalHabits: len(habits)}
	for _, h := range habits {
		if h.CompletedOn(today) {
			p.CompletedToday++
		}
	}
	if p.TotalHabits > 0 {
		p.CompletionRate = float64(p.CompletedToday) / float64(p.TotalHabits) * 100
	}

	return p
}
