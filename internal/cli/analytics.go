package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/wellness/internal/analytics"
)

type AnalyticsCmd struct {
	Range string `short:"r" help:"Bucketing range (hourly|weekly|monthly|yearly)." default:"weekly"`
}

func (c *AnalyticsCmd) Run(ctx *Context) error {
	rng := analytics.Range(strings.ToLower(c.Range))
	if !rng.Valid() {
		return fmt.Errorf("unknown range %q (expected hourly, weekly, monthly, or yearly)", c.Range)
	}

	habits := ctx.Tracker.Habits()
	series := analytics.Series(habits, rng, ctx.Tracker.Clock())

	fmt.Printf("Completion series (%s):\n\n", rng)
	for _, b := range series {
		bar := strings.Repeat("█", b.Percentage/10)
		fmt.Printf("%-8s %2d/%-2d %3d%% %s\n", b.Label, b.Completed, b.Total, b.Percentage, bar)
	}

	breakdown := analytics.CategoryBreakdown(habits)
	if len(breakdown) > 0 {
		fmt.Println("\nCategories:")
		for _, cc := range breakdown {
			fmt.Printf("  %-12s %s\n", cc.Category, plural(cc.Count, "habit", "habits"))
		}
	}

	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	habits := ctx.Tracker.Habits()
	s := analytics.Stats(habits)
	p := analytics.TodayProgress(habits, ctx.Tracker.Clock())

	fmt.Printf("Total habits:      %d\n", s.TotalHabits)
	fmt.Printf("Total completions: %d\n", s.TotalCompletions)
	fmt.Printf("Average streak:    %s\n", plural(s.AvgCurrentStreak, "day", "days"))
	fmt.Printf("Best streak:       %s\n", plural(s.BestStreak, "day", "days"))
	fmt.Printf("Today:             %d/%d completed (%.0f%%)\n", p.CompletedToday, p.TotalHabits, p.CompletionRate)

	return nil
}
