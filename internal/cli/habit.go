package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/wellness/internal/analytics"
	"github.com/julianstephens/wellness/internal/models"
	"github.com/julianstephens/wellness/internal/utils"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with streaks."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle today's completion for a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit permanently."`
}

type HabitAddCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Category string `short:"c" help:"Category (exercise|mindfulness|nutrition|sleep|learning|other)." default:"other"`
	Icon     string `help:"Optional icon hint." default:""`
	Color    string `help:"Optional color hint." default:""`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	category := models.Category(strings.ToLower(c.Category))
	if !category.Valid() {
		return fmt.Errorf("unknown category %q (expected one of: %s)", c.Category, categoryList())
	}

	habit, err := ctx.Tracker.AddHabit(c.Name, category, c.Icon, c.Color)
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s (%s)\n", habit.Name, habit.Category)
	return nil
}

func categoryList() string {
	var names []string
	for _, c := range models.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits := ctx.Tracker.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'wellness habit add'.")
		return nil
	}

	today := utils.DayKey(ctx.Tracker.Clock().Now())
	for _, h := range habits {
		fmt.Printf("%s %-24s %-12s streak %d (best %d)\n",
			checkbox(h.CompletedOn(today)), h.Name, h.Category, h.CurrentStreak, h.BestStreak)
	}

	p := analytics.TodayProgress(habits, ctx.Tracker.Clock())
	fmt.Printf("\nToday: %d/%d completed (%.0f%%)\n", p.CompletedToday, p.TotalHabits, p.CompletionRate)
	return nil
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	habit, ok := findHabitByName(ctx.Tracker, c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	updated, _, err := ctx.Tracker.ToggleHabit(habit.ID)
	if err != nil {
		return err
	}

	today := utils.DayKey(ctx.Tracker.Clock().Now())
	if updated.CompletedOn(today) {
		fmt.Printf("Marked %q done for %s\n", updated.Name, today)
	} else {
		fmt.Printf("Unmarked %q for %s\n", updated.Name, today)
	}
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, ok := findHabitByName(ctx.Tracker, c.Name)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Tracker.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	fmt.Println("(This removes its history permanently. Earned achievements are kept.)")
	return nil
}
