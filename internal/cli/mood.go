package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/wellness/internal/models"
)

type MoodCmd struct {
	Log  MoodLogCmd  `cmd:"" help:"Log how you feel today."`
	List MoodListCmd `cmd:"" help:"Show recent moods."`
}

type MoodLogCmd struct {
	Mood string `arg:"" help:"Mood name (amazing|great|good|okay|meh|stressed|sad)."`
}

func (c *MoodLogCmd) Run(ctx *Context) error {
	entry, err := ctx.Tracker.LogMood(strings.ToLower(c.Mood))
	if err != nil {
		return fmt.Errorf("%w (expected one of: %s)", err, moodList())
	}

	fmt.Printf("Mood logged! %s Feeling %s today.\n", entry.Emoji, entry.Mood)
	return nil
}

func moodList() string {
	var names []string
	for _, m := range models.Moods() {
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}

type MoodListCmd struct {
	Days int `help:"Number of recent entries to show." default:"7"`
}

func (c *MoodListCmd) Run(ctx *Context) error {
	moods := ctx.Tracker.Moods()
	if len(moods) == 0 {
		fmt.Println("No moods logged yet.")
		return nil
	}

	start := len(moods) - c.Days
	if start < 0 {
		start = 0
	}
	// Newest first
	for i := len(moods) - 1; i >= start; i-- {
		e := moods[i]
		fmt.Printf("%s  %s %s\n", e.Date, e.Emoji, e.Mood)
	}
	return nil
}
