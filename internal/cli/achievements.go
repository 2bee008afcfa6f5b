package cli

import (
	"fmt"
)

type AchievementsCmd struct{}

func (c *AchievementsCmd) Run(ctx *Context) error {
	statuses := ctx.Tracker.Achievements()

	earned := 0
	for _, s := range statuses {
		if s.Earned {
			earned++
		}
	}
	fmt.Printf("Achievements: %d / %d earned\n\n", earned, len(statuses))

	for _, s := range statuses {
		marker := "  "
		if s.Earned {
			marker = "✓ "
		}
		fmt.Printf("%s%-22s [%s] %s\n", marker, s.Definition.Title, s.Definition.Rarity, s.Definition.Description)
	}

	if recent := ctx.Tracker.RecentlyUnlocked(); len(recent) > 0 {
		fmt.Printf("\nNewly unlocked: %d\n", len(recent))
	}

	return nil
}
