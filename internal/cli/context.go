package cli

import (
	"fmt"

	"github.com/julianstephens/wellness/internal/backup"
	"github.com/julianstephens/wellness/internal/logger"
	"github.com/julianstephens/wellness/internal/models"
	"github.com/julianstephens/wellness/internal/storage"
	"github.com/julianstephens/wellness/internal/tracker"
)

// Context carries the shared dependencies into every command
type Context struct {
	Store   storage.Provider
	Tracker *tracker.Tracker
	Debug   bool
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// findHabitByName returns the first habit whose name matches
func findHabitByName(t *tracker.Tracker, name string) (models.Habit, bool) {
	for _, h := range t.Habits() {
		if h.Name == name {
			return h, true
		}
	}
	return models.Habit{}, false
}

// checkbox renders a completion marker
func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// plural returns singular for 1, plural otherwise
func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}
