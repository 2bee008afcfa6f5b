package storage

import "github.com/julianstephens/wellness/internal/models"

// Provider is the durable key-value storage the tracker and achievement
// evaluator read at startup and write through after each mutation. Each
// getter/setter pair covers one independent record.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habit collection
	GetHabits() ([]models.Habit, error)
	SaveHabits([]models.Habit) error

	// Achievement unlocked-id set, in unlock order
	GetUnlockedAchievements() ([]string, error)
	SaveUnlockedAchievements([]string) error

	// Mood entries
	GetMoodEntries() ([]models.MoodEntry, error)
	SaveMoodEntries([]models.MoodEntry) error

	// Theme preference
	GetTheme() (models.Theme, error)
	SaveTheme(models.Theme) error

	// Utils
	GetConfigPath() string
}
