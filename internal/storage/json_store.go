package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/wellness/internal/logger"
	"github.com/julianstephens/wellness/internal/models"
)

type Store struct {
	Version      int                `json:"version"`
	Habits       []models.Habit     `json:"habits"`
	Achievements []string           `json:"achievements"`
	Moods        []models.MoodEntry `json:"moods"`
	Theme        models.Theme       `json:"theme"`
}

type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = defaultStore()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'wellness init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// A corrupt file must not take the whole tool down with it. Start
		// from an empty collection and let the next save overwrite it.
		logger.Warn("Stored data is malformed, starting with an empty collection", "path", s.path, "error", err)
		s.store = defaultStore()
		return nil
	}

	if s.store.Theme == "" {
		s.store.Theme = models.ThemeLight
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func defaultStore() *Store {
	return &Store{
		Version: 1,
		Theme:   models.ThemeLight,
	}
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetHabits() ([]models.Habit, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habits := make([]models.Habit, len(s.store.Habits))
	copy(habits, s.store.Habits)
	return habits, nil
}

func (s *JSONStore) SaveHabits(habits []models.Habit) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Habits = make([]models.Habit, len(habits))
	copy(s.store.Habits, habits)
	return s.save()
}

func (s *JSONStore) GetUnlockedAchievements() ([]string, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	ids := make([]string, len(s.store.Achievements))
	copy(ids, s.store.Achievements)
	return ids, nil
}

func (s *JSONStore) SaveUnlockedAchievements(ids []string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Achievements = make([]string, len(ids))
	copy(s.store.Achievements, ids)
	return s.save()
}

func (s *JSONStore) GetMoodEntries() ([]models.MoodEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	moods := make([]models.MoodEntry, len(s.store.Moods))
	copy(moods, s.store.Moods)
	return moods, nil
}

func (s *JSONStore) SaveMoodEntries(moods []models.MoodEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Moods = make([]models.MoodEntry, len(moods))
	copy(s.store.Moods, moods)
	return s.save()
}

func (s *JSONStore) GetTheme() (models.Theme, error) {
	if s.store == nil {
		return "", fmt.Errorf("storage not loaded")
	}
	return s.store.Theme, nil
}

func (s *JSONStore) SaveTheme(theme models.Theme) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Theme = theme
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
