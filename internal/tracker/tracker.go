package tracker

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/wellness/internal/achievements"
	"github.com/julianstephens/wellness/internal/errors"
	"github.com/julianstephens/wellness/internal/logger"
	"github.com/julianstephens/wellness/internal/models"
	"github.com/julianstephens/wellness/internal/notifier"
	"github.com/julianstephens/wellness/internal/storage"
	"github.com/julianstephens/wellness/internal/streak"
	"github.com/julianstephens/wellness/internal/utils"
)

// Tracker owns the authoritative habit collection and the mood log. Every
// mutation recomputes the affected habit's streak, writes the collection
// through to storage, and re-evaluates achievements against the new state.
type Tracker struct {
	store     storage.Provider
	clock     utils.Clock
	celebrate notifier.Sink
	evaluator *achievements.Evaluator

	habits []models.Habit
	moods  []models.MoodEntry
}

// New builds a tracker over an already-loaded store. Unreadable habit or
// mood records fall back to an empty collection with a warning; startup
// never fails on bad data.
func New(store storage.Provider, clock utils.Clock, celebrate notifier.Sink) *Tracker {
	t := &Tracker{
		store:     store,
		clock:     clock,
		celebrate: celebrate,
		evaluator: achievements.NewEvaluator(store, clock),
	}

	habits, err := store.GetHabits()
	if err != nil {
		logger.Warn("Failed to load habits, starting with an empty collection", "error", err)
		habits = nil
	}
	t.habits = habits

	moods, err := store.GetMoodEntries()
	if err != nil {
		logger.Warn("Failed to load mood entries, starting with an empty log", "error", err)
		moods = nil
	}
	t.moods = moods

	return t
}

// Habits returns a copy of the habit collection in creation order
func (t *Tracker) Habits() []models.Habit {
	habits := make([]models.Habit, len(t.habits))
	copy(habits, t.habits)
	return habits
}

// AddHabit appends a new habit with a fresh id, no completions, and zero
// streaks. The name must be non-empty after trimming; duplicates are allowed.
func (t *Tracker) AddHabit(name string, category models.Category, icon, color string) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Habit{}, errors.NewValidation("name", "habit name must not be empty")
	}
	if !category.Valid() {
		return models.Habit{}, errors.NewValidation("category", "unknown category "+string(category))
	}

	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      name,
		Category:  category,
		Icon:      icon,
		Color:     color,
		CreatedAt: t.clock.Now(),
	}

	t.habits = append(t.habits, habit)
	return habit, t.persistHabits()
}

// ToggleHabit flips today's completion for the habit. Completing recomputes
// the streak, raises the best streak, and fires the celebration sink;
// undoing also recomputes rather than decrementing, so toggling twice
// restores the habit exactly. An unknown id is a logged no-op.
func (t *Tracker) ToggleHabit(id string) (models.Habit, bool, error) {
	idx := -1
	for i := range t.habits {
		if t.habits[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		logger.Debug("Toggle for unknown habit ignored", "id", id)
		return models.Habit{}, false, nil
	}

	now := t.clock.Now()
	today := utils.DayKey(now)
	h := &t.habits[idx]

	if h.CompletedOn(today) {
		dates := make([]string, 0, len(h.CompletedDates)-1)
		for _, d := range h.CompletedDates {
			if d != today {
				dates = append(dates, d)
			}
		}
		h.CompletedDates = dates
		h.CurrentStreak = streak.Current(h.CompletedDates, now)
	} else {
		h.CompletedDates = append(h.CompletedDates, today)
		sort.Strings(h.CompletedDates)
		h.CurrentStreak = streak.Current(h.CompletedDates, now)
		if h.CurrentStreak > h.BestStreak {
			h.BestStreak = h.CurrentStreak
		}

		t.celebrate.HabitCompleted(*h, h.CurrentStreak)
	}

	return *h, true, t.persistHabits()
}

// DeleteHabit removes the habit permanently. Completions go with it, but
// achievements it earned stay unlocked. An unknown id is a no-op.
func (t *Tracker) DeleteHabit(id string) error {
	idx := -1
	for i := range t.habits {
		if t.habits[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		logger.Debug("Delete for unknown habit ignored", "id", id)
		return nil
	}

	t.habits = append(t.habits[:idx], t.habits[idx+1:]...)
	return t.persistHabits()
}

// persistHabits writes the collection through and re-evaluates achievements
// against the fully-applied state. A failed write is surfaced to the caller
// but the in-memory mutation stands; the next successful write catches up.
func (t *Tracker) persistHabits() error {
	saveErr := t.store.SaveHabits(t.habits)
	if saveErr != nil {
		logger.Warn("Failed to persist habits", "error", saveErr)
	}

	newly, err := t.evaluator.Evaluate(t.habits)
	if err != nil {
		logger.Warn("Failed to persist unlocked achievements", "error", err)
	}
	if len(newly) > 0 {
		t.celebrate.AchievementsUnlocked(newly)
	}

	return saveErr
}

// Achievements reports every catalogue entry with its earned state
func (t *Tracker) Achievements() []achievements.Status {
	return t.evaluator.Statuses(t.habits)
}

// RecentlyUnlocked returns achievement ids unlocked within the display window
func (t *Tracker) RecentlyUnlocked() []string {
	return t.evaluator.RecentlyUnlocked()
}

// Moods returns a copy of the mood log sorted by day
func (t *Tracker) Moods() []models.MoodEntry {
	moods := make([]models.MoodEntry, len(t.moods))
	copy(moods, t.moods)
	sort.Slice(moods, func(i, j int) bool { return moods[i].Date < moods[j].Date })
	return moods
}

// LogMood records how the user feels today. A second log on the same day
// replaces the first. The mood must come from the fixed palette.
func (t *Tracker) LogMood(name string) (models.MoodEntry, error) {
	mood, ok := models.MoodByName(name)
	if !ok {
		return models.MoodEntry{}, errors.NewValidation("mood", "unknown mood "+name)
	}

	today := utils.DayKey(t.clock.Now())
	entry := models.MoodEntry{
		Date:  today,
		Mood:  mood.Name,
		Emoji: mood.Emoji,
	}

	kept := make([]models.MoodEntry, 0, len(t.moods)+1)
	for _, e := range t.moods {
		if e.Date != today {
			kept = append(kept, e)
		}
	}
	t.moods = append(kept, entry)

	if err := t.store.SaveMoodEntries(t.moods); err != nil {
		logger.Warn("Failed to persist mood entries", "error", err)
		return entry, err
	}
	return entry, nil
}

// TodayMood returns today's mood entry, if any
func (t *Tracker) TodayMood() (models.MoodEntry, bool) {
	today := utils.DayKey(t.clock.Now())
	for _, e := range t.moods {
		if e.Date == today {
			return e, true
		}
	}
	return models.MoodEntry{}, false
}

// Clock exposes the injected clock for read-only collaborators
func (t *Tracker) Clock() utils.Clock {
	return t.clock
}
