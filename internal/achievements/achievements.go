package achievements

import (
	"time"

	"github.com/julianstephens/wellness/internal/constants"
	"github.com/julianstephens/wellness/internal/logger"
	"github.com/julianstephens/wellness/internal/models"
	"github.com/julianstephens/wellness/internal/storage"
	"github.com/julianstephens/wellness/internal/utils"
)

// Rarity grades how hard an achievement is to earn
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Definition is one entry of the fixed achievement catalogue. Check is a
// pure predicate over the habit collection; today is the current day-key.
type Definition struct {
	ID          string
	Title       string
	Description string
	Rarity      Rarity
	Check       func(habits []models.Habit, today string) bool
}

// Status pairs a definition with whether it has been earned
type Status struct {
	Definition Definition
	Earned     bool
}

// Catalogue returns the fixed, ordered achievement definitions
func Catalogue() []Definition {
	return []Definition{
		{
			ID:          "first-habit",
			Title:       "Getting Started",
			Description: "Add your first habit",
			Rarity:      RarityCommon,
			Check: func(habits []models.Habit, _ string) bool {
				return len(habits) >= 1
			},
		},
		{
			ID:          "habit-collector",
			Title:       "Habit Collector",
			Description: "Track 5 different habits",
			Rarity:      RarityRare,
			Check: func(habits []models.Habit, _ string) bool {
				return len(habits) >= 5
			},
		},
		{
			ID:          "first-week",
			Title:       "First Week Complete",
			Description: "Complete any habit for 7 days straight",
			Rarity:      RarityCommon,
			Check: func(habits []models.Habit, _ string) bool {
				return anyBestStreakAtLeast(habits, 7)
			},
		},
		{
			ID:          "streak-master",
			Title:       "Streak Master",
			Description: "Achieve a 30-day streak",
			Rarity:      RarityEpic,
			Check: func(habits []models.Habit, _ string) bool {
				return anyBestStreakAtLeast(habits, 30)
			},
		},
		{
			ID:          "perfect-day",
			Title:       "Perfect Day",
			Description: "Complete all habits in a single day",
			Rarity:      RarityRare,
			Check: func(habits []models.Habit, today string) bool {
				if len(habits) == 0 {
					return false
				}
				for _, h := range habits {
					if !h.CompletedOn(today) {
						return false
					}
				}
				return true
			},
		},
		{
			ID:          "century-club",
			Title:       "Century Club",
			Description: "Complete 100 total habit instances",
			Rarity:      RarityEpic,
			Check: func(habits []models.Habit, _ string) bool {
				total := 0
				for _, h := range habits {
					total += len(h.CompletedDates)
				}
				return total >= 100
			},
		},
		{
			ID:          "wellness-warrior",
			Title:       "Wellness Warrior",
			Description: "Maintain 3 active streaks simultaneously",
			Rarity:      RarityRare,
			Check: func(habits []models.Habit, _ string) bool {
				active := 0
				for _, h := range habits {
					if h.CurrentStreak > 0 {
						active++
					}
				}
				return active >= 3
			},
		},
		{
			ID:          "dedication",
			Title:       "True Dedication",
			Description: "Achieve a 100-day streak",
			Rarity:      RarityLegendary,
			Check: func(habits []models.Habit, _ string) bool {
				return anyBestStreakAtLeast(habits, 100)
			},
		},
	}
}

func anyBestStreakAtLeast(habits []models.Habit, n int) bool {
	for _, h := range habits {
		if h.BestStreak >= n {
			return true
		}
	}
	return false
}

// Evaluator tracks which achievements have ever been unlocked. The unlocked
// set only grows; an achievement stays earned even after the habits that
// satisfied it change or disappear.
type Evaluator struct {
	store storage.Provider
	clock utils.Clock
	defs  []Definition

	unlocked    []string
	unlockedSet map[string]bool

	recent   []string
	recentAt time.Time
}

// NewEvaluator loads the persisted unlocked set from the store. A failed
// read starts an empty record; it is never fatal.
func NewEvaluator(store storage.Provider, clock utils.Clock) *Evaluator {
	e := &Evaluator{
		store:       store,
		clock:       clock,
		defs:        Catalogue(),
		unlockedSet: make(map[string]bool),
	}

	ids, err := store.GetUnlockedAchievements()
	if err != nil {
		logger.Warn("Failed to load unlocked achievements, starting empty", "error", err)
		return e
	}
	for _, id := range ids {
		if !e.unlockedSet[id] {
			e.unlocked = append(e.unlocked, id)
			e.unlockedSet[id] = true
		}
	}

	return e
}

// Evaluate runs every predicate against the habit collection and returns the
// ids newly unlocked by this pass. New unlocks are persisted immediately and
// become the transient notification set.
func (e *Evaluator) Evaluate(habits []models.Habit) ([]string, error) {
	now := e.clock.Now()
	today := utils.DayKey(now)

	var newly []string
	for _, def := range e.defs {
		if e.unlockedSet[def.ID] {
			continue
		}
		if def.Check(habits, today) {
			newly = append(newly, def.ID)
		}
	}

	if len(newly) == 0 {
		return nil, nil
	}

	for _, id := range newly {
		e.unlocked = append(e.unlocked, id)
		e.unlockedSet[id] = true
	}

	// Each unlock wave replaces the previous notification set wholesale, so
	// an earlier wave expiring cannot clear a later one early
	e.recent = newly
	e.recentAt = now

	if err := e.store.SaveUnlockedAchievements(e.unlocked); err != nil {
		return newly, err
	}

	return newly, nil
}

// RecentlyUnlocked returns the ids unlocked within the display window
func (e *Evaluator) RecentlyUnlocked() []string {
	if len(e.recent) == 0 {
		return nil
	}
	if e.clock.Now().Sub(e.recentAt) >= constants.UnlockWindow {
		return nil
	}

	ids := make([]string, len(e.recent))
	copy(ids, e.recent)
	return ids
}

// Unlocked returns the persisted ever-unlocked ids in unlock order
func (e *Evaluator) Unlocked() []string {
	ids := make([]string, len(e.unlocked))
	copy(ids, e.unlocked)
	return ids
}

// Statuses reports every catalogue entry with its earned state for the
// given collection. Earned is the persisted record OR'd with current
// satisfaction, so a satisfied-but-not-yet-evaluated condition still shows
// as earned.
func (e *Evaluator) Statuses(habits []models.Habit) []Status {
	today := utils.DayKey(e.clock.Now())

	statuses := make([]Status, 0, len(e.defs))
	for _, def := range e.defs {
		statuses = append(statuses, Status{
			Definition: def,
			Earned:     e.unlockedSet[def.ID] || def.Check(habits, today),
		})
	}
	return statuses
}

// ByID looks up a catalogue definition
func ByID(id string) (Definition, bool) {
	for _, def := range Catalogue() {
		if def.ID == id {
			return def, true
		}
	}
	return Definition{}, false
}
