package models

import "time"

// Category classifies a habit into one of the fixed wellness areas
type Category string

const (
	CategoryExercise    Category = "exercise"
	CategoryMindfulness Category = "mindfulness"
	CategoryNutrition   Category = "nutrition"
	CategorySleep       Category = "sleep"
	CategoryLearning    Category = "learning"
	CategoryOther       Category = "other"
)

// Categories returns all categories in display order
func Categories() []Category {
	return []Category{
		CategoryExercise,
		CategoryMindfulness,
		CategoryNutrition,
		CategorySleep,
		CategoryLearning,
		CategoryOther,
	}
}

// Valid reports whether c is one of the fixed categories
func (c Category) Valid() bool {
	switch c {
	case CategoryExercise, CategoryMindfulness, CategoryNutrition,
		CategorySleep, CategoryLearning, CategoryOther:
		return true
	}
	return false
}

// Habit represents a recurring practice to track
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Icon      string    `json:"icon,omitempty"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	// CompletedDates holds the day-keys (YYYY-MM-DD) the habit was marked
	// done on, kept sorted ascending with no duplicates
	CompletedDates []string `json:"completed_dates"`
	CurrentStreak  int      `json:"current_streak"`
	BestStreak     int      `json:"best_streak"`
}

// CompletedOn reports whether the habit was marked done on the given day-key
func (h Habit) CompletedOn(day string) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}
