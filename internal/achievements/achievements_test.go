package achievements

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/wellness/internal/models"
	"github.com/julianstephens/wellness/internal/storage"
	"github.com/julianstephens/wellness/internal/utils"
)

type stubClock struct {
	now time.Time
}

func (c *stubClock) Now() time.Time { return c.now }

var baseTime = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()

	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "wellness.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return store
}

// habitWithStreak builds a habit that has the given best streak on record
func habitWithStreak(name string, best int) models.Habit {
	return models.Habit{ID: name, Name: name, Category: models.CategoryOther, BestStreak: best}
}

func TestCatalogue_Predicates(t *testing.T) {
	today := utils.DayKey(baseTime)

	manyHabits := func(n int) []models.Habit {
		habits := make([]models.Habit, n)
		for i := range habits {
			habits[i] = habitWithStreak("h", 0)
		}
		return habits
	}

	completedToday := models.Habit{ID: "done", Category: models.CategoryExercise, CompletedDates: []string{today}}
	notToday := models.Habit{ID: "pending", Category: models.CategorySleep}

	hundredDates := make([]string, 100)
	for i := range hundredDates {
		hundredDates[i] = utils.DayKey(baseTime.AddDate(0, 0, -i))
	}

	tests := []struct {
		id     string
		habits []models.Habit
		want   bool
	}{
		{"first-habit", nil, false},
		{"first-habit", manyHabits(1), true},
		{"habit-collector", manyHabits(4), false},
		{"habit-collector", manyHabits(5), true},
		{"first-week", []models.Habit{habitWithStreak("a", 6)}, false},
		{"first-week", []models.Habit{habitWithStreak("a", 7)}, true},
		{"streak-master", []models.Habit{habitWithStreak("a", 30)}, true},
		{"perfect-day", nil, false},
		{"perfect-day", []models.Habit{completedToday}, true},
		{"perfect-day", []models.Habit{completedToday, notToday}, false},
		{"century-club", []models.Habit{{ID: "c", CompletedDates: hundredDates}}, true},
		{"century-club", []models.Habit{{ID: "c", CompletedDates: hundredDates[:99]}}, false},
		{"wellness-warrior", []models.Habit{{CurrentStreak: 1}, {CurrentStreak: 2}, {CurrentStreak: 3}}, true},
		{"wellness-warrior", []models.Habit{{CurrentStreak: 1}, {CurrentStreak: 2}, {CurrentStreak: 0}}, false},
		{"dedication", []models.Habit{habitWithStreak("a", 100)}, true},
		{"dedication", []models.Habit{habitWithStreak("a", 99)}, false},
	}

	for _, tt := range tests {
		def, ok := ByID(tt.id)
		if !ok {
			t.Fatalf("no catalogue entry %q", tt.id)
		}
		if got := def.Check(tt.habits, today); got != tt.want {
			t.Errorf("%s with %d habits = %v, want %v", tt.id, len(tt.habits), got, tt.want)
		}
	}
}

func TestEvaluate_UnlocksOnceAndPersists(t *testing.T) {
	store := newTestStore(t)
	clock := &stubClock{now: baseTime}
	e := NewEvaluator(store, clock)

	habits := []models.Habit{habitWithStreak("run", 0)}

	newly, err := e.Evaluate(habits)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if len(newly) != 1 || newly[0] != "first-habit" {
		t.Fatalf("newly = %v, want [first-habit]", newly)
	}

	// The same state must not unlock again
	newly, err = e.Evaluate(habits)
	if err != nil {
		t.Fatalf("second Evaluate failed: %v", err)
	}
	if len(newly) != 0 {
		t.Errorf("second pass newly = %v, want none", newly)
	}

	// A fresh evaluator over the same store sees the persisted record
	reloaded := NewEvaluator(store, clock)
	if got := reloaded.Unlocked(); len(got) != 1 || got[0] != "first-habit" {
		t.Errorf("reloaded Unlocked = %v, want [first-habit]", got)
	}
}

func TestEvaluate_UnlockedSetOnlyGrows(t *testing.T) {
	store := newTestStore(t)
	e := NewEvaluator(store, &stubClock{now: baseTime})

	habits := make([]models.Habit, 5)
	for i := range habits {
		habits[i] = habitWithStreak("h", 0)
	}
	if _, err := e.Evaluate(habits); err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	// Deleting every habit must not revoke anything
	if _, err := e.Evaluate(nil); err != nil {
		t.Fatalf("Evaluate on empty failed: %v", err)
	}

	unlocked := map[string]bool{}
	for _, id := range e.Unlocked() {
		unlocked[id] = true
	}
	if !unlocked["first-habit"] || !unlocked["habit-collector"] {
		t.Errorf("Unlocked after delete = %v, want first-habit and habit-collector kept", e.Unlocked())
	}
}

func TestRecentlyUnlocked_WindowExpires(t *testing.T) {
	store := newTestStore(t)
	clock := &stubClock{now: baseTime}
	e := NewEvaluator(store, clock)

	if _, err := e.Evaluate([]models.Habit{habitWithStreak("a", 0)}); err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if got := e.RecentlyUnlocked(); len(got) != 1 {
		t.Fatalf("RecentlyUnlocked just after unlock = %v, want one id", got)
	}

	clock.now = baseTime.Add(4 * time.Second)
	if got := e.RecentlyUnlocked(); len(got) != 1 {
		t.Errorf("RecentlyUnlocked at 4s = %v, want still visible", got)
	}

	clock.now = baseTime.Add(6 * time.Second)
	if got := e.RecentlyUnlocked(); got != nil {
		t.Errorf("RecentlyUnlocked at 6s = %v, want nil", got)
	}
}

func TestRecentlyUnlocked_NewWaveReplacesOld(t *testing.T) {
	store := newTestStore(t)
	clock := &stubClock{now: baseTime}
	e := NewEvaluator(store, clock)

	if _, err := e.Evaluate([]models.Habit{habitWithStreak("a", 0)}); err != nil {
		t.Fatalf("first Evaluate failed: %v", err)
	}

	clock.now = baseTime.Add(3 * time.Second)
	habits := make([]models.Habit, 5)
	for i := range habits {
		habits[i] = habitWithStreak("h", 0)
	}
	if _, err := e.Evaluate(habits); err != nil {
		t.Fatalf("second Evaluate failed: %v", err)
	}

	// The first wave's window has lapsed but the second is still fresh
	clock.now = baseTime.Add(7 * time.Second)
	got := e.RecentlyUnlocked()
	if len(got) != 1 || got[0] != "habit-collector" {
		t.Errorf("RecentlyUnlocked = %v, want [habit-collector]", got)
	}
}

func TestStatuses_ReflectsPersistedAndCurrent(t *testing.T) {
	store := newTestStore(t)
	e := NewEvaluator(store, &stubClock{now: baseTime})

	statuses := e.Statuses([]models.Habit{habitWithStreak("a", 7)})

	earned := map[string]bool{}
	for _, s := range statuses {
		earned[s.Definition.ID] = s.Earned
	}

	if !earned["first-habit"] || !earned["first-week"] {
		t.Error("expected currently-satisfied achievements to show as earned")
	}
	if earned["streak-master"] {
		t.Error("streak-master should not be earned at best streak 7")
	}
	if len(statuses) != len(Catalogue()) {
		t.Errorf("got %d statuses, want %d", len(statuses), len(Catalogue()))
	}
}
