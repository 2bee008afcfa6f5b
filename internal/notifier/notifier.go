package notifier

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellness/internal/achievements"
	"github.com/julianstephens/wellness/internal/models"
)

// Sink receives celebration side effects. Calls are fire-and-forget; an
// implementation must never propagate failures back into the tracker.
type Sink interface {
	HabitCompleted(habit models.Habit, streak int)
	AchievementsUnlocked(ids []string)
}

var (
	celebrateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	unlockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	rarityStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// Console prints styled celebration toasts to a writer
type Console struct {
	out io.Writer
}

// NewConsole creates a Console sink writing to stdout
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// NewConsoleWriter creates a Console sink writing to w
func NewConsoleWriter(w io.Writer) *Console {
	return &Console{out: w}
}

func (c *Console) HabitCompleted(habit models.Habit, streak int) {
	unit := "days"
	if streak == 1 {
		unit = "day"
	}
	fmt.Fprintln(c.out, celebrateStyle.Render(
		fmt.Sprintf("✨ Great job! %s completed. Streak: %d %s", habit.Name, streak, unit)))
}

func (c *Console) AchievementsUnlocked(ids []string) {
	if len(ids) == 0 {
		return
	}

	var lines []string
	lines = append(lines, unlockStyle.Render("🎉 Achievement unlocked!"))
	for _, id := range ids {
		def, ok := achievements.ByID(id)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("   %s %s — %s",
			unlockStyle.Render(def.Title),
			rarityStyle.Render("["+string(def.Rarity)+"]"),
			def.Description))
	}
	fmt.Fprintln(c.out, strings.Join(lines, "\n"))
}

// Discard swallows every celebration. Used where no user-facing surface
// exists, e.g. in tests.
type Discard struct{}

func (Discard) HabitCompleted(models.Habit, int) {}

func (Discard) AchievementsUnlocked([]string) {}
