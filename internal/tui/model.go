package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wellness/internal/achievements"
	"github.com/julianstephens/wellness/internal/analytics"
	"github.com/julianstephens/wellness/internal/models"
	"github.com/julianstephens/wellness/internal/tracker"
	"github.com/julianstephens/wellness/internal/utils"
)

type state int

const (
	stateList state = iota
	stateAdd
	stateConfirmDelete
)

type item struct {
	habit models.Habit
	done  bool
}

func (i item) Title() string {
	marker := "○ "
	if i.done {
		marker = "✓ "
	}
	return marker + i.habit.Name
}

func (i item) Description() string {
	status := "not completed today"
	if i.done {
		status = "completed today"
	}
	return fmt.Sprintf("%s · streak %d (best %d) · %s",
		i.habit.Category, i.habit.CurrentStreak, i.habit.BestStreak, status)
}

func (i item) FilterValue() string { return i.habit.Name }

type habitForm struct {
	Name     string
	Category string
}

// Model is the root TUI model: today's habit checklist with add and delete
type Model struct {
	tracker *tracker.Tracker

	list     list.Model
	form     *huh.Form
	formData *habitForm

	state       state
	confirmID   string
	confirmName string

	width  int
	height int
	err    error
}

func New(t *tracker.Tracker) Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Today's Habits"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	m := Model{
		tracker: t,
		list:    l,
	}
	m.refresh()
	return m
}

func (m *Model) refresh() {
	today := utils.DayKey(m.tracker.Clock().Now())

	habits := m.tracker.Habits()
	items := make([]list.Item, 0, len(habits))
	for _, h := range habits {
		items = append(items, item{habit: h, done: h.CompletedOn(today)})
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func newHabitForm(data *habitForm) *huh.Form {
	var options []huh.Option[string]
	for _, c := range models.Categories() {
		options = append(options, huh.NewOption(string(c), string(c)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&data.Name),
			huh.NewSelect[string]().
				Title("Category").
				Options(options...).
				Value(&data.Category),
		),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		frameW, frameH := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-frameW, msg.Height-frameH-4)
		return m, nil
	}

	switch m.state {
	case stateAdd:
		return m.updateAdd(msg)
	case stateConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateList(msg)
	}
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "a":
			m.formData = &habitForm{Category: string(models.CategoryOther)}
			m.form = newHabitForm(m.formData)
			m.state = stateAdd
			return m, m.form.Init()

		case "enter", " ":
			if it, ok := m.list.SelectedItem().(item); ok {
				if _, _, err := m.tracker.ToggleHabit(it.habit.ID); err != nil {
					m.err = err
				}
				m.refresh()
			}
			return m, nil

		case "d":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.confirmID = it.habit.ID
				m.confirmName = it.habit.Name
				m.state = stateConfirmDelete
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = stateList
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		if _, err := m.tracker.AddHabit(m.formData.Name, models.Category(m.formData.Category), "", ""); err != nil {
			m.err = err
		}
		m.refresh()
		m.state = stateList
	case huh.StateAborted:
		m.state = stateList
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.tracker.DeleteHabit(m.confirmID); err != nil {
				m.err = err
			}
			m.refresh()
			m.state = stateList
		case "n", "N", "esc":
			m.state = stateList
		}
	}
	return m, nil
}

func (m Model) View() string {
	switch m.state {
	case stateAdd:
		return docStyle.Render(m.form.View())
	case stateConfirmDelete:
		return docStyle.Render(
			dangerStyle.Render(fmt.Sprintf("Delete habit %q and all its history?", m.confirmName)) +
				"\n\n" + helpStyle.Render("y: delete • n: cancel"))
	}

	p := analytics.TodayProgress(m.tracker.Habits(), m.tracker.Clock())
	header := titleStyle.Render("Wellness") + "  " +
		progressStyle.Render(fmt.Sprintf("%d/%d completed today", p.CompletedToday, p.TotalHabits))

	banner := ""
	if recent := m.tracker.RecentlyUnlocked(); len(recent) > 0 {
		for _, id := range recent {
			if def, ok := achievements.ByID(id); ok {
				banner += unlockedStyle.Render("🎉 "+def.Title) + "\n"
			}
		}
	}

	errLine := ""
	if m.err != nil {
		errLine = dangerStyle.Render("Error: "+m.err.Error()) + "\n"
	}

	help := helpStyle.Render("space/enter: toggle • a: add • d: delete • q: quit")

	return docStyle.Render(header + "\n" + banner + errLine + "\n" + m.list.View() + "\n" + help)
}
