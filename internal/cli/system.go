package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/wellness/internal/models"
	"github.com/julianstephens/wellness/internal/quotes"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists."`
}

func (c *InitCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()

	if c.Force {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	fmt.Printf("Initialized wellness storage at %s\n", path)
	return nil
}

type ThemeCmd struct {
	Theme string `arg:"" optional:"" help:"Theme to set (light|dark). Omit to show the current theme."`
}

func (c *ThemeCmd) Run(ctx *Context) error {
	if c.Theme == "" {
		theme, err := ctx.Store.GetTheme()
		if err != nil {
			return err
		}
		fmt.Printf("Current theme: %s\n", theme)
		return nil
	}

	theme := models.Theme(c.Theme)
	if !theme.Valid() {
		return fmt.Errorf("unknown theme %q (expected light or dark)", c.Theme)
	}

	if err := ctx.Store.SaveTheme(theme); err != nil {
		return err
	}
	fmt.Printf("Theme set to %s\n", theme)
	return nil
}

type QuoteCmd struct{}

func (c *QuoteCmd) Run(ctx *Context) error {
	q := quotes.OfTheDay(time.Now())
	fmt.Printf("%q\n    — %s\n", q.Text, q.Author)
	return nil
}

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	path := ctx.Store.GetConfigPath()
	fmt.Printf("Storage path: %s\n", path)

	info, err := os.Stat(path)
	if err != nil {
		fmt.Println("Storage file: MISSING (run 'wellness init')")
		return nil
	}
	fmt.Printf("Storage file: ok (%d bytes)\n", info.Size())

	if ctx.Tracker == nil {
		fmt.Println("Storage load:  FAILED (see logs)")
		return nil
	}

	logDir := filepath.Join(filepath.Dir(path), "logs")
	if _, err := os.Stat(logDir); err == nil {
		fmt.Printf("Log dir:      %s\n", logDir)
	} else {
		fmt.Println("Log dir:      not created yet")
	}

	habits := ctx.Tracker.Habits()
	fmt.Printf("Habits:       %d\n", len(habits))
	fmt.Printf("Moods:        %d\n", len(ctx.Tracker.Moods()))

	earned := 0
	for _, s := range ctx.Tracker.Achievements() {
		if s.Earned {
			earned++
		}
	}
	fmt.Printf("Achievements: %d earned\n", earned)

	return nil
}
