package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/wellness/internal/cli"
	"github.com/julianstephens/wellness/internal/constants"
	"github.com/julianstephens/wellness/internal/errors"
	"github.com/julianstephens/wellness/internal/logger"
	"github.com/julianstephens/wellness/internal/notifier"
	"github.com/julianstephens/wellness/internal/storage"
	"github.com/julianstephens/wellness/internal/tracker"
	"github.com/julianstephens/wellness/internal/utils"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/wellness/wellness.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init         cli.InitCmd         `cmd:"" help:"Initialize wellness storage."`
	Tui          cli.TuiCmd          `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit        cli.HabitCmd        `cmd:"" help:"Manage habits."`
	Mood         cli.MoodCmd         `cmd:"" help:"Track your mood."`
	Achievements cli.AchievementsCmd `cmd:"" help:"Show achievements."`
	Analytics    cli.AnalyticsCmd    `cmd:"" help:"Show completion analytics."`
	Stats        cli.StatsCmd        `cmd:"" help:"Show summary statistics."`
	Quote        cli.QuoteCmd        `cmd:"" help:"Show today's quote."`
	Theme        cli.ThemeCmd        `cmd:"" help:"Show or set the color theme."`
	Backup       struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup now."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Check the health of the installation."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit and wellness tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	// Every command except init and restore needs loaded storage; doctor
	// degrades gracefully when the load fails.
	cmd := ctx.Command()
	switch {
	case cmd == "init", strings.HasPrefix(cmd, "backup restore"):
	case cmd == "doctor":
		if err := store.Load(); err == nil {
			appCtx.Tracker = tracker.New(store, utils.SystemClock{}, notifier.NewConsole())
		}
	default:
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
		appCtx.Tracker = tracker.New(store, utils.SystemClock{}, notifier.NewConsole())
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
