package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ktsuji/habitloop/internal/cli"
	"github.com/ktsuji/habitloop/internal/constants"
	"github.com/ktsuji/habitloop/internal/errors"
	"github.com/ktsuji/habitloop/internal/logger"
	"github.com/ktsuji/habitloop/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path. A .db or .sqlite extension selects the SQLite store; anything else uses JSON." type:"string" default:"~/.config/habitloop/habitloop.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize habitloop storage."`
	Add    cli.AddCmd    `cmd:"" help:"Add a new habit."`
	List   cli.ListCmd   `cmd:"" help:"List habits with streaks and deadlines."`
	Done   cli.DoneCmd   `cmd:"" help:"Toggle a habit's completion for a day."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show aggregate progress statistics."`
	Week   cli.WeekCmd   `cmd:"" help:"Show a weekly completion view."`
	Month  cli.MonthCmd  `cmd:"" help:"Show a monthly calendar view."`
	Edit   cli.EditCmd   `cmd:"" help:"Edit a habit's configuration."`
	Delete cli.DeleteCmd `cmd:"" help:"Delete a habit and its history."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Tui cli.TuiCmd `cmd:"" help:"Launch the interactive dashboard." default:"1"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit tracker with streaks and calendar views"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := expandHome(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		errors.Fatal(err)
	}

	var store storage.Provider
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".db", ".sqlite", ".sqlite3":
		store = storage.NewSQLiteStore(configPath)
	default:
		store = storage.NewJSONStore(configPath)
	}
	defer store.Close()

	appCtx := &cli.Context{Store: store}
	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
