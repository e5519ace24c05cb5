package app

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/config"
	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/report"
	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/stats"
	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/store"
	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/timer"
)

const envNoColor = "NO_COLOR"

// initLogger routes slog output to a rotated log file so the TUI
// screen stays clean.
func initLogger() {
	w := &lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    1,
		MaxBackups: 3,
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, nil)))
}

func beforeAction(ctx *cli.Context) error {
	if _, ok := os.LookupEnv(envNoColor); ok || ctx.Bool("no-color") {
		disableStyling()
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		disableStyling()
	}

	config.InitializePaths()

	initLogger()

	return nil
}

// storeHelper loads the config and opens the record store it points
// to.
func storeHelper() (*config.Config, *store.Client, error) {
	cfg, err := config.New(
		config.WithViperConfig(config.ConfigFilePath()),
	)
	if err != nil {
		return nil, nil, err
	}

	return cfg, store.NewClient(cfg.Data.File), nil
}

// positionArg parses the 1-based record position printed by the list
// command into a 0-based index.
func positionArg(ctx *cli.Context) (int, error) {
	arg := ctx.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("a record position is required (see 'workhours list')")
	}

	pos, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid record position: %s", arg)
	}

	return pos - 1, nil
}

func startAction(ctx *cli.Context) error {
	cfg, db, err := storeHelper()
	if err != nil {
		return err
	}

	m, err := timer.NewModel(db, cfg)
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	if err := m.Err(); err != nil {
		return err
	}

	if m.Saved() {
		slog.Info("session recorded")

		report.SessionRecorded()
	}

	return nil
}

func listAction(ctx *cli.Context) error {
	_, db, err := storeHelper()
	if err != nil {
		return err
	}

	return stats.List(db, os.Stdout)
}

func editAction(ctx *cli.Context) error {
	_, db, err := storeHelper()
	if err != nil {
		return err
	}

	index, err := positionArg(ctx)
	if err != nil {
		return err
	}

	var comment *string

	if ctx.IsSet("comment") {
		c := ctx.String("comment")
		comment = &c
	}

	err = stats.Edit(
		db,
		index,
		ctx.String("start"),
		ctx.String("end"),
		comment,
		os.Stdout,
	)
	if err != nil {
		return err
	}

	report.RecordUpdated()

	return nil
}

func deleteAction(ctx *cli.Context) error {
	_, db, err := storeHelper()
	if err != nil {
		return err
	}

	index, err := positionArg(ctx)
	if err != nil {
		return err
	}

	err = stats.Delete(db, index, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	report.RecordDeleted()

	return nil
}

func exportAction(ctx *cli.Context) error {
	cfg, db, err := storeHelper()
	if err != nil {
		return err
	}

	start, err := parseDateFlag(ctx.String("start"))
	if err != nil {
		return err
	}

	end, err := parseDateFlag(ctx.String("end"))
	if err != nil {
		return err
	}

	output := ctx.String("output")

	writer := &stats.XLSXWriter{SheetName: cfg.Export.SheetName}

	err = stats.Export(db, writer, start, end, output)
	if err != nil {
		return err
	}

	report.Exported(output)

	return nil
}
