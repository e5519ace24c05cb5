// Package app defines the command-line interface for the tracker.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the workhours app instance.
func Get() *cli.App {
	cli.AppHelpTemplate = helpText()

	workhoursApp := &cli.App{
		Name: "workhours",
		Usage: `
		Workhours tracks your work sessions from the command-line. Run it
		without arguments to start a timer with pause and resume, then list,
		edit, delete, or export the recorded sessions.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "Start timing a new work session",
				Action: startAction,
			},
			{
				Name:   "list",
				Usage:  "Print a table of all recorded sessions",
				Action: listAction,
			},
			{
				Name:      "edit",
				Usage:     "Edit the record at the given position",
				ArgsUsage: "<position>",
				Flags: []cli.Flag{
					startTimeFlag,
					endTimeFlag,
					commentFlag,
				},
				Action: editAction,
			},
			{
				Name:      "delete",
				Usage:     "Delete the record at the given position",
				ArgsUsage: "<position>",
				Action:    deleteAction,
			},
			{
				Name:  "export",
				Usage: "Export date-filtered records and totals to a spreadsheet",
				Flags: []cli.Flag{
					startDateFlag,
					endDateFlag,
					outputFlag,
				},
				Action: exportAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
		},
		Action: startAction,
		Before: beforeAction,
	}

	return workhoursApp
}
