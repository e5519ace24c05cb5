package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	startTimeFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "New start time (YYYY-MM-DD HH:MM:SS). Keeps the current value when omitted",
	}

	endTimeFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "New end time (YYYY-MM-DD HH:MM:SS). Keeps the current value when omitted",
	}

	commentFlag = &cli.StringFlag{
		Name:    "comment",
		Aliases: []string{"c"},
		Usage:   "New comment. Keeps the current value when omitted; pass an empty string to clear it",
	}

	startDateFlag = &cli.StringFlag{
		Name:     "start",
		Aliases:  []string{"s"},
		Usage:    "Start date of the export range (YYYY-MM-DD, inclusive)",
		Required: true,
	}

	endDateFlag = &cli.StringFlag{
		Name:     "end",
		Aliases:  []string{"e"},
		Usage:    "End date of the export range (YYYY-MM-DD, inclusive)",
		Required: true,
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Destination file for the exported spreadsheet",
		Value:   "workhours.xlsx",
	}
)
