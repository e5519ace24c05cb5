package main

import (
	"os"

	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/app"
	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Error(err)
		os.Exit(1)
	}
}
