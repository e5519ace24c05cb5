// Package report prints user-facing feedback.
package report

import "github.com/pterm/pterm"

func SessionRecorded() {
	pterm.Success.Println("Your work session has been saved")
}

func RecordUpdated() {
	pterm.Success.Println("Record updated")
}

func RecordDeleted() {
	pterm.Success.Println("Record deleted successfully")
}

func Exported(path string) {
	pterm.Success.Printfln("Data exported to %s", path)
}

func Error(err error) {
	pterm.Error.Println(err)
}
