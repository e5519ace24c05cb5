package stats

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/session"
	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/timeutil"
	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/ui"
	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/store"
)

func recordRow(position int, rec *session.Record) []string {
	start := rec.StartTime
	if t, err := rec.StartedAt(); err == nil {
		start = timeutil.FormatTime(t)
	}

	end := rec.EndTime
	if t, err := rec.EndedAt(); err == nil {
		end = timeutil.FormatTime(t)
	}

	return []string{
		fmt.Sprintf("%d", position),
		start,
		end,
		timeutil.FormatClock(rec.Elapsed),
		rec.Comment,
	}
}

// PrintRecordsTable renders the given records with their positions.
func PrintRecordsTable(w io.Writer, records []session.Record) {
	data := [][]string{
		{"#", "START TIME", "END TIME", "ELAPSED", "COMMENT"},
	}

	for i := range records {
		data = append(data, recordRow(i+1, &records[i]))
	}

	ui.PrintTable(data, w)
}

// List prints a table of all stored records in their insertion order.
func List(db store.Records, w io.Writer) error {
	records, err := db.Load()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(w, pterm.Info.Sprint(noRecordsMsg))
		return nil
	}

	PrintRecordsTable(w, records)

	return nil
}
