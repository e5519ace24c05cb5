package stats

import (
	"io"

	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/session"
	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/timeutil"
	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/store"
)

// Edit rewrites the record at the given position. An empty start or
// end keeps the existing timestamp, and a nil comment keeps the
// existing comment, so a single field can be changed without retyping
// the others. The elapsed value is recomputed from the resulting span.
func Edit(
	db store.Records,
	index int,
	startText, endText string,
	comment *string,
	stdout io.Writer,
) error {
	records, err := db.Load()
	if err != nil {
		return err
	}

	if index < 0 || index >= len(records) {
		return session.ErrIndexOutOfRange
	}

	current := records[index]

	if startText == "" {
		if t, perr := current.StartedAt(); perr == nil {
			startText = timeutil.FormatTime(t)
		} else {
			startText = current.StartTime
		}
	}

	if endText == "" {
		if t, perr := current.EndedAt(); perr == nil {
			endText = timeutil.FormatTime(t)
		} else {
			endText = current.EndTime
		}
	}

	newComment := current.Comment
	if comment != nil {
		newComment = *comment
	}

	rec, err := session.ParseRecord(startText, endText, newComment)
	if err != nil {
		return err
	}

	err = session.EditRecord(db, records, index, rec)
	if err != nil {
		return err
	}

	PrintRecordsTable(stdout, []session.Record{rec})

	return nil
}
