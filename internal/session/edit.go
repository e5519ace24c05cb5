package session

import (
	"time"

	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/timeutil"
)

// Saver persists a full sequence of records.
type Saver interface {
	Save(records []Record) error
}

// ParseRecord validates the user-entered start time, end time, and
// comment, and builds the corresponding record. The elapsed value is
// recomputed from the entered span. It performs no I/O.
func ParseRecord(startText, endText, comment string) (Record, error) {
	start, err := timeutil.ParseTime(startText)
	if err != nil {
		return Record{}, ErrInvalidFormat
	}

	end, err := timeutil.ParseTime(endText)
	if err != nil {
		return Record{}, ErrInvalidFormat
	}

	if end.Before(start) {
		return Record{}, ErrEndBeforeStart
	}

	return Record{
		StartTime: start.Format(time.RFC3339),
		EndTime:   end.Format(time.RFC3339),
		Elapsed:   end.Sub(start).Seconds(),
		Comment:   comment,
	}, nil
}

// EditRecord replaces the record at the given position in the current
// snapshot and persists the full updated sequence.
func EditRecord(s Saver, records []Record, index int, rec Record) error {
	if index < 0 || index >= len(records) {
		return ErrIndexOutOfRange
	}

	records[index] = rec

	return s.Save(records)
}
