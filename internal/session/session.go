// Package session defines completed work session records and the
// operations that rewrite them.
package session

import (
	"time"

	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/timeutil"
)

// Record is a single completed work session as persisted on disk.
// Timestamps are stored as ISO 8601 strings so that files written by
// older versions of the tracker keep loading unchanged.
type Record struct {
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Elapsed   float64 `json:"elapsed"`
	Comment   string  `json:"comment"`
}

// isoLayouts are the accepted on-disk timestamp encodings. Files
// written by the previous version of this tool used a bare ISO format
// without a zone offset.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	timeutil.LayoutTime,
}

// ParseTimestamp parses an on-disk record timestamp.
func ParseTimestamp(s string) (time.Time, error) {
	var firstErr error

	for _, layout := range isoLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	return time.Time{}, firstErr
}

// StartedAt returns the parsed start timestamp of the record.
func (r *Record) StartedAt() (time.Time, error) {
	return ParseTimestamp(r.StartTime)
}

// EndedAt returns the parsed end timestamp of the record.
func (r *Record) EndedAt() (time.Time, error) {
	return ParseTimestamp(r.EndTime)
}

// New creates a record from a finalized session. The elapsed value is
// the accumulated running time which may be less than the span between
// the start and end timestamps when the session was paused.
func New(start, end time.Time, elapsed float64, comment string) Record {
	return Record{
		StartTime: start.Format(time.RFC3339),
		EndTime:   end.Format(time.RFC3339),
		Elapsed:   elapsed,
		Comment:   comment,
	}
}
