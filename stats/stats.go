// Package stats selects, aggregates, and exports work session records.
package stats

import (
	"errors"
	"fmt"
	"time"

	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/session"
	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/timeutil"
)

var (
	// ErrInvalidDateRange is reported when the end date of a range
	// precedes its start date.
	ErrInvalidDateRange = errors.New(
		"the end date must not be earlier than the start date",
	)

	// ErrNoRecordsInRange is reported when an export selection matches
	// no records.
	ErrNoRecordsInRange = errors.New(
		"no records found in the specified date range",
	)
)

const noRecordsMsg = "No records have been saved yet"

// Totals holds the aggregate elapsed time of a selection.
type Totals struct {
	TotalSeconds float64
	TotalHours   float64
}

// SelectRange returns the records whose start date falls within the
// inclusive [start, end] calendar date range. The time of day is
// ignored for the comparison. Records whose start timestamp cannot be
// parsed are skipped so that a single malformed legacy entry does not
// abort the whole selection.
func SelectRange(
	records []session.Record,
	start, end time.Time,
) ([]session.Record, error) {
	startDate := timeutil.ToDate(start)
	endDate := timeutil.ToDate(end)

	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	selected := []session.Record{}

	for i := range records {
		startedAt, err := records[i].StartedAt()
		if err != nil {
			continue
		}

		date := timeutil.ToDate(startedAt)

		if date.Before(startDate) || date.After(endDate) {
			continue
		}

		selected = append(selected, records[i])
	}

	return selected, nil
}

// Aggregate sums the elapsed seconds of the given records.
func Aggregate(records []session.Record) Totals {
	var totalSeconds float64

	for i := range records {
		totalSeconds += records[i].Elapsed
	}

	return Totals{
		TotalSeconds: totalSeconds,
		TotalHours:   totalSeconds / 3600,
	}
}

// FormatHours renders an hours total at two-decimal precision.
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.2f", hours)
}
