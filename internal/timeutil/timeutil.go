// Package timeutil provides utility functions for working with the
// time formats used throughout the tracker.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const (
	// LayoutTime is the canonical format for record timestamps
	// entered by the user.
	LayoutTime = "2006-01-02 15:04:05"
	// LayoutDate is the canonical format for export range dates.
	LayoutDate = "2006-01-02"
)

const (
	secondsInAnHour  = 3600
	secondsInAMinute = 60
)

// ParseTime parses a timestamp in the canonical YYYY-MM-DD HH:MM:SS
// format in the local timezone.
func ParseTime(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutTime, s, time.Local)
}

// ParseDate parses a calendar date in the canonical YYYY-MM-DD format
// in the local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(LayoutDate, s, time.Local)
}

// FormatTime renders a timestamp in the canonical YYYY-MM-DD HH:MM:SS
// format.
func FormatTime(t time.Time) string {
	return t.Format(LayoutTime)
}

// ToDate resets the given time to the start of its day so that two
// instants can be compared by calendar date alone.
func ToDate(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// Round rounds a seconds value to the nearest integer.
func Round(t float64) int {
	return int(math.Round(t))
}

// FormatClock expresses a seconds value as H:MM:SS for the live timer
// display.
func FormatClock(seconds float64) string {
	total := int(seconds)
	hrs := total / secondsInAnHour
	mins := (total % secondsInAnHour) / secondsInAMinute
	secs := total % secondsInAMinute

	return fmt.Sprintf("%02d:%02d:%02d", hrs, mins, secs)
}
