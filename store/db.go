package store

import "github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/session"

// Records is the record storage interface.
type Records interface {
	// Load returns all stored records in their insertion order. A
	// missing record file yields an empty list, not an error.
	Load() ([]session.Record, error)
	// Save atomically replaces the stored sequence with the given one.
	Save(records []session.Record) error
	// Append adds a record to the end of the stored sequence.
	Append(rec session.Record) error
	// DeleteAt removes the record at the given position in the stored
	// sequence.
	DeleteAt(index int) error
}
