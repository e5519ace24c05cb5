package session

import "errors"

var (
	// ErrInvalidFormat is reported when an entered timestamp does not
	// match the YYYY-MM-DD HH:MM:SS format.
	ErrInvalidFormat = errors.New(
		"invalid date/time: use the YYYY-MM-DD HH:MM:SS format",
	)

	// ErrEndBeforeStart is reported when an edited record ends before
	// it starts.
	ErrEndBeforeStart = errors.New(
		"the end time cannot be earlier than the start time",
	)

	// ErrIndexOutOfRange is reported when a record position does not
	// exist in the current snapshot. The caller must reload the
	// records and retry.
	ErrIndexOutOfRange = errors.New(
		"no record exists at the specified position",
	)
)
