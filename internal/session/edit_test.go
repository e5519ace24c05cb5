package session

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseRecord(t *testing.T) {
	cases := []struct {
		name            string
		start           string
		end             string
		comment         string
		expectedErr     error
		expectedElapsed float64
	}{
		{
			name:            "valid span",
			start:           "2025-01-01 09:00:00",
			end:             "2025-01-01 10:30:00",
			comment:         "sprint planning",
			expectedElapsed: 5400,
		},
		{
			name:            "equal start and end",
			start:           "2025-01-01 09:00:00",
			end:             "2025-01-01 09:00:00",
			expectedElapsed: 0,
		},
		{
			name:        "end before start",
			start:       "2025-01-01 10:00:00",
			end:         "2025-01-01 09:00:00",
			comment:     "x",
			expectedErr: ErrEndBeforeStart,
		},
		{
			name:        "bad start format",
			start:       "01/01/2025 09:00",
			end:         "2025-01-01 10:00:00",
			expectedErr: ErrInvalidFormat,
		},
		{
			name:        "bad end format",
			start:       "2025-01-01 09:00:00",
			end:         "tomorrow",
			expectedErr: ErrInvalidFormat,
		},
		{
			name:        "date without time",
			start:       "2025-01-01",
			end:         "2025-01-01 10:00:00",
			expectedErr: ErrInvalidFormat,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := ParseRecord(tc.start, tc.end, tc.comment)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf(
						"Expected error: %v, but got: %v",
						tc.expectedErr,
						err,
					)
				}

				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if rec.Elapsed != tc.expectedElapsed {
				t.Errorf(
					"Expected elapsed to be: %v, but got: %v",
					tc.expectedElapsed,
					rec.Elapsed,
				)
			}

			if rec.Comment != tc.comment {
				t.Errorf(
					"Expected comment to be stored verbatim, but got: %q",
					rec.Comment,
				)
			}

			start, err := rec.StartedAt()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			end, err := rec.EndedAt()
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if end.Before(start) {
				t.Error("Expected the end time to not precede the start time")
			}
		})
	}
}

type saverMock struct {
	saved  [][]Record
	failed bool
}

func (s *saverMock) Save(records []Record) error {
	if s.failed {
		return errors.New("save failed")
	}

	s.saved = append(s.saved, records)

	return nil
}

func TestEditRecord(t *testing.T) {
	records := []Record{
		{StartTime: "2025-01-01T09:00:00", EndTime: "2025-01-01T10:00:00", Elapsed: 3600},
		{StartTime: "2025-01-02T09:00:00", EndTime: "2025-01-02T09:15:00", Elapsed: 900},
	}

	replacement, err := ParseRecord(
		"2025-01-02 09:00:00",
		"2025-01-02 09:45:00",
		"extended",
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	mock := &saverMock{}

	err = EditRecord(mock, records, 1, replacement)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(mock.saved) != 1 {
		t.Fatalf("Expected one save, but got: %d", len(mock.saved))
	}

	want := []Record{records[0], replacement}

	if diff := cmp.Diff(want, mock.saved[0]); diff != "" {
		t.Errorf("Saved records mismatch (-want +got):\n%s", diff)
	}
}

func TestEditRecordOutOfRange(t *testing.T) {
	records := []Record{
		{StartTime: "2025-01-01T09:00:00", EndTime: "2025-01-01T10:00:00", Elapsed: 3600},
	}

	mock := &saverMock{}

	for _, index := range []int{-1, 1, 10} {
		err := EditRecord(mock, records, index, Record{})
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf(
				"index %d: expected error: %v, but got: %v",
				index,
				ErrIndexOutOfRange,
				err,
			)
		}
	}

	if len(mock.saved) != 0 {
		t.Error("Expected no save after failed edits")
	}
}
