package timeutil

import (
	"testing"
	"time"
)

func TestParseTimeRoundTrip(t *testing.T) {
	input := "2025-01-05 14:30:00"

	parsed, err := ParseTime(input)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if got := FormatTime(parsed); got != input {
		t.Errorf("Expected round-trip to yield %q, but got: %q", input, got)
	}
}

func TestParseTimeRejectsOtherFormats(t *testing.T) {
	cases := []string{
		"2025-01-05",
		"05/01/2025 14:30:00",
		"2025-01-05T14:30:00",
		"yesterday",
	}

	for _, input := range cases {
		if _, err := ParseTime(input); err == nil {
			t.Errorf("Expected %q to be rejected", input)
		}
	}
}

func TestToDate(t *testing.T) {
	v := time.Date(2025, 3, 14, 15, 9, 26, 535, time.Local)

	got := ToDate(v)

	want := time.Date(2025, 3, 14, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("Expected %v, but got: %v", want, got)
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		seconds  float64
		expected string
	}{
		{0, "00:00:00"},
		{59.9, "00:00:59"},
		{60, "00:01:00"},
		{5400, "01:30:00"},
		{86399, "23:59:59"},
	}

	for _, tc := range cases {
		if got := FormatClock(tc.seconds); got != tc.expected {
			t.Errorf(
				"Expected %v seconds to format as %s, but got: %s",
				tc.seconds,
				tc.expected,
				got,
			)
		}
	}
}
