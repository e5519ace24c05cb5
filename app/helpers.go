package app

import (
	"fmt"
	"time"

	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/timeutil"
)

func parseDateFlag(s string) (time.Time, error) {
	t, err := timeutil.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf(
			"invalid date %q: use the YYYY-MM-DD format", s,
		)
	}

	return t, nil
}
