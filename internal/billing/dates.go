package billing

import (
	"fmt"
	"time"

	"github.com/golang-sql/civil"
)

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (civil.Date, error) {
	d, err := civil.ParseDate(s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("date %q must be in YYYY-MM-DD format: %w", s, err)
	}
	return d, nil
}

// InclusiveDays counts the calendar days from start to end, both included.
// Inverted ranges count as zero.
func InclusiveDays(start, end civil.Date) int {
	days := end.DaysSince(start) + 1
	if days < 0 {
		return 0
	}
	return days
}

func laterOf(a, b civil.Date) civil.Date {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b civil.Date) civil.Date {
	if a.Before(b) {
		return a
	}
	return b
}

// Today is the UTC calendar date of t.
func Today(t time.Time) civil.Date {
	return civil.DateOf(t.UTC())
}
