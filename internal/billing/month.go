package billing

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-sql/civil"
)

// ErrInvalidMonth is returned when a month token cannot be read as YYYY-MM.
var ErrInvalidMonth = errors.New("invalid month")

const monthLayout = "2006-01"

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "YYYY-MM" token such as "2022-04".
func ParseMonth(s string) (Month, error) {
	if strings.TrimSpace(s) == "" {
		return Month{}, fmt.Errorf("%w: month is required", ErrInvalidMonth)
	}
	t, err := time.Parse(monthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q must be in YYYY-MM format", ErrInvalidMonth, s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month containing d.
func MonthOf(d civil.Date) Month {
	return Month{Year: d.Year, Month: d.Month}
}

// Start is the first day of the month.
func (m Month) Start() civil.Date {
	return civil.Date{Year: m.Year, Month: m.Month, Day: 1}
}

// End is the last calendar day of the month.
func (m Month) End() civil.Date {
	// day 0 of the next month normalizes to the last day of this one
	return civil.DateOf(time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC))
}

// Days returns the number of days in the month (28-31).
func (m Month) Days() int {
	return m.End().Day
}

// Previous returns the month before m.
func (m Month) Previous() Month {
	return MonthOf(civil.DateOf(time.Date(m.Year, m.Month-1, 1, 0, 0, 0, 0, time.UTC)))
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// MarshalText implements encoding.TextMarshaler.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Month) UnmarshalText(data []byte) error {
	parsed, err := ParseMonth(string(data))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
