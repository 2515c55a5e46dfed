package finance

import (
	"fmt"
	"time"
)

const monthLayout = "2006-01"

// Month identifies a calendar month (4-digit year, 1-indexed month).
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a YYYY-MM identifier.
func ParseMonth(value string) (Month, error) {
	parsed, err := time.Parse(monthLayout, value)
	if err != nil {
		return Month{}, ErrInvalidMonth
	}
	return Month{Year: parsed.Year(), Month: parsed.Month()}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

func (m Month) IsZero() bool {
	return m.Year == 0 && m.Month == 0
}

// Label returns a human-readable form such as "February 2024".
func (m Month) Label() string {
	start, _ := m.Bounds()
	return start.Format("January 2006")
}

func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Month) UnmarshalText(text []byte) error {
	parsed, err := ParseMonth(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Bounds returns the first and last calendar day of the month, both
// inclusive, at UTC midnight.
func (m Month) Bounds() (start, end time.Time) {
	start = time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// CountWorkingDays counts Monday-Friday days in the inclusive [start, end]
// range. An inverted range counts as empty. Weekends are fixed to
// Saturday/Sunday; holidays are not modeled.
func CountWorkingDays(start, end time.Time) int {
	days := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		switch day.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			days++
		}
	}
	return days
}
