package schedule

import (
	"fmt"
	"time"
)

// DayKeyLayout is the canonical wire form of a calendar date.
const DayKeyLayout = "2006-01-02"

// Day is a single calendar date with no time-of-day component. The zero value
// is not meaningful; construct through Today, ParseDay or NewDay.
type Day struct {
	t time.Time
}

// NewDay builds a Day from calendar fields.
func NewDay(year int, month time.Month, day int) Day {
	return Day{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Day {
	now := time.Now()
	return NewDay(now.Year(), now.Month(), now.Day())
}

// ParseDay parses a "YYYY-MM-DD" key.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayKeyLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return NewDay(t.Year(), t.Month(), t.Day()), nil
}

// Next returns the following calendar day, rolling over month and year
// boundaries and leap days.
func (d Day) Next() Day {
	return Day{t: d.t.AddDate(0, 0, 1)}
}

// Prev returns the preceding calendar day.
func (d Day) Prev() Day {
	return Day{t: d.t.AddDate(0, 0, -1)}
}

// Key returns the canonical "YYYY-MM-DD" form, computed from calendar fields
// and independent of locale or timezone settings.
func (d Day) Key() string {
	return d.t.Format(DayKeyLayout)
}
