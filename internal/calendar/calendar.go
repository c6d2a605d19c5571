// Package calendar holds the calendar-day helpers shared by the streak and
// activity code. Dates are normalised to midnight UTC so that arithmetic on
// them never crosses a DST boundary.
package calendar

import (
	"fmt"
	"time"
)

const isoLayout = "2006-01-02"

type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: want YYYY-MM-DD", e.Value)
}

// Clock supplies the reference date. Nothing in the core reads the wall clock
// directly.
type Clock interface {
	Today() time.Time
}

type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Today() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return Day(time.Now().In(loc))
}

type FixedClock time.Time

func (c FixedClock) Today() time.Time {
	return Day(time.Time(c))
}

// Day truncates t to its calendar day, keeping the wall-clock date of t's own
// location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatISO(t time.Time) string {
	return t.Format(isoLayout)
}

func ParseISO(s string) (time.Time, error) {
	// time.Parse accepts single-digit fields for some layouts; insist on the
	// exact width so set members compare as strings.
	if len(s) != len(isoLayout) {
		return time.Time{}, &InvalidDateError{Value: s}
	}
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: s}
	}
	return t, nil
}

func MustParseISO(s string) time.Time {
	t, err := ParseISO(s)
	if err != nil {
		panic(err)
	}
	return t
}

func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

func IsBefore(a, b time.Time) bool {
	return Day(a).Before(Day(b))
}

func IsSameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// DaysBetween is the signed number of calendar days from start to end. It
// counts via Unix seconds, so it does not saturate the way Duration does for
// spans over 292 years.
func DaysBetween(start, end time.Time) int {
	return int((Day(end).Unix() - Day(start).Unix()) / 86400)
}

// Days enumerates every calendar day in [start, end]. It returns nil when end
// is before start.
func Days(start, end time.Time) []time.Time {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return nil
	}
	out := make([]time.Time, 0, DaysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}
