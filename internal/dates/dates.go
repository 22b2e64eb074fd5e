// Package dates provides local-calendar-day helpers used by the analytics
// engine. Every function that depends on "today" takes an explicit reference
// time; the calendar day of that time in its own location is "today".
package dates

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the ISO calendar date format used as the daily record key.
const Layout = "2006-01-02"

// ErrInvalidDate indicates a string is not a well-formed YYYY-MM-DD date
var ErrInvalidDate = errors.New("invalid date")

var (
	shortDays  = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	letterDays = []string{"S", "M", "T", "W", "T", "F", "S"}
)

// civil anchors t's calendar day at noon so AddDate never crosses a day
// boundary because of a DST shift.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 12, 0, 0, 0, t.Location())
}

// Format returns t's calendar day as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Today returns the calendar day of ref.
func Today(ref time.Time) string {
	return Format(ref)
}

// DaysAgo returns the date n days before ref's calendar day.
func DaysAgo(ref time.Time, n int) string {
	return Format(civil(ref).AddDate(0, 0, -n))
}

// Parse parses a YYYY-MM-DD date as noon UTC.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return civil(t), nil
}

// Range returns days consecutive dates ending at and including ref's
// calendar day, oldest first. A non-positive days yields an empty slice.
func Range(days int, ref time.Time) []string {
	if days <= 0 {
		return []string{}
	}
	anchor := civil(ref)
	out := make([]string, 0, days)
	for i := days - 1; i >= 0; i-- {
		out = append(out, Format(anchor.AddDate(0, 0, -i)))
	}
	return out
}

// CustomRange returns every date from start to end inclusive, ascending.
// It returns an empty slice when end is before start or either bound is
// malformed.
func CustomRange(start, end string) []string {
	s, err := Parse(start)
	if err != nil {
		return []string{}
	}
	e, err := Parse(end)
	if err != nil {
		return []string{}
	}
	out := []string{}
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		out = append(out, Format(d))
	}
	return out
}

// DaysBetween returns the number of calendar days from start to end
// (negative when end is before start).
func DaysBetween(start, end string) (int, error) {
	s, err := Parse(start)
	if err != nil {
		return 0, err
	}
	e, err := Parse(end)
	if err != nil {
		return 0, err
	}
	return int(e.Sub(s).Round(time.Hour).Hours() / 24), nil
}

// Weekday returns the weekday of a date. Malformed dates report Sunday.
func Weekday(date string) time.Weekday {
	t, err := Parse(date)
	if err != nil {
		return time.Sunday
	}
	return t.Weekday()
}

// DayOfWeek returns the three-letter weekday name ("Mon").
func DayOfWeek(date string) string {
	return shortDays[Weekday(date)]
}

// DayAbbr returns the single-letter weekday name ("M").
func DayAbbr(date string) string {
	return letterDays[Weekday(date)]
}

// Label returns a short display label ("Jan 2"). Malformed dates are
// returned unchanged.
func Label(date string) string {
	t, err := Parse(date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}

// WeekOfYear numbers weeks so that the week containing January 1st is 1 and
// each new week starts on Sunday.
func WeekOfYear(date string) int {
	t, err := Parse(date)
	if err != nil {
		return 0
	}
	jan1 := time.Date(t.Year(), time.January, 1, 12, 0, 0, 0, time.UTC)
	dayOfYear := t.YearDay() - 1
	return (dayOfYear + int(jan1.Weekday()) + 7) / 7
}
