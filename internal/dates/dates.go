// Package dates holds the calendar helpers the planner is built on: canonical
// date parsing and formatting, day-granularity comparisons, human relative
// labels, and a small natural-language date grammar for inline task phrases.
//
// Every parsing function in this package is total: invalid input yields a
// "no value" result, never a panic or an error.
package dates

import "time"

// Layout is the canonical calendar-date form used across storage and display.
const Layout = "2006-01-02"

// ParseDate parses a canonical YYYY-MM-DD string or an RFC3339 timestamp into
// a date value truncated to midnight UTC. Returns false for anything invalid.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(Layout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DayOf(t.UTC()), true
	}
	return time.Time{}, false
}

// FormatDate renders a date value in canonical YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format(Layout)
}

// DayOf truncates a time to midnight of its calendar day, preserving location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the signed calendar-day difference to minus from:
// positive when to is after from, regardless of wall-clock time or location.
// Both sides are compared by calendar fields only, so a UTC-midnight due date
// diffs cleanly against a local-zone now.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	f := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	t := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// IsToday reports whether d falls on the same calendar day as now.
func IsToday(d, now time.Time) bool {
	return SameDay(d, now)
}

// IsPastDate reports whether d falls on a calendar day strictly before now's.
func IsPastDate(d, now time.Time) bool {
	return DaysBetween(now, d) < 0
}

// IsFutureDate reports whether d falls on a calendar day strictly after now's.
func IsFutureDate(d, now time.Time) bool {
	return DaysBetween(now, d) > 0
}

// ValidCalendarDate reports whether the given month and day form a real date in
// the given year. Construction rollover (e.g. Feb 30 becoming Mar 2) is
// detected by checking the constructed day-of-month.
func ValidCalendarDate(year int, month time.Month, day int) bool {
	if day < 1 || day > 31 || month < time.January || month > time.December {
		return false
	}
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return d.Day() == day && d.Month() == month
}
