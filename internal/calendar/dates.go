package calendar

import (
	"time"
)

// DateLayout is the ISO 8601 calendar date layout used across the API.
const DateLayout = "2006-01-02"

// Date returns midnight UTC of the given day. Every engine returns dates
// in this form so they compare equal with ==.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Truncate drops the clock and zone of t, keeping its calendar day.
func Truncate(t time.Time) time.Time {
	return Date(t.Year(), t.Month(), t.Day())
}

// AddDays returns t shifted by n days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// DaysBetween returns the number of whole days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Truncate(b).Sub(Truncate(a)).Hours() / 24)
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// NthWeekdayFrom returns the nth given weekday counted from t.
// A positive n searches forward and counts t itself when it matches;
// a negative n searches backward the same way. n must not be zero.
func NthWeekdayFrom(n int, weekday time.Weekday, t time.Time) time.Time {
	var delta int
	if n > 0 {
		delta = (n-1)*7 + mod(int(weekday)-int(t.Weekday()), 7)
	} else {
		delta = (n+1)*7 - mod(int(t.Weekday())-int(weekday), 7)
	}
	return AddDays(t, delta)
}

// NthWeekdayOfMonth returns the nth weekday of a month, e.g. the 1st Monday
// of September. A negative n counts from the end of the month, so -1 is
// the last such weekday.
func NthWeekdayOfMonth(n int, weekday time.Weekday, month time.Month, year int) time.Time {
	if n < 0 {
		lastDay := AddDays(Date(year, month, 1).AddDate(0, 1, 0), -1)
		return NthWeekdayFrom(n, weekday, lastDay)
	}
	return NthWeekdayFrom(n, weekday, Date(year, month, 1))
}

// FindWeekdayBetween returns the first given weekday in [start, end],
// or false when the range holds none.
func FindWeekdayBetween(weekday time.Weekday, start, end time.Time) (time.Time, bool) {
	for current := start; !current.After(end); current = AddDays(current, 1) {
		if current.Weekday() == weekday {
			return current, true
		}
	}
	return time.Time{}, false
}

// DayName returns the English weekday name (Sunday, Monday, etc.)
func DayName(date time.Time) string {
	return date.Weekday().String()
}

// IsWeekend reports whether t falls on one of the weekend days.
func IsWeekend(t time.Time, weekend []time.Weekday) bool {
	for _, wd := range weekend {
		if t.Weekday() == wd {
			return true
		}
	}
	return false
}

// DefaultWeekend is the Saturday/Sunday weekend.
func DefaultWeekend() []time.Weekday {
	return []time.Weekday{time.Saturday, time.Sunday}
}

// ParseDateString parses a date string in YYYY-MM-DD format.
func ParseDateString(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// FormatDate formats a date as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
