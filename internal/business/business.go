// Package business answers workday questions for a generated holiday set
// through a rickar/cal business calendar.
package business

import (
	"slices"
	"strings"
	"time"

	"github.com/rickar/cal/v2"

	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/holidays"
)

// Calendar is a business calendar built from a holiday set. Weekend days
// that the set marks as working days count as workdays.
type Calendar struct {
	bc  *cal.BusinessCalendar
	set *holidays.Set
}

var observance = map[holidays.Category]cal.ObservanceType{
	holidays.Public: cal.ObservancePublic,
	holidays.Bank:   cal.ObservanceBank,
}

// New adapts s. Every holiday date becomes one cal.Holiday valid only in
// its own year.
func New(s *holidays.Set) *Calendar {
	bc := cal.NewBusinessCalendar()
	weekend := s.Weekend()
	for d := time.Sunday; d <= time.Saturday; d++ {
		bc.SetWorkday(d, !slices.Contains(weekend, d))
	}

	for _, date := range s.Dates() {
		entries := s.Entries(date)
		names := make([]string, len(entries))
		for i, h := range entries {
			names[i] = h.Name
		}
		typ, ok := observance[entries[0].Category]
		if !ok {
			typ = cal.ObservanceOther
		}

		d := date
		bc.AddHoliday(&cal.Holiday{
			Name:      strings.Join(names, "; "),
			Type:      typ,
			StartYear: d.Year(),
			EndYear:   d.Year(),
			Func: func(_ *cal.Holiday, year int) time.Time {
				if year != d.Year() {
					return time.Time{}
				}
				return d
			},
		})
	}
	return &Calendar{bc: bc, set: s}
}

// IsHoliday reports whether date is a holiday and returns its name.
func (c *Calendar) IsHoliday(date time.Time) (bool, string) {
	actual, observed, h := c.bc.IsHoliday(calendar.Truncate(date))
	if !actual && !observed {
		return false, ""
	}
	return true, h.Name
}

// IsWorkday reports whether date is a working day.
func (c *Calendar) IsWorkday(date time.Time) bool {
	if c.set.IsWeekendWorkday(date) {
		return !c.set.IsHoliday(date)
	}
	return c.bc.IsWorkday(calendar.Truncate(date))
}

// AddWorkdays returns the date n workdays after date, or before it when n
// is negative.
func (c *Calendar) AddWorkdays(date time.Time, n int) time.Time {
	d := calendar.Truncate(date)
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	for n > 0 {
		d = calendar.AddDays(d, step)
		if c.IsWorkday(d) {
			n--
		}
	}
	return d
}

// WorkdaysInRange counts the workdays from start to end, both included.
func (c *Calendar) WorkdaysInRange(start, end time.Time) int {
	start, end = calendar.Truncate(start), calendar.Truncate(end)
	if end.Before(start) {
		start, end = end, start
	}
	n := c.bc.WorkdaysInRange(start, end)
	for d := start; !d.After(end); d = calendar.AddDays(d, 1) {
		if c.set.IsWeekendWorkday(d) && !c.set.IsHoliday(d) {
			n++
		}
	}
	return n
}
