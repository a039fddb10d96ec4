// Package mandaean converts dates of the Mandaean solar calendar to the
// Gregorian calendar.
//
// The Mandaean year has twelve 30 day months and five intercalary
// Parwanaya days inserted after the eighth month. Years are always 365
// days long, so the calendar drifts a quarter day per year against the
// Gregorian one.
package mandaean

import (
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
)

// Supported window, in Gregorian years.
const (
	StartYear = 1901
	EndYear   = 2100
)

// Parwanaya is the pseudo month number of the five intercalary days.
const Parwanaya = 13

const (
	yearDays       = 365
	monthDays      = 30
	parwanayaDays  = 5
	parwanayaAfter = 8
)

// Epoch is the Mandaean New Year (1 Daula) falling in 1901.
var Epoch = calendar.Date(1901, time.August, 16)

// Calendar is the Mandaean calendar engine. The zero value is ready to use.
type Calendar struct{}

// New returns a Mandaean calendar engine.
func New() *Calendar {
	return &Calendar{}
}

// InRange reports whether year lies in the supported window.
func (c *Calendar) InRange(year int) bool {
	return year >= StartYear && year <= EndYear
}

// NewYear (Dehwa Rabba) returns the first day of the Mandaean year that
// begins in the given Gregorian year.
func (c *Calendar) NewYear(year int) (time.Time, bool) {
	if !c.InRange(year) {
		return time.Time{}, false
	}
	return calendar.AddDays(Epoch, yearDays*(year-StartYear)), true
}

// ToGregorian returns the Gregorian date of day of month in the Mandaean
// year beginning in the given Gregorian year. Month 13 addresses the
// Parwanaya days and accepts days 1-5 only.
func (c *Calendar) ToGregorian(year, month, day int) (time.Time, bool) {
	start, ok := c.NewYear(year)
	if !ok || day < 1 {
		return time.Time{}, false
	}

	var offset int
	switch {
	case month >= 1 && month <= parwanayaAfter && day <= monthDays:
		offset = monthDays*(month-1) + day - 1
	case month > parwanayaAfter && month <= 12 && day <= monthDays:
		offset = monthDays*(month-1) + day - 1 + parwanayaDays
	case month == Parwanaya && day <= parwanayaDays:
		offset = monthDays*parwanayaAfter + day - 1
	default:
		return time.Time{}, false
	}
	return calendar.AddDays(start, offset), true
}

// ParwanayaStart returns the first of the five Parwanaya days.
func (c *Calendar) ParwanayaStart(year int) (time.Time, bool) {
	return c.ToGregorian(year, Parwanaya, 1)
}

// DehwaHanina returns the Little Feast, 18 Taura.
func (c *Calendar) DehwaHanina(year int) (time.Time, bool) {
	return c.ToGregorian(year, 4, 18)
}

// DehwaDaimana returns the feast of 1 Hitia.
func (c *Calendar) DehwaDaimana(year int) (time.Time, bool) {
	return c.ToGregorian(year, 11, 1)
}
