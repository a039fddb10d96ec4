// Package hijri converts Islamic (Hijri) calendar dates to Gregorian dates.
//
// Conversion follows the Umm al-Qura calendar of Saudi Arabia. Computed
// dates are estimates of the sighting-based dates announced by each
// country. Countries with published dates supply them through Custom.
package hijri

import (
	"time"

	ummalqura "github.com/hablullah/go-hijri"

	"github.com/zapponejosh/holidays-api/internal/calendar"
)

// Supported window, in Gregorian years. The Umm al-Qura tables run from
// 1 Muharram 1356 (14 March 1937) to the end of 1500 (November 2077).
const (
	StartYear = 1938
	EndYear   = 2076
)

// Hijri years covered by the Umm al-Qura tables.
const (
	firstHijriYear = 1356
	lastHijriYear  = 1500
)

// Calendar is the Umm al-Qura Hijri calendar. The zero value is ready to
// use.
type Calendar struct{}

// New returns an Umm al-Qura Hijri calendar.
func New() *Calendar {
	return &Calendar{}
}

// InRange reports whether year lies in the supported window.
func (c *Calendar) InRange(year int) bool {
	return year >= StartYear && year <= EndYear
}

// YearOf returns the Hijri year containing the given Gregorian date, or
// false when the date is outside the tables.
func (c *Calendar) YearOf(t time.Time) (int, bool) {
	ymd, ok := c.hijriDate(calendar.Truncate(t))
	return ymd[0], ok
}

// ToGregorian returns the Gregorian date of a Hijri date. Day 30 of a
// 29 day month does not exist and reports false.
func (c *Calendar) ToGregorian(year, month, day int) (time.Time, bool) {
	if year < firstHijriYear || year > lastHijriYear || month < 1 || month > 12 || day < 1 || day > 30 {
		return time.Time{}, false
	}
	h := ummalqura.UmmAlQuraDate{Year: int64(year), Month: int64(month), Day: int64(day)}
	g := h.ToGregorian()
	d := calendar.Date(g.Year(), g.Month(), g.Day())

	back, ok := c.hijriDate(d)
	if !ok || back != [3]int{year, month, day} {
		return time.Time{}, false
	}
	return d, true
}

// hijriDate converts a Gregorian date to Hijri year, month and day.
func (c *Calendar) hijriDate(t time.Time) ([3]int, bool) {
	// Noon keeps the day number clear of Julian day rounding.
	d, err := ummalqura.CreateUmmAlQuraDate(t.Add(12 * time.Hour))
	if err != nil {
		return [3]int{}, false
	}
	return [3]int{int(d.Year), int(d.Month), int(d.Day)}, true
}

// DateRange returns every Gregorian date in gy matching the Hijri month
// and day. A Gregorian year holds up to two instances of the same Hijri
// date. Out-of-window years and invalid month or day yield no dates.
func (c *Calendar) DateRange(gy, month, day int) []time.Time {
	if !c.InRange(gy) || month < 1 || month > 12 || day < 1 || day > 30 {
		return nil
	}

	first, ok := c.YearOf(calendar.Date(gy, time.January, 1))
	if !ok {
		return nil
	}
	last, ok := c.YearOf(calendar.Date(gy, time.December, 31))
	if !ok {
		return nil
	}

	var dates []time.Time
	for y := first; y <= last; y++ {
		d, ok := c.ToGregorian(y, month, day)
		if ok && d.Year() == gy {
			dates = append(dates, d)
		}
	}
	return dates
}
