package lunisolar

import (
	"sync"
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
)

// Chinese calendar window, in lunar years (which begin in the same
// Gregorian year).
const (
	ChineseStartYear = 1901
	ChineseEndYear   = 2099
)

// noLeapMonth marks a year without a leap month in chineseMonthDays.
const noLeapMonth = 0xF

// chineseEpoch is the 1st day of the 1st month of lunar year 1901.
var chineseEpoch = calendar.Date(1901, time.February, 19)

// Chinese converts Chinese lunisolar dates to Gregorian dates from a
// tabulated month-length encoding.
type Chinese struct {
	once sync.Once
	span []int // days from chineseEpoch to each lunar new year
}

// NewChinese returns a Chinese calendar engine.
func NewChinese() *Chinese {
	return &Chinese{}
}

// InRange reports whether year lies in the supported window.
func (c *Chinese) InRange(year int) bool {
	return year >= ChineseStartYear && year <= ChineseEndYear
}

// LeapMonth returns the month doubled in the given lunar year, if any.
func (c *Chinese) LeapMonth(year int) (int, bool) {
	if !c.InRange(year) {
		return 0, false
	}
	leap := c.leapMonth(year)
	return leap, leap != noLeapMonth
}

func (c *Chinese) leapMonth(year int) int {
	return int(chineseMonthDays[year-ChineseStartYear]>>16) & 0x0F
}

// monthDays returns the length of the nth month of the year counting a
// leap month in sequence, so n ranges over 1-13 in leap years.
func (c *Chinese) monthDays(year, n int) int {
	return 29 + int(chineseMonthDays[year-ChineseStartYear]>>uint(n))&0x01
}

func (c *Chinese) yearDays(year int) int {
	months := 12
	if c.leapMonth(year) != noLeapMonth {
		months = 13
	}
	days := 0
	for n := 1; n <= months; n++ {
		days += c.monthDays(year, n)
	}
	return days
}

func (c *Chinese) buildSpans() {
	c.span = make([]int, ChineseEndYear-ChineseStartYear+1)
	days := 0
	for year := ChineseStartYear; year <= ChineseEndYear; year++ {
		c.span[year-ChineseStartYear] = days
		days += c.yearDays(year)
	}
}

// NewYear returns the Gregorian date of the lunar new year.
func (c *Chinese) NewYear(year int) (time.Time, bool) {
	return c.ToGregorian(year, 1, 1)
}

// ToGregorian returns the Gregorian date of a lunar day in the regular
// (non-leap) instance of the given month.
func (c *Chinese) ToGregorian(year, month, day int) (time.Time, bool) {
	if !c.InRange(year) || month < 1 || month > 12 || day < 1 || day > 30 {
		return time.Time{}, false
	}
	c.once.Do(c.buildSpans)

	days := c.span[year-ChineseStartYear]
	n := month
	if month > c.leapMonth(year) {
		n++
	}
	for m := 1; m < n; m++ {
		days += c.monthDays(year, m)
	}
	if day > c.monthDays(year, n) {
		return time.Time{}, false
	}
	return calendar.AddDays(chineseEpoch, days+day-1), true
}

// BuddhaBirthday returns the 8th day of the 4th month.
func (c *Chinese) BuddhaBirthday(year int) (time.Time, bool) {
	return c.ToGregorian(year, 4, 8)
}

// Vesak returns the 15th day of the 4th month, observed as Vesak in
// several South-East Asian countries.
func (c *Chinese) Vesak(year int) (time.Time, bool) {
	return c.ToGregorian(year, 4, 15)
}

// DragonBoat returns the 5th day of the 5th month.
func (c *Chinese) DragonBoat(year int) (time.Time, bool) {
	return c.ToGregorian(year, 5, 5)
}

// MidAutumn returns the 15th day of the 8th month.
func (c *Chinese) MidAutumn(year int) (time.Time, bool) {
	return c.ToGregorian(year, 8, 15)
}

// DoubleNinth returns the 9th day of the 9th month.
func (c *Chinese) DoubleNinth(year int) (time.Time, bool) {
	return c.ToGregorian(year, 9, 9)
}
