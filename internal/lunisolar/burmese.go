// Package lunisolar implements the lunisolar calendars behind several
// national holiday sets: Burmese (Myanmar), Chinese and Mongolian.
//
// Every engine covers a fixed window of Gregorian years. Queries outside
// the window report absence through a false second return value instead
// of failing, so country modules can skip them without special casing.
package lunisolar

import (
	"math"
	"sync"
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
)

// Burmese era constants for the Thingyan solar-year approximation.
const (
	burmeseEraStart = 1954168.050623            // beginning of 0 ME
	solarYear       = 1577917828.0 / 4320000.0 // 365.2587565 days
)

// Burmese calendar window, in Gregorian years.
const (
	BurmeseStartYear = 1939 // 1301 ME
	BurmeseEndYear   = 2100 // 1463 ME
)

// BurmeseEpoch is 1 Late Tagu 1301 ME.
var BurmeseEpoch = calendar.Date(1939, time.March, 20)

// Gregorian years whose Burmese year has an intercalary month.
// A little watat year adds 30 days, a big watat year 31.
var (
	littleWatatYears = map[int]bool{
		1939: true, 1948: true, 1955: true, 1958: true, 1966: true, 1972: true,
		1974: true, 1982: true, 1988: true, 1993: true, 1999: true, 2004: true,
		2012: true, 2018: true, 2020: true, 2029: true, 2034: true, 2039: true,
		2045: true, 2050: true, 2056: true, 2061: true, 2069: true, 2075: true,
		2077: true, 2086: true, 2091: true, 2096: true,
	}
	bigWatatYears = map[int]bool{
		1942: true, 1945: true, 1950: true, 1953: true, 1961: true, 1964: true,
		1969: true, 1977: true, 1980: true, 1985: true, 1991: true, 1996: true,
		2001: true, 2007: true, 2010: true, 2015: true, 2023: true, 2026: true,
		2031: true, 2037: true, 2042: true, 2048: true, 2053: true, 2058: true,
		2064: true, 2067: true, 2072: true, 2080: true, 2083: true, 2088: true,
		2094: true, 2099: true,
	}
)

// Burmese computes anchor dates of the Burmese lunisolar calendar using
// the watat (intercalary year) tables.
//
// Offsets for month anchors are counted from the start of the Burmese year
// that begins in the given Gregorian year, or from the start of the next
// one for festivals late in the Gregorian year.
type Burmese struct {
	once   sync.Once
	starts []time.Time
}

// NewBurmese returns a Burmese calendar engine.
func NewBurmese() *Burmese {
	return &Burmese{}
}

// InRange reports whether year lies in the supported window.
func (b *Burmese) InRange(year int) bool {
	return year >= BurmeseStartYear && year <= BurmeseEndYear
}

// IsLittleWatat reports whether the Burmese year beginning in year has a
// 30 day intercalary month.
func (b *Burmese) IsLittleWatat(year int) bool {
	return littleWatatYears[year]
}

// IsBigWatat reports whether the Burmese year beginning in year has a
// 30 day intercalary month and an extra day.
func (b *Burmese) IsBigWatat(year int) bool {
	return bigWatatYears[year]
}

// yearStart returns the Gregorian date of 1 Late Tagu of the Burmese year
// beginning in the given Gregorian year.
func (b *Burmese) yearStart(year int) (time.Time, bool) {
	if !b.InRange(year) {
		return time.Time{}, false
	}
	b.once.Do(b.buildStarts)
	return b.starts[year-BurmeseStartYear], true
}

func (b *Burmese) buildStarts() {
	b.starts = make([]time.Time, BurmeseEndYear-BurmeseStartYear+1)
	delta := 0
	for year := BurmeseStartYear; year <= BurmeseEndYear; year++ {
		b.starts[year-BurmeseStartYear] = calendar.AddDays(BurmeseEpoch, delta)
		delta += 354
		switch {
		case littleWatatYears[year]:
			delta += 30
		case bigWatatYears[year]:
			delta += 31
		}
	}
}

// Thingyan returns the Akya and Atat days of the Thingyan (Myanmar New Year)
// festival held in the given year.
//
// Thingyan closes the previous Burmese year, so the first year of the
// window, whose predecessor is not tabulated, reports absence.
func (b *Burmese) Thingyan(year int) (akya, atat time.Time, ok bool) {
	if !b.InRange(year) || !b.InRange(year-1) {
		return time.Time{}, time.Time{}, false
	}

	ja := solarYear*float64(year-638) + burmeseEraStart
	jk := ja - 2.1675
	if year >= 1950 {
		jk = ja - 2.169918982
	}

	akya = calendar.JDNToGregorian(int(math.Round(jk)))
	atat = calendar.JDNToGregorian(int(math.Round(ja)))
	return akya, atat, true
}

// KasonFullMoon returns the 15th day of Kason, the 2nd month.
func (b *Burmese) KasonFullMoon(year int) (time.Time, bool) {
	return b.fromStart(year, 43)
}

// WasoFullMoon returns the 15th day of Waso, the 4th month.
func (b *Burmese) WasoFullMoon(year int) (time.Time, bool) {
	return b.fromNextStart(year, -252)
}

// ThadingyutFullMoon returns the 15th day of Thadingyut, the 7th month.
func (b *Burmese) ThadingyutFullMoon(year int) (time.Time, bool) {
	return b.fromNextStart(year, -163)
}

// TazaungmonWaxingMoon returns the 1st day of Tazaungmon, the 8th month.
func (b *Burmese) TazaungmonWaxingMoon(year int) (time.Time, bool) {
	return b.fromNextStart(year, -148)
}

// TazaungmonFullMoon returns the 15th day of Tazaungmon, the 8th month.
func (b *Burmese) TazaungmonFullMoon(year int) (time.Time, bool) {
	return b.fromNextStart(year, -134)
}

// PyathoWaxingMoon returns the 1st day of Pyatho, the 10th month.
func (b *Burmese) PyathoWaxingMoon(year int) (time.Time, bool) {
	return b.fromNextStart(year, -89)
}

// TabaungFullMoon returns the 15th day of Tabaung, the 12th month.
func (b *Burmese) TabaungFullMoon(year int) (time.Time, bool) {
	return b.fromNextStart(year, -16)
}

func (b *Burmese) fromStart(year, days int) (time.Time, bool) {
	start, ok := b.yearStart(year)
	if !ok {
		return time.Time{}, false
	}
	return calendar.AddDays(start, days), true
}

func (b *Burmese) fromNextStart(year, days int) (time.Time, bool) {
	if !b.InRange(year) {
		return time.Time{}, false
	}
	next, ok := b.yearStart(year + 1)
	if !ok {
		return time.Time{}, false
	}
	return calendar.AddDays(next, days), true
}
