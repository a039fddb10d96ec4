// Package calendar provides Gregorian date arithmetic shared by the
// holiday engines: day offsets, nth-weekday lookups, Easter computation
// and Julian Day Number conversion.
package calendar

import (
	"fmt"
	"time"
)

// EasterMethod selects the computus used by Easter.
type EasterMethod int

const (
	// EasterWestern is the Gregorian computus used by Catholic and
	// Protestant churches.
	EasterWestern EasterMethod = iota

	// EasterOrthodox is the Julian computus, returned as a Gregorian date.
	EasterOrthodox
)

// String returns the method name.
func (m EasterMethod) String() string {
	switch m {
	case EasterWestern:
		return "western"
	case EasterOrthodox:
		return "orthodox"
	default:
		return fmt.Sprintf("EasterMethod(%d)", int(m))
	}
}

// Easter returns Easter Sunday for the given year and method.
//
// Years are not validated: a year outside the Gregorian era yields a
// valid but meaningless date.
func Easter(year int, method EasterMethod) time.Time {
	if method == EasterOrthodox {
		return orthodoxEaster(year)
	}
	return westernEaster(year)
}

// westernEaster is the anonymous Gregorian algorithm (Meeus/Jones/Butcher).
func westernEaster(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return Date(year, time.Month(month), day)
}

// orthodoxEaster computes the Julian Easter and shifts it by the
// Julian/Gregorian calendar difference.
func orthodoxEaster(year int) time.Time {
	g := year % 19
	i := (19*g + 15) % 30
	j := (year + year/4 + i) % 7

	e := 10
	if year > 1600 {
		e += year/100 - 16 - (year/100-16)/4
	}

	p := i - j + e
	day := 1 + (p+27+(p+6)/40)%31
	month := 3 + (p+26)/30

	return Date(year, time.Month(month), day)
}

// EasterOffset returns the date that lies offset days from Easter Sunday.
// Ash Wednesday is -46, Good Friday -2, Ascension +39, Pentecost +49.
func EasterOffset(year int, method EasterMethod, offset int) time.Time {
	return AddDays(Easter(year, method), offset)
}
