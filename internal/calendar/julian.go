package calendar

import "time"

// GregorianToJDN returns the Julian Day Number of a Gregorian date.
func GregorianToJDN(t time.Time) int {
	a := (14 - int(t.Month())) / 12
	y := t.Year() + 4800 - a
	m := int(t.Month()) + 12*a - 3
	return t.Day() + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
}

// JDNToGregorian converts a Julian Day Number to a Gregorian date using
// integer arithmetic only.
func JDNToGregorian(jdn int) time.Time {
	j := jdn - 1721119
	y, j := divmod(4*j-1, 146097)
	d := j / 4
	j, d = divmod(4*d+3, 1461)
	d = (d + 4) / 4
	m, d := divmod(5*d-3, 153)
	d = (d + 5) / 5
	y = 100*y + j
	if m < 10 {
		m += 3
	} else {
		m -= 9
		y++
	}
	return Date(y, time.Month(m), d)
}

// JulianCalendarDrift returns how many days the Julian calendar has
// drifted in the given year relative to its 1900-2099 offset of 13 days.
func JulianCalendarDrift(year int) int {
	return year/100 - year/400 - 15
}

// JulianChristmas returns Christmas Day of the Julian calendar as a
// Gregorian date in the given year (January 7 between 1901 and 2100).
func JulianChristmas(year int) time.Time {
	return AddDays(Date(year, time.January, 7), JulianCalendarDrift(year-1))
}

// IsEthiopianLeapYear reports whether the Ethiopian year ending in
// September of the given Gregorian year has six epagomenal days. In such
// years Enkutatash falls on September 12 instead of September 11.
func IsEthiopianLeapYear(year int) bool {
	return IsLeapYear(year + 1)
}

// divmod is floor division with a non-negative remainder.
func divmod(a, b int) (int, int) {
	q := a / b
	r := a % b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}
