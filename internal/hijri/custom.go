package hijri

import (
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
)

// Kind identifies an Islamic holiday by its Hijri month and day.
type Kind int

const (
	IslamicNewYear Kind = iota
	Tasua
	Ashura
	Arbaeen
	ProphetDeath
	Mawlid
	IsraMiraj
	RamadanStart
	NuzulAlQuran
	EidAlFitr
	Arafah
	EidAlAdha
	EidAlGhadir
)

var kinds = map[Kind]struct {
	name       string
	month, day int
}{
	IslamicNewYear: {"islamic_new_year", 1, 1},
	Tasua:          {"tasua", 1, 9},
	Ashura:         {"ashura", 1, 10},
	Arbaeen:        {"arbaeen", 2, 20},
	ProphetDeath:   {"prophet_death", 2, 28},
	Mawlid:         {"mawlid", 3, 12},
	IsraMiraj:      {"isra_miraj", 7, 27},
	RamadanStart:   {"ramadan_start", 9, 1},
	NuzulAlQuran:   {"nuzul_al_quran", 9, 17},
	EidAlFitr:      {"eid_al_fitr", 10, 1},
	Arafah:         {"arafah", 12, 9},
	EidAlAdha:      {"eid_al_adha", 12, 10},
	EidAlGhadir:    {"eid_al_ghadir", 12, 18},
}

func (k Kind) String() string {
	if v, ok := kinds[k]; ok {
		return v.name
	}
	return "unknown"
}

// HijriDate returns the Hijri month and day of the holiday.
func (k Kind) HijriDate() (month, day int) {
	v := kinds[k]
	return v.month, v.day
}

// Date is a Gregorian holiday date with its confidence.
type Date struct {
	Time      time.Time
	Estimated bool
}

// Source yields the dates of an Islamic holiday within a Gregorian year.
type Source interface {
	Dates(kind Kind, year int) []Date
}

// Dates returns the computed dates of kind in year, all marked estimated.
func (c *Calendar) Dates(kind Kind, year int) []Date {
	month, day := kind.HijriDate()
	var dates []Date
	for _, d := range c.DateRange(year, month, day) {
		dates = append(dates, Date{Time: d, Estimated: true})
	}
	return dates
}

// MonthDay is a Gregorian month and day within a known year.
type MonthDay struct {
	Month time.Month
	Day   int
}

// YearRange is an inclusive range of Gregorian years.
type YearRange struct {
	From, To int
}

// Contains reports whether year lies within the range.
func (r YearRange) Contains(year int) bool {
	return year >= r.From && year <= r.To
}

// Custom overrides the computed calendar with a country's published dates.
//
// Dates listed in Confirmed are returned as is. For other years the
// computed date shifted by DeltaDays is used, and it counts as confirmed
// only when the year lies in the kind's ConfirmedYears range.
type Custom struct {
	Calendar       *Calendar
	Confirmed      map[Kind]map[int][]MonthDay
	ConfirmedYears map[Kind]YearRange
	DeltaDays      int
}

// Dates returns the dates of kind in year.
func (c *Custom) Dates(kind Kind, year int) []Date {
	if days, ok := c.Confirmed[kind][year]; ok {
		dates := make([]Date, 0, len(days))
		for _, md := range days {
			dates = append(dates, Date{Time: calendar.Date(year, md.Month, md.Day)})
		}
		return dates
	}

	cal := c.Calendar
	if cal == nil {
		cal = New()
	}
	r, hasRange := c.ConfirmedYears[kind]
	estimated := !hasRange || !r.Contains(year)

	var dates []Date
	for _, d := range cal.Dates(kind, year) {
		dates = append(dates, Date{
			Time:      calendar.AddDays(d.Time, c.DeltaDays),
			Estimated: estimated,
		})
	}
	return dates
}
