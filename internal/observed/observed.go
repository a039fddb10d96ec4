// Package observed resolves the day on which a holiday is observed when it
// falls on a weekend or other non-working day.
package observed

import (
	"sort"
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
)

// Shifts of ±7 walk to the next or previous workday instead of moving a
// fixed number of days.
const (
	NextWorkday     = 7
	PreviousWorkday = -7
)

// Outcome reports what a rule did to a holiday.
type Outcome int

const (
	Unchanged Outcome = iota
	Moved
	Removed
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Removed:
		return "removed"
	default:
		return "unchanged"
	}
}

type shift struct {
	days int
	drop bool
}

// Rule maps the weekday a holiday falls on to the shift that gives its
// observed date. Weekdays without a mapping keep the holiday where it is.
// The zero Rule maps nothing.
type Rule struct {
	shifts      map[time.Weekday]shift
	nextIfTaken bool
}

// NewRule returns a rule moving holidays by the given number of days.
func NewRule(shifts map[time.Weekday]int) Rule {
	r := Rule{shifts: make(map[time.Weekday]shift, len(shifts))}
	for wd, days := range shifts {
		r.shifts[wd] = shift{days: days}
	}
	return r
}

// Drop returns a rule that removes holidays falling on any weekday.
func Drop(weekdays ...time.Weekday) Rule {
	r := Rule{shifts: make(map[time.Weekday]shift, len(weekdays))}
	for _, wd := range weekdays {
		r.shifts[wd] = shift{drop: true}
	}
	return r
}

// Plus returns the union of both rules. On overlapping weekdays o wins.
func (r Rule) Plus(o Rule) Rule {
	out := Rule{
		shifts:      make(map[time.Weekday]shift, len(r.shifts)+len(o.shifts)),
		nextIfTaken: r.nextIfTaken || o.nextIfTaken,
	}
	for wd, s := range r.shifts {
		out.shifts[wd] = s
	}
	for wd, s := range o.shifts {
		out.shifts[wd] = s
	}
	return out
}

// NextIfTaken returns a copy of r that keeps stepping forward a day while
// the shifted date is already a holiday.
func (r Rule) NextIfTaken() Rule {
	out := r.Plus(Rule{})
	out.nextIfTaken = true
	return out
}

// Shift returns the mapping for wd. ok is false when wd is unmapped.
func (r Rule) Shift(wd time.Weekday) (days int, drop, ok bool) {
	s, ok := r.shifts[wd]
	return s.days, s.drop, ok
}

// IsZero reports whether the rule maps no weekday.
func (r Rule) IsZero() bool {
	return len(r.shifts) == 0
}

// Weekdays returns the mapped weekdays in order.
func (r Rule) Weekdays() []time.Weekday {
	wds := make([]time.Weekday, 0, len(r.shifts))
	for wd := range r.shifts {
		wds = append(wds, wd)
	}
	sort.Slice(wds, func(i, j int) bool { return wds[i] < wds[j] })
	return wds
}

// Lookup answers the questions a rule asks about the surrounding days.
type Lookup interface {
	IsHoliday(t time.Time) bool
	IsWeekend(t time.Time) bool
}

// Apply returns the observed date of a holiday on dt.
//
// Workday searches stay within dt's year and report Unchanged when no
// workday is found. Fixed shifts may land on another holiday unless the
// rule steps past taken days.
func Apply(rule Rule, dt time.Time, lookup Lookup) (time.Time, Outcome) {
	s, ok := rule.shifts[dt.Weekday()]
	if !ok {
		return dt, Unchanged
	}
	if s.drop {
		return dt, Removed
	}

	switch s.days {
	case 0:
		return dt, Unchanged
	case NextWorkday, PreviousWorkday:
		step := 1
		if s.days < 0 {
			step = -1
		}
		for d := calendar.AddDays(dt, step); d.Year() == dt.Year(); d = calendar.AddDays(d, step) {
			if !lookup.IsWeekend(d) && !lookup.IsHoliday(d) {
				return d, Moved
			}
		}
		return dt, Unchanged
	}

	d := calendar.AddDays(dt, s.days)
	if rule.nextIfTaken {
		for lookup.IsHoliday(d) {
			d = calendar.AddDays(d, 1)
		}
	}
	return d, Moved
}
