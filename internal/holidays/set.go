// Package holidays holds generated holidays and the entity builder that
// country modules use to populate them.
package holidays

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
)

// Category groups holidays by who observes them.
type Category string

const (
	Public     Category = "public"
	Bank       Category = "bank"
	Government Category = "government"
	HalfDay    Category = "half_day"
	Optional   Category = "optional"
	School     Category = "school"
	Workday    Category = "workday"
)

// Categories lists every known category.
var Categories = []Category{Public, Bank, Government, HalfDay, Optional, School, Workday}

var (
	// ErrUnknownCategory is returned for a category name that is not defined.
	ErrUnknownCategory = errors.New("unknown holiday category")
	// ErrNotFound is returned when no holiday matches a name.
	ErrNotFound = errors.New("holiday not found")
)

// ParseCategory converts a category name to a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Holiday is one named holiday on one date.
type Holiday struct {
	Date      time.Time
	Name      string
	Category  Category
	Observed  bool
	Estimated bool
}

// Set maps dates to the holidays falling on them.
//
// A Set is filled by a single goroutine and is safe for concurrent reads
// afterwards.
type Set struct {
	entries         map[time.Time][]Holiday
	weekend         []time.Weekday
	weekendWorkdays map[time.Time]bool
}

// NewSet returns an empty set. Without weekend days Saturday and Sunday
// are used.
func NewSet(weekend ...time.Weekday) *Set {
	if len(weekend) == 0 {
		weekend = calendar.DefaultWeekend()
	}
	return &Set{
		entries:         make(map[time.Time][]Holiday),
		weekend:         weekend,
		weekendWorkdays: make(map[time.Time]bool),
	}
}

// ============================================================================
// Entries
// ============================================================================

// Add stores h. Adding a name already present on the date is a no-op.
func (s *Set) Add(h Holiday) {
	key := calendar.Truncate(h.Date)
	h.Date = key
	for _, existing := range s.entries[key] {
		if existing.Name == h.Name {
			return
		}
	}
	s.entries[key] = append(s.entries[key], h)
}

// AddName stores a public holiday called name on date.
func (s *Set) AddName(date time.Time, name string) {
	s.Add(Holiday{Date: date, Name: name, Category: Public})
}

// Contains reports whether any holiday falls on date.
func (s *Set) Contains(date time.Time) bool {
	return len(s.entries[calendar.Truncate(date)]) > 0
}

// Get returns the names on date joined by "; ", or "" if there are none.
func (s *Set) Get(date time.Time) string {
	return strings.Join(s.GetList(date), "; ")
}

// GetList returns the names on date.
func (s *Set) GetList(date time.Time) []string {
	entries := s.entries[calendar.Truncate(date)]
	names := make([]string, len(entries))
	for i, h := range entries {
		names[i] = h.Name
	}
	return names
}

// Entries returns the holidays on date.
func (s *Set) Entries(date time.Time) []Holiday {
	return append([]Holiday(nil), s.entries[calendar.Truncate(date)]...)
}

// Dates returns every holiday date in ascending order.
func (s *Set) Dates() []time.Time {
	dates := make([]time.Time, 0, len(s.entries))
	for d := range s.entries {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Len returns the number of holiday dates.
func (s *Set) Len() int {
	return len(s.entries)
}

// Holidays returns every holiday ordered by date.
func (s *Set) Holidays() []Holiday {
	var out []Holiday
	for _, d := range s.Dates() {
		out = append(out, s.entries[d]...)
	}
	return out
}

// Remove deletes every holiday on date and returns them.
func (s *Set) Remove(date time.Time) []Holiday {
	key := calendar.Truncate(date)
	removed := s.entries[key]
	delete(s.entries, key)
	return removed
}

// removeName deletes a single name from date.
func (s *Set) removeName(date time.Time, name string) {
	key := calendar.Truncate(date)
	kept := s.entries[key][:0]
	for _, h := range s.entries[key] {
		if h.Name != name {
			kept = append(kept, h)
		}
	}
	if len(kept) == 0 {
		delete(s.entries, key)
		return
	}
	s.entries[key] = kept
}

// Merge adds every holiday of other to s.
func (s *Set) Merge(other *Set) {
	for _, h := range other.Holidays() {
		s.Add(h)
	}
	for d := range other.weekendWorkdays {
		s.weekendWorkdays[d] = true
	}
}

// ============================================================================
// Named lookups
// ============================================================================

// Lookup selects how GetNamed matches holiday names.
type Lookup int

const (
	IContains Lookup = iota
	Contains
	Exact
	IExact
	StartsWith
	IStartsWith
)

func (l Lookup) match(name, query string) bool {
	switch l {
	case Contains:
		return strings.Contains(name, query)
	case Exact:
		return name == query
	case IExact:
		return strings.EqualFold(name, query)
	case StartsWith:
		return strings.HasPrefix(name, query)
	case IStartsWith:
		return strings.HasPrefix(strings.ToLower(name), strings.ToLower(query))
	default:
		return strings.Contains(strings.ToLower(name), strings.ToLower(query))
	}
}

// ParseLookup converts a lookup name such as "icontains" to a Lookup.
func ParseLookup(s string) (Lookup, error) {
	switch strings.ToLower(s) {
	case "", "icontains":
		return IContains, nil
	case "contains":
		return Contains, nil
	case "exact":
		return Exact, nil
	case "iexact":
		return IExact, nil
	case "startswith":
		return StartsWith, nil
	case "istartswith":
		return IStartsWith, nil
	}
	return 0, fmt.Errorf("unknown lookup %q", s)
}

// GetNamed returns the dates of holidays whose name matches query.
func (s *Set) GetNamed(query string, lookup Lookup) []time.Time {
	var dates []time.Time
	for _, d := range s.Dates() {
		for _, h := range s.entries[d] {
			if lookup.match(h.Name, query) {
				dates = append(dates, d)
				break
			}
		}
	}
	return dates
}

// PopNamed removes every holiday whose name contains name, ignoring case,
// and returns the affected dates.
func (s *Set) PopNamed(name string) ([]time.Time, error) {
	var dates []time.Time
	for _, d := range s.Dates() {
		var matched []string
		for _, h := range s.entries[d] {
			if IContains.match(h.Name, name) {
				matched = append(matched, h.Name)
			}
		}
		for _, n := range matched {
			s.removeName(d, n)
		}
		if len(matched) > 0 {
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return dates, nil
}

// ============================================================================
// Workdays
// ============================================================================

// IsHoliday reports whether any holiday falls on date.
func (s *Set) IsHoliday(date time.Time) bool {
	return s.Contains(date)
}

// IsWeekend reports whether date is a weekend day for this set.
func (s *Set) IsWeekend(date time.Time) bool {
	return calendar.IsWeekend(date, s.weekend)
}

// Weekend returns the weekend days of the set.
func (s *Set) Weekend() []time.Weekday {
	return append([]time.Weekday(nil), s.weekend...)
}

// IsWeekendWorkday reports whether date is a weekend day designated as a
// working day.
func (s *Set) IsWeekendWorkday(date time.Time) bool {
	return s.weekendWorkdays[calendar.Truncate(date)]
}

// AddWeekendWorkday marks a weekend date as a working day.
func (s *Set) AddWeekendWorkday(date time.Time) {
	s.weekendWorkdays[calendar.Truncate(date)] = true
}

// IsWorkday reports whether date is neither a holiday nor a weekend day,
// or is a weekend day designated as a working day.
func (s *Set) IsWorkday(date time.Time) bool {
	key := calendar.Truncate(date)
	if s.Contains(key) {
		return false
	}
	return !s.IsWeekend(key) || s.weekendWorkdays[key]
}

// NthWorkday returns the nth workday after date, or before it when n is
// negative. NthWorkday(date, 0) returns date.
func (s *Set) NthWorkday(date time.Time, n int) time.Time {
	d := calendar.Truncate(date)
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	for n > 0 {
		d = calendar.AddDays(d, step)
		if s.IsWorkday(d) {
			n--
		}
	}
	return d
}

// WorkdaysBetween counts workdays from a to b, excluding a and including b.
// The order of a and b does not matter.
func (s *Set) WorkdaysBetween(a, b time.Time) int {
	a, b = calendar.Truncate(a), calendar.Truncate(b)
	if b.Before(a) {
		a, b = b, a
	}
	count := 0
	for d := calendar.AddDays(a, 1); !d.After(b); d = calendar.AddDays(d, 1) {
		if s.IsWorkday(d) {
			count++
		}
	}
	return count
}
