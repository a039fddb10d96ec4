package holidays

import (
	"errors"
	"testing"
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
)

func day(s string) time.Time {
	d, err := calendar.ParseDateString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func formatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = calendar.FormatDate(d)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSetAdd(t *testing.T) {
	s := NewSet()
	s.AddName(day("2024-12-25"), "Christmas Day")
	s.AddName(day("2024-12-25"), "Christmas Day")
	s.AddName(day("2024-12-25"), "Feast of the Nativity")
	s.AddName(day("2024-01-01"), "New Year's Day")

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
	if got := s.Get(day("2024-12-25")); got != "Christmas Day; Feast of the Nativity" {
		t.Errorf("Get() = %q", got)
	}
	if got := s.Get(day("2024-07-04")); got != "" {
		t.Errorf("Get() of a non-holiday = %q, want empty", got)
	}
	if want := []string{"2024-01-01", "2024-12-25"}; !equalStrings(formatDates(s.Dates()), want) {
		t.Errorf("Dates() = %v, want %v", formatDates(s.Dates()), want)
	}

	// Time of day is ignored.
	if !s.Contains(day("2024-12-25").Add(15 * time.Hour)) {
		t.Error("Contains() should ignore the time of day")
	}

	removed := s.Remove(day("2024-12-25"))
	if len(removed) != 2 || s.Contains(day("2024-12-25")) {
		t.Errorf("Remove() = %d holidays, set still contains date: %v", len(removed), s.Contains(day("2024-12-25")))
	}
}

func TestSetGetNamed(t *testing.T) {
	s := NewSet()
	s.AddName(day("2024-01-01"), "New Year's Day")
	s.AddName(day("2024-01-02"), "New Year Holiday")
	s.AddName(day("2024-12-31"), "Hogmanay")

	tests := []struct {
		query  string
		lookup Lookup
		want   []string
	}{
		{"new year", IContains, []string{"2024-01-01", "2024-01-02"}},
		{"new year", Contains, nil},
		{"New Year's Day", Exact, []string{"2024-01-01"}},
		{"new year's day", IExact, []string{"2024-01-01"}},
		{"New", StartsWith, []string{"2024-01-01", "2024-01-02"}},
		{"hog", IStartsWith, []string{"2024-12-31"}},
		{"hog", StartsWith, nil},
	}

	for _, tt := range tests {
		got := formatDates(s.GetNamed(tt.query, tt.lookup))
		if !equalStrings(got, tt.want) {
			t.Errorf("GetNamed(%q, %d) = %v, want %v", tt.query, tt.lookup, got, tt.want)
		}
	}
}

func TestParseLookup(t *testing.T) {
	for in, want := range map[string]Lookup{"": IContains, "EXACT": Exact, "istartswith": IStartsWith} {
		got, err := ParseLookup(in)
		if err != nil || got != want {
			t.Errorf("ParseLookup(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLookup("regex"); err == nil {
		t.Error("ParseLookup(regex) should fail")
	}
}

func TestSetPopNamed(t *testing.T) {
	s := NewSet()
	s.AddName(day("2022-12-25"), "Christmas Day")
	s.AddName(day("2022-12-27"), "Christmas Day (observed)")
	s.AddName(day("2022-12-27"), "Boxing Day")

	dates, err := s.PopNamed("christmas")
	if err != nil {
		t.Fatalf("PopNamed() error = %v", err)
	}
	if want := []string{"2022-12-25", "2022-12-27"}; !equalStrings(formatDates(dates), want) {
		t.Errorf("PopNamed() = %v, want %v", formatDates(dates), want)
	}
	if s.Contains(day("2022-12-25")) {
		t.Error("2022-12-25 should be gone")
	}
	if got := s.Get(day("2022-12-27")); got != "Boxing Day" {
		t.Errorf("Get(2022-12-27) = %q, want Boxing Day", got)
	}

	_, err = s.PopNamed("easter")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("PopNamed(easter) error = %v, want ErrNotFound", err)
	}
}

func TestSetWorkdays(t *testing.T) {
	s := NewSet()
	s.AddName(day("2024-01-01"), "New Year's Day")
	s.AddWeekendWorkday(day("2024-01-06"))

	tests := []struct {
		date string
		want bool
	}{
		{"2024-01-01", false},
		{"2024-01-02", true},
		{"2024-01-06", true},
		{"2024-01-07", false},
	}
	for _, tt := range tests {
		if got := s.IsWorkday(day(tt.date)); got != tt.want {
			t.Errorf("IsWorkday(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}

	// Friday 2023-12-29, skipping the weekend and New Year's Day.
	if got := calendar.FormatDate(s.NthWorkday(day("2023-12-29"), 1)); got != "2024-01-02" {
		t.Errorf("NthWorkday(+1) = %s, want 2024-01-02", got)
	}
	if got := calendar.FormatDate(s.NthWorkday(day("2024-01-02"), -1)); got != "2023-12-29" {
		t.Errorf("NthWorkday(-1) = %s, want 2023-12-29", got)
	}
	if got := calendar.FormatDate(s.NthWorkday(day("2024-01-02"), 0)); got != "2024-01-02" {
		t.Errorf("NthWorkday(0) = %s, want 2024-01-02", got)
	}

	// Jan 2-5 plus the working Saturday.
	if got := s.WorkdaysBetween(day("2024-01-01"), day("2024-01-07")); got != 5 {
		t.Errorf("WorkdaysBetween() = %d, want 5", got)
	}
	if got := s.WorkdaysBetween(day("2024-01-07"), day("2024-01-01")); got != 5 {
		t.Errorf("WorkdaysBetween() reversed = %d, want 5", got)
	}
}

func TestFridaySaturdayWeekend(t *testing.T) {
	s := NewSet(time.Friday, time.Saturday)
	if s.IsWorkday(day("2024-03-01")) {
		t.Error("Friday should be a weekend day")
	}
	if !s.IsWorkday(day("2024-03-03")) {
		t.Error("Sunday should be a workday")
	}
}

func TestParseCategory(t *testing.T) {
	if c, err := ParseCategory(" Bank "); err != nil || c != Bank {
		t.Errorf("ParseCategory(Bank) = %q, %v", c, err)
	}
	if _, err := ParseCategory("religious"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("ParseCategory(religious) error = %v, want ErrUnknownCategory", err)
	}
}
