package business

import (
	"testing"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"

	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/countries"
	"github.com/zapponejosh/holidays-api/internal/holidays"
)

func newCalendar(t *testing.T, code string, years ...int) *Calendar {
	t.Helper()
	e, err := countries.New(code, holidays.Options{Years: years})
	if err != nil {
		t.Fatalf("countries.New(%s) error = %v", code, err)
	}
	return New(e.Build())
}

func TestFederalHolidaysMatchRickarUS(t *testing.T) {
	federal := []*cal.Holiday{
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ColumbusDay,
		us.VeteransDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	}

	var years []int
	for y := 1999; y <= 2031; y++ {
		years = append(years, y)
	}
	c := newCalendar(t, "US", years...)

	for year := 2000; year <= 2030; year++ {
		for _, h := range federal {
			actual, observed := h.Calc(year)
			if actual.IsZero() {
				continue
			}
			for _, d := range []time.Time{actual, observed} {
				if ok, _ := c.IsHoliday(d); !ok {
					t.Errorf("%s %d: %s is not a holiday", h.Name, year, calendar.FormatDate(d))
				}
			}
		}
	}
}

func TestIsHolidayName(t *testing.T) {
	c := newCalendar(t, "US", 2024)
	ok, name := c.IsHoliday(calendar.Date(2024, time.July, 4))
	if !ok || name != "Independence Day" {
		t.Errorf("IsHoliday(2024-07-04) = %v, %q", ok, name)
	}
	if ok, _ := c.IsHoliday(calendar.Date(2024, time.July, 5)); ok {
		t.Error("2024-07-05 is not a holiday")
	}
	// Holidays only count in their own year.
	if ok, _ := c.IsHoliday(calendar.Date(2025, time.July, 4)); ok {
		t.Error("2025-07-04 reported from a 2024 set")
	}
}

func TestWorkdays(t *testing.T) {
	c := newCalendar(t, "US", 2024)

	tests := []struct {
		date string
		want bool
	}{
		{"2024-12-24", true},
		{"2024-12-25", false},
		{"2024-12-28", false},
		{"2024-12-30", true},
	}
	for _, tt := range tests {
		d, _ := calendar.ParseDateString(tt.date)
		if got := c.IsWorkday(d); got != tt.want {
			t.Errorf("IsWorkday(%s) = %v, want %v", tt.date, got, tt.want)
		}
	}

	// Weekend on both ends, Christmas in between.
	start := calendar.Date(2024, time.December, 21)
	end := calendar.Date(2024, time.December, 29)
	if got := c.WorkdaysInRange(start, end); got != 4 {
		t.Errorf("WorkdaysInRange() = %d, want 4", got)
	}
	if got := c.WorkdaysInRange(end, start); got != 4 {
		t.Errorf("WorkdaysInRange() reversed = %d, want 4", got)
	}

	if got := c.AddWorkdays(calendar.Date(2024, time.December, 24), 1); calendar.FormatDate(got) != "2024-12-26" {
		t.Errorf("AddWorkdays(+1) = %s, want 2024-12-26", calendar.FormatDate(got))
	}
	if got := c.AddWorkdays(calendar.Date(2024, time.December, 26), -1); calendar.FormatDate(got) != "2024-12-24" {
		t.Errorf("AddWorkdays(-1) = %s, want 2024-12-24", calendar.FormatDate(got))
	}
	if got := c.AddWorkdays(calendar.Date(2024, time.December, 26), 0); calendar.FormatDate(got) != "2024-12-26" {
		t.Errorf("AddWorkdays(0) = %s, want 2024-12-26", calendar.FormatDate(got))
	}
}

func TestIraqWeekend(t *testing.T) {
	c := newCalendar(t, "IQ", 2024)
	if c.IsWorkday(calendar.Date(2024, time.May, 3)) {
		t.Error("Friday is a workday in Iraq")
	}
	if !c.IsWorkday(calendar.Date(2024, time.May, 5)) {
		t.Error("Sunday is not a workday in Iraq")
	}
}

func TestChinaWeekendWorkday(t *testing.T) {
	c := newCalendar(t, "CN", 2024)

	// Sunday 2024-02-04 is worked in exchange for 2024-02-15.
	sunday := calendar.Date(2024, time.February, 4)
	if !c.IsWorkday(sunday) {
		t.Error("2024-02-04 should be a workday")
	}
	// Saturday 2024-02-03 to Sunday 2024-02-04: only the swapped Sunday.
	if got := c.WorkdaysInRange(calendar.Date(2024, time.February, 3), sunday); got != 1 {
		t.Errorf("WorkdaysInRange() = %d, want 1", got)
	}
}
