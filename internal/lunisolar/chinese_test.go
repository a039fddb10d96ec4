package lunisolar

import (
	"testing"
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
)

func TestChineseFestivals(t *testing.T) {
	c := NewChinese()

	tests := []struct {
		year                                         int
		newYear, dragonBoat, midAutumn, ninth, buddha string
	}{
		{1901, "1901-02-19", "1901-06-20", "1901-09-27", "1901-10-20", "1901-05-25"},
		{2010, "2010-02-14", "2010-06-16", "2010-09-22", "2010-10-16", "2010-05-21"},
		{2020, "2020-01-25", "2020-06-25", "2020-10-01", "2020-10-25", "2020-04-30"},
		{2023, "2023-01-22", "2023-06-22", "2023-09-29", "2023-10-23", "2023-05-26"},
		{2024, "2024-02-10", "2024-06-10", "2024-09-17", "2024-10-11", "2024-05-15"},
		{2025, "2025-01-29", "2025-05-31", "2025-10-06", "2025-10-29", "2025-05-04"},
		{2099, "2099-01-21", "2099-06-23", "2099-09-29", "2099-10-22", "2099-05-27"},
	}

	check := func(t *testing.T, name string, got time.Time, ok bool, want string) {
		t.Helper()
		if !ok {
			t.Errorf("%s absent, want %s", name, want)
			return
		}
		if calendar.FormatDate(got) != want {
			t.Errorf("%s = %s, want %s", name, calendar.FormatDate(got), want)
		}
	}

	for _, tt := range tests {
		t.Run(tt.newYear, func(t *testing.T) {
			d, ok := c.NewYear(tt.year)
			check(t, "NewYear", d, ok, tt.newYear)
			d, ok = c.DragonBoat(tt.year)
			check(t, "DragonBoat", d, ok, tt.dragonBoat)
			d, ok = c.MidAutumn(tt.year)
			check(t, "MidAutumn", d, ok, tt.midAutumn)
			d, ok = c.DoubleNinth(tt.year)
			check(t, "DoubleNinth", d, ok, tt.ninth)
			d, ok = c.BuddhaBirthday(tt.year)
			check(t, "BuddhaBirthday", d, ok, tt.buddha)
		})
	}
}

func TestChineseLeapMonth(t *testing.T) {
	c := NewChinese()

	if m, ok := c.LeapMonth(2020); !ok || m != 4 {
		t.Errorf("LeapMonth(2020) = %d, %v; want 4, true", m, ok)
	}
	if _, ok := c.LeapMonth(2024); ok {
		t.Error("LeapMonth(2024) should report no leap month")
	}
}

func TestChineseNewYearWindow(t *testing.T) {
	c := NewChinese()
	for year := ChineseStartYear; year <= ChineseEndYear; year++ {
		d, ok := c.NewYear(year)
		if !ok {
			t.Fatalf("NewYear(%d) absent inside the window", year)
		}
		if d.Year() != year {
			t.Fatalf("NewYear(%d) = %s, outside its Gregorian year", year, calendar.FormatDate(d))
		}
		if d.Before(calendar.Date(year, time.January, 21)) || d.After(calendar.Date(year, time.February, 20)) {
			t.Fatalf("NewYear(%d) = %s, outside Jan 21 to Feb 20", year, calendar.FormatDate(d))
		}
	}
}

func TestChineseOutOfRange(t *testing.T) {
	c := NewChinese()
	for _, year := range []int{ChineseStartYear - 1, ChineseEndYear + 1} {
		if _, ok := c.NewYear(year); ok {
			t.Errorf("NewYear(%d) should be absent", year)
		}
		if _, ok := c.MidAutumn(year); ok {
			t.Errorf("MidAutumn(%d) should be absent", year)
		}
	}
	if _, ok := c.ToGregorian(2024, 13, 1); ok {
		t.Error("ToGregorian(2024, 13, 1) should be rejected")
	}
}

func TestChineseVesak(t *testing.T) {
	c := NewChinese()
	buddha, _ := c.BuddhaBirthday(2024)
	vesak, ok := c.Vesak(2024)
	if !ok {
		t.Fatal("Vesak(2024) absent")
	}
	if calendar.DaysBetween(buddha, vesak) != 7 {
		t.Errorf("Vesak(2024) = %s, want 7 days after %s",
			calendar.FormatDate(vesak), calendar.FormatDate(buddha))
	}
}
