package mandaean

import (
	"testing"

	"github.com/zapponejosh/holidays-api/internal/calendar"
)

func TestNewYear(t *testing.T) {
	c := New()

	tests := map[int]string{
		1901: "1901-08-16",
		1902: "1902-08-16",
		2024: "2024-07-16",
		2100: "2100-06-28",
	}
	for year, want := range tests {
		got, ok := c.NewYear(year)
		if !ok {
			t.Fatalf("NewYear(%d) absent", year)
		}
		if calendar.FormatDate(got) != want {
			t.Errorf("NewYear(%d) = %s, want %s", year, calendar.FormatDate(got), want)
		}
	}
}

func TestToGregorian(t *testing.T) {
	c := New()

	tests := []struct {
		name             string
		year, month, day int
		want             string
	}{
		{"last day of month 8", 2024, 8, 30, "2025-03-12"},
		{"first parwanaya day", 2024, 13, 1, "2025-03-13"},
		{"last parwanaya day", 2024, 13, 5, "2025-03-17"},
		{"first day after parwanaya", 2024, 9, 1, "2025-03-18"},
		{"last day of year", 2024, 12, 30, "2025-07-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.ToGregorian(tt.year, tt.month, tt.day)
			if !ok {
				t.Fatalf("ToGregorian(%d, %d, %d) absent", tt.year, tt.month, tt.day)
			}
			if calendar.FormatDate(got) != tt.want {
				t.Errorf("ToGregorian(%d, %d, %d) = %s, want %s",
					tt.year, tt.month, tt.day, calendar.FormatDate(got), tt.want)
			}
		})
	}
}

func TestToGregorianRejectsInvalid(t *testing.T) {
	c := New()

	invalid := [][3]int{
		{1901, 13, 6},
		{1901, 0, 1},
		{1901, 14, 1},
		{1901, 1, 31},
		{1901, 1, 0},
		{1900, 1, 1},
		{2101, 1, 1},
	}
	for _, in := range invalid {
		if got, ok := c.ToGregorian(in[0], in[1], in[2]); ok {
			t.Errorf("ToGregorian(%d, %d, %d) = %s, want absent", in[0], in[1], in[2], calendar.FormatDate(got))
		}
	}
}

func TestYearIsContiguous(t *testing.T) {
	c := New()
	for year := StartYear; year < EndYear; year++ {
		last, _ := c.ToGregorian(year, 12, 30)
		next, _ := c.NewYear(year + 1)
		if calendar.DaysBetween(last, next) != 1 {
			t.Fatalf("year %d ends %s but %d starts %s",
				year, calendar.FormatDate(last), year+1, calendar.FormatDate(next))
		}
	}
}

func TestFestivals(t *testing.T) {
	c := New()

	if got, _ := c.ParwanayaStart(2024); calendar.FormatDate(got) != "2025-03-13" {
		t.Errorf("ParwanayaStart(2024) = %s, want 2025-03-13", calendar.FormatDate(got))
	}
	if got, _ := c.DehwaHanina(2024); calendar.FormatDate(got) != "2024-10-31" {
		t.Errorf("DehwaHanina(2024) = %s, want 2024-10-31", calendar.FormatDate(got))
	}
	if got, _ := c.DehwaDaimana(2024); calendar.FormatDate(got) != "2025-05-17" {
		t.Errorf("DehwaDaimana(2024) = %s, want 2025-05-17", calendar.FormatDate(got))
	}
}
