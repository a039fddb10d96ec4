package lunisolar

import (
	"testing"
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
)

func TestBurmeseThingyan(t *testing.T) {
	b := NewBurmese()

	if _, _, ok := b.Thingyan(1939); ok {
		t.Error("Thingyan(1939) should be absent")
	}

	akya, atat, ok := b.Thingyan(2034)
	if !ok {
		t.Fatal("Thingyan(2034) should be present")
	}
	if got := calendar.FormatDate(akya); got != "2034-04-14" {
		t.Errorf("Thingyan(2034) akya = %s, want 2034-04-14", got)
	}
	if got := calendar.FormatDate(atat); got != "2034-04-16" {
		t.Errorf("Thingyan(2034) atat = %s, want 2034-04-16", got)
	}
}

func TestBurmeseThingyanAlwaysInApril(t *testing.T) {
	b := NewBurmese()
	for year := BurmeseStartYear + 1; year <= BurmeseEndYear; year++ {
		akya, atat, ok := b.Thingyan(year)
		if !ok {
			t.Fatalf("Thingyan(%d) absent inside the window", year)
		}
		if akya.Month() != time.April || atat.Month() != time.April {
			t.Fatalf("Thingyan(%d) = %s..%s, want April",
				year, calendar.FormatDate(akya), calendar.FormatDate(atat))
		}
		if !akya.Before(atat) {
			t.Fatalf("Thingyan(%d) akya %s not before atat %s",
				year, calendar.FormatDate(akya), calendar.FormatDate(atat))
		}
	}
}

func TestBurmeseAnchors(t *testing.T) {
	b := NewBurmese()

	tests := []struct {
		name string
		fn   func(int) (time.Time, bool)
		year int
		want string
	}{
		{"kason 2020", b.KasonFullMoon, 2020, "2020-05-06"},
		{"kason 2024", b.KasonFullMoon, 2024, "2024-05-22"},
		{"waso 2023", b.WasoFullMoon, 2023, "2023-08-01"},
		{"waso 2024", b.WasoFullMoon, 2024, "2024-07-20"},
		{"thadingyut 2024", b.ThadingyutFullMoon, 2024, "2024-10-17"},
		{"thadingyut 2025", b.ThadingyutFullMoon, 2025, "2025-10-06"},
		{"tazaungmon waxing 2024", b.TazaungmonWaxingMoon, 2024, "2024-11-01"},
		{"tazaungmon full 2024", b.TazaungmonFullMoon, 2024, "2024-11-15"},
		{"pyatho 2023", b.PyathoWaxingMoon, 2023, "2024-01-11"},
		{"pyatho 2024", b.PyathoWaxingMoon, 2024, "2024-12-30"},
		{"tabaung 2024", b.TabaungFullMoon, 2024, "2025-03-13"},
		{"first year", b.KasonFullMoon, 1940, "1940-05-20"},
		{"last year", b.KasonFullMoon, 2100, "2100-05-23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.fn(tt.year)
			if !ok {
				t.Fatalf("%s absent", tt.name)
			}
			if calendar.FormatDate(got) != tt.want {
				t.Errorf("%s = %s, want %s", tt.name, calendar.FormatDate(got), tt.want)
			}
		})
	}
}

func TestBurmeseOutOfRange(t *testing.T) {
	b := NewBurmese()

	for _, year := range []int{BurmeseStartYear - 1, BurmeseEndYear + 1} {
		if _, ok := b.KasonFullMoon(year); ok {
			t.Errorf("KasonFullMoon(%d) should be absent", year)
		}
		if _, ok := b.ThadingyutFullMoon(year); ok {
			t.Errorf("ThadingyutFullMoon(%d) should be absent", year)
		}
		if _, _, ok := b.Thingyan(year); ok {
			t.Errorf("Thingyan(%d) should be absent", year)
		}
	}

	// Anchors counted from the next year's start need that year tabulated.
	if _, ok := b.TabaungFullMoon(BurmeseEndYear); ok {
		t.Error("TabaungFullMoon(2100) should be absent")
	}
}

func TestBurmeseIdempotent(t *testing.T) {
	b := NewBurmese()
	first, _ := b.WasoFullMoon(2050)
	second, _ := b.WasoFullMoon(2050)
	if !first.Equal(second) {
		t.Errorf("WasoFullMoon(2050) changed between calls: %s, %s", first, second)
	}
}
