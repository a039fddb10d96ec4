package countries

import (
	"errors"
	"testing"
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/holidays"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"AL", "AL"},
		{"alb", "AL"},
		{" gbr ", "GB"},
		{"us", "US"},
		{"MMR", "MM"},
	}
	for _, tt := range tests {
		c, err := Lookup(tt.code)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", tt.code, err)
		}
		if c.Code() != tt.want {
			t.Errorf("Lookup(%q) = %s, want %s", tt.code, c.Code(), tt.want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, code := range []string{"", "ZZ", "ZZZ"} {
		if _, err := Lookup(code); !errors.Is(err, ErrUnknownCountry) {
			t.Errorf("Lookup(%q) error = %v, want ErrUnknownCountry", code, err)
		}
	}
}

func TestListSorted(t *testing.T) {
	list := List()
	if len(list) != 8 {
		t.Fatalf("List() returned %d countries, want 8", len(list))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Code() >= list[i].Code() {
			t.Errorf("List() not sorted: %s before %s", list[i-1].Code(), list[i].Code())
		}
	}

	// The returned slice is a copy.
	list[0] = nil
	if List()[0] == nil {
		t.Error("List() exposes the registry slice")
	}
}

func TestNewMatchesLanguage(t *testing.T) {
	tests := []struct {
		code, requested, want string
	}{
		{"AL", "", "sq"},
		{"AL", "en", "en_US"},
		{"AL", "fr-FR, en;q=0.8", "en_US"},
		{"AL", "de", "sq"},
		{"CN", "zh-Hans-CN", "zh_CN"},
		{"GB", "en-US", "en_US"},
	}
	for _, tt := range tests {
		e, err := New(tt.code, holidays.Options{Language: tt.requested})
		if err != nil {
			t.Fatalf("New(%s, %q) error = %v", tt.code, tt.requested, err)
		}
		if got := e.Options().Language; got != tt.want {
			t.Errorf("New(%s, %q) language = %s, want %s", tt.code, tt.requested, got, tt.want)
		}
	}
}

func TestNewRejectsUnsupported(t *testing.T) {
	if _, err := New("AL", holidays.Options{Categories: []holidays.Category{holidays.School}}); !errors.Is(err, holidays.ErrUnknownCategory) {
		t.Errorf("New(AL, school) error = %v, want ErrUnknownCategory", err)
	}
	if _, err := New("GB", holidays.Options{Subdivision: "XX"}); !errors.Is(err, holidays.ErrUnknownSubdivision) {
		t.Errorf("New(GB, XX) error = %v, want ErrUnknownSubdivision", err)
	}
	if _, err := New("XX", holidays.Options{}); !errors.Is(err, ErrUnknownCountry) {
		t.Errorf("New(XX) error = %v, want ErrUnknownCountry", err)
	}
}

func TestWithExtras(t *testing.T) {
	r, err := Default().WithExtras(map[string][]Extra{
		"us": {
			{Month: mar, Day: 14, Name: "Pi Day", StartYear: 2010},
			{Month: feb, Day: 29, Name: "Leap Day"},
			{Month: oct, Day: 13, Name: "Company Picnic", Category: holidays.Optional, EndYear: 2023},
		},
	})
	if err != nil {
		t.Fatalf("WithExtras() error = %v", err)
	}

	e, err := r.New("US", holidays.Options{Categories: []holidays.Category{holidays.Public, holidays.Optional}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	tests := []struct {
		year       int
		month      time.Month
		day        int
		name       string
		wantPublic bool
	}{
		{2024, mar, 14, "Pi Day", true},
		{2024, feb, 29, "Leap Day", true},
		{2023, oct, 13, "Company Picnic", false},
	}
	for _, tt := range tests {
		d := calendar.Date(tt.year, tt.month, tt.day)
		entries := e.Year(tt.year).Entries(d)
		if len(entries) != 1 || entries[0].Name != tt.name {
			t.Fatalf("%s = %v, want %s", calendar.FormatDate(d), entries, tt.name)
		}
		if (entries[0].Category == holidays.Public) != tt.wantPublic {
			t.Errorf("%s category = %s", tt.name, entries[0].Category)
		}
	}

	if e.Year(2009).IsHoliday(calendar.Date(2009, mar, 14)) {
		t.Error("Pi Day added before its start year")
	}
	if e.Year(2024).IsHoliday(calendar.Date(2024, oct, 13)) {
		t.Error("Company Picnic added after its end year")
	}
	if e.Year(2023).IsHoliday(calendar.Date(2023, mar, 1)) {
		t.Error("Leap Day spilled into March in a common year")
	}

	// The built-in registry is unchanged.
	base, _ := New("US", holidays.Options{})
	if base.Year(2024).IsHoliday(calendar.Date(2024, mar, 14)) {
		t.Error("WithExtras modified the default registry")
	}
	// Other countries are untouched and still reachable.
	if _, err := r.Lookup("GBR"); err != nil {
		t.Errorf("Lookup(GBR) after WithExtras error = %v", err)
	}
}

func TestWithExtrasValidation(t *testing.T) {
	_, err := Default().WithExtras(map[string][]Extra{
		"ZZ": {{Month: jan, Day: 2, Name: "Nowhere"}},
		"GB": {
			{Month: apr, Day: 31, Name: "Bad Date"},
			{Month: may, Day: 2, Name: "Half", Category: holidays.HalfDay},
			{Month: may, Day: 3},
		},
	})
	if err == nil {
		t.Fatal("WithExtras() accepted invalid extras")
	}
	if !errors.Is(err, ErrUnknownCountry) {
		t.Errorf("WithExtras() error = %v, want ErrUnknownCountry", err)
	}
	if !errors.Is(err, holidays.ErrUnknownCategory) {
		t.Errorf("WithExtras() error = %v, want ErrUnknownCategory", err)
	}
}
