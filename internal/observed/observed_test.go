package observed

import (
	"testing"
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
)

// fakeLookup is a Saturday/Sunday weekend with a fixed holiday list.
type fakeLookup map[string]bool

func (f fakeLookup) IsHoliday(t time.Time) bool { return f[calendar.FormatDate(t)] }

func (f fakeLookup) IsWeekend(t time.Time) bool {
	return calendar.IsWeekend(t, calendar.DefaultWeekend())
}

func day(s string) time.Time {
	d, err := calendar.ParseDateString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		rule     Rule
		date     string
		holidays []string
		want     string
		outcome  Outcome
	}{
		{"sunday new year", SatSunToNextMonTue, "2017-01-01", nil, "2017-01-02", Moved},
		{"weekday untouched", SatSunToNextMon, "2024-12-25", nil, "2024-12-25", Unchanged},
		{"saturday to friday", SatToPrevFri.Plus(SunToNextMon), "2021-07-03", nil, "2021-07-02", Moved},
		{"sunday to monday", SatToPrevFri.Plus(SunToNextMon), "2021-07-04", nil, "2021-07-05", Moved},
		{"saturday dropped", SatToNone, "2024-06-01", nil, "2024-06-01", Removed},
		{"next workday skips holiday", SatSunToNextWorkday, "2022-01-01", []string{"2022-01-03"}, "2022-01-04", Moved},
		{"previous workday", SatToPrevWorkday, "2024-06-01", []string{"2024-05-31"}, "2024-05-30", Moved},
		{"fixed shift ignores collision", SatSunToNextMon, "2022-01-02", []string{"2022-01-03"}, "2022-01-03", Moved},
		{"next if taken", SatSunToNextMonTue, "2021-12-26", []string{"2021-12-27"}, "2021-12-28", Moved},
		{"latam thursday", AllToNearestMonLatam, "2024-05-30", nil, "2024-06-03", Moved},
		{"nearest monday thursday", AllToNearestMon, "2024-05-30", nil, "2024-05-27", Moved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := fakeLookup{}
			for _, h := range tt.holidays {
				lookup[h] = true
			}
			got, outcome := Apply(tt.rule, day(tt.date), lookup)
			if calendar.FormatDate(got) != tt.want || outcome != tt.outcome {
				t.Errorf("Apply(%s) = %s, %v; want %s, %v",
					tt.date, calendar.FormatDate(got), outcome, tt.want, tt.outcome)
			}
		})
	}
}

func TestApplyWorkdayStaysInYear(t *testing.T) {
	// Dec 31 2022 is a Saturday; the next workday is in 2023.
	got, outcome := Apply(SatSunToNextWorkday, day("2022-12-31"), fakeLookup{})
	if outcome != Unchanged || calendar.FormatDate(got) != "2022-12-31" {
		t.Errorf("Apply() = %s, %v; want unchanged", calendar.FormatDate(got), outcome)
	}

	// Jan 1 2022 is a Saturday; there is no earlier workday in 2022.
	got, outcome = Apply(SatToPrevWorkday, day("2022-01-01"), fakeLookup{})
	if outcome != Unchanged || calendar.FormatDate(got) != "2022-01-01" {
		t.Errorf("Apply() = %s, %v; want unchanged", calendar.FormatDate(got), outcome)
	}
}

func TestApplyChristmasCollisions(t *testing.T) {
	// 2021: Christmas on Saturday, Boxing Day on Sunday.
	lookup := fakeLookup{"2021-12-25": true, "2021-12-26": true}

	christmas, _ := Apply(SatSunToNextMonTue, day("2021-12-25"), lookup)
	lookup[calendar.FormatDate(christmas)] = true
	boxing, _ := Apply(SatSunToNextMonTue, day("2021-12-26"), lookup)

	if calendar.FormatDate(christmas) != "2021-12-27" {
		t.Errorf("Christmas observed = %s, want 2021-12-27", calendar.FormatDate(christmas))
	}
	if calendar.FormatDate(boxing) != "2021-12-28" {
		t.Errorf("Boxing Day observed = %s, want 2021-12-28", calendar.FormatDate(boxing))
	}
}

func TestPlus(t *testing.T) {
	r := SatToPrevFri.Plus(SunToNextMon)
	if days, drop, ok := r.Shift(time.Saturday); !ok || drop || days != -1 {
		t.Errorf("Shift(Saturday) = %d, %v, %v", days, drop, ok)
	}
	if days, _, ok := r.Shift(time.Sunday); !ok || days != 1 {
		t.Errorf("Shift(Sunday) = %d, %v", days, ok)
	}
	if _, _, ok := r.Shift(time.Monday); ok {
		t.Error("Shift(Monday) should be unmapped")
	}

	// The right-hand rule wins on overlap.
	r = SatToNextMon.Plus(SatToNone)
	if _, drop, _ := r.Shift(time.Saturday); !drop {
		t.Error("Plus() should let the right-hand rule win")
	}

	if got := len(SatSunToNextMon.Weekdays()); got != 2 {
		t.Errorf("Weekdays() = %d entries, want 2", got)
	}
	if !(Rule{}).IsZero() {
		t.Error("zero Rule should be empty")
	}
}

func TestNextIfTakenDoesNotMutate(t *testing.T) {
	d := day("2021-12-26")
	lookup := fakeLookup{"2021-12-27": true}
	got, _ := Apply(SatSunToNextMon, d, lookup)
	if calendar.FormatDate(got) != "2021-12-27" {
		t.Errorf("SatSunToNextMon picked up NextIfTaken: %s", calendar.FormatDate(got))
	}
}
