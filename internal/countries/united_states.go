package countries

import (
	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/holidays"
	"github.com/zapponejosh/holidays-api/internal/observed"
)

func unitedStates() *Country {
	return &Country{
		config: holidays.Config{
			Code:                "US",
			Alpha3:              "USA",
			Name:                "United States",
			DefaultLanguage:     "en_US",
			SupportedLanguages:  []string{"en_US"},
			SupportedCategories: []holidays.Category{holidays.Public, holidays.Optional},
			Subdivisions:        []string{"CA", "DC"},
			StartYear:           1871,
			ObservedRule:        observed.SatToPrevFri.Plus(observed.SunToNextMon),
			ObservedLabel:       "%s (observed)",
		},
		populators: map[holidays.Category]holidays.Populator{
			holidays.Public:   populateUnitedStates,
			holidays.Optional: populateUnitedStatesUnofficial,
		},
	}
}

func populateUnitedStates(b *holidays.Builder) {
	year := b.Year()

	b.Observed(b.International.AddNewYearsDay("New Year's Day"))
	b.ObserveNamed(calendar.Date(year+1, jan, 1), "New Year's Day", observed.Rule{})

	if year >= 1986 {
		b.Add(b.NthWeekday(3, mon, jan), "Martin Luther King Jr. Day")
	}
	if year >= 1879 {
		if year >= 1971 {
			b.Add(b.NthWeekday(3, mon, feb), "Washington's Birthday")
		} else {
			b.AddDate(feb, 22, "Washington's Birthday")
		}
	}

	if year >= 1888 {
		if year >= 1971 {
			b.Add(b.NthWeekday(-1, mon, may), "Memorial Day")
		} else {
			b.AddDate(may, 30, "Memorial Day")
		}
	}
	if year >= 2021 {
		b.Observed(b.AddDate(jun, 19, "Juneteenth National Independence Day"))
	}
	b.Observed(b.AddDate(jul, 4, "Independence Day"))
	if year >= 1894 {
		b.Add(b.NthWeekday(1, mon, sep), "Labor Day")
	}

	// States set their own Columbus Day.
	if year >= 1937 && b.Subdivision() == "" {
		if year >= 1971 {
			b.Add(b.NthWeekday(2, mon, oct), "Columbus Day")
		} else {
			b.AddDate(oct, 12, "Columbus Day")
		}
	}

	if year >= 1938 {
		name := "Armistice Day"
		if year >= 1954 {
			name = "Veterans Day"
		}
		if year >= 1971 && year <= 1977 {
			b.Add(b.NthWeekday(4, mon, oct), name)
		} else {
			b.Observed(b.International.AddRemembranceDay(name))
		}
	}
	b.Add(b.NthWeekday(4, thu, nov), "Thanksgiving")
	b.Observed(b.Christian.AddChristmasDay("Christmas Day"))

	switch b.Subdivision() {
	case "CA":
		populateCalifornia(b)
	case "DC":
		populateDistrictOfColumbia(b)
	}
}

func populateCalifornia(b *holidays.Builder) {
	year := b.Year()
	if year >= 1971 && year <= 2009 {
		b.Observed(b.AddDate(feb, 12, "Lincoln's Birthday"))
	}
	if year >= 2014 {
		b.AddDate(feb, 15, "Susan B. Anthony Day")
	}
	if year >= 1995 {
		b.ObservedWith(observed.SunToNextMon, b.AddDate(mar, 31, "Cesar Chavez Day"))
	}
	if year >= 1971 && year <= 2008 {
		b.Add(b.NthWeekday(2, mon, oct), "Columbus Day")
	}
	if year >= 1975 {
		b.Add(calendar.AddDays(b.NthWeekday(4, thu, nov), 1), "Day After Thanksgiving")
	}
}

func populateDistrictOfColumbia(b *holidays.Builder) {
	year := b.Year()
	if (year-1789)%4 == 0 {
		inauguration := b.Date(mar, 4)
		if year >= 1937 {
			inauguration = b.Date(jan, 20)
		}
		b.ObservedWith(observed.SunToNextMon, b.Add(inauguration, "Inauguration Day"))
	}
	if year >= 2005 {
		b.Observed(b.AddDate(apr, 16, "Emancipation Day"))
	}
	if year >= 1971 {
		name := "Columbus Day"
		if year >= 2019 {
			name = "Indigenous Peoples' Day"
		}
		b.Add(b.NthWeekday(2, mon, oct), name)
	}
}

// populateUnitedStatesUnofficial adds widely celebrated days with no
// official observance.
func populateUnitedStatesUnofficial(b *holidays.Builder) {
	year := b.Year()
	if year >= 1847 {
		b.AddDate(feb, 14, "Valentine's Day")
	}
	b.Christian.AddSaintPatricksDay("Saint Patrick's Day")
	b.AddDate(oct, 31, "Halloween")
	if year >= 1886 {
		b.AddDate(feb, 2, "Groundhog Day")
	}
	if year%4 == 0 {
		b.Add(calendar.AddDays(b.NthWeekday(1, mon, nov), 1), "Election Day")
	}
}
