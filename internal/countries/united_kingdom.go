package countries

import (
	"github.com/zapponejosh/holidays-api/internal/holidays"
	"github.com/zapponejosh/holidays-api/internal/observed"
)

// UK subdivisions.
const (
	England         = "ENG"
	NorthernIreland = "NIR"
	Scotland        = "SCT"
	Wales           = "WLS"
)

func unitedKingdom() *Country {
	return &Country{
		config: holidays.Config{
			Code:                "GB",
			Alpha3:              "GBR",
			Name:                "United Kingdom",
			DefaultLanguage:     "en_GB",
			SupportedLanguages:  []string{"en_GB", "en_US"},
			SupportedCategories: []holidays.Category{holidays.Public},
			Subdivisions:        []string{England, NorthernIreland, Scotland, Wales},
			// Bank Holidays Act 1871.
			StartYear: 1872,
			// Bank Holidays Extension Act 1875.
			ObservedSince: 1875,
			ObservedRule:  observed.SatSunToNextMon,
			ObservedLabel: "%s (observed)",
			Special: map[int][]holidays.Special{
				1977: {{Month: jun, Day: 7, Name: "Silver Jubilee of Elizabeth II"}},
				1981: {{Month: jul, Day: 29, Name: "Wedding of Charles and Diana"}},
				1999: {{Month: dec, Day: 31, Name: "Millennium Celebrations"}},
				2002: {{Month: jun, Day: 3, Name: "Golden Jubilee of Elizabeth II"}},
				2011: {{Month: apr, Day: 29, Name: "Wedding of William and Catherine"}},
				2012: {{Month: jun, Day: 5, Name: "Diamond Jubilee of Elizabeth II"}},
				2022: {
					{Month: jun, Day: 3, Name: "Platinum Jubilee of Elizabeth II"},
					{Month: sep, Day: 19, Name: "State Funeral of Queen Elizabeth II"},
				},
				2023: {{Month: may, Day: 8, Name: "Coronation of Charles III"}},
			},
		},
		populators: map[holidays.Category]holidays.Populator{
			holidays.Public: populateUnitedKingdom,
		},
	}
}

func populateUnitedKingdom(b *holidays.Builder) {
	year := b.Year()

	b.Christian.AddGoodFriday("Good Friday")

	if year >= 1978 {
		if year == 1995 || year == 2020 {
			b.AddDate(may, 8, "May Day")
		} else {
			b.Add(b.NthWeekday(1, mon, may), "May Day")
		}
	}

	if year >= 1971 {
		switch year {
		case 2002, 2012:
			b.AddDate(jun, 4, "Spring Bank Holiday")
		case 2022:
			b.AddDate(jun, 2, "Spring Bank Holiday")
		default:
			b.Add(b.NthWeekday(-1, mon, may), "Spring Bank Holiday")
		}
	}

	subdiv := b.Subdivision()
	if subdiv != Scotland {
		if year >= 1975 {
			b.Observed(b.International.AddNewYearsDay("New Year's Day"))
		}
		b.ObservedWith(observed.SatSunToNextMonTue,
			b.Christian.AddChristmasDay("Christmas Day"),
			b.Christian.AddChristmasDayTwo("Boxing Day"),
		)
	}

	switch subdiv {
	case England, Wales:
		populateEnglandWales(b)
	case NorthernIreland:
		if year >= 1903 {
			b.Observed(b.Christian.AddSaintPatricksDay("Saint Patrick's Day"))
		}
		populateEnglandWales(b)
		b.Observed(b.AddDate(jul, 12, "Battle of the Boyne"))
	case Scotland:
		populateScotland(b)
	}
}

// populateEnglandWales adds the holidays England and Wales share with
// Northern Ireland.
func populateEnglandWales(b *holidays.Builder) {
	b.Christian.AddEasterMonday("Easter Monday")
	if b.Year() <= 1970 {
		b.Christian.AddWhitMonday("Whit Monday")
	} else {
		b.Add(b.NthWeekday(-1, mon, aug), "Late Summer Bank Holiday")
	}
}

func populateScotland(b *holidays.Builder) {
	year := b.Year()

	newYear := b.International.AddNewYearsDay("New Year's Day")
	b.ObservedWith(observed.SatSunToNextMonTue.Plus(observed.MonToNextTue),
		b.International.AddNewYearsDayTwo("New Year Holiday"))
	b.Observed(newYear)

	b.Add(b.NthWeekday(1, mon, aug), "Summer Bank Holiday")
	if year >= 2006 {
		b.Observed(b.AddDate(nov, 30, "Saint Andrew's Day"))
	}

	christmasRule := observed.SatSunToNextMon
	if year >= 1974 {
		christmasRule = observed.SatSunToNextMonTue
	}
	b.ObservedWith(christmasRule, b.Christian.AddChristmasDay("Christmas Day"))
	if year >= 1974 {
		b.ObservedWith(observed.SatSunToNextMonTue, b.Christian.AddChristmasDayTwo("Boxing Day"))
	}
}
