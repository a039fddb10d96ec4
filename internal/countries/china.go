package countries

import (
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/holidays"
	"github.com/zapponejosh/holidays-api/internal/observed"
)

// dayOff is a day off on month/day in exchange for working on from.
func dayOff(month time.Month, day int, from time.Time) holidays.Special {
	return holidays.Special{Month: month, Day: day, From: from}
}

func china() *Country {
	d := calendar.Date
	return &Country{
		config: holidays.Config{
			Code:                  "CN",
			Alpha3:                "CHN",
			Name:                  "China",
			DefaultLanguage:       "zh_CN",
			SupportedLanguages:    []string{"en_US", "zh_CN"},
			SupportedCategories:   []holidays.Category{holidays.Public, holidays.HalfDay},
			StartYear:             1950,
			ObservedRule:          observed.SatSunToNextWorkday,
			ObservedSince:         2000,
			ObservedMultiple:      true,
			ObservedLabel:         "%s（观察日）",
			SubstitutedLabel:      "休息日（%s日起取代）",
			SubstitutedDateFormat: "2006-01-02",
			Special: map[int][]holidays.Special{
				2012: {{Month: jun, Day: 22, Name: "端午节", Observed: true}},
				2015: {{Month: oct, Day: 6, Name: "中秋节", Observed: true}},
				2020: {
					{Month: jan, Day: 30, Name: "春节", Observed: true},
					{Month: oct, Day: 6, Name: "中秋节", Observed: true},
				},
				2022: {
					dayOff(jan, 31, d(2022, jan, 29)),
					dayOff(feb, 4, d(2022, jan, 30)),
					dayOff(apr, 4, d(2022, apr, 2)),
					dayOff(may, 3, d(2022, apr, 24)),
					dayOff(may, 4, d(2022, may, 7)),
					dayOff(oct, 6, d(2022, oct, 8)),
					dayOff(oct, 7, d(2022, oct, 9)),
				},
				2023: {
					dayOff(jan, 26, d(2023, jan, 28)),
					dayOff(jan, 27, d(2023, jan, 29)),
					dayOff(may, 2, d(2023, apr, 23)),
					dayOff(may, 3, d(2023, may, 6)),
					dayOff(jun, 23, d(2023, jun, 25)),
					dayOff(oct, 5, d(2023, oct, 7)),
					dayOff(oct, 6, d(2023, oct, 8)),
				},
				2024: {
					dayOff(feb, 15, d(2024, feb, 4)),
					dayOff(feb, 16, d(2024, feb, 18)),
					dayOff(apr, 5, d(2024, apr, 7)),
					dayOff(may, 2, d(2024, apr, 28)),
					dayOff(may, 3, d(2024, may, 11)),
					dayOff(sep, 16, d(2024, sep, 14)),
					dayOff(oct, 4, d(2024, sep, 29)),
					dayOff(oct, 7, d(2024, oct, 12)),
				},
				2025: {
					dayOff(feb, 3, d(2025, jan, 26)),
					dayOff(feb, 4, d(2025, feb, 8)),
					dayOff(may, 5, d(2025, apr, 27)),
					dayOff(oct, 7, d(2025, sep, 28)),
					dayOff(oct, 8, d(2025, oct, 11)),
				},
			},
		},
		populators: map[holidays.Category]holidays.Populator{
			holidays.Public:  populateChina,
			holidays.HalfDay: populateChinaHalfDay,
		},
		translations: map[string]map[string]string{
			"en_US": {
				"元旦":          "New Year's Day",
				"春节":          "Chinese New Year (Spring Festival)",
				"农历除夕":        "Chinese New Year's Eve",
				"劳动节":         "Labor Day",
				"国庆节":         "National Day",
				"清明节":         "Tomb-Sweeping Day",
				"端午节":         "Dragon Boat Festival",
				"中秋节":         "Mid-Autumn Festival",
				"国际妇女节":       "International Women's Day",
				"五四青年节":       "Youth Day",
				"六一儿童节":       "Children's Day",
				"建军节":         "Army Day",
				"%s（观察日）":     "%s (observed)",
				"休息日（%s日起取代）": "Day off (substituted from %s)",
				"2006-01-02":  "01/02/2006",
			},
		},
	}
}

func populateChina(b *holidays.Builder) {
	year := b.Year()

	b.Observed(b.International.AddNewYearsDay("元旦"))

	b.Observed(
		b.Chinese.AddNewYearsDay("春节"),
		b.Chinese.AddNewYearsDayTwo("春节"),
	)
	if year >= 2008 && year <= 2013 {
		b.Observed(b.Chinese.AddNewYearsEve("农历除夕"))
	} else {
		b.Observed(b.Chinese.AddNewYearsDayThree("春节"))
	}
	if year >= 2025 {
		b.Observed(b.Chinese.AddNewYearsEve("农历除夕"))
	}

	b.Observed(b.International.AddLaborDay("劳动节"))
	switch {
	case year >= 2000 && year <= 2007:
		b.Observed(
			b.International.AddLaborDayTwo("劳动节"),
			b.International.AddLaborDayThree("劳动节"),
		)
	case year >= 2025:
		b.Observed(b.International.AddLaborDayTwo("劳动节"))
	}

	b.Observed(
		b.AddDate(oct, 1, "国庆节"),
		b.AddDate(oct, 2, "国庆节"),
	)
	if year >= 1999 {
		b.Observed(b.AddDate(oct, 3, "国庆节"))
	}

	if year >= 2008 {
		b.Observed(b.Chinese.AddQingmingFestival("清明节"))

		// Observed days for these two years are declared as specials.
		dragonBoat := b.Chinese.AddDragonBoatFestival("端午节")
		if year != 2012 {
			b.Observed(dragonBoat)
		}
		midAutumn := b.Chinese.AddMidAutumnFestival("中秋节")
		if year != 2015 {
			b.Observed(midAutumn)
		}
	}
}

func populateChinaHalfDay(b *holidays.Builder) {
	b.International.AddWomensDay("国际妇女节")
	b.AddDate(may, 4, "五四青年节")
	b.International.AddChildrensDay("六一儿童节")
	b.AddDate(aug, 1, "建军节")
}
