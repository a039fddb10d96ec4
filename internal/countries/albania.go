package countries

import (
	"github.com/zapponejosh/holidays-api/internal/hijri"
	"github.com/zapponejosh/holidays-api/internal/holidays"
	"github.com/zapponejosh/holidays-api/internal/observed"
)

func albania() *Country {
	return &Country{
		config: holidays.Config{
			Code:                "AL",
			Alpha3:              "ALB",
			Name:                "Albania",
			DefaultLanguage:     "sq",
			SupportedLanguages:  []string{"en_US", "sq"},
			SupportedCategories: []holidays.Category{holidays.Public},
			StartYear:           1993,
			ObservedRule:        observed.SatSunToNextWorkday,
			EstimatedLabel:      "%s (e vlerësuar)",
			ObservedLabel:       "%s (ditë pushimi e shtyrë)",
			Islamic:             albaniaIslamic,
			Special: map[int][]holidays.Special{
				2007: {{Month: jan, Day: 3, Name: "Dita e Kurban Bajramit", Observed: true}},
				2020: {{Month: jan, Day: 3, Name: "Ditë pushimi"}},
				2022: {{Month: mar, Day: 21, Name: "Ditë pushimi"}},
				2024: {{Month: mar, Day: 15, Name: "Ditë pushimi"}},
			},
		},
		populators: map[holidays.Category]holidays.Populator{
			holidays.Public: populateAlbania,
		},
		translations: map[string]map[string]string{
			"en_US": {
				"Festat e Vitit të Ri":                  "New Year's Day",
				"Dita e Verës":                          "Summer Day",
				"Dita e Nevruzit":                       "Nowruz Day",
				"E diela e Pashkëve Katolike":           "Catholic Easter Sunday",
				"E diela e Pashkëve Ortodokse":          "Orthodox Easter Sunday",
				"Dita Ndërkombëtare e Punëtorëve":       "International Workers' Day",
				"Dita e Lumturimit të Shenjt Terezës":   "Mother Teresa Beatification Day",
				"Dita e Shenjtërimit të Shenjt Terezës": "Mother Teresa Canonization Day",
				"Dita e Alfabetit":                      "Alphabet Day",
				"Dita Flamurit dhe e Pavarësisë":        "Flag and Independence Day",
				"Dita e Çlirimit":                       "Liberation Day",
				"Dita Kombëtare e Rinisë":               "National Youth Day",
				"Krishtlindjet":                         "Christmas Day",
				"Dita e Bajramit të Madh":               "Eid al-Fitr",
				"Dita e Kurban Bajramit":                "Eid al-Adha",
				"Ditë pushimi":                          "Public Holiday",
				"%s (ditë pushimi e shtyrë)":            "%s (observed)",
				"%s (e vlerësuar)":                      "%s (estimated)",
			},
		},
	}
}

func populateAlbania(b *holidays.Builder) {
	year := b.Year()

	b.Observed(
		b.International.AddNewYearsDay("Festat e Vitit të Ri"),
		b.International.AddNewYearsDayTwo("Festat e Vitit të Ri"),
	)
	if year >= 2004 {
		b.Observed(b.AddDate(mar, 14, "Dita e Verës"))
	}
	if year >= 1996 {
		b.Observed(b.AddDate(mar, 22, "Dita e Nevruzit"))
	}
	b.Observed(
		b.Christian.AddEasterSunday("E diela e Pashkëve Katolike"),
		b.Christian.With(holidays.JulianCalendar).AddEasterSunday("E diela e Pashkëve Ortodokse"),
	)
	b.Observed(b.International.AddLaborDay("Dita Ndërkombëtare e Punëtorëve"))

	switch {
	case year >= 2018:
		b.Observed(b.AddDate(sep, 5, "Dita e Shenjtërimit të Shenjt Terezës"))
	case year >= 2004:
		b.Observed(b.AddDate(oct, 19, "Dita e Lumturimit të Shenjt Terezës"))
	}
	if year >= 2024 {
		b.Observed(b.AddDate(nov, 22, "Dita e Alfabetit"))
	}
	b.Observed(
		b.AddDate(nov, 28, "Dita Flamurit dhe e Pavarësisë"),
		b.AddDate(nov, 29, "Dita e Çlirimit"),
	)
	if year >= 2009 {
		b.Observed(b.AddDate(dec, 8, "Dita Kombëtare e Rinisë"))
	}
	b.Observed(b.Christian.AddChristmasDay("Krishtlindjet"))

	b.Observed(b.Islamic.AddEidAlFitrDay("Dita e Bajramit të Madh")...)
	b.Observed(b.Islamic.AddEidAlAdhaDay("Dita e Kurban Bajramit")...)
}

var albaniaIslamic = &hijri.Custom{
	Confirmed: map[hijri.Kind]map[int][]hijri.MonthDay{
		hijri.EidAlFitr: {
			2001: one(dec, 16),
			2002: one(dec, 5),
			2003: one(nov, 25),
			2004: one(nov, 14),
			2005: one(nov, 3),
			2006: one(oct, 23),
			2007: one(oct, 13),
			2008: one(oct, 1),
			2009: one(sep, 20),
			2010: one(sep, 10),
			2011: one(aug, 30),
			2012: one(aug, 19),
			2013: one(aug, 8),
			2014: one(jul, 28),
			2015: one(jul, 17),
			2016: one(jul, 6),
			2017: one(jun, 25),
			2018: one(jun, 15),
			2019: one(jun, 4),
			2020: one(may, 24),
			2021: one(may, 13),
			2022: one(may, 2),
			2023: one(apr, 21),
			2024: one(apr, 10),
			2025: one(mar, 30),
		},
		hijri.EidAlAdha: {
			2001: one(mar, 6),
			2002: one(feb, 23),
			2003: one(feb, 12),
			2004: one(feb, 2),
			2005: one(jan, 21),
			2006: {md(jan, 10), md(dec, 31)},
			2007: one(dec, 20),
			2008: one(dec, 8),
			2009: one(nov, 27),
			2010: one(nov, 16),
			2011: one(nov, 6),
			2012: one(oct, 26),
			2013: one(oct, 15),
			2014: one(oct, 4),
			2015: one(sep, 24),
			2016: one(sep, 11),
			2017: one(sep, 1),
			2018: one(aug, 21),
			2019: one(aug, 11),
			2020: one(jul, 31),
			2021: one(jul, 20),
			2022: one(jul, 9),
			2023: one(jun, 28),
			2024: one(jun, 16),
			2025: one(jun, 6),
		},
	},
}
