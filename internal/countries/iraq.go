package countries

import (
	"time"

	"github.com/zapponejosh/holidays-api/internal/hijri"
	"github.com/zapponejosh/holidays-api/internal/holidays"
)

func iraq() *Country {
	return &Country{
		config: holidays.Config{
			Code:                "IQ",
			Alpha3:              "IRQ",
			Name:                "Iraq",
			DefaultLanguage:     "ar_IQ",
			SupportedLanguages:  []string{"ar_IQ", "en_US"},
			SupportedCategories: []holidays.Category{holidays.Public, holidays.Optional},
			StartYear:           1933,
			Weekend:             []time.Weekday{fri, sat},
			EstimatedLabel:      "%s (تقديري)",
			Islamic:             iraqIslamic,
		},
		populators: map[holidays.Category]holidays.Populator{
			holidays.Public:   populateIraq,
			holidays.Optional: populateIraqOptional,
		},
		translations: map[string]map[string]string{
			"en_US": {
				"رأس السنة الجديدة":    "New Year's Day",
				"يوم عيد الميلاد":      "Christmas Day",
				"رأس السنة الهجرية":    "Islamic New Year",
				"عاشوراء":              "Ashura",
				"عيد العمال":           "Labor Day",
				"عيد الغدير":           "Eid al-Ghadir",
				"المولد النبوي الشريف": "Prophet's Birthday",
				"نوروز":                "Nowruz",
				"يوم الجيش":            "Army Day",
				"اليوم الوطني":         "National Day",
				"يوم الجمهورية":        "Republic Day",
				"يوم النصر":            "Victory Day",
				"عيد الفطر":            "Eid al-Fitr",
				"عيد الأضحى":           "Eid al-Adha",
				"عيد الفصح":            "Easter",
				"البرونايا":            "Parwanaya",
				"دهوا ربا":             "Mandaean New Year",
				"دهوا هنينا":           "Little Feast",
				"دهوا ديمانا":          "Feast of Baptism",
				"%s (تقديري)":          "%s (estimated)",
			},
		},
	}
}

func populateIraq(b *holidays.Builder) {
	year := b.Year()
	if year == 2021 || year == 2022 {
		b.Islamic.ShowEstimated = false
	}

	b.International.AddNewYearsDay("رأس السنة الجديدة")
	b.AddDate(jan, 6, "يوم الجيش")
	// Nowruz is kept on the usual equinox date.
	b.AddDate(mar, 21, "نوروز")
	b.International.AddLaborDay("عيد العمال")
	if year == 2022 {
		b.AddDate(jul, 14, "يوم الجمهورية")
	} else {
		b.AddDate(jul, 14, "اليوم الوطني")
	}
	b.AddDate(oct, 3, "اليوم الوطني")
	b.AddDate(dec, 10, "يوم النصر")
	b.Christian.AddChristmasDay("يوم عيد الميلاد")

	b.Islamic.AddIslamicNewYearDay("رأس السنة الهجرية")
	b.Islamic.AddAshuraDay("عاشوراء")
	b.Islamic.AddProphetDeathDay("المولد النبوي الشريف")
	if year != 2021 && year != 2022 {
		b.Islamic.AddEidAlGhadirDay("عيد الغدير")
	}

	b.Islamic.AddEidAlFitrDay("عيد الفطر")
	b.Islamic.AddEidAlFitrDayTwo("عيد الفطر")
	b.Islamic.AddEidAlFitrDayThree("عيد الفطر")

	b.Islamic.AddEidAlAdhaDay("عيد الأضحى")
	b.Islamic.AddEidAlAdhaDayTwo("عيد الأضحى")
	b.Islamic.AddEidAlAdhaDayThree("عيد الأضحى")
	b.Islamic.AddEidAlAdhaDayFour("عيد الأضحى")
	if year == 2022 {
		b.AddDate(jul, 13, "عيد الأضحى")
	}
}

// populateIraqOptional adds the Christian and Mandaean feasts given to
// those communities.
func populateIraqOptional(b *holidays.Builder) {
	b.Christian.AddEasterSunday("عيد الفصح")
	b.Christian.AddEasterMonday("عيد الفصح")

	b.Mandaean.AddParwanaya("البرونايا")
	b.Mandaean.AddDehwaRabba("دهوا ربا")
	b.Mandaean.AddDehwaHanina("دهوا هنينا")
	b.Mandaean.AddDehwaDaimana("دهوا ديمانا")
}

var iraqIslamic = &hijri.Custom{
	Confirmed: map[hijri.Kind]map[int][]hijri.MonthDay{
		hijri.Ashura: {
			2001: one(apr, 5),
			2002: one(mar, 25),
			2003: one(mar, 14),
			2004: one(mar, 2),
			2005: one(feb, 20),
			2006: one(feb, 9),
			2007: one(jan, 30),
			2008: one(jan, 19),
			2009: {md(jan, 7), md(dec, 27)},
			2010: one(dec, 16),
			2011: one(dec, 6),
			2012: one(nov, 25),
			2013: one(nov, 14),
			2014: one(nov, 4),
			2015: one(oct, 24),
			2016: one(oct, 12),
			2017: one(oct, 1),
			2018: one(sep, 20),
			2019: one(sep, 10),
			2020: one(aug, 30),
			2021: one(aug, 19),
			2022: one(aug, 8),
			2023: one(jul, 28),
			2024: one(jul, 16),
			2025: one(jul, 6),
		},
		hijri.ProphetDeath: {
			2001: one(may, 22),
			2002: one(may, 11),
			2003: one(may, 1),
			2004: one(apr, 19),
			2005: one(apr, 8),
			2006: one(mar, 29),
			2007: one(mar, 18),
			2008: one(mar, 7),
			2009: one(feb, 24),
			2010: one(feb, 13),
			2011: one(feb, 2),
			2012: one(jan, 22),
			2013: {md(jan, 11), md(dec, 31)},
			2014: one(dec, 21),
			2015: one(dec, 10),
			2016: one(nov, 28),
			2017: one(nov, 17),
			2018: one(nov, 7),
			2019: one(oct, 27),
			2020: one(oct, 16),
			2021: one(oct, 18),
			2022: one(oct, 8),
			2023: one(sep, 14),
			2024: one(sep, 2),
			2025: one(aug, 22),
		},
		hijri.EidAlAdha: {
			2001: one(mar, 6),
			2002: one(feb, 23),
			2003: one(feb, 12),
			2004: one(feb, 2),
			2005: one(jan, 21),
			2006: {md(jan, 11), md(dec, 31)},
			2007: one(dec, 21),
			2008: one(dec, 9),
			2009: one(nov, 28),
			2010: one(nov, 17),
			2011: one(nov, 7),
			2012: one(oct, 26),
			2013: one(oct, 16),
			2014: one(oct, 5),
			2015: one(sep, 24),
			2016: one(sep, 12),
			2017: one(sep, 1),
			2018: one(aug, 22),
			2019: one(aug, 12),
			2020: one(jul, 31),
			2021: one(jul, 20),
			2022: one(jul, 9),
			2023: one(jun, 29),
			2024: one(jun, 17),
			2025: one(jun, 6),
		},
		hijri.EidAlFitr: {
			2001: one(dec, 16),
			2002: one(dec, 6),
			2003: one(nov, 26),
			2004: one(nov, 14),
			2005: one(nov, 4),
			2006: one(oct, 24),
			2007: one(oct, 13),
			2008: one(oct, 1),
			2009: one(sep, 20),
			2010: one(sep, 10),
			2011: one(aug, 31),
			2012: one(aug, 19),
			2013: one(aug, 9),
			2014: one(jul, 29),
			2015: one(jul, 18),
			2016: one(jul, 6),
			2017: one(jun, 26),
			2018: one(jun, 15),
			2019: one(jun, 5),
			2020: one(may, 24),
			2021: one(may, 13),
			2022: one(may, 2),
			2023: one(apr, 22),
			2024: one(apr, 10),
			2025: one(mar, 31),
		},
		hijri.EidAlGhadir: {
			2001: one(mar, 14),
			2002: one(mar, 3),
			2003: one(feb, 20),
			2004: one(feb, 10),
			2005: one(jan, 29),
			2006: one(jan, 19),
			2007: {md(jan, 8), md(dec, 29)},
			2008: one(dec, 17),
			2009: one(dec, 6),
			2010: one(nov, 25),
			2011: one(nov, 15),
			2012: one(nov, 3),
			2013: one(oct, 24),
			2014: one(oct, 13),
			2015: one(oct, 2),
			2016: one(sep, 20),
			2017: one(sep, 9),
			2018: one(aug, 30),
			2019: one(aug, 20),
			2020: one(aug, 8),
			2021: one(jul, 29),
			2022: one(jul, 18),
			2023: one(jul, 7),
			2024: one(jun, 25),
			2025: one(jun, 14),
		},
	},
}
