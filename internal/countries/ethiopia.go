package countries

import (
	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/hijri"
	"github.com/zapponejosh/holidays-api/internal/holidays"
)

func ethiopia() *Country {
	return &Country{
		config: holidays.Config{
			Code:                "ET",
			Alpha3:              "ETH",
			Name:                "Ethiopia",
			DefaultLanguage:     "am",
			SupportedLanguages:  []string{"am", "ar", "en_US"},
			SupportedCategories: []holidays.Category{holidays.Public},
			StartYear:           1897,
			ChristianCalendar:   holidays.EthiopianCalendar,
			Islamic:             ethiopiaIslamic,
		},
		populators: map[holidays.Category]holidays.Populator{
			holidays.Public: populateEthiopia,
		},
		translations: map[string]map[string]string{
			"en_US": {
				"ገና":            "Christmas Day",
				"ጥምቀት":          "Epiphany Day",
				"አድዋ":           "Adwa Victory Day",
				"ስቅለት":          "Good Friday",
				"ፋሲካ":           "Easter Sunday",
				"የሰራተኞች ቀን":     "Workers' Day",
				"የአርበኞች ቀን":     "Patriots' Day",
				"ደርግ የወደቀበት ቀን": "Downfall of Dergue Regime Day",
				"እንቁጣጣሽ":        "Ethiopian New Year",
				"መስቀል":          "Finding of True Cross",
				"የአብዮት ቀን":      "Revolution Day",
				"የጥቅምት አብዮት ቀን": "October Revolution Day",
				"ኢድ አልፈጥር":      "Eid al-Fitr",
				"አረፋ":           "Eid al-Adha",
				"መውሊድ":          "Prophet's Birthday",
			},
			"ar": {
				"ገና":            "عيد الميلاد",
				"ጥምቀት":          "عيد الغطاس",
				"አድዋ":           "العدوة",
				"ስቅለት":          "جمعة جيدة",
				"ፋሲካ":           "عيد الفصح",
				"የሰራተኞች ቀን":     "يوم العمال",
				"የአርበኞች ቀን":     "يوم الوطنيين",
				"ደርግ የወደቀበት ቀን": "يوم سقوط ديرج",
				"እንቁጣጣሽ":        "السنة الإثيوبية الجديدة",
				"መስቀል":          "مسكل",
				"ኢድ አልፈጥር":      "عيد الفطر",
				"አረፋ":           "عيد الأضحى",
				"መውሊድ":          "عيد المولد النبوي",
			},
		},
	}
}

// newYearDay returns Enkutatash, September 11 or the 12th before an
// Ethiopian leap year.
func newYearDay(year int) int {
	if calendar.IsEthiopianLeapYear(year) {
		return 12
	}
	return 11
}

func populateEthiopia(b *holidays.Builder) {
	year := b.Year()
	b.Islamic.ShowEstimated = false

	b.Christian.AddChristmasDay("ገና")
	b.Christian.AddEpiphanyDay("ጥምቀት")
	b.AddDate(mar, 2, "አድዋ")
	b.Christian.AddGoodFriday("ስቅለት")
	b.Christian.AddEasterSunday("ፋሲካ")
	b.International.AddLaborDay("የሰራተኞች ቀን")
	if year >= 1942 {
		b.AddDate(may, 5, "የአርበኞች ቀን")
	}
	if year >= 1992 {
		b.AddDate(may, 28, "ደርግ የወደቀበት ቀን")
	}

	b.AddDate(sep, newYearDay(year), "እንቁጣጣሽ")
	b.Christian.AddFindingOfTrueCross("መስቀል")

	if year >= 1975 && year <= 1990 {
		b.AddDate(sep, newYearDay(year)+1, "የአብዮት ቀን")
		b.AddDate(nov, 7, "የጥቅምት አብዮት ቀን")
	}

	b.Islamic.AddEidAlFitrDay("ኢድ አልፈጥር")
	b.Islamic.AddEidAlAdhaDay("አረፋ")
	b.Islamic.AddMawlidDay("መውሊድ")
}

var ethiopiaIslamic = &hijri.Custom{
	Confirmed: map[hijri.Kind]map[int][]hijri.MonthDay{
		hijri.EidAlFitr: {
			2018: one(jun, 15),
			2019: one(jun, 4),
			2020: one(may, 24),
			2021: one(may, 13),
			2022: one(may, 2),
			2023: one(apr, 21),
		},
		hijri.EidAlAdha: {
			2018: one(aug, 22),
			2019: one(aug, 11),
			2020: one(jul, 31),
			2021: one(jul, 20),
			2022: one(jul, 9),
			2023: one(jun, 28),
		},
		hijri.Mawlid: {
			2018: one(nov, 21),
			2019: one(nov, 10),
			2020: one(oct, 29),
			2021: one(oct, 18),
			2022: one(oct, 8),
			2023: one(sep, 27),
		},
	},
}
