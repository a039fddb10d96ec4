package countries

import (
	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/hijri"
	"github.com/zapponejosh/holidays-api/internal/holidays"
)

func myanmar() *Country {
	d := calendar.Date
	return &Country{
		config: holidays.Config{
			Code:                  "MM",
			Alpha3:                "MMR",
			Name:                  "Myanmar",
			DefaultLanguage:       "my",
			SupportedLanguages:    []string{"en_US", "my"},
			SupportedCategories:   []holidays.Category{holidays.Public},
			StartYear:             1948,
			EstimatedLabel:        "%s (ခန့်မှန်း)",
			SubstitutedLabel:      "အလုပ်ပိတ်ရက် (%s မှ ပြန်လဲထားသည်)",
			SubstitutedDateFormat: "02-01-2006",
			// Islamic dates usually fall a day after the Umm al-Qura ones.
			Islamic: &hijri.Custom{
				ConfirmedYears: map[hijri.Kind]hijri.YearRange{
					hijri.EidAlAdha: {From: 2020, To: 2025},
				},
				DeltaDays: 1,
			},
			Special: map[int][]holidays.Special{
				2024: {dayOff(dec, 31, d(2025, jan, 11))},
				2025: {
					dayOff(mar, 12, d(2025, mar, 22)),
					dayOff(mar, 14, d(2025, mar, 29)),
					dayOff(nov, 3, d(2025, nov, 8)),
					dayOff(dec, 26, d(2026, jan, 3)),
				},
			},
		},
		populators: map[holidays.Category]holidays.Populator{
			holidays.Public: populateMyanmar,
		},
		translations: map[string]map[string]string{
			"en_US": {
				"နိုင်ငံတကာနှစ်သစ်ကူးနေ့":           "New Year's Day",
				"လွတ်လပ်ရေးနေ့":                     "Independence Day",
				"ပြည်ထောင်စုနေ့":                    "Union Day",
				"တောင်သူလယ်သမားနေ့":                 "Peasants' Day",
				"တပ်မတော်နေ့":                       "Armed Forces Day",
				"တော်လှန်ရေးနေ့":                    "Revolution Day",
				"မေဒေးနေ့":                          "May Day",
				"အာဇာနည်နေ့":                        "Martyrs' Day",
				"ခရစ္စမတ်နေ့":                       "Christmas Day",
				"အီဒုလ်အဿွဟာနေ့":                    "Eid al-Adha",
				"တရုတ်နှစ်သစ်ကူးနေ့":                "Chinese New Year",
				"မြန်မာနှစ်သစ်ကူး ရုံးပိတ်ရက်များ":  "Myanmar New Year",
				"တပေါင်းလပြည့်နေ့":                  "Full Moon Day of Tabaung",
				"ကဆုန်လပြည့်နေ့":                    "Full Moon Day of Kason",
				"ဝါဆိုလပြည့်နေ့":                    "Full Moon Day of Waso",
				"သီတင်းကျွတ်ပိတ်ရက်များ":            "Thadingyut Holidays",
				"ဒီပါဝလီနေ့":                        "Diwali",
				"တန်ဆောင်တိုင်လပြည့်နေ့":            "Full Moon Day of Tazaungmon",
				"အမျိုးသားနေ့":                      "National Day",
				"ကရင်နှစ်သစ်ကူးနေ့":                 "Karen New Year",
				"%s (ခန့်မှန်း)":                    "%s (estimated)",
				"အလုပ်ပိတ်ရက် (%s မှ ပြန်လဲထားသည်)": "Day off (substituted from %s)",
				"02-01-2006": "01/02/2006",
			},
		},
	}
}

func populateMyanmar(b *holidays.Builder) {
	year := b.Year()

	if year >= 2025 {
		b.International.AddNewYearsDay("နိုင်ငံတကာနှစ်သစ်ကူးနေ့")
	}
	b.AddDate(jan, 4, "လွတ်လပ်ရေးနေ့")
	b.AddDate(feb, 12, "ပြည်ထောင်စုနေ့")
	switch {
	case year >= 1965:
		b.AddDate(mar, 2, "တောင်သူလယ်သမားနေ့")
	case year >= 1963:
		b.AddDate(jan, 1, "တောင်သူလယ်သမားနေ့")
	}
	if year >= 1955 {
		b.AddDate(mar, 27, "တပ်မတော်နေ့")
	} else {
		b.AddDate(mar, 27, "တော်လှန်ရေးနေ့")
	}
	b.International.AddLaborDay("မေဒေးနေ့")
	b.AddDate(jul, 19, "အာဇာနည်နေ့")
	b.Christian.AddChristmasDay("ခရစ္စမတ်နေ့")
	b.Islamic.AddEidAlAdhaDay("အီဒုလ်အဿွဟာနေ့")
	if year >= 2025 {
		b.Chinese.AddNewYearsDay("တရုတ်နှစ်သစ်ကူးနေ့")
	}

	thingyan := "မြန်မာနှစ်သစ်ကူး ရုံးပိတ်ရက်များ"
	switch {
	case year >= 2024:
		b.Burmese.AddThingyan(thingyan, 0, 8)
	case year >= 2022:
		b.Burmese.AddThingyan(thingyan, 4, 0)
	case year >= 2007 && year <= 2016:
		b.Burmese.AddThingyan(thingyan, 1, 8)
	default:
		b.Burmese.AddThingyan(thingyan, 0, 0)
	}

	b.Burmese.AddTabaungFullMoonDay("တပေါင်းလပြည့်နေ့")
	b.Burmese.AddKasonFullMoonDay("ကဆုန်လပြည့်နေ့")
	b.Burmese.AddWasoFullMoonDay("ဝါဆိုလပြည့်နေ့")

	thadingyut := "သီတင်းကျွတ်ပိတ်ရက်များ"
	b.Burmese.AddThadingyutFullMoonEve(thadingyut)
	b.Burmese.AddThadingyutFullMoonDay(thadingyut)
	b.Burmese.AddThadingyutFullMoonDayTwo(thadingyut)

	b.Burmese.AddDiwali("ဒီပါဝလီနေ့")
	b.Burmese.AddTazaungmonFullMoonDay("တန်ဆောင်တိုင်လပြည့်နေ့")
	b.Burmese.AddNationalDay("အမျိုးသားနေ့")
	b.Burmese.AddKarenNewYear("ကရင်နှစ်သစ်ကူးနေ့")
}
