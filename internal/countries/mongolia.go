package countries

import (
	"github.com/zapponejosh/holidays-api/internal/holidays"
)

func mongolia() *Country {
	return &Country{
		config: holidays.Config{
			Code:                "MN",
			Alpha3:              "MNG",
			Name:                "Mongolia",
			DefaultLanguage:     "mn",
			SupportedLanguages:  []string{"en_US", "mn"},
			SupportedCategories: []holidays.Category{holidays.Public, holidays.Workday},
			StartYear:           2004,
			EstimatedLabel:      "%s (урьдчилсан)",
		},
		populators: map[holidays.Category]holidays.Populator{
			holidays.Public:  populateMongolia,
			holidays.Workday: populateMongoliaWorkday,
		},
		translations: map[string]map[string]string{
			"en_US": {
				"Шинэ жил":   "New Year's Day",
				"Цагаан сар": "Lunar New Year",
				"Олон улсын эмэгтэйчүүдийн өдөр":                               "International Women's Day",
				"Хүүхдийн баяр":                                                "Children's Day",
				"Бурхан багшийн Их дүйчин өдөр":                                "The Buddha's Birthday",
				"Үндэсний их баяр наадам, Ардын хувьсгалын ойн баяр":           "National Festival and People's Revolution Anniversary",
				"Их Эзэн Чингис хааны өдөр":                                    "Genghis Khan's Birthday",
				"Бүгд Найрамдах Улс тунхагласан өдөр":                          "Republic Day",
				"Бүгд Найрамдах Улс тунхагласны баяр":                          "Republic Holiday",
				"Үндэсний эрх чөлөө, тусгаар тогтнолоо сэргээсний баярын өдөр": "National Freedom and Independence Day",
				"Монгол Улсын Үндсэн хуулийн өдөр":                             "Constitution Day",
				"Эх орончдын өдөр":                                             "Patriots' Day",
				"Монгол цэргийн өдөр":                                          "Military Day",
				"Зэвсэгт хүчний өдөр":                                          "Armed Forces Day",
				"Эрүүл мэндийг хамгаалах өдөр":                                 "Health Protection Day",
				"Оюуны өмчийг хамгаалах өдөр":                                  "Intellectual Property Protection Day",
				"Гэр бүлийн өдөр":                                              "Family Day",
				"Монгол Улсын төрийн далбааны өдөр":                            "National Flag Day",
				"Залуучуудын өдөр":                                             "Youth Day",
				"Шинэ ургацын өдрүүд":                                          "New Harvest Days",
				"Улс төрийн хэлмэгдэгсдийн дурсгалын өдөр":                     "Memorial Day of Political Victims",
				"Ахмадын өдөр":                                                 "Elders' Day",
				"Монгол Улсын нийслэл хотын өдөр":                              "Capital City Day",
				"Монгол Улсын Нийслэлийн өдөр":                                 "Capital Day",
				"Ардчилал, хүний эрхийн өдөр":                                  "Democracy and Human Rights Day",
				"Үндэсний эрх чөлөөний өдөр":                                   "National Freedom Day",
				"%s (урьдчилсан)":                                              "%s (estimated)",
			},
		},
	}
}

func populateMongolia(b *holidays.Builder) {
	year := b.Year()

	b.International.AddNewYearsDay("Шинэ жил")

	b.Mongolian.AddTsagaanSar("Цагаан сар")
	b.Mongolian.AddTsagaanSarDayTwo("Цагаан сар")
	if year >= 2014 {
		b.Mongolian.AddTsagaanSarDayThree("Цагаан сар")
	}

	b.International.AddWomensDay("Олон улсын эмэгтэйчүүдийн өдөр")
	b.International.AddChildrensDay("Хүүхдийн баяр")
	if year >= 2020 {
		b.Mongolian.AddBuddhaDay("Бурхан багшийн Их дүйчин өдөр")
	}

	naadam := "Үндэсний их баяр наадам, Ардын хувьсгалын ойн баяр"
	switch {
	case year >= 2023:
		span(b, b.Date(jul, 10), 6, naadam)
	case year >= 2014:
		span(b, b.Date(jul, 11), 5, naadam)
	default:
		span(b, b.Date(jul, 11), 3, naadam)
	}

	if year >= 2012 {
		b.Mongolian.AddGenghisKhanDay("Их Эзэн Чингис хааны өдөр")
	}
	switch {
	case year >= 2016:
		b.AddDate(nov, 26, "Бүгд Найрамдах Улс тунхагласан өдөр")
	case year <= 2011:
		b.AddDate(nov, 26, "Бүгд Найрамдах Улс тунхагласны баяр")
	}
	if year >= 2011 {
		b.AddDate(dec, 29, "Үндэсний эрх чөлөө, тусгаар тогтнолоо сэргээсний баярын өдөр")
	}
}

// populateMongoliaWorkday adds days of observation that are not days off.
func populateMongoliaWorkday(b *holidays.Builder) {
	year := b.Year()

	b.AddDate(jan, 13, "Монгол Улсын Үндсэн хуулийн өдөр")
	if year >= 2005 {
		b.AddDate(mar, 1, "Эх орончдын өдөр")
	}
	if year >= 2011 {
		b.AddDate(mar, 18, "Монгол цэргийн өдөр")
	} else {
		b.AddDate(mar, 18, "Зэвсэгт хүчний өдөр")
	}
	b.AddDate(apr, 7, "Эрүүл мэндийг хамгаалах өдөр")
	b.AddDate(apr, 26, "Оюуны өмчийг хамгаалах өдөр")
	b.AddDate(may, 15, "Гэр бүлийн өдөр")
	if year >= 2009 {
		b.AddDate(jul, 10, "Монгол Улсын төрийн далбааны өдөр")
	}
	b.AddDate(aug, 25, "Залуучуудын өдөр")
	if year >= 2007 {
		span(b, b.Date(sep, 5), 46, "Шинэ ургацын өдрүүд")
	}
	b.AddDate(sep, 10, "Улс төрийн хэлмэгдэгсдийн дурсгалын өдөр")
	b.AddDate(oct, 1, "Ахмадын өдөр")
	if year >= 2021 {
		b.AddDate(oct, 29, "Монгол Улсын нийслэл хотын өдөр")
	} else {
		b.AddDate(oct, 29, "Монгол Улсын Нийслэлийн өдөр")
	}
	if year >= 2012 && year <= 2015 {
		b.AddDate(nov, 26, "Бүгд Найрамдах Улс тунхагласан өдөр")
	}
	b.AddDate(dec, 10, "Ардчилал, хүний эрхийн өдөр")
	if year >= 2007 && year <= 2010 {
		b.AddDate(dec, 29, "Үндэсний эрх чөлөөний өдөр")
	}
}
