package holidays

import (
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/hijri"
	"github.com/zapponejosh/holidays-api/internal/lunisolar"
	"github.com/zapponejosh/holidays-api/internal/mandaean"
)

// Engines are immutable once built and shared by every builder.
var (
	chineseEngine   = lunisolar.NewChinese()
	burmeseEngine   = lunisolar.NewBurmese()
	mongolianEngine = lunisolar.NewMongolian()
	mandaeanEngine  = mandaean.New()
	hijriEngine     = hijri.New()
)

// ============================================================================
// Christian
// ============================================================================

// Christian adds Christmas, Easter and the feasts dated from them.
type Christian struct {
	b        *Builder
	Calendar ChristianCalendar
}

// With returns a copy of c dated by another calendar, for countries that
// observe both Easters.
func (c *Christian) With(cal ChristianCalendar) *Christian {
	return &Christian{b: c.b, Calendar: cal}
}

func (c *Christian) julian() bool {
	return c.Calendar == JulianCalendar || c.Calendar == EthiopianCalendar
}

// EasterSunday returns Easter for the builder's year.
func (c *Christian) EasterSunday() time.Time {
	method := calendar.EasterWestern
	if c.Calendar != GregorianCalendar {
		method = calendar.EasterOrthodox
	}
	return calendar.Easter(c.b.year, method)
}

// ChristmasDay returns Christmas for the builder's year.
func (c *Christian) ChristmasDay() time.Time {
	if c.julian() {
		return calendar.JulianChristmas(c.b.year)
	}
	return c.b.Date(time.December, 25)
}

func (c *Christian) fromEaster(days int, name string) time.Time {
	return c.b.Add(calendar.AddDays(c.EasterSunday(), days), name)
}

func (c *Christian) AddCarnivalSunday(name string) time.Time  { return c.fromEaster(-49, name) }
func (c *Christian) AddCarnivalMonday(name string) time.Time  { return c.fromEaster(-48, name) }
func (c *Christian) AddCarnivalTuesday(name string) time.Time { return c.fromEaster(-47, name) }
func (c *Christian) AddAshWednesday(name string) time.Time    { return c.fromEaster(-46, name) }
func (c *Christian) AddPalmSunday(name string) time.Time      { return c.fromEaster(-7, name) }
func (c *Christian) AddHolyThursday(name string) time.Time    { return c.fromEaster(-3, name) }
func (c *Christian) AddGoodFriday(name string) time.Time      { return c.fromEaster(-2, name) }
func (c *Christian) AddHolySaturday(name string) time.Time    { return c.fromEaster(-1, name) }
func (c *Christian) AddEasterSunday(name string) time.Time    { return c.fromEaster(0, name) }
func (c *Christian) AddEasterMonday(name string) time.Time    { return c.fromEaster(+1, name) }
func (c *Christian) AddEasterTuesday(name string) time.Time   { return c.fromEaster(+2, name) }
func (c *Christian) AddAscensionDay(name string) time.Time    { return c.fromEaster(+39, name) }
func (c *Christian) AddWhitSunday(name string) time.Time      { return c.fromEaster(+49, name) }
func (c *Christian) AddWhitMonday(name string) time.Time      { return c.fromEaster(+50, name) }
func (c *Christian) AddCorpusChristi(name string) time.Time   { return c.fromEaster(+60, name) }

// AddChristmasEve adds the day before Christmas.
func (c *Christian) AddChristmasEve(name string) time.Time {
	return c.b.Add(calendar.AddDays(c.ChristmasDay(), -1), name)
}

// AddChristmasDay adds Christmas.
func (c *Christian) AddChristmasDay(name string) time.Time {
	return c.b.Add(c.ChristmasDay(), name)
}

// AddChristmasDayTwo adds the day after Christmas, Boxing Day in
// Commonwealth countries.
func (c *Christian) AddChristmasDayTwo(name string) time.Time {
	return c.b.Add(calendar.AddDays(c.ChristmasDay(), 1), name)
}

// AddEpiphanyDay adds Epiphany, or Timkat under the Ethiopian calendar.
func (c *Christian) AddEpiphanyDay(name string) time.Time {
	if !c.julian() {
		return c.b.AddDate(time.January, 6, name)
	}
	y := c.b.year
	d := calendar.AddDays(calendar.Date(y, time.January, 19), calendar.JulianCalendarDrift(y-1))
	if c.Calendar == EthiopianCalendar && calendar.IsEthiopianLeapYear(y-1) {
		d = calendar.AddDays(d, 1)
	}
	return c.b.Add(d, name)
}

// AddFindingOfTrueCross adds Meskel.
func (c *Christian) AddFindingOfTrueCross(name string) time.Time {
	y := c.b.year
	d := calendar.AddDays(calendar.Date(y, time.September, 27), calendar.JulianCalendarDrift(y))
	if calendar.IsEthiopianLeapYear(y) {
		d = calendar.AddDays(d, 1)
	}
	return c.b.Add(d, name)
}

// AddAssumptionOfMaryDay adds August 15 of the provider's calendar.
func (c *Christian) AddAssumptionOfMaryDay(name string) time.Time {
	d := c.b.Date(time.August, 15)
	if c.julian() {
		d = calendar.AddDays(d, calendar.JulianCalendarDrift(c.b.year)+13)
	}
	return c.b.Add(d, name)
}

func (c *Christian) AddAllSaintsDay(name string) time.Time {
	return c.b.AddDate(time.November, 1, name)
}

func (c *Christian) AddAllSoulsDay(name string) time.Time {
	return c.b.AddDate(time.November, 2, name)
}

func (c *Christian) AddImmaculateConceptionDay(name string) time.Time {
	return c.b.AddDate(time.December, 8, name)
}

func (c *Christian) AddSaintPatricksDay(name string) time.Time {
	return c.b.AddDate(time.March, 17, name)
}

// ============================================================================
// International
// ============================================================================

// International adds fixed days observed in many countries.
type International struct {
	b *Builder
}

func (i *International) AddNewYearsDay(name string) time.Time {
	return i.b.AddDate(time.January, 1, name)
}

func (i *International) AddNewYearsDayTwo(name string) time.Time {
	return i.b.AddDate(time.January, 2, name)
}

func (i *International) AddNewYearsEve(name string) time.Time {
	return i.b.AddDate(time.December, 31, name)
}

func (i *International) AddWomensDay(name string) time.Time {
	return i.b.AddDate(time.March, 8, name)
}

func (i *International) AddLaborDay(name string) time.Time {
	return i.b.AddDate(time.May, 1, name)
}

func (i *International) AddLaborDayTwo(name string) time.Time {
	return i.b.AddDate(time.May, 2, name)
}

func (i *International) AddLaborDayThree(name string) time.Time {
	return i.b.AddDate(time.May, 3, name)
}

func (i *International) AddChildrensDay(name string) time.Time {
	return i.b.AddDate(time.June, 1, name)
}

func (i *International) AddRemembranceDay(name string) time.Time {
	return i.b.AddDate(time.November, 11, name)
}

// ============================================================================
// Islamic
// ============================================================================

// Islamic adds Hijri calendar holidays from the country's date source.
// ShowEstimated controls the estimated label on names.
type Islamic struct {
	b             *Builder
	source        hijri.Source
	ShowEstimated bool
}

// Add adds every date of kind in the year, shifted by offset days.
func (i *Islamic) Add(kind hijri.Kind, offset int, name string) []time.Time {
	src := i.source
	if src == nil {
		src = hijriEngine
	}
	years := []int{i.b.year}
	if offset != 0 {
		years = []int{i.b.year - 1, i.b.year}
	}
	var added []time.Time
	for _, y := range years {
		for _, d := range src.Dates(kind, y) {
			dt := i.b.AddEstimated(calendar.AddDays(d.Time, offset), name, d.Estimated, i.ShowEstimated)
			if !dt.IsZero() {
				added = append(added, dt)
			}
		}
	}
	return added
}

func (i *Islamic) AddIslamicNewYearDay(name string) []time.Time {
	return i.Add(hijri.IslamicNewYear, 0, name)
}

func (i *Islamic) AddAshuraDay(name string) []time.Time {
	return i.Add(hijri.Ashura, 0, name)
}

func (i *Islamic) AddProphetDeathDay(name string) []time.Time {
	return i.Add(hijri.ProphetDeath, 0, name)
}

func (i *Islamic) AddMawlidDay(name string) []time.Time {
	return i.Add(hijri.Mawlid, 0, name)
}

func (i *Islamic) AddIsraMirajDay(name string) []time.Time {
	return i.Add(hijri.IsraMiraj, 0, name)
}

func (i *Islamic) AddEidAlFitrDay(name string) []time.Time {
	return i.Add(hijri.EidAlFitr, 0, name)
}

func (i *Islamic) AddEidAlFitrDayTwo(name string) []time.Time {
	return i.Add(hijri.EidAlFitr, 1, name)
}

func (i *Islamic) AddEidAlFitrDayThree(name string) []time.Time {
	return i.Add(hijri.EidAlFitr, 2, name)
}

func (i *Islamic) AddArafahDay(name string) []time.Time {
	return i.Add(hijri.Arafah, 0, name)
}

func (i *Islamic) AddEidAlAdhaDay(name string) []time.Time {
	return i.Add(hijri.EidAlAdha, 0, name)
}

func (i *Islamic) AddEidAlAdhaDayTwo(name string) []time.Time {
	return i.Add(hijri.EidAlAdha, 1, name)
}

func (i *Islamic) AddEidAlAdhaDayThree(name string) []time.Time {
	return i.Add(hijri.EidAlAdha, 2, name)
}

func (i *Islamic) AddEidAlAdhaDayFour(name string) []time.Time {
	return i.Add(hijri.EidAlAdha, 3, name)
}

func (i *Islamic) AddEidAlGhadirDay(name string) []time.Time {
	return i.Add(hijri.EidAlGhadir, 0, name)
}

// ============================================================================
// Chinese
// ============================================================================

// Chinese adds Chinese lunisolar holidays.
type Chinese struct {
	b *Builder
}

func (c *Chinese) add(d time.Time, ok bool, offset int, name string) time.Time {
	if !ok {
		return time.Time{}
	}
	return c.b.Add(calendar.AddDays(d, offset), name)
}

func (c *Chinese) newYear(offset int, name string) time.Time {
	d, ok := chineseEngine.NewYear(c.b.year)
	return c.add(d, ok, offset, name)
}

func (c *Chinese) AddNewYearsEve(name string) time.Time      { return c.newYear(-1, name) }
func (c *Chinese) AddNewYearsDay(name string) time.Time      { return c.newYear(0, name) }
func (c *Chinese) AddNewYearsDayTwo(name string) time.Time   { return c.newYear(1, name) }
func (c *Chinese) AddNewYearsDayThree(name string) time.Time { return c.newYear(2, name) }
func (c *Chinese) AddNewYearsDayFour(name string) time.Time  { return c.newYear(3, name) }

// QingmingDate returns the Qingming festival, April 4 or 5.
func (c *Chinese) QingmingDate() time.Time {
	y := c.b.year
	day := 5
	if y%4 < 1 || (y%4 < 2 && y >= 2009) {
		day = 4
	}
	return calendar.Date(y, time.April, day)
}

func (c *Chinese) AddQingmingFestival(name string) time.Time {
	return c.b.Add(c.QingmingDate(), name)
}

func (c *Chinese) AddDragonBoatFestival(name string) time.Time {
	d, ok := chineseEngine.DragonBoat(c.b.year)
	return c.add(d, ok, 0, name)
}

func (c *Chinese) AddMidAutumnFestival(name string) time.Time {
	d, ok := chineseEngine.MidAutumn(c.b.year)
	return c.add(d, ok, 0, name)
}

func (c *Chinese) AddDoubleNinthFestival(name string) time.Time {
	d, ok := chineseEngine.DoubleNinth(c.b.year)
	return c.add(d, ok, 0, name)
}

func (c *Chinese) AddBuddhaBirthday(name string) time.Time {
	d, ok := chineseEngine.BuddhaBirthday(c.b.year)
	return c.add(d, ok, 0, name)
}

// ============================================================================
// Burmese
// ============================================================================

// Burmese adds Myanmar lunisolar holidays.
type Burmese struct {
	b *Builder
}

func (m *Burmese) add(d time.Time, ok bool, offset int, name string) time.Time {
	if !ok {
		return time.Time{}
	}
	return m.b.Add(calendar.AddDays(d, offset), name)
}

// AddThingyan adds the water festival from the day before Akya through the
// day after Atat. extraBefore adds days ahead of that; a positive
// extraAfter replaces the end with Akya plus extraAfter days.
func (m *Burmese) AddThingyan(name string, extraBefore, extraAfter int) []time.Time {
	akya, atat, ok := burmeseEngine.Thingyan(m.b.year)
	if !ok {
		return nil
	}
	begin := -1 - extraBefore
	end := extraAfter
	if end == 0 {
		end = calendar.DaysBetween(akya, atat) + 1
	}
	var added []time.Time
	for delta := begin; delta < end; delta++ {
		if d := m.b.Add(calendar.AddDays(akya, delta), name); !d.IsZero() {
			added = append(added, d)
		}
	}
	return added
}

// AddKarenNewYear adds the 1st waxing day of Pyatho. It falls either side
// of January 1, so both Burmese years are tried.
func (m *Burmese) AddKarenNewYear(name string) []time.Time {
	var added []time.Time
	for _, y := range []int{m.b.year - 1, m.b.year} {
		d, ok := burmeseEngine.PyathoWaxingMoon(y)
		if dt := m.add(d, ok, 0, name); !dt.IsZero() {
			added = append(added, dt)
		}
	}
	return added
}

func (m *Burmese) AddKasonFullMoonDay(name string) time.Time {
	d, ok := burmeseEngine.KasonFullMoon(m.b.year)
	return m.add(d, ok, 0, name)
}

func (m *Burmese) AddWasoFullMoonDay(name string) time.Time {
	d, ok := burmeseEngine.WasoFullMoon(m.b.year)
	return m.add(d, ok, 0, name)
}

func (m *Burmese) AddThadingyutFullMoonEve(name string) time.Time {
	d, ok := burmeseEngine.ThadingyutFullMoon(m.b.year)
	return m.add(d, ok, -1, name)
}

func (m *Burmese) AddThadingyutFullMoonDay(name string) time.Time {
	d, ok := burmeseEngine.ThadingyutFullMoon(m.b.year)
	return m.add(d, ok, 0, name)
}

func (m *Burmese) AddThadingyutFullMoonDayTwo(name string) time.Time {
	d, ok := burmeseEngine.ThadingyutFullMoon(m.b.year)
	return m.add(d, ok, 1, name)
}

// AddDiwali adds the 1st waxing day of Tazaungmon.
func (m *Burmese) AddDiwali(name string) time.Time {
	d, ok := burmeseEngine.TazaungmonWaxingMoon(m.b.year)
	return m.add(d, ok, 0, name)
}

func (m *Burmese) AddTazaungmonFullMoonDay(name string) time.Time {
	d, ok := burmeseEngine.TazaungmonFullMoon(m.b.year)
	return m.add(d, ok, 0, name)
}

// AddNationalDay adds the 10th day after the Tazaungmon full moon.
func (m *Burmese) AddNationalDay(name string) time.Time {
	d, ok := burmeseEngine.TazaungmonFullMoon(m.b.year)
	return m.add(d, ok, 10, name)
}

// AddTabaungFullMoonDay adds the full moon closing the previous Burmese year.
func (m *Burmese) AddTabaungFullMoonDay(name string) time.Time {
	d, ok := burmeseEngine.TabaungFullMoon(m.b.year - 1)
	return m.add(d, ok, 0, name)
}

// ============================================================================
// Mongolian
// ============================================================================

// Mongolian adds Mongolian lunisolar holidays.
type Mongolian struct {
	b *Builder
}

func (m *Mongolian) tsagaanSar(offset int, name string) time.Time {
	d, ok, err := mongolianEngine.TsagaanSar(m.b.year)
	if err != nil {
		m.b.fail(err)
		return time.Time{}
	}
	if !ok {
		return time.Time{}
	}
	return m.b.Add(calendar.AddDays(d, offset), name)
}

func (m *Mongolian) AddTsagaanSar(name string) time.Time         { return m.tsagaanSar(0, name) }
func (m *Mongolian) AddTsagaanSarDayTwo(name string) time.Time   { return m.tsagaanSar(1, name) }
func (m *Mongolian) AddTsagaanSarDayThree(name string) time.Time { return m.tsagaanSar(2, name) }

func (m *Mongolian) AddBuddhaDay(name string) time.Time {
	d, ok := mongolianEngine.BuddhaDay(m.b.year)
	if !ok {
		return time.Time{}
	}
	return m.b.Add(d, name)
}

func (m *Mongolian) AddGenghisKhanDay(name string) time.Time {
	d, ok := mongolianEngine.GenghisKhanDay(m.b.year)
	if !ok {
		return time.Time{}
	}
	return m.b.Add(d, name)
}

// ============================================================================
// Mandaean
// ============================================================================

// Mandaean adds Mandaean festivals. Each Mandaean year straddles two
// Gregorian years, so both are tried.
type Mandaean struct {
	b *Builder
}

func (m *Mandaean) add(name string, date func(int) (time.Time, bool), days int) []time.Time {
	var added []time.Time
	for _, y := range []int{m.b.year - 1, m.b.year} {
		start, ok := date(y)
		if !ok {
			continue
		}
		for i := 0; i < days; i++ {
			if d := m.b.Add(calendar.AddDays(start, i), name); !d.IsZero() {
				added = append(added, d)
			}
		}
	}
	return added
}

// AddParwanaya adds the five intercalary days.
func (m *Mandaean) AddParwanaya(name string) []time.Time {
	return m.add(name, mandaeanEngine.ParwanayaStart, 5)
}

// AddDehwaRabba adds the Mandaean new year, days 1 and 2 of month 1.
func (m *Mandaean) AddDehwaRabba(name string) []time.Time {
	return m.add(name, mandaeanEngine.NewYear, 2)
}

func (m *Mandaean) AddDehwaHanina(name string) []time.Time {
	return m.add(name, mandaeanEngine.DehwaHanina, 1)
}

func (m *Mandaean) AddDehwaDaimana(name string) []time.Time {
	return m.add(name, mandaeanEngine.DehwaDaimana, 1)
}
