package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/hijri"
	"github.com/zapponejosh/holidays-api/internal/logger"
	"github.com/zapponejosh/holidays-api/internal/lunisolar"
	"github.com/zapponejosh/holidays-api/internal/mandaean"
)

var errOutOfRange = errors.New("year outside the engine window")

// engines holds one instance of every calendar engine. Their caches are
// built once and shared by all requests.
type engines struct {
	burmese   *lunisolar.Burmese
	chinese   *lunisolar.Chinese
	mongolian *lunisolar.Mongolian
	mandaean  *mandaean.Calendar
	hijri     *hijri.Calendar
}

func newEngines() *engines {
	return &engines{
		burmese:   lunisolar.NewBurmese(),
		chinese:   lunisolar.NewChinese(),
		mongolian: lunisolar.NewMongolian(),
		mandaean:  mandaean.New(),
		hijri:     hijri.New(),
	}
}

// anchors maps anchor names to dates, or to lists of dates for Hijri
// holidays that can occur twice in a year.
type anchors map[string]interface{}

func (a anchors) set(name string, d time.Time, ok bool) {
	if ok {
		a[name] = calendar.FormatDate(d)
	}
}

func (a anchors) from(name string, f func(int) (time.Time, bool), year int) {
	d, ok := f(year)
	a.set(name, d, ok)
}

func (e *engines) anchors(engine string, year int) (anchors, error) {
	a := anchors{}
	switch engine {
	case "burmese":
		if !e.burmese.InRange(year) {
			return nil, errOutOfRange
		}
		akya, atat, ok := e.burmese.Thingyan(year)
		a.set("thingyan_akya", akya, ok)
		a.set("thingyan_atat", atat, ok)
		a.from("kason_full_moon", e.burmese.KasonFullMoon, year)
		a.from("waso_full_moon", e.burmese.WasoFullMoon, year)
		a.from("thadingyut_full_moon", e.burmese.ThadingyutFullMoon, year)
		a.from("tazaungmon_full_moon", e.burmese.TazaungmonFullMoon, year)
		a.from("tabaung_full_moon", e.burmese.TabaungFullMoon, year)
		a["little_watat"] = e.burmese.IsLittleWatat(year)
		a["big_watat"] = e.burmese.IsBigWatat(year)

	case "chinese":
		if !e.chinese.InRange(year) {
			return nil, errOutOfRange
		}
		a.from("new_year", e.chinese.NewYear, year)
		a.from("buddha_birthday", e.chinese.BuddhaBirthday, year)
		a.from("dragon_boat", e.chinese.DragonBoat, year)
		a.from("mid_autumn", e.chinese.MidAutumn, year)
		a.from("double_ninth", e.chinese.DoubleNinth, year)
		if m, ok := e.chinese.LeapMonth(year); ok {
			a["leap_month"] = m
		}

	case "mongolian":
		if !e.mongolian.InRange(year) {
			return nil, errOutOfRange
		}
		d, ok, err := e.mongolian.TsagaanSar(year)
		if err != nil {
			return nil, err
		}
		a.set("tsagaan_sar", d, ok)
		a.from("buddha_day", e.mongolian.BuddhaDay, year)
		a.from("genghis_khan_day", e.mongolian.GenghisKhanDay, year)

	case "mandaean":
		if !e.mandaean.InRange(year) {
			return nil, errOutOfRange
		}
		a.from("new_year", e.mandaean.NewYear, year)
		a.from("parwanaya", e.mandaean.ParwanayaStart, year)
		a.from("dehwa_hanina", e.mandaean.DehwaHanina, year)
		a.from("dehwa_daimana", e.mandaean.DehwaDaimana, year)

	case "hijri":
		if !e.hijri.InRange(year) {
			return nil, errOutOfRange
		}
		for k := hijri.IslamicNewYear; k <= hijri.EidAlGhadir; k++ {
			month, day := k.HijriDate()
			var dates []string
			for _, d := range e.hijri.DateRange(year, month, day) {
				dates = append(dates, calendar.FormatDate(d))
			}
			if len(dates) > 0 {
				a[k.String()] = dates
			}
		}

	case "easter":
		if year < 1583 {
			return nil, errOutOfRange
		}
		a.set("western", calendar.Easter(year, calendar.EasterWestern), true)
		a.set("orthodox", calendar.Easter(year, calendar.EasterOrthodox), true)

	default:
		return nil, fmt.Errorf("unknown engine %q", engine)
	}
	return a, nil
}

// GetEngineAnchors handles GET /api/v1/engines/{engine}/{year}
func (h *Handlers) GetEngineAnchors(w http.ResponseWriter, r *http.Request) {
	engine := strings.ToLower(chi.URLParam(r, "engine"))
	yearStr := chi.URLParam(r, "year")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", yearStr))
		return
	}

	a, err := h.engines.anchors(engine, year)
	switch {
	case errors.Is(err, errOutOfRange):
		WriteNotFound(w, fmt.Sprintf("%s has no data for %d", engine, year))
		return
	case errors.Is(err, lunisolar.ErrUnresolvable):
		logger.Error(r.Context(), "engine anchor unresolvable", err)
		WriteInternalError(w, "Engine could not resolve the year")
		return
	case err != nil:
		WriteNotFound(w, err.Error())
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"engine":  engine,
		"year":    year,
		"anchors": a,
	})
}
