package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/holidays-api/internal/business"
	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/config"
	"github.com/zapponejosh/holidays-api/internal/countries"
	"github.com/zapponejosh/holidays-api/internal/database"
	"github.com/zapponejosh/holidays-api/internal/holidays"
	"github.com/zapponejosh/holidays-api/internal/ical"
	"github.com/zapponejosh/holidays-api/internal/logger"
	"github.com/zapponejosh/holidays-api/internal/scheduler"
)

const (
	// maxRangeDays bounds workday range queries.
	maxRangeDays = 3660
	// maxWorkdayStep bounds the n of workdays/next.
	maxWorkdayStep = 1000
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db       *database.DB
	registry *countries.Registry
	engines  *engines
	cfg      *config.Config
	logger   *slog.Logger
	now      func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, registry *countries.Registry, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		db:       db,
		registry: registry,
		engines:  newEngines(),
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"status":    "healthy",
		"countries": len(h.registry.List()),
	})
}

// =============================================================================
// Countries
// =============================================================================

type countryJSON struct {
	Code            string              `json:"code"`
	Alpha3          string              `json:"alpha3,omitempty"`
	Name            string              `json:"name"`
	DefaultLanguage string              `json:"default_language"`
	Languages       []string            `json:"languages"`
	Categories      []holidays.Category `json:"categories"`
	Subdivisions    []string            `json:"subdivisions,omitempty"`
	Weekend         []string            `json:"weekend"`
	StartYear       int                 `json:"start_year"`
}

func newCountryJSON(c *countries.Country) countryJSON {
	cfg := c.Config()
	categories := cfg.SupportedCategories
	if len(categories) == 0 {
		categories = []holidays.Category{holidays.Public}
	}
	weekend := cfg.Weekend
	if len(weekend) == 0 {
		weekend = calendar.DefaultWeekend()
	}
	days := make([]string, len(weekend))
	for i, d := range weekend {
		days[i] = d.String()
	}
	return countryJSON{
		Code:            cfg.Code,
		Alpha3:          cfg.Alpha3,
		Name:            cfg.Name,
		DefaultLanguage: cfg.DefaultLanguage,
		Languages:       cfg.SupportedLanguages,
		Categories:      categories,
		Subdivisions:    cfg.Subdivisions,
		Weekend:         days,
		StartYear:       cfg.StartYear,
	}
}

// ListCountries handles GET /api/v1/countries
func (h *Handlers) ListCountries(w http.ResponseWriter, r *http.Request) {
	list := h.registry.List()
	out := make([]countryJSON, len(list))
	for i, c := range list {
		out[i] = newCountryJSON(c)
	}
	WriteSuccess(w, out)
}

// GetCountry handles GET /api/v1/countries/{code}
func (h *Handlers) GetCountry(w http.ResponseWriter, r *http.Request) {
	c, ok := h.country(w, r)
	if !ok {
		return
	}
	WriteSuccess(w, newCountryJSON(c))
}

// country resolves the {code} path parameter, writing a 404 when it is
// unknown.
func (h *Handlers) country(w http.ResponseWriter, r *http.Request) (*countries.Country, bool) {
	code := chi.URLParam(r, "code")
	c, err := h.registry.Lookup(code)
	if err != nil {
		WriteNotFound(w, fmt.Sprintf("Unknown country: %s", code))
		return nil, false
	}
	return c, true
}

// =============================================================================
// Holidays
// =============================================================================

type holidayJSON struct {
	Date      string `json:"date"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Observed  bool   `json:"observed,omitempty"`
	Estimated bool   `json:"estimated,omitempty"`
	Custom    bool   `json:"custom,omitempty"`
}

// view is a generated holiday set merged with stored custom holidays.
type view struct {
	entity *holidays.Entity
	set    *holidays.Set
	custom map[string]bool
}

func customKey(date time.Time, name string) string {
	return calendar.FormatDate(date) + "|" + name
}

func (v *view) holidays(hs []holidays.Holiday) []holidayJSON {
	out := make([]holidayJSON, 0, len(hs))
	for _, h := range hs {
		out = append(out, holidayJSON{
			Date:      calendar.FormatDate(h.Date),
			Name:      h.Name,
			Category:  string(h.Category),
			Observed:  h.Observed,
			Estimated: h.Estimated,
			Custom:    v.custom[customKey(h.Date, h.Name)],
		})
	}
	return out
}

// holidayOptions reads lang, categories, observed and subdiv. The language
// falls back to Accept-Language, then to the configured default.
func (h *Handlers) holidayOptions(r *http.Request) (holidays.Options, error) {
	q := r.URL.Query()
	opts := holidays.Options{
		Language:    q.Get("lang"),
		Subdivision: strings.ToUpper(strings.TrimSpace(q.Get("subdiv"))),
	}
	if opts.Language == "" {
		opts.Language = r.Header.Get("Accept-Language")
	}
	if opts.Language == "" {
		opts.Language = h.cfg.DefaultLanguage
	}

	if raw := q.Get("categories"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			c, err := holidays.ParseCategory(part)
			if err != nil {
				return opts, err
			}
			opts.Categories = append(opts.Categories, c)
		}
	}

	if raw := q.Get("observed"); raw != "" {
		observed, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, fmt.Errorf("invalid observed value: %s", raw)
		}
		opts.SkipObserved = !observed
	}
	return opts, nil
}

// buildView generates years for c and merges the stored custom holidays of
// the selected categories.
func (h *Handlers) buildView(ctx context.Context, c *countries.Country, opts holidays.Options, years ...int) (*view, error) {
	opts.Years = years
	e, err := h.registry.New(c.Code(), opts)
	if err != nil {
		return nil, err
	}

	v := &view{
		entity: e,
		set:    holidays.NewSet(e.Config().Weekend...),
		custom: make(map[string]bool),
	}
	for _, y := range years {
		s, err := e.Generate(y)
		if err != nil {
			// The set still holds every other holiday of the year.
			logger.Warn(ctx, "incomplete holiday set",
				slog.String("country", c.Code()),
				slog.Int("year", y),
				slog.Any("error", err),
			)
		}
		v.set.Merge(s)

		custom, err := h.db.ListCustomHolidays(ctx, c.Code(), y)
		if err != nil {
			return nil, fmt.Errorf("list custom holidays: %w", err)
		}
		for _, ch := range custom {
			if !categorySelected(e.Categories(), ch.Category) {
				continue
			}
			date, err := calendar.ParseDateString(ch.Date)
			if err != nil {
				logger.Debug(ctx, "skipping custom holiday with invalid date",
					slog.Int64("id", ch.ID),
					slog.String("date", ch.Date),
				)
				continue
			}
			v.set.Add(holidays.Holiday{Date: date, Name: ch.Name, Category: holidays.Category(ch.Category)})
			v.custom[customKey(date, ch.Name)] = true
		}
	}
	return v, nil
}

func categorySelected(selected []holidays.Category, category string) bool {
	for _, c := range selected {
		if string(c) == category {
			return true
		}
	}
	return false
}

// writeViewError maps buildView errors to responses.
func (h *Handlers) writeViewError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, holidays.ErrUnknownCategory) || errors.Is(err, holidays.ErrUnknownSubdivision) {
		WriteBadRequest(w, err.Error())
		return
	}
	logger.Error(r.Context(), "failed to build holidays", err)
	WriteInternalError(w, "Failed to generate holidays")
}

// parseYear reads the year query parameter, defaulting to the current year.
func (h *Handlers) parseYear(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return h.now().Year(), nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 || year > 9999 {
		return 0, fmt.Errorf("invalid year: %s", raw)
	}
	return year, nil
}

// GetHolidays handles GET /api/v1/countries/{code}/holidays
func (h *Handlers) GetHolidays(w http.ResponseWriter, r *http.Request) {
	c, ok := h.country(w, r)
	if !ok {
		return
	}
	year, err := h.parseYear(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	opts, err := h.holidayOptions(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	v, err := h.buildView(r.Context(), c, opts, year)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"country":     c.Code(),
		"year":        year,
		"language":    v.entity.Options().Language,
		"subdivision": opts.Subdivision,
		"holidays":    v.holidays(v.set.Holidays()),
	})
}

// CheckDate handles GET /api/v1/countries/{code}/holidays/{date}
func (h *Handlers) CheckDate(w http.ResponseWriter, r *http.Request) {
	c, ok := h.country(w, r)
	if !ok {
		return
	}
	dateStr := chi.URLParam(r, "date")
	date, err := calendar.ParseDateString(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}
	opts, err := h.holidayOptions(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	v, err := h.buildView(r.Context(), c, opts, date.Year())
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"date":       calendar.FormatDate(date),
		"weekday":    calendar.DayName(date),
		"is_holiday": v.set.IsHoliday(date),
		"is_weekend": v.set.IsWeekend(date),
		"is_workday": v.set.IsWorkday(date),
		"holidays":   v.holidays(v.set.Entries(date)),
	})
}

// =============================================================================
// Workdays
// =============================================================================

// CountWorkdays handles GET /api/v1/countries/{code}/workdays?start=&end=
func (h *Handlers) CountWorkdays(w http.ResponseWriter, r *http.Request) {
	c, ok := h.country(w, r)
	if !ok {
		return
	}

	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}
	start, err := calendar.ParseDateString(startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date format: %s. Use YYYY-MM-DD", startStr))
		return
	}
	end, err := calendar.ParseDateString(endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date format: %s. Use YYYY-MM-DD", endStr))
		return
	}
	if start.After(end) {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}
	if calendar.DaysBetween(start, end) > maxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", maxRangeDays))
		return
	}
	opts, err := h.holidayOptions(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	v, err := h.buildView(r.Context(), c, opts, yearsBetween(start.Year(), end.Year())...)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"start":    startStr,
		"end":      endStr,
		"workdays": business.New(v.set).WorkdaysInRange(start, end),
	})
}

// NextWorkday handles GET /api/v1/countries/{code}/workdays/next?date=&n=
func (h *Handlers) NextWorkday(w http.ResponseWriter, r *http.Request) {
	c, ok := h.country(w, r)
	if !ok {
		return
	}

	date := calendar.Truncate(h.now())
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		d, err := calendar.ParseDateString(dateStr)
		if err != nil {
			WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
			return
		}
		date = d
	}
	n := 1
	if raw := r.URL.Query().Get("n"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < -maxWorkdayStep || v > maxWorkdayStep {
			WriteBadRequest(w, fmt.Sprintf("n must be an integer between %d and %d", -maxWorkdayStep, maxWorkdayStep))
			return
		}
		n = v
	}
	opts, err := h.holidayOptions(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	// A year holds at least 200 workdays everywhere we model.
	span := abs(n)/200 + 1
	v, err := h.buildView(r.Context(), c, opts, yearsBetween(date.Year()-span, date.Year()+span)...)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}

	next := business.New(v.set).AddWorkdays(date, n)
	WriteSuccess(w, map[string]interface{}{
		"date":    calendar.FormatDate(date),
		"n":       n,
		"next":    calendar.FormatDate(next),
		"weekday": calendar.DayName(next),
	})
}

func yearsBetween(from, to int) []int {
	var years []int
	for y := max(from, 1); y <= to; y++ {
		years = append(years, y)
	}
	return years
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// =============================================================================
// Calendar export
// =============================================================================

// ExportCalendar handles GET /api/v1/countries/{code}/calendar.ics
func (h *Handlers) ExportCalendar(w http.ResponseWriter, r *http.Request) {
	c, ok := h.country(w, r)
	if !ok {
		return
	}
	year, err := h.parseYear(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	opts, err := h.holidayOptions(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	v, err := h.buildView(r.Context(), c, opts, year)
	if err != nil {
		h.writeViewError(w, r, err)
		return
	}

	var buf bytes.Buffer
	err = ical.Export(&buf, v.set.Holidays(), ical.ExportOptions{
		Country: c.Code(),
		Name:    fmt.Sprintf("%s holidays %d", c.Name(), year),
	})
	if err != nil {
		logger.Error(r.Context(), "failed to export calendar", err)
		WriteInternalError(w, "Failed to export calendar")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-%d.ics"`, strings.ToLower(c.Code()), year))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// =============================================================================
// Admin
// =============================================================================

// CreateSnapshot handles POST /api/v1/admin/snapshots
func (h *Handlers) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Country     string `json:"country"`
		Subdivision string `json:"subdivision,omitempty"`
		Year        int    `json:"year"`
		Language    string `json:"language,omitempty"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if req.Country == "" || req.Year < 1 || req.Year > 9999 {
		WriteBadRequest(w, "country and a valid year are required")
		return
	}

	snap, err := scheduler.Generate(h.registry, database.SnapshotKey{
		Country:     req.Country,
		Subdivision: strings.ToUpper(req.Subdivision),
		Year:        req.Year,
		Language:    req.Language,
	})
	if err != nil {
		if errors.Is(err, countries.ErrUnknownCountry) || errors.Is(err, holidays.ErrUnknownSubdivision) {
			WriteBadRequest(w, err.Error())
			return
		}
		logger.Error(ctx, "failed to generate snapshot", err)
		WriteInternalError(w, "Failed to generate snapshot")
		return
	}

	if err := h.db.SaveSnapshot(ctx, snap); err != nil {
		logger.Error(ctx, "failed to save snapshot", err)
		WriteInternalError(w, "Failed to save snapshot")
		return
	}

	WriteCreated(w, snap)
}

// ListSnapshots handles GET /api/v1/admin/snapshots?country=
func (h *Handlers) ListSnapshots(w http.ResponseWriter, r *http.Request) {
	country := strings.ToUpper(r.URL.Query().Get("country"))

	snapshots, err := h.db.ListSnapshots(r.Context(), country)
	if err != nil {
		logger.Error(r.Context(), "failed to list snapshots", err)
		WriteInternalError(w, "Failed to list snapshots")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"snapshots": snapshots,
		"count":     len(snapshots),
	})
}

// GetSnapshot handles GET /api/v1/admin/snapshots/{code}/{year}?subdiv=&lang=
func (h *Handlers) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	c, ok := h.country(w, r)
	if !ok {
		return
	}
	yearStr := chi.URLParam(r, "year")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", yearStr))
		return
	}
	lang := r.URL.Query().Get("lang")
	if lang == "" {
		lang = c.Config().DefaultLanguage
	}

	snap, err := h.db.GetSnapshot(ctx, database.SnapshotKey{
		Country:     c.Code(),
		Subdivision: strings.ToUpper(r.URL.Query().Get("subdiv")),
		Year:        year,
		Language:    lang,
	})
	if err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, fmt.Sprintf("No snapshot for %s %d (%s)", c.Code(), year, lang))
			return
		}
		logger.Error(ctx, "failed to get snapshot", err)
		WriteInternalError(w, "Failed to get snapshot")
		return
	}

	WriteSuccess(w, snap)
}

// DeleteSnapshot handles DELETE /api/v1/admin/snapshots/{id}
func (h *Handlers) DeleteSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid snapshot id: %s", idStr))
		return
	}

	if err := h.db.DeleteSnapshot(ctx, id); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, fmt.Sprintf("Snapshot %d not found", id))
			return
		}
		logger.Error(ctx, "failed to delete snapshot", err, slog.Int64("id", id))
		WriteInternalError(w, "Failed to delete snapshot")
		return
	}

	logger.Info(ctx, "snapshot deleted", slog.Int64("id", id))
	WriteSuccess(w, map[string]interface{}{"deleted": id})
}

// CreateCustomHoliday handles POST /api/v1/admin/custom-holidays
func (h *Handlers) CreateCustomHoliday(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		Country  string `json:"country"`
		Date     string `json:"date"`
		Name     string `json:"name"`
		Category string `json:"category,omitempty"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	c, err := h.registry.Lookup(req.Country)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}
	date, err := calendar.ParseDateString(req.Date)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", req.Date))
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		WriteBadRequest(w, "name is required")
		return
	}
	category := holidays.Public
	if req.Category != "" {
		if category, err = holidays.ParseCategory(req.Category); err != nil {
			WriteBadRequest(w, err.Error())
			return
		}
	}

	ch := &database.CustomHoliday{
		Country:  c.Code(),
		Date:     calendar.FormatDate(date),
		Name:     name,
		Category: string(category),
		Source:   "api",
	}
	if err := h.db.AddCustomHoliday(ctx, ch); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			WriteConflict(w, "Custom holiday already exists")
			return
		}
		logger.Error(ctx, "failed to add custom holiday", err)
		WriteInternalError(w, "Failed to add custom holiday")
		return
	}

	WriteCreated(w, ch)
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}
