// Package ical converts holidays to and from iCalendar files.
package ical

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/holidays"
)

// ErrEmptyCalendar is returned when a calendar has no usable events.
var ErrEmptyCalendar = errors.New("calendar has no events")

const (
	productID = "-//holidays-api//EN"
	uidDomain = "holidays-api"
)

// ExportOptions describe the calendar being written.
type ExportOptions struct {
	Country string
	// Name is the calendar display name.
	Name string
	// Stamp is the DTSTAMP of every event. Zero means now.
	Stamp time.Time
}

// Export writes one all-day event per holiday.
func Export(w io.Writer, hs []holidays.Holiday, opts ExportOptions) error {
	stamp := opts.Stamp
	if stamp.IsZero() {
		stamp = time.Now().UTC()
	}

	c := ics.NewCalendar()
	c.SetMethod(ics.MethodPublish)
	c.SetProductId(productID)
	if opts.Name != "" {
		c.SetXWRCalName(opts.Name)
	}

	for _, h := range hs {
		e := c.AddEvent(eventUID(opts.Country, h))
		e.SetDtStampTime(stamp)
		e.SetAllDayStartAt(h.Date)
		e.SetAllDayEndAt(calendar.AddDays(h.Date, 1))
		e.SetSummary(h.Name)
		e.SetProperty(ics.ComponentPropertyCategories, string(h.Category))
		e.SetProperty(ics.ComponentPropertyTransp, "TRANSPARENT")
	}

	if err := c.SerializeTo(w); err != nil {
		return fmt.Errorf("write calendar: %w", err)
	}
	return nil
}

// eventUID is stable across exports of the same holiday.
func eventUID(country string, h holidays.Holiday) string {
	key := strings.Join([]string{country, calendar.FormatDate(h.Date), h.Name}, "|")
	hash := uuid.NewSHA1(uuid.NameSpaceURL, []byte(key))
	return fmt.Sprintf("%s-%s@%s", h.Date.Format("20060102"), hash, uidDomain)
}

// Event is one holiday read from a calendar.
type Event struct {
	Date     time.Time
	Name     string
	Category holidays.Category
}

// Window bounds recurring event expansion to the years From through To.
type Window struct {
	From int
	To   int
}

func (w Window) contains(t time.Time) bool {
	return t.Year() >= w.From && t.Year() <= w.To
}

// Parse reads the events of an iCalendar stream. Recurring events are
// expanded inside window; single events outside it are dropped. Events
// without a category are public.
func Parse(r io.Reader, window Window) ([]Event, error) {
	c, err := ics.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	var out []Event
	var errs []error
	for _, e := range c.Events() {
		events, err := expand(e, window)
		if err != nil {
			errs = append(errs, fmt.Errorf("event %q: %w", e.Id(), err))
			continue
		}
		out = append(out, events...)
	}
	if err := errors.Join(errs...); err != nil {
		return out, err
	}
	if len(out) == 0 {
		return nil, ErrEmptyCalendar
	}
	return out, nil
}

func expand(e *ics.VEvent, window Window) ([]Event, error) {
	name := propertyValue(e, ics.ComponentPropertySummary)
	if name == "" {
		return nil, errors.New("missing SUMMARY")
	}
	category := holidays.Public
	if v := propertyValue(e, ics.ComponentPropertyCategories); v != "" {
		// Only the first of several categories is kept.
		c, err := holidays.ParseCategory(strings.Split(v, ",")[0])
		if err != nil {
			return nil, err
		}
		category = c
	}

	start, err := e.GetAllDayStartAt()
	if err != nil {
		if start, err = e.GetStartAt(); err != nil {
			return nil, fmt.Errorf("DTSTART: %w", err)
		}
	}
	start = calendar.Truncate(start)

	rule := propertyValue(e, ics.ComponentPropertyRrule)
	if rule == "" {
		if !window.contains(start) {
			return nil, nil
		}
		return []Event{{Date: start, Name: name, Category: category}}, nil
	}

	dates, err := occurrences(rule, start, window)
	if err != nil {
		return nil, err
	}
	skip := exdates(e)

	var out []Event
	for _, d := range dates {
		if !skip[d] {
			out = append(out, Event{Date: d, Name: name, Category: category})
		}
	}
	return out, nil
}

// occurrences expands an RRULE anchored at start within window.
func occurrences(rule string, start time.Time, window Window) ([]time.Time, error) {
	opt, err := rrule.StrToROption(rule)
	if err != nil {
		return nil, fmt.Errorf("RRULE %q: %w", rule, err)
	}
	opt.Dtstart = start
	r, err := rrule.NewRRule(*opt)
	if err != nil {
		return nil, fmt.Errorf("RRULE %q: %w", rule, err)
	}

	from := calendar.Date(window.From, time.January, 1)
	to := calendar.Date(window.To, time.December, 31)
	var out []time.Time
	for _, t := range r.Between(from, to, true) {
		out = append(out, calendar.Truncate(t))
	}
	return out, nil
}

func exdates(e *ics.VEvent) map[time.Time]bool {
	skip := make(map[time.Time]bool)
	for _, p := range e.Properties {
		if p.IANAToken != string(ics.ComponentPropertyExdate) {
			continue
		}
		for _, v := range strings.Split(p.Value, ",") {
			v = strings.TrimSpace(v)
			if len(v) < 8 {
				continue
			}
			if d, err := time.Parse("20060102", v[:8]); err == nil {
				skip[d] = true
			}
		}
	}
	return skip
}

var textUnescaper = strings.NewReplacer(`\\`, `\`, `\,`, ",", `\;`, ";", `\n`, " ", `\N`, " ")

func propertyValue(e *ics.VEvent, p ics.ComponentProperty) string {
	if prop := e.GetProperty(p); prop != nil {
		return strings.TrimSpace(textUnescaper.Replace(prop.Value))
	}
	return ""
}
