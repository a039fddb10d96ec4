package holidays

import (
	"sort"
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/observed"
)

// origin records how a name was added, before translation.
type origin struct {
	msgID     string
	category  Category
	estimated bool
	labelled  bool
}

type observedRequest struct {
	date     time.Time
	rule     observed.Rule
	msgID    string
	category Category
	ruleSet  bool
	seq      int
}

// Builder collects the holidays of one year. Country populators receive a
// Builder and add dates through it; observed days are resolved once every
// category has been populated.
type Builder struct {
	cfg  *Config
	opts *Options
	tr   Translator

	year     int
	category Category
	set      *Set
	origins  map[time.Time][]origin
	requests []observedRequest
	errs     []error

	Christian     *Christian
	International *International
	Islamic       *Islamic
	Chinese       *Chinese
	Burmese       *Burmese
	Mongolian     *Mongolian
	Mandaean      *Mandaean
}

func newBuilder(e *Entity, year int) *Builder {
	b := &Builder{
		cfg:     &e.cfg,
		opts:    &e.opts,
		tr:      e.tr,
		year:    year,
		set:     NewSet(e.cfg.Weekend...),
		origins: make(map[time.Time][]origin),
	}
	b.Christian = &Christian{b: b, Calendar: e.cfg.ChristianCalendar}
	b.International = &International{b: b}
	b.Islamic = &Islamic{b: b, source: e.cfg.Islamic, ShowEstimated: true}
	b.Chinese = &Chinese{b: b}
	b.Burmese = &Burmese{b: b}
	b.Mongolian = &Mongolian{b: b}
	b.Mandaean = &Mandaean{b: b}
	return b
}

// Year returns the year being populated.
func (b *Builder) Year() int { return b.year }

// Category returns the category being populated.
func (b *Builder) Category() Category { return b.category }

// Subdivision returns the selected subdivision, or "".
func (b *Builder) Subdivision() string { return b.opts.Subdivision }

func (b *Builder) fail(err error) {
	b.errs = append(b.errs, err)
}

// Set returns the holidays added so far.
func (b *Builder) Set() *Set { return b.set }

// ============================================================================
// Adding holidays
// ============================================================================

// Add adds the holiday msgID on date and returns the date. Dates outside
// the builder's year are ignored and reported as the zero time.
func (b *Builder) Add(date time.Time, msgID string) time.Time {
	return b.add(date, msgID, false, false)
}

// AddDate adds msgID on month/day of the builder's year.
func (b *Builder) AddDate(month time.Month, day int, msgID string) time.Time {
	return b.Add(calendar.Date(b.year, month, day), msgID)
}

// AddEstimated adds msgID on date. If estimated and labelled, the name
// carries the country's estimated label.
func (b *Builder) AddEstimated(date time.Time, msgID string, estimated, labelled bool) time.Time {
	return b.add(date, msgID, estimated, labelled && estimated && !b.opts.HideEstimated)
}

func (b *Builder) add(date time.Time, msgID string, estimated, labelled bool) time.Time {
	if date.IsZero() || date.Year() != b.year {
		return time.Time{}
	}
	date = calendar.Truncate(date)

	name := b.tr.T(msgID)
	if labelled {
		name = b.tr.Sprintf(b.cfg.EstimatedLabel, name)
	}
	for _, o := range b.origins[date] {
		if o.msgID == msgID {
			return date
		}
	}
	b.origins[date] = append(b.origins[date], origin{msgID: msgID, category: b.category, estimated: estimated, labelled: labelled})
	b.set.Add(Holiday{Date: date, Name: name, Category: b.category, Estimated: estimated})
	return date
}

// Remove deletes every holiday on date.
func (b *Builder) Remove(date time.Time) {
	date = calendar.Truncate(date)
	delete(b.origins, date)
	b.set.Remove(date)
}

// WorkingDay marks a weekend date as a working day.
func (b *Builder) WorkingDay(date time.Time) {
	if date.Year() == b.year {
		b.set.AddWeekendWorkday(date)
	}
}

// Date returns month/day of the builder's year.
func (b *Builder) Date(month time.Month, day int) time.Time {
	return calendar.Date(b.year, month, day)
}

// NthWeekday returns the nth weekday of month. Negative n counts from the
// end of the month.
func (b *Builder) NthWeekday(n int, weekday time.Weekday, month time.Month) time.Time {
	return calendar.NthWeekdayOfMonth(n, weekday, month, b.year)
}

// NthWeekdayFrom returns the nth weekday on or after month/day, or on or
// before it when n is negative.
func (b *Builder) NthWeekdayFrom(n int, weekday time.Weekday, month time.Month, day int) time.Time {
	return calendar.NthWeekdayFrom(n, weekday, b.Date(month, day))
}

func (b *Builder) addSpecials() {
	for _, sp := range b.cfg.Special[b.year] {
		cat := sp.Category
		if cat == "" {
			cat = Public
		}
		if cat != b.category {
			continue
		}
		date := b.Date(sp.Month, sp.Day)
		if sp.Observed {
			b.set.Add(Holiday{
				Date:     date,
				Name:     b.tr.Sprintf(b.cfg.ObservedLabel, b.tr.T(sp.Name)),
				Category: cat,
				Observed: true,
			})
			continue
		}
		if sp.From.IsZero() {
			b.Add(date, sp.Name)
			continue
		}
		b.WorkingDay(sp.From)
		name := b.tr.Sprintf(b.cfg.SubstitutedLabel, sp.From.Format(b.tr.T(b.cfg.SubstitutedDateFormat)))
		b.origins[date] = append(b.origins[date], origin{msgID: name, category: cat})
		b.set.Add(Holiday{Date: date, Name: name, Category: cat})
	}
}

// ============================================================================
// Observed days
// ============================================================================

// Observed queues dates for the country's observed rule. Zero dates are
// skipped, so the result of Add can be passed directly.
func (b *Builder) Observed(dates ...time.Time) {
	for _, d := range dates {
		b.queue(observedRequest{date: d})
	}
}

// ObservedWith queues dates for rule instead of the country's rule.
func (b *Builder) ObservedWith(rule observed.Rule, dates ...time.Time) {
	for _, d := range dates {
		b.queue(observedRequest{date: d, rule: rule, ruleSet: true})
	}
}

// ObserveNamed queues a holiday that is not in the set, such as next
// year's New Year's Day, so that an observed day falling in this year is
// added. A zero rule uses the country's rule.
func (b *Builder) ObserveNamed(date time.Time, msgID string, rule observed.Rule) {
	b.queue(observedRequest{date: date, rule: rule, ruleSet: !rule.IsZero(), msgID: msgID})
}

func (b *Builder) queue(r observedRequest) {
	if r.date.IsZero() || b.opts.SkipObserved || b.year < b.cfg.ObservedSince {
		return
	}
	r.date = calendar.Truncate(r.date)
	r.category = b.category
	for _, q := range b.requests {
		if q.date.Equal(r.date) && q.msgID == r.msgID {
			return
		}
	}
	r.seq = len(b.requests)
	b.requests = append(b.requests, r)
}

func (b *Builder) resolveObserved() {
	sort.Slice(b.requests, func(i, j int) bool {
		if !b.requests[i].date.Equal(b.requests[j].date) {
			return b.requests[i].date.Before(b.requests[j].date)
		}
		return b.requests[i].seq < b.requests[j].seq
	})

	for _, r := range b.requests {
		rule := b.cfg.ObservedRule
		if r.ruleSet {
			rule = r.rule
		}

		var names []origin
		if r.msgID != "" {
			names = []origin{{msgID: r.msgID, category: r.category}}
		} else {
			names = append(names, b.origins[r.date]...)
		}
		if len(names) == 0 {
			continue
		}

		if b.cfg.ObservedMultiple {
			for _, o := range names {
				b.observe(r.date, rule, []origin{o})
			}
			continue
		}
		b.observe(r.date, rule, names)
	}
	b.requests = nil
}

func (b *Builder) observe(date time.Time, rule observed.Rule, names []origin) {
	target, outcome := observed.Apply(rule, date, b.set)
	switch outcome {
	case observed.Removed:
		b.Remove(date)
		return
	case observed.Unchanged:
		return
	}
	if target.Year() != b.year {
		return
	}

	label := b.cfg.ObservedLabel
	if target.Before(date) {
		label = b.cfg.ObservedLabelBefore
	}
	for _, o := range names {
		l := label
		if o.labelled {
			l = b.cfg.ObservedEstimatedLabel
		}
		b.set.Add(Holiday{
			Date:      target,
			Name:      b.tr.Sprintf(l, b.tr.T(o.msgID)),
			Category:  o.category,
			Observed:  true,
			Estimated: o.estimated,
		})
	}
}
