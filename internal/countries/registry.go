// Package countries holds the country modules and the registry that
// resolves them by ISO 3166-1 code.
package countries

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/hijri"
	"github.com/zapponejosh/holidays-api/internal/holidays"
	"github.com/zapponejosh/holidays-api/internal/i18n"
)

// ErrUnknownCountry is returned for a code no module is registered under.
var ErrUnknownCountry = errors.New("unknown country")

const (
	jan = time.January
	feb = time.February
	mar = time.March
	apr = time.April
	may = time.May
	jun = time.June
	jul = time.July
	aug = time.August
	sep = time.September
	oct = time.October
	nov = time.November
	dec = time.December

	mon = time.Monday
	thu = time.Thursday
	fri = time.Friday
	sat = time.Saturday
)

// Country is one country module. It implements holidays.Country.
type Country struct {
	config     holidays.Config
	populators map[holidays.Category]holidays.Populator
	// translations maps a language to message id translations.
	translations map[string]map[string]string
}

func (c *Country) Config() holidays.Config                              { return c.config }
func (c *Country) Populators() map[holidays.Category]holidays.Populator { return c.populators }

// Code returns the alpha-2 code.
func (c *Country) Code() string { return c.config.Code }

// Name returns the English country name.
func (c *Country) Name() string { return c.config.Name }

// Registry resolves countries by alpha-2 or alpha-3 code. It is read-only
// once built.
type Registry struct {
	countries []*Country
	byCode    map[string]*Country
}

func newRegistry(cs ...*Country) *Registry {
	r := &Registry{byCode: make(map[string]*Country, 2*len(cs))}
	for _, c := range cs {
		r.countries = append(r.countries, c)
		r.byCode[c.config.Code] = c
		if c.config.Alpha3 != "" {
			r.byCode[c.config.Alpha3] = c
		}
	}
	sort.Slice(r.countries, func(i, j int) bool {
		return r.countries[i].config.Code < r.countries[j].config.Code
	})
	return r
}

var builtin = newRegistry(
	albania(),
	china(),
	ethiopia(),
	iraq(),
	mongolia(),
	myanmar(),
	unitedKingdom(),
	unitedStates(),
)

func init() {
	for _, c := range builtin.countries {
		for lang, table := range c.translations {
			i18n.MustRegister(lang, table)
		}
	}
}

// Default returns the registry of built-in countries.
func Default() *Registry { return builtin }

// Lookup finds a built-in country.
func Lookup(code string) (*Country, error) { return builtin.Lookup(code) }

// List returns the built-in countries ordered by code.
func List() []*Country { return builtin.List() }

// New builds an entity for a built-in country.
func New(code string, opts holidays.Options) (*holidays.Entity, error) {
	return builtin.New(code, opts)
}

// Lookup finds a country by alpha-2 or alpha-3 code, ignoring case.
func (r *Registry) Lookup(code string) (*Country, error) {
	c, ok := r.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, code)
	}
	return c, nil
}

// List returns the countries ordered by code.
func (r *Registry) List() []*Country {
	out := make([]*Country, len(r.countries))
	copy(out, r.countries)
	return out
}

// New builds an entity for code. The requested language is matched
// against the country's supported languages and falls back to its default.
func (r *Registry) New(code string, opts holidays.Options) (*holidays.Entity, error) {
	c, err := r.Lookup(code)
	if err != nil {
		return nil, err
	}
	cfg := c.Config()
	opts.Language = i18n.Match(opts.Language, cfg.SupportedLanguages, cfg.DefaultLanguage)
	return holidays.New(c, opts, i18n.New(opts.Language))
}

func md(month time.Month, day int) hijri.MonthDay {
	return hijri.MonthDay{Month: month, Day: day}
}

func one(month time.Month, day int) []hijri.MonthDay {
	return []hijri.MonthDay{md(month, day)}
}

// span adds name on days consecutive dates starting at start.
func span(b *holidays.Builder, start time.Time, days int, name string) []time.Time {
	var added []time.Time
	for i := 0; i < days; i++ {
		if d := b.Add(calendar.AddDays(start, i), name); !d.IsZero() {
			added = append(added, d)
		}
	}
	return added
}
