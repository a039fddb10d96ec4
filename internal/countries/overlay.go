package countries

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/zapponejosh/holidays-api/internal/holidays"
)

// Extra is an operator-declared holiday on a fixed month and day.
// A zero StartYear or EndYear leaves that side unbounded.
type Extra struct {
	Month     time.Month
	Day       int
	Name      string
	Category  holidays.Category
	StartYear int
	EndYear   int
}

func (e Extra) activeIn(year int) bool {
	return (e.StartYear == 0 || year >= e.StartYear) && (e.EndYear == 0 || year <= e.EndYear)
}

func (e Extra) validate(c *Country) error {
	if e.Name == "" {
		return fmt.Errorf("%s %02d-%02d: name is required", c.config.Code, e.Month, e.Day)
	}
	// 2000 is a leap year, so February 29 is accepted.
	if e.Month < jan || e.Month > dec || e.Day < 1 || e.Day > time.Date(2000, e.Month+1, 0, 0, 0, 0, 0, time.UTC).Day() {
		return fmt.Errorf("%s %q: invalid date %02d-%02d", c.config.Code, e.Name, e.Month, e.Day)
	}
	if !slices.Contains(c.config.SupportedCategories, e.Category) {
		return fmt.Errorf("%w: %s does not support %q", holidays.ErrUnknownCategory, c.config.Code, e.Category)
	}
	if e.EndYear != 0 && e.EndYear < e.StartYear {
		return fmt.Errorf("%s %q: end year %d before start year %d", c.config.Code, e.Name, e.EndYear, e.StartYear)
	}
	return nil
}

// WithExtras returns a registry whose countries also add the extra
// holidays given per country code. The receiver is left unchanged.
func (r *Registry) WithExtras(extras map[string][]Extra) (*Registry, error) {
	byCountry := make(map[*Country][]Extra)
	var errs []error
	for code, list := range extras {
		c, err := r.Lookup(code)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, e := range list {
			if e.Category == "" {
				e.Category = holidays.Public
			}
			if err := e.validate(c); err != nil {
				errs = append(errs, err)
				continue
			}
			byCountry[c] = append(byCountry[c], e)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("country overlay: %w", err)
	}

	out := make([]*Country, 0, len(r.countries))
	for _, c := range r.countries {
		if list, ok := byCountry[c]; ok {
			c = c.withExtras(list)
		}
		out = append(out, c)
	}
	return newRegistry(out...), nil
}

func (c *Country) withExtras(extras []Extra) *Country {
	byCategory := make(map[holidays.Category][]Extra)
	for _, e := range extras {
		byCategory[e.Category] = append(byCategory[e.Category], e)
	}

	populators := maps.Clone(c.populators)
	for cat, list := range byCategory {
		base := populators[cat]
		populators[cat] = func(b *holidays.Builder) {
			if base != nil {
				base(b)
			}
			for _, e := range list {
				if !e.activeIn(b.Year()) {
					continue
				}
				// Skip February 29 outside leap years.
				if d := b.Date(e.Month, e.Day); d.Day() == e.Day {
					b.Add(d, e.Name)
				}
			}
		}
	}
	return &Country{config: c.config, populators: populators, translations: c.translations}
}
