package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/holidays-api/internal/countries"
	"github.com/zapponejosh/holidays-api/internal/holidays"
)

// Overlay is the YAML file of operator-declared holidays:
//
//	countries:
//	  US:
//	    holidays:
//	      - date: "03-14"
//	        name: Pi Day
//	        category: optional
//	        start_year: 2010
type Overlay struct {
	Countries map[string]OverlayCountry `yaml:"countries"`
}

// OverlayCountry lists the extra holidays of one country.
type OverlayCountry struct {
	Holidays []OverlayHoliday `yaml:"holidays"`
}

// OverlayHoliday is one fixed-date entry. Date is "MM-DD".
type OverlayHoliday struct {
	Date      string `yaml:"date"`
	Name      string `yaml:"name"`
	Category  string `yaml:"category"`
	StartYear int    `yaml:"start_year"`
	EndYear   int    `yaml:"end_year"`
}

// LoadOverlay reads and converts an overlay file.
func LoadOverlay(path string) (map[string][]countries.Extra, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read overlay: %w", err)
	}
	return ParseOverlay(data)
}

// ParseOverlay converts overlay YAML into country extras. Every bad entry
// is reported.
func ParseOverlay(data []byte) (map[string][]countries.Extra, error) {
	var o Overlay
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("parse overlay: %w", err)
	}

	out := make(map[string][]countries.Extra, len(o.Countries))
	var errs []error
	for code, c := range o.Countries {
		for i, h := range c.Holidays {
			extra, err := h.extra()
			if err != nil {
				errs = append(errs, fmt.Errorf("%s holiday %d: %w", code, i+1, err))
				continue
			}
			out[code] = append(out[code], extra)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("parse overlay: %w", err)
	}
	return out, nil
}

func (h OverlayHoliday) extra() (countries.Extra, error) {
	// 2000 is a leap year, so "02-29" parses.
	d, err := time.Parse("2006-01-02", "2000-"+h.Date)
	if err != nil {
		return countries.Extra{}, fmt.Errorf("date %q: want MM-DD", h.Date)
	}
	cat := holidays.Public
	if h.Category != "" {
		if cat, err = holidays.ParseCategory(h.Category); err != nil {
			return countries.Extra{}, err
		}
	}
	return countries.Extra{
		Month:     d.Month(),
		Day:       d.Day(),
		Name:      h.Name,
		Category:  cat,
		StartYear: h.StartYear,
		EndYear:   h.EndYear,
	}, nil
}
