// Command holidaygen prints the holidays of a country.
//
// Usage:
//
//	go run ./cmd/holidaygen -country GB -subdiv SCT -year 2024
//	go run ./cmd/holidaygen -country AL -lang en -format json
//	go run ./cmd/holidaygen -country US -categories public,optional -format ics > us.ics
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/config"
	"github.com/zapponejosh/holidays-api/internal/countries"
	"github.com/zapponejosh/holidays-api/internal/holidays"
	"github.com/zapponejosh/holidays-api/internal/ical"
)

type options struct {
	country    string
	year       int
	lang       string
	categories string
	subdiv     string
	format     string
	observed   bool
	overlay    string
}

func main() {
	var opts options
	flag.StringVar(&opts.country, "country", envOr("DEFAULT_COUNTRY", "US"), "Country code (alpha-2 or alpha-3)")
	flag.IntVar(&opts.year, "year", time.Now().Year(), "Year to generate")
	flag.StringVar(&opts.lang, "lang", os.Getenv("DEFAULT_LANGUAGE"), "Language of holiday names")
	flag.StringVar(&opts.categories, "categories", "", "Comma separated categories (default public)")
	flag.StringVar(&opts.subdiv, "subdiv", "", "Subdivision code")
	flag.StringVar(&opts.format, "format", "text", "Output format: text, json, yaml or ics")
	flag.BoolVar(&opts.observed, "observed", true, "Include observed days")
	flag.StringVar(&opts.overlay, "overlay", os.Getenv("OVERLAY_PATH"), "YAML file of extra holidays")
	flag.Parse()

	if err := run(os.Stdout, opts); err != nil {
		fmt.Fprintln(os.Stderr, "holidaygen:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// record is one output row.
type record struct {
	Date      string `json:"date" yaml:"date"`
	Weekday   string `json:"weekday" yaml:"weekday"`
	Name      string `json:"name" yaml:"name"`
	Category  string `json:"category" yaml:"category"`
	Observed  bool   `json:"observed,omitempty" yaml:"observed,omitempty"`
	Estimated bool   `json:"estimated,omitempty" yaml:"estimated,omitempty"`
}

func run(w io.Writer, opts options) error {
	registry := countries.Default()
	if opts.overlay != "" {
		extras, err := config.LoadOverlay(opts.overlay)
		if err != nil {
			return err
		}
		if registry, err = registry.WithExtras(extras); err != nil {
			return err
		}
	}

	c, err := registry.Lookup(opts.country)
	if err != nil {
		return err
	}
	hopts := holidays.Options{
		Years:        []int{opts.year},
		Language:     opts.lang,
		Subdivision:  strings.ToUpper(opts.subdiv),
		SkipObserved: !opts.observed,
	}
	if opts.categories != "" {
		for _, part := range strings.Split(opts.categories, ",") {
			cat, err := holidays.ParseCategory(part)
			if err != nil {
				return err
			}
			hopts.Categories = append(hopts.Categories, cat)
		}
	}

	e, err := registry.New(c.Code(), hopts)
	if err != nil {
		return err
	}
	set, err := e.Generate(opts.year)
	if err != nil {
		// The set still holds every holiday that could be computed.
		fmt.Fprintln(os.Stderr, "holidaygen: warning:", err)
	}
	hs := set.Holidays()

	switch opts.format {
	case "text":
		return writeText(w, c, opts.year, hs)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records(hs))
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records(hs)); err != nil {
			return err
		}
		return enc.Close()
	case "ics":
		return ical.Export(w, hs, ical.ExportOptions{
			Country: c.Code(),
			Name:    fmt.Sprintf("%s holidays %d", c.Name(), opts.year),
		})
	default:
		return fmt.Errorf("unknown format %q", opts.format)
	}
}

func records(hs []holidays.Holiday) []record {
	out := make([]record, len(hs))
	for i, h := range hs {
		out[i] = record{
			Date:      calendar.FormatDate(h.Date),
			Weekday:   calendar.DayName(h.Date),
			Name:      h.Name,
			Category:  string(h.Category),
			Observed:  h.Observed,
			Estimated: h.Estimated,
		}
	}
	return out
}

func writeText(w io.Writer, c *countries.Country, year int, hs []holidays.Holiday) error {
	fmt.Fprintf(w, "=== %s (%s) %d ===\n\n", c.Name(), c.Code(), year)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range records(hs) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Date, r.Weekday, r.Name, r.Category)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d holidays\n", len(hs))
	return nil
}
