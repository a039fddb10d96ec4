package holidays

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/hijri"
	"github.com/zapponejosh/holidays-api/internal/observed"
)

// ErrUnknownSubdivision is returned for a subdivision a country does not define.
var ErrUnknownSubdivision = errors.New("unknown subdivision")

// Translator resolves message ids to display text. Sprintf translates a
// format message id before applying args.
type Translator interface {
	T(msgID string) string
	Sprintf(msgID string, args ...any) string
}

type identity struct{}

func (identity) T(msgID string) string { return msgID }

func (identity) Sprintf(msgID string, args ...any) string { return fmt.Sprintf(msgID, args...) }

// Populator adds one category's holidays for the builder's year.
type Populator func(b *Builder)

// ChristianCalendar selects how Christian holidays are dated.
type ChristianCalendar int

const (
	GregorianCalendar ChristianCalendar = iota
	JulianCalendar
	EthiopianCalendar
)

// Special is a holiday declared for a single year. A non-zero From marks a
// day off given in exchange for a working day on From. Observed specials
// carry the country's observed label.
type Special struct {
	Month    time.Month
	Day      int
	Name     string
	From     time.Time
	Category Category
	Observed bool
}

// Config describes a country. It is fixed at construction.
type Config struct {
	Code                string
	Alpha3              string
	Name                string
	DefaultLanguage     string
	SupportedLanguages  []string
	SupportedCategories []Category
	Subdivisions        []string

	// StartYear is the first year with holidays. A zero EndYear means no
	// upper bound.
	StartYear int
	EndYear   int
	Weekend   []time.Weekday

	ObservedRule  observed.Rule
	ObservedSince int
	// ObservedMultiple resolves each name on a date separately.
	ObservedMultiple bool

	EstimatedLabel         string
	ObservedLabel          string
	ObservedLabelBefore    string
	ObservedEstimatedLabel string
	SubstitutedLabel       string
	// SubstitutedDateFormat is a time layout for the From date. It is
	// translated like a message id.
	SubstitutedDateFormat string

	ChristianCalendar ChristianCalendar
	Islamic           hijri.Source

	Special map[int][]Special
}

// Country is implemented by every country module.
type Country interface {
	Config() Config
	Populators() map[Category]Populator
}

// Options select what an Entity generates.
type Options struct {
	Years        []int
	Language     string
	Categories   []Category
	Subdivision  string
	SkipObserved bool
	// HideEstimated drops the estimated label from names.
	HideEstimated bool
}

// Entity generates holidays for one country.
type Entity struct {
	cfg        Config
	opts       Options
	tr         Translator
	populators map[Category]Populator
	categories []Category

	mu    sync.Mutex
	years map[int]*Set
	errs  map[int]error
}

// New validates opts against the country and returns an entity. A nil
// translator leaves message ids untranslated.
func New(c Country, opts Options, tr Translator) (*Entity, error) {
	cfg := withDefaults(c.Config())
	if tr == nil {
		tr = identity{}
	}

	categories := opts.Categories
	if len(categories) == 0 {
		categories = []Category{Public}
	}
	populators := c.Populators()
	var errs []error
	for _, cat := range categories {
		if !slices.Contains(cfg.SupportedCategories, cat) {
			errs = append(errs, fmt.Errorf("%w: %s does not support %q", ErrUnknownCategory, cfg.Code, cat))
		}
	}
	if opts.Subdivision != "" && !slices.Contains(cfg.Subdivisions, opts.Subdivision) {
		errs = append(errs, fmt.Errorf("%w: %s has no %q", ErrUnknownSubdivision, cfg.Code, opts.Subdivision))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if opts.Language == "" {
		opts.Language = cfg.DefaultLanguage
	}

	return &Entity{
		cfg:        cfg,
		opts:       opts,
		tr:         tr,
		populators: populators,
		categories: categories,
		years:      make(map[int]*Set),
		errs:       make(map[int]error),
	}, nil
}

func withDefaults(cfg Config) Config {
	if len(cfg.SupportedCategories) == 0 {
		cfg.SupportedCategories = []Category{Public}
	}
	if len(cfg.Weekend) == 0 {
		cfg.Weekend = calendar.DefaultWeekend()
	}
	if cfg.EstimatedLabel == "" {
		cfg.EstimatedLabel = "%s (estimated)"
	}
	if cfg.ObservedLabel == "" {
		cfg.ObservedLabel = "%s"
	}
	if cfg.ObservedLabelBefore == "" {
		cfg.ObservedLabelBefore = cfg.ObservedLabel
	}
	if cfg.ObservedEstimatedLabel == "" {
		cfg.ObservedEstimatedLabel = cfg.ObservedLabel
	}
	if cfg.SubstitutedLabel == "" {
		cfg.SubstitutedLabel = "%s"
	}
	if cfg.SubstitutedDateFormat == "" {
		cfg.SubstitutedDateFormat = "02.01.2006"
	}
	return cfg
}

// Config returns the country configuration with defaults applied.
func (e *Entity) Config() Config { return e.cfg }

// Options returns the options the entity was built with.
func (e *Entity) Options() Options { return e.opts }

// Categories returns the categories being generated.
func (e *Entity) Categories() []Category { return e.categories }

// Year returns the holidays of year. Sets are cached and must not be
// modified by callers.
func (e *Entity) Year(year int) *Set {
	s, _ := e.Generate(year)
	return s
}

// Generate is Year with the error of any holiday that could not be
// computed. The returned set holds every other holiday.
func (e *Entity) Generate(year int) (*Set, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if s, ok := e.years[year]; ok {
		return s, e.errs[year]
	}
	s, err := e.populate(year)
	e.years[year] = s
	e.errs[year] = err
	return s, err
}

// Build returns a new set holding every year in the options.
func (e *Entity) Build() *Set {
	out := NewSet(e.cfg.Weekend...)
	for _, y := range e.opts.Years {
		out.Merge(e.Year(y))
	}
	return out
}

func (e *Entity) populate(year int) (*Set, error) {
	b := newBuilder(e, year)
	if year < e.cfg.StartYear || (e.cfg.EndYear != 0 && year > e.cfg.EndYear) {
		return b.set, nil
	}

	for _, cat := range e.categories {
		b.category = cat
		if p := e.populators[cat]; p != nil {
			p(b)
		}
		b.addSpecials()
	}
	b.resolveObserved()
	if err := errors.Join(b.errs...); err != nil {
		return b.set, fmt.Errorf("%s %d: %w", e.cfg.Code, year, err)
	}
	return b.set, nil
}
