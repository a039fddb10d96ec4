// Package scheduler regenerates stored holiday snapshots on a cron schedule.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/countries"
	"github.com/zapponejosh/holidays-api/internal/database"
	"github.com/zapponejosh/holidays-api/internal/holidays"
)

// Store saves generated snapshots.
type Store interface {
	SaveSnapshot(ctx context.Context, s *database.Snapshot) error
}

// Options configure a Scheduler.
type Options struct {
	// Spec is a robfig/cron schedule such as "@daily" or "0 3 * * *".
	Spec       string
	Countries  []string
	YearsAhead int
	// Language is requested for every country. Empty means each
	// country's default.
	Language string
}

// Scheduler runs the snapshot refresh job.
type Scheduler struct {
	cron     *cron.Cron
	registry *countries.Registry
	store    Store
	opts     Options
	logger   *slog.Logger
	now      func() time.Time
}

// New prepares a scheduler. The job does not run until Start.
func New(registry *countries.Registry, store Store, opts Options, logger *slog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:     cron.New(),
		registry: registry,
		store:    store,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
	}
	if _, err := s.cron.AddFunc(opts.Spec, s.run); err != nil {
		return nil, fmt.Errorf("schedule %q: %w", opts.Spec, err)
	}
	return s, nil
}

// Start runs the schedule in its own goroutine.
func (s *Scheduler) Start() {
	s.logger.Info("snapshot scheduler started",
		slog.String("spec", s.opts.Spec),
		slog.Any("countries", s.opts.Countries),
		slog.Int("years_ahead", s.opts.YearsAhead),
	)
	s.cron.Start()
}

// Stop halts the schedule and waits for a running job, or for ctx.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) run() {
	ctx := context.Background()
	start := time.Now()
	n, err := s.Refresh(ctx)
	if err != nil {
		s.logger.Error("snapshot refresh failed",
			slog.Int("saved", n),
			slog.Any("error", err),
		)
		return
	}
	s.logger.Info("snapshot refresh complete",
		slog.Int("saved", n),
		slog.Duration("duration", time.Since(start)),
	)
}

// Refresh regenerates the snapshots of every configured country for the
// current year and the years ahead. It returns how many were saved; one
// failing country does not stop the others.
func (s *Scheduler) Refresh(ctx context.Context) (int, error) {
	year := s.now().Year()
	saved := 0
	var errs []error
	for _, code := range s.opts.Countries {
		for y := year; y <= year+s.opts.YearsAhead; y++ {
			if err := ctx.Err(); err != nil {
				return saved, err
			}
			snap, err := Generate(s.registry, database.SnapshotKey{Country: code, Year: y, Language: s.opts.Language})
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if err := s.store.SaveSnapshot(ctx, snap); err != nil {
				errs = append(errs, fmt.Errorf("save %s %d: %w", code, y, err))
				continue
			}
			saved++
		}
	}
	return saved, errors.Join(errs...)
}

// Generate builds the snapshot for key. The stored country and language
// are the resolved ones.
func Generate(registry *countries.Registry, key database.SnapshotKey) (*database.Snapshot, error) {
	c, err := registry.Lookup(key.Country)
	if err != nil {
		return nil, err
	}
	e, err := registry.New(c.Code(), holidays.Options{
		Years:       []int{key.Year},
		Language:    key.Language,
		Subdivision: key.Subdivision,
	})
	if err != nil {
		return nil, fmt.Errorf("generate %s %d: %w", c.Code(), key.Year, err)
	}
	set, err := e.Generate(key.Year)
	if err != nil {
		return nil, fmt.Errorf("generate %s %d: %w", c.Code(), key.Year, err)
	}

	snap := &database.Snapshot{
		SnapshotKey: database.SnapshotKey{
			Country:     c.Code(),
			Subdivision: key.Subdivision,
			Year:        key.Year,
			Language:    e.Options().Language,
		},
	}
	for _, h := range set.Holidays() {
		snap.Holidays = append(snap.Holidays, database.SnapshotHoliday{
			Date:      calendar.FormatDate(h.Date),
			Name:      h.Name,
			Category:  string(h.Category),
			Observed:  h.Observed,
			Estimated: h.Estimated,
		})
	}
	return snap, nil
}
