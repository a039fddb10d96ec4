// Command import loads custom holidays from an iCalendar file into the
// SQLite database.
//
// Usage:
//
//	go run ./cmd/import -ics company.ics -country US -db data/holidays.db
//
// This tool:
// 1. Parses the calendar, expanding recurring events inside -from..-to
// 2. Creates/opens the SQLite database and runs migrations
// 3. Imports every event in a single transaction
//
// Events already stored for the country are skipped, so the import can be
// run again after the calendar changes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/zapponejosh/holidays-api/internal/calendar"
	"github.com/zapponejosh/holidays-api/internal/countries"
	"github.com/zapponejosh/holidays-api/internal/database"
	"github.com/zapponejosh/holidays-api/internal/ical"
)

func main() {
	year := time.Now().Year()

	// Parse command line flags
	icsPath := flag.String("ics", "", "Path to the iCalendar file")
	country := flag.String("country", "US", "Country the holidays belong to")
	dbPath := flag.String("db", "data/holidays.db", "Path to SQLite database")
	from := flag.Int("from", year, "First year to expand recurring events into")
	to := flag.Int("to", year+1, "Last year to expand recurring events into")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	// Setup logger
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	if *icsPath == "" {
		fmt.Fprintln(os.Stderr, "import: -ics is required")
		flag.Usage()
		os.Exit(2)
	}

	// Run import
	stats, err := run(context.Background(), importOptions{
		icsPath: *icsPath,
		country: *country,
		dbPath:  *dbPath,
		window:  ical.Window{From: *from, To: *to},
	}, logger)
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Print summary
	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Events read:         %d\n", stats.Events)
	fmt.Printf("Holidays imported:   %d\n", stats.Imported)
	fmt.Printf("Already present:     %d\n", stats.Duplicates)
	fmt.Printf("Time elapsed:        %v\n", stats.Elapsed.Round(time.Millisecond))
}

type importOptions struct {
	icsPath string
	country string
	dbPath  string
	window  ical.Window
}

// ImportStats tracks import statistics.
type ImportStats struct {
	Events     int
	Imported   int
	Duplicates int
	Elapsed    time.Duration
}

func run(ctx context.Context, opts importOptions, logger *slog.Logger) (*ImportStats, error) {
	startTime := time.Now()
	stats := &ImportStats{}

	if opts.window.From > opts.window.To {
		return nil, fmt.Errorf("-from %d is after -to %d", opts.window.From, opts.window.To)
	}
	c, err := countries.Lookup(opts.country)
	if err != nil {
		return nil, err
	}

	// =========================================================================
	// Step 1: Read and parse the calendar
	// =========================================================================
	logger.Info("reading calendar", slog.String("path", opts.icsPath))

	f, err := os.Open(opts.icsPath)
	if err != nil {
		return nil, fmt.Errorf("open calendar: %w", err)
	}
	defer f.Close()

	events, err := ical.Parse(f, opts.window)
	if err != nil {
		if len(events) == 0 {
			return nil, err
		}
		// Import the events that could be read.
		logger.Warn("skipped unreadable events", slog.Any("error", err))
	}
	stats.Events = len(events)
	logger.Info("parsed calendar",
		slog.Int("events", len(events)),
		slog.Int("from", opts.window.From),
		slog.Int("to", opts.window.To),
	)

	// =========================================================================
	// Step 2: Open database and run migrations
	// =========================================================================
	logger.Info("opening database", slog.String("path", opts.dbPath))

	db, err := database.Open(database.DefaultConfig(opts.dbPath), logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations complete", slog.Int("applied", migrated))

	// =========================================================================
	// Step 3: Import events in a transaction
	// =========================================================================
	source := filepath.Base(opts.icsPath)
	err = db.WithTx(ctx, func(tx *database.Tx) error {
		stats.Imported, stats.Duplicates = 0, 0
		for _, e := range events {
			h := &database.CustomHoliday{
				Country:  c.Code(),
				Date:     calendar.FormatDate(e.Date),
				Name:     e.Name,
				Category: string(e.Category),
				Source:   source,
			}
			if err := tx.AddCustomHoliday(ctx, h); err != nil {
				if errors.Is(err, database.ErrDuplicate) {
					stats.Duplicates++
					continue
				}
				return fmt.Errorf("add %s %q: %w", h.Date, h.Name, err)
			}
			stats.Imported++
			logger.Debug("imported holiday",
				slog.String("date", h.Date),
				slog.String("name", h.Name),
			)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("import holidays: %w", err)
	}

	stats.Elapsed = time.Since(startTime)
	logger.Info("import complete",
		slog.String("country", c.Code()),
		slog.Int("imported", stats.Imported),
		slog.Int("duplicates", stats.Duplicates),
		slog.Duration("elapsed", stats.Elapsed),
	)
	return stats, nil
}
