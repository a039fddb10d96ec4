package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/zapponejosh/holidays-api/internal/database"
	"github.com/zapponejosh/holidays-api/internal/ical"
)

const companyCalendar = "BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:-//test//EN\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:picnic@example.com\r\n" +
	"DTSTAMP:20200101T000000Z\r\n" +
	"DTSTART;VALUE=DATE:20200814\r\n" +
	"RRULE:FREQ=YEARLY\r\n" +
	"SUMMARY:Company Picnic\r\n" +
	"CATEGORIES:optional\r\n" +
	"END:VEVENT\r\n" +
	"BEGIN:VEVENT\r\n" +
	"UID:founding@example.com\r\n" +
	"DTSTAMP:20200101T000000Z\r\n" +
	"DTSTART;VALUE=DATE:20240301\r\n" +
	"SUMMARY:Founding Day\r\n" +
	"END:VEVENT\r\n" +
	"END:VCALENDAR\r\n"

func TestRun(t *testing.T) {
	dir := t.TempDir()
	icsPath := filepath.Join(dir, "company.ics")
	if err := os.WriteFile(icsPath, []byte(companyCalendar), 0o644); err != nil {
		t.Fatal(err)
	}
	opts := importOptions{
		icsPath: icsPath,
		country: "usa",
		dbPath:  filepath.Join(dir, "holidays.db"),
		window:  ical.Window{From: 2024, To: 2025},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	stats, err := run(ctx, opts, logger)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if stats.Events != 3 || stats.Imported != 3 || stats.Duplicates != 0 {
		t.Errorf("stats = %+v, want 3 events imported", stats)
	}

	// Running again finds everything already stored.
	stats, err = run(ctx, opts, logger)
	if err != nil {
		t.Fatalf("run() again error = %v", err)
	}
	if stats.Imported != 0 || stats.Duplicates != 3 {
		t.Errorf("second stats = %+v, want 3 duplicates", stats)
	}

	db, err := database.Open(database.DefaultConfig(opts.dbPath), logger)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	got, err := db.ListCustomHolidays(ctx, "US", 2024)
	if err != nil {
		t.Fatalf("ListCustomHolidays() error = %v", err)
	}
	if len(got) != 2 || got[0].Name != "Founding Day" || got[1].Category != "optional" || got[1].Source != "company.ics" {
		t.Errorf("stored 2024 holidays = %+v", got)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		opts importOptions
	}{
		{"missing file", importOptions{icsPath: filepath.Join(dir, "none.ics"), country: "US", window: ical.Window{From: 2024, To: 2024}}},
		{"unknown country", importOptions{icsPath: filepath.Join(dir, "none.ics"), country: "XX", window: ical.Window{From: 2024, To: 2024}}},
		{"reversed window", importOptions{icsPath: filepath.Join(dir, "none.ics"), country: "US", window: ical.Window{From: 2025, To: 2024}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.dbPath = filepath.Join(dir, "holidays.db")
			if _, err := run(context.Background(), tt.opts, logger); err == nil {
				t.Error("run() error = nil, want an error")
			}
		})
	}
}
