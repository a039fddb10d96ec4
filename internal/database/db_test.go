package database

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"
)

// testDB creates a temporary in-memory database for testing.
func testDB(t *testing.T) *DB {
	t.Helper()

	cfg := Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	// Quiet logger for tests
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))

	db, err := Open(cfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	ctx := context.Background()
	if _, err := db.Migrate(ctx); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func sampleSnapshot() *Snapshot {
	return &Snapshot{
		SnapshotKey: SnapshotKey{Country: "GB", Subdivision: "ENG", Year: 2021, Language: "en_GB"},
		Holidays: []SnapshotHoliday{
			{Date: "2021-12-28", Name: "Boxing Day (observed)", Category: "public", Observed: true},
			{Date: "2021-12-25", Name: "Christmas Day", Category: "public"},
			{Date: "2021-12-27", Name: "Christmas Day (observed)", Category: "public", Observed: true},
		},
	}
}

// -----------------------------------------------------------------
// DB tests
// -----------------------------------------------------------------

func TestOpen(t *testing.T) {
	db := testDB(t)

	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health() error = %v", err)
	}
}

func TestMigrate(t *testing.T) {
	db := testDB(t)

	// Running again should be a no-op
	count, err := db.Migrate(context.Background())
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Migrate() count = %d, want 0 (already applied)", count)
	}
}

// -----------------------------------------------------------------
// Snapshot tests
// -----------------------------------------------------------------

func TestSaveAndGetSnapshot(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	s := sampleSnapshot()
	if err := db.SaveSnapshot(ctx, s); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}
	if s.ID == 0 {
		t.Error("SaveSnapshot() did not set ID")
	}
	if s.GeneratedAt.IsZero() {
		t.Error("SaveSnapshot() did not set GeneratedAt")
	}

	got, err := db.GetSnapshot(ctx, s.SnapshotKey)
	if err != nil {
		t.Fatalf("GetSnapshot() error = %v", err)
	}
	if got.HolidayCount != 3 {
		t.Fatalf("HolidayCount = %d, want 3", got.HolidayCount)
	}
	wantDates := []string{"2021-12-25", "2021-12-27", "2021-12-28"}
	for i, h := range got.Holidays {
		if h.Date != wantDates[i] {
			t.Errorf("Holidays[%d].Date = %s, want %s", i, h.Date, wantDates[i])
		}
	}
	if !got.Holidays[1].Observed || got.Holidays[0].Observed {
		t.Errorf("observed flags not round-tripped: %+v", got.Holidays)
	}
	if !got.GeneratedAt.Equal(s.GeneratedAt) {
		t.Errorf("GeneratedAt = %v, want %v", got.GeneratedAt, s.GeneratedAt)
	}
}

func TestSaveSnapshot_Replaces(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	first := sampleSnapshot()
	if err := db.SaveSnapshot(ctx, first); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}

	second := sampleSnapshot()
	second.Holidays = second.Holidays[:1]
	if err := db.SaveSnapshot(ctx, second); err != nil {
		t.Fatalf("SaveSnapshot() replace error = %v", err)
	}

	list, err := db.ListSnapshots(ctx, "GB")
	if err != nil {
		t.Fatalf("ListSnapshots() error = %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("ListSnapshots() = %d snapshots, want 1", len(list))
	}
	if list[0].ID != second.ID || list[0].HolidayCount != 1 {
		t.Errorf("ListSnapshots()[0] = %+v, want id %d with 1 holiday", list[0], second.ID)
	}
}

func TestGetSnapshot_NotFound(t *testing.T) {
	db := testDB(t)

	_, err := db.GetSnapshot(context.Background(), SnapshotKey{Country: "US", Year: 2030, Language: "en_US"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetSnapshot() error = %v, want ErrNotFound", err)
	}
}

func TestListSnapshots(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	for _, key := range []SnapshotKey{
		{Country: "US", Year: 2024, Language: "en_US"},
		{Country: "US", Year: 2025, Language: "en_US"},
		{Country: "AL", Year: 2024, Language: "sq"},
	} {
		if err := db.SaveSnapshot(ctx, &Snapshot{SnapshotKey: key}); err != nil {
			t.Fatalf("SaveSnapshot(%+v) error = %v", key, err)
		}
	}

	all, err := db.ListSnapshots(ctx, "")
	if err != nil {
		t.Fatalf("ListSnapshots() error = %v", err)
	}
	if len(all) != 3 || all[0].Country != "AL" {
		t.Errorf("ListSnapshots(\"\") = %+v", all)
	}

	us, err := db.ListSnapshots(ctx, "US")
	if err != nil {
		t.Fatalf("ListSnapshots(US) error = %v", err)
	}
	if len(us) != 2 || us[0].Year != 2025 {
		t.Errorf("ListSnapshots(US) = %+v, want 2025 first", us)
	}

	none, err := db.ListSnapshots(ctx, "CN")
	if err != nil {
		t.Fatalf("ListSnapshots(CN) error = %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Errorf("ListSnapshots(CN) = %#v, want empty slice", none)
	}
}

func TestDeleteSnapshot(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	s := sampleSnapshot()
	if err := db.SaveSnapshot(ctx, s); err != nil {
		t.Fatalf("SaveSnapshot() error = %v", err)
	}
	if err := db.DeleteSnapshot(ctx, s.ID); err != nil {
		t.Fatalf("DeleteSnapshot() error = %v", err)
	}
	if _, err := db.GetSnapshot(ctx, s.SnapshotKey); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetSnapshot() after delete error = %v, want ErrNotFound", err)
	}

	// Holidays go with their snapshot.
	var orphans int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM snapshot_holidays").Scan(&orphans); err != nil {
		t.Fatal(err)
	}
	if orphans != 0 {
		t.Errorf("%d snapshot holidays left after delete", orphans)
	}

	if err := db.DeleteSnapshot(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteSnapshot() twice error = %v, want ErrNotFound", err)
	}
}

// -----------------------------------------------------------------
// Custom holiday tests
// -----------------------------------------------------------------

func TestAddCustomHoliday(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	h := &CustomHoliday{Country: "US", Date: "2024-03-14", Name: "Pi Day", Source: "calendar.ics"}
	if err := db.AddCustomHoliday(ctx, h); err != nil {
		t.Fatalf("AddCustomHoliday() error = %v", err)
	}
	if h.ID == 0 {
		t.Error("AddCustomHoliday() did not set ID")
	}
	if h.Category != "public" {
		t.Errorf("Category = %q, want public", h.Category)
	}
}

func TestAddCustomHoliday_Duplicate(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	h := CustomHoliday{Country: "US", Date: "2024-03-14", Name: "Pi Day"}
	first := h
	if err := db.AddCustomHoliday(ctx, &first); err != nil {
		t.Fatalf("AddCustomHoliday() error = %v", err)
	}
	second := h
	if err := db.AddCustomHoliday(ctx, &second); err != ErrDuplicate {
		t.Errorf("AddCustomHoliday() duplicate error = %v, want ErrDuplicate", err)
	}

	// Same name on another date is fine.
	other := CustomHoliday{Country: "US", Date: "2025-03-14", Name: "Pi Day"}
	if err := db.AddCustomHoliday(ctx, &other); err != nil {
		t.Errorf("AddCustomHoliday() other year error = %v", err)
	}
}

func TestListCustomHolidays(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	for _, h := range []CustomHoliday{
		{Country: "US", Date: "2025-03-14", Name: "Pi Day"},
		{Country: "US", Date: "2024-10-13", Name: "Picnic", Category: "optional"},
		{Country: "US", Date: "2024-03-14", Name: "Pi Day"},
		{Country: "GB", Date: "2024-11-05", Name: "Bonfire Night"},
	} {
		h := h
		if err := db.AddCustomHoliday(ctx, &h); err != nil {
			t.Fatalf("AddCustomHoliday(%s) error = %v", h.Name, err)
		}
	}

	got, err := db.ListCustomHolidays(ctx, "US", 2024)
	if err != nil {
		t.Fatalf("ListCustomHolidays() error = %v", err)
	}
	if len(got) != 2 || got[0].Date != "2024-03-14" || got[1].Category != "optional" {
		t.Errorf("ListCustomHolidays(US, 2024) = %+v", got)
	}
	if got[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	all, err := db.ListCustomHolidays(ctx, "US", 0)
	if err != nil {
		t.Fatalf("ListCustomHolidays() error = %v", err)
	}
	if len(all) != 3 {
		t.Errorf("ListCustomHolidays(US, 0) = %d holidays, want 3", len(all))
	}
}

// -----------------------------------------------------------------
// Transaction tests
// -----------------------------------------------------------------

func TestWithTx(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx *Tx) error {
		return tx.AddCustomHoliday(ctx, &CustomHoliday{Country: "AL", Date: "2024-06-01", Name: "Festa"})
	})
	if err != nil {
		t.Fatalf("WithTx() success case error = %v", err)
	}

	got, err := db.ListCustomHolidays(ctx, "AL", 2024)
	if err != nil || len(got) != 1 {
		t.Errorf("holiday not created: %v, %v", got, err)
	}
}

func TestWithTx_Rollback(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	err := db.WithTx(ctx, func(tx *Tx) error {
		if err := tx.AddCustomHoliday(ctx, &CustomHoliday{Country: "AL", Date: "2024-06-02", Name: "Festa"}); err != nil {
			return err
		}
		// Force error to trigger rollback
		return ErrNotFound
	})
	if err != ErrNotFound {
		t.Fatalf("WithTx() rollback case error = %v, want ErrNotFound", err)
	}

	got, err := db.ListCustomHolidays(ctx, "AL", 0)
	if err != nil {
		t.Fatalf("ListCustomHolidays() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("holiday should not exist after rollback, got %+v", got)
	}
}
