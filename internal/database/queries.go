package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries multiple formats and returns nil if parsing fails.
func parseTimestamp(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return &t
		}
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// yearPattern matches YYYY-MM-DD dates of year with LIKE.
func yearPattern(year int) string {
	return fmt.Sprintf("%04d-%%", year)
}

// =============================================================================
// Snapshot Queries
// =============================================================================

// SaveSnapshot stores s, replacing any snapshot with the same key. The ID
// and GeneratedAt of s are set on success.
func (db *DB) SaveSnapshot(ctx context.Context, s *Snapshot) error {
	if s.GeneratedAt.IsZero() {
		s.GeneratedAt = time.Now().UTC()
	}

	return db.WithTx(ctx, func(tx *Tx) error {
		_, err := tx.ExecContext(ctx, `
			DELETE FROM holiday_snapshots
			WHERE country = ? AND subdivision = ? AND year = ? AND language = ?
		`, s.Country, s.Subdivision, s.Year, s.Language)
		if err != nil {
			return fmt.Errorf("delete previous snapshot: %w", err)
		}

		res, err := tx.ExecContext(ctx, `
			INSERT INTO holiday_snapshots (country, subdivision, year, language, generated_at)
			VALUES (?, ?, ?, ?, ?)
		`, s.Country, s.Subdivision, s.Year, s.Language, s.GeneratedAt.Format(time.RFC3339Nano))
		if err != nil {
			return fmt.Errorf("insert snapshot: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("snapshot id: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO snapshot_holidays (snapshot_id, date, name, category, observed, estimated)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("prepare snapshot holidays: %w", err)
		}
		defer stmt.Close()

		for _, h := range s.Holidays {
			if _, err := stmt.ExecContext(ctx, id, h.Date, h.Name, h.Category, boolInt(h.Observed), boolInt(h.Estimated)); err != nil {
				return fmt.Errorf("insert snapshot holiday %s: %w", h.Date, err)
			}
		}

		s.ID = id
		s.HolidayCount = len(s.Holidays)
		return nil
	})
}

// GetSnapshot returns the snapshot for key with its holidays in date order.
// Returns ErrNotFound if none was saved.
func (db *DB) GetSnapshot(ctx context.Context, key SnapshotKey) (*Snapshot, error) {
	s := Snapshot{SnapshotKey: key}
	var generatedAt sql.NullString

	err := db.QueryRowContext(ctx, `
		SELECT id, generated_at
		FROM holiday_snapshots
		WHERE country = ? AND subdivision = ? AND year = ? AND language = ?
	`, key.Country, key.Subdivision, key.Year, key.Language).Scan(&s.ID, &generatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	if t := parseTimestamp(generatedAt); t != nil {
		s.GeneratedAt = *t
	}

	rows, err := db.QueryContext(ctx, `
		SELECT date, name, category, observed, estimated
		FROM snapshot_holidays
		WHERE snapshot_id = ?
		ORDER BY date, id
	`, s.ID)
	if err != nil {
		return nil, fmt.Errorf("query snapshot holidays: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h SnapshotHoliday
		if err := rows.Scan(&h.Date, &h.Name, &h.Category, &h.Observed, &h.Estimated); err != nil {
			return nil, fmt.Errorf("scan snapshot holiday: %w", err)
		}
		s.Holidays = append(s.Holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshot holidays: %w", err)
	}

	s.HolidayCount = len(s.Holidays)
	return &s, nil
}

// ListSnapshots returns snapshot summaries, optionally for one country,
// newest year first.
func (db *DB) ListSnapshots(ctx context.Context, country string) ([]Snapshot, error) {
	query := `
		SELECT s.id, s.country, s.subdivision, s.year, s.language, s.generated_at,
			(SELECT COUNT(*) FROM snapshot_holidays h WHERE h.snapshot_id = s.id)
		FROM holiday_snapshots s
	`
	var args []any
	if country != "" {
		query += " WHERE s.country = ?"
		args = append(args, country)
	}
	query += " ORDER BY s.country, s.year DESC, s.subdivision, s.language"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	snapshots := []Snapshot{}
	for rows.Next() {
		var s Snapshot
		var generatedAt sql.NullString
		if err := rows.Scan(&s.ID, &s.Country, &s.Subdivision, &s.Year, &s.Language, &generatedAt, &s.HolidayCount); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		if t := parseTimestamp(generatedAt); t != nil {
			s.GeneratedAt = *t
		}
		snapshots = append(snapshots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return snapshots, nil
}

// DeleteSnapshot removes a snapshot and its holidays.
// Returns ErrNotFound if the snapshot doesn't exist.
func (db *DB) DeleteSnapshot(ctx context.Context, id int64) error {
	res, err := db.ExecContext(ctx, "DELETE FROM holiday_snapshots WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// =============================================================================
// Custom Holiday Queries
// =============================================================================

// AddCustomHoliday inserts h and sets its ID. Returns ErrDuplicate if the
// country already has a holiday with that name on that date.
func (db *DB) AddCustomHoliday(ctx context.Context, h *CustomHoliday) error {
	return addCustomHoliday(ctx, db.DB, h)
}

// AddCustomHoliday is DB.AddCustomHoliday inside the transaction.
func (tx *Tx) AddCustomHoliday(ctx context.Context, h *CustomHoliday) error {
	return addCustomHoliday(ctx, tx.Tx, h)
}

func addCustomHoliday(ctx context.Context, q querier, h *CustomHoliday) error {
	if h.Category == "" {
		h.Category = "public"
	}
	res, err := q.ExecContext(ctx, `
		INSERT INTO custom_holidays (country, date, name, category, source)
		VALUES (?, ?, ?, ?, ?)
	`, h.Country, h.Date, h.Name, h.Category, h.Source)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert custom holiday: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("custom holiday id: %w", err)
	}
	h.ID = id
	if h.CreatedAt.IsZero() {
		h.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}
	return nil
}

// ListCustomHolidays returns a country's custom holidays in date order. A
// zero year returns every year.
func (db *DB) ListCustomHolidays(ctx context.Context, country string, year int) ([]CustomHoliday, error) {
	query := `
		SELECT id, country, date, name, category, source, created_at
		FROM custom_holidays
		WHERE country = ?
	`
	args := []any{country}
	if year != 0 {
		query += " AND date LIKE ?"
		args = append(args, yearPattern(year))
	}
	query += " ORDER BY date, id"

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query custom holidays: %w", err)
	}
	defer rows.Close()

	out := []CustomHoliday{}
	for rows.Next() {
		var h CustomHoliday
		var createdAt sql.NullString
		if err := rows.Scan(&h.ID, &h.Country, &h.Date, &h.Name, &h.Category, &h.Source, &createdAt); err != nil {
			return nil, fmt.Errorf("scan custom holiday: %w", err)
		}
		if t := parseTimestamp(createdAt); t != nil {
			h.CreatedAt = *t
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate custom holidays: %w", err)
	}
	return out, nil
}
