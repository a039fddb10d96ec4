package database

// migrationsSQL contains all database migrations.
// Migrations are applied in order by version number.
var migrationsSQL = map[int]string{
	1: migrationV1Snapshots,
	2: migrationV2CustomHolidays,
}

// migrationV1Snapshots stores generated holiday lists. A snapshot is keyed
// by what was requested (country, subdivision, year, language) and is
// replaced wholesale when regenerated.
const migrationV1Snapshots = `
CREATE TABLE IF NOT EXISTS holiday_snapshots (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    country TEXT NOT NULL,
    subdivision TEXT NOT NULL DEFAULT '',
    year INTEGER NOT NULL,
    language TEXT NOT NULL,
    generated_at TEXT NOT NULL,
    UNIQUE (country, subdivision, year, language)
);

CREATE TABLE IF NOT EXISTS snapshot_holidays (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    snapshot_id INTEGER NOT NULL REFERENCES holiday_snapshots(id) ON DELETE CASCADE,
    date TEXT NOT NULL,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    observed INTEGER NOT NULL DEFAULT 0 CHECK (observed IN (0, 1)),
    estimated INTEGER NOT NULL DEFAULT 0 CHECK (estimated IN (0, 1))
);

CREATE INDEX IF NOT EXISTS idx_snapshot_holidays_snapshot ON snapshot_holidays(snapshot_id, date);
`

// migrationV2CustomHolidays stores operator-imported holidays, usually
// from an iCalendar file. They are merged into API responses.
const migrationV2CustomHolidays = `
CREATE TABLE IF NOT EXISTS custom_holidays (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    country TEXT NOT NULL,
    date TEXT NOT NULL,
    name TEXT NOT NULL,
    category TEXT NOT NULL DEFAULT 'public',
    source TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ', 'now')),
    UNIQUE (country, date, name)
);

CREATE INDEX IF NOT EXISTS idx_custom_holidays_country_date ON custom_holidays(country, date);
`
