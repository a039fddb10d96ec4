package database

import "time"

// SnapshotKey identifies a generated holiday list.
type SnapshotKey struct {
	Country     string `json:"country"`
	Subdivision string `json:"subdivision,omitempty"`
	Year        int    `json:"year"`
	Language    string `json:"language"`
}

// Snapshot is a stored holiday list. Holidays is empty in listings.
type Snapshot struct {
	ID int64 `json:"id"`
	SnapshotKey
	GeneratedAt  time.Time         `json:"generated_at"`
	HolidayCount int               `json:"holiday_count"`
	Holidays     []SnapshotHoliday `json:"holidays,omitempty"`
}

// SnapshotHoliday is one holiday of a snapshot.
type SnapshotHoliday struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Name      string `json:"name"`
	Category  string `json:"category"`
	Observed  bool   `json:"observed"`
	Estimated bool   `json:"estimated"`
}

// CustomHoliday is an operator-supplied holiday for one country.
type CustomHoliday struct {
	ID        int64     `json:"id"`
	Country   string    `json:"country"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
