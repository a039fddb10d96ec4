package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/zapponejosh/holidays-api/internal/holidays"
)

const sampleOverlay = `
countries:
  US:
    holidays:
      - date: "03-14"
        name: Pi Day
        start_year: 2010
      - date: "02-29"
        name: Leap Day
        category: optional
  GB:
    holidays:
      - date: "11-05"
        name: Bonfire Night
        end_year: 2030
`

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	if err := os.WriteFile(path, []byte(sampleOverlay), 0o600); err != nil {
		t.Fatal(err)
	}

	extras, err := LoadOverlay(path)
	if err != nil {
		t.Fatalf("LoadOverlay() error = %v", err)
	}

	us := extras["US"]
	if len(us) != 2 {
		t.Fatalf("US extras = %d, want 2", len(us))
	}
	if us[0].Month != time.March || us[0].Day != 14 || us[0].Name != "Pi Day" || us[0].StartYear != 2010 {
		t.Errorf("US[0] = %+v", us[0])
	}
	if us[0].Category != holidays.Public {
		t.Errorf("US[0] category = %q, want public", us[0].Category)
	}
	if us[1].Month != time.February || us[1].Day != 29 || us[1].Category != holidays.Optional {
		t.Errorf("US[1] = %+v", us[1])
	}
	if gb := extras["GB"]; len(gb) != 1 || gb[0].EndYear != 2030 {
		t.Errorf("GB extras = %+v", gb)
	}
}

func TestLoadOverlayMissingFile(t *testing.T) {
	if _, err := LoadOverlay(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadOverlay() on a missing file returned no error")
	}
}

func TestParseOverlayReportsEveryBadEntry(t *testing.T) {
	data := `
countries:
  US:
    holidays:
      - date: "2024-03-14"
        name: Full Date
      - date: "13-01"
        name: Bad Month
      - date: "04-01"
        name: Fools
        category: pranks
`
	_, err := ParseOverlay([]byte(data))
	if err == nil {
		t.Fatal("ParseOverlay() accepted bad entries")
	}
	for _, want := range []string{"holiday 1", "holiday 2", "holiday 3"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestParseOverlayRejectsInvalidYAML(t *testing.T) {
	if _, err := ParseOverlay([]byte("countries: [")); err == nil {
		t.Error("ParseOverlay() accepted invalid YAML")
	}
}
