// Command apitest runs smoke checks against a running holidays API.
//
// Usage:
//
//	go run ./cmd/apitest -url http://localhost:8080 -v
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Countries int    `json:"countries"`
}

type Country struct {
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Languages    []string `json:"languages"`
	Subdivisions []string `json:"subdivisions"`
	Weekend      []string `json:"weekend"`
}

type Holiday struct {
	Date     string `json:"date"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Observed bool   `json:"observed"`
}

// HolidaysResponse is the response for /countries/{code}/holidays
type HolidaysResponse struct {
	Country  string    `json:"country"`
	Year     int       `json:"year"`
	Language string    `json:"language"`
	Holidays []Holiday `json:"holidays"`
}

// DateResponse is the response for /countries/{code}/holidays/{date}
type DateResponse struct {
	Date      string    `json:"date"`
	Weekday   string    `json:"weekday"`
	IsHoliday bool      `json:"is_holiday"`
	IsWorkday bool      `json:"is_workday"`
	Holidays  []Holiday `json:"holidays"`
}

type WorkdaysResponse struct {
	Workdays int `json:"workdays"`
}

type NextWorkdayResponse struct {
	Next string `json:"next"`
}

type EngineResponse struct {
	Engine  string                 `json:"engine"`
	Year    int                    `json:"year"`
	Anchors map[string]interface{} `json:"anchors"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Holidays API Smoke Tests")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)

	tr.testHealth()
	tr.testCountries()
	tr.testKnownDates()
	tr.testWorkdays()
	tr.testEngines()
	tr.testEdgeCases()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health HealthResponse
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}
	if health.Status == "healthy" {
		tr.recordSuccess(fmt.Sprintf("Health check passed (%d countries)", health.Countries))
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testCountries() {
	tr.printSection("Countries")

	var list []Country
	if err := tr.getData("/api/v1/countries", &list); err != nil {
		tr.recordError("List countries", err.Error())
		return
	}
	if len(list) == 0 {
		tr.recordError("List countries", "no countries returned")
		return
	}
	tr.recordSuccess(fmt.Sprintf("Listed %d countries", len(list)))

	for _, c := range list {
		var data HolidaysResponse
		path := fmt.Sprintf("/api/v1/countries/%s/holidays?year=2024", c.Code)
		if err := tr.getData(path, &data); err != nil {
			tr.recordError(c.Code, err.Error())
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s %s: %d holidays (%s)", c.Code, c.Name, len(data.Holidays), data.Language))
		if tr.verbose {
			tr.printHolidays(data.Holidays)
		}
	}
}

func (tr *TestRunner) testKnownDates() {
	tr.printSection("Known Dates")

	testCases := []struct {
		path        string
		wantName    string
		description string
	}{
		{"/api/v1/countries/US/holidays/2021-12-24", "Christmas Day (observed)", "US Christmas observed on Friday"},
		{"/api/v1/countries/US/holidays/2024-07-04", "Independence Day", "US Independence Day"},
		{"/api/v1/countries/GB/holidays/2022-12-27?subdiv=ENG", "Christmas Day (observed)", "GB Christmas observed on Tuesday"},
		{"/api/v1/countries/GB/holidays/2024-11-29?subdiv=SCT", "", "Scotland has no holiday the day before St Andrew's Day"},
		{"/api/v1/countries/CN/holidays/2024-02-10", "", "Chinese New Year 2024"},
		{"/api/v1/countries/IQ/holidays/2024-03-21", "", "Iraq Nowruz"},
	}

	for _, tc := range testCases {
		var data DateResponse
		if err := tr.getData(tc.path, &data); err != nil {
			tr.recordError(tc.path, err.Error())
			continue
		}
		switch {
		case tc.wantName == "" && strings.Contains(tc.description, "no holiday"):
			if data.IsHoliday {
				tr.recordError(tc.path, fmt.Sprintf("unexpected holiday %v", data.Holidays))
				continue
			}
		case tc.wantName == "":
			if !data.IsHoliday {
				tr.recordError(tc.path, "expected a holiday")
				continue
			}
		case !hasHoliday(data.Holidays, tc.wantName):
			tr.recordError(tc.path, fmt.Sprintf("expected %q, got %v", tc.wantName, data.Holidays))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s %s: %s", data.Date, data.Weekday, tc.description))
		if tr.verbose {
			tr.printHolidays(data.Holidays)
		}
	}
}

func (tr *TestRunner) testWorkdays() {
	tr.printSection("Workdays")

	var count WorkdaysResponse
	if err := tr.getData("/api/v1/countries/US/workdays?start=2024-12-21&end=2024-12-29", &count); err != nil {
		tr.recordError("Workday count", err.Error())
	} else if count.Workdays == 4 {
		tr.recordSuccess("Christmas week 2024 has 4 US workdays")
	} else {
		tr.recordError("Workday count", fmt.Sprintf("Expected 4 workdays, got %d", count.Workdays))
	}

	var next NextWorkdayResponse
	if err := tr.getData("/api/v1/countries/US/workdays/next?date=2024-12-24&n=1", &next); err != nil {
		tr.recordError("Next workday", err.Error())
	} else if next.Next == "2024-12-26" {
		tr.recordSuccess("Next US workday after 2024-12-24 is 2024-12-26")
	} else {
		tr.recordError("Next workday", fmt.Sprintf("Expected 2024-12-26, got %s", next.Next))
	}

	// Ranges over ten years are rejected
	resp, _ := tr.getRaw("/api/v1/countries/US/workdays?start=2000-01-01&end=2020-01-01")
	if resp != nil && resp.StatusCode == 400 {
		tr.recordSuccess("Range limit enforced")
	} else {
		tr.recordError("Range limit", "Should reject ranges over ten years")
	}
	closeBody(resp)
}

func (tr *TestRunner) testEngines() {
	tr.printSection("Calendar Engines")

	testCases := []struct {
		engine string
		year   int
		anchor string
		want   string
	}{
		{"easter", 2024, "western", "2024-03-31"},
		{"easter", 2024, "orthodox", "2024-05-05"},
		{"chinese", 2024, "new_year", "2024-02-10"},
	}
	for _, tc := range testCases {
		var data EngineResponse
		path := fmt.Sprintf("/api/v1/engines/%s/%d", tc.engine, tc.year)
		if err := tr.getData(path, &data); err != nil {
			tr.recordError(path, err.Error())
			continue
		}
		if got := fmt.Sprint(data.Anchors[tc.anchor]); got == tc.want {
			tr.recordSuccess(fmt.Sprintf("%s %d %s: %s", tc.engine, tc.year, tc.anchor, got))
		} else {
			tr.recordError(path, fmt.Sprintf("Expected %s %s, got %s", tc.anchor, tc.want, got))
		}
	}

	resp, _ := tr.getRaw("/api/v1/engines/burmese/1800")
	if resp != nil && resp.StatusCode == 404 {
		tr.recordSuccess("Year outside the Burmese tables rejected")
	} else {
		tr.recordError("Burmese range", "Should return 404")
	}
	closeBody(resp)
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	checks := []struct {
		path   string
		status int
		desc   string
	}{
		{"/api/v1/countries/XX/holidays", 404, "Unknown country rejected"},
		{"/api/v1/countries/US/holidays?year=abc", 400, "Invalid year rejected"},
		{"/api/v1/countries/US/holidays?categories=fun", 400, "Unknown category rejected"},
		{"/api/v1/countries/US/holidays?subdiv=ZZ", 400, "Unknown subdivision rejected"},
		{"/api/v1/countries/US/holidays/2024-13-01", 400, "Invalid date rejected"},
		{"/api/v1/admin/snapshots", 401, "Admin routes need an API key"},
	}
	for _, c := range checks {
		resp, err := tr.getRaw(c.path)
		if err != nil {
			tr.recordError(c.path, err.Error())
			continue
		}
		closeBody(resp)
		if resp.StatusCode == c.status {
			tr.recordSuccess(c.desc)
		} else {
			tr.recordError(c.path, fmt.Sprintf("Expected HTTP %d, got %d", c.status, resp.StatusCode))
		}
	}

	resp, err := tr.getRaw("/api/v1/countries/US/calendar.ics?year=2024")
	if err != nil {
		tr.recordError("Calendar export", err.Error())
		return
	}
	body, _ := io.ReadAll(resp.Body)
	closeBody(resp)
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "text/calendar") && strings.Contains(string(body), "BEGIN:VEVENT") {
		tr.recordSuccess("Calendar export returns iCalendar events")
	} else {
		tr.recordError("Calendar export", fmt.Sprintf("unexpected response %q", resp.Header.Get("Content-Type")))
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

func (tr *TestRunner) get(path string) (*APIResponse, error) {
	resp, err := tr.getRaw(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return nil, fmt.Errorf("API error: %s", errMsg)
	}

	return &apiResp, nil
}

func (tr *TestRunner) getData(path string, target interface{}) error {
	resp, err := tr.get(path)
	if err != nil {
		return err
	}
	// Re-marshal and unmarshal to convert map to struct
	dataBytes, err := json.Marshal(resp.Data)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}
	return json.Unmarshal(dataBytes, target)
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	return tr.client.Get(tr.baseURL + path)
}

func closeBody(resp *http.Response) {
	if resp != nil {
		resp.Body.Close()
	}
}

func hasHoliday(hs []Holiday, name string) bool {
	for _, h := range hs {
		if h.Name == name {
			return true
		}
	}
	return false
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) printHolidays(hs []Holiday) {
	for _, h := range hs {
		suffix := ""
		if h.Observed {
			suffix = " (observed)"
		}
		fmt.Printf("      - %s %s [%s]%s\n", h.Date, h.Name, h.Category, suffix)
	}
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	for _, err := range tr.errors {
		fmt.Printf("  • %s\n", err)
	}
	if tr.errorCount == 0 {
		fmt.Println("All checks passed! ✓")
	} else {
		fmt.Printf("\nChecks completed with %d failure(s)\n", tr.errorCount)
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output (list holidays)")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *verbose)
	runner.Run()

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
