// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/flight-search/flight-value-engine/internal/adapter/chart"
	"github.com/flight-search/flight-value-engine/internal/domain"
)

// ProjectRoot returns the repository root directory.
func ProjectRoot(t *testing.T) string {
	t.Helper()

	// Get the path relative to this file
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}

	// Navigate to project root (testutil is in test/testutil)
	return filepath.Join(filepath.Dir(currentFile), "..", "..")
}

// MockDir returns the directory of the recorded upstream responses.
func MockDir(t *testing.T) string {
	t.Helper()
	return filepath.Join(ProjectRoot(t), "docs", "response-mock")
}

// ChartPath returns the path of the shipped redemption chart.
func ChartPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(ProjectRoot(t), "data", "redemption_chart.json")
}

// LoadMockJSON loads a JSON file from the docs/response-mock directory.
func LoadMockJSON(t *testing.T, filename string) []byte {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(MockDir(t), filename))
	if err != nil {
		t.Fatalf("Failed to load mock file %s: %v", filename, err)
	}
	return data
}

// LoadMockOffers decodes the recorded offers of a route key such as "JFK-HEL".
func LoadMockOffers(t *testing.T, routeKey string) []domain.RawOffer {
	t.Helper()

	var resp domain.OfferResponse
	if err := json.Unmarshal(LoadMockJSON(t, routeKey+".json"), &resp); err != nil {
		t.Fatalf("Failed to decode mock file %s: %v", routeKey, err)
	}
	return resp.Data
}

// ShippedChart loads data/redemption_chart.json.
func ShippedChart(t *testing.T) *domain.RedemptionChart {
	t.Helper()

	c, err := chart.LoadJSON(ChartPath(t))
	if err != nil {
		t.Fatalf("Failed to load redemption chart: %v", err)
	}
	return c
}

// MustParseTime parses a time string in RFC3339 format.
// It fails the test if parsing fails.
func MustParseTime(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, dateStr)
	if err != nil {
		t.Fatalf("Failed to parse time %s: %v", dateStr, err)
	}
	return parsed
}

// MustParseDate parses a date string in YYYY-MM-DD format.
// It fails the test if parsing fails.
func MustParseDate(t *testing.T, dateStr string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		t.Fatalf("Failed to parse date %s: %v", dateStr, err)
	}
	return parsed
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
