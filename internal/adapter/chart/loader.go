// Package chart loads the redemption chart from a JSON file or a SQLite database.
package chart

import (
	"context"
	"fmt"
	"strings"

	"github.com/flight-search/flight-value-engine/internal/domain"
)

// Supported chart sources.
const (
	SourceJSON   = "json"
	SourceSQLite = "sqlite"
)

// IsValidSource reports whether source names a supported chart store.
func IsValidSource(source string) bool {
	switch strings.ToLower(source) {
	case SourceJSON, SourceSQLite:
		return true
	}
	return false
}

// Load builds the chart from the given source. An empty source means JSON.
func Load(ctx context.Context, source, path string) (*domain.RedemptionChart, error) {
	switch strings.ToLower(source) {
	case "", SourceJSON:
		return LoadJSON(path)
	case SourceSQLite:
		store, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		defer store.Close()

		if err := store.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		return store.Load(ctx)
	default:
		return nil, fmt.Errorf("unknown chart source %q", source)
	}
}
