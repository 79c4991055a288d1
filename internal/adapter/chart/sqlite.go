package chart

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/flight-search/flight-value-engine/internal/domain"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Store is a redemption chart kept in a SQLite database.
type Store struct {
	db *sql.DB
}

// OpenSQLite opens the chart database with WAL mode enabled.
func OpenSQLite(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_journal=WAL&_fk=1")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single writer; the chart is read once at start-up.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EnsureSchema creates the chart table if it does not exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Seed upserts every entry of data in one transaction.
func (s *Store) Seed(ctx context.Context, data domain.ChartData) error {
	// Validate before touching the table.
	if _, err := domain.NewRedemptionChart(data); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO redemption_chart (airline, route_key, cabin_class, miles)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (airline, route_key, cabin_class) DO UPDATE SET miles = excluded.miles`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for airline, routes := range data {
		for routeKey, cabins := range routes {
			for cabin, miles := range cabins {
				if _, err := stmt.ExecContext(ctx, normalizeKey(airline), normalizeKey(routeKey), normalizeKey(cabin), miles); err != nil {
					return fmt.Errorf("failed to insert %s %s %s: %w", airline, routeKey, cabin, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit chart: %w", err)
	}
	return nil
}

// Load reads every row into an immutable chart.
func (s *Store) Load(ctx context.Context) (*domain.RedemptionChart, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT airline, route_key, cabin_class, miles
		FROM redemption_chart
		ORDER BY airline, route_key, cabin_class`)
	if err != nil {
		return nil, fmt.Errorf("failed to query chart: %w", err)
	}
	defer rows.Close()

	data := domain.ChartData{}
	for rows.Next() {
		var airline, routeKey, cabin string
		var miles int
		if err := rows.Scan(&airline, &routeKey, &cabin, &miles); err != nil {
			return nil, fmt.Errorf("failed to scan chart row: %w", err)
		}
		if data[airline] == nil {
			data[airline] = map[string]map[string]int{}
		}
		if data[airline][routeKey] == nil {
			data[airline][routeKey] = map[string]int{}
		}
		data[airline][routeKey][cabin] = miles
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read chart rows: %w", err)
	}

	return domain.NewRedemptionChart(data)
}

func normalizeKey(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
