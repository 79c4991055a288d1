// Package amadeus provides the flight offer source backed by recorded Amadeus
// flight-offers-search responses.
package amadeus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/flight-search/flight-value-engine/internal/domain"
)

// ProviderName is the unique identifier for this provider.
const ProviderName = "amadeus"

// routeFileRegex matches "<ORIG>-<DEST>.json" response files.
var routeFileRegex = regexp.MustCompile(`^([A-Z]{3})-([A-Z]{3})\.json$`)

// Adapter serves offers from JSON files named after the route, optionally dated:
// "<dir>/JFK-HEL-2025-06-01.json" is preferred over "<dir>/JFK-HEL.json".
type Adapter struct {
	dir        string
	maxResults int
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithMaxResults caps the number of offers returned when the criteria do not set one.
func WithMaxResults(n int) Option {
	return func(a *Adapter) {
		if n > 0 {
			a.maxResults = n
		}
	}
}

// NewAdapter creates an Adapter reading response files from dir.
func NewAdapter(dir string, opts ...Option) *Adapter {
	a := &Adapter{dir: dir, maxResults: domain.DefaultMaxResults}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the provider identifier.
func (a *Adapter) Name() string {
	return ProviderName
}

// Search returns the recorded offers for the criteria's route.
//
// Errors are *domain.ProviderError: a missing route is unavailable and not
// retryable, a failed read is retryable, an undecodable file is not.
func (a *Adapter) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.RawOffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	path, err := a.responseFile(criteria)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewRetryableProviderError(ProviderName, fmt.Errorf("read %s: %w", filepath.Base(path), err))
	}

	if err := ctx.Err(); err != nil {
		return nil, domain.NewProviderError(ProviderName, err)
	}

	var response domain.OfferResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, domain.NewProviderError(ProviderName, fmt.Errorf("decode %s: %w", filepath.Base(path), err))
	}

	limit := criteria.MaxResults
	if limit <= 0 {
		limit = a.maxResults
	}
	offers := response.Data
	if len(offers) > limit {
		offers = offers[:limit]
	}
	if offers == nil {
		offers = []domain.RawOffer{}
	}

	return offers, nil
}

// responseFile resolves the dated file first, then the undated one.
func (a *Adapter) responseFile(criteria domain.SearchCriteria) (string, error) {
	key := criteria.RouteKey()
	candidates := []string{filepath.Join(a.dir, key+".json")}
	if criteria.DepartureDate != "" {
		candidates = append([]string{filepath.Join(a.dir, key+"-"+criteria.DepartureDate+".json")}, candidates...)
	}

	for _, path := range candidates {
		info, err := os.Stat(path)
		switch {
		case err == nil && !info.IsDir():
			return path, nil
		case err == nil, errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return "", domain.NewRetryableProviderError(ProviderName, fmt.Errorf("stat %s: %w", filepath.Base(path), err))
		}
	}

	return "", domain.NewProviderError(ProviderName, fmt.Errorf("%w: no offers recorded for %s", domain.ErrProviderUnavailable, key))
}

// SupportedRoutes lists the origin/destination pairs with an undated response file, sorted by key.
func (a *Adapter) SupportedRoutes() ([]domain.AirportPair, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", a.dir, err)
	}

	pairs := make([]domain.AirportPair, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		m := routeFileRegex.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		pairs = append(pairs, domain.AirportPair{Origin: m[1], Destination: m[2]})
	}

	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Key() < pairs[j].Key()
	})
	return pairs, nil
}

// Ensure Adapter implements domain.OfferProvider.
var _ domain.OfferProvider = (*Adapter)(nil)
