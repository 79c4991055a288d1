package amadeus

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-value-engine/internal/domain"
)

const twoOffers = `{
	"meta": {"count": 2},
	"data": [
		{
			"type": "flight-offer",
			"id": "1",
			"itineraries": [
				{
					"duration": "PT8H5M",
					"segments": [
						{
							"departure": {"iataCode": "JFK", "terminal": "8", "at": "2025-06-01T18:30:00"},
							"arrival": {"iataCode": "HEL", "terminal": "2", "at": "2025-06-02T09:35:00"},
							"carrierCode": "AA",
							"number": "6904",
							"numberOfStops": 0
						}
					]
				}
			],
			"price": {"currency": "USD", "total": "800.00", "base": "650.00", "grandTotal": "800.00"}
		},
		{
			"type": "flight-offer",
			"id": "2",
			"itineraries": [
				{
					"duration": "PT10H",
					"segments": [
						{
							"departure": {"iataCode": "JFK", "at": "2025-06-01T07:00:00"},
							"arrival": {"iataCode": "LHR", "at": "2025-06-01T19:00:00"},
							"carrierCode": "BA",
							"number": "112"
						},
						{
							"departure": {"iataCode": "LHR", "at": "2025-06-01T20:00:00"},
							"arrival": {"iataCode": "HEL", "at": "2025-06-02T00:55:00"},
							"carrierCode": "BA",
							"number": "798"
						}
					]
				}
			],
			"price": {"currency": "USD", "total": "910.40", "base": "700.00"}
		}
	]
}`

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func criteria(origin, destination string) domain.SearchCriteria {
	return domain.SearchCriteria{Origin: origin, Destination: destination, DepartureDate: "2025-06-01", Passengers: 1}
}

func TestAdapter_Name(t *testing.T) {
	assert.Equal(t, "amadeus", NewAdapter("").Name())
}

func TestAdapter_Search(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "JFK-HEL.json", twoOffers)
	writeFile(t, dir, "SYD-BKK.json", `{"data": []}`)
	writeFile(t, dir, "IST-YYZ.json", `{"meta": {"count": 0}}`)
	writeFile(t, dir, "BAD-JSN.json", `{ invalid json }`)

	tests := []struct {
		name          string
		criteria      domain.SearchCriteria
		wantOffers    int
		wantErr       bool
		wantRetryable bool
		check         func(*testing.T, []domain.RawOffer)
	}{
		{
			name:       "decodes offers",
			criteria:   criteria("JFK", "HEL"),
			wantOffers: 2,
			check: func(t *testing.T, offers []domain.RawOffer) {
				first := offers[0]
				assert.Equal(t, "1", first.ID)
				assert.Equal(t, "800.00", first.Price.Total)
				assert.Equal(t, "650.00", first.Price.Base)
				assert.Equal(t, "USD", first.Price.Currency)
				require.Len(t, first.Itineraries, 1)
				assert.Equal(t, "PT8H5M", first.Itineraries[0].Duration)
				s := first.Itineraries[0].Segments[0]
				assert.Equal(t, "AA", s.CarrierCode)
				assert.Equal(t, "JFK", s.Departure.IataCode)
				assert.Equal(t, "2025-06-02T09:35:00", s.Arrival.At)
				assert.Len(t, offers[1].Itineraries[0].Segments, 2)
			},
		},
		{
			name: "max results truncates",
			criteria: func() domain.SearchCriteria {
				c := criteria("JFK", "HEL")
				c.MaxResults = 1
				return c
			}(),
			wantOffers: 1,
		},
		{
			name:       "empty data array",
			criteria:   criteria("SYD", "BKK"),
			wantOffers: 0,
		},
		{
			name:       "missing data field",
			criteria:   criteria("IST", "YYZ"),
			wantOffers: 0,
		},
		{
			name:          "malformed JSON is not retryable",
			criteria:      criteria("BAD", "JSN"),
			wantErr:       true,
			wantRetryable: false,
		},
		{
			name:          "unknown route is unavailable",
			criteria:      criteria("HEL", "JFK"),
			wantErr:       true,
			wantRetryable: false,
		},
	}

	adapter := NewAdapter(dir)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offers, err := adapter.Search(context.Background(), tt.criteria)

			if tt.wantErr {
				require.Error(t, err)
				providerErr, ok := err.(*domain.ProviderError)
				require.True(t, ok, "Error should be ProviderError")
				assert.Equal(t, ProviderName, providerErr.Provider)
				assert.Equal(t, tt.wantRetryable, providerErr.Retryable)
				assert.Nil(t, offers)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, offers)
			assert.Len(t, offers, tt.wantOffers)
			if tt.check != nil {
				tt.check(t, offers)
			}
		})
	}
}

func TestAdapter_Search_UnknownRouteIsUnavailable(t *testing.T) {
	_, err := NewAdapter(t.TempDir()).Search(context.Background(), criteria("JFK", "HEL"))

	assert.True(t, errors.Is(err, domain.ErrProviderUnavailable))
	assert.True(t, domain.IsUpstream(err))
	assert.Contains(t, err.Error(), "JFK-HEL")
}

func TestAdapter_Search_PrefersDatedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "JFK-HEL.json", twoOffers)
	writeFile(t, dir, "JFK-HEL-2025-06-01.json", `{"data": [{"id": "dated", "price": {"total": "1", "base": "1"}, "itineraries": []}]}`)

	adapter := NewAdapter(dir)

	offers, err := adapter.Search(context.Background(), criteria("JFK", "HEL"))
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "dated", offers[0].ID)

	other := criteria("JFK", "HEL")
	other.DepartureDate = "2025-06-02"
	offers, err = adapter.Search(context.Background(), other)
	require.NoError(t, err)
	assert.Len(t, offers, 2, "falls back to the undated file")
}

func TestAdapter_Search_DefaultMaxResults(t *testing.T) {
	dir := t.TempDir()
	var b strings.Builder
	b.WriteString(`{"data": [`)
	for i := 0; i < 60; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"id": "%d"}`, i)
	}
	b.WriteString(`]}`)
	writeFile(t, dir, "JFK-HEL.json", b.String())

	offers, err := NewAdapter(dir).Search(context.Background(), criteria("JFK", "HEL"))
	require.NoError(t, err)
	assert.Len(t, offers, domain.DefaultMaxResults)

	offers, err = NewAdapter(dir, WithMaxResults(7)).Search(context.Background(), criteria("JFK", "HEL"))
	require.NoError(t, err)
	assert.Len(t, offers, 7)
}

func TestAdapter_Search_ReadErrorIsRetryable(t *testing.T) {
	dir := t.TempDir()
	// A directory named like a dated response file makes the undated file the candidate;
	// a directory with the undated name makes reading it fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "JFK-HEL.json"), 0o755))
	writeFile(t, dir, "JFK-HEL-2025-06-01.json", twoOffers)
	require.NoError(t, os.Chmod(filepath.Join(dir, "JFK-HEL-2025-06-01.json"), 0o000))
	t.Cleanup(func() { _ = os.Chmod(filepath.Join(dir, "JFK-HEL-2025-06-01.json"), 0o644) })

	if f, err := os.Open(filepath.Join(dir, "JFK-HEL-2025-06-01.json")); err == nil {
		f.Close()
		t.Skip("file permissions are not enforced for this user")
	}

	_, err := NewAdapter(dir).Search(context.Background(), criteria("JFK", "HEL"))

	require.Error(t, err)
	assert.True(t, domain.IsRetryable(err))
}

func TestAdapter_Search_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	offers, err := NewAdapter(t.TempDir()).Search(ctx, criteria("JFK", "HEL"))

	require.Error(t, err)
	assert.Empty(t, offers)

	providerErr, ok := err.(*domain.ProviderError)
	require.True(t, ok, "Error should be ProviderError")
	assert.Equal(t, context.Canceled, providerErr.Err)
	assert.False(t, providerErr.Retryable, "Context cancellation should not be retryable")
}

func TestAdapter_SupportedRoutes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "SYD-BKK.json", `{"data": []}`)
	writeFile(t, dir, "JFK-HEL.json", `{"data": []}`)
	writeFile(t, dir, "JFK-HEL-2025-06-01.json", `{"data": []}`)
	writeFile(t, dir, "README.md", "notes")
	writeFile(t, dir, "jfk-hel.json", `{"data": []}`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "IST-YYZ.json"), 0o755))

	pairs, err := NewAdapter(dir).SupportedRoutes()

	require.NoError(t, err)
	assert.Equal(t, []domain.AirportPair{
		{Origin: "JFK", Destination: "HEL"},
		{Origin: "SYD", Destination: "BKK"},
	}, pairs)
}

func TestAdapter_SupportedRoutes_MissingDir(t *testing.T) {
	_, err := NewAdapter(filepath.Join(t.TempDir(), "missing")).SupportedRoutes()
	assert.Error(t, err)
}

// TestAdapter_Search_WithRecordedResponses runs against the files shipped in docs/response-mock.
func TestAdapter_Search_WithRecordedResponses(t *testing.T) {
	dir := "../../../../docs/response-mock"
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Skip("recorded responses not found, skipping")
	}

	adapter := NewAdapter(dir)
	pairs, err := adapter.SupportedRoutes()
	require.NoError(t, err)
	require.NotEmpty(t, pairs)

	for _, pair := range pairs {
		offers, err := adapter.Search(context.Background(), criteria(pair.Origin, pair.Destination))
		require.NoError(t, err, pair.Key())
		assert.NotEmpty(t, offers, pair.Key())
		for _, o := range offers {
			assert.NotEmpty(t, o.Price.Total)
			assert.NotEmpty(t, o.Itineraries)
		}
	}
}
