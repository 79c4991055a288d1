package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-value-engine/internal/domain"
	"github.com/flight-search/flight-value-engine/internal/usecase"
)

type mockUseCase struct {
	result   domain.QueryResult
	err      error
	criteria domain.SearchCriteria
	opts     usecase.EvaluateOptions
	calls    int
}

func (m *mockUseCase) Evaluate(ctx context.Context, criteria domain.SearchCriteria, opts usecase.EvaluateOptions) (*domain.Evaluation, error) {
	m.calls++
	m.criteria, m.opts = criteria, opts
	if m.err != nil {
		return nil, m.err
	}
	return domain.NewEvaluation(criteria, m.result, domain.EvaluationMetadata{Provider: "amadeus"}), nil
}

type fakeRoutes struct {
	pairs []domain.AirportPair
	err   error
}

func (f fakeRoutes) SupportedRoutes() ([]domain.AirportPair, error) {
	return f.pairs, f.err
}

var threeRoutes = fakeRoutes{pairs: []domain.AirportPair{
	{Origin: "IST", Destination: "YYZ"},
	{Origin: "JFK", Destination: "HEL"},
	{Origin: "SYD", Destination: "BKK"},
}}

func route(id, price, base string, path ...string) domain.Route {
	p := decimal.RequireFromString(price)
	b := decimal.RequireFromString(base)
	return domain.Route{
		ID:          id,
		Origin:      path[0],
		Destination: path[len(path)-1],
		Path:        path,
		Duration:    8*time.Hour + 5*time.Minute,
		Price:       p,
		Base:        b,
		Taxes:       p.Sub(b),
		Stops:       len(path) - 2,
	}
}

func withAirlines(r domain.Route, airlines ...string) domain.Route {
	r.Airlines = airlines
	return r
}

func runCLI(t *testing.T, uc usecase.ValuationUseCase, routes RouteLister, input string, opts Options) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := NewRunner(uc, routes, domain.DefaultAllowList()).Run(context.Background(), strings.NewReader(input), &out, opts)
	return out.String(), err
}

func TestRunner_Valued(t *testing.T) {
	aa := withAirlines(route("Route-1", "800", "650", "JFK", "HEL"), "AA")
	uc := &mockUseCase{result: domain.Valued{
		TopN:    []domain.Route{aa},
		Optimal: aa,
		Valuation: domain.Valuation{
			Airline:       "AA",
			MilesRequired: 70000,
			ValuePerMile:  decimal.RequireFromString("650").Div(decimal.NewFromInt(70000)),
		},
	}}

	out, err := runCLI(t, uc, threeRoutes, "2\n2025-06-01\n", Options{})

	require.NoError(t, err)
	assert.Equal(t, "JFK", uc.criteria.Origin)
	assert.Equal(t, "HEL", uc.criteria.Destination)
	assert.Equal(t, "2025-06-01", uc.criteria.DepartureDate)
	assert.Zero(t, uc.opts.TopN, "the evaluator default applies")

	assert.Contains(t, out, "1. IST → YYZ\n2. JFK → HEL\n3. SYD → BKK\n")
	assert.Contains(t, out, promptRoute)
	assert.Contains(t, out, promptDate)
	assert.Contains(t, out, "Top 1 Cheapest Routes from JFK to HEL:")
	assert.Contains(t, out, "Route-1 | $800.00 (Base: $650.00 + Taxes: $150.00) | Stops: 0 | Route: JFK → HEL | Airlines: American Airlines")
	assert.Contains(t, out, "Duration: 8h 5m")
	assert.Contains(t, out, "Value per Mile (VPM): $0.0093/mile | Airline: American Airlines | Miles Required: 70000")
	assert.NotContains(t, out, "fallback")
}

func TestRunner_Fallback(t *testing.T) {
	lh := withAirlines(route("Route-2", "985.30", "785.30", "IST", "FRA", "YYZ"), "LH")
	ba := withAirlines(route("Route-4", "1043.70", "743.70", "IST", "LHR", "YYZ"), "BA")
	uc := &mockUseCase{result: domain.Fallback{
		TopN:    []domain.Route{lh, ba},
		Optimal: lh,
		Route:   ba,
		Valuation: domain.Valuation{
			Airline:       "BA",
			MilesRequired: 45000,
			ValuePerMile:  decimal.RequireFromString("743.70").Div(decimal.NewFromInt(45000)),
		},
	}}

	out, err := runCLI(t, uc, threeRoutes, "", Options{Route: 1, DepartureDate: "2025-06-01"})

	require.NoError(t, err)
	assert.NotContains(t, out, promptRoute, "answers given as options are not asked")
	assert.NotContains(t, out, promptDate)
	assert.Contains(t, out, "No redemption data found for the optimal route. Trying fallback...")
	assert.Contains(t, out, "Fallback Redeemable Route:\nIST → YYZ | Airline: British Airways | Route: IST → LHR → YYZ")
	assert.Contains(t, out, "Total: $1043.70 (Base: $743.70 + Taxes: $300.00)")
	assert.Contains(t, out, "Value per Mile (VPM): $0.0165/mile | Miles Required: 45000")
}

func TestRunner_EmptyResults(t *testing.T) {
	tk := withAirlines(route("Route-1", "500", "400", "IST", "YYZ"), "TK")

	tests := []struct {
		name   string
		result domain.QueryResult
		want   []string
	}{
		{name: "no offers", result: domain.NoOffers{}, want: []string{"No flights returned from API."}},
		{name: "upstream failure", result: domain.NoOffers{Err: errors.New("timeout")}, want: []string{"No flights returned from API."}},
		{name: "no allowed routes", result: domain.NoAllowedRoutes{OfferCount: 2}, want: []string{"No valid flights with allowed airlines."}},
		{
			name:   "unvalued",
			result: domain.Unvalued{TopN: []domain.Route{tk}, Optimal: tk},
			want:   []string{"Optimal Route:", "Trying fallback...", "No redeemable routes found."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, &mockUseCase{result: tt.result}, threeRoutes, "1\n2025-06-01\n", Options{})

			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
			assert.NotContains(t, out, "Value per Mile")
		})
	}
}

func TestRunner_InvalidChoice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
	}{
		{name: "not a number", input: "two\n"},
		{name: "zero", input: "0\n"},
		{name: "out of range", input: "4\n"},
		{name: "end of input", input: ""},
		{name: "option out of range", opts: Options{Route: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}

			out, err := runCLI(t, uc, threeRoutes, tt.input, tt.opts)

			assert.ErrorIs(t, err, ErrInvalidChoice)
			assert.Contains(t, out, "Invalid choice.")
			assert.Zero(t, uc.calls)
		})
	}
}

func TestRunner_CabinClass(t *testing.T) {
	uc := &mockUseCase{result: domain.NoOffers{}}

	out, err := runCLI(t, uc, threeRoutes, "", Options{Route: 3, DepartureDate: "2025-06-01", CabinClass: "business"})

	require.NoError(t, err)
	assert.Contains(t, out, "Available Routes (BUSINESS redemption data):")
	assert.Equal(t, "business", uc.criteria.CabinClass)
}

func TestRunner_Errors(t *testing.T) {
	t.Run("route listing fails", func(t *testing.T) {
		_, err := runCLI(t, &mockUseCase{}, fakeRoutes{err: errors.New("no dir")}, "", Options{})
		assert.ErrorContains(t, err, "list routes")
	})

	t.Run("no routes", func(t *testing.T) {
		uc := &mockUseCase{}
		out, err := runCLI(t, uc, fakeRoutes{}, "", Options{})
		require.NoError(t, err)
		assert.Contains(t, out, "No routes available.")
		assert.Zero(t, uc.calls)
	})

	t.Run("invalid date from use case", func(t *testing.T) {
		uc := &mockUseCase{err: domain.WrapInvalidRequest("departureDate must be in YYYY-MM-DD format")}
		_, err := runCLI(t, uc, threeRoutes, "1\nsoon\n", Options{})
		assert.True(t, domain.IsInvalidRequest(err))
	})
}

func TestRenderer_UnknownAirlineUsesCode(t *testing.T) {
	r := withAirlines(route("Route-1", "100", "80", "SYD", "SIN", "BKK"), "SQ", "ZZ")
	eval := domain.NewEvaluation(domain.SearchCriteria{Origin: "SYD", Destination: "BKK"},
		domain.Unvalued{TopN: []domain.Route{r}, Optimal: r}, domain.EvaluationMetadata{})

	var out bytes.Buffer
	NewRenderer(domain.DefaultAllowList()).Render(&out, eval)

	assert.Contains(t, out.String(), "Airlines: Singapore Airlines, ZZ")
	assert.Contains(t, out.String(), "Route: SYD → SIN → BKK")
}
