package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/flight-value-engine/internal/domain"
)

func TestValuePerMile(t *testing.T) {
	tests := []struct {
		name      string
		price     string
		taxes     string
		miles     int
		want      string
		wantCents string
	}{
		{name: "reference round trip", price: "800.00", taxes: "150.00", miles: 70000, want: "0.009286", wantCents: "0.93"},
		{name: "one cent per mile", price: "600", taxes: "100", miles: 50000, want: "0.01", wantCents: "1"},
		{name: "no taxes", price: "450", taxes: "0", miles: 30000, want: "0.015", wantCents: "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValuePerMile(decimal.RequireFromString(tt.price), decimal.RequireFromString(tt.taxes), tt.miles)

			require.NoError(t, err)
			assert.True(t, got.Round(6).Equal(decimal.RequireFromString(tt.want)), "got %s", got)

			cents := domain.Valuation{ValuePerMile: got}.CentsPerMile()
			assert.True(t, cents.Equal(decimal.RequireFromString(tt.wantCents)), "got %s cents", cents)
		})
	}
}

func TestValuePerMile_InvalidMiles(t *testing.T) {
	price := decimal.RequireFromString("800")
	taxes := decimal.RequireFromString("150")

	t.Run("zero miles is a division by zero", func(t *testing.T) {
		_, err := ValuePerMile(price, taxes, 0)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrDivisionByZero))
		assert.True(t, domain.IsValuation(err))
	})

	t.Run("negative miles is a valuation error", func(t *testing.T) {
		_, err := ValuePerMile(price, taxes, -100)

		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrDivisionByZero))
		assert.True(t, domain.IsValuation(err))
	})
}

func TestLookupMiles(t *testing.T) {
	chart := testChart()
	route := testRoute("r", "100", 0, time.Hour, "AA")

	miles, ok := LookupMiles(chart, route, "AA", "ECONOMY")
	assert.True(t, ok)
	assert.Equal(t, 70000, miles)

	_, ok = LookupMiles(chart, route, "AA", "FIRST")
	assert.False(t, ok)

	reversed := route
	reversed.Origin, reversed.Destination = route.Destination, route.Origin
	_, ok = LookupMiles(chart, reversed, "AA", "ECONOMY")
	assert.False(t, ok, "no reverse-route lookup")
}

func TestFindValuableRoute(t *testing.T) {
	chart := testChart()
	allowed := domain.DefaultAllowList()

	tests := []struct {
		name        string
		routes      []domain.Route
		cabin       string
		wantFound   bool
		wantRoute   string
		wantAirline string
		wantMiles   int
		wantPhase   SearchPhase
	}{
		{
			name: "optimal route has data",
			routes: []domain.Route{
				testRoute("cheap", "300", 0, time.Hour, "AA"),
				testRoute("pricey", "900", 0, time.Hour, "BA"),
			},
			cabin:     "ECONOMY",
			wantFound: true, wantRoute: "cheap", wantAirline: "AA", wantMiles: 70000, wantPhase: PhaseOptimal,
		},
		{
			name: "second carrier of optimal route",
			routes: []domain.Route{
				testRoute("cheap", "300", 1, time.Hour, "LH", "BA"),
			},
			cabin:     "ECONOMY",
			wantFound: true, wantRoute: "cheap", wantAirline: "BA", wantMiles: 50000, wantPhase: PhaseOptimal,
		},
		{
			name: "first carrier in route order wins",
			routes: []domain.Route{
				testRoute("cheap", "300", 1, time.Hour, "BA", "AA"),
			},
			cabin:     "ECONOMY",
			wantFound: true, wantRoute: "cheap", wantAirline: "BA", wantMiles: 50000, wantPhase: PhaseOptimal,
		},
		{
			name: "fallback to pricier route",
			routes: []domain.Route{
				testRoute("pricier", "800", 0, time.Hour, "AA"),
				testRoute("optimal", "300", 0, time.Hour, "LH"),
				testRoute("priciest", "900", 0, time.Hour, "BA"),
			},
			cabin:     "ECONOMY",
			wantFound: true, wantRoute: "pricier", wantAirline: "AA", wantMiles: 70000, wantPhase: PhaseFallback,
		},
		{
			name: "greedy fallback takes the cheaper hit even with worse value",
			routes: []domain.Route{
				testRoute("optimal", "100", 0, time.Hour, "TK"),
				testRoute("poor-value", "200", 0, time.Hour, "AA"),
				testRoute("great-value", "2000", 0, time.Hour, "BA"),
			},
			cabin:     "ECONOMY",
			wantFound: true, wantRoute: "poor-value", wantAirline: "AA", wantMiles: 70000, wantPhase: PhaseFallback,
		},
		{
			name: "carriers outside the allow-list are never looked up",
			routes: []domain.Route{
				testRoute("optimal", "100", 0, time.Hour, "UA", "TK"),
				testRoute("fallback", "500", 0, time.Hour, "AA"),
			},
			cabin:     "ECONOMY",
			wantFound: true, wantRoute: "fallback", wantAirline: "AA", wantMiles: 70000, wantPhase: PhaseFallback,
		},
		{
			name: "cabin class is part of the key",
			routes: []domain.Route{
				testRoute("optimal", "100", 0, time.Hour, "BA", "AA"),
			},
			cabin:     "BUSINESS",
			wantFound: true, wantRoute: "optimal", wantAirline: "AA", wantMiles: 120000, wantPhase: PhaseOptimal,
		},
		{
			name: "no route has data",
			routes: []domain.Route{
				testRoute("a", "100", 0, time.Hour, "TK"),
				testRoute("b", "200", 0, time.Hour, "LH"),
			},
			cabin:     "ECONOMY",
			wantFound: false,
		},
		{
			name:      "empty routes",
			routes:    nil,
			cabin:     "ECONOMY",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, found := FindValuableRoute(tt.routes, allowed, chart, tt.cabin)

			require.Equal(t, tt.wantFound, found)
			if !tt.wantFound {
				return
			}
			assert.Equal(t, tt.wantRoute, hit.Route.ID)
			assert.Equal(t, tt.wantAirline, hit.Airline)
			assert.Equal(t, tt.wantMiles, hit.Miles)
			assert.Equal(t, tt.wantPhase, hit.Phase)
		})
	}
}

func TestFindValuableRoute_Deterministic(t *testing.T) {
	chart := testChart()
	allowed := domain.DefaultAllowList()
	routes := []domain.Route{
		testRoute("a", "100", 0, time.Hour, "TK"),
		testRoute("b", "400", 0, time.Hour, "LH", "BA", "AA"),
		testRoute("c", "400", 0, time.Hour, "AA"),
	}

	first, ok := FindValuableRoute(routes, allowed, chart, "ECONOMY")
	require.True(t, ok)

	for i := 0; i < 50; i++ {
		again, ok := FindValuableRoute(routes, allowed, chart, "ECONOMY")
		require.True(t, ok)
		assert.Equal(t, first.Route.ID, again.Route.ID)
		assert.Equal(t, first.Airline, again.Airline)
	}
	assert.Equal(t, "b", first.Route.ID)
	assert.Equal(t, "BA", first.Airline)
}

func TestFindValuableRoute_NilChart(t *testing.T) {
	_, ok := FindValuableRoute([]domain.Route{testRoute("a", "1", 0, time.Hour, "AA")}, domain.DefaultAllowList(), nil, "ECONOMY")
	assert.False(t, ok)
}
