package usecase

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/flight-search/flight-value-engine/internal/domain"
)

// SearchPhase tells which step of the redemption search produced a hit.
type SearchPhase string

const (
	// PhaseOptimal means the optimal route itself has redemption data.
	PhaseOptimal SearchPhase = "optimal"

	// PhaseFallback means the hit came from the price-ordered scan of all routes.
	PhaseFallback SearchPhase = "fallback"
)

// RedemptionHit is a route paired with an airline that has an award price for it.
type RedemptionHit struct {
	Route   domain.Route
	Airline string
	Miles   int
	Phase   SearchPhase
}

// LookupMiles returns the miles the airline charges for the route in the given cabin.
func LookupMiles(chart *domain.RedemptionChart, route domain.Route, airline, cabinClass string) (int, bool) {
	return chart.LookupMiles(route.Origin, route.Destination, airline, cabinClass)
}

// ValuePerMile computes (price - taxes) / miles in the fare currency, unrounded.
// miles must be positive; zero yields a *domain.ValuationError wrapping domain.ErrDivisionByZero.
func ValuePerMile(price, taxes decimal.Decimal, miles int) (decimal.Decimal, error) {
	switch {
	case miles == 0:
		return decimal.Zero, &domain.ValuationError{Miles: miles, Err: domain.ErrDivisionByZero}
	case miles < 0:
		return decimal.Zero, &domain.ValuationError{Miles: miles, Err: errors.New("miles required must be positive")}
	}
	return price.Sub(taxes).Div(decimal.NewFromInt(int64(miles))), nil
}

// FindValuableRoute returns the first route/airline pair with redemption data.
//
// The optimal route is tried first, airline by airline in route order. When it has
// no chart entry, every route is scanned in ascending price order. The first hit
// wins even if a pricier route would yield a better value per mile.
// Only allowed carriers are looked up, and entries without a positive mileage
// count as misses. The result is deterministic for a given input order.
func FindValuableRoute(routes []domain.Route, allowed domain.AllowList, chart *domain.RedemptionChart, cabinClass string) (RedemptionHit, bool) {
	var found RedemptionHit
	ok := walkRedemptions(routes, allowed, chart, cabinClass, func(hit RedemptionHit) bool {
		if hit.Miles <= 0 {
			return false
		}
		found = hit
		return true
	})
	return found, ok
}

// walkRedemptions visits chart hits in search order until visit returns true.
// It reports whether visit accepted a hit.
func walkRedemptions(routes []domain.Route, allowed domain.AllowList, chart *domain.RedemptionChart, cabinClass string, visit func(RedemptionHit) bool) bool {
	optimal, err := Optimal(routes)
	if err != nil {
		return false
	}

	tryRoute := func(route domain.Route, phase SearchPhase) bool {
		for _, airline := range allowedAirlines(route, allowed) {
			miles, ok := LookupMiles(chart, route, airline, cabinClass)
			if !ok {
				continue
			}
			if visit(RedemptionHit{Route: route, Airline: airline, Miles: miles, Phase: phase}) {
				return true
			}
		}
		return false
	}

	if tryRoute(optimal, PhaseOptimal) {
		return true
	}
	for _, route := range SortByPrice(routes) {
		if tryRoute(route, PhaseFallback) {
			return true
		}
	}
	return false
}
