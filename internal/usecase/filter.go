package usecase

import (
	"strings"

	"github.com/flight-search/flight-value-engine/internal/domain"
)

// uniqueCarriers returns the upper-cased carrier codes of the segments in first-seen order.
func uniqueCarriers(segments []domain.Segment) []string {
	seen := make(map[string]struct{}, len(segments))
	carriers := make([]string, 0, len(segments))
	for _, s := range segments {
		code := strings.ToUpper(strings.TrimSpace(s.CarrierCode))
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		carriers = append(carriers, code)
	}
	return carriers
}

// allowedAirlines returns the route's carriers that are on the allow-list, keeping route order.
// Carriers outside the allow-list are never looked up in the redemption chart.
func allowedAirlines(route domain.Route, allowed domain.AllowList) []string {
	result := make([]string, 0, len(route.Airlines))
	for _, code := range route.Airlines {
		if allowed.Contains(code) {
			result = append(result, code)
		}
	}
	return result
}

// FilterByAllowList keeps the routes operated by at least one allowed carrier.
// The input slice is not mutated.
func FilterByAllowList(routes []domain.Route, allowed domain.AllowList) []domain.Route {
	result := make([]domain.Route, 0, len(routes))
	for _, r := range routes {
		if allowed.ContainsAny(r.Airlines) {
			result = append(result, r)
		}
	}
	return result
}
