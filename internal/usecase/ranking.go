package usecase

import (
	"sort"

	"github.com/flight-search/flight-value-engine/internal/domain"
)

// SortByPrice returns a copy of routes sorted by ascending price.
// The sort is stable, so routes with equal prices keep their input order.
func SortByPrice(routes []domain.Route) []domain.Route {
	result := make([]domain.Route, len(routes))
	copy(result, routes)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Price.LessThan(result[j].Price)
	})
	return result
}

// TopN returns the n cheapest routes, or all of them when fewer are available.
// n <= 0 yields an empty slice. The input slice is not mutated.
func TopN(routes []domain.Route, n int) []domain.Route {
	if n <= 0 || len(routes) == 0 {
		return []domain.Route{}
	}
	sorted := SortByPrice(routes)
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Optimal returns the best route by price, then stops, then duration.
// Remaining ties keep their input order. An empty input returns domain.ErrEmptyRouteSet.
func Optimal(routes []domain.Route) (domain.Route, error) {
	if len(routes) == 0 {
		return domain.Route{}, domain.ErrEmptyRouteSet
	}

	sorted := make([]domain.Route, len(routes))
	copy(sorted, routes)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if c := a.Price.Cmp(b.Price); c != 0 {
			return c < 0
		}
		if a.Stops != b.Stops {
			return a.Stops < b.Stops
		}
		return a.Duration < b.Duration
	})

	return sorted[0], nil
}
