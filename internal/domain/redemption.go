package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Cabin classes known to the redemption chart.
const (
	CabinEconomy        = "ECONOMY"
	CabinPremiumEconomy = "PREMIUM_ECONOMY"
	CabinBusiness       = "BUSINESS"
	CabinFirst          = "FIRST"

	// DefaultCabinClass is the cabin used when none is requested
	DefaultCabinClass = CabinEconomy
)

var validCabinClasses = map[string]bool{
	CabinEconomy:        true,
	CabinPremiumEconomy: true,
	CabinBusiness:       true,
	CabinFirst:          true,
}

// IsValidCabinClass reports whether the cabin class is known (case-insensitive).
func IsValidCabinClass(cabin string) bool {
	return validCabinClasses[strings.ToUpper(cabin)]
}

// ChartData is the nested airline -> "ORIG-DEST" -> cabin -> miles mapping
// as stored on disk.
type ChartData map[string]map[string]map[string]int

// RedemptionChart is an immutable award chart.
// It is built once at start-up and shared read-only by every query.
type RedemptionChart struct {
	entries ChartData
	size    int
}

// NewRedemptionChart validates and copies the chart data.
// Every entry must require a positive number of miles.
func NewRedemptionChart(data ChartData) (*RedemptionChart, error) {
	entries := make(ChartData, len(data))
	size := 0

	for airline, routes := range data {
		airline = strings.ToUpper(strings.TrimSpace(airline))
		if airline == "" {
			return nil, fmt.Errorf("%w: empty airline code", ErrInvalidChart)
		}

		copied, ok := entries[airline]
		if !ok {
			copied = make(map[string]map[string]int, len(routes))
			entries[airline] = copied
		}

		for routeKey, cabins := range routes {
			routeKey = strings.ToUpper(strings.TrimSpace(routeKey))
			if !isRouteKey(routeKey) {
				return nil, fmt.Errorf("%w: %s: route key %q must look like ORIG-DEST", ErrInvalidChart, airline, routeKey)
			}

			cabinCopy, ok := copied[routeKey]
			if !ok {
				cabinCopy = make(map[string]int, len(cabins))
				copied[routeKey] = cabinCopy
			}

			for cabin, miles := range cabins {
				cabin = strings.ToUpper(strings.TrimSpace(cabin))
				if miles <= 0 {
					return nil, fmt.Errorf("%w: %s %s %s requires %d miles", ErrInvalidChart, airline, routeKey, cabin, miles)
				}
				cabinCopy[cabin] = miles
				size++
			}
		}
	}

	return &RedemptionChart{entries: entries, size: size}, nil
}

// MustNewRedemptionChart builds a chart or panics. Intended for tests and static data.
func MustNewRedemptionChart(data ChartData) *RedemptionChart {
	chart, err := NewRedemptionChart(data)
	if err != nil {
		panic(err)
	}
	return chart
}

// EmptyRedemptionChart returns a chart with no entries.
func EmptyRedemptionChart() *RedemptionChart {
	return &RedemptionChart{entries: ChartData{}}
}

// LookupMiles returns the miles required for an exact (airline, origin-destination, cabin) match.
// There is no reverse-route fallback: JFK-HEL and HEL-JFK are distinct keys.
func (c *RedemptionChart) LookupMiles(origin, destination, airline, cabinClass string) (int, bool) {
	if c == nil {
		return 0, false
	}
	routes, ok := c.entries[strings.ToUpper(airline)]
	if !ok {
		return 0, false
	}
	cabins, ok := routes[RouteKey(strings.ToUpper(origin), strings.ToUpper(destination))]
	if !ok {
		return 0, false
	}
	miles, ok := cabins[strings.ToUpper(cabinClass)]
	return miles, ok
}

// Size returns the number of (airline, route, cabin) entries.
func (c *RedemptionChart) Size() int {
	if c == nil {
		return 0
	}
	return c.size
}

// Airlines returns the airline codes present in the chart in ascending order.
func (c *RedemptionChart) Airlines() []string {
	if c == nil {
		return nil
	}
	airlines := make([]string, 0, len(c.entries))
	for airline := range c.entries {
		airlines = append(airlines, airline)
	}
	sort.Strings(airlines)
	return airlines
}

// isRouteKey checks the "ORIG-DEST" shape with non-empty halves.
func isRouteKey(key string) bool {
	origin, destination, ok := strings.Cut(key, "-")
	return ok && origin != "" && destination != "" && !strings.Contains(destination, "-")
}
