package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PathSeparator joins airport codes when a route path is rendered as text.
const PathSeparator = " → "

// Route is the normalized, flattened form of one itinerary of an offer.
// Routes are built once per query by the normalizer and never mutated afterwards.
type Route struct {
	// ID identifies the source offer ("Route-1" for the first offer); itineraries of one offer share it
	ID string `json:"id"`

	// Origin is the IATA code of the first departure airport
	Origin string `json:"origin"`

	// Destination is the IATA code of the last arrival airport
	Destination string `json:"destination"`

	// Path lists every departure airport plus the final arrival, len(Path) == Stops+2
	Path []string `json:"path"`

	// Airlines lists the unique carrier codes in first-seen segment order
	Airlines []string `json:"airlines"`

	// DepartureTime is the first departure timestamp
	DepartureTime time.Time `json:"departureTime"`

	// ArrivalTime is the last arrival timestamp
	ArrivalTime time.Time `json:"arrivalTime"`

	// Duration is the total itinerary duration
	Duration time.Duration `json:"duration"`

	// Price is the total fare
	Price decimal.Decimal `json:"price"`

	// Base is the base fare component
	Base decimal.Decimal `json:"base"`

	// Taxes is Price - Base rounded to 2 decimals
	Taxes decimal.Decimal `json:"taxes"`

	// Currency is the ISO 4217 currency code of the fare, if known
	Currency string `json:"currency,omitempty"`

	// Stops is the number of intermediate stops (segments - 1)
	Stops int `json:"stops"`
}

// ComputeTaxes returns price - base rounded to 2 decimals.
// A negative result (price below base) is returned as is.
func ComputeTaxes(price, base decimal.Decimal) decimal.Decimal {
	return price.Sub(base).Round(2)
}

// PathString renders the path as "JFK → LHR → HEL".
func (r Route) PathString() string {
	return strings.Join(r.Path, PathSeparator)
}

// HasAirline reports whether the given carrier appears on the route (case-insensitive).
func (r Route) HasAirline(code string) bool {
	for _, a := range r.Airlines {
		if strings.EqualFold(a, code) {
			return true
		}
	}
	return false
}

// RouteKey returns the redemption chart key for the route ("JFK-HEL").
func (r Route) RouteKey() string {
	return RouteKey(r.Origin, r.Destination)
}

// RouteKey builds a redemption chart key from an origin and destination.
func RouteKey(origin, destination string) string {
	return origin + "-" + destination
}
