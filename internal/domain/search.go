package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Search limits.
const (
	// DefaultMaxResults matches the number of offers requested from the upstream
	DefaultMaxResults = 50

	// MaxMaxResults is the upstream's hard cap on offers per search
	MaxMaxResults = 250
)

// SearchCriteria defines the parameters for an upstream flight search.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "HEL")
	Destination string `json:"destination"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// Passengers is the number of adult passengers; only 1 is supported
	Passengers int `json:"passengers"`

	// MaxResults caps the number of offers requested (default: 50)
	MaxResults int `json:"maxResults"`

	// CabinClass is the redemption chart cabin (default: ECONOMY)
	CabinClass string `json:"cabinClass,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsAirportCode reports whether s is a 3-letter upper-case IATA code.
func IsAirportCode(s string) bool {
	return airportCodeRegex.MatchString(s)
}

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	// Validate origin
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	// Validate destination
	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	// Validate departure date
	if s.DepartureDate == "" {
		return fmt.Errorf("%w: departureDate is required", ErrInvalidRequest)
	}
	if !dateRegex.MatchString(s.DepartureDate) {
		return fmt.Errorf("%w: departureDate must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, s.DepartureDate)
	}
	if _, err := time.Parse("2006-01-02", s.DepartureDate); err != nil {
		return fmt.Errorf("%w: departureDate is not a valid date: %s", ErrInvalidRequest, s.DepartureDate)
	}

	// Multi-passenger valuation is not supported
	if s.Passengers != 1 {
		return fmt.Errorf("%w: passengers must be 1, got %d", ErrInvalidRequest, s.Passengers)
	}

	if s.MaxResults < 1 || s.MaxResults > MaxMaxResults {
		return fmt.Errorf("%w: maxResults must be between 1 and %d, got %d", ErrInvalidRequest, MaxMaxResults, s.MaxResults)
	}

	if !IsValidCabinClass(s.CabinClass) {
		return fmt.Errorf("%w: cabinClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST; got %q", ErrInvalidRequest, s.CabinClass)
	}

	return nil
}

// SetDefaults applies default values to empty optional fields.
func (s *SearchCriteria) SetDefaults() {
	s.Origin = strings.ToUpper(strings.TrimSpace(s.Origin))
	s.Destination = strings.ToUpper(strings.TrimSpace(s.Destination))
	if s.Passengers == 0 {
		s.Passengers = 1
	}
	if s.MaxResults == 0 {
		s.MaxResults = DefaultMaxResults
	}
	if s.CabinClass == "" {
		s.CabinClass = DefaultCabinClass
	}
	s.CabinClass = strings.ToUpper(s.CabinClass)
}

// RouteKey returns the "ORIG-DEST" key of the searched pair.
func (s *SearchCriteria) RouteKey() string {
	return RouteKey(s.Origin, s.Destination)
}

// AirportPair is an origin and destination the upstream has offers for.
type AirportPair struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

// Key returns the "ORIG-DEST" form of the pair.
func (p AirportPair) Key() string {
	return RouteKey(p.Origin, p.Destination)
}

// ParseAirportPair parses an "ORIG-DEST" key.
func ParseAirportPair(key string) (AirportPair, bool) {
	origin, destination, ok := strings.Cut(strings.ToUpper(strings.TrimSpace(key)), "-")
	if !ok || !IsAirportCode(origin) || !IsAirportCode(destination) {
		return AirportPair{}, false
	}
	return AirportPair{Origin: origin, Destination: destination}, true
}
