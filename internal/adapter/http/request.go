// Package http provides the HTTP handler layer for the valuation API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"strings"

	"github.com/flight-search/flight-value-engine/internal/domain"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/timeutil"
)

// Request limits.
const (
	// MinTopN and MaxTopN bound the optional topN field
	MinTopN = 1
	MaxTopN = 50
)

// EvaluateRequest represents the request body for a valuation query.
type EvaluateRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "JFK")
	Origin string `json:"origin" example:"JFK"`

	// Destination is the IATA code of the arrival airport (e.g., "HEL")
	Destination string `json:"destination" example:"HEL"`

	// DepartureDate is the desired departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate" example:"2025-06-01"`

	// Passengers is the number of adult passengers; only 1 is supported (default: 1)
	Passengers int `json:"passengers,omitempty" example:"1"`

	// CabinClass is ECONOMY, PREMIUM_ECONOMY, BUSINESS or FIRST (default: the configured cabin)
	CabinClass string `json:"cabinClass,omitempty" example:"ECONOMY"`

	// TopN is the number of cheapest routes to return, 1-50 (default: the configured value)
	TopN *int `json:"topN,omitempty" example:"5"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
// When a field fails more than once, the first message wins.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		if _, ok := result[e.Field]; !ok {
			result[e.Field] = e.Message
		}
	}
	return result
}

// Normalize upper-cases and trims the code fields in place.
func (r *EvaluateRequest) Normalize() {
	r.Origin = strings.ToUpper(strings.TrimSpace(r.Origin))
	r.Destination = strings.ToUpper(strings.TrimSpace(r.Destination))
	r.DepartureDate = strings.TrimSpace(r.DepartureDate)
	r.CabinClass = strings.ToUpper(strings.TrimSpace(r.CabinClass))
}

// Validate normalizes the request and checks every field.
// The departure date must not be before today according to clock.
func (r *EvaluateRequest) Validate(clock timeutil.Clock) error {
	r.Normalize()
	errs := &ValidationErrors{}

	r.validateAirport(errs, "origin", r.Origin)
	r.validateAirport(errs, "destination", r.Destination)
	if r.Origin != "" && r.Origin == r.Destination {
		errs.Add("destination", "origin and destination must be different")
	}
	r.validateDepartureDate(errs, clock)

	if r.Passengers != 0 && r.Passengers != 1 {
		errs.Add("passengers", "passengers must be 1")
	}
	if r.CabinClass != "" && !domain.IsValidCabinClass(r.CabinClass) {
		errs.Add("cabinClass", "cabinClass must be one of: ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST")
	}
	if r.TopN != nil && (*r.TopN < MinTopN || *r.TopN > MaxTopN) {
		errs.Add("topN", "topN must be between 1 and 50")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *EvaluateRequest) validateAirport(errs *ValidationErrors, field, code string) {
	if code == "" {
		errs.Add(field, field+" is required")
		return
	}
	if !domain.IsAirportCode(code) {
		errs.Add(field, field+" must be a valid 3-letter IATA airport code")
	}
}

func (r *EvaluateRequest) validateDepartureDate(errs *ValidationErrors, clock timeutil.Clock) {
	if r.DepartureDate == "" {
		errs.Add("departureDate", "departureDate is required")
		return
	}

	if _, err := timeutil.ParseDate(r.DepartureDate); err != nil {
		errs.Add("departureDate", "departureDate must be a valid date in YYYY-MM-DD format")
		return
	}

	// Fixed-width dates compare correctly as strings, whatever the clock's location
	if clock != nil && r.DepartureDate < timeutil.FormatDate(clock.Now()) {
		errs.Add("departureDate", "departureDate must not be in the past")
	}
}
