package http

// Swagger type definitions for API documentation.
// These mirror the DTOs with examples so swag can render a useful schema.

// SwaggerValuationResponse represents the valuation API response.
// @Description Ranked routes and the value per mile of the optimal or fallback route
type SwaggerValuationResponse struct {
	// Status is one of: valued, fallback, unvalued, no_allowed_routes, no_offers
	Status string `json:"status" example:"valued"`

	// Message explains results without a valuation of the optimal route
	Message string `json:"message,omitempty" example:""`

	// SearchCriteria echoes the effective search
	SearchCriteria SearchCriteriaDTO `json:"search_criteria"`

	// Metadata describes the query execution
	Metadata SwaggerMetadata `json:"metadata"`

	// TopRoutes are the cheapest routes, ascending by total price
	TopRoutes []SwaggerRoute `json:"top_routes"`

	// Optimal is the cheapest route, ties broken by stops then duration
	Optimal *SwaggerRoute `json:"optimal,omitempty"`

	// Valuation is present when status is valued
	Valuation *SwaggerValuation `json:"valuation,omitempty"`

	// Fallback is present when status is fallback
	Fallback *SwaggerFallback `json:"fallback,omitempty"`
}

// SwaggerMetadata contains metadata about the query execution.
// @Description Metadata about the query execution
type SwaggerMetadata struct {
	Provider       string `json:"provider" example:"amadeus"`
	OffersReceived int    `json:"offers_received" example:"6"`
	RoutesBuilt    int    `json:"routes_built" example:"4"`
	OffersSkipped  int    `json:"offers_skipped" example:"0"`
	SearchTimeMs   int64  `json:"search_time_ms" example:"12"`
	UpstreamError  string `json:"upstream_error,omitempty" example:""`
}

// SwaggerRoute represents one normalized route.
// @Description A priced itinerary flattened into a route
type SwaggerRoute struct {
	ID            string              `json:"id" example:"Route-1"`
	Origin        string              `json:"origin" example:"JFK"`
	Destination   string              `json:"destination" example:"HEL"`
	Path          []string            `json:"path" example:"JFK,HEL"`
	PathDisplay   string              `json:"path_display" example:"JFK → HEL"`
	Airlines      []SwaggerAirline    `json:"airlines"`
	DepartureTime string              `json:"departure_time" example:"2025-06-01 18:30"`
	ArrivalTime   string              `json:"arrival_time" example:"2025-06-02 09:35"`
	Duration      SwaggerDuration     `json:"duration"`
	Stops         int                 `json:"stops" example:"0"`
	Price         SwaggerPriceDetails `json:"price"`
}

// SwaggerAirline contains information about an airline.
// @Description Airline information
type SwaggerAirline struct {
	Code string `json:"code" example:"AA"`
	Name string `json:"name" example:"American Airlines"`
}

// SwaggerDuration contains route duration information.
// @Description Route duration
type SwaggerDuration struct {
	TotalMinutes int    `json:"total_minutes" example:"485"`
	Formatted    string `json:"formatted" example:"8h 5m"`
}

// SwaggerPriceDetails contains the fare breakdown.
// @Description Fare breakdown
type SwaggerPriceDetails struct {
	Total    float64 `json:"total" example:"800"`
	Base     float64 `json:"base" example:"650"`
	Taxes    float64 `json:"taxes" example:"150"`
	Currency string  `json:"currency,omitempty" example:"USD"`
}

// SwaggerValuation contains the value per mile of a route.
// @Description Value per mile
type SwaggerValuation struct {
	Airline       SwaggerAirline `json:"airline"`
	MilesRequired int            `json:"miles_required" example:"70000"`
	ValuePerMile  float64        `json:"value_per_mile" example:"0.0093"`
	CentsPerMile  float64        `json:"cents_per_mile" example:"0.93"`
}

// SwaggerFallback contains the fallback route and its valuation.
// @Description Cheapest redeemable route when the optimal route is not redeemable
type SwaggerFallback struct {
	Route     SwaggerRoute     `json:"route"`
	Valuation SwaggerValuation `json:"valuation"`
}

// SwaggerErrorResponse represents an error response.
// @Description Error response from the API
type SwaggerErrorResponse struct {
	// Success is always false for error responses
	Success bool `json:"success" example:"false"`

	// Error contains error details
	Error SwaggerErrorDetail `json:"error"`
}

// SwaggerErrorDetail contains structured error information.
// @Description Error details
type SwaggerErrorDetail struct {
	Code    string            `json:"code" example:"validation_error"`
	Message string            `json:"message" example:"Request validation failed"`
	Details map[string]string `json:"details,omitempty"`
}
