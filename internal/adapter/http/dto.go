package http

// ValuationResponseDTO is the body of a successful POST /api/v1/valuations.
// Optimal, Valuation and Fallback are present only for the statuses that carry them.
type ValuationResponseDTO struct {
	Status         string            `json:"status"`
	Message        string            `json:"message,omitempty"`
	SearchCriteria SearchCriteriaDTO `json:"search_criteria"`
	Metadata       MetadataDTO       `json:"metadata"`
	TopRoutes      []RouteDTO        `json:"top_routes"`
	Optimal        *RouteDTO         `json:"optimal,omitempty"`
	Valuation      *ValuationDTO     `json:"valuation,omitempty"`
	Fallback       *FallbackDTO      `json:"fallback,omitempty"`
}

// SearchCriteriaDTO represents the effective search criteria in the response.
type SearchCriteriaDTO struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	Passengers    int    `json:"passengers"`
	CabinClass    string `json:"cabin_class"`
}

// MetadataDTO contains metadata about the query execution.
type MetadataDTO struct {
	Provider       string `json:"provider"`
	OffersReceived int    `json:"offers_received"`
	RoutesBuilt    int    `json:"routes_built"`
	OffersSkipped  int    `json:"offers_skipped"`
	SearchTimeMs   int64  `json:"search_time_ms"`
	UpstreamError  string `json:"upstream_error,omitempty"`
}

// RouteDTO is the presentation of one normalized route.
type RouteDTO struct {
	ID            string       `json:"id"`
	Origin        string       `json:"origin"`
	Destination   string       `json:"destination"`
	Path          []string     `json:"path"`
	PathDisplay   string       `json:"path_display"`
	Airlines      []AirlineDTO `json:"airlines"`
	DepartureTime string       `json:"departure_time"`
	ArrivalTime   string       `json:"arrival_time"`
	Duration      DurationDTO  `json:"duration"`
	Stops         int          `json:"stops"`
	Price         PriceDTO     `json:"price"`
}

// AirlineDTO represents airline information.
type AirlineDTO struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// DurationDTO represents route duration.
type DurationDTO struct {
	TotalMinutes int    `json:"total_minutes"`
	Formatted    string `json:"formatted"`
}

// PriceDTO breaks the fare into base and taxes.
type PriceDTO struct {
	Total    float64 `json:"total"`
	Base     float64 `json:"base"`
	Taxes    float64 `json:"taxes"`
	Currency string  `json:"currency,omitempty"`
}

// ValuationDTO is the value per mile of a route on one airline.
type ValuationDTO struct {
	Airline       AirlineDTO `json:"airline"`
	MilesRequired int        `json:"miles_required"`
	ValuePerMile  float64    `json:"value_per_mile"`
	CentsPerMile  float64    `json:"cents_per_mile"`
}

// FallbackDTO is the cheapest redeemable route when the optimal one is not redeemable.
type FallbackDTO struct {
	Route     RouteDTO     `json:"route"`
	Valuation ValuationDTO `json:"valuation"`
}

// RoutesResponseDTO is the body of GET /api/v1/routes.
type RoutesResponseDTO struct {
	Routes []AirportPairDTO `json:"routes"`
	Total  int              `json:"total"`
}

// AirportPairDTO is an origin and destination with offer data.
type AirportPairDTO struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Key         string `json:"key"`
}
