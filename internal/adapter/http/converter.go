package http

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/flight-search/flight-value-engine/internal/domain"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-value-engine/internal/usecase"
)

// valuePerMilePlaces is the rounding applied to the raw value per mile.
const valuePerMilePlaces = 4

// ToDomainCriteria converts a validated request to domain.SearchCriteria.
// An empty cabin class takes defaultCabin.
func ToDomainCriteria(req *EvaluateRequest, defaultCabin string) domain.SearchCriteria {
	cabin := req.CabinClass
	if cabin == "" {
		cabin = defaultCabin
	}

	passengers := req.Passengers
	if passengers < 1 {
		passengers = 1
	}

	return domain.SearchCriteria{
		Origin:        strings.ToUpper(req.Origin),
		Destination:   strings.ToUpper(req.Destination),
		DepartureDate: req.DepartureDate,
		Passengers:    passengers,
		CabinClass:    strings.ToUpper(cabin),
	}
}

// ToEvaluateOptions converts request fields to usecase.EvaluateOptions.
// A missing topN leaves the evaluator default in place.
func ToEvaluateOptions(req *EvaluateRequest) usecase.EvaluateOptions {
	opts := usecase.EvaluateOptions{CabinClass: req.CabinClass}
	if req.TopN != nil {
		opts.TopN = *req.TopN
	}
	return opts
}

// ToValuationResponseDTO converts an evaluation to its response body.
// Airline names are resolved through allowed.
func ToValuationResponseDTO(eval *domain.Evaluation, allowed domain.AllowList) *ValuationResponseDTO {
	if eval == nil {
		return nil
	}

	dto := &ValuationResponseDTO{
		Status:  string(eval.Status()),
		Message: domain.Message(eval.Result),
		SearchCriteria: SearchCriteriaDTO{
			Origin:        eval.Criteria.Origin,
			Destination:   eval.Criteria.Destination,
			DepartureDate: eval.Criteria.DepartureDate,
			Passengers:    eval.Criteria.Passengers,
			CabinClass:    eval.Criteria.CabinClass,
		},
		Metadata: MetadataDTO{
			Provider:       eval.Metadata.Provider,
			OffersReceived: eval.Metadata.OffersReceived,
			RoutesBuilt:    eval.Metadata.RoutesBuilt,
			OffersSkipped:  eval.Metadata.OffersSkipped,
			SearchTimeMs:   eval.Metadata.SearchTimeMs,
		},
		TopRoutes: []RouteDTO{},
	}

	if topN, optimal, ok := domain.RankedRoutes(eval.Result); ok {
		dto.TopRoutes = ToRouteDTOs(topN, allowed)
		o := ToRouteDTO(optimal, allowed)
		dto.Optimal = &o
	}

	switch r := eval.Result.(type) {
	case domain.NoOffers:
		if r.Err != nil {
			dto.Metadata.UpstreamError = r.Err.Error()
		}
	case domain.Valued:
		v := ToValuationDTO(r.Valuation, allowed)
		dto.Valuation = &v
	case domain.Fallback:
		dto.Fallback = &FallbackDTO{
			Route:     ToRouteDTO(r.Route, allowed),
			Valuation: ToValuationDTO(r.Valuation, allowed),
		}
	}

	return dto
}

// ToRouteDTOs converts routes in order.
func ToRouteDTOs(routes []domain.Route, allowed domain.AllowList) []RouteDTO {
	dtos := make([]RouteDTO, len(routes))
	for i, r := range routes {
		dtos[i] = ToRouteDTO(r, allowed)
	}
	return dtos
}

// ToRouteDTO converts a domain Route to a RouteDTO.
func ToRouteDTO(r domain.Route, allowed domain.AllowList) RouteDTO {
	airlines := make([]AirlineDTO, len(r.Airlines))
	for i, code := range r.Airlines {
		airlines[i] = toAirlineDTO(code, allowed)
	}

	path := make([]string, len(r.Path))
	copy(path, r.Path)

	return RouteDTO{
		ID:            r.ID,
		Origin:        r.Origin,
		Destination:   r.Destination,
		Path:          path,
		PathDisplay:   r.PathString(),
		Airlines:      airlines,
		DepartureTime: timeutil.FormatDateTime(r.DepartureTime),
		ArrivalTime:   timeutil.FormatDateTime(r.ArrivalTime),
		Duration: DurationDTO{
			TotalMinutes: int(r.Duration.Minutes()),
			Formatted:    timeutil.FormatDuration(r.Duration),
		},
		Stops: r.Stops,
		Price: PriceDTO{
			Total:    money(r.Price),
			Base:     money(r.Base),
			Taxes:    money(r.Taxes),
			Currency: r.Currency,
		},
	}
}

// ToValuationDTO converts a domain Valuation to a ValuationDTO.
func ToValuationDTO(v domain.Valuation, allowed domain.AllowList) ValuationDTO {
	return ValuationDTO{
		Airline:       toAirlineDTO(v.Airline, allowed),
		MilesRequired: v.MilesRequired,
		ValuePerMile:  v.ValuePerMile.Round(valuePerMilePlaces).InexactFloat64(),
		CentsPerMile:  v.CentsPerMile().InexactFloat64(),
	}
}

// ToRoutesResponseDTO converts the supported airport pairs.
func ToRoutesResponseDTO(pairs []domain.AirportPair) *RoutesResponseDTO {
	dto := &RoutesResponseDTO{Routes: make([]AirportPairDTO, len(pairs)), Total: len(pairs)}
	for i, p := range pairs {
		dto.Routes[i] = AirportPairDTO{Origin: p.Origin, Destination: p.Destination, Key: p.Key()}
	}
	return dto
}

func toAirlineDTO(code string, allowed domain.AllowList) AirlineDTO {
	return AirlineDTO{Code: code, Name: allowed.Name(code)}
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
