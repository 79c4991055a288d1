package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flight-search/flight-value-engine/internal/domain"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/timeutil"
)

// routeIDPrefix is prepended to the 1-based offer position to form route IDs.
const routeIDPrefix = "Route-"

// Normalize converts upstream offers into routes.
//
// Every itinerary of every offer becomes one route unless none of its carriers
// is on the allow-list. Malformed offers are skipped as a whole and reported in
// the returned error slice; the remaining offers are still normalized.
// Normalize has no side effects and does not mutate its inputs.
func Normalize(offers []domain.RawOffer, allowed domain.AllowList) ([]domain.Route, []error) {
	routes := make([]domain.Route, 0, len(offers))
	var errs []error

	for i, offer := range offers {
		offerRoutes, err := NormalizeOffer(i, offer, allowed)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		routes = append(routes, offerRoutes...)
	}

	return routes, errs
}

// NormalizeOffer converts a single offer at position index into its routes.
// It returns a *domain.MalformedOfferError when any required field is missing or invalid,
// in which case no route of the offer is returned.
func NormalizeOffer(index int, offer domain.RawOffer, allowed domain.AllowList) ([]domain.Route, error) {
	price, err := parseAmount(index, "price.total", offer.Price.Total)
	if err != nil {
		return nil, err
	}
	base, err := parseAmount(index, "price.base", offer.Price.Base)
	if err != nil {
		return nil, err
	}
	if len(offer.Itineraries) == 0 {
		return nil, domain.NewMalformedOfferError(index, "itineraries", "no itineraries")
	}

	id := fmt.Sprintf("%s%d", routeIDPrefix, index+1)
	taxes := domain.ComputeTaxes(price, base)
	currency := strings.ToUpper(strings.TrimSpace(offer.Price.Currency))

	routes := make([]domain.Route, 0, len(offer.Itineraries))
	for j, itinerary := range offer.Itineraries {
		route, err := normalizeItinerary(index, j, itinerary)
		if err != nil {
			return nil, err
		}
		if !allowed.ContainsAny(route.Airlines) {
			continue
		}

		route.ID = id
		route.Price = price
		route.Base = base
		route.Taxes = taxes
		route.Currency = currency
		routes = append(routes, route)
	}

	return routes, nil
}

// normalizeItinerary builds the route geometry and timing of one itinerary.
func normalizeItinerary(index, itineraryIndex int, itinerary domain.Itinerary) (domain.Route, error) {
	field := func(name string) string {
		return fmt.Sprintf("itineraries[%d].%s", itineraryIndex, name)
	}

	if len(itinerary.Segments) == 0 {
		return domain.Route{}, domain.NewMalformedOfferError(index, field("segments"), "no segments")
	}

	path := make([]string, 0, len(itinerary.Segments)+1)
	for k, s := range itinerary.Segments {
		if strings.TrimSpace(s.CarrierCode) == "" {
			return domain.Route{}, domain.NewMalformedOfferError(index, field(fmt.Sprintf("segments[%d].carrierCode", k)), "missing carrier code")
		}
		code, err := airportCode(index, field(fmt.Sprintf("segments[%d].departure.iataCode", k)), s.Departure.IataCode)
		if err != nil {
			return domain.Route{}, err
		}
		path = append(path, code)
	}

	last := itinerary.Segments[len(itinerary.Segments)-1]
	arrivalCode, err := airportCode(index, field(fmt.Sprintf("segments[%d].arrival.iataCode", len(itinerary.Segments)-1)), last.Arrival.IataCode)
	if err != nil {
		return domain.Route{}, err
	}
	path = append(path, arrivalCode)

	departure, err := timeutil.ParseLocalDateTime(itinerary.Segments[0].Departure.At)
	if err != nil {
		return domain.Route{}, domain.NewMalformedOfferError(index, field("segments[0].departure.at"), err.Error())
	}
	arrival, err := timeutil.ParseLocalDateTime(last.Arrival.At)
	if err != nil {
		return domain.Route{}, domain.NewMalformedOfferError(index, field(fmt.Sprintf("segments[%d].arrival.at", len(itinerary.Segments)-1)), err.Error())
	}

	duration, err := itineraryDuration(itinerary.Duration, departure, arrival)
	if err != nil {
		return domain.Route{}, domain.NewMalformedOfferError(index, field("duration"), err.Error())
	}

	return domain.Route{
		Origin:        path[0],
		Destination:   arrivalCode,
		Path:          path,
		Airlines:      uniqueCarriers(itinerary.Segments),
		DepartureTime: departure,
		ArrivalTime:   arrival,
		Duration:      duration,
		Stops:         len(itinerary.Segments) - 1,
	}, nil
}

// itineraryDuration prefers the upstream ISO-8601 duration and derives it from the timestamps otherwise.
func itineraryDuration(iso string, departure, arrival time.Time) (time.Duration, error) {
	if strings.TrimSpace(iso) != "" {
		return timeutil.ParseISODuration(iso)
	}
	d := arrival.Sub(departure)
	if d < 0 {
		return 0, fmt.Errorf("arrival %s is before departure %s", timeutil.FormatDateTime(arrival), timeutil.FormatDateTime(departure))
	}
	return d, nil
}

func parseAmount(index int, field, value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, domain.NewMalformedOfferError(index, field, "missing")
	}
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, domain.NewMalformedOfferError(index, field, fmt.Sprintf("%q is not a decimal", value))
	}
	if amount.IsNegative() {
		return decimal.Zero, domain.NewMalformedOfferError(index, field, "negative amount")
	}
	return amount, nil
}

func airportCode(index int, field, value string) (string, error) {
	code := strings.ToUpper(strings.TrimSpace(value))
	if !domain.IsAirportCode(code) {
		return "", domain.NewMalformedOfferError(index, field, fmt.Sprintf("%q is not an IATA airport code", value))
	}
	return code, nil
}
