package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/flight-search/flight-value-engine/internal/domain"
)

// seg builds a segment departing and arriving on 2025-06-01 at the given HH:MM times.
func seg(carrier, from, to, dep, arr string) domain.Segment {
	return domain.Segment{
		CarrierCode: carrier,
		Number:      "100",
		Departure:   domain.SegmentPoint{IataCode: from, At: "2025-06-01T" + dep + ":00"},
		Arrival:     domain.SegmentPoint{IataCode: to, At: "2025-06-01T" + arr + ":00"},
	}
}

func itin(duration string, segments ...domain.Segment) domain.Itinerary {
	return domain.Itinerary{Duration: duration, Segments: segments}
}

func offer(total, base string, itineraries ...domain.Itinerary) domain.RawOffer {
	return domain.RawOffer{
		Price:       domain.OfferPrice{Total: total, Base: base, Currency: "USD"},
		Itineraries: itineraries,
	}
}

// directOffer is a one-segment JFK-HEL offer on the given carrier.
func directOffer(carrier, total, base string) domain.RawOffer {
	return offer(total, base, itin("PT8H", seg(carrier, "JFK", "HEL", "10:00", "18:00")))
}

// testRoute builds a JFK-HEL route with the given ranking attributes.
func testRoute(id, price string, stops int, duration time.Duration, airlines ...string) domain.Route {
	p := decimal.RequireFromString(price)
	return domain.Route{
		ID:          id,
		Origin:      "JFK",
		Destination: "HEL",
		Path:        make([]string, stops+2),
		Airlines:    airlines,
		Duration:    duration,
		Price:       p,
		Base:        p,
		Taxes:       decimal.Zero,
		Stops:       stops,
	}
}

func routeIDs(routes []domain.Route) []string {
	ids := make([]string, len(routes))
	for i, r := range routes {
		ids[i] = r.ID
	}
	return ids
}

func testChart() *domain.RedemptionChart {
	return domain.MustNewRedemptionChart(domain.ChartData{
		"AA": {"JFK-HEL": {"ECONOMY": 70000, "BUSINESS": 120000}},
		"BA": {"JFK-HEL": {"ECONOMY": 50000}},
		"UA": {"JFK-HEL": {"ECONOMY": 10000}},
	})
}
