// Package domain contains the core business entities and rules for the flight value engine.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

// RawOffer is a single priced flight offer as returned by the upstream flight search API.
// The shape follows the Amadeus flight-offers payload; only the fields the engine reads are mapped.
type RawOffer struct {
	// ID is the upstream identifier of the offer (informational only)
	ID string `json:"id,omitempty"`

	// Price holds the total and base fare as decimal strings (e.g. "800.00")
	Price OfferPrice `json:"price"`

	// Itineraries holds one directional journey per entry (outbound, inbound)
	Itineraries []Itinerary `json:"itineraries"`
}

// OfferPrice contains the fare components of an offer.
type OfferPrice struct {
	// Total is the total fare including taxes
	Total string `json:"total"`

	// Base is the base fare excluding taxes
	Base string `json:"base"`

	// Currency is the ISO 4217 currency code (e.g. "USD", "EUR")
	Currency string `json:"currency,omitempty"`
}

// Itinerary is one directional journey made of one or more segments.
type Itinerary struct {
	// Duration is the ISO-8601 total itinerary duration (e.g. "PT14H30M")
	Duration string `json:"duration,omitempty"`

	// Segments are the non-stop legs in travel order
	Segments []Segment `json:"segments"`
}

// Segment is a single non-stop flight leg operated by one carrier.
type Segment struct {
	// CarrierCode is the IATA airline code (e.g. "AA")
	CarrierCode string `json:"carrierCode"`

	// Number is the flight number without the carrier prefix
	Number string `json:"number,omitempty"`

	// Departure is where and when the leg departs
	Departure SegmentPoint `json:"departure"`

	// Arrival is where and when the leg arrives
	Arrival SegmentPoint `json:"arrival"`
}

// SegmentPoint is an airport and a local timestamp.
type SegmentPoint struct {
	// IataCode is the IATA airport code (e.g. "JFK")
	IataCode string `json:"iataCode"`

	// At is the local date-time, usually without offset (e.g. "2025-06-01T18:30:00")
	At string `json:"at"`
}

// OfferResponse is the upstream response envelope.
type OfferResponse struct {
	Data []RawOffer `json:"data"`
}
