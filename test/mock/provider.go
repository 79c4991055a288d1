// Package mock provides test doubles for the flight value engine.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, flaky upstreams, specific offers).
package mock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/flight-search/flight-value-engine/internal/domain"
)

// Provider is a configurable mock implementation of domain.OfferProvider.
// It supports configurable delays, errors, and responses for testing
// timeouts, retries and upstream failures.
type Provider struct {
	name      string
	offers    []domain.RawOffer
	err       error
	failures  int
	delay     time.Duration
	panicMsg  string
	callCount int
	criteria  []domain.SearchCriteria
	mu        sync.Mutex
}

// NewProvider creates a new mock provider with the given name.
// The provider is configured using the builder pattern methods.
func NewProvider(name string) *Provider {
	return &Provider{name: name}
}

// WithOffers configures the provider to return the given offers.
func (p *Provider) WithOffers(offers []domain.RawOffer) *Provider {
	p.offers = offers
	return p
}

// WithError configures the provider to return the given error on every call.
func (p *Provider) WithError(err error) *Provider {
	p.err = err
	return p
}

// WithFailures makes the first n calls fail with a retryable error before offers are returned.
func (p *Provider) WithFailures(n int) *Provider {
	p.failures = n
	return p
}

// WithDelay configures the provider to wait the given duration before responding.
// This is useful for testing timeout behavior.
func (p *Provider) WithDelay(d time.Duration) *Provider {
	p.delay = d
	return p
}

// WithPanic makes every call panic with msg.
func (p *Provider) WithPanic(msg string) *Provider {
	p.panicMsg = msg
	return p
}

// Name returns the provider's unique identifier.
func (p *Provider) Name() string {
	return p.name
}

// Search implements domain.OfferProvider.Search.
// It respects context cancellation, applies configured delay,
// and returns configured offers or error.
func (p *Provider) Search(ctx context.Context, criteria domain.SearchCriteria) ([]domain.RawOffer, error) {
	p.mu.Lock()
	p.callCount++
	call := p.callCount
	p.criteria = append(p.criteria, criteria)
	p.mu.Unlock()

	if p.panicMsg != "" {
		panic(p.panicMsg)
	}

	// Apply delay if configured
	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}

	// Check context after delay
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if call <= p.failures {
		return nil, domain.NewRetryableProviderError(p.name, fmt.Errorf("attempt %d: service unavailable", call))
	}

	if p.err != nil {
		return nil, p.err
	}

	return p.offers, nil
}

// CallCount returns the number of times Search was called.
func (p *Provider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// LastCriteria returns the criteria of the most recent call.
func (p *Provider) LastCriteria() domain.SearchCriteria {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.criteria) == 0 {
		return domain.SearchCriteria{}
	}
	return p.criteria[len(p.criteria)-1]
}

// Reset resets the call count to zero.
func (p *Provider) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.callCount = 0
	p.criteria = nil
}

// Ensure Provider implements domain.OfferProvider at compile time.
var _ domain.OfferProvider = (*Provider)(nil)

// Leg is one segment of a sample offer: carrier, from and to.
type Leg struct {
	Carrier string
	From    string
	To      string
}

// Offer builds a one-itinerary offer flying the legs back to back, one hour
// per leg and one hour per connection, departing 2025-06-01 08:00.
func Offer(total, base string, legs ...Leg) domain.RawOffer {
	departure := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	segments := make([]domain.Segment, len(legs))
	at := departure
	for i, leg := range legs {
		arrive := at.Add(time.Hour)
		segments[i] = domain.Segment{
			CarrierCode: leg.Carrier,
			Number:      fmt.Sprintf("%d", 100+i),
			Departure:   domain.SegmentPoint{IataCode: leg.From, At: at.Format("2006-01-02T15:04:05")},
			Arrival:     domain.SegmentPoint{IataCode: leg.To, At: arrive.Format("2006-01-02T15:04:05")},
		}
		at = arrive.Add(time.Hour)
	}

	hours := 2*len(legs) - 1
	return domain.RawOffer{
		Price: domain.OfferPrice{Total: total, Base: base, Currency: "USD"},
		Itineraries: []domain.Itinerary{
			{Duration: fmt.Sprintf("PT%dH", hours), Segments: segments},
		},
	}
}

// Direct builds a non-stop offer on one carrier.
func Direct(carrier, from, to, total, base string) domain.RawOffer {
	return Offer(total, base, Leg{Carrier: carrier, From: from, To: to})
}

// SampleOffers returns count direct JFK-HEL offers on carrier, priced 500, 600, ...
// with 100 of taxes each.
func SampleOffers(carrier string, count int) []domain.RawOffer {
	offers := make([]domain.RawOffer, count)
	for i := range offers {
		total := 500 + 100*i
		offers[i] = Direct(carrier, "JFK", "HEL", fmt.Sprintf("%d.00", total), fmt.Sprintf("%d.00", total-100))
	}
	return offers
}
