package domain

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=domain

import "context"

// OfferProvider is the upstream flight search collaborator.
// Implementations return raw offers for the criteria or a *ProviderError.
type OfferProvider interface {
	// Name returns the unique identifier of the provider.
	Name() string

	// Search returns the offers for the given criteria.
	// An empty slice with a nil error means the upstream had nothing to offer.
	Search(ctx context.Context, criteria SearchCriteria) ([]RawOffer, error)
}
