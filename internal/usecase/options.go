// Package usecase contains the business logic of the flight value engine.
// It normalizes upstream offers into routes, ranks them and values them against the redemption chart.
package usecase

import (
	"strings"

	"github.com/flight-search/flight-value-engine/internal/domain"
)

// DefaultTopN is the number of cheapest routes returned with every result.
const DefaultTopN = 5

// EvaluateOptions contains the tunables of a single evaluation.
type EvaluateOptions struct {
	// TopN is the number of cheapest routes to return (default: 5)
	TopN int

	// CabinClass is the redemption chart cabin used for miles lookups (default: ECONOMY)
	CabinClass string
}

// DefaultEvaluateOptions returns EvaluateOptions with sensible defaults.
func DefaultEvaluateOptions() EvaluateOptions {
	return EvaluateOptions{
		TopN:       DefaultTopN,
		CabinClass: domain.DefaultCabinClass,
	}
}

// withDefaults fills zero fields from base.
func (o EvaluateOptions) withDefaults(base EvaluateOptions) EvaluateOptions {
	if o.TopN <= 0 {
		o.TopN = base.TopN
	}
	if o.CabinClass == "" {
		o.CabinClass = base.CabinClass
	}
	o.CabinClass = strings.ToUpper(o.CabinClass)
	return o
}
