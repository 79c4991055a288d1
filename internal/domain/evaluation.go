package domain

// Evaluation is the envelope returned by the valuation use case.
type Evaluation struct {
	// Criteria contains the search parameters after defaults were applied
	Criteria SearchCriteria

	// Result is the outcome of the query
	Result QueryResult

	// Metadata contains information about the query execution
	Metadata EvaluationMetadata
}

// EvaluationMetadata contains metadata about a valuation query.
type EvaluationMetadata struct {
	// Provider is the name of the upstream offer source
	Provider string `json:"provider"`

	// OffersReceived is the number of raw offers returned by the upstream
	OffersReceived int `json:"offers_received"`

	// RoutesBuilt is the number of routes that passed the allow-list
	RoutesBuilt int `json:"routes_built"`

	// OffersSkipped is the number of malformed offers skipped by the normalizer
	OffersSkipped int `json:"offers_skipped"`

	// SearchTimeMs is the total query duration in milliseconds
	SearchTimeMs int64 `json:"search_time_ms"`
}

// NewEvaluation creates an Evaluation, defaulting a nil result to NoOffers.
func NewEvaluation(criteria SearchCriteria, result QueryResult, metadata EvaluationMetadata) *Evaluation {
	if result == nil {
		result = NoOffers{}
	}
	return &Evaluation{
		Criteria: criteria,
		Result:   result,
		Metadata: metadata,
	}
}

// Status returns the status of the wrapped result.
func (e *Evaluation) Status() ResultStatus {
	return e.Result.Status()
}
