package domain

// ResultStatus names the outcome of a valuation query.
type ResultStatus string

// Possible query outcomes.
const (
	// StatusNoOffers means the upstream returned nothing or failed
	StatusNoOffers ResultStatus = "no_offers"

	// StatusNoAllowedRoutes means no itinerary used an allowed carrier
	StatusNoAllowedRoutes ResultStatus = "no_allowed_routes"

	// StatusValued means the optimal route has redemption data
	StatusValued ResultStatus = "valued"

	// StatusFallback means another, pricier route has redemption data
	StatusFallback ResultStatus = "fallback"

	// StatusUnvalued means no route/airline pair has redemption data
	StatusUnvalued ResultStatus = "unvalued"
)

// QueryResult is the outcome of a valuation query.
// The set of implementations is closed: NoOffers, NoAllowedRoutes, Valued, Fallback, Unvalued.
type QueryResult interface {
	Status() ResultStatus
	queryResult()
}

// NoOffers is returned when the upstream produced no offers.
type NoOffers struct {
	// Err is the upstream failure, nil when the upstream simply returned nothing
	Err error
}

// NoAllowedRoutes is returned when offers exist but none uses an allowed carrier.
type NoAllowedRoutes struct {
	// OfferCount is the number of offers received
	OfferCount int
	// Skipped is the number of malformed offers that were skipped
	Skipped int
}

// Valued is returned when the optimal route itself has redemption data.
type Valued struct {
	TopN      []Route
	Optimal   Route
	Valuation Valuation
}

// Fallback is returned when the optimal route has no redemption data but another route does.
type Fallback struct {
	TopN      []Route
	Optimal   Route
	Route     Route
	Valuation Valuation
}

// Unvalued is returned when no route/airline combination has redemption data.
type Unvalued struct {
	TopN    []Route
	Optimal Route
}

func (NoOffers) Status() ResultStatus        { return StatusNoOffers }
func (NoAllowedRoutes) Status() ResultStatus { return StatusNoAllowedRoutes }
func (Valued) Status() ResultStatus          { return StatusValued }
func (Fallback) Status() ResultStatus        { return StatusFallback }
func (Unvalued) Status() ResultStatus        { return StatusUnvalued }

func (NoOffers) queryResult()        {}
func (NoAllowedRoutes) queryResult() {}
func (Valued) queryResult()          {}
func (Fallback) queryResult()        {}
func (Unvalued) queryResult()        {}

// RankedRoutes extracts the top-N list and optimal route from a result.
// ok is false for the empty-state variants.
func RankedRoutes(result QueryResult) (topN []Route, optimal Route, ok bool) {
	switch r := result.(type) {
	case Valued:
		return r.TopN, r.Optimal, true
	case Fallback:
		return r.TopN, r.Optimal, true
	case Unvalued:
		return r.TopN, r.Optimal, true
	default:
		return nil, Route{}, false
	}
}

// User-facing explanations for results that carry no valuation of the optimal route.
const (
	MsgNoOffers             = "No flights returned from API."
	MsgNoAllowedRoutes      = "No valid flights with allowed airlines."
	MsgOptimalNotRedeemable = "No redemption data found for the optimal route."
	MsgNoRedeemableRoutes   = "No redeemable routes found."
)

// Message returns the explanation shown with a result, or "" for Valued.
func Message(result QueryResult) string {
	switch result.(type) {
	case NoOffers:
		return MsgNoOffers
	case NoAllowedRoutes:
		return MsgNoAllowedRoutes
	case Fallback:
		return MsgOptimalNotRedeemable
	case Unvalued:
		return MsgNoRedeemableRoutes
	default:
		return ""
	}
}
