package usecase

import (
	"errors"

	"github.com/flight-search/flight-value-engine/internal/domain"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/logger"
)

// valuePerMile is replaced in tests to drive the valuation fault path.
var valuePerMile = ValuePerMile

// EvaluationReport is the outcome of evaluating one batch of offers.
type EvaluationReport struct {
	// Result is the query outcome
	Result domain.QueryResult

	// RoutesBuilt is the number of routes that passed the allow-list
	RoutesBuilt int

	// Errors holds the skipped malformed offers and the valuation faults, in that order
	Errors []error
}

// EvaluateQuery normalizes, ranks and values a batch of offers.
//
// It performs no I/O. Malformed offers and redemption entries that cannot be
// valued are skipped and returned alongside the result; they never abort the query.
func EvaluateQuery(offers []domain.RawOffer, allowed domain.AllowList, chart *domain.RedemptionChart, opts EvaluateOptions) (domain.QueryResult, []error) {
	report := evaluate(offers, allowed, chart, opts.withDefaults(DefaultEvaluateOptions()))
	return report.Result, report.Errors
}

func evaluate(offers []domain.RawOffer, allowed domain.AllowList, chart *domain.RedemptionChart, opts EvaluateOptions) EvaluationReport {
	if len(offers) == 0 {
		return EvaluationReport{Result: domain.NoOffers{}}
	}

	routes, errs := Normalize(offers, allowed)
	if len(routes) == 0 {
		return EvaluationReport{
			Result: domain.NoAllowedRoutes{OfferCount: len(offers), Skipped: len(errs)},
			Errors: errs,
		}
	}

	topN := TopN(routes, opts.TopN)
	optimal, _ := Optimal(routes) // routes is non-empty

	var (
		hit       RedemptionHit
		valuation domain.Valuation
	)
	failed := make(map[string]struct{})
	found := walkRedemptions(routes, allowed, chart, opts.CabinClass, func(h RedemptionHit) bool {
		key := h.Route.ID + "/" + h.Route.Origin + "-" + h.Route.Destination + "/" + h.Airline
		if _, seen := failed[key]; seen {
			return false
		}
		vpm, err := valuePerMile(h.Route.Price, h.Route.Taxes, h.Miles)
		if err != nil {
			failed[key] = struct{}{}
			var valErr *domain.ValuationError
			if errors.As(err, &valErr) {
				valErr.Airline = h.Airline
			}
			errs = append(errs, err)
			return false
		}
		hit = h
		valuation = domain.Valuation{Airline: h.Airline, MilesRequired: h.Miles, ValuePerMile: vpm}
		return true
	})

	report := EvaluationReport{RoutesBuilt: len(routes), Errors: errs}
	switch {
	case !found:
		report.Result = domain.Unvalued{TopN: topN, Optimal: optimal}
	case hit.Phase == PhaseOptimal:
		report.Result = domain.Valued{TopN: topN, Optimal: optimal, Valuation: valuation}
	default:
		report.Result = domain.Fallback{TopN: topN, Optimal: optimal, Route: hit.Route, Valuation: valuation}
	}
	return report
}

// Evaluator is EvaluateQuery bound to a redemption chart and an allow-list.
// It is safe for concurrent use: all of its state is immutable.
type Evaluator struct {
	chart   *domain.RedemptionChart
	allowed domain.AllowList
	opts    EvaluateOptions
	log     *logger.Logger
}

// NewEvaluator creates an Evaluator. Zero option fields take the package defaults.
// A nil logger disables logging.
func NewEvaluator(chart *domain.RedemptionChart, allowed domain.AllowList, opts EvaluateOptions, log *logger.Logger) *Evaluator {
	if chart == nil {
		chart = domain.EmptyRedemptionChart()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Evaluator{
		chart:   chart,
		allowed: allowed,
		opts:    opts.withDefaults(DefaultEvaluateOptions()),
		log:     log,
	}
}

// Evaluate evaluates a batch of offers. Zero fields in opts fall back to the evaluator's options.
// Skipped offers and valuation faults are logged at warn level.
func (e *Evaluator) Evaluate(offers []domain.RawOffer, opts EvaluateOptions) EvaluationReport {
	report := evaluate(offers, e.allowed, e.chart, opts.withDefaults(e.opts))

	for _, err := range report.Errors {
		var malformed *domain.MalformedOfferError
		if errors.As(err, &malformed) {
			e.log.Warn().Err(err).
				Int("offer_index", malformed.Index).
				Str("field", malformed.Field).
				Msg("skipped malformed offer")
			continue
		}
		e.log.Warn().Err(err).Msg("redemption entry could not be valued")
	}

	return report
}

// Options returns the evaluator's default options.
func (e *Evaluator) Options() EvaluateOptions {
	return e.opts
}

// AllowList returns the carrier allow-list the evaluator filters with.
func (e *Evaluator) AllowList() domain.AllowList {
	return e.allowed
}

// Chart returns the redemption chart the evaluator values against.
func (e *Evaluator) Chart() *domain.RedemptionChart {
	return e.chart
}
