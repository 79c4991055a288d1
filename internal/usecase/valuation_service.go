package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flight-search/flight-value-engine/internal/domain"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/logger"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/retry"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/timeutil"
)

// Default timeout values.
const (
	DefaultEvaluationTimeout = 5 * time.Second
	DefaultUpstreamTimeout   = 3 * time.Second
)

// ValuationUseCase defines the interface for value-per-mile queries.
type ValuationUseCase interface {
	// Evaluate fetches the offers for the criteria from the upstream and values them.
	// Only invalid criteria are returned as an error; upstream failures become a NoOffers result.
	Evaluate(ctx context.Context, criteria domain.SearchCriteria, opts EvaluateOptions) (*domain.Evaluation, error)
}

// Config contains configuration options for the use case.
type Config struct {
	// EvaluationTimeout bounds the whole query, retries included
	EvaluationTimeout time.Duration

	// UpstreamTimeout bounds a single upstream attempt
	UpstreamTimeout time.Duration

	// Retry configures upstream retries; only retryable provider errors are retried
	Retry retry.Config

	// Clock measures the query duration
	Clock timeutil.Clock
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		EvaluationTimeout: DefaultEvaluationTimeout,
		UpstreamTimeout:   DefaultUpstreamTimeout,
		Retry:             retry.UpstreamConfig,
		Clock:             timeutil.NewRealClock(),
	}
}

type valuationUseCase struct {
	provider          domain.OfferProvider
	evaluator         *Evaluator
	evaluationTimeout time.Duration
	upstreamTimeout   time.Duration
	retry             retry.Config
	clock             timeutil.Clock
	log               *logger.Logger
}

// NewValuationUseCase creates a ValuationUseCase.
// If config is nil, or a field is zero, the defaults are used.
func NewValuationUseCase(provider domain.OfferProvider, evaluator *Evaluator, config *Config, log *logger.Logger) ValuationUseCase {
	cfg := DefaultConfig()
	if config != nil {
		if config.EvaluationTimeout > 0 {
			cfg.EvaluationTimeout = config.EvaluationTimeout
		}
		if config.UpstreamTimeout > 0 {
			cfg.UpstreamTimeout = config.UpstreamTimeout
		}
		if config.Retry.MaxAttempts > 0 {
			cfg.Retry = config.Retry
		}
		if config.Clock != nil {
			cfg.Clock = config.Clock
		}
	}
	if log == nil {
		log = logger.Nop()
	}

	return &valuationUseCase{
		provider:          provider,
		evaluator:         evaluator,
		evaluationTimeout: cfg.EvaluationTimeout,
		upstreamTimeout:   cfg.UpstreamTimeout,
		retry:             cfg.Retry.WithRetryIf(domain.IsRetryable),
		clock:             cfg.Clock,
		log:               log,
	}
}

// Evaluate implements ValuationUseCase.Evaluate.
func (uc *valuationUseCase) Evaluate(ctx context.Context, criteria domain.SearchCriteria, opts EvaluateOptions) (*domain.Evaluation, error) {
	criteria.SetDefaults()
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	if opts.TopN < 0 {
		return nil, domain.WrapInvalidRequest("topN must not be negative, got %d", opts.TopN)
	}
	opts.CabinClass = criteria.CabinClass

	start := uc.clock.Now()
	log := uc.log.WithQuery(criteria.Origin, criteria.Destination, criteria.DepartureDate)

	ctx, cancel := context.WithTimeout(ctx, uc.evaluationTimeout)
	defer cancel()

	metadata := domain.EvaluationMetadata{Provider: uc.provider.Name()}

	offers, err := uc.fetchOffers(ctx, criteria, log)
	if err != nil {
		log.Warn().Err(err).Msg("upstream search failed")
		metadata.SearchTimeMs = timeutil.Since(uc.clock, start).Milliseconds()
		return domain.NewEvaluation(criteria, domain.NoOffers{Err: err}, metadata), nil
	}

	report := uc.evaluator.Evaluate(offers, opts)

	metadata.OffersReceived = len(offers)
	metadata.RoutesBuilt = report.RoutesBuilt
	metadata.OffersSkipped = countMalformed(report.Errors)
	metadata.SearchTimeMs = timeutil.Since(uc.clock, start).Milliseconds()

	log.Info().
		Str("status", string(report.Result.Status())).
		Int("offers", metadata.OffersReceived).
		Int("routes", metadata.RoutesBuilt).
		Int("skipped", metadata.OffersSkipped).
		Int64("duration_ms", metadata.SearchTimeMs).
		Msg("evaluation completed")

	return domain.NewEvaluation(criteria, report.Result, metadata), nil
}

// fetchOffers calls the provider with a per-attempt timeout, retrying retryable failures.
func (uc *valuationUseCase) fetchOffers(ctx context.Context, criteria domain.SearchCriteria, log *logger.Logger) ([]domain.RawOffer, error) {
	cfg := uc.retry.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		log.Warn().Err(err).Int("attempt", attempt).Dur("wait", wait).Msg("retrying upstream search")
	})

	offers, err := retry.DoWithResult(ctx, func() ([]domain.RawOffer, error) {
		return uc.searchOnce(ctx, criteria)
	}, cfg)
	if err != nil {
		return nil, uc.classify(err)
	}
	return offers, nil
}

// classify turns any upstream failure into a *domain.ProviderError.
func (uc *valuationUseCase) classify(err error) error {
	var providerErr *domain.ProviderError
	switch {
	case errors.As(err, &providerErr):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return domain.NewProviderTimeoutError(uc.provider.Name())
	default:
		return domain.NewProviderError(uc.provider.Name(), err)
	}
}

// searchOnce runs a single provider call with timeout and panic recovery.
func (uc *valuationUseCase) searchOnce(ctx context.Context, criteria domain.SearchCriteria) (offers []domain.RawOffer, err error) {
	ctx, cancel := context.WithTimeout(ctx, uc.upstreamTimeout)
	defer cancel()

	name := uc.provider.Name()

	// A panicking provider must not take the server down
	defer func() {
		if r := recover(); r != nil {
			offers = nil
			err = domain.NewProviderError(name, fmt.Errorf("provider panic: %v", r))
		}
	}()

	offers, err = uc.provider.Search(ctx, criteria)
	if err == nil {
		return offers, nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, domain.NewProviderTimeoutError(name)
	}
	return nil, uc.classify(err)
}

func countMalformed(errs []error) int {
	n := 0
	for _, err := range errs {
		if domain.IsMalformedOffer(err) {
			n++
		}
	}
	return n
}

// Ensure valuationUseCase implements ValuationUseCase at compile time.
var _ ValuationUseCase = (*valuationUseCase)(nil)
