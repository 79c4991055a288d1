package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/flight-value-engine/internal/adapter/http/response"
	"github.com/flight-search/flight-value-engine/internal/domain"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/logger"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-value-engine/internal/usecase"
)

// RouteLister lists the origin/destination pairs the upstream has offers for.
type RouteLister interface {
	SupportedRoutes() ([]domain.AirportPair, error)
}

// HandlerConfig holds the presentation settings of the handler.
type HandlerConfig struct {
	// AllowList resolves airline display names
	AllowList domain.AllowList

	// DefaultCabinClass applies when a request does not name a cabin
	DefaultCabinClass string

	// ChartEntries is reported by the health check
	ChartEntries int

	// Clock decides which departure dates are in the past
	Clock timeutil.Clock
}

// ValuationHandler handles HTTP requests for valuation endpoints.
type ValuationHandler struct {
	useCase usecase.ValuationUseCase
	routes  RouteLister
	cfg     HandlerConfig
	log     *logger.Logger
}

// NewValuationHandler creates a new ValuationHandler.
func NewValuationHandler(uc usecase.ValuationUseCase, routes RouteLister, cfg HandlerConfig, log *logger.Logger) *ValuationHandler {
	if cfg.DefaultCabinClass == "" {
		cfg.DefaultCabinClass = domain.DefaultCabinClass
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.NewRealClock()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ValuationHandler{useCase: uc, routes: routes, cfg: cfg, log: log}
}

// Evaluate handles POST /api/v1/valuations
//
// @Summary Value a route in miles
// @Description Fetches offers for the route, ranks them and computes the value per mile of the optimal (or fallback) route
// @Tags valuations
// @Accept json
// @Produce json
// @Param request body EvaluateRequest true "Valuation query"
// @Success 200 {object} SwaggerValuationResponse
// @Failure 400 {object} SwaggerErrorResponse "Validation error"
// @Failure 500 {object} SwaggerErrorResponse "Internal error"
// @Router /api/v1/valuations [post]
func (h *ValuationHandler) Evaluate(c echo.Context) error {
	var req EvaluateRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(h.cfg.Clock); err != nil {
		return h.handleValidationError(c, err)
	}

	criteria := ToDomainCriteria(&req, h.cfg.DefaultCabinClass)
	opts := ToEvaluateOptions(&req)

	eval, err := h.useCase.Evaluate(c.Request().Context(), criteria, opts)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToValuationResponseDTO(eval, h.cfg.AllowList))
}

// ListRoutes handles GET /api/v1/routes
//
// @Summary List supported routes
// @Description Lists the origin/destination pairs that have offer data
// @Tags routes
// @Produce json
// @Success 200 {object} RoutesResponseDTO
// @Failure 500 {object} SwaggerErrorResponse "Internal error"
// @Router /api/v1/routes [get]
func (h *ValuationHandler) ListRoutes(c echo.Context) error {
	if h.routes == nil {
		return response.OK(c, ToRoutesResponseDTO(nil))
	}

	pairs, err := h.routes.SupportedRoutes()
	if err != nil {
		h.log.Error().Err(err).Msg("failed to list supported routes")
		return response.InternalServerError(c)
	}

	return response.OK(c, ToRoutesResponseDTO(pairs))
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *ValuationHandler) Health(c echo.Context) error {
	return response.Health(c, h.cfg.ChartEntries)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ValuationHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps use case errors to HTTP responses.
// Upstream failures never reach here: they are reported as a no_offers result.
func (h *ValuationHandler) handleError(c echo.Context, err error) error {
	if domain.IsInvalidRequest(err) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	h.log.Error().Err(err).Msg("valuation failed")
	return response.InternalServerError(c)
}
