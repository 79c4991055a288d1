// Package integration provides helpers and integration tests for the flight value engine.
// Integration tests verify that components work together correctly: the HTTP handler,
// the valuation use case, the recorded upstream responses and the shipped redemption chart.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/flight-search/flight-value-engine/internal/adapter/http"
	"github.com/flight-search/flight-value-engine/internal/adapter/http/middleware"
	"github.com/flight-search/flight-value-engine/internal/adapter/provider/amadeus"
	"github.com/flight-search/flight-value-engine/internal/domain"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/logger"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/retry"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-value-engine/internal/usecase"
	"github.com/flight-search/flight-value-engine/test/testutil"
)

// DepartureDate is the date used by every request; the server clock sits before it.
const DepartureDate = "2025-06-01"

// Today is the date the test server considers current.
const Today = "2025-05-15"

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ValuationHandler
}

// NewTestServer creates a test server around the given use case with the full middleware chain.
func NewTestServer(uc usecase.ValuationUseCase, routes httpAdapter.RouteLister) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, logger.Nop())

	handler := httpAdapter.NewValuationHandler(uc, routes, httpAdapter.HandlerConfig{
		AllowList: domain.DefaultAllowList(),
		Clock:     timeutil.NewMockClockFromString(Today + "T12:00:00Z"),
	}, logger.Nop())
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// NewRecordedServer serves the recorded responses in docs/response-mock valued with the shipped chart.
func NewRecordedServer(t *testing.T) *TestServer {
	t.Helper()
	provider := amadeus.NewAdapter(testutil.MockDir(t))
	return NewTestServer(CreateUseCase(t, provider), provider)
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch b := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(b))
	default:
		bodyBytes, _ := json.Marshal(b)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// ValuationRequest posts a valuation query.
func (ts *TestServer) ValuationRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/valuations",
		Body:   body,
	})
}

// RoutesRequest lists the supported routes.
func (ts *TestServer) RoutesRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/routes",
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseValuation parses the response body as a valuation response.
func (r *Response) ParseValuation() (*httpAdapter.ValuationResponseDTO, error) {
	var resp httpAdapter.ValuationResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// ValuationRequestBody is a helper struct for building valuation request bodies.
type ValuationRequestBody struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departureDate"`
	Passengers    int    `json:"passengers,omitempty"`
	CabinClass    string `json:"cabinClass,omitempty"`
	TopN          *int   `json:"topN,omitempty"`
}

// RequestFor returns a valid valuation request body for the pair.
func RequestFor(origin, destination string) ValuationRequestBody {
	return ValuationRequestBody{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: DepartureDate,
		Passengers:    1,
	}
}

// CriteriaFor returns valid search criteria for testing the use case directly.
func CriteriaFor(origin, destination string) domain.SearchCriteria {
	return domain.SearchCriteria{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: DepartureDate,
		Passengers:    1,
	}
}

// TestConfig keeps timeouts and retry waits short.
func TestConfig() *usecase.Config {
	return &usecase.Config{
		EvaluationTimeout: 2 * time.Second,
		UpstreamTimeout:   500 * time.Millisecond,
		Retry: retry.Config{
			MaxAttempts:  3,
			InitialDelay: time.Millisecond,
			MaxDelay:     5 * time.Millisecond,
			Multiplier:   2,
		},
	}
}

// CreateUseCase creates a use case over the provider valued with the shipped chart.
func CreateUseCase(t *testing.T, provider domain.OfferProvider) usecase.ValuationUseCase {
	t.Helper()
	return CreateUseCaseWithConfig(t, provider, TestConfig())
}

// CreateUseCaseWithConfig creates a use case with custom configuration.
func CreateUseCaseWithConfig(t *testing.T, provider domain.OfferProvider, config *usecase.Config) usecase.ValuationUseCase {
	t.Helper()
	evaluator := usecase.NewEvaluator(testutil.ShippedChart(t), domain.DefaultAllowList(), usecase.DefaultEvaluateOptions(), logger.Nop())
	return usecase.NewValuationUseCase(provider, evaluator, config, logger.Nop())
}
