// Package main is the entry point for the flight value-per-mile service.
//
//	@title						Flight Value Engine API
//	@version					1.0.0
//	@description				Normalizes flight offers into routes, ranks them by price and computes the cash value per loyalty mile of the cheapest redeemable route.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/flight-search/flight-value-engine/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	// Import generated docs for swagger
	_ "github.com/flight-search/flight-value-engine/docs"

	// Application layers
	"github.com/flight-search/flight-value-engine/internal/adapter/chart"
	valuationhttp "github.com/flight-search/flight-value-engine/internal/adapter/http"
	"github.com/flight-search/flight-value-engine/internal/adapter/http/middleware"
	"github.com/flight-search/flight-value-engine/internal/adapter/provider/amadeus"
	"github.com/flight-search/flight-value-engine/internal/config"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/logger"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/timeutil"
	"github.com/flight-search/flight-value-engine/internal/usecase"
)

const (
	shutdownTimeout  = 10 * time.Second
	chartLoadTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger with config
	log := setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	handler, err := buildHandler(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize valuation service")
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware and routes
	middleware.Setup(e, log)
	valuationhttp.RegisterRoutes(e, handler)
	valuationhttp.RegisterSwagger(e)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e, log)
}

// setupLogger builds the service logger from config and installs it globally.
func setupLogger(cfg *config.Config) *logger.Logger {
	log := logger.New(logger.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		EnableCaller: cfg.IsDevelopment(),
		ServiceName:  logger.DefaultServiceName,
	})
	logger.SetGlobal(log)
	return log
}

// buildHandler loads the redemption chart and wires the upstream, evaluator and use case.
func buildHandler(cfg *config.Config, log *logger.Logger) (*valuationhttp.ValuationHandler, error) {
	ctx, cancel := context.WithTimeout(context.Background(), chartLoadTimeout)
	defer cancel()

	redemptionChart, err := chart.Load(ctx, cfg.Chart.Source, cfg.Chart.Path)
	if err != nil {
		return nil, fmt.Errorf("load redemption chart: %w", err)
	}
	log.Info().
		Str("source", cfg.Chart.Source).
		Str("path", cfg.Chart.Path).
		Int("entries", redemptionChart.Size()).
		Strs("airlines", redemptionChart.Airlines()).
		Msg("Redemption chart loaded")

	allowed := cfg.Valuation.AllowList()
	provider := amadeus.NewAdapter(cfg.Offers.MockDir, amadeus.WithMaxResults(cfg.Offers.MaxResults))

	evaluator := usecase.NewEvaluator(redemptionChart, allowed, usecase.EvaluateOptions{
		TopN:       cfg.Valuation.TopN,
		CabinClass: cfg.Valuation.CabinClass,
	}, log)

	clock := timeutil.NewRealClock()
	valuationUseCase := usecase.NewValuationUseCase(provider, evaluator, &usecase.Config{
		EvaluationTimeout: cfg.Timeouts.Evaluation,
		UpstreamTimeout:   cfg.Timeouts.Upstream,
		Clock:             clock,
	}, log)

	return valuationhttp.NewValuationHandler(valuationUseCase, provider, valuationhttp.HandlerConfig{
		AllowList:         allowed,
		DefaultCabinClass: cfg.Valuation.CabinClass,
		ChartEntries:      redemptionChart.Size(),
		Clock:             clock,
	}, log), nil
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
