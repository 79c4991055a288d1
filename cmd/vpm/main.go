// Package main is the interactive value-per-mile calculator.
//
// It lists the routes with offer data, asks for a route and a departure date,
// and prints the cheapest routes together with the value per mile of the
// optimal (or fallback) route. Configuration is shared with the server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/flight-search/flight-value-engine/internal/adapter/chart"
	"github.com/flight-search/flight-value-engine/internal/adapter/cli"
	"github.com/flight-search/flight-value-engine/internal/adapter/provider/amadeus"
	"github.com/flight-search/flight-value-engine/internal/config"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/logger"
	"github.com/flight-search/flight-value-engine/internal/usecase"
)

func main() {
	route := flag.Int("route", 0, "number of the route to value (asked when omitted)")
	date := flag.String("date", "", "departure date in YYYY-MM-DD format (asked when omitted)")
	cabin := flag.String("cabin", "", "redemption cabin class (default: VALUATION_CABIN_CLASS)")
	verbose := flag.Bool("v", false, "log upstream and evaluation details to stderr")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cli.Options{Route: *route, DepartureDate: *date, CabinClass: *cabin}, *verbose); err != nil {
		if !errors.Is(err, cli.ErrInvalidChoice) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, opts cli.Options, verbose bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := "warn"
	if verbose {
		level = "debug"
	}
	log := logger.NewWithOutput(logger.Config{
		Level:       level,
		Format:      "console",
		ServiceName: logger.DefaultServiceName,
	}, os.Stderr)

	redemptionChart, err := chart.Load(ctx, cfg.Chart.Source, cfg.Chart.Path)
	if err != nil {
		return fmt.Errorf("load redemption chart: %w", err)
	}

	if opts.CabinClass == "" {
		opts.CabinClass = cfg.Valuation.CabinClass
	}

	allowed := cfg.Valuation.AllowList()
	provider := amadeus.NewAdapter(cfg.Offers.MockDir, amadeus.WithMaxResults(cfg.Offers.MaxResults))
	evaluator := usecase.NewEvaluator(redemptionChart, allowed, usecase.EvaluateOptions{
		TopN:       cfg.Valuation.TopN,
		CabinClass: cfg.Valuation.CabinClass,
	}, log)
	valuationUseCase := usecase.NewValuationUseCase(provider, evaluator, &usecase.Config{
		EvaluationTimeout: cfg.Timeouts.Evaluation,
		UpstreamTimeout:   cfg.Timeouts.Upstream,
	}, log)

	return cli.NewRunner(valuationUseCase, provider, allowed).Run(ctx, os.Stdin, os.Stdout, opts)
}
