// Package cli provides the interactive terminal front end of the valuation engine.
// It prompts for a supported route and a departure date, runs the valuation and prints the result.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/flight-search/flight-value-engine/internal/domain"
	"github.com/flight-search/flight-value-engine/internal/usecase"
)

// Prompt texts.
const (
	promptRoute = "Choose a route by number: "
	promptDate  = "Enter departure date (YYYY-MM-DD): "
)

// ErrInvalidChoice is returned when the route number is not one of the listed routes.
var ErrInvalidChoice = errors.New("invalid choice")

// RouteLister lists the origin/destination pairs the upstream has offers for.
type RouteLister interface {
	SupportedRoutes() ([]domain.AirportPair, error)
}

// Options holds the answers given on the command line.
// Empty fields are asked for interactively.
type Options struct {
	// Route is the 1-based number of the route in the listing
	Route int

	// DepartureDate is the departure date in YYYY-MM-DD format
	DepartureDate string

	// CabinClass overrides the evaluator's cabin class
	CabinClass string
}

// Runner drives one interactive valuation.
type Runner struct {
	useCase  usecase.ValuationUseCase
	routes   RouteLister
	renderer *Renderer
}

// NewRunner creates a Runner. Airline names are resolved through allowed.
func NewRunner(uc usecase.ValuationUseCase, routes RouteLister, allowed domain.AllowList) *Runner {
	return &Runner{useCase: uc, routes: routes, renderer: NewRenderer(allowed)}
}

// Run lists the routes, reads the missing answers from in and writes the valuation to out.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	pairs, err := r.routes.SupportedRoutes()
	if err != nil {
		return fmt.Errorf("list routes: %w", err)
	}
	if len(pairs) == 0 {
		fmt.Fprintln(out, "No routes available.")
		return nil
	}

	cabin := opts.CabinClass
	if cabin == "" {
		cabin = domain.DefaultCabinClass
	}
	fmt.Fprintf(out, "Available Routes (%s redemption data):\n", strings.ToUpper(cabin))
	for i, p := range pairs {
		fmt.Fprintf(out, "%d. %s → %s\n", i+1, p.Origin, p.Destination)
	}

	scanner := bufio.NewScanner(in)

	choice := opts.Route
	if choice == 0 {
		answer := ask(scanner, out, promptRoute)
		choice, err = strconv.Atoi(answer)
		if err != nil {
			choice = -1
		}
	}
	if choice < 1 || choice > len(pairs) {
		fmt.Fprintln(out, "Invalid choice.")
		return ErrInvalidChoice
	}
	pair := pairs[choice-1]

	date := strings.TrimSpace(opts.DepartureDate)
	if date == "" {
		date = ask(scanner, out, promptDate)
	}

	criteria := domain.SearchCriteria{
		Origin:        pair.Origin,
		Destination:   pair.Destination,
		DepartureDate: date,
		CabinClass:    opts.CabinClass,
	}

	eval, err := r.useCase.Evaluate(ctx, criteria, usecase.EvaluateOptions{})
	if err != nil {
		return err
	}

	r.renderer.Render(out, eval)
	return nil
}

// ask writes the prompt and returns the next trimmed input line, or "" at end of input.
func ask(scanner *bufio.Scanner, out io.Writer, prompt string) string {
	fmt.Fprint(out, prompt)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
