package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/flight-search/flight-value-engine/internal/domain"
	"github.com/flight-search/flight-value-engine/internal/infrastructure/timeutil"
)

// vpmPlaces is the rounding of the printed value per mile.
const vpmPlaces = 4

// Renderer prints evaluations as plain text.
type Renderer struct {
	allowed domain.AllowList
}

// NewRenderer creates a Renderer resolving airline names through allowed.
func NewRenderer(allowed domain.AllowList) *Renderer {
	return &Renderer{allowed: allowed}
}

// Render writes the evaluation: the cheapest routes, the optimal route and its
// value per mile, the fallback route, or the message of an empty result.
func (r *Renderer) Render(out io.Writer, eval *domain.Evaluation) {
	topN, optimal, ok := domain.RankedRoutes(eval.Result)
	if !ok {
		fmt.Fprintln(out, domain.Message(eval.Result))
		return
	}

	fmt.Fprintf(out, "\nTop %d Cheapest Routes from %s to %s:\n", len(topN), eval.Criteria.Origin, eval.Criteria.Destination)
	for _, route := range topN {
		fmt.Fprintf(out, "%s | %s | Stops: %d | Route: %s | Airlines: %s\n",
			route.ID, r.fare(route), route.Stops, route.PathString(), r.airlineNames(route.Airlines))
	}

	fmt.Fprintln(out, "\nOptimal Route:")
	fmt.Fprintf(out, "%s → %s | Airlines: %s | Stops: %d | Duration: %s | Total: %s\n",
		optimal.Origin, optimal.Destination, r.airlineNames(optimal.Airlines), optimal.Stops,
		timeutil.FormatDuration(optimal.Duration), r.fare(optimal))
	fmt.Fprintf(out, "Route: %s\n", optimal.PathString())

	switch res := eval.Result.(type) {
	case domain.Valued:
		fmt.Fprintf(out, "\nValue per Mile (VPM): %s | Airline: %s | Miles Required: %d\n",
			formatVPM(res.Valuation.ValuePerMile), r.allowed.Name(res.Valuation.Airline), res.Valuation.MilesRequired)
	case domain.Fallback:
		fmt.Fprintf(out, "\n%s Trying fallback...\n", domain.MsgOptimalNotRedeemable)
		fmt.Fprintln(out, "\nFallback Redeemable Route:")
		fmt.Fprintf(out, "%s → %s | Airline: %s | Route: %s\n",
			res.Route.Origin, res.Route.Destination, r.allowed.Name(res.Valuation.Airline), res.Route.PathString())
		fmt.Fprintf(out, "Total: %s\n", r.fare(res.Route))
		fmt.Fprintf(out, "Value per Mile (VPM): %s | Miles Required: %d\n",
			formatVPM(res.Valuation.ValuePerMile), res.Valuation.MilesRequired)
	case domain.Unvalued:
		fmt.Fprintf(out, "\n%s Trying fallback...\n", domain.MsgOptimalNotRedeemable)
		fmt.Fprintln(out, domain.MsgNoRedeemableRoutes)
	}
}

func (r *Renderer) fare(route domain.Route) string {
	return fmt.Sprintf("%s (Base: %s + Taxes: %s)", formatMoney(route.Price), formatMoney(route.Base), formatMoney(route.Taxes))
}

func (r *Renderer) airlineNames(codes []string) string {
	names := make([]string, len(codes))
	for i, code := range codes {
		names[i] = r.allowed.Name(code)
	}
	return strings.Join(names, ", ")
}

func formatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func formatVPM(vpm decimal.Decimal) string {
	return "$" + vpm.Round(vpmPlaces).String() + "/mile"
}
