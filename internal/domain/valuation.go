package domain

import "github.com/shopspring/decimal"

// centsPerUnit scales a value per mile expressed in currency units into cents.
var centsPerUnit = decimal.NewFromInt(100)

// Valuation is the redemption value of a route flown on a given airline.
type Valuation struct {
	// Airline is the carrier code whose award chart was used
	Airline string `json:"airline"`

	// MilesRequired is the award price in miles
	MilesRequired int `json:"milesRequired"`

	// ValuePerMile is (price - taxes) / miles in the fare currency, unrounded
	ValuePerMile decimal.Decimal `json:"valuePerMile"`
}

// CentsPerMile returns the value per mile scaled to cents and rounded to 2 decimals.
func (v Valuation) CentsPerMile() decimal.Decimal {
	return v.ValuePerMile.Mul(centsPerUnit).Round(2)
}
