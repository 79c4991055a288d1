package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeTaxes(t *testing.T) {
	tests := []struct {
		name  string
		price string
		base  string
		want  string
	}{
		{name: "simple difference", price: "800.00", base: "650.00", want: "150"},
		{name: "rounds to cents", price: "100.005", base: "50", want: "50.01"},
		{name: "no taxes", price: "420.50", base: "420.50", want: "0"},
		{name: "price below base stays negative", price: "100", base: "120.40", want: "-20.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTaxes(decimal.RequireFromString(tt.price), decimal.RequireFromString(tt.base))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestRoute_PathString(t *testing.T) {
	tests := []struct {
		name string
		path []string
		want string
	}{
		{name: "direct", path: []string{"JFK", "HEL"}, want: "JFK → HEL"},
		{name: "one stop", path: []string{"JFK", "LHR", "HEL"}, want: "JFK → LHR → HEL"},
		{name: "empty", path: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Route{Path: tt.path}.PathString())
		})
	}
}

func TestRoute_HasAirline(t *testing.T) {
	r := Route{Airlines: []string{"AA", "BA"}}

	assert.True(t, r.HasAirline("AA"))
	assert.True(t, r.HasAirline("ba"))
	assert.False(t, r.HasAirline("LH"))
	assert.False(t, Route{}.HasAirline("AA"))
}

func TestRouteKey(t *testing.T) {
	assert.Equal(t, "JFK-HEL", RouteKey("JFK", "HEL"))
	assert.Equal(t, "SYD-BKK", Route{Origin: "SYD", Destination: "BKK"}.RouteKey())
}
