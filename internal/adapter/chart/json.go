package chart

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/flight-search/flight-value-engine/internal/domain"
)

// LoadJSON reads a nested {airline: {"ORIG-DEST": {CABIN: miles}}} chart file.
func LoadJSON(path string) (*domain.RedemptionChart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chart file: %w", err)
	}
	defer f.Close()

	return DecodeJSON(f)
}

// DecodeJSON decodes and validates a chart document.
func DecodeJSON(r io.Reader) (*domain.RedemptionChart, error) {
	var data domain.ChartData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidChart, err)
	}
	return domain.NewRedemptionChart(data)
}
