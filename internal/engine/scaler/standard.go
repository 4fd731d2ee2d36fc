package scaler

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Standard is a fitted standardization transform: (x - mean) / scale per
// column.
type Standard struct {
	Names []string  `json:"feature_names,omitempty"`
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// LoadStandard reads standard-scaler parameters from a JSON file.
func LoadStandard(path string) (*Standard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scaler: %w", err)
	}
	var s Standard
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scaler: failed to parse %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Standard) validate() error {
	if len(s.Mean) == 0 {
		return fmt.Errorf("scaler: no features")
	}
	if len(s.Mean) != len(s.Scale) {
		return fmt.Errorf("scaler: mean has %d entries, scale has %d", len(s.Mean), len(s.Scale))
	}
	if s.Names != nil && len(s.Names) != len(s.Mean) {
		return fmt.Errorf("scaler: %d feature names for %d features", len(s.Names), len(s.Mean))
	}
	for i, sc := range s.Scale {
		if sc == 0 || math.IsNaN(sc) || math.IsInf(sc, 0) {
			return fmt.Errorf("scaler: invalid scale %v at column %d", sc, i)
		}
	}
	return nil
}

func (s *Standard) Transform(row []float64) ([]float64, error) {
	if err := checkWidth(row, len(s.Mean)); err != nil {
		return nil, err
	}
	out := make([]float64, len(row))
	for i, x := range row {
		out[i] = (x - s.Mean[i]) / s.Scale[i]
	}
	return out, nil
}

func (s *Standard) NumFeatures() int       { return len(s.Mean) }
func (s *Standard) FeatureNames() []string { return s.Names }
func (s *Standard) Close() error           { return nil }
