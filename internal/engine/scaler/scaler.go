package scaler

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Scaler is a pre-fitted feature transform applied before classification.
type Scaler interface {
	// Transform maps one encoded row to the scaled row of the same width.
	Transform(row []float64) ([]float64, error)
	// NumFeatures is the row width the scaler was fitted on.
	NumFeatures() int
	// FeatureNames returns the fitted column names, or nil if the artifact
	// does not record them.
	FeatureNames() []string
	Close() error
}

// Load opens a scaler artifact, choosing the format by file extension:
// ".onnx" for an ONNX Runtime model, ".json" for standard-scaler parameters.
func Load(path string) (Scaler, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".onnx":
		m, err := loadONNX(path)
		if err != nil {
			return nil, err
		}
		return m, nil
	case ".json":
		m, err := LoadStandard(path)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("scaler: unsupported artifact format %q", path)
	}
}

func checkWidth(row []float64, want int) error {
	if len(row) != want {
		return fmt.Errorf("scaler: expected %d features, got %d", want, len(row))
	}
	return nil
}
