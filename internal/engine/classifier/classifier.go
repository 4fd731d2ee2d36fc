package classifier

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Classifier is a pre-fitted multi-class model over scaled feature rows.
type Classifier interface {
	// Predict returns the predicted class and the per-class probabilities
	// for one scaled row.
	Predict(row []float64) (class int, probs []float64, err error)
	NumFeatures() int
	NumClasses() int
	// FeatureNames returns the training column names, or nil if the
	// artifact does not record them.
	FeatureNames() []string
	Close() error
}

// Load opens a classifier artifact, choosing the format by file extension:
// ".onnx" for an ONNX Runtime model, ".json" for logistic-regression
// parameters.
func Load(path string) (Classifier, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".onnx":
		m, err := loadONNX(path)
		if err != nil {
			return nil, err
		}
		return m, nil
	case ".json":
		m, err := LoadLogistic(path)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("classifier: unsupported artifact format %q", path)
	}
}
