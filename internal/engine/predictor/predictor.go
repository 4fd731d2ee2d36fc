package predictor

import (
	"fmt"
	"math"

	"github.com/hejijunhao/kidneyrisk/internal/model"
)

// Column sources reported by ColumnsSource.
const (
	SourceClassifier = "classifier"
	SourceScaler     = "scaler"
	SourceFallback   = "schema"
)

// probabilityTolerance bounds how far an artifact's probabilities may stray
// from summing to 1 before the output is rejected.
const probabilityTolerance = 1e-3

// Predictor scales an encoded vector and classifies it with the loaded
// artifacts. It holds no mutable state.
type Predictor struct {
	artifacts Artifacts
	columns   []string
	source    string
}

// New checks that the artifacts agree with each other and resolves the
// expected column layout: the classifier's feature names, else the scaler's,
// else fallback. Inconsistencies are returned as *StartupError.
func New(a Artifacts, fallback []string) (*Predictor, error) {
	if a.Scaler == nil || a.Classifier == nil {
		return nil, &StartupError{Artifact: "artifacts", Err: fmt.Errorf("scaler and classifier are both required")}
	}

	width := a.Classifier.NumFeatures()
	if a.Scaler.NumFeatures() != width {
		return nil, &StartupError{
			Artifact: "scaler",
			Err:      fmt.Errorf("scaler expects %d features, classifier expects %d", a.Scaler.NumFeatures(), width),
		}
	}

	cn, sn := a.Classifier.FeatureNames(), a.Scaler.FeatureNames()
	if cn != nil && sn != nil && !equal(cn, sn) {
		return nil, &StartupError{Artifact: "scaler", Err: fmt.Errorf("scaler and classifier feature names differ")}
	}

	p := &Predictor{artifacts: a}
	switch {
	case cn != nil:
		p.columns, p.source = cn, SourceClassifier
	case sn != nil:
		p.columns, p.source = sn, SourceScaler
	default:
		p.columns, p.source = fallback, SourceFallback
	}
	p.columns = append([]string(nil), p.columns...)

	if len(p.columns) != width {
		return nil, &StartupError{
			Artifact: p.source,
			Err:      fmt.Errorf("%d expected columns for %d model features", len(p.columns), width),
		}
	}
	return p, nil
}

// ExpectedColumns returns the column layout the artifacts were trained on.
func (p *Predictor) ExpectedColumns() []string {
	out := make([]string, len(p.columns))
	copy(out, p.columns)
	return out
}

// ColumnsSource reports where ExpectedColumns came from.
func (p *Predictor) ColumnsSource() string {
	return p.source
}

// NumClasses returns the number of classes the classifier scores.
func (p *Predictor) NumClasses() int {
	return p.artifacts.Classifier.NumClasses()
}

// Predict scales v and classifies it. Any mismatch between v and the
// artifacts, or an invalid artifact output, is an *InferenceError.
func (p *Predictor) Predict(v model.Vector) (model.Prediction, error) {
	if v.Len() != len(p.columns) || len(v.Values) != len(p.columns) {
		return model.Prediction{}, &InferenceError{
			Reason: fmt.Sprintf("vector has %d columns, artifacts expect %d", v.Len(), len(p.columns)),
		}
	}
	for i, col := range v.Columns {
		if col != p.columns[i] {
			return model.Prediction{}, &InferenceError{
				Reason: fmt.Sprintf("column %d is %q, artifacts expect %q", i, col, p.columns[i]),
			}
		}
	}

	scaled, err := p.artifacts.Scaler.Transform(v.Values)
	if err != nil {
		return model.Prediction{}, &InferenceError{Reason: "scaler transform failed", Err: err}
	}

	class, probs, err := p.artifacts.Classifier.Predict(scaled)
	if err != nil {
		return model.Prediction{}, &InferenceError{Reason: "classifier predict failed", Err: err}
	}

	probs, err = normalize(probs, p.NumClasses())
	if err != nil {
		return model.Prediction{}, &InferenceError{Reason: "invalid probabilities", Err: err}
	}
	return model.Prediction{Class: class, Probabilities: probs}, nil
}

// normalize validates a probability vector and rescales it to sum exactly
// to 1, absorbing float32 rounding from the runtime.
func normalize(probs []float64, classes int) ([]float64, error) {
	if len(probs) != classes {
		return nil, fmt.Errorf("got %d probabilities for %d classes", len(probs), classes)
	}
	var sum float64
	for i, p := range probs {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return nil, fmt.Errorf("probability %d is %v", i, p)
		}
		sum += p
	}
	if math.Abs(sum-1) > probabilityTolerance {
		return nil, fmt.Errorf("probabilities sum to %v", sum)
	}
	out := make([]float64, len(probs))
	for i, p := range probs {
		out[i] = p / sum
	}
	return out, nil
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
