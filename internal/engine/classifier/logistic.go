package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Logistic is a fitted multinomial logistic regression. Coef holds one row
// of weights per class; probabilities are the softmax of the class scores.
type Logistic struct {
	Names     []string    `json:"feature_names,omitempty"`
	Classes   []int       `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

// LoadLogistic reads logistic-regression parameters from a JSON file.
func LoadLogistic(path string) (*Logistic, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	var l Logistic
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("classifier: failed to parse %s: %w", path, err)
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func (l *Logistic) validate() error {
	if len(l.Classes) < 2 {
		return fmt.Errorf("classifier: need at least 2 classes, got %d", len(l.Classes))
	}
	if len(l.Coef) != len(l.Classes) || len(l.Intercept) != len(l.Classes) {
		return fmt.Errorf("classifier: %d classes but %d coef rows and %d intercepts",
			len(l.Classes), len(l.Coef), len(l.Intercept))
	}
	width := len(l.Coef[0])
	if width == 0 {
		return fmt.Errorf("classifier: no features")
	}
	for i, row := range l.Coef {
		if len(row) != width {
			return fmt.Errorf("classifier: coef row %d has %d weights, want %d", i, len(row), width)
		}
	}
	if l.Names != nil && len(l.Names) != width {
		return fmt.Errorf("classifier: %d feature names for %d features", len(l.Names), width)
	}
	return nil
}

func (l *Logistic) Predict(row []float64) (int, []float64, error) {
	if len(row) != l.NumFeatures() {
		return 0, nil, fmt.Errorf("classifier: expected %d features, got %d", l.NumFeatures(), len(row))
	}

	scores := make([]float64, len(l.Classes))
	for k, w := range l.Coef {
		s := l.Intercept[k]
		for j, x := range row {
			s += w[j] * x
		}
		scores[k] = s
	}
	probs := softmax(scores)

	best := 0
	for k, p := range probs {
		if p > probs[best] {
			best = k
		}
	}
	return l.Classes[best], probs, nil
}

func (l *Logistic) NumFeatures() int       { return len(l.Coef[0]) }
func (l *Logistic) NumClasses() int        { return len(l.Classes) }
func (l *Logistic) FeatureNames() []string { return l.Names }
func (l *Logistic) Close() error           { return nil }

// softmax is shifted by the max score to keep exp from overflowing.
func softmax(scores []float64) []float64 {
	maxScore := math.Inf(-1)
	for _, s := range scores {
		if s > maxScore {
			maxScore = s
		}
	}
	out := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		out[i] = math.Exp(s - maxScore)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
