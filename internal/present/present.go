package present

import (
	"fmt"

	"github.com/hejijunhao/kidneyrisk/internal/model"
)

// riskLevels maps class indices to their display labels. The classifier's
// class ordering must match this table.
var riskLevels = [...]string{
	0: "No Disease",
	1: "Low Risk",
	2: "Moderate Risk",
	3: "Severe Disease",
	4: "High Risk",
}

// LookupError reports a prediction that does not fit the risk-level table.
// It means the deployed model and the label table have drifted apart.
type LookupError struct {
	Class  int
	Reason string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup: class %d: %s", e.Class, e.Reason)
}

// RiskLevels returns a copy of the risk-level labels indexed by class.
func RiskLevels() []string {
	return append([]string(nil), riskLevels[:]...)
}

// Label returns the risk-level label for a class index.
func Label(class int) (string, error) {
	if class < 0 || class >= len(riskLevels) {
		return "", &LookupError{
			Class:  class,
			Reason: fmt.Sprintf("outside known risk levels 0-%d", len(riskLevels)-1),
		}
	}
	return riskLevels[class], nil
}

// Bar is one entry of the probability chart.
type Bar struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// Report is the display form of a prediction.
type Report struct {
	Class    int    `json:"class"`
	Label    string `json:"label"`
	Headline string `json:"headline"` // "<class> - <label>"
	Bars     []Bar  `json:"probabilities"`
}

// Present turns a prediction into a Report.
func Present(p model.Prediction) (Report, error) {
	label, err := Label(p.Class)
	if err != nil {
		return Report{}, err
	}
	if len(p.Probabilities) != len(riskLevels) {
		return Report{}, &LookupError{
			Class:  p.Class,
			Reason: fmt.Sprintf("%d probabilities for %d risk levels", len(p.Probabilities), len(riskLevels)),
		}
	}

	bars := make([]Bar, len(riskLevels))
	for i, name := range riskLevels {
		bars[i] = Bar{Label: name, Probability: p.Probabilities[i]}
	}
	return Report{
		Class:    p.Class,
		Label:    label,
		Headline: fmt.Sprintf("%d - %s", p.Class, label),
		Bars:     bars,
	}, nil
}
