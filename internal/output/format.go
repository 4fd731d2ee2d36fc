package output

import (
	"github.com/hejijunhao/kidneyrisk/internal/model"
	"github.com/hejijunhao/kidneyrisk/internal/present"
)

// Verbosity controls how much of an outcome is written.
type Verbosity int

const (
	// Minimal writes the class and label only.
	Minimal Verbosity = iota
	// Standard adds the probability distribution.
	Standard
	// Full adds the encoded feature vector.
	Full
)

// ParseVerbosity maps "minimal", "standard" and "full" to a Verbosity.
// Unknown strings default to Standard.
func ParseVerbosity(s string) Verbosity {
	switch s {
	case "minimal":
		return Minimal
	case "full":
		return Full
	default:
		return Standard
	}
}

// Result is the serialized form of one prediction.
type Result struct {
	SubmissionID  string             `json:"submission_id,omitempty"`
	Class         int                `json:"class"`
	Label         string             `json:"label"`
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
	Features      map[string]float64 `json:"features,omitempty"`
}

// FormatResult builds a Result from a report and its encoded vector, with
// fields stripped according to verbosity.
func FormatResult(id string, r present.Report, v model.Vector, verbosity Verbosity) Result {
	res := Result{
		SubmissionID: id,
		Class:        r.Class,
		Label:        r.Label,
	}
	if verbosity >= Standard {
		res.Probabilities = make(map[string]float64, len(r.Bars))
		for _, b := range r.Bars {
			res.Probabilities[b.Label] = b.Probability
		}
	}
	if verbosity >= Full && v.Len() > 0 {
		res.Features = make(map[string]float64, v.Len())
		for i, col := range v.Columns {
			res.Features[col] = v.Values[i]
		}
	}
	return res
}
