package kidneyrisk

import "github.com/hejijunhao/kidneyrisk/internal/pipeline"

// Result is a predicted risk level.
// This is the stable public type; internal representations may evolve
// independently without breaking consumers.
type Result struct {
	Class         int                `json:"class"`         // 0-4
	Label         string             `json:"label"`         // "No Disease" ... "High Risk"
	Headline      string             `json:"headline"`      // "2 - Moderate Risk"
	Probabilities map[string]float64 `json:"probabilities"` // by label, sums to 1
}

// Field describes one input of a patient record.
type Field struct {
	Name    string   `json:"name"`
	Kind    string   `json:"kind"` // "numeric" or "categorical"
	Min     *float64 `json:"min,omitempty"` // nil for categorical fields
	Max     *float64 `json:"max,omitempty"`
	Step    *float64 `json:"step,omitempty"`
	Default *float64 `json:"default,omitempty"`
	Options []string `json:"options,omitempty"`
}

// Error kinds reported by Error.Kind.
const (
	KindEncoding  = pipeline.ClassEncoding  // missing or malformed field
	KindInference = pipeline.ClassInference // record and artifacts disagree
	KindLookup    = pipeline.ClassLookup    // model returned an unknown risk level
	KindInternal  = pipeline.ClassInternal
)

// Error is returned by Predict when a record is rejected.
type Error struct {
	Kind    string
	Message string // user-facing, "Prediction failed: ..."
	err     error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.err }
