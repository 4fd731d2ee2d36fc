package pipeline

import (
	"errors"

	"github.com/hejijunhao/kidneyrisk/internal/engine/encoder"
	"github.com/hejijunhao/kidneyrisk/internal/engine/predictor"
	"github.com/hejijunhao/kidneyrisk/internal/present"
)

// Error classes for per-submission failures.
const (
	ClassEncoding  = "encoding"
	ClassInference = "inference"
	ClassLookup    = "lookup"
	ClassInternal  = "internal"
)

// Classify names the error class of a per-submission error.
func Classify(err error) string {
	var (
		encErr    *encoder.EncodingError
		infErr    *predictor.InferenceError
		lookupErr *present.LookupError
	)
	switch {
	case errors.As(err, &encErr):
		return ClassEncoding
	case errors.As(err, &infErr):
		return ClassInference
	case errors.As(err, &lookupErr):
		return ClassLookup
	default:
		return ClassInternal
	}
}

// Describe converts a per-submission error into the message shown to the
// user in place of results.
func Describe(err error) string {
	var (
		encErr    *encoder.EncodingError
		lookupErr *present.LookupError
	)
	switch {
	case errors.As(err, &encErr):
		if encErr.Field != "" {
			return "Prediction failed: " + encErr.Field + ": " + encErr.Reason
		}
		return "Prediction failed: " + encErr.Reason
	case errors.As(err, &lookupErr):
		return "Prediction failed: the model returned a risk level this service does not recognize"
	default:
		return "Prediction failed: " + err.Error()
	}
}
