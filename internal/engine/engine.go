package engine

import (
	"github.com/hejijunhao/kidneyrisk/internal/engine/encoder"
	"github.com/hejijunhao/kidneyrisk/internal/engine/predictor"
	"github.com/hejijunhao/kidneyrisk/internal/model"
)

// Engine orchestrates the encode → scale → classify steps.
type Engine struct {
	encoder   *encoder.Encoder
	predictor *predictor.Predictor
	expected  []string
}

// New creates an Engine with the provided components. The expected column
// layout is resolved once from the predictor.
func New(enc *encoder.Encoder, pred *predictor.Predictor) *Engine {
	return &Engine{
		encoder:   enc,
		predictor: pred,
		expected:  pred.ExpectedColumns(),
	}
}

// Process encodes a raw record against the model's expected columns and
// classifies it. Errors are *encoder.EncodingError or
// *predictor.InferenceError.
func (e *Engine) Process(rec model.Record) (model.Prediction, model.Vector, error) {
	vec, err := e.encoder.Encode(rec, e.expected)
	if err != nil {
		return model.Prediction{}, model.Vector{}, err
	}

	pred, err := e.predictor.Predict(vec)
	if err != nil {
		return model.Prediction{}, vec, err
	}
	return pred, vec, nil
}

// ExpectedColumns returns the column layout records are encoded into.
func (e *Engine) ExpectedColumns() []string {
	out := make([]string, len(e.expected))
	copy(out, e.expected)
	return out
}

// ColumnsSource reports where the expected columns came from.
func (e *Engine) ColumnsSource() string {
	return e.predictor.ColumnsSource()
}

// Unproducible returns expected columns the schema can never produce. They
// are zero-filled on every submission.
func (e *Engine) Unproducible() []string {
	return e.encoder.Unproducible(e.expected)
}
