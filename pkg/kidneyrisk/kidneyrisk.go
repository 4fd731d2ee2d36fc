package kidneyrisk

import (
	"context"
	"fmt"

	"github.com/hejijunhao/kidneyrisk/internal/engine/predictor"
	"github.com/hejijunhao/kidneyrisk/internal/form"
	"github.com/hejijunhao/kidneyrisk/internal/pipeline"
	"github.com/hejijunhao/kidneyrisk/internal/schema"
)

// Predictor predicts risk levels for patient records.
type Predictor struct {
	pipeline *pipeline.Pipeline
}

// New loads the scaler and classifier artifacts. Create once, reuse across
// requests.
func New(opts ...Option) (*Predictor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cls, sc, lib := o.model.ResolvePaths()
	p, err := pipeline.Open(schema.Default(), predictor.Paths{
		Classifier: cls,
		Scaler:     sc,
		RuntimeLib: lib,
	})
	if err != nil {
		return nil, fmt.Errorf("kidneyrisk: %w", err)
	}
	return &Predictor{pipeline: p}, nil
}

// Predict encodes a record of field name to number or option string and
// returns the predicted risk level. Every field from Fields must be present.
// Rejected records return an *Error.
func (p *Predictor) Predict(ctx context.Context, record map[string]any) (Result, error) {
	values, err := form.ValuesFromMap(record)
	if err != nil {
		return Result{}, rejected(err)
	}
	out, err := p.pipeline.Submit(ctx, values)
	if err != nil {
		return Result{}, rejected(err)
	}

	probs := make(map[string]float64, len(out.Report.Bars))
	for _, b := range out.Report.Bars {
		probs[b.Label] = b.Probability
	}
	return Result{
		Class:         out.Report.Class,
		Label:         out.Report.Label,
		Headline:      out.Report.Headline,
		Probabilities: probs,
	}, nil
}

// Fields describes the inputs a record must provide, in display order.
func (p *Predictor) Fields() []Field {
	info := p.pipeline.Schema().Info()
	fields := make([]Field, len(info))
	for i, fi := range info {
		fields[i] = Field{
			Name:    fi.Name,
			Kind:    fi.Kind,
			Min:     fi.Min,
			Max:     fi.Max,
			Step:    fi.Step,
			Default: fi.Default,
			Options: fi.Options,
		}
	}
	return fields
}

// ExpectedColumns returns the encoded column layout the artifacts expect.
func (p *Predictor) ExpectedColumns() []string {
	return p.pipeline.Engine().ExpectedColumns()
}

// Close releases model resources. Must be called when the Predictor is no
// longer needed.
func (p *Predictor) Close() error {
	return p.pipeline.Close()
}

func rejected(err error) *Error {
	return &Error{
		Kind:    pipeline.Classify(err),
		Message: pipeline.Describe(err),
		err:     err,
	}
}
