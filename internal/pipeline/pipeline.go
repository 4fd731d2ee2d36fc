package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"sync"

	"github.com/hejijunhao/kidneyrisk/internal/engine"
	"github.com/hejijunhao/kidneyrisk/internal/form"
	"github.com/hejijunhao/kidneyrisk/internal/model"
	"github.com/hejijunhao/kidneyrisk/internal/present"
	"github.com/hejijunhao/kidneyrisk/internal/schema"
)

// Outcome holds everything produced for one submission. It is transient and
// never stored.
type Outcome struct {
	Record     model.Record
	Vector     model.Vector
	Prediction model.Prediction
	Report     present.Report
}

// Pipeline runs collect → encode → predict → present for each submission.
// Submissions are processed one at a time, end to end.
type Pipeline struct {
	mu     sync.Mutex
	schema *schema.Schema
	engine *engine.Engine
	closer io.Closer // artifacts loaded by Open
}

// New creates a Pipeline from the given components.
func New(s *schema.Schema, eng *engine.Engine) *Pipeline {
	return &Pipeline{schema: s, engine: eng}
}

// Schema returns the schema submissions are collected against.
func (p *Pipeline) Schema() *schema.Schema {
	return p.schema
}

// Engine returns the engine submissions run through.
func (p *Pipeline) Engine() *engine.Engine {
	return p.engine
}

// Submit collects a record from submitted form values and runs it through
// the engine and presenter. Errors are *encoder.EncodingError,
// *predictor.InferenceError or *present.LookupError.
func (p *Pipeline) Submit(ctx context.Context, values url.Values) (*Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	rec, err := form.Collect(p.schema, values)
	if err != nil {
		return nil, p.reject(ctx, err)
	}
	return p.run(ctx, rec)
}

// SubmitRecord runs an already collected record through the engine and
// presenter.
func (p *Pipeline) SubmitRecord(ctx context.Context, rec model.Record) (*Outcome, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.run(ctx, rec)
}

func (p *Pipeline) run(ctx context.Context, rec model.Record) (*Outcome, error) {
	pred, vec, err := p.engine.Process(rec)
	if err != nil {
		return nil, p.reject(ctx, err)
	}

	report, err := present.Present(pred)
	if err != nil {
		return nil, p.reject(ctx, err)
	}

	slog.InfoContext(ctx, "prediction", "class", report.Class, "label", report.Label)
	return &Outcome{
		Record:     rec,
		Vector:     vec,
		Prediction: pred,
		Report:     report,
	}, nil
}

// reject logs a per-submission error and returns it unchanged. Lookup
// failures mean the label table no longer matches the model, so they are
// logged louder than bad input.
func (p *Pipeline) reject(ctx context.Context, err error) error {
	var lookupErr *present.LookupError
	if errors.As(err, &lookupErr) {
		slog.WarnContext(ctx, "risk label table out of date with model",
			"class", lookupErr.Class, "error", err)
		return err
	}
	slog.InfoContext(ctx, "submission rejected", "error", err)
	return err
}
