package pipeline

import (
	"log/slog"

	"github.com/hejijunhao/kidneyrisk/internal/engine"
	"github.com/hejijunhao/kidneyrisk/internal/engine/encoder"
	"github.com/hejijunhao/kidneyrisk/internal/engine/predictor"
	"github.com/hejijunhao/kidneyrisk/internal/schema"
)

// Open loads the artifacts at paths and wires a Pipeline for s. It is the
// single place artifacts are loaded; failures are *predictor.StartupError.
func Open(s *schema.Schema, paths predictor.Paths) (*Pipeline, error) {
	a, err := predictor.LoadArtifacts(paths)
	if err != nil {
		return nil, err
	}

	pred, err := predictor.New(a, s.Columns())
	if err != nil {
		a.Close()
		return nil, err
	}

	eng := engine.New(encoder.New(s), pred)
	slog.Info("artifacts loaded",
		"classifier", paths.Classifier,
		"scaler", paths.Scaler,
		"columns_source", eng.ColumnsSource(),
		"columns", len(eng.ExpectedColumns()),
	)
	if cols := eng.Unproducible(); len(cols) > 0 {
		slog.Warn("model expects columns the form cannot produce; they are zero-filled",
			"columns", cols)
	}

	p := New(s, eng)
	p.closer = a
	return p, nil
}

// Close releases artifacts loaded by Open. It is a no-op for pipelines
// built with New.
func (p *Pipeline) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}
