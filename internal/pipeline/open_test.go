package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hejijunhao/kidneyrisk/internal/engine/enginetest"
	"github.com/hejijunhao/kidneyrisk/internal/engine/predictor"
	"github.com/hejijunhao/kidneyrisk/internal/schema"
)

func TestOpen(t *testing.T) {
	s := schema.Default()
	paths := enginetest.WriteArtifacts(t, s.Columns())

	p, err := Open(s, paths)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer p.Close()

	if got := p.Engine().ColumnsSource(); got != predictor.SourceClassifier {
		t.Errorf("ColumnsSource() = %q, want %q", got, predictor.SourceClassifier)
	}
	out, err := p.SubmitRecord(context.Background(), enginetest.HighRiskRecord())
	if err != nil {
		t.Fatalf("SubmitRecord() error: %v", err)
	}
	if out.Report.Headline != "4 - High Risk" {
		t.Errorf("Headline = %q, want %q", out.Report.Headline, "4 - High Risk")
	}
}

func TestOpenMissingArtifact(t *testing.T) {
	s := schema.Default()
	paths := enginetest.WriteArtifacts(t, s.Columns())
	paths.Classifier = filepath.Join(t.TempDir(), "missing.json")

	_, err := Open(s, paths)
	var startupErr *predictor.StartupError
	if !errors.As(err, &startupErr) {
		t.Fatalf("expected *StartupError, got %v", err)
	}
	if startupErr.Artifact != paths.Classifier {
		t.Errorf("Artifact = %q, want %q", startupErr.Artifact, paths.Classifier)
	}
}

func TestOpenReportsUnproducible(t *testing.T) {
	s := schema.Default()
	cols := s.Columns()
	cols[len(cols)-1] = "eGFR"
	paths := enginetest.WriteArtifacts(t, cols)

	p, err := Open(s, paths)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer p.Close()

	got := p.Engine().Unproducible()
	if len(got) != 1 || got[0] != "eGFR" {
		t.Fatalf("Unproducible() = %v, want [eGFR]", got)
	}
}

func TestCloseWithoutOpen(t *testing.T) {
	p := newTestPipeline(t, nil)
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
}
