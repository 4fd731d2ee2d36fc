// Package enginetest builds fixture artifacts and records for tests that
// need a working scaler and classifier without ONNX Runtime.
//
// The fixture classifier scores a record by r, the number of categorical
// fields set to their second ("risky") option, and picks the class k in
// 0..4 maximizing k*r - 1.5*k*k. Defaults (r=0) give class 0, six risky
// answers give class 2, all thirteen give class 4.
package enginetest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/hejijunhao/kidneyrisk/internal/engine/classifier"
	"github.com/hejijunhao/kidneyrisk/internal/engine/predictor"
	"github.com/hejijunhao/kidneyrisk/internal/engine/scaler"
	"github.com/hejijunhao/kidneyrisk/internal/model"
	"github.com/hejijunhao/kidneyrisk/internal/schema"
)

// NumClasses is the number of classes the fixture classifier scores.
const NumClasses = 5

// Artifacts returns the fixture scaler and classifier parameters. names is
// recorded as the artifacts' feature names; nil leaves them unrecorded so
// callers fall back to the schema layout.
func Artifacts(names []string) (*scaler.Standard, *classifier.Logistic) {
	s := schema.Default()
	cols := s.Columns()
	risky := make(map[string]bool)
	for _, f := range s.Fields() {
		if c, ok := f.(schema.Categorical); ok {
			risky[schema.ColumnName(c.Label, c.Options[1])] = true
		}
	}

	sc := &scaler.Standard{
		Names: names,
		Mean:  make([]float64, len(cols)),
		Scale: make([]float64, len(cols)),
	}
	for i, col := range cols {
		sc.Scale[i] = 1
		if f, ok := s.Lookup(col); ok {
			n := f.(schema.Numeric)
			sc.Mean[i] = n.Default
			sc.Scale[i] = n.Max - n.Min
		}
	}

	cls := &classifier.Logistic{
		Names:     names,
		Classes:   make([]int, NumClasses),
		Coef:      make([][]float64, NumClasses),
		Intercept: make([]float64, NumClasses),
	}
	for k := 0; k < NumClasses; k++ {
		cls.Classes[k] = k
		cls.Intercept[k] = -1.5 * float64(k*k)
		cls.Coef[k] = make([]float64, len(cols))
		for j, col := range cols {
			if risky[col] {
				cls.Coef[k][j] = float64(k)
			}
		}
	}
	return sc, cls
}

// WriteArtifacts writes the fixture artifacts as JSON files into a temporary
// directory and returns their paths.
func WriteArtifacts(tb testing.TB, names []string) predictor.Paths {
	tb.Helper()
	sc, cls := Artifacts(names)
	dir := tb.TempDir()
	p := predictor.Paths{
		Scaler:     filepath.Join(dir, "scaler.json"),
		Classifier: filepath.Join(dir, "model.json"),
	}
	writeJSON(tb, p.Scaler, sc)
	writeJSON(tb, p.Classifier, cls)
	return p
}

func writeJSON(tb testing.TB, path string, v any) {
	tb.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		tb.Fatalf("marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
}

// DefaultRecord returns a record holding every field's default value or
// first option.
func DefaultRecord() model.Record {
	return RiskyRecord(0)
}

// ModerateRecord returns a record the fixture classifier scores as class 2.
func ModerateRecord() model.Record {
	return RiskyRecord(6)
}

// HighRiskRecord returns a record the fixture classifier scores as class 4.
func HighRiskRecord() model.Record {
	return RiskyRecord(13)
}

// RiskyRecord returns the default record with the first n categorical fields
// switched to their second option.
func RiskyRecord(n int) model.Record {
	values := make(map[string]model.Value)
	for _, f := range schema.Default().Fields() {
		switch f := f.(type) {
		case schema.Numeric:
			values[f.Label] = model.Number(f.Default)
		case schema.Categorical:
			opt := f.Options[0]
			if n > 0 {
				opt = f.Options[1]
				n--
			}
			values[f.Label] = model.Option(opt)
		}
	}
	return model.NewRecord(values)
}
