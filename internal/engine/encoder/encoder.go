package encoder

import (
	"fmt"

	"github.com/hejijunhao/kidneyrisk/internal/model"
	"github.com/hejijunhao/kidneyrisk/internal/schema"
)

// EncodingError reports a submission that cannot be encoded: a schema field
// is missing from the record or holds a value of the wrong shape.
type EncodingError struct {
	Field  string
	Reason string
}

func (e *EncodingError) Error() string {
	if e.Field == "" {
		return "encoding: " + e.Reason
	}
	return fmt.Sprintf("encoding: field %q: %s", e.Field, e.Reason)
}

// Encoder expands raw records into one-hot encoded vectors.
type Encoder struct {
	schema *schema.Schema
}

// New creates an Encoder over the given schema.
func New(s *schema.Schema) *Encoder {
	return &Encoder{schema: s}
}

// Encode turns rec into a vector whose columns are exactly expected, in that
// order. Numeric fields pass through unscaled. Every categorical field
// contributes one 0/1 column per declared option. Expected columns the
// record cannot produce are filled with 0; produced columns not in expected
// are dropped.
func (e *Encoder) Encode(rec model.Record, expected []string) (model.Vector, error) {
	if len(expected) == 0 {
		return model.Vector{}, &EncodingError{Reason: "no expected columns"}
	}

	working := make(map[string]float64, len(expected))
	for _, f := range e.schema.Fields() {
		v, ok := rec.Get(f.Name())
		if !ok {
			return model.Vector{}, &EncodingError{Field: f.Name(), Reason: "missing value"}
		}

		switch f := f.(type) {
		case schema.Numeric:
			if v.IsOption() {
				return model.Vector{}, &EncodingError{Field: f.Label, Reason: "expected a number"}
			}
			working[f.Label] = v.Float()
		case schema.Categorical:
			if !v.IsOption() {
				return model.Vector{}, &EncodingError{Field: f.Label, Reason: "expected an option"}
			}
			if !f.Has(v.String()) {
				return model.Vector{}, &EncodingError{
					Field:  f.Label,
					Reason: fmt.Sprintf("unknown option %q", v.String()),
				}
			}
			for _, o := range f.Options {
				var bit float64
				if v.String() == o {
					bit = 1
				}
				working[schema.ColumnName(f.Label, o)] = bit
			}
		}
	}

	vec := model.Vector{
		Columns: make([]string, len(expected)),
		Values:  make([]float64, len(expected)),
	}
	copy(vec.Columns, expected)
	for i, col := range expected {
		vec.Values[i] = working[col] // absent columns stay 0
	}
	return vec, nil
}

// Unproducible returns the expected columns that no record under this
// schema can ever produce. Encode fills them with 0; a non-empty result
// usually means the model was trained against a different schema.
func (e *Encoder) Unproducible(expected []string) []string {
	known := make(map[string]bool)
	for _, col := range e.schema.Columns() {
		known[col] = true
	}
	var out []string
	for _, col := range expected {
		if !known[col] {
			out = append(out, col)
		}
	}
	return out
}
