// Package form lays out the patient form and turns submitted form values
// into raw records.
//
// Option values are canonical lower-case strings. They are shown title-cased
// ("Yes", "Abnormal") but submitted and stored as declared, so the encoded
// column names always use the canonical value.
package form

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/hejijunhao/kidneyrisk/internal/engine/encoder"
	"github.com/hejijunhao/kidneyrisk/internal/model"
	"github.com/hejijunhao/kidneyrisk/internal/schema"
)

// Columns is the number of display columns fields are spread across.
const Columns = 2

// Input kinds rendered by the form.
const (
	InputNumber = "number"
	InputRadio  = "radio"
)

// Choice is one option of a single-choice input.
type Choice struct {
	Value    string // canonical option, submitted as-is
	Label    string // display text
	Selected bool
}

// Widget is one rendered input.
type Widget struct {
	ID      string
	Name    string
	Input   string
	Min     string
	Max     string
	Step    string
	Value   string
	Choices []Choice
}

// Layout builds one widget per schema field and distributes them round-robin
// across Columns display columns. Widgets are pre-filled from values when a
// field is present there, otherwise from the field's default or first
// option.
func Layout(s *schema.Schema, values url.Values) [][]Widget {
	title := cases.Title(language.English)
	cols := make([][]Widget, Columns)
	for i, f := range s.Fields() {
		w := Widget{ID: fmt.Sprintf("field-%d", i), Name: f.Name()}
		submitted, hasSubmitted := lookup(values, f.Name())

		switch f := f.(type) {
		case schema.Numeric:
			w.Input = InputNumber
			w.Min = formatNumber(f.Min)
			w.Max = formatNumber(f.Max)
			w.Step = formatNumber(f.Step)
			w.Value = formatNumber(f.Default)
			if hasSubmitted {
				w.Value = submitted
			}
		case schema.Categorical:
			w.Input = InputRadio
			selected := f.Options[0]
			if hasSubmitted {
				if opt, ok := matchOption(f, submitted); ok {
					selected = opt
				}
			}
			for _, o := range f.Options {
				w.Choices = append(w.Choices, Choice{
					Value:    o,
					Label:    title.String(o),
					Selected: o == selected,
				})
			}
		}
		cols[i%Columns] = append(cols[i%Columns], w)
	}
	return cols
}

// Collect builds a raw record from submitted form values. Fields absent from
// values are left out of the record so that encoding reports them. Values
// that cannot be parsed, fall outside the field's bounds or name an
// undeclared option are rejected with an *encoder.EncodingError.
func Collect(s *schema.Schema, values url.Values) (model.Record, error) {
	rec := make(map[string]model.Value, s.Len())
	for _, f := range s.Fields() {
		raw, ok := lookup(values, f.Name())
		if !ok {
			continue
		}

		switch f := f.(type) {
		case schema.Numeric:
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return model.Record{}, &encoder.EncodingError{Field: f.Label, Reason: fmt.Sprintf("%q is not a number", raw)}
			}
			if !f.Contains(v) {
				return model.Record{}, &encoder.EncodingError{Field: f.Label, Reason: outOfRange(f, v)}
			}
			if !f.OnStep(v) {
				return model.Record{}, &encoder.EncodingError{
					Field:  f.Label,
					Reason: fmt.Sprintf("%s is not a multiple of %s from %s", raw, formatNumber(f.Step), formatNumber(f.Min)),
				}
			}
			rec[f.Label] = model.Number(v)
		case schema.Categorical:
			opt, ok := matchOption(f, raw)
			if !ok {
				return model.Record{}, &encoder.EncodingError{Field: f.Label, Reason: fmt.Sprintf("unknown option %q", raw)}
			}
			rec[f.Label] = model.Option(opt)
		}
	}
	return model.NewRecord(rec), nil
}

// Defaults returns the record a user submits without touching any input.
func Defaults(s *schema.Schema) model.Record {
	rec := make(map[string]model.Value, s.Len())
	for _, f := range s.Fields() {
		switch f := f.(type) {
		case schema.Numeric:
			rec[f.Label] = model.Number(f.Default)
		case schema.Categorical:
			rec[f.Label] = model.Option(f.Options[0])
		}
	}
	return model.NewRecord(rec)
}

// DefaultValues returns the form values of an untouched form.
func DefaultValues(s *schema.Schema) url.Values {
	values := make(url.Values, s.Len())
	for _, f := range s.Fields() {
		switch f := f.(type) {
		case schema.Numeric:
			values.Set(f.Label, formatNumber(f.Default))
		case schema.Categorical:
			values.Set(f.Label, f.Options[0])
		}
	}
	return values
}

// lookup returns the trimmed first value for name. Blank values count as
// absent.
func lookup(values url.Values, name string) (string, bool) {
	v := strings.TrimSpace(values.Get(name))
	return v, v != ""
}

// matchOption maps a submitted value onto a declared option, ignoring case
// and Unicode normalization differences.
func matchOption(f schema.Categorical, raw string) (string, bool) {
	fold := cases.Fold()
	want := fold.String(norm.NFC.String(raw))
	for _, o := range f.Options {
		if fold.String(norm.NFC.String(o)) == want {
			return o, true
		}
	}
	return "", false
}

func outOfRange(f schema.Numeric, v float64) string {
	if f.Integer && v >= f.Min && v <= f.Max {
		return fmt.Sprintf("%s is not a whole number", formatNumber(v))
	}
	return fmt.Sprintf("%s outside [%s, %s]", formatNumber(v), formatNumber(f.Min), formatNumber(f.Max))
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
