package schema

import (
	"strings"
	"testing"
)

func TestDefaultSelfConsistent(t *testing.T) {
	s := Default()

	if s.Len() != 26 {
		t.Fatalf("expected 26 fields, got %d", s.Len())
	}

	var numeric, categorical int
	for _, f := range s.Fields() {
		switch f := f.(type) {
		case Numeric:
			numeric++
			if f.Min > f.Default || f.Default > f.Max {
				t.Errorf("%s: default %v outside [%v, %v]", f.Label, f.Default, f.Min, f.Max)
			}
		case Categorical:
			categorical++
			if len(f.Options) < 2 {
				t.Errorf("%s: expected >= 2 options, got %d", f.Label, len(f.Options))
			}
		default:
			t.Errorf("unexpected field type %T", f)
		}
	}
	if numeric != 13 || categorical != 13 {
		t.Fatalf("expected 13 numeric + 13 categorical, got %d + %d", numeric, categorical)
	}
}

func TestDefaultOptionsAreLowerCase(t *testing.T) {
	for _, f := range DefaultFields() {
		c, ok := f.(Categorical)
		if !ok {
			continue
		}
		for _, o := range c.Options {
			if o != strings.ToLower(o) {
				t.Errorf("%s: option %q is not lower-case", c.Label, o)
			}
		}
	}
}

func TestNewRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		want   string
	}{
		{
			name: "duplicate name",
			fields: []Field{
				Numeric{Label: "Age", Min: 0, Max: 1, Step: 1, Default: 0},
				Categorical{Label: "Age", Options: []string{"a", "b"}},
			},
			want: "duplicate field name",
		},
		{
			name:   "default above max",
			fields: []Field{Numeric{Label: "x", Min: 0, Max: 1, Step: 0.1, Default: 2}},
			want:   "outside",
		},
		{
			name:   "min above max",
			fields: []Field{Numeric{Label: "x", Min: 5, Max: 1, Step: 1, Default: 3}},
			want:   "min",
		},
		{
			name:   "zero step",
			fields: []Field{Numeric{Label: "x", Min: 0, Max: 1, Step: 0, Default: 0}},
			want:   "step",
		},
		{
			name:   "fractional integer field",
			fields: []Field{Numeric{Label: "x", Min: 0, Max: 10, Step: 1, Default: 2.5, Integer: true}},
			want:   "fractional",
		},
		{
			name:   "single option",
			fields: []Field{Categorical{Label: "c", Options: []string{"only"}}},
			want:   "at least 2",
		},
		{
			name:   "duplicate option",
			fields: []Field{Categorical{Label: "c", Options: []string{"a", "a"}}},
			want:   "duplicate option",
		},
		{
			name:   "empty option",
			fields: []Field{Categorical{Label: "c", Options: []string{"a", ""}}},
			want:   "empty option",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.fields...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestNewCopiesOptions(t *testing.T) {
	opts := []string{"no", "yes"}
	s, err := New(Categorical{Label: "Smoking", Options: opts})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	opts[0] = "mutated"

	f, _ := s.Lookup("Smoking")
	if got := f.(Categorical).Options[0]; got != "no" {
		t.Fatalf("schema options changed through caller slice: %q", got)
	}
}

func TestColumns(t *testing.T) {
	s, err := New(
		Numeric{Label: "Age", Min: 18, Max: 100, Step: 1, Default: 50, Integer: true},
		Categorical{Label: "Hypertension", Options: []string{"no", "yes"}},
		Numeric{Label: "BMI", Min: 15, Max: 50, Step: 0.1, Default: 25},
	)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	want := []string{"Age", "BMI", "Hypertension_no", "Hypertension_yes"}
	got := s.Columns()
	if len(got) != len(want) {
		t.Fatalf("Columns() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Columns()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultColumnsCount(t *testing.T) {
	// 13 numeric + 12 binary fields x 2 + 1 binary field x 2
	if got := len(Default().Columns()); got != 39 {
		t.Fatalf("expected 39 columns, got %d", got)
	}
}

func TestColumnName(t *testing.T) {
	tests := []struct {
		field, option, want string
	}{
		{"Hypertension (yes/no)", "yes", "Hypertension (yes/no)_yes"},
		{"Appetite (good/poor)", "poor", "Appetite (good/poor)_poor"},
		{"a_b", "c", "a_b_c"},
	}
	for _, tt := range tests {
		if got := ColumnName(tt.field, tt.option); got != tt.want {
			t.Errorf("ColumnName(%q, %q) = %q, want %q", tt.field, tt.option, got, tt.want)
		}
	}
}

func TestNumericContains(t *testing.T) {
	age := Numeric{Label: "Age", Min: 18, Max: 100, Step: 1, Default: 50, Integer: true}
	tests := []struct {
		v    float64
		want bool
	}{
		{18, true},
		{100, true},
		{50, true},
		{17, false},
		{101, false},
		{50.5, false},
	}
	for _, tt := range tests {
		if got := age.Contains(tt.v); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestNumericOnStep(t *testing.T) {
	tests := []struct {
		field Numeric
		v     float64
		want  bool
	}{
		{Numeric{Label: "Urine", Min: 500, Max: 3000, Step: 100, Default: 1500}, 1500, true},
		{Numeric{Label: "Urine", Min: 500, Max: 3000, Step: 100, Default: 1500}, 3000, true},
		{Numeric{Label: "Urine", Min: 500, Max: 3000, Step: 100, Default: 1500}, 1550, false},
		{Numeric{Label: "Phosphate", Min: 0.5, Max: 6, Step: 0.1, Default: 3.5}, 3.5, true},
		{Numeric{Label: "Phosphate", Min: 0.5, Max: 6, Step: 0.1, Default: 3.5}, 3.7, true},
		{Numeric{Label: "Phosphate", Min: 0.5, Max: 6, Step: 0.1, Default: 3.5}, 3.75, false},
		{Numeric{Label: "Sodium", Min: 120, Max: 160, Step: 0.1, Default: 140}, 140.3, true},
	}
	for _, tt := range tests {
		if got := tt.field.OnStep(tt.v); got != tt.want {
			t.Errorf("%s.OnStep(%v) = %v, want %v", tt.field.Label, tt.v, got, tt.want)
		}
	}
}

func TestDefaultsOnStep(t *testing.T) {
	for _, f := range Default().Fields() {
		if n, ok := f.(Numeric); ok && !n.OnStep(n.Default) {
			t.Errorf("%s: default %v is not on step %v from %v", n.Label, n.Default, n.Step, n.Min)
		}
	}
}

func TestLookup(t *testing.T) {
	s := Default()
	f, ok := s.Lookup("Age of the patient")
	if !ok {
		t.Fatal("expected to find Age of the patient")
	}
	if f.Kind() != KindNumeric {
		t.Fatalf("expected numeric kind, got %v", f.Kind())
	}
	if _, ok := s.Lookup("nope"); ok {
		t.Fatal("expected miss for unknown field")
	}
}
