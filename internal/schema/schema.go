package schema

import (
	"fmt"
	"math"
)

// Kind distinguishes the two field variants.
type Kind int

const (
	KindNumeric Kind = iota
	KindCategorical
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindCategorical:
		return "categorical"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field is one schema entry. The only implementations are Numeric and
// Categorical.
type Field interface {
	Name() string
	Kind() Kind
	validate() error
}

// Numeric is a bounded number input.
type Numeric struct {
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Default float64
	Integer bool // all of Min, Max, Step and Default are whole numbers
}

func (n Numeric) Name() string { return n.Label }
func (n Numeric) Kind() Kind   { return KindNumeric }

// Contains reports whether v lies within [Min, Max] and, for integer fields,
// is a whole number.
func (n Numeric) Contains(v float64) bool {
	if math.IsNaN(v) || v < n.Min || v > n.Max {
		return false
	}
	if n.Integer && v != math.Trunc(v) {
		return false
	}
	return true
}

// stepTolerance absorbs float error when dividing by decimal steps like 0.1.
const stepTolerance = 1e-6

// OnStep reports whether v is a whole number of steps above Min.
func (n Numeric) OnStep(v float64) bool {
	k := (v - n.Min) / n.Step
	return math.Abs(k-math.Round(k)) <= stepTolerance*math.Max(1, math.Abs(k))
}

func (n Numeric) validate() error {
	if n.Label == "" {
		return fmt.Errorf("numeric field has empty name")
	}
	if n.Min > n.Max {
		return fmt.Errorf("field %q: min %v > max %v", n.Label, n.Min, n.Max)
	}
	if n.Default < n.Min || n.Default > n.Max {
		return fmt.Errorf("field %q: default %v outside [%v, %v]", n.Label, n.Default, n.Min, n.Max)
	}
	if n.Step <= 0 {
		return fmt.Errorf("field %q: step must be positive, got %v", n.Label, n.Step)
	}
	if n.Integer {
		for _, v := range []float64{n.Min, n.Max, n.Step, n.Default} {
			if v != math.Trunc(v) {
				return fmt.Errorf("field %q: integer field has fractional value %v", n.Label, v)
			}
		}
	}
	return nil
}

// Categorical is a single-choice field over an ordered option set. The first
// option is the default selection.
type Categorical struct {
	Label   string
	Options []string
}

func (c Categorical) Name() string { return c.Label }
func (c Categorical) Kind() Kind   { return KindCategorical }

// Has reports whether option is one of the declared options.
func (c Categorical) Has(option string) bool {
	for _, o := range c.Options {
		if o == option {
			return true
		}
	}
	return false
}

func (c Categorical) validate() error {
	if c.Label == "" {
		return fmt.Errorf("categorical field has empty name")
	}
	if len(c.Options) < 2 {
		return fmt.Errorf("field %q: need at least 2 options, got %d", c.Label, len(c.Options))
	}
	seen := make(map[string]bool, len(c.Options))
	for _, o := range c.Options {
		if o == "" {
			return fmt.Errorf("field %q: empty option", c.Label)
		}
		if seen[o] {
			return fmt.Errorf("field %q: duplicate option %q", c.Label, o)
		}
		seen[o] = true
	}
	return nil
}

// Schema is the ordered, read-only table of input fields.
type Schema struct {
	fields []Field
	index  map[string]int
}

// New validates fields and returns an immutable Schema preserving their order.
func New(fields ...Field) (*Schema, error) {
	s := &Schema{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if err := f.validate(); err != nil {
			return nil, fmt.Errorf("schema: %w", err)
		}
		if _, dup := s.index[f.Name()]; dup {
			return nil, fmt.Errorf("schema: duplicate field name %q", f.Name())
		}
		if c, ok := f.(Categorical); ok {
			c.Options = append([]string(nil), c.Options...)
			f = c
		}
		s.index[f.Name()] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// Fields returns the schema entries in declaration order.
func (s *Schema) Fields() []Field {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out
}

// Len returns the number of fields.
func (s *Schema) Len() int {
	return len(s.fields)
}

// Lookup returns the field with the given name.
func (s *Schema) Lookup(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i], true
}

// Columns returns the canonical encoded column layout: numeric fields in
// declaration order, then one "<field>_<option>" column per categorical
// option in declaration order.
func (s *Schema) Columns() []string {
	var numeric, onehot []string
	for _, f := range s.fields {
		switch f := f.(type) {
		case Numeric:
			numeric = append(numeric, f.Label)
		case Categorical:
			for _, o := range f.Options {
				onehot = append(onehot, ColumnName(f.Label, o))
			}
		}
	}
	return append(numeric, onehot...)
}

// ColumnName returns the one-hot column name for a categorical option:
// the field name and the option joined by a single underscore.
func ColumnName(field, option string) string {
	return field + "_" + option
}
