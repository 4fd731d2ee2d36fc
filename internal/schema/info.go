package schema

// FieldInfo is the serializable description of a field.
type FieldInfo struct {
	Name    string   `json:"name" yaml:"name"`
	Kind    string   `json:"kind" yaml:"kind"`
	Min     *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max     *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Step    *float64 `json:"step,omitempty" yaml:"step,omitempty"`
	Default *float64 `json:"default,omitempty" yaml:"default,omitempty"`
	Integer bool     `json:"integer,omitempty" yaml:"integer,omitempty"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Info describes every field in declaration order.
func (s *Schema) Info() []FieldInfo {
	out := make([]FieldInfo, 0, len(s.fields))
	for _, f := range s.fields {
		fi := FieldInfo{Name: f.Name(), Kind: f.Kind().String()}
		switch f := f.(type) {
		case Numeric:
			fi.Min, fi.Max, fi.Step, fi.Default = ptr(f.Min), ptr(f.Max), ptr(f.Step), ptr(f.Default)
			fi.Integer = f.Integer
		case Categorical:
			fi.Options = append([]string(nil), f.Options...)
		}
		out = append(out, fi)
	}
	return out
}

func ptr(v float64) *float64 { return &v }
