package model

// Value is a single raw form value: either a number or a categorical option.
type Value struct {
	number   float64
	option   string
	isOption bool
}

// Number returns a numeric Value.
func Number(v float64) Value {
	return Value{number: v}
}

// Option returns a categorical Value holding the given option string.
func Option(s string) Value {
	return Value{option: s, isOption: true}
}

// IsOption reports whether the value holds a categorical option.
func (v Value) IsOption() bool { return v.isOption }

// Float returns the numeric value. Zero for option values.
func (v Value) Float() float64 { return v.number }

// String returns the option value. Empty for numeric values.
func (v Value) String() string { return v.option }

// Record is one form submission keyed by field name. It is immutable once
// built: NewRecord copies its input and only read accessors are exposed.
type Record struct {
	values map[string]Value
}

// NewRecord builds a Record from a copy of values.
func NewRecord(values map[string]Value) Record {
	m := make(map[string]Value, len(values))
	for k, v := range values {
		m[k] = v
	}
	return Record{values: m}
}

// Get returns the value stored for the named field.
func (r Record) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Len returns the number of fields present in the record.
func (r Record) Len() int {
	return len(r.values)
}

// Fields returns the names present in the record, in no particular order.
func (r Record) Fields() []string {
	names := make([]string, 0, len(r.values))
	for name := range r.values {
		names = append(names, name)
	}
	return names
}
