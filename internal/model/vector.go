package model

// Vector is the encoded, model-ready feature row. Columns and Values have
// equal length; Values[i] belongs to Columns[i].
type Vector struct {
	Columns []string
	Values  []float64
}

// Len returns the number of columns.
func (v Vector) Len() int {
	return len(v.Columns)
}

// Get returns the value of the named column.
func (v Vector) Get(column string) (float64, bool) {
	for i, c := range v.Columns {
		if c == column {
			return v.Values[i], true
		}
	}
	return 0, false
}
