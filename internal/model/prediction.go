package model

// Prediction is the classifier output for a single encoded vector.
type Prediction struct {
	Class         int       // predicted risk class index
	Probabilities []float64 // one per class, sums to 1
}

// ProbabilitySum returns the sum of all class probabilities.
func (p Prediction) ProbabilitySum() float64 {
	var sum float64
	for _, v := range p.Probabilities {
		sum += v
	}
	return sum
}
