package costmodel

// LinearModel is a plain affine cost model with externally supplied
// coefficients, typically produced by an offline regression.
type LinearModel struct {
	K float64
	B float64
}

// Predict returns k*x + b.
func (m LinearModel) Predict(x int) float64 {
	return m.K*float64(x) + m.B
}
