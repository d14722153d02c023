package costmodel

import "math/bits"

// NonLinearMsmModel is a fixed closed-form MSM gas model. The integer
// division by floor(log2(x+1)) amortizes the shared setup cost across
// larger batches, giving sub-linear growth per term.
type NonLinearMsmModel struct{}

// Predict estimates the nanosecond cost of an x-term MSM. Defined for x >= 1.
func (NonLinearMsmModel) Predict(x int) float64 {
	gas := 9_420_000*x/log2Floor(x+1) + 6_000*x
	return float64(gas) / GasPerNanosecond
}

func log2Floor(n int) int {
	return bits.Len(uint(n)) - 1
}
