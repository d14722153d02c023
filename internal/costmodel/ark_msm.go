package costmodel

import "math"

// ArkMsmModel models a windowed (bucket-method) multi-scalar multiplication
// over an arkworks curve. AdditionCost and DoublingCost are the measured
// nanosecond costs of one projective point addition/doubling.
type ArkMsmModel struct {
	ScalarFieldBitLen int
	AdditionCost      float64
	DoublingCost      float64
}

// Predict estimates the nanosecond cost of an x-term MSM. The window size
// grows sub-linearly in log2(x), approximating the optimal bucket-window
// trade-off; additions cover per-window bucket accumulation and carry-merge,
// doublings cover the per-bit window shifts. Defined for x >= 1.
func (m ArkMsmModel) Predict(x int) float64 {
	windowSize := 3
	if x >= 32 {
		windowSize = int(math.Log2(float64(x))*0.69) + 2
	}
	numWindows := (m.ScalarFieldBitLen + windowSize - 1) / windowSize
	numBuckets := 1 << windowSize

	additions := float64((x + numBuckets + 1) * numWindows)
	doublings := float64(windowSize * numWindows)
	return m.AdditionCost*additions + m.DoublingCost*doublings
}
