package costmodel

// twoPhasedBreakpoint is where the benchmarked MSM implementation switches
// from its small-batch to its large-batch strategy.
const twoPhasedBreakpoint = 190

// TwoPhasedMsmModel is a piecewise-linear MSM cost model with two segments
// fit offline, one on each side of the strategy switch. The segments are
// not required to agree at the breakpoint.
type TwoPhasedMsmModel struct{}

// Predict estimates the nanosecond cost of an x-term MSM.
func (TwoPhasedMsmModel) Predict(x int) float64 {
	if x < twoPhasedBreakpoint {
		return 11108.570175438595*float64(x) + 40427.833333333125
	}
	return 6703.821179361177*float64(x) + 1244411.1577395604
}
