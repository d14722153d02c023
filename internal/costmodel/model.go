// Package costmodel contains the parametric execution-cost models for the
// benchmarked crypto/hash primitives and the loader that resolves a model
// identifier to a concrete model.
package costmodel

// GasPerNanosecond converts a gas amount into a wall-clock estimate. The
// divisor was calibrated empirically against the reference machine type.
const GasPerNanosecond = 205.41

// CostModel predicts the execution cost of one operation as a function of
// its input-size parameter. Predict must be a pure function of x and the
// model's own parameters; calibration happens at construction time only.
type CostModel interface {
	Predict(x int) float64
}
