package costmodel

// Sha256Model is the affine gas schedule for SHA2-256 over an x-byte input.
type Sha256Model struct{}

// Predict estimates the nanosecond cost of hashing x bytes.
func (Sha256Model) Predict(x int) float64 {
	gas := 1_000*x + 60_000
	return float64(gas) / GasPerNanosecond
}
