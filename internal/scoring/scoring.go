// Package scoring applies a cost model to a measured dataset and ranks the
// points by how badly the model mis-estimates them.
package scoring

import (
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/calibra-labs/gascal/internal/costmodel"
	"github.com/calibra-labs/gascal/internal/dataset"
)

// ErrZeroCostSample reports a sample whose observed cost is zero, which
// makes the estimation ratio undefined.
var ErrZeroCostSample = errors.New("zero-cost sample: estimation ratio is undefined")

// PointStat is one sample together with the model's prediction for it.
// EstRate = YHat / Y; a rate below 1 means the model underestimates the
// true cost, the safety-relevant failure mode for gas pricing.
type PointStat struct {
	X       int
	Y       float64
	YHat    float64
	EstRate float64
}

func (st PointStat) String() string {
	return fmt.Sprintf("x=%v, y=%v, y_hat=%v, est_rate=%v", st.X, st.Y, st.YHat, st.EstRate)
}

// Score predicts every sample with the given model and returns the per-point
// stats sorted ascending by estimation ratio, so the worst underestimates
// come first. Any sample with Y == 0 fails the whole run; partial results
// are never returned.
func Score(samples []dataset.Sample, model costmodel.CostModel) ([]PointStat, error) {
	stats := make([]PointStat, len(samples))
	for i, sample := range samples {
		if sample.Y == 0 {
			log.Error().Int("index", i).Int("x", sample.X).Msg("dataset contains a zero-cost sample")
			return nil, fmt.Errorf("%w: sample %d (x=%d)", ErrZeroCostSample, i, sample.X)
		}
		yHat := model.Predict(sample.X)
		stats[i] = PointStat{
			X:       sample.X,
			Y:       sample.Y,
			YHat:    yHat,
			EstRate: yHat / sample.Y,
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].EstRate < stats[j].EstRate
	})
	return stats, nil
}
