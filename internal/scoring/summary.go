package scoring

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// EstRateSummary aggregates the estimation ratios of one scoring run.
type EstRateSummary struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
}

// Summarize computes summary statistics over the estimation ratios of the
// scored points. An empty run yields the zero summary.
func Summarize(stats []PointStat) EstRateSummary {
	if len(stats) == 0 {
		return EstRateSummary{}
	}

	rates := make([]float64, len(stats))
	for i, st := range stats {
		rates[i] = st.EstRate
	}
	sort.Float64s(rates)

	return EstRateSummary{
		Min:    floats.Min(rates),
		Max:    floats.Max(rates),
		Mean:   stat.Mean(rates, nil),
		Median: stat.Quantile(0.5, stat.Empirical, rates, nil),
	}
}
