package scoring

import (
	"fmt"
	"strings"
)

// PlotEstRatesTerminal renders the scored points as a horizontal bar chart,
// one bar per point in ranked order. Bar width is the estimation ratio
// scaled between the run's min and max.
func PlotEstRatesTerminal(stats []PointStat, title string) {
	if len(stats) == 0 {
		return
	}

	minRate := stats[0].EstRate
	maxRate := stats[len(stats)-1].EstRate

	fmt.Printf("\n%s (est_rate ascending):\n", title)
	fmt.Println("       x | est_rate | Bar Chart")
	fmt.Println("---------|----------|" + strings.Repeat("-", 50))

	maxBarWidth := 50
	for _, st := range stats {
		var barWidth int
		if maxRate != minRate {
			barWidth = int((st.EstRate - minRate) / (maxRate - minRate) * float64(maxBarWidth))
		} else {
			barWidth = maxBarWidth / 2
		}

		bar := strings.Repeat("█", barWidth)
		if barWidth == 0 {
			bar = "▏"
		}

		fmt.Printf("%8d | %.6f | %s (y=%.1f y_hat=%.1f)\n", st.X, st.EstRate, bar, st.Y, st.YHat)
	}

	fmt.Printf("\nScale: Min=%.6f, Max=%.6f\n", minRate, maxRate)
}
