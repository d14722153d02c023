// Package benchstore reads criterion benchmark results from disk. It is the
// calibration collaborator of the model registry: a bench path like
// target/criterion/ark_bls12_381/g1_proj_add holds a single measurement,
// while a serial bench like target/criterion/hash/SHA2-256 holds one result
// directory per input size.
package benchstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/calibra-labs/gascal/internal/dataset"
)

// ErrMissingMeasurement reports a bench path with no recorded result.
var ErrMissingMeasurement = errors.New("no recorded measurement for bench path")

// Store reads benchmark results below the filesystem roots encoded in the
// bench paths themselves. The zero value is ready to use.
type Store struct{}

type criterionEstimates struct {
	Median struct {
		PointEstimate *float64 `json:"point_estimate"`
	} `json:"median"`
}

// LoadNanos parses the median nanosecond estimate recorded under
// benchPath/new/estimates.json. A missing result file yields
// ErrMissingMeasurement; a corrupt one propagates its parse error.
func (Store) LoadNanos(benchPath string) (float64, error) {
	estimatesPath := filepath.Join(benchPath, "new", "estimates.json")
	raw, err := os.ReadFile(estimatesPath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", ErrMissingMeasurement, benchPath)
		}
		return 0, fmt.Errorf("read %s: %w", estimatesPath, err)
	}

	var est criterionEstimates
	if err := sonic.Unmarshal(raw, &est); err != nil {
		return 0, fmt.Errorf("parse %s: %w", estimatesPath, err)
	}
	if est.Median.PointEstimate == nil {
		return 0, fmt.Errorf("parse %s: missing median.point_estimate", estimatesPath)
	}
	return *est.Median.PointEstimate, nil
}

// LoadDatapoints scans a serial bench directory whose subdirectories are
// named by input size and returns one sample per recorded result, sorted by
// input size. Subdirectories without a recorded result are skipped, the way
// the metrics-push path skips them; a serial bench yielding no samples at
// all is an error.
func (s Store) LoadDatapoints(benchPath string) ([]dataset.Sample, error) {
	entries, err := os.ReadDir(benchPath)
	if err != nil {
		return nil, fmt.Errorf("read serial bench dir: %w", err)
	}

	var samples []dataset.Sample
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		x, err := strconv.Atoi(entry.Name())
		if err != nil {
			continue
		}
		ns, err := s.LoadNanos(filepath.Join(benchPath, entry.Name()))
		if err != nil {
			if errors.Is(err, ErrMissingMeasurement) {
				log.Warn().Str("benchPath", benchPath).Int("x", x).Msg("skipping datapoint with no recorded result")
				continue
			}
			return nil, err
		}
		samples = append(samples, dataset.Sample{X: x, Y: ns})
	}

	if len(samples) == 0 {
		return nil, fmt.Errorf("%w: %s has no readable datapoints", ErrMissingMeasurement, benchPath)
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].X < samples[j].X })
	return samples, nil
}
