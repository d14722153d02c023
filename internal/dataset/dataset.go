// Package dataset loads measured (input size, observed cost) sample files.
package dataset

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
)

// Sample pairs an input-size parameter with its observed cost in
// nanoseconds (or gas). The i-th X always pairs with the i-th Y.
type Sample struct {
	X int
	Y float64
}

// ErrMalformedDataset reports a dataset entry that is not a 2-element
// numeric pair.
var ErrMalformedDataset = errors.New("malformed dataset")

// Load reads a dataset file: a JSON array of [x, y] pairs. Files with a
// .zst suffix are decompressed transparently. Y values are not validated
// here; strict positivity is a precondition of scoring, not of loading.
func Load(path string) ([]Sample, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset file: %w", err)
	}

	if strings.HasSuffix(path, ".zst") {
		r, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: failed to create reader: %w", err)
		}
		defer r.Close()

		raw, err = r.DecodeAll(raw, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd: failed to decompress dataset: %w", err)
		}
	}

	var pairs [][]float64
	if err := sonic.Unmarshal(raw, &pairs); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedDataset, path, err)
	}

	samples := make([]Sample, len(pairs))
	for i, pair := range pairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: entry %d has %d elements, want 2", ErrMalformedDataset, i, len(pair))
		}
		if pair[0] != math.Trunc(pair[0]) {
			return nil, fmt.Errorf("%w: entry %d has non-integer x %v", ErrMalformedDataset, i, pair[0])
		}
		samples[i] = Sample{X: int(pair[0]), Y: pair[1]}
	}

	log.Debug().Int("samples", len(samples)).Str("path", path).Msg("loaded dataset")
	return samples, nil
}
