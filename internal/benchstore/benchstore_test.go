package benchstore

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calibra-labs/gascal/internal/dataset"
)

func writeEstimates(t *testing.T, benchPath string, ns float64) {
	t.Helper()
	newDir := filepath.Join(benchPath, "new")
	require.NoError(t, os.MkdirAll(newDir, 0o755))
	content := fmt.Sprintf(`{"mean":{"point_estimate":%v},"median":{"point_estimate":%v}}`, ns+1, ns)
	require.NoError(t, os.WriteFile(filepath.Join(newDir, "estimates.json"), []byte(content), 0o644))
}

func TestLoadNanos(t *testing.T) {
	benchPath := filepath.Join(t.TempDir(), "ark_bls12_381", "g1_proj_add")
	writeEstimates(t, benchPath, 812.375)

	ns, err := Store{}.LoadNanos(benchPath)
	require.NoError(t, err)
	assert.Equal(t, 812.375, ns)
}

func TestLoadNanosMissing(t *testing.T) {
	_, err := Store{}.LoadNanos(filepath.Join(t.TempDir(), "no_such_bench"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingMeasurement)
}

func TestLoadNanosCorrupt(t *testing.T) {
	benchPath := filepath.Join(t.TempDir(), "bench")
	newDir := filepath.Join(benchPath, "new")
	require.NoError(t, os.MkdirAll(newDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(newDir, "estimates.json"), []byte(`{"median":{}}`), 0o644))

	_, err := Store{}.LoadNanos(benchPath)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingMeasurement)
}

func TestLoadDatapoints(t *testing.T) {
	serialBench := filepath.Join(t.TempDir(), "hash", "SHA2-256")
	writeEstimates(t, filepath.Join(serialBench, "100"), 300)
	writeEstimates(t, filepath.Join(serialBench, "0"), 100)
	writeEstimates(t, filepath.Join(serialBench, "32"), 200)
	// no recorded result -> skipped
	require.NoError(t, os.MkdirAll(filepath.Join(serialBench, "64"), 0o755))
	// non-numeric entry -> ignored
	require.NoError(t, os.MkdirAll(filepath.Join(serialBench, "report"), 0o755))

	samples, err := Store{}.LoadDatapoints(serialBench)
	require.NoError(t, err)
	assert.Equal(t, []dataset.Sample{{X: 0, Y: 100}, {X: 32, Y: 200}, {X: 100, Y: 300}}, samples)
}

func TestLoadDatapointsNoneReadable(t *testing.T) {
	serialBench := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(serialBench, "8"), 0o755))

	_, err := Store{}.LoadDatapoints(serialBench)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingMeasurement)
}
