package pushmetrics

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calibra-labs/gascal/internal/benchstore"
	"github.com/calibra-labs/gascal/internal/config"
)

func testConfig(gatewayURL, criterionRoot string) *config.PushEnvConfig {
	return &config.PushEnvConfig{
		GatewayURL:    gatewayURL,
		Job:           "some_job",
		MachineType:   "gcp.n2-standard-16",
		CriterionRoot: criterionRoot,
	}
}

func TestNewPusherNilConfig(t *testing.T) {
	_, err := NewPusher(nil)
	require.Error(t, err)
}

func TestOperationName(t *testing.T) {
	p, err := NewPusher(testConfig("http://127.0.0.1:9091", "target/criterion"))
	require.NoError(t, err)

	op, err := p.OperationName(filepath.Join("target", "criterion", "hash", "SHA2-256", "32"))
	require.NoError(t, err)
	assert.Equal(t, "hash.SHA2-256.32", op)

	_, err = p.OperationName("somewhere/else/bench")
	require.Error(t, err)
}

func TestPushNanos(t *testing.T) {
	var gotPath, gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotPath = r.URL.Path
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	p, err := NewPusher(testConfig(ts.URL, "target/criterion"))
	require.NoError(t, err)

	err = p.PushNanos(filepath.Join("target", "criterion", "ark_bls12_381", "g1_proj_add"), 812.5)
	require.NoError(t, err)
	assert.Equal(t, "/metrics/job/some_job/operation/ark_bls12_381.g1_proj_add/machine_type/gcp.n2-standard-16", gotPath)
	assert.Equal(t, "ns_executing 812.5\n", gotBody)
}

func TestPushNanosServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(ts.Close)

	p, err := NewPusher(testConfig(ts.URL, "target/criterion"))
	require.NoError(t, err)

	err = p.PushNanos(filepath.Join("target", "criterion", "hash", "SHA2-256", "0"), 1)
	require.Error(t, err)
}

func TestPushBenchesSkipsMissingResults(t *testing.T) {
	root := t.TempDir()
	withResult := filepath.Join(root, "fr_add")
	withoutResult := filepath.Join(root, "fr_mul")
	require.NoError(t, os.MkdirAll(filepath.Join(withResult, "new"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(withoutResult, "new"), 0o755))
	estimates := `{"median":{"point_estimate":42.5}}`
	require.NoError(t, os.WriteFile(filepath.Join(withResult, "new", "estimates.json"), []byte(estimates), 0o644))

	var pushed []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pushed = append(pushed, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)

	p, err := NewPusher(testConfig(ts.URL, root))
	require.NoError(t, err)

	err = p.PushBenches(benchstore.Store{}, []string{filepath.Join(root, "fr_*")})
	require.NoError(t, err)
	require.Len(t, pushed, 1)
	assert.Equal(t, fmt.Sprintf("/metrics/job/some_job/operation/%s/machine_type/gcp.n2-standard-16", "fr_add"), pushed[0])
}
