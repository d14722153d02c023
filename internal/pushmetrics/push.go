// Package pushmetrics publishes benchmark measurements to a Pushgateway-
// protocol metrics endpoint.
package pushmetrics

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog/log"

	"github.com/calibra-labs/gascal/internal/benchstore"
	"github.com/calibra-labs/gascal/internal/config"
)

// NanosLoader is the measurement source the pusher reads from.
type NanosLoader interface {
	LoadNanos(benchPath string) (float64, error)
}

// Pusher posts one metric sample per benchmark result, labeled by job,
// operation, and machine type.
type Pusher struct {
	client *resty.Client
	cfg    *config.PushEnvConfig
}

// NewPusher creates a Pusher using the provided environment configuration.
func NewPusher(cfg *config.PushEnvConfig) (*Pusher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.Logger = nil

	client := resty.NewWithClient(rc.StandardClient()).
		SetBaseURL(cfg.GatewayURL).
		SetTimeout(15 * time.Second)

	return &Pusher{client: client, cfg: cfg}, nil
}

// OperationName derives the metric operation label from a bench path: the
// path relative to the criterion root, with separators replaced by dots.
func (p *Pusher) OperationName(benchPath string) (string, error) {
	rel, err := filepath.Rel(p.cfg.CriterionRoot, benchPath)
	if err != nil {
		return "", fmt.Errorf("bench path %s not under criterion root %s: %w", benchPath, p.cfg.CriterionRoot, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("bench path %s not under criterion root %s", benchPath, p.cfg.CriterionRoot)
	}
	return strings.ReplaceAll(filepath.ToSlash(rel), "/", "."), nil
}

// PushNanos posts a single ns_executing sample for the given bench path.
func (p *Pusher) PushNanos(benchPath string, ns float64) error {
	operationName, err := p.OperationName(benchPath)
	if err != nil {
		return err
	}

	path := fmt.Sprintf("/metrics/job/%s/operation/%s/machine_type/%s", p.cfg.Job, operationName, p.cfg.MachineType)
	body := fmt.Sprintf("ns_executing %v\n", ns)

	resp, err := p.client.R().
		SetHeader("Content-Type", "text/plain").
		SetBody(body).
		Post(path)
	if err != nil {
		log.Error().Err(err).Str("path", path).Msg("push request failed")
		return fmt.Errorf("post %s: %w", path, err)
	}
	if resp.IsError() {
		log.Error().Int("status", resp.StatusCode()).Str("body", resp.String()).Str("path", path).Msg("push non-2xx")
		return fmt.Errorf("request returned status %d: %s", resp.StatusCode(), resp.String())
	}

	log.Info().Str("operation", operationName).Float64("ns", ns).Msg("pushed benchmark measurement")
	return nil
}

// PushBenches loads and pushes every bench path matching the glob patterns.
// Paths for which the store has no recorded result are skipped, not failed.
func (p *Pusher) PushBenches(store NanosLoader, patterns []string) error {
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("bad bench pattern %q: %w", pattern, err)
		}
		for _, benchPath := range matches {
			ns, err := store.LoadNanos(benchPath)
			if err != nil {
				if errors.Is(err, benchstore.ErrMissingMeasurement) {
					log.Warn().Str("benchPath", benchPath).Msg("no recorded result, skipping push")
					continue
				}
				return err
			}
			if err := p.PushNanos(benchPath, ns); err != nil {
				return err
			}
		}
	}
	return nil
}
