// Package config defines environment configuration structs and loaders.
package config

import (
	"github.com/caarlos0/env/v11"
)

// PushEnvConfig holds the metrics-push environment values.
type PushEnvConfig struct {
	GatewayURL    string `env:"PUSHGATEWAY_URL" envDefault:"http://127.0.0.1:9091"`
	Job           string `env:"METRICS_JOB" envDefault:"algebra_bench"`
	MachineType   string `env:"MACHINE_TYPE" envDefault:"gcp.n2-standard-16"`
	CriterionRoot string `env:"CRITERION_ROOT" envDefault:"target/criterion"`
}

// LoadPushEnv parses the metrics-push configuration from the environment.
func LoadPushEnv() (*PushEnvConfig, error) {
	cfg := &PushEnvConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
