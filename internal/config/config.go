package config

import (
	lconfig "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/config"
)

type Config struct {
	DashboardSettingsFile string `env:"DASHBOARD_SETTINGS_FILE" envDefault:""`
}

func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	err := lconfig.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
