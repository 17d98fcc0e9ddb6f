package scan

import (
	"time"

	lconfig "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/config"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/reconciler"
)

type Config struct {
	Enabled         bool          `env:"LOG_SCAN_RECONCILER_ENABLED" envDefault:"true"`
	ResyncFrequency time.Duration `env:"LOG_SCAN_RECONCILER_RESYNC_FREQUENCY" envDefault:"30s"`
	MaxWorkers      int           `env:"LOG_SCAN_RECONCILER_MAX_WORKERS" envDefault:"1"`
	RunMaxItems     int           `env:"LOG_SCAN_RECONCILER_RUN_MAX_ITEMS" envDefault:"32"`
}

func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	err := lconfig.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	err = validateConfig(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateConfig(config *Config) error {
	if config.ResyncFrequency < 1*time.Second {
		return reconciler.ErrInvalidResyncFrequency
	}
	if config.MaxWorkers < 1 {
		return reconciler.ErrInvalidMaxWorkers
	}
	if config.RunMaxItems < 1 {
		return reconciler.ErrInvalidRunMaxItems
	}
	return nil
}
