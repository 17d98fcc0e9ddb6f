package datasource

import lconfig "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/config"

type Config struct {
	LogDir          string `env:"LOG_DIR" envDefault:"logs"`
	LogExtension    string `env:"LOG_FILE_EXTENSION" envDefault:".txt"`
	ScanConcurrency int    `env:"LOG_SCAN_CONCURRENCY" envDefault:"8"`
}

func NewConfigFromEnv() (*Config, error) {
	var cfg Config
	err := lconfig.Parse(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
