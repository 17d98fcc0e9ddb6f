package datasource

import (
	"os"

	ltest "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/test"
)

// NewTestingConfig points a Config at a throwaway log directory on the real
// filesystem, removed again on cleanup.
func NewTestingConfig(t ltest.T) (*Config, error) {
	dir, err := os.MkdirTemp("", "runlogs")
	if err != nil {
		return nil, err
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return &Config{
		LogDir:          dir,
		LogExtension:    ".txt",
		ScanConcurrency: 4,
	}, nil
}
