package server

import (
	"github.com/spf13/afero"

	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/config"
	lconfig "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/config"
)

// DashboardSettings are the frontend defaults baked into the page at
// startup. They can be overridden with a YAML file; anything the file leaves
// out keeps its default.
type DashboardSettings struct {
	PollIntervalMs   int      `json:"poll_interval_ms"`
	DefaultCompareTo string   `json:"default_compare_to"`
	DefaultXAxis     string   `json:"default_x_axis"`
	LossTypes        []string `json:"loss_types"`
}

func defaultDashboardSettings() *DashboardSettings {
	return &DashboardSettings{
		PollIntervalMs:   500,
		DefaultCompareTo: "previous",
		DefaultXAxis:     "iteration",
		LossTypes:        []string{"val_loss", "train_loss"},
	}
}

func NewDashboardSettings(cfg *config.Config) (*DashboardSettings, error) {
	settings := defaultDashboardSettings()
	if cfg.DashboardSettingsFile == "" {
		return settings, nil
	}
	if err := lconfig.LoadYamlConfig(cfg.DashboardSettingsFile, afero.NewOsFs(), settings); err != nil {
		return nil, err
	}
	return settings, nil
}
