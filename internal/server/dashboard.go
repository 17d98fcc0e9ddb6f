package server

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/pkg/errors"
)

//go:embed dashboard.html
var dashboardTemplateText string

// renderDashboard bakes the settings into the page once at startup; the
// page itself is static after that.
func renderDashboard(settings *DashboardSettings) ([]byte, error) {
	tmpl, err := template.New("dashboard").Parse(dashboardTemplateText)
	if err != nil {
		return nil, errors.Wrap(err, "parsing dashboard template")
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		Settings *DashboardSettings
	}{Settings: settings}); err != nil {
		return nil, errors.Wrap(err, "rendering dashboard page")
	}
	return buf.Bytes(), nil
}
