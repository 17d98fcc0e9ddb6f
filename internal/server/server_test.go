package server

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/config"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/datasource"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/diff"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/restapi"
	sbhttpbase "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/serverbase/http/base"
)

func newTestServer(t *testing.T) *ApiServer {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("logs", 0755))

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	writeLog := func(name, contents string, mtime time.Time) {
		require.NoError(t, afero.WriteFile(fs, "logs/"+name, []byte(contents), 0644))
		require.NoError(t, fs.Chtimes("logs/"+name, mtime, mtime))
	}
	sentinel := datasource.SentinelLine
	writeLog("run-a.txt",
		"step:10/100 val_loss:0.5 train_time:120.5ms step_avg:12.1ms\n"+
			sentinel+"\nlr = 0.1\n"+sentinel+"\n",
		base)
	writeLog("run-b.txt",
		"step:20/100 val_loss:0.4 train_time:240.5ms step_avg:nanms\n"+
			sentinel+"\nlr = 0.01\n"+sentinel+"\n",
		base.Add(time.Hour))

	dsCfg := &datasource.Config{LogDir: "logs", LogExtension: ".txt", ScanConcurrency: 2}
	logDir := datasource.NewLogDir(dsCfg, fs)
	engine := diff.NewEngine(logDir)

	server, err := NewApiServer(&config.Config{}, logDir,
		restapi.NewRunsAPI(logDir), restapi.NewDiffAPI(engine), nil, defaultDashboardSettings())
	require.NoError(t, err)
	return server
}

func get(server *ApiServer, handler func(*sbhttpbase.Request), target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler(&sbhttpbase.Request{
		Writer:  recorder,
		Request: httptest.NewRequest("GET", target, nil),
	})
	return recorder
}

func TestHandleIndex(t *testing.T) {
	server := newTestServer(t)
	resp := get(server, server.handleIndex, "/")

	assert.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Header().Get("content-type"), "text/html")
	body := resp.Body.String()
	assert.Contains(t, body, "Run Monitor")
	assert.Contains(t, body, `"poll_interval_ms":500`)
}

func TestHandleData(t *testing.T) {
	server := newTestServer(t)
	resp := get(server, server.handleData, "/data")

	assert.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Header().Get("content-type"), "application/json")

	var payload []map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	require.Len(t, payload, 2)

	// Newest first, and the code snapshot stays server-side.
	assert.Equal(t, "run-b", payload[0]["run_id"])
	assert.Equal(t, "run-a", payload[1]["run_id"])
	assert.NotContains(t, payload[0], "code")
	assert.NotContains(t, payload[0], "mtime")

	samples := payload[1]["data"].([]interface{})
	require.Len(t, samples, 1)
	sample := samples[0].(map[string]interface{})
	assert.Equal(t, float64(10), sample["step"])
	assert.Equal(t, "val_loss", sample["metric_name"])
	assert.Equal(t, 12.1, sample["step_avg"])

	// step_avg:nan serializes as null
	nanSample := payload[0]["data"].([]interface{})[0].(map[string]interface{})
	assert.Nil(t, nanSample["step_avg"])
}

func TestHandleDiff(t *testing.T) {
	server := newTestServer(t)
	resp := get(server, server.handleDiff, "/diff?run_id=run-b&compare_to=previous")

	assert.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Header().Get("content-type"), "text/plain")
	body := resp.Body.String()
	assert.True(t, strings.HasPrefix(body, "Comparing Run run-b to Previous Run\n\n"))
	assert.Contains(t, body, "-lr = 0.1\n")
	assert.Contains(t, body, "+lr = 0.01\n")
}

func TestHandleDiffDefaultsToPrevious(t *testing.T) {
	server := newTestServer(t)
	resp := get(server, server.handleDiff, "/diff?run_id=run-b")

	assert.Equal(t, 200, resp.Code)
	assert.Contains(t, resp.Body.String(), "Previous Run")
}

func TestHandleDiffUnknownRunStillOk(t *testing.T) {
	server := newTestServer(t)
	resp := get(server, server.handleDiff, "/diff?run_id=nope")

	assert.Equal(t, 200, resp.Code)
	assert.Equal(t, "Run ID not found.", resp.Body.String())
}

func TestHandleDiffMissingRunId(t *testing.T) {
	server := newTestServer(t)
	resp := get(server, server.handleDiff, "/diff")

	assert.Equal(t, 400, resp.Code)
}

func TestReady(t *testing.T) {
	server := newTestServer(t)
	assert.NoError(t, server.Ready(context.Background()))
	assert.NoError(t, server.Live(context.Background()))
}

func TestDashboardSettingsFromYaml(t *testing.T) {
	settings := defaultDashboardSettings()
	assert.Equal(t, 500, settings.PollIntervalMs)
	assert.Equal(t, "previous", settings.DefaultCompareTo)

	cfg := &config.Config{}
	loaded, err := NewDashboardSettings(cfg)
	assert.NoError(t, err)
	assert.Equal(t, settings, loaded)
}
