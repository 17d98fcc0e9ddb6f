package server

import (
	"context"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/config"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/datasource"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/restapi"
	interceptors_inflight "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/interceptors/in-flight"
	sbhttp "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/serverbase/http"
	sbhttpbase "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/serverbase/http/base"
	sbhttpserver "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/serverbase/http/server"
)

type ApiServer struct {
	cfg     *config.Config
	logDir  *datasource.LogDir
	runsApi *restapi.RunsAPI
	diffApi *restapi.DiffAPI
	limiter *interceptors_inflight.Interceptor
	page    []byte
}

func NewApiServer(cfg *config.Config, logDir *datasource.LogDir, runsApi *restapi.RunsAPI,
	diffApi *restapi.DiffAPI, limiter *interceptors_inflight.Interceptor,
	settings *DashboardSettings) (*ApiServer, error) {
	page, err := renderDashboard(settings)
	if err != nil {
		return nil, err
	}
	return &ApiServer{
		cfg:     cfg,
		logDir:  logDir,
		runsApi: runsApi,
		diffApi: diffApi,
		limiter: limiter,
		page:    page,
	}, nil
}

func NewHttpServers(apiServer *ApiServer) []sbhttpserver.Server {
	return []sbhttpserver.Server{
		apiServer,
	}
}

// Ready fails if we cannot stat the log directory in a reasonable time
func (s *ApiServer) Ready(ctx context.Context) error {
	if err := s.logDir.Ping(ctx); err != nil {
		return err
	}
	return nil
}

// Live doesn't do any check. Just answering the request is enough evidence we're alive
func (s *ApiServer) Live(ctx context.Context) error {
	return nil
}

func (s *ApiServer) Shutdown() error {
	return nil
}

func (s *ApiServer) GetHandlers() []sbhttpserver.HandleDescription {
	middleware := sbhttpserver.GetBaseInterceptors(sbhttpserver.BaseInterceptorsConfig{}, s.limiter)
	return []sbhttpserver.HandleDescription{
		{
			Path:    "/",
			Method:  "GET",
			Handler: s.handleIndex,
		},
		{
			Path:       "/data",
			Method:     "GET",
			Handler:    s.handleData,
			Middleware: middleware,
		},
		{
			Path:       "/diff",
			Method:     "GET",
			Handler:    s.handleDiff,
			Middleware: middleware,
		},
	}
}

func (s *ApiServer) handleIndex(request *sbhttpbase.Request) {
	request.Writer.Header().Set("content-type", "text/html; charset=utf-8")
	request.Writer.WriteHeader(http.StatusOK)
	if _, err := request.Writer.Write(s.page); err != nil {
		log.Printf("failed to write dashboard page: %s", err)
	}
}

func (s *ApiServer) handleData(request *sbhttpbase.Request) {
	runs, herr := s.runsApi.ListRuns(request.Request.Context())
	if herr != nil {
		sbhttp.ReturnHttpError(request.Writer, herr)
		return
	}
	if err := sbhttp.WriteJson(request.Writer, http.StatusOK, runs); err != nil {
		log.Printf("failed to serialize run listing: %s", err)
	}
}

func (s *ApiServer) handleDiff(request *sbhttpbase.Request) {
	params, herr := restapi.DecodeDiffParams(request.Request.URL.Query())
	if herr != nil {
		sbhttp.ReturnHttpError(request.Writer, herr)
		return
	}
	text, herr := s.diffApi.GetDiff(request.Request.Context(), params)
	if herr != nil {
		sbhttp.ReturnHttpError(request.Writer, herr)
		return
	}
	if err := sbhttp.WriteText(request.Writer, http.StatusOK, text); err != nil {
		log.Printf("failed to write diff response: %s", err)
	}
}
