//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/config"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/datasource"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/diff"
	recscan "github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/reconcilers/scan"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/restapi"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/server"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/app"
	interceptors_inflight "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/interceptors/in-flight"
	sbhttpserver "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/serverbase/http/server"
)

// wire up the dependencies.
func InitializeDependencies() (*dependencies, error) {
	wire.Build(config.NewConfigFromEnv, app.NewInstance,
		sbhttpserver.NewConfigFromEnv, sbhttpserver.NewInstance,
		interceptors_inflight.NewConfigFromEnv, interceptors_inflight.NewInterceptor,
		datasource.NewConfigFromEnv, datasource.NewOsLogDir, datasource.NewRunStore,
		diff.NewEngine,
		restapi.NewRunsAPI, restapi.NewDiffAPI,
		server.NewDashboardSettings, server.NewApiServer, server.NewHttpServers,
		recscan.NewConfigFromEnv, recscan.NewReconciler, recscan.NewReconcilerManager,
		newDependencies)
	return &dependencies{}, nil
}
