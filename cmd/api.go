package main

import (
	log "github.com/sirupsen/logrus"

	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/config"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/datasource"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/server"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/app"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/reconciler"
	sbhttpserver "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/serverbase/http/server"
)

type dependencies struct {
	cfg            *config.Config
	app            *app.Instance
	svc            *sbhttpserver.Instance
	apiServer      *server.ApiServer
	servers        []sbhttpserver.Server
	store          datasource.RunStore
	scanReconciler *reconciler.Manager[string]
}

func newDependencies(app *app.Instance, cfg *config.Config, svc *sbhttpserver.Instance,
	apiServer *server.ApiServer, servers []sbhttpserver.Server,
	store datasource.RunStore, scanReconciler *reconciler.Manager[string]) *dependencies {
	return &dependencies{
		cfg:            cfg,
		app:            app,
		svc:            svc,
		apiServer:      apiServer,
		servers:        servers,
		store:          store,
		scanReconciler: scanReconciler,
	}
}

func main() {
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	log.SetReportCaller(true)
	deps, err := InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to initialize app: %v", err)
	}

	if err := deps.svc.Register(sbhttpserver.NewMultiServer(deps.servers)); err != nil {
		panic(err)
	}
	if err := deps.svc.Serve(); err != nil {
		panic(err)
	}

	// Start the log scan reconciler
	deps.scanReconciler.Start()
	defer deps.scanReconciler.Finish()

	// Wait for the server to finish
	deps.app.WaitForFinish()
}
