package restapi

import (
	"context"

	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/datasource"
	lhttp "github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/http"
)

type RunsAPI struct {
	store datasource.RunStore
}

func NewRunsAPI(store datasource.RunStore) *RunsAPI {
	return &RunsAPI{
		store: store,
	}
}

// ListRuns returns every run in the log directory, newest first. Code
// snapshots and file metadata stay server-side; only the fields the dashboard
// charts need are serialized.
func (a *RunsAPI) ListRuns(ctx context.Context) ([]*datasource.Run, *lhttp.HttpError) {
	runs, err := a.store.ListRuns(ctx)
	if err != nil {
		return nil, lhttp.NewInternalError(err.Error())
	}
	return runs, nil
}
