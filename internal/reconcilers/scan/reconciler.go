package scan

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/datasource"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/app"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/reconciler"
)

// Reconciler watches the log directory for new or rewritten run logs and
// announces them. It only observes: request handling rescans on its own and
// computed diffs are never recomputed, so nothing downstream depends on this
// loop having run.
type Reconciler struct {
	config *Config
	store  datasource.RunStore

	lock     sync.Mutex
	observed map[string]time.Time
}

func NewReconciler(config *Config, store datasource.RunStore) *Reconciler {
	return &Reconciler{
		config:   config,
		store:    store,
		observed: make(map[string]time.Time),
	}
}

func (r *Reconciler) Name() string {
	return "log-scan-reconciler"
}

func (r *Reconciler) Reboot(_ context.Context) {}

func (r *Reconciler) Resync(ctx context.Context, queue *reconciler.ReconcileQueue[string]) {
	if !r.config.Enabled {
		return
	}
	log.Debugln("beginning log scan reconciler resync")

	runs, err := r.store.ListRuns(ctx)
	if err != nil {
		log.Printf("failed to scan log directory: %s", err)
		return
	}

	queued := 0
	r.lock.Lock()
	for _, run := range runs {
		if seen, ok := r.observed[run.RunId]; ok && seen.Equal(run.ModTime()) {
			continue
		}
		queue.Add(run.RunId)
		queued++
	}
	r.lock.Unlock()

	if queued > 0 {
		log.Debugf("queueing %d runs for observation", queued)
	}
	log.Debugln("completing reconciler resync")
}

func (r *Reconciler) Reconcile(ctx context.Context, items []reconciler.ReconcileItem[string]) {
	log.Debugf("reconciling %d runs", len(items))

	runs, err := r.store.ListRuns(ctx)
	if err != nil {
		log.Printf("failed to scan log directory: %s", err)
		for _, item := range items {
			item.Callback(err)
		}
		return
	}

	for _, item := range items {
		index := datasource.FindIndex(runs, item.ID)
		if index < 0 {
			// Vanished between resync and now; it will requeue if it returns.
			r.forget(item.ID)
			log.Printf("run %s disappeared before observation", item.ID)
			item.Callback(nil)
			continue
		}
		run := runs[index]

		r.lock.Lock()
		seen, known := r.observed[run.RunId]
		r.observed[run.RunId] = run.ModTime()
		r.lock.Unlock()

		if !known {
			log.Printf("observed new run %s with %d samples, last written %s", run.RunId, len(run.Samples), run.Timestamp)
		} else if !seen.Equal(run.ModTime()) {
			log.Printf("observed update to run %s, now %d samples, last written %s", run.RunId, len(run.Samples), run.Timestamp)
		}
		item.Callback(nil)
	}
}

func (r *Reconciler) forget(runId string) {
	r.lock.Lock()
	defer r.lock.Unlock()
	delete(r.observed, runId)
}

func NewReconcilerManager(app *app.Instance, cfg *Config, rec *Reconciler) (*reconciler.Manager[string], error) {
	log.Println("log scan reconciler initializing")
	reconcilerConfig, err := reconciler.NewConfig(cfg.ResyncFrequency, cfg.MaxWorkers, cfg.RunMaxItems)
	if err != nil {
		return nil, err
	}
	return reconciler.NewManager[string](app.Context(), reconcilerConfig, rec), nil
}
