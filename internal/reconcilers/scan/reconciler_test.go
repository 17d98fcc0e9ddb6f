package scan

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.infra.cloudera.com/CAI/TrainRunMonitoring/internal/datasource"
	"github.infra.cloudera.com/CAI/TrainRunMonitoring/pkg/reconciler"
)

type state struct {
	store      *datasource.RunStoreMock
	reconciler *Reconciler
	config     *Config
	queue      *reconciler.ReconcileQueue[string]
}

func newTestState(t *rapid.T) *state {
	config, err := NewConfigFromEnv()
	if err != nil {
		t.Fatalf("failed to create config: %v", err)
		return nil
	}

	store := &datasource.RunStoreMock{
		Runs: rapid.SliceOfNDistinct(datasource.RunGenerator(), 0, 10, func(r *datasource.Run) string { return r.RunId }).Draw(t, "runs"),
	}

	return &state{
		store:      store,
		reconciler: NewReconciler(config, store),
		config:     config,
		queue:      reconciler.NewReconcileQueue[string](),
	}
}

func TestReconcilerResync(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		state := newTestState(rt)

		state.reconciler.Resync(context.TODO(), state.queue)

		// Property: every run is unobserved on the first pass, so all queue up
		assert.Equal(t, len(state.store.Runs), len(state.queue.Pending))
	})
}

func TestReconcilerReconcile(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		state := newTestState(rt)

		r := state.reconciler
		// Moves ids into Pending
		r.Resync(context.TODO(), state.queue)

		maxPop := len(state.queue.Pending)
		if maxPop > 0 {
			// We need more than 0 items or it will block
			items := state.queue.Pop(maxPop)
			r.Reconcile(context.TODO(), items)
		}

		// Property: once observed, an unchanged listing queues nothing
		r.Resync(context.TODO(), state.queue)
		assert.Equal(t, 0, len(state.queue.Pending))
	})
}

func TestReconcilerQueuesUpdatedRun(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := &datasource.RunStoreMock{
		Runs: []*datasource.Run{datasource.NewMockRun("run-a", "lr = 0.1\n", base)},
	}
	config := &Config{Enabled: true, ResyncFrequency: 30 * time.Second, MaxWorkers: 1, RunMaxItems: 32}
	r := NewReconciler(config, store)
	queue := reconciler.NewReconcileQueue[string]()

	r.Resync(context.TODO(), queue)
	r.Reconcile(context.TODO(), queue.Pop(1))

	// A rewrite bumps the mtime and the run queues again.
	store.Runs[0] = datasource.NewMockRun("run-a", "lr = 0.2\n", base.Add(time.Minute))
	r.Resync(context.TODO(), queue)
	assert.Equal(t, 1, len(queue.Pending))
}

func TestReconcilerDisabled(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := &datasource.RunStoreMock{
		Runs: []*datasource.Run{datasource.NewMockRun("run-a", "", base)},
	}
	config := &Config{Enabled: false, ResyncFrequency: 30 * time.Second, MaxWorkers: 1, RunMaxItems: 32}
	r := NewReconciler(config, store)
	queue := reconciler.NewReconcileQueue[string]()

	r.Resync(context.TODO(), queue)
	assert.Equal(t, 0, len(queue.Pending))
}

func TestReconcilerForgetsVanishedRun(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := &datasource.RunStoreMock{
		Runs: []*datasource.Run{datasource.NewMockRun("run-a", "", base)},
	}
	config := &Config{Enabled: true, ResyncFrequency: 30 * time.Second, MaxWorkers: 1, RunMaxItems: 32}
	r := NewReconciler(config, store)
	queue := reconciler.NewReconcileQueue[string]()

	r.Resync(context.TODO(), queue)
	items := queue.Pop(1)
	store.Runs = nil
	r.Reconcile(context.TODO(), items)

	// The run never made it into the observed set, so its return requeues it.
	store.Runs = []*datasource.Run{datasource.NewMockRun("run-a", "", base)}
	r.Resync(context.TODO(), queue)
	assert.Equal(t, 1, len(queue.Pending))
}
