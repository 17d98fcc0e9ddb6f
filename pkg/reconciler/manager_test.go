package reconciler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type testReconciler struct {
	lock              sync.Mutex
	rebooted          bool
	resyncs           int
	reconciled        []string
	resyncSignalAfter int
	resyncSignal      chan bool
}

func (t *testReconciler) Name() string {
	return "test"
}

func (t *testReconciler) Reboot(_ context.Context) {
	t.lock.Lock()
	defer t.lock.Unlock()
	t.rebooted = true
}

func (t *testReconciler) Resync(_ context.Context, queue *ReconcileQueue[string]) {
	t.lock.Lock()
	t.resyncs++
	resyncs := t.resyncs
	t.lock.Unlock()

	queue.Add("run-a")
	queue.Add("run-b")

	if t.resyncSignalAfter == resyncs {
		t.resyncSignal <- true
	}
}

func (t *testReconciler) Reconcile(_ context.Context, items []ReconcileItem[string]) {
	t.lock.Lock()
	defer t.lock.Unlock()
	for _, item := range items {
		t.reconciled = append(t.reconciled, item.ID)
		item.Callback(nil)
	}
}

var _ Reconciler[string] = &testReconciler{}

func TestManagerStartFinish(t *testing.T) {
	config, err := NewConfig(10*time.Millisecond, 1, 10)
	if err != nil {
		t.Fatalf("failed to create config: %v", err)
	}

	r := &testReconciler{
		resyncSignal:      make(chan bool),
		resyncSignalAfter: 5,
	}
	manager := NewManager(context.Background(), config, r)
	manager.Start()
	<-r.resyncSignal
	manager.Finish()

	r.lock.Lock()
	defer r.lock.Unlock()
	assert.True(t, r.rebooted)
	assert.GreaterOrEqual(t, r.resyncs, 5)
	assert.Contains(t, r.reconciled, "run-a")
	assert.Contains(t, r.reconciled, "run-b")
}

func TestQueueDeduplicates(t *testing.T) {
	q := NewReconcileQueue[string]()
	q.Add("x")
	q.Add("x")
	q.Add("y")

	items := q.Pop(10)
	assert.Len(t, items, 2)
	for _, item := range items {
		item.Callback(nil)
	}
}
