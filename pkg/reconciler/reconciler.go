package reconciler

import "context"

// Reconciler is a periodic worker: Resync enumerates work into the queue,
// Reconcile drains batches of it.
type Reconciler[T Key] interface {
	Name() string
	Reboot(ctx context.Context)
	Resync(ctx context.Context, queue *ReconcileQueue[T])
	Reconcile(ctx context.Context, items []ReconcileItem[T])
}
