// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// Start launches the worker's background processing and returns immediately;
// Stop cancels it and blocks until the worker has fully exited.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    // launch background processing
//	}
//
//	func (w *MyWorker) Stop() {
//	    // cancel and wait
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// StaleRefresher re-syncs cached collections whose data has outlived the
// configured staleness threshold.
type StaleRefresher interface {
	RefreshStale(ctx context.Context) error
}
