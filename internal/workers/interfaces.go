// Package workers provides abstractions for managing and running
// background workers in the daemon.
// It defines the Worker interface, a Workers aggregate that runs and stops
// multiple workers in a unified way, and the concrete sync and tombstone
// cleanup workers.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker's execution; implementations are expected to return
// quickly and do their work on goroutines spawned internally. Stop signals
// the worker to finish and blocks until it has.
type Worker interface {
	Run()
	Stop()
}
