// Package workers provides abstractions for managing and running
// background workers in the client application.
// It defines the Worker interface and a Workers aggregate that allows
// running and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run is expected to return quickly, spawning goroutines internally for the
// actual work. Stop blocks until the worker's goroutines have finished.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
