// Package workers runs the background workers of the syncer under one
// start/stop lifecycle.
package workers

import "context"

// Worker is a background loop. Run must not block: implementations start
// their own goroutines and return. Stop blocks until the worker has exited.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
