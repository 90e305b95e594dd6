// Package workers runs the background jobs of the catalog server.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled or the job
// fails.
type Worker interface {
	Run(ctx context.Context) error
}

// StorageStatusSink receives the outcome of every storage probe.
type StorageStatusSink interface {
	SetStorageUp(up bool)
}
