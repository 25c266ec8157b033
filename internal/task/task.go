package task

import (
	"context"
)

// Job is a unit of scheduled background work.
type Job interface {
	// Name returns the job's identifier used in logs.
	Name() string

	// Run executes the job once. Jobs are expected to handle per-item
	// failures internally; the returned error reports a failure of the
	// run as a whole.
	Run(ctx context.Context) error
}
