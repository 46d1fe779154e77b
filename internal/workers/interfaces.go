// Package workers provides the background jobs of the serve command and a
// Workers aggregate that starts and stops them together.
package workers

import "context"

// Worker is a background job.
//
// Run starts the job and returns immediately; the job keeps running until
// ctx is cancelled or Stop is called. Stop blocks until the job has exited
// and is safe to call on a job that never ran.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// Saver flushes buffered settings. settings.Recorder satisfies it.
type Saver interface {
	Save(ctx context.Context) error
}

// Refresher reloads the remote domain list. service.DomainService
// satisfies it.
type Refresher interface {
	Refresh(ctx context.Context) error
}
