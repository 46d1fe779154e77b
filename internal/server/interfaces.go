package server

import "context"

// Server defines the lifecycle contract of the serve command's server.
//
// RunServer blocks until ctx is done or a stop signal arrives and the
// server has shut down. Shutdown stops the server and its workers.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context)

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
