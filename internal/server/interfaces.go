package server

import "context"

// Server defines the lifecycle contract for transport servers managed by
// this package.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT and then shuts down.
	RunServer()

	// Run serves until ctx is done or the listener fails, then shuts down.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown()
}
