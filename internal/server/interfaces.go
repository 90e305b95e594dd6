package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and then shuts down
	// gracefully. It returns the error that stopped the servers, if any.
	RunServer() error

	// Run serves until ctx is cancelled or a server fails.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// Runner is a background job started alongside the transports.
type Runner interface {
	Run(ctx context.Context) error
}
