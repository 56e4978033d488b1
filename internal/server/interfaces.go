package server

import "context"

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer serves requests and blocks until the transport ends or a
	// stop signal arrives.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// transport is one way of carrying MCP messages.
type transport interface {
	// run blocks until ctx is done or the transport ends on its own.
	// A normal end returns nil.
	run(ctx context.Context) error
	shutdown(ctx context.Context) error
	name() string
}
