package server

import "context"

// Server is a transport server owned by the application lifecycle.
type Server interface {
	// RunServer serves requests and blocks until Shutdown is called or the
	// listener fails.
	RunServer() error

	// Shutdown stops accepting requests and waits for in-flight ones until
	// ctx expires.
	Shutdown(ctx context.Context) error
}
