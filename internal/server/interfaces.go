package server

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until a stop signal arrives or the listener fails, then
// drains in-flight requests. Shutdown stops the server immediately from
// another goroutine.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
