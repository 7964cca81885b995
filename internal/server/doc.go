// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: startup, signal handling (SIGTERM, SIGINT
// and SIGQUIT) and graceful shutdown bounded by the configured shutdown
// timeout.
package server
