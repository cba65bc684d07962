// Package app provides application wiring and lifecycle management.
//
// It builds the file-backed logger, wires the request dispatcher behind an
// HTTP server and runs that server until the context is cancelled or a
// shutdown signal arrives.
package app
