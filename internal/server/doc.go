// Package server runs the HTTP server of the serve command.
//
// It owns the listener lifecycle: startup, signal handling, and graceful
// shutdown, stopping background workers once the listener has closed.
package server
