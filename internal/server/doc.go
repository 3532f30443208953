// Package server runs the HTTP server of the webapp dev server.
//
// It owns the server lifecycle: startup, stop-signal handling and graceful
// shutdown bounded by the configured timeout.
package server
