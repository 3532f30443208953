// Package http implements the HTTP surface of the webapp dev server.
//
// Requests for /config.js are answered with a script rendered from the
// webapp environment file; every other path is served from the static root.
// Request tracing, access logging and CORS headers are applied to both.
package http
