// Package handler implements the HTTP request dispatcher.
//
// Routes:
// - GET /monitors/isalive: liveness check, always 200 "up"
// - everything else, any method: empty body with the configured status code
//
// Every response carries no-cache headers and passes through a gzip stage.
package handler
