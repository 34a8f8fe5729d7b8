// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure embedded by core/config: the HTTP port and the
// API key protecting every route.
package server
