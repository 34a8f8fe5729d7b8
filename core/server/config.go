package server

import "strings"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// AuthEnabled reports whether requests must carry the API key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}
