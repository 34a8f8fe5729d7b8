package feed

import "strings"

// Config holds configuration for the backend product feed.
type Config struct {
	// BaseURL is the root URL of the backend API.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:8081"`
	// APIKey is sent as a bearer token when set.
	APIKey string `mapstructure:"api_key" default:""`
	// Categories is the comma separated list of categories to fetch.
	Categories string `mapstructure:"categories" default:""`
	// TimeoutSeconds bounds each category request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// CategoryList splits Categories into trimmed, non-empty names.
func (c Config) CategoryList() []string {
	var categories []string
	for _, name := range strings.Split(c.Categories, ",") {
		if name = strings.TrimSpace(name); name != "" {
			categories = append(categories, name)
		}
	}
	return categories
}
