package reconcile

import "time"

// Config holds configuration for reconciliation runs.
type Config struct {
	// IgnoreStock disables propagation of stock-derived fields for matched items.
	IgnoreStock bool `mapstructure:"ignore_stock" default:"false"`
	// DefaultBrand is assigned to items created from the feed.
	DefaultBrand string `mapstructure:"default_brand" default:"N/A"`
	// PlanTTLSeconds is how long a plan stays available for apply.
	PlanTTLSeconds int `mapstructure:"plan_ttl_seconds" default:"900"`
}

// Options returns the engine options described by the configuration.
func (c Config) Options() Options {
	return Options{IgnoreStock: c.IgnoreStock, DefaultBrand: c.DefaultBrand}
}

// PlanTTL returns the plan TTL as a duration.
func (c Config) PlanTTL() time.Duration {
	return time.Duration(c.PlanTTLSeconds) * time.Second
}
