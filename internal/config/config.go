// Package config holds the runtime settings of the picshelf client.
package config

import "time"

// Config holds runtime settings for picshelf.
//
// Fields:
//   - ListingEndpoint: base URL of the image listing endpoint.
//   - ListingPage, ListingLimit: page and limit parameters of the single
//     listing request issued when the gallery is opened.
//   - PageSize: images per grid page.
//   - DatabaseDSN: path of the local SQLite database.
//   - TokenTTL: validity window of issued session tokens.
//   - IdleTimeout: inactivity window before forced logout.
//   - PollInterval: how often the watcher re-checks token validity.
type Config struct {
	ListingEndpoint string
	ListingPage     int
	ListingLimit    int
	PageSize        int
	DatabaseDSN     string
	TokenTTL        time.Duration
	IdleTimeout     time.Duration
	PollInterval    time.Duration
}

// LoadDefaults populates c with the reference behavior's values.
func (c *Config) LoadDefaults() {
	c.ListingEndpoint = "https://picsum.photos/v2/list"
	c.ListingPage = 1
	c.ListingLimit = 200
	c.PageSize = 16
	c.DatabaseDSN = "picshelf.db"
	c.TokenTTL = 10 * time.Minute
	c.IdleTimeout = 2 * time.Minute
	c.PollInterval = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
