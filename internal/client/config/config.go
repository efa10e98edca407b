// Package config holds runtime settings for the LinkFeed CLI and the
// layered loading that populates them: defaults, then a JSON file, then
// environment variables, then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the LinkFeed CLI.
//
// Fields:
//   - APIBaseURL: base URL of the REST backend, including the /api prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DatabasePath: location of the local sqlite database (credential store).
//   - Debug: enables debug-level logging.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	DatabasePath        string
	Debug               bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 15 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
	c.DatabasePath = "linkfeed.db"
	c.Debug = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), the environment, and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
