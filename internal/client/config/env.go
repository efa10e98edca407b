package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig maps environment variables onto optional fields; a nil pointer
// means the variable was not set, so the earlier layer's value survives.
type envConfig struct {
	APIBaseURL          *string        `env:"LINKFEED_API_URL"`
	RequestTimeout      *time.Duration `env:"LINKFEED_REQUEST_TIMEOUT"`
	OnlineCheckInterval *time.Duration `env:"LINKFEED_ONLINE_CHECK_INTERVAL"`
	DatabasePath        *string        `env:"LINKFEED_DB_PATH"`
	Debug               *bool          `env:"LINKFEED_DEBUG"`
}

// parseEnv overlays Config with values from the environment.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != nil {
		cfg.APIBaseURL = *ec.APIBaseURL
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	if ec.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = *ec.OnlineCheckInterval
	}
	if ec.DatabasePath != nil {
		cfg.DatabasePath = *ec.DatabasePath
	}
	if ec.Debug != nil {
		cfg.Debug = *ec.Debug
	}
}
