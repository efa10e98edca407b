package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseEnv_OverlaysSetVariables(t *testing.T) {
	t.Setenv("LINKFEED_API_URL", "http://example.test/api")
	t.Setenv("LINKFEED_REQUEST_TIMEOUT", "5s")
	t.Setenv("LINKFEED_ONLINE_CHECK_INTERVAL", "1m")
	t.Setenv("LINKFEED_DEBUG", "true")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	require.Equal(t, "http://example.test/api", cfg.APIBaseURL)
	require.Equal(t, 5*time.Second, cfg.RequestTimeout)
	require.Equal(t, time.Minute, cfg.OnlineCheckInterval)
	require.True(t, cfg.Debug)
	// untouched variable keeps its default
	require.Equal(t, "linkfeed.db", cfg.DatabasePath)
}

func TestParseEnv_NoVariables_KeepsDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()
	want := *cfg

	parseEnv(cfg)
	require.Equal(t, want, *cfg)
}
