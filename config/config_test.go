package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := DefaultConfig()
	cfg.YouTubeAPIKey = "test-key"
	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ":3000", cfg.ListenAddr)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, int64(10), cfg.SearchMaxResults)
	assert.Equal(t, "view", cfg.TopMetric)
	assert.Error(t, cfg.Validate(), "the API key has no default")
	assert.NoError(t, validConfig().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Config)
		errorContains string
	}{
		{"missing api key", func(c *Config) { c.YouTubeAPIKey = "" }, "youtube_api_key"},
		{"empty listen addr", func(c *Config) { c.ListenAddr = "" }, "listen_addr"},
		{"zero request timeout", func(c *Config) { c.RequestTimeout = 0 }, "request_timeout"},
		{"zero shutdown timeout", func(c *Config) { c.ShutdownTimeout = 0 }, "shutdown_timeout"},
		{"negative api timeout", func(c *Config) { c.APITimeout = -time.Second }, "api_timeout"},
		{"negative rate", func(c *Config) { c.RateLimit = -1 }, "rate_limit"},
		{"no burst", func(c *Config) { c.RateBurst = 0 }, "rate_burst"},
		{"empty image cache", func(c *Config) { c.ImageCacheSize = 0 }, "image_cache_size"},
		{"search too large", func(c *Config) { c.SearchMaxResults = 51 }, "search_max_results"},
		{"channel search zero", func(c *Config) { c.ChannelSearchMaxResults = 0 }, "channel_search_max_results"},
		{"top n zero", func(c *Config) { c.TopN = 0 }, "top_n"},
		{"unknown metric", func(c *Config) { c.TopMetric = "favorite" }, "top_metric"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestValidate_RateLimitDisabled(t *testing.T) {
	cfg := validConfig()
	cfg.RateLimit = 0
	cfg.RateBurst = 0
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromYAML(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
youtube_api_key: yaml-key
listen_addr: ":8080"
api_timeout: 5s
top_n: 3
top_metric: like
resolve_categories: false
`)))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "yaml-key", cfg.YouTubeAPIKey)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.Equal(t, 3, cfg.TopN)
	assert.Equal(t, "like", cfg.TopMetric)
	assert.False(t, cfg.ResolveCategories)
	assert.Equal(t, 2*time.Minute, cfg.RequestTimeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "env-key")
	t.Setenv("VIDEOINSIGHTS_TOP_N", "7")
	t.Setenv("VIDEOINSIGHTS_REQUEST_TIMEOUT", "45s")

	v := viper.New()
	SetDefaults(v)
	require.NoError(t, BindEnv(v))

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.YouTubeAPIKey)
	assert.Equal(t, 7, cfg.TopN)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
}

func TestLoad_PrefixedKeyWins(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "plain")
	t.Setenv("VIDEOINSIGHTS_YOUTUBE_API_KEY", "prefixed")

	v := viper.New()
	SetDefaults(v)
	require.NoError(t, BindEnv(v))

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "prefixed", cfg.YouTubeAPIKey)
}

func TestLoad_Invalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	_, err := Load(v)
	assert.Error(t, err)
}
