// Package config provides the configuration of the web front-end
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/researchaccelerator-hub/video-insights/model"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "VIDEOINSIGHTS"

// Config holds the settings of the server and the analysis pipelines
type Config struct {
	// Server configuration
	ListenAddr      string        `mapstructure:"listen_addr" yaml:"listen_addr" json:"listen_addr"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout" yaml:"request_timeout" json:"request_timeout"`   // Deadline of one page request
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"` // Grace period for in-flight requests
	RateLimit       float64       `mapstructure:"rate_limit" yaml:"rate_limit" json:"rate_limit"`                   // Requests per second per client, 0 disables
	RateBurst       int           `mapstructure:"rate_burst" yaml:"rate_burst" json:"rate_burst"`
	ImageCacheSize  int           `mapstructure:"image_cache_size" yaml:"image_cache_size" json:"image_cache_size"` // Rendered charts kept in memory

	// External API configuration
	YouTubeAPIKey string        `mapstructure:"youtube_api_key" yaml:"youtube_api_key" json:"-"`
	APITimeout    time.Duration `mapstructure:"api_timeout" yaml:"api_timeout" json:"api_timeout"` // Bound of each external call

	// Analysis configuration
	SearchMaxResults        int64  `mapstructure:"search_max_results" yaml:"search_max_results" json:"search_max_results"`
	ChannelSearchMaxResults int64  `mapstructure:"channel_search_max_results" yaml:"channel_search_max_results" json:"channel_search_max_results"`
	TopN                    int    `mapstructure:"top_n" yaml:"top_n" json:"top_n"`
	TopMetric               string `mapstructure:"top_metric" yaml:"top_metric" json:"top_metric"` // view, like, dislike or comment
	ResolveCategories       bool   `mapstructure:"resolve_categories" yaml:"resolve_categories" json:"resolve_categories"`
	RegionCode              string `mapstructure:"region_code" yaml:"region_code" json:"region_code"`

	// Logging configuration
	LogLevel  string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	LogPretty bool   `mapstructure:"log_pretty" yaml:"log_pretty" json:"log_pretty"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:              ":3000",
		RequestTimeout:          2 * time.Minute,
		ShutdownTimeout:         10 * time.Second,
		RateLimit:               5,
		RateBurst:               10,
		ImageCacheSize:          256,
		APITimeout:              30 * time.Second,
		SearchMaxResults:        10,
		ChannelSearchMaxResults: 5,
		TopN:                    5,
		TopMetric:               model.MetricView,
		ResolveCategories:       true,
		RegionCode:              "US",
		LogLevel:                "info",
	}
}

// SetDefaults registers the defaults with v so that every key can also be
// set through the environment.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("listen_addr", d.ListenAddr)
	v.SetDefault("request_timeout", d.RequestTimeout)
	v.SetDefault("shutdown_timeout", d.ShutdownTimeout)
	v.SetDefault("rate_limit", d.RateLimit)
	v.SetDefault("rate_burst", d.RateBurst)
	v.SetDefault("image_cache_size", d.ImageCacheSize)
	v.SetDefault("youtube_api_key", d.YouTubeAPIKey)
	v.SetDefault("api_timeout", d.APITimeout)
	v.SetDefault("search_max_results", d.SearchMaxResults)
	v.SetDefault("channel_search_max_results", d.ChannelSearchMaxResults)
	v.SetDefault("top_n", d.TopN)
	v.SetDefault("top_metric", d.TopMetric)
	v.SetDefault("resolve_categories", d.ResolveCategories)
	v.SetDefault("region_code", d.RegionCode)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_pretty", d.LogPretty)
}

// BindEnv reads VIDEOINSIGHTS_<KEY> variables. The API key is also read from YOUTUBE_API_KEY.
func BindEnv(v *viper.Viper) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindEnv("youtube_api_key", EnvPrefix+"_YOUTUBE_API_KEY", "YOUTUBE_API_KEY")
}

// Load decodes the configuration held by v and validates it
func Load(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("youtube_api_key is required (set YOUTUBE_API_KEY)")
	}

	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr cannot be empty")
	}

	// Validate time durations
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive")
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive")
	}

	if c.APITimeout <= 0 {
		return fmt.Errorf("api_timeout must be positive")
	}

	// Validate numeric values
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit cannot be negative")
	}

	if c.RateLimit > 0 && c.RateBurst < 1 {
		return fmt.Errorf("rate_burst must be at least 1 when rate limiting is enabled")
	}

	if c.ImageCacheSize < 1 {
		return fmt.Errorf("image_cache_size must be at least 1")
	}

	if c.SearchMaxResults < 1 || c.SearchMaxResults > 50 {
		return fmt.Errorf("search_max_results must be between 1 and 50")
	}

	if c.ChannelSearchMaxResults < 1 || c.ChannelSearchMaxResults > 50 {
		return fmt.Errorf("channel_search_max_results must be between 1 and 50")
	}

	if c.TopN < 1 {
		return fmt.Errorf("top_n must be at least 1")
	}

	if _, ok := (model.VideoRecord{}).MetricValue(c.TopMetric); !ok {
		return fmt.Errorf("invalid top_metric '%s', must be one of: view, like, dislike, comment", c.TopMetric)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level '%s': %w", c.LogLevel, err)
	}

	return nil
}
