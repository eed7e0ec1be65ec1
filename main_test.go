package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/researchaccelerator-hub/video-insights/config"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("YOUTUBE_API_KEY", "")
	t.Setenv("VIDEOINSIGHTS_YOUTUBE_API_KEY", "")
	t.Setenv("VIDEOINSIGHTS_LOG_LEVEL", "")
	t.Setenv("VIDEOINSIGHTS_LISTEN_ADDR", "")
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name          string
		file          string
		env           map[string]string
		expectError   bool
		errorContains string
		check         func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "defaults with key from environment",
			env:  map[string]string{"YOUTUBE_API_KEY": "env-key"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "env-key", cfg.YouTubeAPIKey)
				assert.Equal(t, ":3000", cfg.ListenAddr)
				assert.Equal(t, 2*time.Minute, cfg.RequestTimeout)
			},
		},
		{
			name: "file values",
			file: "youtube_api_key: file-key\nlisten_addr: \":8080\"\ntop_n: 3\nrequest_timeout: 45s\n",
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "file-key", cfg.YouTubeAPIKey)
				assert.Equal(t, ":8080", cfg.ListenAddr)
				assert.Equal(t, 3, cfg.TopN)
				assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
			},
		},
		{
			name: "environment overrides file",
			file: "youtube_api_key: file-key\nlisten_addr: \":8080\"\n",
			env:  map[string]string{"VIDEOINSIGHTS_LISTEN_ADDR": ":9090"},
			check: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, ":9090", cfg.ListenAddr)
			},
		},
		{
			name:          "missing key",
			expectError:   true,
			errorContains: "youtube_api_key is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var path string
			if tt.file != "" {
				path = filepath.Join(t.TempDir(), "config.yaml")
				require.NoError(t, os.WriteFile(path, []byte(tt.file), 0o600))
			}

			cfg, err := loadConfig(viper.New(), path)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestServeFlagsReachConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("YOUTUBE_API_KEY", "k")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"serve", "--log-level", "loud"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log_level 'loud'")
}

func TestRootCommandTree(t *testing.T) {
	cmd := newRootCommand()
	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())
	for _, name := range []string{"listen-addr", "log-level", "log-pretty", "rate-limit", "request-timeout"} {
		assert.NotNil(t, serve.Flags().Lookup(name), name)
	}
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestNewLogger(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogLevel = "warn"

	var buf bytes.Buffer
	logger, err := newLogger(cfg, &buf)
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"shown"`)

	cfg.LogPretty = true
	buf.Reset()
	logger, err = newLogger(cfg, &buf)
	require.NoError(t, err)
	logger.Warn().Msg("pretty")
	assert.Contains(t, buf.String(), "pretty")
	assert.NotContains(t, buf.String(), `"message"`)

	cfg.LogLevel = "nope"
	_, err = newLogger(cfg, &buf)
	assert.Error(t, err)
}

func TestOptionsMapping(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.TopN = 7
	cfg.TopMetric = "like"
	cfg.SearchMaxResults = 25
	cfg.ResolveCategories = false
	cfg.RateLimit = 2.5
	cfg.RateBurst = 4
	cfg.RequestTimeout = time.Minute

	so := serviceOptions(cfg)
	assert.Equal(t, 7, so.TopN)
	assert.Equal(t, "like", so.TopMetric)
	assert.Equal(t, int64(25), so.SearchMaxResults)
	assert.Equal(t, int64(5), so.ChannelSearchMaxResults)
	assert.False(t, so.ResolveCategories)
	assert.Equal(t, "US", so.RegionCode)

	srv := serverOptions(cfg)
	assert.Equal(t, time.Minute, srv.RequestTimeout)
	assert.Equal(t, 2.5, srv.RateLimit)
	assert.Equal(t, 4, srv.RateBurst)
}
