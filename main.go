package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/researchaccelerator-hub/video-insights/chart"
	"github.com/researchaccelerator-hub/video-insights/client"
	"github.com/researchaccelerator-hub/video-insights/config"
	"github.com/researchaccelerator-hub/video-insights/metrics"
	"github.com/researchaccelerator-hub/video-insights/server"
	"github.com/researchaccelerator-hub/video-insights/service"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("video-insights failed")
	}
}

// newRootCommand builds the command tree. Flags are bound to the same keys
// the configuration file and the environment use.
func newRootCommand() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:           "video-insights",
		Short:         "Web front-end for video and channel analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path of a YAML configuration file")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg, os.Stderr)
			if err != nil {
				return err
			}
			log.Logger = logger

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg, logger)
		},
	}

	flags := serve.Flags()
	flags.String("listen-addr", "", "address to listen on (default :3000)")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.Bool("log-pretty", false, "human readable console logs")
	flags.Float64("rate-limit", 0, "requests per second per client, 0 disables")
	flags.Duration("request-timeout", 0, "deadline of one page request")
	for key, name := range map[string]string{
		"listen_addr":     "listen-addr",
		"log_level":       "log-level",
		"log_pretty":      "log-pretty",
		"rate_limit":      "rate-limit",
		"request_timeout": "request-timeout",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(serve)
	return root
}

// loadConfig reads defaults, the optional configuration file and the
// environment, in increasing priority. Flags that were set win over all.
func loadConfig(v *viper.Viper, path string) (*config.Config, error) {
	config.SetDefaults(v)
	if err := config.BindEnv(v); err != nil {
		return nil, fmt.Errorf("failed to bind environment: %w", err)
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	return config.Load(v)
}

func newLogger(cfg *config.Config, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level: %w", err)
	}
	if cfg.LogPretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func serviceOptions(cfg *config.Config) service.Options {
	return service.Options{
		SearchMaxResults:        cfg.SearchMaxResults,
		ChannelSearchMaxResults: cfg.ChannelSearchMaxResults,
		TopN:                    cfg.TopN,
		TopMetric:               cfg.TopMetric,
		ResolveCategories:       cfg.ResolveCategories,
		RegionCode:              cfg.RegionCode,
	}
}

func serverOptions(cfg *config.Config) server.Options {
	return server.Options{
		RequestTimeout: cfg.RequestTimeout,
		RateLimit:      cfg.RateLimit,
		RateBurst:      cfg.RateBurst,
	}
}

// runServer wires the client, the analysis pipelines and the HTTP layer,
// then serves until ctx is cancelled.
func runServer(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	api, err := client.NewDefaultClientFactory(cfg.APITimeout).CreateClient(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		return fmt.Errorf("failed to create API client: %w", err)
	}

	store, err := chart.NewImageStore(cfg.ImageCacheSize)
	if err != nil {
		return err
	}

	svc := service.New(api, metrics.NewVaderScorer(), chart.NewPlotRenderer(store), logger, serviceOptions(cfg))
	srv, err := server.New(svc, store, logger, serverOptions(cfg))
	if err != nil {
		return err
	}

	logger.Info().
		Str("addr", cfg.ListenAddr).
		Dur("request_timeout", cfg.RequestTimeout).
		Float64("rate_limit", cfg.RateLimit).
		Msg("Starting video-insights")
	return server.Run(ctx, cfg.ListenAddr, srv.Handler(), cfg.ShutdownTimeout, logger)
}
