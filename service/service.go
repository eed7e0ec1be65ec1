// Package service runs the analysis pipelines behind each page: a video
// search, the comment analysis of one video, a channel search and the
// comparison of channels. Every call builds its own ledger and fetcher, so
// nothing but the renderer's image store is shared between requests.
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/researchaccelerator-hub/video-insights/chart"
	"github.com/researchaccelerator-hub/video-insights/client"
	"github.com/researchaccelerator-hub/video-insights/common"
	"github.com/researchaccelerator-hub/video-insights/fetch"
	"github.com/researchaccelerator-hub/video-insights/metrics"
	"github.com/researchaccelerator-hub/video-insights/model"
	"github.com/rs/zerolog"
)

// Options tune the pipelines.
type Options struct {
	SearchMaxResults        int64
	ChannelSearchMaxResults int64
	TopN                    int
	TopMetric               string
	ResolveCategories       bool
	RegionCode              string
}

// DefaultOptions returns the options the web front-end uses unless configured otherwise.
func DefaultOptions() Options {
	return Options{
		SearchMaxResults:        10,
		ChannelSearchMaxResults: 5,
		TopN:                    5,
		TopMetric:               model.MetricView,
		ResolveCategories:       true,
		RegionCode:              "US",
	}
}

// Service runs the analysis pipelines against one API client.
type Service struct {
	api      client.YouTubeAPI
	scorer   metrics.Scorer
	renderer chart.Renderer
	logger   zerolog.Logger
	opts     Options
	now      func() time.Time
}

// New creates a service.
func New(api client.YouTubeAPI, scorer metrics.Scorer, renderer chart.Renderer, logger zerolog.Logger, opts Options) *Service {
	return &Service{
		api:      api,
		scorer:   scorer,
		renderer: renderer,
		logger:   logger,
		opts:     opts,
		now:      time.Now,
	}
}

// Quota summarizes the external calls one pipeline run issued.
type Quota struct {
	Calls []fetch.CallCount
	Total int
	Cost  int
}

// Image is a rendered chart.
type Image struct {
	ID    string
	Title string
}

// run is the per-call state of one pipeline.
type run struct {
	logger  zerolog.Logger
	ledger  *fetch.Ledger
	fetcher *fetch.Fetcher
	images  []Image
}

func (s *Service) start(ctx context.Context, pipeline string) *run {
	logger := s.logger.With().Str("pipeline", pipeline).Logger()
	if id := common.RequestID(ctx); id != "" {
		logger = logger.With().Str("request_id", id).Logger()
	}
	ledger := fetch.NewLedger()
	return &run{
		logger:  logger,
		ledger:  ledger,
		fetcher: fetch.NewFetcher(logger, ledger),
	}
}

// finish logs the quota spent by the run and returns it.
func (r *run) finish() Quota {
	r.ledger.Log(r.logger, "Pipeline quota")
	return Quota{
		Calls: r.ledger.Summary(),
		Total: r.ledger.TotalCalls(),
		Cost:  r.ledger.Cost(),
	}
}

// chart renders one image and appends it to the run.
func (r *run) chart(title string, render func(title string) (string, error)) error {
	id, err := render(title)
	if err != nil {
		return fmt.Errorf("render %q: %w", title, err)
	}
	r.images = append(r.images, Image{ID: id, Title: title})
	return nil
}
