package service

import (
	"context"
	"fmt"

	"github.com/researchaccelerator-hub/video-insights/chart"
	"github.com/researchaccelerator-hub/video-insights/client"
	"github.com/researchaccelerator-hub/video-insights/common"
	"github.com/researchaccelerator-hub/video-insights/fetch"
	"github.com/researchaccelerator-hub/video-insights/metrics"
	"github.com/researchaccelerator-hub/video-insights/model"
	"github.com/researchaccelerator-hub/video-insights/model/youtube"
	"github.com/researchaccelerator-hub/video-insights/tabular"
)

var videoParts = []string{"snippet", "contentDetails", "statistics", "status"}

// ChannelComparison is the result of CompareChannels.
type ChannelComparison struct {
	Channels []youtube.Channel // in request order, unknown ids dropped
	Videos   model.Table[model.VideoRecord]
	Metric   string
	Top      []model.RankedVideo
	Images   []Image
	Quota    Quota
}

// CompareChannels loads every uploaded video of the channels and renders the
// comparison charts and the top videos table. Values that are not channel ids
// are ignored; ErrEmptyInput is returned when none remain.
func (s *Service) CompareChannels(ctx context.Context, channelIDs []string) (*ChannelComparison, error) {
	var ids []string
	seen := make(map[string]bool)
	for _, id := range common.NonEmpty(channelIDs) {
		if common.IsChannelID(id) && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("compare channels: %w", common.ErrEmptyInput)
	}

	r := s.start(ctx, "compare_channels")
	r.logger.Info().Strs("channel_ids", ids).Msg("Comparing channels")

	channels, err := s.channels(ctx, r, ids)
	if err != nil {
		return nil, err
	}
	if len(channels) == 0 {
		return nil, fmt.Errorf("compare channels: none of %d ids exist: %w", len(ids), common.ErrEmptyInput)
	}

	var videoIDs []string
	for _, ch := range channels {
		if ch.UploadsPlaylistID == "" {
			r.logger.Warn().Str("channel_id", ch.ID).Msg("Channel has no uploads playlist")
			continue
		}
		items, err := fetch.FetchAll(ctx, r.fetcher, fetch.CallPlaylistItems, 0,
			func(ctx context.Context, pageToken string) (youtube.Page[youtube.PlaylistItem], error) {
				return s.api.ListPlaylistItems(ctx, ch.UploadsPlaylistID, pageToken)
			})
		if err != nil {
			return nil, fmt.Errorf("uploads of channel %s: %w", ch.ID, err)
		}
		r.logger.Info().Str("channel_id", ch.ID).Int("videos", len(items)).Msg("Listed channel uploads")
		for _, it := range items {
			videoIDs = append(videoIDs, it.VideoID)
		}
	}

	items, err := fetch.FetchChunked(ctx, r.fetcher, fetch.CallVideos, videoIDs, client.MaxIDsPerRequest,
		func(ctx context.Context, chunk []string) ([]youtube.Video, error) {
			return s.api.ListVideos(ctx, chunk, videoParts)
		})
	if err != nil {
		return nil, fmt.Errorf("video details: %w", err)
	}

	categories, err := s.categories(ctx, r)
	if err != nil {
		return nil, err
	}
	videos := tabular.MapVideos(items, categories, s.now())

	top, err := metrics.TopVideos(videos, s.opts.TopMetric, s.opts.TopN)
	if err != nil {
		return nil, err
	}

	if err := s.channelCharts(r, channels, videos); err != nil {
		return nil, err
	}

	r.logger.Info().Int("videos", videos.Len()).Int("images", len(r.images)).Msg("Channel comparison complete")
	return &ChannelComparison{
		Channels: channels,
		Videos:   videos,
		Metric:   s.opts.TopMetric,
		Top:      top,
		Images:   r.images,
		Quota:    r.finish(),
	}, nil
}

// channels resolves titles and uploads playlists, keeping request order.
func (s *Service) channels(ctx context.Context, r *run, ids []string) ([]youtube.Channel, error) {
	found, err := fetch.FetchChunked(ctx, r.fetcher, fetch.CallChannels, ids, client.MaxIDsPerRequest,
		func(ctx context.Context, chunk []string) ([]youtube.Channel, error) {
			return s.api.ListChannels(ctx, chunk, []string{"snippet", "contentDetails"})
		})
	if err != nil {
		return nil, fmt.Errorf("channel details: %w", err)
	}

	byID := make(map[string]youtube.Channel, len(found))
	for _, ch := range found {
		byID[ch.ID] = ch
	}
	channels := make([]youtube.Channel, 0, len(ids))
	for _, id := range ids {
		ch, ok := byID[id]
		if !ok {
			r.logger.Warn().Str("channel_id", id).Msg("Channel not found")
			continue
		}
		channels = append(channels, ch)
	}
	return channels, nil
}

// categories returns the category table used to name video categories, the
// static one overlaid with the live listing when enabled.
func (s *Service) categories(ctx context.Context, r *run) (*tabular.Categories, error) {
	if !s.opts.ResolveCategories {
		return tabular.DefaultCategories(), nil
	}
	r.ledger.Record(fetch.CallVideoCategories)
	live, err := s.api.ListVideoCategories(ctx, s.opts.RegionCode)
	if err != nil {
		return nil, fmt.Errorf("video categories: %w", err)
	}
	if len(live) == 0 {
		return tabular.DefaultCategories(), nil
	}
	return tabular.WithLive(live), nil
}

func (s *Service) channelCharts(r *run, channels []youtube.Channel, videos model.Table[model.VideoRecord]) error {
	var bars []chart.Bar
	for _, c := range metrics.VideoCounts(videos) {
		bars = append(bars, chart.Bar{Label: c.ChannelTitle, Value: float64(c.Count)})
	}
	err := r.chart("Video Counts per Channel", func(t string) (string, error) {
		return s.renderer.Bars(t, "Channel Name", "Video Count", bars)
	})
	if err != nil {
		return err
	}

	links := metrics.LinkCounts(videos)
	names := make([]string, len(links))
	with := chart.BarSeries{Label: "Clickable Link", Values: make([]float64, len(links))}
	without := chart.BarSeries{Label: "No clickable Link", Values: make([]float64, len(links))}
	for i, l := range links {
		names[i] = l.ChannelTitle
		with.Values[i] = float64(l.WithLink)
		without.Values[i] = float64(l.WithoutLink)
	}
	err = r.chart("Links in Video Descriptions", func(t string) (string, error) {
		return s.renderer.GroupedBars(t, "Channel Name", "Video Count", names, []chart.BarSeries{with, without})
	})
	if err != nil {
		return err
	}

	for _, ch := range channels {
		h := metrics.DurationMinutes(videos, ch.ID)
		r.logger.Debug().
			Str("channel_id", ch.ID).
			Int("videos", len(h.Minutes)).
			Int("outliers", h.Dropped).
			Float64("cutoff_sec", h.Cutoff).
			Msg("Duration histogram")
		err := r.chart(fmt.Sprintf("Video Counts of Durations for %q", ch.Title), func(t string) (string, error) {
			return s.renderer.Histogram(t, "Video Duration in Minutes", "Video Count", h.Minutes, h.Bins)
		})
		if err != nil {
			return err
		}

		tags := metrics.TopTerms(metrics.TagTerms(videos.Filter(func(v model.VideoRecord) bool {
			return v.ChannelID == ch.ID
		})), metrics.MaxCloudTerms)
		err = r.chart(fmt.Sprintf("Wordcloud for %q", ch.Title), func(t string) (string, error) {
			return s.renderer.TermCloud(t, tags)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
