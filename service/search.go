package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/researchaccelerator-hub/video-insights/client"
	"github.com/researchaccelerator-hub/video-insights/common"
	"github.com/researchaccelerator-hub/video-insights/fetch"
	"github.com/researchaccelerator-hub/video-insights/model/youtube"
)

// VideoSearch is the result of SearchVideos.
type VideoSearch struct {
	Query   string
	Results []youtube.SearchResult
	Quota   Quota
}

// SearchVideos searches videos matching query and attaches the statistics of
// every hit. It fails with ErrDataShapeMismatch when statistics are not
// returned for exactly the hits of the search.
func (s *Service) SearchVideos(ctx context.Context, query string) (*VideoSearch, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("search videos: %w", common.ErrEmptyInput)
	}

	r := s.start(ctx, "search_videos")
	r.logger.Info().Str("query", query).Msg("Searching videos")

	hits, err := s.search(ctx, r, client.SearchRequest{Query: query, Type: "video", MaxResults: s.opts.SearchMaxResults})
	if err != nil {
		return nil, fmt.Errorf("search videos %q: %w", query, err)
	}

	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, h.VideoID)
	}
	videos, err := fetch.FetchChunked(ctx, r.fetcher, fetch.CallVideos, ids, client.MaxIDsPerRequest,
		func(ctx context.Context, chunk []string) ([]youtube.Video, error) {
			return s.api.ListVideos(ctx, chunk, []string{"statistics"})
		})
	if err != nil {
		return nil, fmt.Errorf("statistics of search hits: %w", err)
	}
	if len(videos) != len(hits) {
		return nil, common.ShapeMismatch("statistics for search hits", len(hits), len(videos))
	}

	stats := make(map[string]*youtube.VideoStatistics, len(videos))
	for _, v := range videos {
		stats[v.ID] = v.Statistics
	}
	for i := range hits {
		st, ok := stats[hits[i].VideoID]
		if !ok {
			return nil, fmt.Errorf("%w: no statistics returned for video %s", common.ErrDataShapeMismatch, hits[i].VideoID)
		}
		hits[i].Statistics = st
	}

	r.logger.Info().Int("results", len(hits)).Msg("Video search complete")
	return &VideoSearch{Query: query, Results: hits, Quota: r.finish()}, nil
}

// ChannelQuery holds the channel hits of one user-supplied channel name.
type ChannelQuery struct {
	Query   string
	Results []youtube.SearchResult
}

// ChannelSearch is the result of SearchChannels.
type ChannelSearch struct {
	Queries []ChannelQuery
	Quota   Quota
}

// SearchChannels searches channels for every non-empty name.
func (s *Service) SearchChannels(ctx context.Context, names []string) (*ChannelSearch, error) {
	names = common.NonEmpty(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("search channels: %w", common.ErrEmptyInput)
	}

	r := s.start(ctx, "search_channels")
	out := &ChannelSearch{Queries: make([]ChannelQuery, 0, len(names))}
	for _, name := range names {
		hits, err := s.search(ctx, r, client.SearchRequest{Query: name, Type: "channel", MaxResults: s.opts.ChannelSearchMaxResults})
		if err != nil {
			return nil, fmt.Errorf("search channels %q: %w", name, err)
		}
		r.logger.Debug().Str("query", name).Int("results", len(hits)).Msg("Channel search complete")
		out.Queries = append(out.Queries, ChannelQuery{Query: name, Results: hits})
	}

	out.Quota = r.finish()
	return out, nil
}

// search requests the first page of hits only, continuation tokens are not followed.
func (s *Service) search(ctx context.Context, r *run, req client.SearchRequest) ([]youtube.SearchResult, error) {
	r.ledger.Record(fetch.CallSearch)
	page, err := s.api.Search(ctx, req, "")
	if err != nil {
		return nil, err
	}
	hits := page.Items
	if n := int(req.MaxResults); n > 0 && len(hits) > n {
		hits = hits[:n]
	}
	r.logger.Debug().Str("call", fetch.CallSearch).Int("items", len(hits)).Bool("has_next", page.HasNext()).Msg("Fetched page")
	return hits, nil
}
