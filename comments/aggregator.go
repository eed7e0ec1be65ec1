// Package comments collects every comment of a video with as few content requests as possible.
//
// A thread listing carries each top-level comment together with at most
// youtube.InlineReplyLimit of its most recent replies. Threads with more
// replies than that get their reply ids listed, and only the replies that
// were not already carried inline are fetched in batches.
package comments

import (
	"context"
	"fmt"

	"github.com/researchaccelerator-hub/video-insights/client"
	"github.com/researchaccelerator-hub/video-insights/fetch"
	"github.com/researchaccelerator-hub/video-insights/model/youtube"
	"github.com/rs/zerolog"
)

// ThreadPageSize is the maxResults sent with thread and reply-id listings.
const ThreadPageSize = 100

// Aggregator builds the flat comment collection of a video.
type Aggregator struct {
	api     client.YouTubeAPI
	fetcher *fetch.Fetcher
	logger  zerolog.Logger
}

// NewAggregator creates an aggregator that issues its calls through fetcher.
func NewAggregator(api client.YouTubeAPI, fetcher *fetch.Fetcher, logger zerolog.Logger) *Aggregator {
	return &Aggregator{api: api, fetcher: fetcher, logger: logger}
}

// Result is the aggregated collection with the bookkeeping of how it was built.
type Result struct {
	Items []youtube.CommentResource

	Threads         int // threads listed
	ExpandedThreads int // threads with more replies than carried inline
	MissingReplies  int // replies fetched by id
	InlineReplies   int // replies taken from the thread listing
	Anomalies       int // threads claiming extra replies without a replies section
}

// Aggregate returns the threads of the video, then the replies that had to be
// fetched separately, then the replies carried inline. Every identifier
// appears once.
func (a *Aggregator) Aggregate(ctx context.Context, videoID string) (*Result, error) {
	logger := a.logger.With().Str("video_id", videoID).Logger()
	logger.Info().Msg("Starting to get comment threads")

	threads, err := fetch.FetchAll(ctx, a.fetcher, fetch.CallCommentThreads, 0,
		func(ctx context.Context, pageToken string) (youtube.Page[youtube.CommentThread], error) {
			return a.api.ListCommentThreads(ctx, client.ThreadFilter{VideoID: videoID, MaxResults: ThreadPageSize}, pageToken)
		})
	if err != nil {
		return nil, fmt.Errorf("list comment threads of %s: %w", videoID, err)
	}
	logger.Info().Int("threads", len(threads)).Msg("Done getting comment threads")

	res := &Result{Threads: len(threads)}

	// Replies already carried inline by threads that have more than that.
	known := make(map[string]bool)
	var expanded []string
	for _, t := range threads {
		if t.TotalReplyCount() <= youtube.InlineReplyLimit {
			continue
		}
		expanded = append(expanded, t.ID)
		if t.Replies == nil {
			res.Anomalies++
			logger.Warn().
				Str("thread_id", t.ID).
				Int64("total_reply_count", t.TotalReplyCount()).
				Msg("Thread reports more replies than carried inline but has no replies section")
			continue
		}
		for _, r := range t.Replies.Comments {
			known[r.ID] = true
		}
	}
	res.ExpandedThreads = len(expanded)

	missing, err := a.missingReplyIDs(ctx, logger, expanded, known)
	if err != nil {
		return nil, err
	}

	var fetched []youtube.Comment
	if len(missing) > 0 {
		logger.Info().Int("replies", len(missing)).Msg("Start downloading reply comments that were not downloaded yet")
		fetched, err = fetch.FetchChunked(ctx, a.fetcher, fetch.CallComments, missing, client.MaxIDsPerRequest,
			func(ctx context.Context, ids []string) ([]youtube.Comment, error) {
				page, err := a.api.ListComments(ctx, client.CommentFilter{IDs: ids, Parts: []string{"snippet"}}, "")
				return page.Items, err
			})
		if err != nil {
			return nil, fmt.Errorf("fetch missing replies of %s: %w", videoID, err)
		}
		logger.Info().Int("replies", len(fetched)).Msg("Done downloading reply comments")
	}

	res.Items = make([]youtube.CommentResource, 0, len(threads)+len(fetched))
	seen := make(map[string]bool, len(threads)+len(fetched))
	add := func(r youtube.CommentResource) bool {
		id := r.ID()
		if seen[id] {
			logger.Debug().Str("comment_id", id).Msg("Dropping duplicate comment")
			return false
		}
		seen[id] = true
		res.Items = append(res.Items, r)
		return true
	}

	for _, t := range threads {
		add(youtube.ThreadResource(t))
	}
	for _, c := range fetched {
		if add(youtube.ReplyResource(c)) {
			res.MissingReplies++
		}
	}
	for _, t := range threads {
		if t.TotalReplyCount() == 0 {
			continue
		}
		for _, c := range t.InlineReplies() {
			if add(youtube.ReplyResource(c)) {
				res.InlineReplies++
			}
		}
	}

	logger.Info().
		Int("threads", res.Threads).
		Int("expanded_threads", res.ExpandedThreads).
		Int("missing_replies", res.MissingReplies).
		Int("inline_replies", res.InlineReplies).
		Int("anomalies", res.Anomalies).
		Int("total", len(res.Items)).
		Msg("Comment aggregation complete")

	return res, nil
}

// missingReplyIDs lists every reply id of the expanded threads, one listing per
// thread, and keeps the ones not in known, in listing order.
func (a *Aggregator) missingReplyIDs(ctx context.Context, logger zerolog.Logger, threadIDs []string, known map[string]bool) ([]string, error) {
	if len(threadIDs) == 0 {
		return nil, nil
	}

	logger.Info().Int("threads", len(threadIDs)).Msg("Start getting reply comment ids that were not downloaded yet")
	var missing []string
	queued := make(map[string]bool)
	for _, parentID := range threadIDs {
		replies, err := fetch.FetchAll(ctx, a.fetcher, fetch.CallComments, 0,
			func(ctx context.Context, pageToken string) (youtube.Page[youtube.Comment], error) {
				return a.api.ListComments(ctx, client.CommentFilter{ParentID: parentID, Parts: []string{"id"}, MaxResults: ThreadPageSize}, pageToken)
			})
		if err != nil {
			return nil, fmt.Errorf("list reply ids of thread %s: %w", parentID, err)
		}
		for _, r := range replies {
			if known[r.ID] || queued[r.ID] {
				continue
			}
			queued[r.ID] = true
			missing = append(missing, r.ID)
		}
	}
	logger.Info().Int("missing", len(missing)).Msg("Done getting reply comment ids")
	return missing, nil
}
