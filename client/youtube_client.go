package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/researchaccelerator-hub/video-insights/common"
	"github.com/researchaccelerator-hub/video-insights/model/youtube"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// DefaultCallTimeout bounds every external call when no timeout is configured.
const DefaultCallTimeout = 30 * time.Second

// YouTubeDataClient implements YouTubeAPI on top of the YouTube Data API v3
type YouTubeDataClient struct {
	service     *ytapi.Service
	apiKey      string
	callTimeout time.Duration
}

// NewYouTubeDataClient creates a new YouTube data client.
// callTimeout bounds each individual API call; zero selects DefaultCallTimeout.
func NewYouTubeDataClient(apiKey string, callTimeout time.Duration) (*YouTubeDataClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}
	if callTimeout <= 0 {
		callTimeout = DefaultCallTimeout
	}

	return &YouTubeDataClient{
		apiKey:      apiKey,
		callTimeout: callTimeout,
	}, nil
}

// Connect establishes a connection to the YouTube API.
// Extra options are appended after the API key option. A custom HTTP client
// would drop the API key transport, so calls are bounded through their
// context instead.
func (c *YouTubeDataClient) Connect(ctx context.Context, opts ...option.ClientOption) error {
	log.Info().Msg("Connecting to YouTube API")

	clientOpts := append([]option.ClientOption{option.WithAPIKey(c.apiKey)}, opts...)

	service, err := ytapi.NewService(ctx, clientOpts...)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create YouTube service")
		return fmt.Errorf("failed to create YouTube service: %w", err)
	}

	c.service = service
	log.Info().Msg("Connected to YouTube API successfully")
	return nil
}

// Disconnect releases the YouTube service
func (c *YouTubeDataClient) Disconnect(ctx context.Context) error {
	// No explicit disconnect needed for the YouTube API client
	c.service = nil
	return nil
}

func (c *YouTubeDataClient) ready() error {
	if c.service == nil {
		return fmt.Errorf("YouTube client not connected")
	}
	return nil
}

// callContext derives the bounded context of one API call.
func (c *YouTubeDataClient) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.callTimeout)
}

// wrapError classifies a failed call as an external API failure.
func wrapError(call string, err error) error {
	apiErr := &common.APIError{Call: call, Err: err}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		apiErr.Code = gerr.Code
	}
	log.Error().Err(err).Str("call", call).Int("status", apiErr.Code).Msg("YouTube API call failed")
	return apiErr
}

// Search lists resources matching a query
func (c *YouTubeDataClient) Search(ctx context.Context, req SearchRequest, pageToken string) (youtube.Page[youtube.SearchResult], error) {
	var page youtube.Page[youtube.SearchResult]
	if err := c.ready(); err != nil {
		return page, err
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	call := c.service.Search.List([]string{"snippet"}).
		Fields("items(id,snippet)", "nextPageToken").
		Context(callCtx)
	if req.Query != "" {
		call = call.Q(req.Query)
	}
	if req.ChannelID != "" {
		call = call.ChannelId(req.ChannelID)
	}
	if req.Type != "" {
		call = call.Type(req.Type)
	}
	if req.MaxResults > 0 {
		call = call.MaxResults(req.MaxResults)
	}
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		return page, wrapError("search.list", err)
	}

	page.Items = make([]youtube.SearchResult, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil {
			continue
		}
		page.Items = append(page.Items, decodeSearchResult(item))
	}
	page.NextPageToken = token(response.NextPageToken)
	return page, nil
}

// ListVideos fetches details of a batch of videos
func (c *YouTubeDataClient) ListVideos(ctx context.Context, ids []string, parts []string) ([]youtube.Video, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if len(ids) > MaxIDsPerRequest {
		return nil, fmt.Errorf("videos.list accepts at most %d ids, got %d", MaxIDsPerRequest, len(ids))
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.service.Videos.List(parts).Id(ids...).Context(callCtx).Do()
	if err != nil {
		return nil, wrapError("videos.list", err)
	}

	videos := make([]youtube.Video, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil {
			continue
		}
		videos = append(videos, decodeVideo(item))
	}
	return videos, nil
}

// ListChannels fetches details of a batch of channels
func (c *YouTubeDataClient) ListChannels(ctx context.Context, ids []string, parts []string) ([]youtube.Channel, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	if len(ids) > MaxIDsPerRequest {
		return nil, fmt.Errorf("channels.list accepts at most %d ids, got %d", MaxIDsPerRequest, len(ids))
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.service.Channels.List(parts).Id(ids...).Context(callCtx).Do()
	if err != nil {
		return nil, wrapError("channels.list", err)
	}

	channels := make([]youtube.Channel, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil {
			continue
		}
		channels = append(channels, decodeChannel(item))
	}
	return channels, nil
}

// ListPlaylistItems lists one page of a playlist
func (c *YouTubeDataClient) ListPlaylistItems(ctx context.Context, playlistID string, pageToken string) (youtube.Page[youtube.PlaylistItem], error) {
	var page youtube.Page[youtube.PlaylistItem]
	if err := c.ready(); err != nil {
		return page, err
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	call := c.service.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(MaxIDsPerRequest).
		Context(callCtx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		return page, wrapError("playlistItems.list", err)
	}

	page.Items = make([]youtube.PlaylistItem, 0, len(response.Items))
	for _, item := range response.Items {
		if decoded, ok := decodePlaylistItem(item); ok {
			page.Items = append(page.Items, decoded)
		}
	}
	page.NextPageToken = token(response.NextPageToken)
	return page, nil
}

// ListCommentThreads lists top-level comments with their inline replies
func (c *YouTubeDataClient) ListCommentThreads(ctx context.Context, filter ThreadFilter, pageToken string) (youtube.Page[youtube.CommentThread], error) {
	var page youtube.Page[youtube.CommentThread]
	if err := c.ready(); err != nil {
		return page, err
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	call := c.service.CommentThreads.List([]string{"snippet", "replies"}).
		TextFormat("plainText").
		Context(callCtx)
	switch {
	case filter.VideoID != "":
		call = call.VideoId(filter.VideoID)
	case filter.ChannelID != "":
		call = call.AllThreadsRelatedToChannelId(filter.ChannelID)
	case len(filter.ThreadIDs) > 0:
		call = call.Id(filter.ThreadIDs...)
	default:
		return page, fmt.Errorf("commentThreads.list requires a video, channel or thread filter")
	}
	// maxResults cannot be combined with the id filter
	if filter.MaxResults > 0 && len(filter.ThreadIDs) == 0 {
		call = call.MaxResults(filter.MaxResults)
	}
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		return page, wrapError("commentThreads.list", err)
	}

	page.Items = make([]youtube.CommentThread, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil {
			continue
		}
		page.Items = append(page.Items, decodeThread(item))
	}
	page.NextPageToken = token(response.NextPageToken)
	return page, nil
}

// ListComments lists standalone comments selected by parent or by id
func (c *YouTubeDataClient) ListComments(ctx context.Context, filter CommentFilter, pageToken string) (youtube.Page[youtube.Comment], error) {
	var page youtube.Page[youtube.Comment]
	if err := c.ready(); err != nil {
		return page, err
	}
	if len(filter.IDs) > MaxIDsPerRequest {
		return page, fmt.Errorf("comments.list accepts at most %d ids, got %d", MaxIDsPerRequest, len(filter.IDs))
	}

	parts := filter.Parts
	if len(parts) == 0 {
		parts = []string{"id"}
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	call := c.service.Comments.List(parts).
		TextFormat("plainText").
		Context(callCtx)
	switch {
	case filter.ParentID != "":
		call = call.ParentId(filter.ParentID)
		if filter.MaxResults > 0 {
			call = call.MaxResults(filter.MaxResults)
		}
	case len(filter.IDs) > 0:
		call = call.Id(filter.IDs...)
	default:
		return page, fmt.Errorf("comments.list requires a parent or id filter")
	}
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}

	response, err := call.Do()
	if err != nil {
		return page, wrapError("comments.list", err)
	}

	page.Items = make([]youtube.Comment, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil {
			continue
		}
		page.Items = append(page.Items, decodeComment(item))
	}
	page.NextPageToken = token(response.NextPageToken)
	return page, nil
}

// ListVideoCategories lists the video categories of a region
func (c *YouTubeDataClient) ListVideoCategories(ctx context.Context, regionCode string) ([]youtube.Category, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	callCtx, cancel := c.callContext(ctx)
	defer cancel()

	response, err := c.service.VideoCategories.List([]string{"snippet"}).
		RegionCode(regionCode).
		Context(callCtx).
		Do()
	if err != nil {
		return nil, wrapError("videoCategories.list", err)
	}

	categories := make([]youtube.Category, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil || item.Snippet == nil {
			continue
		}
		categories = append(categories, youtube.Category{ID: item.Id, Title: item.Snippet.Title})
	}
	return categories, nil
}

var _ YouTubeAPI = (*YouTubeDataClient)(nil)
