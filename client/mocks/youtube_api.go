// Package mocks provides a testify mock of the video platform API contract.
package mocks

import (
	"context"

	"github.com/researchaccelerator-hub/video-insights/client"
	"github.com/researchaccelerator-hub/video-insights/model/youtube"
	"github.com/stretchr/testify/mock"
)

// YouTubeAPI is a mock implementation of client.YouTubeAPI.
type YouTubeAPI struct {
	mock.Mock
}

var _ client.YouTubeAPI = (*YouTubeAPI)(nil)

func (m *YouTubeAPI) Search(ctx context.Context, req client.SearchRequest, pageToken string) (youtube.Page[youtube.SearchResult], error) {
	args := m.Called(ctx, req, pageToken)
	return args.Get(0).(youtube.Page[youtube.SearchResult]), args.Error(1)
}

func (m *YouTubeAPI) ListVideos(ctx context.Context, ids []string, parts []string) ([]youtube.Video, error) {
	args := m.Called(ctx, ids, parts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]youtube.Video), args.Error(1)
}

func (m *YouTubeAPI) ListChannels(ctx context.Context, ids []string, parts []string) ([]youtube.Channel, error) {
	args := m.Called(ctx, ids, parts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]youtube.Channel), args.Error(1)
}

func (m *YouTubeAPI) ListPlaylistItems(ctx context.Context, playlistID string, pageToken string) (youtube.Page[youtube.PlaylistItem], error) {
	args := m.Called(ctx, playlistID, pageToken)
	return args.Get(0).(youtube.Page[youtube.PlaylistItem]), args.Error(1)
}

func (m *YouTubeAPI) ListCommentThreads(ctx context.Context, filter client.ThreadFilter, pageToken string) (youtube.Page[youtube.CommentThread], error) {
	args := m.Called(ctx, filter, pageToken)
	return args.Get(0).(youtube.Page[youtube.CommentThread]), args.Error(1)
}

func (m *YouTubeAPI) ListComments(ctx context.Context, filter client.CommentFilter, pageToken string) (youtube.Page[youtube.Comment], error) {
	args := m.Called(ctx, filter, pageToken)
	return args.Get(0).(youtube.Page[youtube.Comment]), args.Error(1)
}

func (m *YouTubeAPI) ListVideoCategories(ctx context.Context, regionCode string) ([]youtube.Category, error) {
	args := m.Called(ctx, regionCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]youtube.Category), args.Error(1)
}

// NextToken returns a pointer to tok, for building pages in tests.
func NextToken(tok string) *string { return &tok }
