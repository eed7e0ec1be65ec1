package client

import (
	"context"

	"github.com/researchaccelerator-hub/video-insights/model/youtube"
)

// MaxIDsPerRequest is the largest identifier batch a single list call accepts.
const MaxIDsPerRequest = 50

// SearchRequest filters a search listing.
type SearchRequest struct {
	Query      string
	ChannelID  string
	Type       string // "video", "channel" or "playlist"; empty searches all
	MaxResults int64
}

// ThreadFilter selects comment threads. Exactly one of the identifiers must be set.
type ThreadFilter struct {
	VideoID    string
	ChannelID  string // all threads related to the channel
	ThreadIDs  []string
	MaxResults int64
}

// CommentFilter selects standalone comments. Exactly one of ParentID and IDs must be set.
type CommentFilter struct {
	ParentID   string
	IDs        []string
	Parts      []string // e.g. {"id"} or {"snippet"}
	MaxResults int64
}

// YouTubeAPI is the contract of the external video platform API the analysis depends on.
// An empty pageToken requests the first page.
type YouTubeAPI interface {
	// Search lists videos, channels or playlists matching a query
	Search(ctx context.Context, req SearchRequest, pageToken string) (youtube.Page[youtube.SearchResult], error)

	// ListVideos fetches details of at most MaxIDsPerRequest videos
	ListVideos(ctx context.Context, ids []string, parts []string) ([]youtube.Video, error)

	// ListChannels fetches details of at most MaxIDsPerRequest channels
	ListChannels(ctx context.Context, ids []string, parts []string) ([]youtube.Channel, error)

	// ListPlaylistItems lists one page of a playlist
	ListPlaylistItems(ctx context.Context, playlistID string, pageToken string) (youtube.Page[youtube.PlaylistItem], error)

	// ListCommentThreads lists top-level comments with their inline replies
	ListCommentThreads(ctx context.Context, filter ThreadFilter, pageToken string) (youtube.Page[youtube.CommentThread], error)

	// ListComments lists standalone comments, usually replies
	ListComments(ctx context.Context, filter CommentFilter, pageToken string) (youtube.Page[youtube.Comment], error)

	// ListVideoCategories lists the categories assignable in a region
	ListVideoCategories(ctx context.Context, regionCode string) ([]youtube.Category, error)
}
