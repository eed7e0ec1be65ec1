// Package youtube contains typed decodings of the video platform API responses.
//
// Every optional section of a response is a pointer (nil when the API omitted it)
// and every optional scalar decodes to its zero value. Consumers never index into
// untyped maps.
package youtube

// Resource kind tags as reported in the "kind" field of API items.
const (
	KindCommentThread = "youtube#commentThread"
	KindComment       = "youtube#comment"
	KindVideo         = "youtube#video"
	KindChannel       = "youtube#channel"
)

// InlineReplyLimit is the maximum number of replies a comment thread carries inline.
const InlineReplyLimit = 5

// Page is one page of a paged listing. NextPageToken is nil when the response
// had no continuation token.
type Page[T any] struct {
	Items         []T
	NextPageToken *string
}

// HasNext reports whether another page can be requested.
// An empty token is treated like an absent one.
func (p Page[T]) HasNext() bool {
	return p.NextPageToken != nil && *p.NextPageToken != ""
}

// SearchResult is one hit of a search listing.
type SearchResult struct {
	Kind         string // kind of the matched resource, e.g. KindVideo
	VideoID      string
	ChannelID    string
	PlaylistID   string
	Title        string
	Description  string
	ChannelTitle string
	PublishedAt  string
	ThumbnailURL string
	// Statistics is attached after the search, see service.SearchVideos.
	Statistics *VideoStatistics
}

// ResourceID returns the identifier of the matched resource.
func (r SearchResult) ResourceID() string {
	switch r.Kind {
	case KindVideo:
		return r.VideoID
	case KindChannel:
		return r.ChannelID
	}
	return r.PlaylistID
}

// Video is one item of a video listing.
type Video struct {
	ID             string
	Snippet        *VideoSnippet
	ContentDetails *VideoContentDetails
	Status         *VideoStatus
	Statistics     *VideoStatistics
}

type VideoSnippet struct {
	PublishedAt          string
	ChannelID            string
	ChannelTitle         string
	Title                string
	Description          string
	Tags                 []string
	CategoryID           string
	LiveBroadcastContent string
	ThumbnailURL         string // default thumbnail
}

type VideoContentDetails struct {
	Duration        string // ISO-8601 duration, e.g. PT1H23M9S; empty when absent
	Dimension       string
	Definition      string
	Caption         string
	LicensedContent bool
	Projection      string
}

type VideoStatus struct {
	PrivacyStatus       string
	License             string
	Embeddable          bool
	PublicStatsViewable bool
}

// VideoStatistics holds the public counters of a video.
// The API omits hidden counters, those decode to nil.
type VideoStatistics struct {
	ViewCount     *uint64
	LikeCount     *uint64
	DislikeCount  *uint64
	FavoriteCount *uint64
	CommentCount  *uint64
}

// Channel is one item of a channel listing.
type Channel struct {
	ID                string
	Title             string
	Description       string
	ThumbnailURL      string
	UploadsPlaylistID string // empty unless contentDetails was requested
}

// PlaylistItem is one item of a playlist listing.
type PlaylistItem struct {
	VideoID     string
	PublishedAt string
}

// Category is one video category.
type Category struct {
	ID    string
	Title string
}

// Comment is a standalone comment, either fetched through the comment listing
// or carried inline by a thread.
type Comment struct {
	Kind    string
	ID      string
	Snippet *CommentSnippet // nil when only ids were requested
}

type CommentSnippet struct {
	VideoID               string
	AuthorDisplayName     string
	AuthorProfileImageURL string
	AuthorChannelURL      string
	AuthorChannelID       string
	TextDisplay           string
	TextOriginal          string
	ParentID              string // empty for top-level comments
	CanRate               bool
	ViewerRating          string
	LikeCount             int64
	PublishedAt           string
	UpdatedAt             string
}

// CommentThread is a top-level comment with up to InlineReplyLimit of its most recent replies.
type CommentThread struct {
	Kind    string
	ID      string
	Snippet *ThreadSnippet
	// Replies is nil when the response had no replies section.
	Replies *ThreadReplies
}

type ThreadSnippet struct {
	VideoID         string
	TopLevelComment *Comment
	CanReply        bool
	TotalReplyCount int64
	IsPublic        bool
}

type ThreadReplies struct {
	Comments []Comment
}

// TotalReplyCount returns the reply count of the thread, 0 without a snippet.
func (t CommentThread) TotalReplyCount() int64 {
	if t.Snippet == nil {
		return 0
	}
	return t.Snippet.TotalReplyCount
}

// InlineReplies returns the replies carried by the thread, nil when none were sent.
func (t CommentThread) InlineReplies() []Comment {
	if t.Replies == nil {
		return nil
	}
	return t.Replies.Comments
}

// CommentResource is one element of an aggregated comment collection:
// either a thread or a standalone reply, told apart by Kind.
type CommentResource struct {
	Kind    string
	Thread  *CommentThread
	Comment *Comment
}

// ThreadResource wraps a thread.
func ThreadResource(t CommentThread) CommentResource {
	return CommentResource{Kind: KindCommentThread, Thread: &t}
}

// ReplyResource wraps a standalone comment.
func ReplyResource(c Comment) CommentResource {
	return CommentResource{Kind: KindComment, Comment: &c}
}

// ID returns the identifier of the wrapped resource.
func (r CommentResource) ID() string {
	if r.Kind == KindCommentThread && r.Thread != nil {
		return r.Thread.ID
	}
	if r.Comment != nil {
		return r.Comment.ID
	}
	return ""
}
