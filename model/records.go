// Package model holds the request-scoped tabular records produced by the analysis pipeline.
package model

import "time"

// VideoRecord is one row of the video table.
// Counters are never absent: a hidden counter is recorded as 0.
type VideoRecord struct {
	VideoID              string    `json:"video_id"`
	PublishedAt          time.Time `json:"published_at"`
	ChannelID            string    `json:"channel_id"`
	ChannelTitle         string    `json:"channel_title"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	Tags                 []string  `json:"tags"`
	CategoryID           string    `json:"category_id"`
	Category             string    `json:"category,omitempty"`
	LiveBroadcastContent string    `json:"live_broadcast_content"`
	Duration             string    `json:"duration"`
	DurationSec          int64     `json:"duration_sec"`
	Dimension            string    `json:"dimension"`
	Definition           string    `json:"definition"`
	Caption              string    `json:"caption"`
	LicensedContent      bool      `json:"licensed_content"`
	Projection           string    `json:"projection"`
	PrivacyStatus        string    `json:"privacy_status"`
	License              string    `json:"license"`
	Embeddable           bool      `json:"embeddable"`
	PublicStatsViewable  bool      `json:"public_stats_viewable"`
	ViewCount            int64     `json:"view_count"`
	LikeCount            int64     `json:"like_count"`
	DislikeCount         int64     `json:"dislike_count"`
	FavoriteCount        int64     `json:"favorite_count"`
	CommentCount         int64     `json:"comment_count"`
	ThumbnailDefault     string    `json:"thumbnails_default"`
	DateDataCreated      time.Time `json:"date_data_created"`
}

// CommentRecord is one row of the comment table.
// ParentID is nil for top-level comments.
type CommentRecord struct {
	CommentID             string    `json:"comment_id"`
	AuthorDisplayName     string    `json:"author_display_name"`
	AuthorProfileImageURL string    `json:"author_profile_image_url"`
	AuthorChannelURL      string    `json:"author_channel_url"`
	AuthorChannelID       string    `json:"author_channel_id"`
	TextDisplay           string    `json:"text_display"`
	TextOriginal          string    `json:"text_original"`
	ParentID              *string   `json:"parent_id"`
	CanRate               bool      `json:"can_rate"`
	ViewerRating          string    `json:"viewer_rating"`
	LikeCount             int64     `json:"like_count"`
	PublishedAt           time.Time `json:"published_at"`
	UpdatedAt             time.Time `json:"updated_at"`
	CanReply              bool      `json:"can_reply"`
	TotalReplyCount       int64     `json:"total_reply_count"`
	IsPublic              bool      `json:"is_public"`
}

// IsTopLevel reports whether the comment opened a thread.
func (c CommentRecord) IsTopLevel() bool { return c.ParentID == nil }

// SentimentScore is the lexicon polarity of one text.
// Neg, Neu and Pos are proportions in [0, 1]; Compound is in [-1, 1].
type SentimentScore struct {
	Neg      float64 `json:"neg"`
	Neu      float64 `json:"neu"`
	Pos      float64 `json:"pos"`
	Compound float64 `json:"compound"`
}

// CommentSentiment joins a comment with its sentiment and its running count
// within the table it belongs to.
type CommentSentiment struct {
	CommentRecord
	SentimentScore
	CumSum int `json:"cumsum"`
}

// Metric names accepted by the ranking.
const (
	MetricView    = "view"
	MetricLike    = "like"
	MetricDislike = "dislike"
	MetricComment = "comment"
)

// MetricValue returns the counter named by metric and whether the name is known.
func (v VideoRecord) MetricValue(metric string) (int64, bool) {
	switch metric {
	case MetricView:
		return v.ViewCount, true
	case MetricLike:
		return v.LikeCount, true
	case MetricDislike:
		return v.DislikeCount, true
	case MetricComment:
		return v.CommentCount, true
	}
	return 0, false
}

// RankedVideo is one row of the top videos table.
type RankedVideo struct {
	Rank         int    `json:"rank"`
	ChannelID    string `json:"channel_id"`
	ChannelTitle string `json:"channel_title"`
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	Value        int64  `json:"value"`
}

// TermCount is the frequency of one term in a body of text.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}
