package tabular

import (
	"testing"
	"time"

	"github.com/researchaccelerator-hub/video-insights/model/youtube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u64(v uint64) *uint64 { return &v }

func TestMapVideos_FullItem(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []youtube.Video{{
		ID: "vid1",
		Snippet: &youtube.VideoSnippet{
			PublishedAt:  "2023-05-15T10:30:45Z",
			ChannelID:    "UC1",
			ChannelTitle: "Channel One",
			Title:        "Hello",
			Description:  "see https://example.com",
			Tags:         []string{"go", "video"},
			CategoryID:   "28",
			ThumbnailURL: "http://img/default.jpg",
		},
		ContentDetails: &youtube.VideoContentDetails{Duration: "PT1H23M9S", Definition: "hd", Caption: "false", LicensedContent: true},
		Status:         &youtube.VideoStatus{PrivacyStatus: "public", Embeddable: true},
		Statistics:     &youtube.VideoStatistics{ViewCount: u64(1000), LikeCount: u64(10), CommentCount: u64(3)},
	}}

	table := MapVideos(items, DefaultCategories(), now)
	require.Equal(t, 1, table.Len())
	rec := table.Row(0)

	assert.Equal(t, "vid1", rec.VideoID)
	assert.Equal(t, time.Date(2023, 5, 15, 10, 30, 45, 0, time.UTC), rec.PublishedAt)
	assert.Equal(t, "Science & Technology", rec.Category)
	assert.Equal(t, int64(4989), rec.DurationSec)
	assert.Equal(t, "PT1H23M9S", rec.Duration)
	assert.True(t, rec.LicensedContent)
	assert.Equal(t, "public", rec.PrivacyStatus)
	assert.Equal(t, int64(1000), rec.ViewCount)
	assert.Equal(t, int64(0), rec.DislikeCount)
	assert.Equal(t, int64(0), rec.FavoriteCount)
	assert.Equal(t, "http://img/default.jpg", rec.ThumbnailDefault)
	assert.Equal(t, now, rec.DateDataCreated)
}

func TestMapVideos_MissingSectionsDefault(t *testing.T) {
	table := MapVideos([]youtube.Video{{ID: "bare"}}, nil, time.Now())
	require.Equal(t, 1, table.Len())
	rec := table.Row(0)

	assert.Equal(t, "bare", rec.VideoID)
	assert.Equal(t, int64(0), rec.DurationSec)
	assert.Equal(t, int64(0), rec.ViewCount)
	assert.Equal(t, int64(0), rec.LikeCount)
	assert.Equal(t, int64(0), rec.CommentCount)
	assert.True(t, rec.PublishedAt.IsZero())
	assert.Equal(t, "", rec.Category)
}

func TestMapVideos_CategoryOnlyWithLookup(t *testing.T) {
	items := []youtube.Video{{ID: "v", Snippet: &youtube.VideoSnippet{CategoryID: "10"}}}

	assert.Equal(t, "", MapVideos(items, nil, time.Now()).Row(0).Category)
	assert.Equal(t, "Music", MapVideos(items, DefaultCategories(), time.Now()).Row(0).Category)
}

func TestMapComments_ThreadsAndReplies(t *testing.T) {
	thread := youtube.CommentThread{
		Kind: youtube.KindCommentThread,
		ID:   "T1",
		Snippet: &youtube.ThreadSnippet{
			CanReply:        true,
			IsPublic:        true,
			TotalReplyCount: 2,
			TopLevelComment: &youtube.Comment{ID: "T1", Snippet: &youtube.CommentSnippet{
				AuthorDisplayName: "alice",
				AuthorChannelID:   "UCalice",
				TextOriginal:      "first!",
				LikeCount:         4,
				PublishedAt:       "2021-01-01T00:00:00Z",
				CanRate:           true,
			}},
		},
	}
	items := []youtube.CommentResource{
		youtube.ThreadResource(thread),
		youtube.ReplyResource(youtube.Comment{Kind: youtube.KindComment, ID: "R1", Snippet: &youtube.CommentSnippet{
			ParentID:     "T1",
			TextOriginal: "second",
			PublishedAt:  "2021-01-02T00:00:00Z",
		}}),
		youtube.ReplyResource(youtube.Comment{Kind: youtube.KindComment, ID: "R2"}),
	}

	table := MapComments(items)
	require.Equal(t, 3, table.Len())

	top := table.Row(0)
	assert.Equal(t, "T1", top.CommentID)
	assert.Nil(t, top.ParentID)
	assert.True(t, top.IsTopLevel())
	assert.Equal(t, "alice", top.AuthorDisplayName)
	assert.Equal(t, "UCalice", top.AuthorChannelID)
	assert.Equal(t, int64(4), top.LikeCount)
	assert.Equal(t, int64(2), top.TotalReplyCount)
	assert.True(t, top.CanReply)
	assert.True(t, top.IsPublic)

	r1 := table.Row(1)
	require.NotNil(t, r1.ParentID)
	assert.Equal(t, "T1", *r1.ParentID)
	assert.Equal(t, int64(0), r1.LikeCount)
	assert.Equal(t, time.Date(2021, 1, 2, 0, 0, 0, 0, time.UTC), r1.PublishedAt)

	r2 := table.Row(2)
	assert.Equal(t, "R2", r2.CommentID)
	assert.Nil(t, r2.ParentID)
	assert.Equal(t, int64(0), r2.LikeCount)
}

func TestMapComments_SkipsThreadWithoutTopLevelComment(t *testing.T) {
	items := []youtube.CommentResource{
		youtube.ThreadResource(youtube.CommentThread{Kind: youtube.KindCommentThread, ID: "T1"}),
		{Kind: youtube.KindComment},
	}

	assert.Equal(t, 0, MapComments(items).Len())
}
