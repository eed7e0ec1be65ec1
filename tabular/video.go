package tabular

import (
	"time"

	"github.com/researchaccelerator-hub/video-insights/model"
	"github.com/researchaccelerator-hub/video-insights/model/youtube"
)

// MapVideos projects video items into a video table. Missing sections leave
// their columns at the zero value and hidden counters become 0. Category
// names are resolved only when categories is non-nil. now stamps every row's
// DateDataCreated.
func MapVideos(items []youtube.Video, categories *Categories, now time.Time) model.Table[model.VideoRecord] {
	b := model.NewBuilder[model.VideoRecord](len(items))
	for _, item := range items {
		b.Add(mapVideo(item, categories, now.UTC()))
	}
	return b.Build()
}

func mapVideo(item youtube.Video, categories *Categories, now time.Time) model.VideoRecord {
	rec := model.VideoRecord{
		VideoID:         item.ID,
		DateDataCreated: now,
	}

	if s := item.Snippet; s != nil {
		rec.PublishedAt = parseTime(s.PublishedAt)
		rec.ChannelID = s.ChannelID
		rec.ChannelTitle = s.ChannelTitle
		rec.Title = s.Title
		rec.Description = s.Description
		rec.Tags = s.Tags
		rec.CategoryID = s.CategoryID
		rec.LiveBroadcastContent = s.LiveBroadcastContent
		rec.ThumbnailDefault = s.ThumbnailURL
		if categories != nil {
			rec.Category = categories.Name(s.CategoryID)
		}
	}

	if d := item.ContentDetails; d != nil {
		rec.Duration = d.Duration
		rec.DurationSec = DurationSeconds(d.Duration)
		rec.Dimension = d.Dimension
		rec.Definition = d.Definition
		rec.Caption = d.Caption
		rec.LicensedContent = d.LicensedContent
		rec.Projection = d.Projection
	}

	if st := item.Status; st != nil {
		rec.PrivacyStatus = st.PrivacyStatus
		rec.License = st.License
		rec.Embeddable = st.Embeddable
		rec.PublicStatsViewable = st.PublicStatsViewable
	}

	if st := item.Statistics; st != nil {
		rec.ViewCount = count(st.ViewCount)
		rec.LikeCount = count(st.LikeCount)
		rec.DislikeCount = count(st.DislikeCount)
		rec.FavoriteCount = count(st.FavoriteCount)
		rec.CommentCount = count(st.CommentCount)
	}

	return rec
}

func count(v *uint64) int64 {
	if v == nil {
		return 0
	}
	return int64(*v)
}

// parseTime reads an RFC 3339 timestamp, the zero time when absent or invalid.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
