package client

import (
	"github.com/researchaccelerator-hub/video-insights/model/youtube"
	ytapi "google.golang.org/api/youtube/v3"
)

// Decoders from the generated API structs into the typed shapes of model/youtube.
// Every nil section stays nil, every absent scalar stays at its zero value.

func token(next string) *string {
	if next == "" {
		return nil
	}
	return &next
}

func defaultThumbnail(t *ytapi.ThumbnailDetails) string {
	if t == nil || t.Default == nil {
		return ""
	}
	return t.Default.Url
}

func decodeSearchResult(item *ytapi.SearchResult) youtube.SearchResult {
	var result youtube.SearchResult
	if item.Id != nil {
		result.Kind = item.Id.Kind
		result.VideoID = item.Id.VideoId
		result.ChannelID = item.Id.ChannelId
		result.PlaylistID = item.Id.PlaylistId
	}
	if s := item.Snippet; s != nil {
		result.Title = s.Title
		result.Description = s.Description
		result.ChannelTitle = s.ChannelTitle
		result.PublishedAt = s.PublishedAt
		result.ThumbnailURL = defaultThumbnail(s.Thumbnails)
		if result.ChannelID == "" {
			result.ChannelID = s.ChannelId
		}
	}
	return result
}

// counter returns nil for counters the API did not send. The generated
// structs drop the field distinction, so a published 0 and a hidden counter
// both decode to nil and are mapped to 0 downstream.
func counter(v uint64) *uint64 {
	if v == 0 {
		return nil
	}
	return &v
}

func decodeVideo(item *ytapi.Video) youtube.Video {
	video := youtube.Video{ID: item.Id}
	if s := item.Snippet; s != nil {
		video.Snippet = &youtube.VideoSnippet{
			PublishedAt:          s.PublishedAt,
			ChannelID:            s.ChannelId,
			ChannelTitle:         s.ChannelTitle,
			Title:                s.Title,
			Description:          s.Description,
			Tags:                 s.Tags,
			CategoryID:           s.CategoryId,
			LiveBroadcastContent: s.LiveBroadcastContent,
			ThumbnailURL:         defaultThumbnail(s.Thumbnails),
		}
	}
	if d := item.ContentDetails; d != nil {
		video.ContentDetails = &youtube.VideoContentDetails{
			Duration:        d.Duration,
			Dimension:       d.Dimension,
			Definition:      d.Definition,
			Caption:         d.Caption,
			LicensedContent: d.LicensedContent,
			Projection:      d.Projection,
		}
	}
	if st := item.Status; st != nil {
		video.Status = &youtube.VideoStatus{
			PrivacyStatus:       st.PrivacyStatus,
			License:             st.License,
			Embeddable:          st.Embeddable,
			PublicStatsViewable: st.PublicStatsViewable,
		}
	}
	if st := item.Statistics; st != nil {
		video.Statistics = &youtube.VideoStatistics{
			ViewCount:     counter(st.ViewCount),
			LikeCount:     counter(st.LikeCount),
			DislikeCount:  counter(st.DislikeCount),
			FavoriteCount: counter(st.FavoriteCount),
			CommentCount:  counter(st.CommentCount),
		}
	}
	return video
}

func decodeChannel(item *ytapi.Channel) youtube.Channel {
	channel := youtube.Channel{ID: item.Id}
	if s := item.Snippet; s != nil {
		channel.Title = s.Title
		channel.Description = s.Description
		channel.ThumbnailURL = defaultThumbnail(s.Thumbnails)
	}
	if d := item.ContentDetails; d != nil && d.RelatedPlaylists != nil {
		channel.UploadsPlaylistID = d.RelatedPlaylists.Uploads
	}
	return channel
}

func decodePlaylistItem(item *ytapi.PlaylistItem) (youtube.PlaylistItem, bool) {
	if item == nil || item.Snippet == nil || item.Snippet.ResourceId == nil || item.Snippet.ResourceId.VideoId == "" {
		return youtube.PlaylistItem{}, false
	}
	return youtube.PlaylistItem{
		VideoID:     item.Snippet.ResourceId.VideoId,
		PublishedAt: item.Snippet.PublishedAt,
	}, true
}

func decodeComment(item *ytapi.Comment) youtube.Comment {
	comment := youtube.Comment{Kind: item.Kind, ID: item.Id}
	if comment.Kind == "" {
		comment.Kind = youtube.KindComment
	}
	if s := item.Snippet; s != nil {
		comment.Snippet = &youtube.CommentSnippet{
			VideoID:               s.VideoId,
			AuthorDisplayName:     s.AuthorDisplayName,
			AuthorProfileImageURL: s.AuthorProfileImageUrl,
			AuthorChannelURL:      s.AuthorChannelUrl,
			TextDisplay:           s.TextDisplay,
			TextOriginal:          s.TextOriginal,
			ParentID:              s.ParentId,
			CanRate:               s.CanRate,
			ViewerRating:          s.ViewerRating,
			LikeCount:             s.LikeCount,
			PublishedAt:           s.PublishedAt,
			UpdatedAt:             s.UpdatedAt,
		}
		if s.AuthorChannelId != nil {
			comment.Snippet.AuthorChannelID = s.AuthorChannelId.Value
		}
	}
	return comment
}

func decodeThread(item *ytapi.CommentThread) youtube.CommentThread {
	thread := youtube.CommentThread{Kind: item.Kind, ID: item.Id}
	if thread.Kind == "" {
		thread.Kind = youtube.KindCommentThread
	}
	if s := item.Snippet; s != nil {
		thread.Snippet = &youtube.ThreadSnippet{
			VideoID:         s.VideoId,
			CanReply:        s.CanReply,
			TotalReplyCount: s.TotalReplyCount,
			IsPublic:        s.IsPublic,
		}
		if s.TopLevelComment != nil {
			top := decodeComment(s.TopLevelComment)
			thread.Snippet.TopLevelComment = &top
		}
	}
	if item.Replies != nil {
		replies := &youtube.ThreadReplies{Comments: make([]youtube.Comment, 0, len(item.Replies.Comments))}
		for _, c := range item.Replies.Comments {
			if c == nil {
				continue
			}
			replies.Comments = append(replies.Comments, decodeComment(c))
		}
		thread.Replies = replies
	}
	return thread
}
