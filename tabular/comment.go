package tabular

import (
	"github.com/researchaccelerator-hub/video-insights/model"
	"github.com/researchaccelerator-hub/video-insights/model/youtube"
)

// MapComments flattens an aggregated comment collection into a comment table.
// Threads contribute their top-level comment with a nil parent; every other
// element is read as a flat reply. Threads without a top-level comment carry
// no content and are skipped.
func MapComments(items []youtube.CommentResource) model.Table[model.CommentRecord] {
	b := model.NewBuilder[model.CommentRecord](len(items))
	for _, item := range items {
		switch item.Kind {
		case youtube.KindCommentThread:
			if rec, ok := mapThread(item.Thread); ok {
				b.Add(rec)
			}
		default:
			if item.Comment != nil {
				b.Add(mapReply(*item.Comment))
			}
		}
	}
	return b.Build()
}

func mapThread(t *youtube.CommentThread) (model.CommentRecord, bool) {
	if t == nil || t.Snippet == nil || t.Snippet.TopLevelComment == nil {
		return model.CommentRecord{}, false
	}
	rec := commentFields(*t.Snippet.TopLevelComment)
	rec.CommentID = t.ID
	rec.ParentID = nil
	rec.CanReply = t.Snippet.CanReply
	rec.TotalReplyCount = t.Snippet.TotalReplyCount
	rec.IsPublic = t.Snippet.IsPublic
	return rec, true
}

// mapReply reads a standalone reply. Replies cannot be replied to and carry
// no visibility flag, so those columns stay false and the reply count 0.
func mapReply(c youtube.Comment) model.CommentRecord {
	rec := commentFields(c)
	if c.Snippet != nil && c.Snippet.ParentID != "" {
		parent := c.Snippet.ParentID
		rec.ParentID = &parent
	}
	return rec
}

func commentFields(c youtube.Comment) model.CommentRecord {
	rec := model.CommentRecord{CommentID: c.ID}
	s := c.Snippet
	if s == nil {
		return rec
	}
	rec.AuthorDisplayName = s.AuthorDisplayName
	rec.AuthorProfileImageURL = s.AuthorProfileImageURL
	rec.AuthorChannelURL = s.AuthorChannelURL
	rec.AuthorChannelID = s.AuthorChannelID
	rec.TextDisplay = s.TextDisplay
	rec.TextOriginal = s.TextOriginal
	rec.CanRate = s.CanRate
	rec.ViewerRating = s.ViewerRating
	rec.LikeCount = s.LikeCount
	rec.PublishedAt = parseTime(s.PublishedAt)
	rec.UpdatedAt = parseTime(s.UpdatedAt)
	return rec
}
