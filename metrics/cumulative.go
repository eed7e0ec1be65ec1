package metrics

import (
	"sort"

	"github.com/researchaccelerator-hub/video-insights/model"
)

// Compound score bounds of the positive and negative views. Scores between
// them, inclusive, are neutral.
const (
	NegativeThreshold = -0.5
	PositiveThreshold = 0.5
)

// Cumulate sorts the comments by publish time, oldest first, and numbers them
// 1..n in CumSum. It also returns the negative and positive views of the sorted
// table, each numbered on its own. The input table is not modified.
func Cumulate(comments model.Table[model.CommentSentiment]) (all, positive, negative model.Table[model.CommentSentiment]) {
	rows := make([]model.CommentSentiment, comments.Len())
	copy(rows, comments.Rows())
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].PublishedAt.Before(rows[j].PublishedAt)
	})
	number(rows)

	sorted := model.NewTable(rows)
	positive = renumber(sorted.Filter(func(c model.CommentSentiment) bool { return c.Compound > PositiveThreshold }))
	negative = renumber(sorted.Filter(func(c model.CommentSentiment) bool { return c.Compound < NegativeThreshold }))
	return sorted, positive, negative
}

// Neutral returns the rows of a cumulated table that belong to neither the
// positive nor the negative view, keeping their overall numbering.
func Neutral(all model.Table[model.CommentSentiment]) model.Table[model.CommentSentiment] {
	return all.Filter(func(c model.CommentSentiment) bool {
		return c.Compound >= NegativeThreshold && c.Compound <= PositiveThreshold
	})
}

func number(rows []model.CommentSentiment) {
	for i := range rows {
		rows[i].CumSum = i + 1
	}
}

// renumber relies on Filter returning freshly allocated rows.
func renumber(t model.Table[model.CommentSentiment]) model.Table[model.CommentSentiment] {
	number(t.Rows())
	return t
}
